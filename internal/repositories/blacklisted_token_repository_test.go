package repositories

import (
	"context"
	"testing"
	"time"

	"savings-tracker/internal/database"
	"savings-tracker/internal/models"

	"github.com/stretchr/testify/suite"
)

func TestBlacklistedTokenRepository(t *testing.T) {
	suite.Run(t, new(BlacklistedTokenRepositorySuite))
}

type BlacklistedTokenRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo BlacklistedTokenRepositoryInterface
	user *models.User
	ctx  context.Context
}

func (s *BlacklistedTokenRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewBlacklistedTokenRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, "token@example.com", "token_user")
	s.ctx = context.Background()
}

func (s *BlacklistedTokenRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *BlacklistedTokenRepositorySuite) TestCreateAndGetByJTI() {
	token := &models.BlacklistedToken{
		JTI:       "jti-1",
		UserID:    s.user.ID,
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}
	s.Require().NoError(s.repo.Create(s.ctx, token))
	s.NotZero(token.BlacklistedAt)

	found, err := s.repo.GetByJTI(s.ctx, "jti-1")
	s.NoError(err)
	s.Equal(s.user.ID, found.UserID)

	_, err = s.repo.GetByJTI(s.ctx, "unknown")
	s.Equal(ErrTokenNotFound, err)
}

func (s *BlacklistedTokenRepositorySuite) TestCreateTwiceIsIdempotent() {
	for i := 0; i < 2; i++ {
		err := s.repo.Create(s.ctx, &models.BlacklistedToken{
			JTI:       "repeat",
			UserID:    s.user.ID,
			ExpiresAt: time.Now().Add(time.Minute),
		})
		s.NoError(err)
	}
}

func (s *BlacklistedTokenRepositorySuite) TestDeleteExpired() {
	s.Require().NoError(s.repo.Create(s.ctx, &models.BlacklistedToken{
		JTI:       "expired",
		UserID:    s.user.ID,
		ExpiresAt: time.Now().Add(-time.Hour),
	}))
	s.Require().NoError(s.repo.Create(s.ctx, &models.BlacklistedToken{
		JTI:       "live",
		UserID:    s.user.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	deleted, err := s.repo.DeleteExpired(s.ctx)
	s.NoError(err)
	s.Equal(int64(1), deleted)

	_, err = s.repo.GetByJTI(s.ctx, "expired")
	s.Equal(ErrTokenNotFound, err)
	_, err = s.repo.GetByJTI(s.ctx, "live")
	s.NoError(err)
}
