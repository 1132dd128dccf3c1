package repositories

import (
	"context"
	"testing"

	"savings-tracker/internal/database"
	"savings-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestSalaryRepository(t *testing.T) {
	suite.Run(t, new(SalaryRepositorySuite))
}

type SalaryRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo SalaryRepositoryInterface
	user *models.User
	ctx  context.Context
}

func (s *SalaryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewSalaryRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, "salary@example.com", "salary_user")
	s.ctx = context.Background()
}

func (s *SalaryRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *SalaryRepositorySuite) TestUpsert_ReplacesSameMonth() {
	s.Require().NoError(s.repo.Upsert(s.ctx, &models.SalaryRecord{
		UserID:         s.user.ID,
		EffectiveMonth: "2024-01",
		Amount:         decimal.NewFromInt(1000),
	}))
	s.Require().NoError(s.repo.Upsert(s.ctx, &models.SalaryRecord{
		UserID:         s.user.ID,
		EffectiveMonth: "2024-01",
		Amount:         decimal.NewFromInt(1500),
	}))

	records, err := s.repo.GetByUserID(s.ctx, s.user.ID)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.True(decimal.NewFromInt(1500).Equal(records[0].Amount))
}

func (s *SalaryRepositorySuite) TestGetByUserID_FeedsEffectiveSalary() {
	for month, amount := range map[string]int64{"2024-01": 1000, "2024-06": 2000} {
		s.Require().NoError(s.repo.Upsert(s.ctx, &models.SalaryRecord{
			UserID:         s.user.ID,
			EffectiveMonth: month,
			Amount:         decimal.NewFromInt(amount),
		}))
	}

	records, err := s.repo.GetByUserID(s.ctx, s.user.ID)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal("2024-01", records[0].EffectiveMonth)

	s.True(decimal.NewFromInt(1000).Equal(models.EffectiveSalary(records, "2024-05")))
	s.True(decimal.NewFromInt(2000).Equal(models.EffectiveSalary(records, "2024-06")))
	s.True(models.EffectiveSalary(records, "2023-12").IsZero())
}

func (s *SalaryRepositorySuite) TestUpsert_RejectsNegative() {
	err := s.repo.Upsert(s.ctx, &models.SalaryRecord{
		UserID:         s.user.ID,
		EffectiveMonth: "2024-01",
		Amount:         decimal.NewFromInt(-1),
	})
	s.ErrorIs(err, models.ErrNegativeSalary)
}
