package services

import (
	"strings"
	"testing"

	"savings-tracker/internal/config"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

// PasswordServiceTestSuite defines the test suite for PasswordService
type PasswordServiceTestSuite struct {
	suite.Suite
	service PasswordServiceInterface
}

// SetupTest runs before each test
func (s *PasswordServiceTestSuite) SetupTest() {
	s.service = NewPasswordService(&config.SecurityConfig{
		BCryptCost:        bcrypt.MinCost,
		PasswordMinLength: DefaultMinPasswordLength,
	})
}

// TestPasswordServiceSuite runs the test suite
func TestPasswordServiceSuite(t *testing.T) {
	suite.Run(t, new(PasswordServiceTestSuite))
}

func (s *PasswordServiceTestSuite) TestValidatePassword() {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "valid", password: "password1"},
		{name: "exactly minimum", password: "12345678"},
		{name: "exactly maximum", password: strings.Repeat("a", MaxPasswordLength)},
		{name: "empty", password: "", wantErr: ErrPasswordEmpty},
		{name: "too short", password: "short", wantErr: ErrPasswordTooShort},
		{name: "too long", password: strings.Repeat("a", MaxPasswordLength+1), wantErr: ErrPasswordTooLong},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := s.service.ValidatePassword(tt.password)
			if tt.wantErr == nil {
				s.NoError(err)
				return
			}
			s.ErrorIs(err, tt.wantErr)
		})
	}
}

func (s *PasswordServiceTestSuite) TestHashAndCompare_RoundTrip() {
	hash, err := s.service.HashPassword("correct horse")
	s.Require().NoError(err)

	s.NotEqual("correct horse", hash)
	s.True(s.service.ComparePassword("correct horse", hash))
	s.False(s.service.ComparePassword("wrong horse", hash))
}

func (s *PasswordServiceTestSuite) TestHashPassword_Salted() {
	first, err := s.service.HashPassword("same-password")
	s.Require().NoError(err)
	second, err := s.service.HashPassword("same-password")
	s.Require().NoError(err)

	s.NotEqual(first, second)
}

func (s *PasswordServiceTestSuite) TestHashPassword_RejectsPolicyViolation() {
	hash, err := s.service.HashPassword("short")

	s.ErrorIs(err, ErrPasswordTooShort)
	s.Empty(hash)
}

func (s *PasswordServiceTestSuite) TestComparePassword_InvalidHash() {
	s.False(s.service.ComparePassword("anything", "not-a-bcrypt-hash"))
}

func (s *PasswordServiceTestSuite) TestNewPasswordService_OutOfRangeCost() {
	svc := NewPasswordService(&config.SecurityConfig{BCryptCost: 99})

	hash, err := svc.HashPassword("password1")
	s.Require().NoError(err)

	cost, err := bcrypt.Cost([]byte(hash))
	s.NoError(err)
	s.Equal(bcrypt.DefaultCost, cost)
}
