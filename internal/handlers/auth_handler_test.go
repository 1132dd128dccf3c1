package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"savings-tracker/internal/dto"
	"savings-tracker/internal/errors"
	"savings-tracker/internal/models"
	"savings-tracker/internal/services"
	"savings-tracker/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

type AuthHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	authService *service_mocks.MockAuthServiceInterface
	handler     *AuthHandler
	e           *echo.Echo
	user        *models.User
}

func (s *AuthHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.authService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.handler = NewAuthHandler(s.authService)
	s.e = newTestEcho()
	s.user = &models.User{
		ID:        uuid.New(),
		Email:     "ayesha@example.com",
		Username:  "ayesha",
		City:      "Lahore",
		CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (s *AuthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthHandlerSuite) TestRegister_Created() {
	s.authService.EXPECT().
		Register(gomock.Any(), &dto.RegisterRequest{
			Email:    "ayesha@example.com",
			Username: "ayesha",
			Password: "password123",
			City:     "Lahore",
		}).
		Return(s.user, nil)

	c, rec := newJSONContext(s.e, http.MethodPost, "/register",
		`{"email":"ayesha@example.com","username":"ayesha","password":"password123","city":"Lahore"}`)

	s.Require().NoError(s.handler.Register(c))
	s.Equal(http.StatusCreated, rec.Code)

	var body dto.UserResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(s.user.ID.String(), body.ID)
	s.Equal("ayesha", body.Username)
	s.NotContains(rec.Body.String(), "password")
}

func (s *AuthHandlerSuite) TestRegister_ValidationErrorsReachErrorHandler() {
	c, _ := newJSONContext(s.e, http.MethodPost, "/register",
		`{"email":"not-an-email","username":"a","password":"short"}`)

	err := s.handler.Register(c)

	var validationErrs validator.ValidationErrors
	s.Require().True(stderrors.As(err, &validationErrs))
	fields := map[string]bool{}
	for _, fe := range validationErrs {
		fields[fe.Field()] = true
	}
	s.True(fields["email"])
	s.True(fields["username"])
	s.True(fields["password"])
}

func (s *AuthHandlerSuite) TestRegister_MalformedBody() {
	c, rec := newJSONContext(s.e, http.MethodPost, "/register", `{"email":`)

	s.Require().NoError(s.handler.Register(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.ValidationGeneral), errorCodeOf(rec))
}

func (s *AuthHandlerSuite) TestRegister_Duplicate() {
	s.authService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, services.ErrUserAlreadyExists)

	c, rec := newJSONContext(s.e, http.MethodPost, "/register",
		`{"email":"ayesha@example.com","username":"ayesha","password":"password123"}`)

	s.Require().NoError(s.handler.Register(c))
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal(string(errors.UserAlreadyExists), errorCodeOf(rec))
}

func (s *AuthHandlerSuite) TestToken_JSONBody() {
	expiresAt := time.Now().Add(30 * time.Minute).UTC()
	s.authService.EXPECT().
		Login(gomock.Any(), &dto.LoginRequest{Username: "ayesha", Password: "password123"}).
		Return(&dto.TokenResponse{AccessToken: "jwt", TokenType: services.TokenTypeBearer, ExpiresAt: expiresAt}, nil)

	c, rec := newJSONContext(s.e, http.MethodPost, "/token", `{"username":"ayesha","password":"password123"}`)

	s.Require().NoError(s.handler.Token(c))
	s.Equal(http.StatusOK, rec.Code)

	var body dto.TokenResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("jwt", body.AccessToken)
	s.Equal("bearer", body.TokenType)
}

func (s *AuthHandlerSuite) TestToken_FormBody() {
	s.authService.EXPECT().
		Login(gomock.Any(), &dto.LoginRequest{Username: "ayesha@example.com", Password: "password123"}).
		Return(&dto.TokenResponse{AccessToken: "jwt", TokenType: services.TokenTypeBearer}, nil)

	form := url.Values{"username": {"ayesha@example.com"}, "password": {"password123"}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	s.Require().NoError(s.handler.Token(s.e.NewContext(req, rec)))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthHandlerSuite) TestToken_BadCredentials() {
	s.authService.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, services.ErrInvalidCredentials)

	c, rec := newJSONContext(s.e, http.MethodPost, "/token", `{"username":"ayesha","password":"wrong-password"}`)

	s.Require().NoError(s.handler.Token(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("Bearer", rec.Header().Get("WWW-Authenticate"))
	s.Equal(string(errors.AuthInvalidCredentials), errorCodeOf(rec))
}

func (s *AuthHandlerSuite) TestToken_StoreFailure() {
	s.authService.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, stderrors.New("db down"))

	c, rec := newJSONContext(s.e, http.MethodPost, "/token", `{"username":"ayesha","password":"password123"}`)

	s.Require().NoError(s.handler.Token(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(string(errors.SystemInternalError), errorCodeOf(rec))
}

func (s *AuthHandlerSuite) TestLogout() {
	s.authService.EXPECT().Logout(gomock.Any(), "jwt-token").Return(nil)

	c, rec := newJSONContext(s.e, http.MethodPost, "/logout", "")
	c.Set(AccessTokenContextKey, "jwt-token")

	s.Require().NoError(s.handler.Logout(c))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"message":"Logout successful"}`, rec.Body.String())
}

func (s *AuthHandlerSuite) TestLogout_WithoutToken() {
	c, rec := newJSONContext(s.e, http.MethodPost, "/logout", "")

	s.Require().NoError(s.handler.Logout(c))
	s.Equal(string(errors.AuthMissingToken), errorCodeOf(rec))
}

func (s *AuthHandlerSuite) TestMe() {
	s.authService.EXPECT().GetProfile(gomock.Any(), s.user.ID).Return(s.user, nil)

	c, rec := newJSONContext(s.e, http.MethodGet, "/me", "")
	withUser(c, s.user.ID)

	s.Require().NoError(s.handler.Me(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"city":"Lahore"`)
}

func (s *AuthHandlerSuite) TestMe_UserGone() {
	s.authService.EXPECT().GetProfile(gomock.Any(), s.user.ID).Return(nil, services.ErrUserNotFound)

	c, rec := newJSONContext(s.e, http.MethodGet, "/me", "")
	withUser(c, s.user.ID)

	s.Require().NoError(s.handler.Me(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(errors.UserNotFound), errorCodeOf(rec))
}
