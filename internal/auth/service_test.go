package auth_test

import (
	"testing"
	"time"

	"asset-tracker-backend/internal/auth"
	"asset-tracker-backend/internal/database/models"
	apperrors "asset-tracker-backend/internal/errors"
	"asset-tracker-backend/internal/mocks"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockAccountRepo *mocks.MockAccountRepositoryInterface
	authService     *auth.AuthService
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAccountRepo = mocks.NewMockAccountRepositoryInterface(suite.ctrl)
	suite.authService = auth.NewAuthService(suite.mockAccountRepo, "test-secret-key", 24, validator.New())
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestHashAndCheckPassword tests the bcrypt round trip
func (suite *AuthServiceTestSuite) TestHashAndCheckPassword() {
	hash, err := suite.authService.HashPassword("correct horse battery")

	assert.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), "correct horse battery", hash)
	assert.True(suite.T(), suite.authService.CheckPassword(hash, "correct horse battery"))
	assert.False(suite.T(), suite.authService.CheckPassword(hash, "wrong password"))
}

// TestGenerateAndValidateJWT tests the token round trip
func (suite *AuthServiceTestSuite) TestGenerateAndValidateJWT() {
	account := &models.Account{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "owner@test.com",
	}

	token, err := suite.authService.GenerateJWT(account)
	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), token)

	claims, err := suite.authService.ValidateJWT(token)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), account.ID, claims.AccountID)
	assert.Equal(suite.T(), "owner@test.com", claims.Email)
	assert.True(suite.T(), claims.ExpiresAt.After(time.Now()))
}

// TestValidateJWTGarbage tests rejection of malformed tokens
func (suite *AuthServiceTestSuite) TestValidateJWTGarbage() {
	_, err := suite.authService.ValidateJWT("not.a.token")

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsAuthentication(err))
}

// TestValidateJWTWrongSecret tests that a token signed elsewhere fails
func (suite *AuthServiceTestSuite) TestValidateJWTWrongSecret() {
	other := auth.NewAuthService(suite.mockAccountRepo, "another-secret", 24, validator.New())
	account := &models.Account{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "x@test.com"}

	token, err := other.GenerateJWT(account)
	assert.NoError(suite.T(), err)

	_, err = suite.authService.ValidateJWT(token)
	assert.True(suite.T(), apperrors.IsAuthentication(err))
}

// TestRegister tests creating a new primary account
func (suite *AuthServiceTestSuite) TestRegister() {
	req := &auth.RegisterRequest{
		Email:       "new@test.com",
		Password:    "secret-password",
		FirstName:   "Dana",
		CompanyName: "Acme GmbH",
	}

	suite.mockAccountRepo.EXPECT().GetByEmail("new@test.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockAccountRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(account *models.Account) error {
		assert.Nil(suite.T(), account.MasterAccountID)
		assert.Equal(suite.T(), models.DefaultMaxAssets, account.MaxAssets)
		assert.False(suite.T(), account.IsPremium)
		assert.NoError(suite.T(), bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("secret-password")))
		account.ID = uuid.New()
		return nil
	})

	resp, err := suite.authService.Register(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Bearer", resp.TokenType)
	assert.NotEmpty(suite.T(), resp.AccessToken)
	assert.Equal(suite.T(), "new@test.com", resp.Email)
}

// TestRegisterDuplicateEmail tests rejection of an existing email
func (suite *AuthServiceTestSuite) TestRegisterDuplicateEmail() {
	suite.mockAccountRepo.EXPECT().GetByEmail("taken@test.com").Return(&models.Account{}, nil)

	req := &auth.RegisterRequest{Email: "taken@test.com", Password: "secret-password"}
	resp, err := suite.authService.Register(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAccountExists)
}

// TestRegisterShortPassword tests the password policy
func (suite *AuthServiceTestSuite) TestRegisterShortPassword() {
	req := &auth.RegisterRequest{Email: "new@test.com", Password: "short"}

	resp, err := suite.authService.Register(req)

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestLogin tests a successful login
func (suite *AuthServiceTestSuite) TestLogin() {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.DefaultCost)
	assert.NoError(suite.T(), err)

	account := &models.Account{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Email:        "owner@test.com",
		PasswordHash: string(hash),
	}
	suite.mockAccountRepo.EXPECT().GetByEmail("owner@test.com").Return(account, nil)

	resp, err := suite.authService.Login(&auth.LoginRequest{Email: "owner@test.com", Password: "secret-password"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), account.ID, resp.AccountID)
	assert.NotEmpty(suite.T(), resp.AccessToken)
}

// TestLoginWrongPassword tests that a bad password yields the same error
// as an unknown email.
func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.DefaultCost)
	assert.NoError(suite.T(), err)

	account := &models.Account{Email: "owner@test.com", PasswordHash: string(hash)}
	suite.mockAccountRepo.EXPECT().GetByEmail("owner@test.com").Return(account, nil)

	_, err = suite.authService.Login(&auth.LoginRequest{Email: "owner@test.com", Password: "wrong"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestLoginUnknownEmail tests that a missing account is indistinguishable
// from a wrong password.
func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	suite.mockAccountRepo.EXPECT().GetByEmail("ghost@test.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.authService.Login(&auth.LoginRequest{Email: "ghost@test.com", Password: "whatever-pass"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
