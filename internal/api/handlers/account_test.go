package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"asset-tracker-backend/internal/api/handlers"
	"asset-tracker-backend/internal/database/models"
	"asset-tracker-backend/internal/mocks"
	"asset-tracker-backend/internal/service"
	"asset-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AccountHandlerTestSuite defines the test suite for AccountHandler
type AccountHandlerTestSuite struct {
	suite.Suite
	http               *testutils.HTTPTestSuite
	ctrl               *gomock.Controller
	mockAccountService *mocks.MockAccountServiceInterface
	account            *models.Account
}

// SetupTest sets up the test suite
func (suite *AccountHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAccountService = mocks.NewMockAccountServiceInterface(suite.ctrl)

	suite.account = &models.Account{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "owner@test.com",
	}

	handler := handlers.NewAccountHandler(suite.mockAccountService)

	suite.http = testutils.SetupHTTPTest()
	api := suite.http.Router.Group("/api/v1", authAs(suite.account))
	api.GET("/profile", handler.GetProfile)
	api.PUT("/profile", handler.UpdateProfile)
}

// TearDownTest cleans up after each test
func (suite *AccountHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetProfile tests GET /profile
func (suite *AccountHandlerTestSuite) TestGetProfile() {
	suite.mockAccountService.EXPECT().GetProfile(suite.account).Return(&service.ProfileResponse{
		ID:        suite.account.ID,
		Email:     "owner@test.com",
		IsPremium: true,
		MaxAssets: 500,
	}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/profile", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var profile service.ProfileResponse
	assert.NoError(suite.T(), json.Unmarshal(recorder.Body.Bytes(), &profile))
	assert.Equal(suite.T(), "owner@test.com", profile.Email)
	assert.True(suite.T(), profile.IsPremium)
}

// TestUpdateProfile tests PUT /profile
func (suite *AccountHandlerTestSuite) TestUpdateProfile() {
	suite.mockAccountService.EXPECT().UpdateProfile(suite.account, gomock.Any()).DoAndReturn(
		func(actor *models.Account, req *service.UpdateProfileRequest) (*service.ProfileResponse, error) {
			assert.Equal(suite.T(), "Acme GmbH", req.CompanyName)
			return &service.ProfileResponse{ID: actor.ID, CompanyName: req.CompanyName}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPut, "/api/v1/profile", map[string]string{"company_name": "Acme GmbH"})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestGetProfileUnauthenticated tests the guard without an account
func (suite *AccountHandlerTestSuite) TestGetProfileUnauthenticated() {
	handler := handlers.NewAccountHandler(suite.mockAccountService)
	bare := testutils.SetupHTTPTest()
	bare.Router.GET("/api/v1/profile", handler.GetProfile)

	recorder := bare.MakeRequest(http.MethodGet, "/api/v1/profile", nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestAccountHandlerTestSuite runs the test suite
func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
