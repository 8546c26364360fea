package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"asset-tracker-backend/internal/api/handlers"
	"asset-tracker-backend/internal/database/models"
	apperrors "asset-tracker-backend/internal/errors"
	"asset-tracker-backend/internal/mocks"
	"asset-tracker-backend/internal/service"
	"asset-tracker-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// authAs returns a middleware that injects an authenticated account,
// standing in for the JWT middleware in handler tests.
func authAs(account *models.Account) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("account", account)
		c.Next()
	}
}

// AssetHandlerTestSuite defines the test suite for AssetHandler
type AssetHandlerTestSuite struct {
	suite.Suite
	http               *testutils.HTTPTestSuite
	ctrl               *gomock.Controller
	mockAssetService   *mocks.MockAssetServiceInterface
	mockAccountService *mocks.MockAccountServiceInterface
	account            *models.Account
}

// SetupTest sets up the test suite
func (suite *AssetHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAssetService = mocks.NewMockAssetServiceInterface(suite.ctrl)
	suite.mockAccountService = mocks.NewMockAccountServiceInterface(suite.ctrl)

	suite.account = &models.Account{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "owner@test.com",
	}

	handler := handlers.NewAssetHandler(suite.mockAssetService, suite.mockAccountService)

	suite.http = testutils.SetupHTTPTest()
	api := suite.http.Router.Group("/api/v1", authAs(suite.account))
	api.GET("/assets", handler.ListAssets)
	api.POST("/assets", handler.CreateAsset)
	api.GET("/assets/:id", handler.GetAsset)
	api.PUT("/assets/:id", handler.UpdateAsset)
	api.POST("/assets/:id/assign", handler.AssignAsset)
	api.POST("/assets/:id/return", handler.ReturnAsset)
	api.GET("/assets/:id/history", handler.GetAssetHistory)
	api.DELETE("/assets/:id", handler.DeleteAsset)
}

// TearDownTest cleans up after each test
func (suite *AssetHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssetHandlerTestSuite) expectOwnerResolution() {
	suite.mockAccountService.EXPECT().ResolveOwner(suite.account).Return(suite.account, nil)
}

// TestListAssets tests GET /assets
func (suite *AssetHandlerTestSuite) TestListAssets() {
	suite.expectOwnerResolution()
	suite.mockAssetService.EXPECT().List(suite.account, "").Return([]service.AssetResponse{
		{ID: uuid.New(), Name: "Laptop", StatusLabel: "Available"},
	}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/assets", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var resp []service.AssetResponse
	assert.NoError(suite.T(), json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Len(suite.T(), resp, 1)
	assert.Equal(suite.T(), "Laptop", resp[0].Name)
}

// TestListAssetsPassesQuery tests that the search query reaches the service
func (suite *AssetHandlerTestSuite) TestListAssetsPassesQuery() {
	suite.expectOwnerResolution()
	suite.mockAssetService.EXPECT().List(suite.account, "drill").Return([]service.AssetResponse{}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/assets?q=drill", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestCreateAssetQuotaReached tests the 402 upsell response
func (suite *AssetHandlerTestSuite) TestCreateAssetQuotaReached() {
	suite.expectOwnerResolution()
	suite.mockAssetService.EXPECT().Create(suite.account, gomock.Any()).Return(nil, apperrors.ErrAssetQuotaReached)

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/assets", map[string]string{"name": "One Too Many"})

	assert.Equal(suite.T(), http.StatusPaymentRequired, recorder.Code)

	var body map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(suite.T(), true, body["upgrade_required"])
	assert.Equal(suite.T(), "adding more assets", body["feature"])
}

// TestCreateAsset tests the created response
func (suite *AssetHandlerTestSuite) TestCreateAsset() {
	suite.expectOwnerResolution()
	suite.mockAssetService.EXPECT().Create(suite.account, gomock.Any()).DoAndReturn(
		func(owner *models.Account, req *service.CreateAssetRequest) (*service.AssetResponse, error) {
			assert.Equal(suite.T(), "Drill", req.Name)
			return &service.AssetResponse{ID: uuid.New(), Name: req.Name, StatusLabel: "Available"}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/assets", map[string]string{"name": "Drill"})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

// TestGetAssetNotFound tests the 404 mapping
func (suite *AssetHandlerTestSuite) TestGetAssetNotFound() {
	suite.expectOwnerResolution()
	assetID := uuid.New()
	suite.mockAssetService.EXPECT().GetByID(suite.account, assetID).Return(nil, apperrors.ErrAssetNotFound)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/assets/"+assetID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestGetAssetInvalidID tests that a malformed id never hits the service
func (suite *AssetHandlerTestSuite) TestGetAssetInvalidID() {
	suite.expectOwnerResolution()

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/assets/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestAssignAsset tests POST /assets/:id/assign
func (suite *AssetHandlerTestSuite) TestAssignAsset() {
	suite.expectOwnerResolution()
	assetID := uuid.New()
	employeeID := uuid.New()

	suite.mockAssetService.EXPECT().Assign(suite.account, suite.account.ID, assetID, gomock.Any()).DoAndReturn(
		func(owner *models.Account, actorID uuid.UUID, id uuid.UUID, req *service.AssignAssetRequest) (*service.AssetResponse, error) {
			assert.Equal(suite.T(), employeeID, *req.EmployeeID)
			return &service.AssetResponse{ID: assetID, StatusLabel: "Assigned / In Use"}, nil
		})

	body := map[string]string{"employee_id": employeeID.String()}
	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/assets/"+assetID.String()+"/assign", body)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestReturnAsset tests POST /assets/:id/return
func (suite *AssetHandlerTestSuite) TestReturnAsset() {
	suite.expectOwnerResolution()
	assetID := uuid.New()
	suite.mockAssetService.EXPECT().Return(suite.account, suite.account.ID, assetID).Return(&service.AssetResponse{ID: assetID, StatusLabel: "Available"}, nil)

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/assets/"+assetID.String()+"/return", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestGetAssetHistory tests GET /assets/:id/history
func (suite *AssetHandlerTestSuite) TestGetAssetHistory() {
	suite.expectOwnerResolution()
	assetID := uuid.New()
	suite.mockAssetService.EXPECT().GetHistory(suite.account, assetID).Return([]service.AssetHistoryResponse{
		{ID: uuid.New(), Action: "Status: Available -> Assigned / In Use, Assigned to: Storage -> Jane", ChangedBy: "owner@test.com"},
	}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/assets/"+assetID.String()+"/history", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var history []service.AssetHistoryResponse
	assert.NoError(suite.T(), json.Unmarshal(recorder.Body.Bytes(), &history))
	assert.Len(suite.T(), history, 1)
	assert.Equal(suite.T(), "owner@test.com", history[0].ChangedBy)
}

// TestDeleteAsset tests DELETE /assets/:id
func (suite *AssetHandlerTestSuite) TestDeleteAsset() {
	suite.expectOwnerResolution()
	assetID := uuid.New()
	suite.mockAssetService.EXPECT().Delete(suite.account, assetID).Return(nil)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/api/v1/assets/"+assetID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestUnauthenticatedRequest tests the guard when no account is set
func (suite *AssetHandlerTestSuite) TestUnauthenticatedRequest() {
	handler := handlers.NewAssetHandler(suite.mockAssetService, suite.mockAccountService)
	bare := testutils.SetupHTTPTest()
	bare.Router.GET("/api/v1/assets", handler.ListAssets)

	recorder := bare.MakeRequest(http.MethodGet, "/api/v1/assets", nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestDelegateOperatesOnOwnerData tests that a team member's request is
// executed against the resolved owner account.
func (suite *AssetHandlerTestSuite) TestDelegateOperatesOnOwnerData() {
	owner := &models.Account{BaseModel: models.BaseModel{ID: uuid.New()}, IsPremium: true}
	suite.account.MasterAccountID = &owner.ID

	suite.mockAccountService.EXPECT().ResolveOwner(suite.account).Return(owner, nil)
	suite.mockAssetService.EXPECT().List(owner, "").Return([]service.AssetResponse{}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/assets", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestAssetHandlerTestSuite runs the test suite
func TestAssetHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AssetHandlerTestSuite))
}
