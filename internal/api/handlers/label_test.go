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

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LabelHandlerTestSuite defines the test suite for LabelHandler
type LabelHandlerTestSuite struct {
	suite.Suite
	http                   *testutils.HTTPTestSuite
	ctrl                   *gomock.Controller
	mockAssetService       *mocks.MockAssetServiceInterface
	mockAccountService     *mocks.MockAccountServiceInterface
	mockLabelService       *mocks.MockLabelServiceInterface
	mockEntitlementService *mocks.MockEntitlementServiceInterface
	account                *models.Account
}

// SetupTest sets up the test suite
func (suite *LabelHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAssetService = mocks.NewMockAssetServiceInterface(suite.ctrl)
	suite.mockAccountService = mocks.NewMockAccountServiceInterface(suite.ctrl)
	suite.mockLabelService = mocks.NewMockLabelServiceInterface(suite.ctrl)
	suite.mockEntitlementService = mocks.NewMockEntitlementServiceInterface(suite.ctrl)

	suite.account = &models.Account{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Email:       "owner@test.com",
		CompanyName: "Acme GmbH",
	}

	handler := handlers.NewLabelHandler(suite.mockAssetService, suite.mockAccountService, suite.mockLabelService, suite.mockEntitlementService)

	suite.http = testutils.SetupHTTPTest()
	api := suite.http.Router.Group("/api/v1", authAs(suite.account))
	api.GET("/labels/pdf", handler.GetLabelSheet)
}

// TearDownTest cleans up after each test
func (suite *LabelHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LabelHandlerTestSuite) expectOwnerResolution() {
	suite.mockAccountService.EXPECT().ResolveOwner(suite.account).Return(suite.account, nil)
}

// TestGetLabelSheet tests downloading a sheet for all assets
func (suite *LabelHandlerTestSuite) TestGetLabelSheet() {
	assets := []models.Asset{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Laptop"},
	}
	contact := service.OwnerContact{CompanyName: "Acme GmbH"}
	pdfBytes := []byte("%PDF-1.3 fake")

	suite.expectOwnerResolution()
	suite.mockAssetService.EXPECT().GetForLabels(suite.account, nil).Return(assets, nil)
	suite.mockEntitlementService.EXPECT().CanBulkExport(suite.account, 1).Return(nil)
	suite.mockAccountService.EXPECT().OwnerContact(suite.account).Return(contact)
	suite.mockLabelService.EXPECT().RenderPDF(assets, contact).Return(pdfBytes, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/labels/pdf", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), "application/pdf", recorder.Header().Get("Content-Type"))
	assert.Equal(suite.T(), `attachment; filename="asset-labels.pdf"`, recorder.Header().Get("Content-Disposition"))
	assert.Equal(suite.T(), pdfBytes, recorder.Body.Bytes())
}

// TestGetLabelSheetSingleSelection tests the uuid query parameter
func (suite *LabelHandlerTestSuite) TestGetLabelSheetSingleSelection() {
	assetID := uuid.New()
	assets := []models.Asset{{BaseModel: models.BaseModel{ID: assetID}}}

	suite.expectOwnerResolution()
	suite.mockAssetService.EXPECT().GetForLabels(suite.account, []uuid.UUID{assetID}).Return(assets, nil)
	suite.mockEntitlementService.EXPECT().CanBulkExport(suite.account, 1).Return(nil)
	suite.mockAccountService.EXPECT().OwnerContact(suite.account).Return(service.OwnerContact{})
	suite.mockLabelService.EXPECT().RenderPDF(assets, gomock.Any()).Return([]byte("%PDF"), nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/labels/pdf?uuid="+assetID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestGetLabelSheetBulkDeniedForFreePlan tests the 402 on multi-label
// sheets for free accounts.
func (suite *LabelHandlerTestSuite) TestGetLabelSheetBulkDeniedForFreePlan() {
	assets := []models.Asset{
		{BaseModel: models.BaseModel{ID: uuid.New()}},
		{BaseModel: models.BaseModel{ID: uuid.New()}},
	}

	suite.expectOwnerResolution()
	suite.mockAssetService.EXPECT().GetForLabels(suite.account, nil).Return(assets, nil)
	suite.mockEntitlementService.EXPECT().CanBulkExport(suite.account, 2).Return(apperrors.ErrBulkExportDenied)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/labels/pdf", nil)

	assert.Equal(suite.T(), http.StatusPaymentRequired, recorder.Code)

	var body map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(suite.T(), true, body["upgrade_required"])
	assert.Equal(suite.T(), "bulk label export", body["feature"])
}

// TestGetLabelSheetEmptySelection tests the 404 when nothing matches
func (suite *LabelHandlerTestSuite) TestGetLabelSheetEmptySelection() {
	suite.expectOwnerResolution()
	suite.mockAssetService.EXPECT().GetForLabels(suite.account, nil).Return([]models.Asset{}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/labels/pdf", nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestGetLabelSheetMalformedSelection tests the 400 on a bad uuids list
func (suite *LabelHandlerTestSuite) TestGetLabelSheetMalformedSelection() {
	suite.expectOwnerResolution()

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/labels/pdf?uuids="+uuid.New().String()+",garbage", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestLabelHandlerTestSuite runs the test suite
func TestLabelHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LabelHandlerTestSuite))
}
