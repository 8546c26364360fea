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

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	http            *testutils.HTTPTestSuite
	ctrl            *gomock.Controller
	mockTeamService *mocks.MockTeamServiceInterface
	account         *models.Account
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamService = mocks.NewMockTeamServiceInterface(suite.ctrl)

	suite.account = &models.Account{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "owner@test.com",
		IsPremium: true,
	}

	handler := handlers.NewTeamHandler(suite.mockTeamService)

	suite.http = testutils.SetupHTTPTest()
	// Acceptance is the one route served without authentication
	suite.http.Router.POST("/api/v1/team/invitations/accept", handler.AcceptInvitation)

	api := suite.http.Router.Group("/api/v1", authAs(suite.account))
	api.GET("/team", handler.GetRoster)
	api.POST("/team/invitations", handler.InviteMember)
	api.DELETE("/team/invitations/:id", handler.RevokeInvitation)
	api.DELETE("/team/members/:id", handler.RemoveMember)
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetRoster tests GET /team
func (suite *TeamHandlerTestSuite) TestGetRoster() {
	members := []service.TeamMemberResponse{{ID: uuid.New(), Email: "member@test.com"}}
	invitations := []service.InvitationResponse{{ID: uuid.New(), Email: "pending@test.com"}}

	suite.mockTeamService.EXPECT().Roster(suite.account).Return(members, invitations, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/team", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var body map[string]json.RawMessage
	assert.NoError(suite.T(), json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Contains(suite.T(), body, "members")
	assert.Contains(suite.T(), body, "invitations")
}

// TestGetRosterFreePlan tests the 402 for non-premium owners
func (suite *TeamHandlerTestSuite) TestGetRosterFreePlan() {
	suite.mockTeamService.EXPECT().Roster(suite.account).Return(nil, nil, apperrors.ErrTeamFeaturesDenied)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/team", nil)

	assert.Equal(suite.T(), http.StatusPaymentRequired, recorder.Code)

	var body map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(suite.T(), true, body["upgrade_required"])
}

// TestGetRosterAsDelegate tests the 403 for delegated members
func (suite *TeamHandlerTestSuite) TestGetRosterAsDelegate() {
	suite.mockTeamService.EXPECT().Roster(suite.account).Return(nil, nil, apperrors.ErrNotPrimaryOwner)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/team", nil)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

// TestInviteMember tests POST /team/invitations
func (suite *TeamHandlerTestSuite) TestInviteMember() {
	suite.mockTeamService.EXPECT().Invite(suite.account, gomock.Any()).DoAndReturn(
		func(actor *models.Account, req *service.InviteRequest) (*service.InvitationResponse, error) {
			assert.Equal(suite.T(), "new@test.com", req.Email)
			return &service.InvitationResponse{ID: uuid.New(), Email: req.Email, Token: uuid.New()}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/team/invitations", map[string]string{"email": "new@test.com"})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

// TestInviteMemberDuplicate tests the 409 for an already invited email
func (suite *TeamHandlerTestSuite) TestInviteMemberDuplicate() {
	suite.mockTeamService.EXPECT().Invite(suite.account, gomock.Any()).Return(nil, apperrors.ErrInvitationExists)

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/team/invitations", map[string]string{"email": "dup@test.com"})

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestAcceptInvitation tests the unauthenticated acceptance route
func (suite *TeamHandlerTestSuite) TestAcceptInvitation() {
	token := uuid.New()
	suite.mockTeamService.EXPECT().Accept(gomock.Any()).DoAndReturn(
		func(req *service.AcceptInvitationRequest) (*service.TeamMemberResponse, error) {
			assert.Equal(suite.T(), token, req.Token)
			return &service.TeamMemberResponse{ID: uuid.New(), Email: "invitee@test.com"}, nil
		})

	body := map[string]string{
		"token":      token.String(),
		"password":   "secret-password",
		"first_name": "New",
	}
	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/team/invitations/accept", body)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

// TestAcceptInvitationConsumed tests the 409 for a reused token
func (suite *TeamHandlerTestSuite) TestAcceptInvitationConsumed() {
	suite.mockTeamService.EXPECT().Accept(gomock.Any()).Return(nil, apperrors.ErrInvitationConsumed)

	body := map[string]string{"token": uuid.New().String(), "password": "secret-password"}
	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/team/invitations/accept", body)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestRevokeInvitation tests DELETE /team/invitations/:id
func (suite *TeamHandlerTestSuite) TestRevokeInvitation() {
	invitationID := uuid.New()
	suite.mockTeamService.EXPECT().RevokeInvitation(suite.account, invitationID).Return(nil)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/api/v1/team/invitations/"+invitationID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestRemoveMember tests DELETE /team/members/:id
func (suite *TeamHandlerTestSuite) TestRemoveMember() {
	memberID := uuid.New()
	suite.mockTeamService.EXPECT().RemoveMember(suite.account, memberID).Return(nil)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/api/v1/team/members/"+memberID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestRemoveMemberNotFound tests removal of a foreign or missing member
func (suite *TeamHandlerTestSuite) TestRemoveMemberNotFound() {
	memberID := uuid.New()
	suite.mockTeamService.EXPECT().RemoveMember(suite.account, memberID).Return(apperrors.ErrTeamMemberNotFound)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/api/v1/team/members/"+memberID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
