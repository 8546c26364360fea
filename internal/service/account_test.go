package service_test

import (
	"testing"

	"asset-tracker-backend/internal/database/models"
	apperrors "asset-tracker-backend/internal/errors"
	"asset-tracker-backend/internal/mocks"
	"asset-tracker-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AccountServiceTestSuite defines the test suite for AccountService
type AccountServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockAccountRepo *mocks.MockAccountRepositoryInterface
	accountService  *service.AccountService
}

// SetupTest sets up the test suite
func (suite *AccountServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAccountRepo = mocks.NewMockAccountRepositoryInterface(suite.ctrl)
	suite.accountService = service.NewAccountService(suite.mockAccountRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *AccountServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestResolveOwnerPrimary tests that a primary owner resolves to itself
func (suite *AccountServiceTestSuite) TestResolveOwnerPrimary() {
	primary := &models.Account{BaseModel: models.BaseModel{ID: uuid.New()}}

	owner, err := suite.accountService.ResolveOwner(primary)

	assert.NoError(suite.T(), err)
	assert.Same(suite.T(), primary, owner)
}

// TestResolveOwnerPreloaded tests that a preloaded master short-circuits
// the repository lookup.
func (suite *AccountServiceTestSuite) TestResolveOwnerPreloaded() {
	master := &models.Account{BaseModel: models.BaseModel{ID: uuid.New()}, IsPremium: true}
	delegate := &models.Account{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		MasterAccountID: &master.ID,
		MasterAccount:   master,
	}

	owner, err := suite.accountService.ResolveOwner(delegate)

	assert.NoError(suite.T(), err)
	assert.Same(suite.T(), master, owner)
}

// TestResolveOwnerFetches tests the repository fallback for a delegate
// loaded without its association.
func (suite *AccountServiceTestSuite) TestResolveOwnerFetches() {
	masterID := uuid.New()
	master := &models.Account{BaseModel: models.BaseModel{ID: masterID}}
	delegate := &models.Account{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		MasterAccountID: &masterID,
	}

	suite.mockAccountRepo.EXPECT().GetByID(masterID).Return(master, nil)

	owner, err := suite.accountService.ResolveOwner(delegate)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), masterID, owner.ID)
}

// TestResolveOwnerMasterGone tests a delegate whose master was deleted
func (suite *AccountServiceTestSuite) TestResolveOwnerMasterGone() {
	masterID := uuid.New()
	delegate := &models.Account{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		MasterAccountID: &masterID,
	}

	suite.mockAccountRepo.EXPECT().GetByID(masterID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.accountService.ResolveOwner(delegate)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAccountNotFound)
}

// TestGetProfileInheritsOwnerPlan tests that a delegate sees the owner's
// premium flag, quota and company while keeping its own identity fields.
func (suite *AccountServiceTestSuite) TestGetProfileInheritsOwnerPlan() {
	master := &models.Account{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		IsPremium:   true,
		MaxAssets:   500,
		CompanyName: "Acme GmbH",
	}
	delegate := &models.Account{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		Email:           "member@test.com",
		FirstName:       "Team",
		LastName:        "Member",
		MasterAccountID: &master.ID,
		MasterAccount:   master,
	}

	profile, err := suite.accountService.GetProfile(delegate)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), delegate.ID, profile.ID)
	assert.Equal(suite.T(), "member@test.com", profile.Email)
	assert.True(suite.T(), profile.IsPremium)
	assert.Equal(suite.T(), 500, profile.MaxAssets)
	assert.Equal(suite.T(), "Acme GmbH", profile.EffectiveCompany)
	assert.False(suite.T(), profile.IsPrimaryOwner)
}

// TestUpdateProfile tests a plain profile edit without email change
func (suite *AccountServiceTestSuite) TestUpdateProfile() {
	account := &models.Account{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "owner@test.com",
	}

	suite.mockAccountRepo.EXPECT().Update(account).Return(nil)

	req := &service.UpdateProfileRequest{
		FirstName:   "Dana",
		LastName:    "Owner",
		CompanyName: "Acme GmbH",
		PhoneNumber: "+49-30-555-0100",
	}
	profile, err := suite.accountService.UpdateProfile(account, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Dana", profile.FirstName)
	assert.Equal(suite.T(), "Acme GmbH", profile.CompanyName)
	assert.Empty(suite.T(), profile.PendingEmail)
	assert.Nil(suite.T(), account.EmailVerificationToken)
}

// TestUpdateProfileStagesEmailChange tests that a new email goes to
// PendingEmail instead of replacing the login email directly.
func (suite *AccountServiceTestSuite) TestUpdateProfileStagesEmailChange() {
	account := &models.Account{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "old@test.com",
	}

	suite.mockAccountRepo.EXPECT().Update(account).Return(nil)

	req := &service.UpdateProfileRequest{Email: "new@test.com"}
	profile, err := suite.accountService.UpdateProfile(account, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "old@test.com", profile.Email)
	assert.Equal(suite.T(), "new@test.com", profile.PendingEmail)
	assert.NotNil(suite.T(), account.EmailVerificationToken)
}

// TestOwnerContact tests the label contact projection
func (suite *AccountServiceTestSuite) TestOwnerContact() {
	owner := &models.Account{
		Email:       "office@acme.example.com",
		CompanyName: "Acme GmbH",
		PhoneNumber: "+49-30-555-0100",
	}

	contact := suite.accountService.OwnerContact(owner)

	assert.Equal(suite.T(), "Acme GmbH", contact.CompanyName)
	assert.Equal(suite.T(), "+49-30-555-0100", contact.Phone)
	assert.Equal(suite.T(), "office@acme.example.com", contact.Email)
}

// TestAccountServiceTestSuite runs the test suite
func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
