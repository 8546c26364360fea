package service_test

import (
	"testing"
	"time"

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

// EmployeeServiceTestSuite defines the test suite for EmployeeService
type EmployeeServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockEmployeeRepo *mocks.MockEmployeeRepositoryInterface
	employeeService  *service.EmployeeService
	owner            *models.Account
}

// SetupTest sets up the test suite
func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEmployeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.employeeService = service.NewEmployeeService(suite.mockEmployeeRepo, validator.New())
	suite.owner = &models.Account{BaseModel: models.BaseModel{ID: uuid.New()}}
}

// TearDownTest cleans up after each test
func (suite *EmployeeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateEmployee tests creating an employee
func (suite *EmployeeServiceTestSuite) TestCreateEmployee() {
	req := &service.CreateEmployeeRequest{
		Name:  "Jane Smith",
		Email: "jane@test.com",
		Phone: "+49-30-555-0101",
	}

	suite.mockEmployeeRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(employee *models.Employee) error {
		assert.Equal(suite.T(), suite.owner.ID, employee.OwnerAccountID)
		assert.Equal(suite.T(), "Jane Smith", employee.Name)
		return nil
	})

	resp, err := suite.employeeService.Create(suite.owner, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Jane Smith", resp.Name)
	assert.Equal(suite.T(), "jane@test.com", resp.Email)
}

// TestCreateEmployeeValidation tests field validation
func (suite *EmployeeServiceTestSuite) TestCreateEmployeeValidation() {
	tests := []struct {
		name string
		req  *service.CreateEmployeeRequest
	}{
		{name: "missing name", req: &service.CreateEmployeeRequest{Email: "x@test.com"}},
		{name: "bad email", req: &service.CreateEmployeeRequest{Name: "Jane", Email: "not-an-email"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			resp, err := suite.employeeService.Create(suite.owner, tt.req)
			assert.Nil(suite.T(), resp)
			assert.Error(suite.T(), err)
		})
	}
}

// TestGetEmployeeNotFound tests the not-found translation
func (suite *EmployeeServiceTestSuite) TestGetEmployeeNotFound() {
	employeeID := uuid.New()
	suite.mockEmployeeRepo.EXPECT().GetByID(suite.owner.ID, employeeID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.employeeService.GetByID(suite.owner, employeeID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmployeeNotFound)
}

// TestListEmployees tests listing the directory
func (suite *EmployeeServiceTestSuite) TestListEmployees() {
	employees := []models.Employee{
		{BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()}, Name: "Alice"},
		{BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()}, Name: "Bob"},
	}
	suite.mockEmployeeRepo.EXPECT().GetByOwner(suite.owner.ID).Return(employees, nil)

	resp, err := suite.employeeService.List(suite.owner)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), "Alice", resp[0].Name)
}

// TestUpdateEmployee tests editing contact details
func (suite *EmployeeServiceTestSuite) TestUpdateEmployee() {
	employee := &models.Employee{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OwnerAccountID: suite.owner.ID,
		Name:           "Old Name",
	}

	suite.mockEmployeeRepo.EXPECT().GetByID(suite.owner.ID, employee.ID).Return(employee, nil)
	suite.mockEmployeeRepo.EXPECT().Update(employee).Return(nil)

	req := &service.UpdateEmployeeRequest{Name: "New Name", Phone: "+49-30-555-0102"}
	resp, err := suite.employeeService.Update(suite.owner, employee.ID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "New Name", resp.Name)
	assert.Equal(suite.T(), "+49-30-555-0102", resp.Phone)
}

// TestDeleteEmployee tests removal
func (suite *EmployeeServiceTestSuite) TestDeleteEmployee() {
	employeeID := uuid.New()
	suite.mockEmployeeRepo.EXPECT().Delete(suite.owner.ID, employeeID).Return(nil)

	assert.NoError(suite.T(), suite.employeeService.Delete(suite.owner, employeeID))
}

// TestDeleteEmployeeNotFound tests deleting a missing employee
func (suite *EmployeeServiceTestSuite) TestDeleteEmployeeNotFound() {
	employeeID := uuid.New()
	suite.mockEmployeeRepo.EXPECT().Delete(suite.owner.ID, employeeID).Return(gorm.ErrRecordNotFound)

	err := suite.employeeService.Delete(suite.owner, employeeID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmployeeNotFound)
}

// TestEmployeeServiceTestSuite runs the test suite
func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
