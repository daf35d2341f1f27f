package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mrftrack/internal/domain"
	"mrftrack/internal/service"
	"mrftrack/mocks"
)

func newWasteService() (*mocks.MockIntakeRepo, *mocks.MockSortedRepo, *mocks.MockCategoryRepo, service.WasteService) {
	intakeRepo := new(mocks.MockIntakeRepo)
	sortedRepo := new(mocks.MockSortedRepo)
	categoryRepo := new(mocks.MockCategoryRepo)
	return intakeRepo, sortedRepo, categoryRepo, service.NewWasteService(intakeRepo, sortedRepo, categoryRepo)
}

func TestCreateIntake_SetsOperator(t *testing.T) {
	intakeRepo, _, _, svc := newWasteService()

	intakeRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	operatorID := uuid.New()
	intake, err := svc.CreateIntake(context.Background(), operatorID, service.CreateIntakeInput{
		MRFID:     "MRF-001",
		VehicleID: "KA-01-1234",
		Weight:    250,
	})

	require.NoError(t, err)
	assert.Equal(t, operatorID, intake.OperatorID)
	assert.Equal(t, "MRF-001", intake.MRFID)
}

func TestCreateSorted_MissingIntakeRejected(t *testing.T) {
	intakeRepo, sortedRepo, _, svc := newWasteService()

	intakeID := uuid.New()
	intakeRepo.On("GetByID", mock.Anything, intakeID).Return(nil, domain.ErrNotFound)

	sorted, err := svc.CreateSorted(context.Background(), uuid.New(), service.CreateSortedInput{
		IntakeID: intakeID,
		Category: "Plastic",
		Weight:   40,
	})

	assert.Nil(t, sorted)
	assert.ErrorIs(t, err, domain.ErrIntakeNotFound)
	sortedRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSorted_Success(t *testing.T) {
	intakeRepo, sortedRepo, _, svc := newWasteService()

	intakeID := uuid.New()
	intakeRepo.On("GetByID", mock.Anything, intakeID).Return(&domain.IntakeEvent{ID: intakeID}, nil)
	sortedRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	sorted, err := svc.CreateSorted(context.Background(), uuid.New(), service.CreateSortedInput{
		IntakeID: intakeID,
		Category: "Plastic",
		Weight:   40,
	})

	require.NoError(t, err)
	assert.Equal(t, intakeID, sorted.IntakeID)
	assert.Equal(t, "Plastic", sorted.Category)
}

func TestCreateCategory_Duplicate(t *testing.T) {
	_, _, categoryRepo, svc := newWasteService()

	categoryRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateCategory)

	category, err := svc.CreateCategory(context.Background(), service.CreateCategoryInput{
		Name: "Plastic",
	})

	assert.Nil(t, category)
	assert.ErrorIs(t, err, domain.ErrDuplicateCategory)
}
