package commands_test

import (
	"errors"
	"testing"

	"walt/internal/core/application/usecases/commands"
	"walt/internal/core/domain/model/city"
	"walt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCityCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateCityCommand("Tel-Aviv")
	require.NoError(t, err)

	var captured *city.City
	mockRepo := new(MockCityRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCityUoWFactory)

	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CityRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByName", ctx, "Tel-Aviv").
			Return(nil, errs.NewObjectNotFoundError("city", "Tel-Aviv")).Once(),
		mockRepo.On("Add", ctx, mock.MatchedBy(func(c *city.City) bool {
			captured = c
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateCityCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.True(t, captured.ID().IsEqual(cmd.CityID()))
	assert.Equal(t, "Tel-Aviv", captured.Name())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateCityCommandHandler_Handle_DuplicateName(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateCityCommand("Haifa")
	require.NoError(t, err)
	existing, _ := city.NewCity("Haifa")

	mockRepo := new(MockCityRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCityUoWFactory)

	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CityRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByName", ctx, "Haifa").Return(existing, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateCityCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrCityAlreadyExists)
	mockRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	mockUoW.AssertExpectations(t)
}

func TestCreateCityCommandHandler_Handle_LookupError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateCityCommand("Haifa")
	require.NoError(t, err)
	lookupErr := errors.New("connection reset")

	mockRepo := new(MockCityRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCityUoWFactory)

	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CityRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByName", ctx, "Haifa").Return(nil, lookupErr).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateCityCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	assert.Equal(t, lookupErr, err)
	mockUoW.AssertExpectations(t)
}

func TestCreateCityCommandHandler_Handle_InvalidCommand(t *testing.T) {
	mockFactory := new(MockCityUoWFactory)
	handler := commands.NewCreateCityCommandHandler(mockFactory)

	err := handler.Handle(t.Context(), commands.CreateCityCommand{})

	require.ErrorIs(t, err, commands.ErrCreateCityCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}
