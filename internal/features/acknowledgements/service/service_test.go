package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"shipment-monitor/internal/core/clock"
	"shipment-monitor/internal/features/acknowledgements/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAcknowledgementRepository is a mock implementation of ports.AcknowledgementRepository
type MockAcknowledgementRepository struct {
	mock.Mock
}

func (m *MockAcknowledgementRepository) Save(ctx context.Context, ack *domain.Acknowledgement) error {
	args := m.Called(ctx, ack)
	return args.Error(0)
}

func (m *MockAcknowledgementRepository) Get(ctx context.Context, shipmentID string) (*domain.Acknowledgement, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Acknowledgement), args.Error(1)
}

func (m *MockAcknowledgementRepository) Clear(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockShipmentLookup is a mock implementation of ports.ShipmentLookup
type MockShipmentLookup struct {
	mock.Mock
}

func (m *MockShipmentLookup) ShipmentExists(ctx context.Context, shipmentID string) error {
	args := m.Called(ctx, shipmentID)
	return args.Error(0)
}

var (
	fixedNow      = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	errNoShipment = errors.New("shipment not found")
)

func setupService() (*AcknowledgementServiceImpl, *MockAcknowledgementRepository, *MockShipmentLookup) {
	repo := new(MockAcknowledgementRepository)
	lookup := new(MockShipmentLookup)
	return NewAcknowledgementService(repo, lookup, clock.Fixed(fixedNow)), repo, lookup
}

func TestAcknowledgementService_Acknowledge(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		service, repo, lookup := setupService()
		want := &domain.Acknowledgement{ShipmentID: "SHP-1", User: "ops.lead", At: fixedNow}

		lookup.On("ShipmentExists", ctx, "SHP-1").Return(nil).Once()
		repo.On("Save", ctx, want).Return(nil).Once()

		ack, err := service.Acknowledge(ctx, " SHP-1", "ops.lead ")
		require.NoError(t, err)
		assert.Equal(t, want, ack)
		repo.AssertExpectations(t)
		lookup.AssertExpectations(t)
	})

	t.Run("MissingUser", func(t *testing.T) {
		service, repo, lookup := setupService()

		ack, err := service.Acknowledge(ctx, "SHP-1", "")
		assert.ErrorIs(t, err, domain.ErrUserRequired)
		assert.Nil(t, ack)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		lookup.AssertNotCalled(t, "ShipmentExists", mock.Anything, mock.Anything)
	})

	t.Run("UnknownShipment", func(t *testing.T) {
		service, repo, lookup := setupService()
		lookup.On("ShipmentExists", ctx, "SHP-404").Return(errNoShipment).Once()

		ack, err := service.Acknowledge(ctx, "SHP-404", "ops.lead")
		assert.ErrorIs(t, err, errNoShipment)
		assert.Nil(t, ack)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("RepoError", func(t *testing.T) {
		service, repo, lookup := setupService()
		lookup.On("ShipmentExists", ctx, "SHP-1").Return(nil).Once()
		repo.On("Save", ctx, mock.AnythingOfType("*domain.Acknowledgement")).Return(errors.New("redis down")).Once()

		ack, err := service.Acknowledge(ctx, "SHP-1", "ops.lead")
		assert.Error(t, err)
		assert.Nil(t, ack)
		repo.AssertExpectations(t)
	})
}

func TestAcknowledgementService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		service, repo, _ := setupService()
		want := &domain.Acknowledgement{ShipmentID: "SHP-1", User: "ops.lead", At: fixedNow}
		repo.On("Get", ctx, "SHP-1").Return(want, nil).Once()

		ack, err := service.Get(ctx, "SHP-1")
		assert.NoError(t, err)
		assert.Equal(t, want, ack)
	})

	t.Run("NotAcknowledged", func(t *testing.T) {
		service, repo, _ := setupService()
		repo.On("Get", ctx, "SHP-2").Return(nil, nil).Once()

		ack, err := service.Get(ctx, "SHP-2")
		assert.NoError(t, err)
		assert.Nil(t, ack)
	})

	t.Run("RepoError", func(t *testing.T) {
		service, repo, _ := setupService()
		repo.On("Get", ctx, "SHP-1").Return(nil, errors.New("redis down")).Once()

		ack, err := service.Get(ctx, "SHP-1")
		assert.Error(t, err)
		assert.Nil(t, ack)
	})
}

func TestAcknowledgementService_Clear(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		service, repo, _ := setupService()
		repo.On("Clear", ctx).Return(4, nil).Once()

		n, err := service.Clear(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 4, n)
		repo.AssertExpectations(t)
	})

	t.Run("RepoError", func(t *testing.T) {
		service, repo, _ := setupService()
		repo.On("Clear", ctx).Return(1, errors.New("redis down")).Once()

		n, err := service.Clear(ctx)
		assert.Error(t, err)
		assert.Equal(t, 1, n)
	})
}
