package intake_test

import (
	"context"
	"errors"
	"file-intake/internal/adapters/storage"
	"file-intake/internal/core/destination"
	"file-intake/internal/core/domain"
	"file-intake/internal/core/service/intake"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIntakeService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("default location", func(t *testing.T) {
		// Arrange
		mockStorage := storage.NewMockStorage()
		service := intake.NewIntakeService(mockStorage, destination.NewResolver(""), nil, nil, flatOptions("/data"), newLogger())
		files := []domain.StoredFile{{Name: "a.txt", SizeBytes: 1, ModifiedAt: time.Now()}}

		mockStorage.On("List", mock.Anything, "/data").Return(files, nil)

		// Act
		got, err := service.List(ctx, "", "")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, files, got)
		mockStorage.AssertExpectations(t)
	})

	t.Run("destination and subfolder overrides", func(t *testing.T) {
		// Arrange
		mockStorage := storage.NewMockStorage()
		service := intake.NewIntakeService(mockStorage, destination.NewResolver(""), nil, nil, flatOptions("/data"), newLogger())

		mockStorage.On("List", mock.Anything, "/Volumes/main/default/uploads/q3").Return([]domain.StoredFile(nil), nil)

		// Act
		got, err := service.List(ctx, "main.default.uploads", "q3")

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("invalid destination", func(t *testing.T) {
		// Arrange
		mockStorage := storage.NewMockStorage()
		service := intake.NewIntakeService(mockStorage, destination.NewResolver(""), nil, nil, flatOptions("/data"), newLogger())

		// Act
		got, err := service.List(ctx, "a.b", "")

		// Assert
		require.ErrorIs(t, err, domain.ErrInvalidDestinationFormat)
		assert.Nil(t, got)
		mockStorage.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("storage error", func(t *testing.T) {
		// Arrange
		mockStorage := storage.NewMockStorage()
		service := intake.NewIntakeService(mockStorage, destination.NewResolver(""), nil, nil, flatOptions("/data"), newLogger())
		storageErr := errors.New("connection refused")

		mockStorage.On("List", mock.Anything, "/data").Return([]domain.StoredFile(nil), storageErr)

		// Act
		_, err := service.List(ctx, "", "")

		// Assert
		require.ErrorIs(t, err, domain.ErrStorage)
		require.ErrorIs(t, err, storageErr)
	})
}

func TestIntakeService_Resolve(t *testing.T) {
	service := intake.NewIntakeService(storage.NewMockStorage(), destination.NewResolver("/Volumes"), nil, nil, flatOptions("/data"), newLogger())

	t.Run("flat root", func(t *testing.T) {
		got, err := service.Resolve("report.pdf", "", "")
		require.NoError(t, err)
		assert.Equal(t, "/data/report.pdf", got)
	})

	t.Run("volume", func(t *testing.T) {
		got, err := service.Resolve("report.pdf", "main.default.uploads", "2026/q3")
		require.NoError(t, err)
		assert.Equal(t, "/Volumes/main/default/uploads/2026/q3/report.pdf", got)
	})

	t.Run("disallowed type", func(t *testing.T) {
		_, err := service.Resolve("virus.exe", "", "")
		require.ErrorIs(t, err, domain.ErrDisallowedType)
	})

	t.Run("invalid destination", func(t *testing.T) {
		_, err := service.Resolve("report.pdf", "main..uploads", "")
		require.ErrorIs(t, err, domain.ErrInvalidDestinationFormat)
	})

	t.Run("location and allow-list", func(t *testing.T) {
		assert.Equal(t, destination.Spec{Root: "/data"}, service.Location())
		assert.Contains(t, service.AllowedExtensions(), "pdf")
		assert.IsIncreasing(t, service.AllowedExtensions())
	})
}
