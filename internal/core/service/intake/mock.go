package intake

import (
	"context"
	"file-intake/internal/core/destination"
	"file-intake/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockIntakeService is a mock implementation of IntakeService
type MockIntakeService struct {
	mock.Mock
}

func (m *MockIntakeService) Submit(ctx context.Context, req domain.UploadRequest) domain.UploadResult {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.UploadResult)
}

func (m *MockIntakeService) List(ctx context.Context, destinationOverride, subfolderOverride string) ([]domain.StoredFile, error) {
	args := m.Called(ctx, destinationOverride, subfolderOverride)
	return args.Get(0).([]domain.StoredFile), args.Error(1)
}

func (m *MockIntakeService) Resolve(filename, destinationOverride, subfolderOverride string) (string, error) {
	args := m.Called(filename, destinationOverride, subfolderOverride)
	return args.String(0), args.Error(1)
}

func (m *MockIntakeService) Location() destination.Spec {
	args := m.Called()
	return args.Get(0).(destination.Spec)
}

func (m *MockIntakeService) AllowedExtensions() []string {
	args := m.Called()
	return args.Get(0).([]string)
}
