package services

import (
	"context"

	"github.com/Tomas-vilte/MateChangelog/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockLogFetcher struct {
	mock.Mock
}

func (m *MockLogFetcher) FetchLog(ctx context.Context, opts models.LogOptions) (string, error) {
	args := m.Called(ctx, opts)
	return args.String(0), args.Error(1)
}
