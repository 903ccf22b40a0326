package http

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vadimbarashkov/tinyurl/internal/entity"
)

type mockURLUseCase struct {
	mock.Mock
}

func (uc *mockURLUseCase) ShortenURL(ctx context.Context, originalURL, customCode string) (*entity.URL, error) {
	args := uc.Called(ctx, originalURL, customCode)
	url, _ := args.Get(0).(*entity.URL)
	return url, args.Error(1)
}

func (uc *mockURLUseCase) ResolveShortCode(ctx context.Context, shortCode string) (*entity.URL, error) {
	args := uc.Called(ctx, shortCode)
	url, _ := args.Get(0).(*entity.URL)
	return url, args.Error(1)
}

func (uc *mockURLUseCase) GetURLStats(ctx context.Context, shortCode string) (*entity.URL, error) {
	args := uc.Called(ctx, shortCode)
	url, _ := args.Get(0).(*entity.URL)
	return url, args.Error(1)
}

func (uc *mockURLUseCase) DeactivateURL(ctx context.Context, shortCode string) error {
	args := uc.Called(ctx, shortCode)
	return args.Error(0)
}

func (uc *mockURLUseCase) ListURLs(ctx context.Context) ([]entity.URL, error) {
	args := uc.Called(ctx)
	urls, _ := args.Get(0).([]entity.URL)
	return urls, args.Error(1)
}
