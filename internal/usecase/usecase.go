package usecase

import (
	"context"
	"fmt"

	"github.com/vadimbarashkov/tinyurl/internal/entity"
)

type urlRegistry interface {
	Register(originalURL, customCode string) (*entity.URL, error)
	Resolve(shortCode string, count bool) (*entity.URL, error)
	Delete(shortCode string)
	List() []entity.URL
}

type URLUseCase struct {
	registry urlRegistry
}

func New(registry urlRegistry) *URLUseCase {
	return &URLUseCase{
		registry: registry,
	}
}

func (uc *URLUseCase) ShortenURL(ctx context.Context, originalURL, customCode string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.ShortenURL"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	url, err := uc.registry.Register(originalURL, customCode)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to shorten url: %w", op, err)
	}

	return url, nil
}

func (uc *URLUseCase) ResolveShortCode(ctx context.Context, shortCode string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.ResolveShortCode"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	url, err := uc.registry.Resolve(shortCode, true)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to resolve short code: %w", op, err)
	}

	return url, nil
}

func (uc *URLUseCase) DeactivateURL(ctx context.Context, shortCode string) error {
	const op = "usecase.URLUseCase.DeactivateURL"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	uc.registry.Delete(shortCode)

	return nil
}

func (uc *URLUseCase) GetURLStats(ctx context.Context, shortCode string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.GetURLStats"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	url, err := uc.registry.Resolve(shortCode, false)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get url stats: %w", op, err)
	}

	return url, nil
}

func (uc *URLUseCase) ListURLs(ctx context.Context) ([]entity.URL, error) {
	const op = "usecase.URLUseCase.ListURLs"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return uc.registry.List(), nil
}
