package usecase

import (
	"github.com/stretchr/testify/mock"
	"github.com/vadimbarashkov/tinyurl/internal/entity"
)

type mockURLRegistry struct {
	mock.Mock
}

func (r *mockURLRegistry) Register(originalURL, customCode string) (*entity.URL, error) {
	args := r.Called(originalURL, customCode)
	url, _ := args.Get(0).(*entity.URL)
	return url, args.Error(1)
}

func (r *mockURLRegistry) Resolve(shortCode string, count bool) (*entity.URL, error) {
	args := r.Called(shortCode, count)
	url, _ := args.Get(0).(*entity.URL)
	return url, args.Error(1)
}

func (r *mockURLRegistry) Delete(shortCode string) {
	r.Called(shortCode)
}

func (r *mockURLRegistry) List() []entity.URL {
	args := r.Called()
	urls, _ := args.Get(0).([]entity.URL)
	return urls
}
