// Package registry implements the in-memory mapping between short codes and
// original URLs together with per-URL click accounting.
package registry

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/vadimbarashkov/tinyurl/internal/entity"
)

// ErrTokenSpaceExhausted is returned when every generated short code value is taken.
var ErrTokenSpaceExhausted = errors.New("short code space exhausted")

// Registry owns the short code to original URL mapping and the click counters
// of original URLs. All methods are safe for concurrent use.
type Registry struct {
	mu sync.Mutex

	// counts holds the click counter of every original URL that was ever
	// registered. Entries are never removed.
	counts map[string]int64
	// urls maps live short codes to original URLs.
	urls map[string]string
	// order keeps live short codes in registration order.
	order []string
	// generated is the number of live short codes in generated form.
	generated int

	gen TokenGenerator
}

// Option configures a Registry.
type Option func(*Registry)

// WithGenerator replaces the default short code generator.
func WithGenerator(gen TokenGenerator) Option {
	return func(r *Registry) {
		r.gen = gen
	}
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		counts: make(map[string]int64),
		urls:   make(map[string]string),
		gen:    NewHexGenerator(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register maps a short code to originalURL and returns the new mapping.
//
// A customCode that is not blank after trimming is stored exactly as given and
// fails with entity.ErrShortCodeExists when taken. Otherwise a short code is generated,
// retrying until an unused one comes up, so registering the same URL twice
// yields two different short codes.
func (r *Registry) Register(originalURL, customCode string) (*entity.URL, error) {
	const op = "registry.Registry.Register"

	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(customCode) != "" {
		if _, ok := r.urls[customCode]; ok {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrShortCodeExists)
		}

		return r.insert(customCode, originalURL), nil
	}

	if r.generated >= tokenSpace {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenSpaceExhausted)
	}

	for {
		code, err := r.gen.Generate()
		if err != nil {
			return nil, fmt.Errorf("%s: failed to generate short code: %w", op, err)
		}

		if _, ok := r.urls[code]; !ok {
			return r.insert(code, originalURL), nil
		}
	}
}

// insert must be called with r.mu held.
func (r *Registry) insert(code, originalURL string) *entity.URL {
	r.urls[code] = originalURL
	r.order = append(r.order, code)

	if isGeneratedForm(code) {
		r.generated++
	}

	if _, ok := r.counts[originalURL]; !ok {
		r.counts[originalURL] = 0
	}

	return r.url(code, originalURL)
}

func (r *Registry) url(code, originalURL string) *entity.URL {
	return &entity.URL{
		ShortCode:   code,
		OriginalURL: originalURL,
		URLStats: entity.URLStats{
			AccessCount: r.counts[originalURL],
		},
	}
}

// Resolve returns the URL registered under shortCode. When count is true the
// click counter of the original URL is incremented before it is read.
func (r *Registry) Resolve(shortCode string, count bool) (*entity.URL, error) {
	const op = "registry.Registry.Resolve"

	r.mu.Lock()
	defer r.mu.Unlock()

	originalURL, ok := r.urls[shortCode]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
	}

	if count {
		r.counts[originalURL]++
	}

	return r.url(shortCode, originalURL), nil
}

// Delete removes shortCode. Counters are left untouched and deleting an
// unknown short code is a no-op.
func (r *Registry) Delete(shortCode string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.urls[shortCode]; !ok {
		return
	}

	delete(r.urls, shortCode)

	if isGeneratedForm(shortCode) {
		r.generated--
	}

	for i, code := range r.order {
		if code == shortCode {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// List returns every live mapping in registration order.
func (r *Registry) List() []entity.URL {
	r.mu.Lock()
	defer r.mu.Unlock()

	urls := make([]entity.URL, 0, len(r.order))
	for _, code := range r.order {
		urls = append(urls, *r.url(code, r.urls[code]))
	}

	return urls
}
