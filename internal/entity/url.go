// Package entity defines the entities and errors used in the application.
// It includes the URL struct, which represents a short code mapped to its
// original URL together with the click statistics of that original URL.
package entity

import "errors"

var (
	// ErrShortCodeExists is returned when attempting to register a custom short code that is already taken.
	ErrShortCodeExists = errors.New("short code exists")
	// ErrURLNotFound is returned when no URL is registered under the specified short code.
	ErrURLNotFound = errors.New("url not found")
)

// URL represents a shortened URL.
type URL struct {
	ShortCode   string // ShortCode is the token the original URL is reachable by.
	OriginalURL string // OriginalURL is the full URL that the short code resolves to.
	URLStats           // URLStats contains statistics about the original URL.
}

// URLStats contains statistics related to an original URL.
//
// The statistics belong to the original URL, not to the short code: every
// short code pointing at the same original URL observes the same counter.
type URLStats struct {
	AccessCount int64 // AccessCount is the number of counted resolves of any short code of the URL.
}
