package entity

// LookupState tells whether a short code has been looked up and what was found.
type LookupState int

const (
	// LookupUnqueried means no lookup has been performed yet.
	LookupUnqueried LookupState = iota
	// LookupNotFound means the looked up short code is not registered.
	LookupNotFound
	// LookupFound means the looked up short code resolved to a URL.
	LookupFound
)

func (s LookupState) String() string {
	switch s {
	case LookupUnqueried:
		return "unqueried"
	case LookupNotFound:
		return "not_found"
	case LookupFound:
		return "found"
	default:
		return "unknown"
	}
}

// Lookup is the result of the most recent short code lookup.
// URL is set only when State is LookupFound.
type Lookup struct {
	State     LookupState
	ShortCode string
	URL       *URL
}

// Unqueried returns a Lookup for which no query was performed.
func Unqueried() Lookup {
	return Lookup{State: LookupUnqueried}
}

// NotFound returns a Lookup of a short code that is not registered.
func NotFound(shortCode string) Lookup {
	return Lookup{State: LookupNotFound, ShortCode: shortCode}
}

// Found returns a Lookup of a short code that resolved to url.
func Found(url *URL) Lookup {
	return Lookup{State: LookupFound, ShortCode: url.ShortCode, URL: url}
}

// IsFound reports whether the lookup resolved to a URL.
func (l Lookup) IsFound() bool {
	return l.State == LookupFound
}

// IsNotFound reports whether the looked up short code is not registered.
func (l Lookup) IsNotFound() bool {
	return l.State == LookupNotFound
}
