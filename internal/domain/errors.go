package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.

var (
	// ErrNotFound marks lookups of records that do not exist, for
	// callers that branch on it with errors.Is.
	ErrNotFound = errors.New("record not found")

	// Auth errors
	ErrBadCredentials = errors.New("invalid username or password")
	ErrUserDisabled   = errors.New("user account is disabled")
	ErrUnknownRoute   = errors.New("route has no permission mapping")

	// Assistant errors
	ErrInvalidAPIKey    = errors.New("upstream rejected the API credential")
	ErrRateLimited      = errors.New("upstream rate limit exceeded")
	ErrPayloadTooLarge  = errors.New("attachment payload too large for upstream")
	ErrUpstream         = errors.New("upstream API error")
	ErrUpstreamOffline  = errors.New("connection to the AI backend failed")
	ErrRequestInFlight  = errors.New("a chat request is already pending")
)
