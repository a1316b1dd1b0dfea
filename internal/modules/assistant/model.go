package assistant

import "errors"

// ErrInsufficientCredits is returned when a user has no assistant credits left
// for the current month.
var ErrInsufficientCredits = errors.New("insufficient credits")

// ErrNotConfigured is returned when no Gemini credential is available.
var ErrNotConfigured = errors.New("assistant: not configured")

// DefaultCredits is the number of assistant questions granted per month.
const DefaultCredits = 50
