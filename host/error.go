// Package host defines the interface boundary of the media-player framework the bridge targets.
package host

import "fmt"

// Standardized fatal error codes, the only error vocabulary the host ever sees.
const (
	ErrAborted         = 1
	ErrNetwork         = 2
	ErrDecode          = 3
	ErrSrcNotSupported = 4
	ErrEncrypted       = 5
)

// Error is the standardized fatal-error record surfaced to the host framework.
// Reporting one terminates playback.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e Error) Error() string {
	return fmt.Sprintf("media error %d: %s", e.Code, e.Message)
}

// CanPlay is the host's tri-state source compatibility answer.
type CanPlay string

const (
	// CanPlayProbably indicates a definite MIME-type match.
	CanPlayProbably CanPlay = "probably"
	// CanPlayMaybe indicates a recognized file extension without a MIME match.
	CanPlayMaybe CanPlay = "maybe"
	// CanPlayNo indicates the source cannot be handled.
	CanPlayNo CanPlay = ""
)
