package wellness

import (
	"errors"
	"fmt"
)

// UpstreamError is returned by clients when the remote API answered with a non-2xx status.
type UpstreamError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s request failed: status=%d body=%s", e.Service, e.StatusCode, e.Message)
}

// IsUpstreamError reports whether err carries an *UpstreamError.
func IsUpstreamError(err error) bool {
	var upstream *UpstreamError
	return errors.As(err, &upstream)
}
