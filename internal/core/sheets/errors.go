package sheets

import "errors"

// Failure kinds for fetching and decoding a sheet. Callers match them with
// errors.Is; the wrapped message carries the diagnostic detail.
var (
	// ErrNetworkFailure is a transport error or a non-200 response.
	ErrNetworkFailure = errors.New("network failure")
	// ErrMalformedEnvelope is a body that cannot be unwrapped or decoded.
	ErrMalformedEnvelope = errors.New("malformed envelope")
	// ErrUnexpectedShape is a decoded payload without a table.rows path.
	ErrUnexpectedShape = errors.New("unexpected shape")
)

// Kind returns a short label for the failure kind of err, for logging.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNetworkFailure):
		return "network_failure"
	case errors.Is(err, ErrMalformedEnvelope):
		return "malformed_envelope"
	case errors.Is(err, ErrUnexpectedShape):
		return "unexpected_shape"
	default:
		return "unknown"
	}
}
