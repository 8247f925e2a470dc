package adapter

import "errors"

// Sentinel errors produced by mapHTTPError. The save scheduler keys its
// retry and cooldown policy off these three classes.
var (
	// ErrRateLimited wraps 429 and 503 responses. A rate-limited push is
	// never retried immediately; it switches the scheduler into cooldown.
	ErrRateLimited = errors.New("remote store rate limited")

	// ErrPermanent wraps 4xx responses other than 429. The offending entry
	// is logged and dropped; siblings in the same batch still go out.
	ErrPermanent = errors.New("remote store rejected request")

	// ErrTransient wraps unexpected 5xx responses. Transient failures are
	// retried a bounded number of times with linear backoff.
	ErrTransient = errors.New("remote store temporary failure")
)

// IsRateLimited reports whether err carries a rate-limit signal.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsPermanent reports whether err is a permanent rejection that must not be
// retried automatically.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrPermanent)
}
