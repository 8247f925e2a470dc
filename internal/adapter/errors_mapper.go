package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	switch {
	case code == http.StatusTooManyRequests || code == http.StatusServiceUnavailable:
		return fmt.Errorf("%w: http %d: %s", ErrRateLimited, code, body)
	case code >= http.StatusBadRequest && code < http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrPermanent, code, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrTransient, code, body)
	}
}
