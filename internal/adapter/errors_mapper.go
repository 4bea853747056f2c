package adapter

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// mapVerifyResult turns the outcome of a resty call into the adapter's
// error kinds. Only an exact 200 counts as acceptance: 201, 204 or any
// redirect the client did not resolve are rejections.
func mapVerifyResult(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCallFailed, err)
	}
	if statusCode(resp) == 0 {
		return fmt.Errorf("%w: empty response", ErrCallFailed)
	}

	if resp.StatusCode() == http.StatusOK {
		return nil
	}

	return &StatusError{StatusCode: resp.StatusCode()}
}

// statusCode returns 0 when no HTTP response was received.
func statusCode(resp *resty.Response) int {
	if resp == nil || resp.RawResponse == nil {
		return 0
	}
	return resp.StatusCode()
}
