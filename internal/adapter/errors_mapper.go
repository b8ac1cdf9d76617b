package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody bounds how much of a rejection body ends up in error text.
const maxErrorBody = 512

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return &StatusError{StatusCode: resp.StatusCode(), Body: truncateBody(body)}
}

// truncateBody cuts body to maxErrorBody bytes without splitting a rune.
func truncateBody(body string) string {
	if len(body) <= maxErrorBody {
		return body
	}

	cut := maxErrorBody
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return body[:cut] + "..."
}

// redactRequestError drops the request URL from a transport error. The URL of
// a fetch carries the secret reference, which must not reach logs or error
// text.
func redactRequestError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", strings.ToLower(urlErr.Op), urlErr.Err)
	}
	return err
}
