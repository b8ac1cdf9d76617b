package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/keylock/models"
)

// contentKeys are tried in this order; the first usable one wins. A body
// holding more than one of them is ambiguous and resolved only by order.
var contentKeys = []string{"secret", "content", "message"}

// decodeShareResponse reads the create response. Only "url" is required;
// "id", "expires_at" and "max_views" are picked up when they parse.
func decodeShareResponse(body []byte) (models.ShareResponse, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return models.ShareResponse{}, fmt.Errorf("%w: decode create response: %w", ErrMalformedResponse, err)
	}

	var out models.ShareResponse
	if raw, ok := fields["url"]; ok {
		_ = json.Unmarshal(raw, &out.URL)
	}
	out.URL = strings.TrimSpace(out.URL)
	if out.URL == "" {
		return models.ShareResponse{}, fmt.Errorf("%w: no url in create response", ErrMalformedResponse)
	}

	if raw, ok := fields["id"]; ok {
		_ = json.Unmarshal(raw, &out.ID)
	}
	if raw, ok := fields["max_views"]; ok {
		_ = json.Unmarshal(raw, &out.MaxViews)
	}
	if raw, ok := fields["expires_at"]; ok {
		var s string
		if json.Unmarshal(raw, &s) == nil {
			if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
				out.ExpiresAt = &ts
			}
		}
	}

	return out, nil
}

// extractContent pulls the secret text out of a redeem response. Keys from
// contentKeys are tried first; a key with a null, empty, false or zero value
// is skipped. Without a match the whole body is the content: a JSON string
// yields its value, any other JSON value its compact text, and a body that
// is not JSON at all is returned as is.
func extractContent(body []byte) (string, *int, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return "", nil, fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}

	var whole any
	if err := json.Unmarshal(trimmed, &whole); err != nil {
		return string(body), nil, nil
	}

	fields, ok := whole.(map[string]any)
	if !ok {
		return jsonText(whole), nil, nil
	}

	remaining := remainingViews(fields)
	for _, key := range contentKeys {
		value, ok := fields[key]
		if !ok || !truthy(value) {
			continue
		}
		return jsonText(value), remaining, nil
	}

	return jsonText(whole), remaining, nil
}

func remainingViews(fields map[string]any) *int {
	n, ok := fields["remaining_views"].(float64)
	if !ok {
		return nil
	}
	v := int(n)
	return &v
}

func truthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case string:
		return value != ""
	case bool:
		return value
	case float64:
		return value != 0
	default:
		return true
	}
}

func jsonText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimRight(buf.String(), "\n")
}
