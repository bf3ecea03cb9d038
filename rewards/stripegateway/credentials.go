package stripegateway

import (
	"encoding/json"
	"strings"

	"encore.dev/beta/errs"
)

// credentialKeys are the JSON property names a secret blob may carry the
// API key under, checked in order.
var credentialKeys = []string{"apiKey", "api_key", "secretKey", "secret_key"}

// ParseCredential resolves the provider API key from a secret value that is
// either the bare key or a JSON object holding it under a known name.
func ParseCredential(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &errs.Error{Code: errs.Unauthenticated, Message: "provider credential is empty"}
	}

	if !strings.HasPrefix(trimmed, "{") {
		return trimmed, nil
	}

	var blob map[string]any
	if err := json.Unmarshal([]byte(trimmed), &blob); err != nil {
		return "", &errs.Error{Code: errs.Unauthenticated, Message: "provider credential is not valid JSON"}
	}

	for _, name := range credentialKeys {
		if v, ok := blob[name].(string); ok && v != "" {
			return v, nil
		}
	}

	return "", &errs.Error{Code: errs.Unauthenticated, Message: "provider credential JSON carries no known key"}
}
