// Package metadata normalizes caller-supplied tracking fields into the
// shape the payment provider accepts on its resources.
package metadata

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"encore.dev/rlog"
)

// Provider limits for metadata attached to a single resource.
const (
	MaxEntries     = 50
	MaxKeyLength   = 40
	MaxValueLength = 500
)

// Sanitize produces a provider-safe copy of md: nil values are dropped, the
// rest are coerced to strings, at most MaxEntries entries survive, and keys
// and values are prefix-truncated to MaxKeyLength and MaxValueLength.
//
// Sanitize never fails; it degrades by truncation. When the entry count
// overflows, the surviving entries are the first MaxEntries in sorted key
// order and the loss is logged.
func Sanitize(md map[string]any) map[string]string {
	keys := make([]string, 0, len(md))
	for k, v := range md {
		if v == nil {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(keys) > MaxEntries {
		rlog.Warn("tracking metadata truncated",
			"entries", len(keys), "max_entries", MaxEntries)
		keys = keys[:MaxEntries]
	}

	out := make(map[string]string, len(keys))
	for _, k := range keys {
		out[truncate(k, MaxKeyLength)] = truncate(stringify(md[k]), MaxValueLength)
	}
	return out
}

// Extract returns the string form of the field named key, falling back to
// the alternate spelling alt. The second return is false when neither is
// present or both are nil.
func Extract(md map[string]any, key, alt string) (string, bool) {
	for _, name := range []string{key, alt} {
		if name == "" {
			continue
		}
		if v, ok := md[name]; ok && v != nil {
			return stringify(v), true
		}
	}
	return "", false
}

// TenantID extracts the tenant identifier from raw tracking metadata.
func TenantID(md map[string]any) (string, bool) {
	return Extract(md, "tenantId", "tenant_id")
}

// UserID extracts the user identifier from raw tracking metadata.
func UserID(md map[string]any) (string, bool) {
	return Extract(md, "userId", "user_id")
}

// RewardID extracts the reward identifier from raw tracking metadata.
func RewardID(md map[string]any) (string, bool) {
	return Extract(md, "rewardId", "reward_id")
}

// Merge folds mds into a single sanitized mapping. Later mappings override
// earlier ones on key collision; a later nil value erases the key entirely.
// Nil mappings are skipped.
func Merge(mds ...map[string]any) map[string]string {
	merged := make(map[string]any)
	for _, md := range mds {
		for k, v := range md {
			merged[k] = v
		}
	}
	return Sanitize(merged)
}

// stringify coerces a metadata value to its canonical string form. Composite
// values are JSON-encoded.
func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	default:
		if raw, err := json.Marshal(v); err == nil {
			return string(raw)
		}
		return fmt.Sprintf("%v", v)
	}
}

// truncate keeps at most max characters of s without splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
