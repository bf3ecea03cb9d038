package idempotency

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// fragmentLen is the number of hex characters kept from the SHA-256 digest.
// 128 bits is far beyond collision range at our call volumes and keeps keys
// short enough to read in provider dashboards. The provider allows keys up
// to 255 characters.
const fragmentLen = 32

// DeriveKey builds a deterministic idempotency key for a provider call.
//
// The same operation tag and logically equal parameters always produce the
// same key, no matter how the parameter mappings were assembled: mapping
// keys are sorted before serialization, while sequence order is preserved
// because it is semantically meaningful. Any change to a leaf value changes
// the key.
//
// The function is total. Cyclic parameter values are the caller's
// responsibility: they do not make DeriveKey fail, but keys derived from
// them fall back to a Go-syntax rendering of the value.
func DeriveKey(operation string, params any) string {
	var b strings.Builder
	b.WriteString(operation)
	b.WriteByte(':')
	writeCanonical(&b, normalize(params))

	sum := sha256.Sum256([]byte(b.String()))
	return operation + "-" + hex.EncodeToString(sum[:])[:fragmentLen]
}

// normalize reduces params to JSON-shaped values (map[string]any, []any,
// json.Number, string, bool, nil) so a struct and the equivalent mapping
// canonicalize identically. Numbers stay as their literal text to avoid
// float64 rounding of large integers.
func normalize(params any) any {
	raw, err := json.Marshal(params)
	if err != nil {
		// Unserializable input (cycle, channel, ...): hash the Go-syntax
		// rendering instead of failing.
		return fmt.Sprintf("%#v", params)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return string(raw)
	}
	return v
}

// writeCanonical serializes a normalized value with mapping keys in
// ascending lexicographic order, giving a byte-identical form for logically
// equal structures.
func writeCanonical(b *strings.Builder, v any) {
	switch val := v.(type) {
	case nil:
		b.WriteString("null")
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(k))
			b.WriteByte(':')
			writeCanonical(b, val[k])
		}
		b.WriteByte('}')
	case []any:
		b.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCanonical(b, elem)
		}
		b.WriteByte(']')
	case json.Number:
		b.WriteString(val.String())
	case string:
		b.WriteString(strconv.Quote(val))
	case bool:
		b.WriteString(strconv.FormatBool(val))
	default:
		fmt.Fprintf(b, "%v", val)
	}
}
