package idempotency

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keyPattern = regexp.MustCompile(`^[a-z0-9-]+-[0-9a-f]{32}$`)

func TestDeriveKey_Deterministic(t *testing.T) {
	testCases := []struct {
		name      string
		operation string
		params    any
	}{
		{
			name:      "flat_map",
			operation: "coupon",
			params:    map[string]any{"amount": 100, "currency": "usd"},
		},
		{
			name:      "nested_map",
			operation: "balance-credit",
			params: map[string]any{
				"customerId": "cus_1",
				"metadata":   map[string]any{"tenantId": "t1", "userId": "u1"},
			},
		},
		{
			name:      "sequence",
			operation: "promo-code",
			params:    map[string]any{"codes": []string{"a", "b", "c"}},
		},
		{
			name:      "nil_params",
			operation: "coupon",
			params:    nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			first := DeriveKey(tc.operation, tc.params)
			second := DeriveKey(tc.operation, tc.params)

			assert.Equal(t, first, second)
			assert.Regexp(t, keyPattern, first)
			assert.LessOrEqual(t, len(first), 255)
		})
	}
}

func TestDeriveKey_MappingOrderIndependent(t *testing.T) {
	// A struct and the equivalent mapping must canonicalize identically:
	// callers assemble the same logical parameters through different paths.
	type creditParams struct {
		CustomerID string         `json:"customerId"`
		Amount     int64          `json:"amount"`
		Metadata   map[string]any `json:"metadata"`
	}

	fromStruct := DeriveKey("balance-credit", creditParams{
		CustomerID: "cus_1",
		Amount:     1000,
		Metadata:   map[string]any{"tenantId": "t1"},
	})
	fromMap := DeriveKey("balance-credit", map[string]any{
		"metadata":   map[string]any{"tenantId": "t1"},
		"amount":     1000,
		"customerId": "cus_1",
	})

	assert.Equal(t, fromStruct, fromMap)
}

func TestDeriveKey_SequenceOrderSensitive(t *testing.T) {
	forward := DeriveKey("promo-code", map[string]any{"codes": []string{"a", "b"}})
	reversed := DeriveKey("promo-code", map[string]any{"codes": []string{"b", "a"}})

	assert.NotEqual(t, forward, reversed)
}

func TestDeriveKey_LeafValueSensitive(t *testing.T) {
	base := DeriveKey("coupon", map[string]any{"amount": 100})

	assert.NotEqual(t, base, DeriveKey("coupon", map[string]any{"amount": 101}))
	assert.NotEqual(t, base, DeriveKey("coupon", map[string]any{"amount": "100"}))
	assert.NotEqual(t, base, DeriveKey("promo-code", map[string]any{"amount": 100}))
}

func TestDeriveKey_NestedLeafSensitive(t *testing.T) {
	base := DeriveKey("balance-credit", map[string]any{
		"customerId": "cus_1",
		"metadata":   map[string]any{"tenantId": "t1"},
	})
	changed := DeriveKey("balance-credit", map[string]any{
		"customerId": "cus_1",
		"metadata":   map[string]any{"tenantId": "t2"},
	})

	assert.NotEqual(t, base, changed)
}

func TestDeriveKey_TotalOnUnserializableInput(t *testing.T) {
	// Channels cannot be JSON-encoded; the deriver must still return a
	// well-formed key rather than fail.
	key := DeriveKey("coupon", map[string]chan int{"ch": make(chan int)})

	assert.Regexp(t, keyPattern, key)
}

func TestDeriveKey_LargeIntegersKeepPrecision(t *testing.T) {
	// Two int64 values that collapse to the same float64 must still derive
	// different keys.
	a := DeriveKey("balance-credit", map[string]any{"amount": int64(9007199254740993)})
	b := DeriveKey("balance-credit", map[string]any{"amount": int64(9007199254740992)})

	assert.NotEqual(t, a, b)
}

func TestDeriveKey_BalanceCreditScenario(t *testing.T) {
	type params struct {
		CustomerID string         `json:"customerId"`
		Amount     int64          `json:"amount"`
		Metadata   map[string]any `json:"metadata"`
	}

	original := DeriveKey("balance-credit", params{
		CustomerID: "cus_1",
		Amount:     1000,
		Metadata:   map[string]any{"tenantId": "t1"},
	})
	reordered := DeriveKey("balance-credit", map[string]any{
		"metadata":   map[string]any{"tenantId": "t1"},
		"customerId": "cus_1",
		"amount":     1000,
	})
	differentAmount := DeriveKey("balance-credit", params{
		CustomerID: "cus_1",
		Amount:     1001,
		Metadata:   map[string]any{"tenantId": "t1"},
	})

	require.Equal(t, original, reordered)
	assert.NotEqual(t, original, differentAmount)
}

func TestIsConflict(t *testing.T) {
	conflict := &ConflictError{Key: "coupon-abc", Message: "stripe: key reuse"}

	assert.True(t, IsConflict(conflict))
	assert.True(t, IsConflict(fmt.Errorf("create coupon: %w", conflict)))
	assert.False(t, IsConflict(fmt.Errorf("some other failure")))
	assert.False(t, IsConflict(nil))
}

func TestKeyFromError(t *testing.T) {
	testCases := []struct {
		name        string
		err         error
		expectedKey string
		expectFound bool
	}{
		{
			name:        "direct_conflict",
			err:         &ConflictError{Key: "coupon-abc"},
			expectedKey: "coupon-abc",
			expectFound: true,
		},
		{
			name:        "wrapped_conflict",
			err:         fmt.Errorf("grant: %w", &ConflictError{Key: "promo-code-def"}),
			expectedKey: "promo-code-def",
			expectFound: true,
		},
		{
			name:        "conflict_without_key",
			err:         &ConflictError{Message: "stripe: key reuse"},
			expectFound: false,
		},
		{
			name:        "unrelated_error",
			err:         fmt.Errorf("boom"),
			expectFound: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key, ok := KeyFromError(tc.err)

			assert.Equal(t, tc.expectFound, ok)
			assert.Equal(t, tc.expectedKey, key)
		})
	}
}

func TestConflictError_Message(t *testing.T) {
	withMessage := &ConflictError{Key: "k", Message: "stripe: reuse"}
	withoutMessage := &ConflictError{Key: "coupon-abc"}

	assert.Equal(t, "stripe: reuse", withMessage.Error())
	assert.Equal(t, "idempotency key conflict: coupon-abc", withoutMessage.Error())
}
