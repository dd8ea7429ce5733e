package validate

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		wantValid  bool
		wantErrors int
	}{
		{name: "integer", amount: "100", wantValid: true},
		{name: "eight decimals", amount: "0.12345678", wantValid: true},
		{name: "upper bound", amount: "1000000000", wantValid: true},
		{name: "nine decimals", amount: "0.123456789", wantErrors: 1},
		{name: "over limit", amount: "1000000000.00000001", wantErrors: 1},
		{name: "negative", amount: "-5", wantErrors: 2},
		{name: "not a number", amount: "abc", wantErrors: 2},
		{name: "empty", amount: "  ", wantErrors: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Amount(tt.amount)
			assert.Equal(t, tt.wantValid, r.Valid)
			assert.Len(t, r.Errors, tt.wantErrors)
		})
	}
}

func TestUUID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"3f2504e0-4f89-41d3-9a0c-0305e82c3301", true},
		{"3F2504E0-4F89-41D3-9A0C-0305E82C3301", true},
		{"3f2504e0-4f89-11d3-9a0c-0305e82c3301", false}, // version 1
		{"3f2504e0-4f89-41d3-ca0c-0305e82c3301", false}, // wrong variant
		{"3f2504e04f8941d39a0c0305e82c3301", false},
		{"urn:uuid:3f2504e0-4f89-41d3-9a0c-0305e82c3301", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.valid, UUID(tt.id).Valid)
		})
	}
}

func TestDateAndDateTime(t *testing.T) {
	assert.True(t, Date("2025-08-20").Valid)
	assert.False(t, Date("2025/08/20").Valid)
	assert.Equal(t, []string{"有効な日付ではありません"}, Date("2025-13-01").Errors)
	assert.Equal(t, []string{"日付は必須です"}, Date("").Errors)

	assert.True(t, DateTime("2025-08-20T12:30:00").Valid)
	assert.False(t, DateTime("2025-08-20 12:30:00").Valid)
	assert.False(t, DateTime("2025-08-20T25:00:00").Valid)
}

func TestEmail(t *testing.T) {
	assert.True(t, Email("user@example.com").Valid)
	assert.False(t, Email("user@example").Valid)
	assert.False(t, Email("user @example.com").Valid)
}

func TestScore(t *testing.T) {
	assert.True(t, PercentScore(0).Valid)
	assert.True(t, PercentScore(100).Valid)
	assert.Equal(t, []string{"スコアは100以下である必要があります"}, PercentScore(101).Errors)
	assert.Equal(t, []string{"スコアは1以上である必要があります"}, EvaluationScore(0.5).Errors)
	assert.True(t, EvaluationScore(4.5).Valid)
	assert.False(t, Score(math.NaN(), 0, 10).Valid)
}

func TestPassword(t *testing.T) {
	assert.True(t, Password("Str0ng!pass").Valid)

	r := Password("short")
	assert.False(t, r.Valid)
	// length, upper, digit, special
	assert.Len(t, r.Errors, 4)

	assert.Len(t, Password(strings.Repeat("aA1!", 33)).Errors, 1)
}

func TestMergeAndErr(t *testing.T) {
	r := Merge(Amount("10"), Email("bad"), UUID(""))
	assert.False(t, r.Valid)
	assert.Equal(t, []string{"有効なメールアドレス形式ではありません", "IDは必須です"}, r.Errors)

	err := r.Err()
	require.Error(t, err)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "Validation failed: 有効なメールアドレス形式ではありません, IDは必須です", err.Error())

	assert.NoError(t, Merge(Amount("1"), Date("2025-01-01")).Err())
	assert.True(t, Merge().Valid)
}
