// Package validate checks user input before it is sent to the API.
//
// Validators never fail hard: each returns a Result listing every problem
// found. Call Result.Err to turn an invalid Result into an error.
package validate

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxAmount is the largest amount accepted by Amount.
var MaxAmount = decimal.NewFromInt(1_000_000_000)

var (
	amountPattern   = regexp.MustCompile(`^\d+(\.\d{1,8})?$`)
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	specialPattern  = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
	lowerPattern    = regexp.MustCompile(`[a-z]`)
	upperPattern    = regexp.MustCompile(`[A-Z]`)
	digitPattern    = regexp.MustCompile(`\d`)
)

// Result is the outcome of one or more validations.
type Result struct {
	Valid  bool
	Errors []string
}

// ValidationError is returned by Result.Err.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Validation failed: %s", strings.Join(e.Errors, ", "))
}

// Err returns a *ValidationError when r is invalid, nil otherwise.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Errors: r.Errors}
}

func result(errs []string) Result {
	return Result{Valid: len(errs) == 0, Errors: errs}
}

func invalid(msg string) Result {
	return Result{Errors: []string{msg}}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Merge combines results; the merged result is valid only when all are.
func Merge(results ...Result) Result {
	var errs []string
	for _, r := range results {
		errs = append(errs, r.Errors...)
	}
	return result(errs)
}

// Amount checks a token amount: digits with up to 8 decimals, between 0 and
// MaxAmount.
func Amount(amount string) Result {
	if blank(amount) {
		return invalid("金額は必須です")
	}

	var errs []string
	if !amountPattern.MatchString(amount) {
		errs = append(errs, "金額は数値で、小数点以下8桁まで入力可能です")
	}

	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	switch {
	case err != nil:
		errs = append(errs, "金額が無効な数値です")
	case value.IsNegative():
		errs = append(errs, "金額は0以上である必要があります")
	case value.GreaterThan(MaxAmount):
		errs = append(errs, "金額が上限を超えています")
	}
	return result(errs)
}

// UUID checks for a canonical version 4 UUID with the RFC 4122 variant.
func UUID(id string) Result {
	if blank(id) {
		return invalid("IDは必須です")
	}

	parsed, err := uuid.Parse(id)
	if err != nil || len(id) != 36 || parsed.Version() != 4 || parsed.Variant() != uuid.RFC4122 {
		return invalid("有効なUUID形式ではありません")
	}
	return result(nil)
}

// Date checks a YYYY-MM-DD calendar date.
func Date(date string) Result {
	if blank(date) {
		return invalid("日付は必須です")
	}
	if !datePattern.MatchString(date) {
		return invalid("日付はYYYY-MM-DD形式で入力してください")
	}
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return invalid("有効な日付ではありません")
	}
	return result(nil)
}

// DateTime checks a YYYY-MM-DDTHH:mm:ss local timestamp.
func DateTime(datetime string) Result {
	if blank(datetime) {
		return invalid("日時は必須です")
	}
	if !dateTimePattern.MatchString(datetime) {
		return invalid("日時はYYYY-MM-DDTHH:mm:ss形式で入力してください")
	}
	if _, err := time.Parse("2006-01-02T15:04:05", datetime); err != nil {
		return invalid("有効な日時ではありません")
	}
	return result(nil)
}

// Email performs a shape check only.
func Email(email string) Result {
	if blank(email) {
		return invalid("メールアドレスは必須です")
	}
	if !emailPattern.MatchString(email) {
		return invalid("有効なメールアドレス形式ではありません")
	}
	return result(nil)
}

// Score checks that score lies in [minScore, maxScore].
func Score(score, minScore, maxScore float64) Result {
	switch {
	case math.IsNaN(score):
		return invalid("スコアは数値である必要があります")
	case score < minScore:
		return invalid(fmt.Sprintf("スコアは%g以上である必要があります", minScore))
	case score > maxScore:
		return invalid(fmt.Sprintf("スコアは%g以下である必要があります", maxScore))
	}
	return result(nil)
}

// PercentScore checks a 0-100 score.
func PercentScore(score float64) Result {
	return Score(score, 0, 100)
}

// EvaluationScore checks a 1-5 rating.
func EvaluationScore(score float64) Result {
	return Score(score, 1, 5)
}

// Password checks length and character classes.
func Password(password string) Result {
	if blank(password) {
		return invalid("パスワードは必須です")
	}

	var errs []string
	n := utf8.RuneCountInString(password)
	if n < 8 {
		errs = append(errs, "パスワードは8文字以上である必要があります")
	}
	if n > 128 {
		errs = append(errs, "パスワードは128文字以下である必要があります")
	}
	if !lowerPattern.MatchString(password) {
		errs = append(errs, "パスワードには小文字を含める必要があります")
	}
	if !upperPattern.MatchString(password) {
		errs = append(errs, "パスワードには大文字を含める必要があります")
	}
	if !digitPattern.MatchString(password) {
		errs = append(errs, "パスワードには数字を含める必要があります")
	}
	if !specialPattern.MatchString(password) {
		errs = append(errs, "パスワードには特殊文字を含める必要があります")
	}
	return result(errs)
}
