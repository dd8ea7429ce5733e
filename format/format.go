// Package format renders API values for Japanese-language display.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Invalid input placeholders.
const (
	InvalidDate     = "無効な日付"
	InvalidDateTime = "無効な日時"
)

// AmountOptions controls Amount rendering.
type AmountOptions struct {
	// Decimals is the rounding precision before trailing zeros are trimmed.
	Decimals           int32
	ThousandsSeparator bool
	// Currency appends the " SFR" suffix.
	Currency bool
}

// DefaultAmountOptions are used by Amount.
func DefaultAmountOptions() AmountOptions {
	return AmountOptions{Decimals: 8, ThousandsSeparator: true, Currency: true}
}

// Amount formats a decimal amount string as "1,234.5 SFR". Unparseable input
// renders as "0".
func Amount(amount string) string {
	return AmountWith(amount, DefaultAmountOptions())
}

// AmountWith formats amount using opts.
func AmountWith(amount string, opts AmountOptions) string {
	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return "0"
	}

	s := value.StringFixed(opts.Decimals)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if opts.ThousandsSeparator {
		s = groupThousands(s)
	}
	if opts.Currency {
		s += " SFR"
	}
	return s
}

func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return sign + b.String()
}

// Percentage renders a ratio (0.125) as a percentage ("12.50%"). showSign
// prefixes positive values with "+".
func Percentage(ratio float64, decimals int, showSign bool) string {
	sign := ""
	if showSign && ratio > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.*f%%", sign, decimals, ratio*100)
}

// DateStyle selects how much of a date is shown.
type DateStyle int

const (
	// Short renders 2025/8/20.
	Short DateStyle = iota
	// Medium renders 2025年8月20日.
	Medium
	// Long adds the weekday.
	Long
	// Full adds the era as well.
	Full
)

var weekdays = [...]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"}

var inputLayouts = []string{
	time.DateOnly,
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

// Parse reads the date and date-time shapes used by the API.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func dateText(t time.Time, style DateStyle) string {
	if style == Short {
		return fmt.Sprintf("%d/%d/%d", t.Year(), t.Month(), t.Day())
	}
	s := fmt.Sprintf("%d年%d月%d日", t.Year(), t.Month(), t.Day())
	switch style {
	case Long:
		s += weekdays[t.Weekday()]
	case Full:
		s = "西暦" + s + weekdays[t.Weekday()]
	}
	return s
}

// Date formats a date or date-time string. Invalid input renders as
// InvalidDate.
func Date(s string, style DateStyle) string {
	t, ok := Parse(s)
	if !ok {
		return InvalidDate
	}
	return dateText(t, style)
}

// DateTime formats a date-time string with hours and minutes. withSeconds
// adds seconds. Only Short and Medium apply to the date part.
func DateTime(s string, style DateStyle, withSeconds bool) string {
	t, ok := Parse(s)
	if !ok {
		return InvalidDateTime
	}
	if style != Short {
		style = Medium
	}
	clock := fmt.Sprintf("%d:%02d", t.Hour(), t.Minute())
	if withSeconds {
		clock += fmt.Sprintf(":%02d", t.Second())
	}
	return dateText(t, style) + " " + clock
}

// RelativeTime renders the distance between s and now ("3 分前"). The largest
// whole unit is used.
func RelativeTime(s string, now time.Time) string {
	t, ok := Parse(s)
	if !ok {
		return InvalidDateTime
	}

	diff := now.Sub(t)
	suffix := "前"
	if diff < 0 {
		diff, suffix = -diff, "後"
	}

	switch {
	case diff >= 24*time.Hour:
		return fmt.Sprintf("%d 日%s", int64(diff/(24*time.Hour)), suffix)
	case diff >= time.Hour:
		return fmt.Sprintf("%d 時間%s", int64(diff/time.Hour), suffix)
	case diff >= time.Minute:
		return fmt.Sprintf("%d 分%s", int64(diff/time.Minute), suffix)
	}
	return fmt.Sprintf("%d 秒%s", int64(diff/time.Second), suffix)
}
