package apiclient

import (
	"net/url"
	"strconv"
	"strings"
)

// Query builds URL query values, skipping absent parameters.
type Query struct {
	values url.Values
}

// NewQuery returns an empty Query.
func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

// Str sets key when value is non-empty.
func (q *Query) Str(key, value string) *Query {
	if value != "" {
		q.values.Set(key, value)
	}
	return q
}

// Int sets key when value is non-nil.
func (q *Query) Int(key string, value *int) *Query {
	if value != nil {
		q.values.Set(key, strconv.Itoa(*value))
	}
	return q
}

// Int64 sets key when value is non-nil.
func (q *Query) Int64(key string, value *int64) *Query {
	if value != nil {
		q.values.Set(key, strconv.FormatInt(*value, 10))
	}
	return q
}

// Float sets key when value is non-nil.
func (q *Query) Float(key string, value *float64) *Query {
	if value != nil {
		q.values.Set(key, strconv.FormatFloat(*value, 'f', -1, 64))
	}
	return q
}

// Bool sets key when value is non-nil.
func (q *Query) Bool(key string, value *bool) *Query {
	if value != nil {
		q.values.Set(key, strconv.FormatBool(*value))
	}
	return q
}

// Join sets key to the comma-joined values when there is at least one.
func (q *Query) Join(key string, values []string) *Query {
	if len(values) > 0 {
		q.values.Set(key, strings.Join(values, ","))
	}
	return q
}

// Values returns the accumulated values.
func (q *Query) Values() url.Values {
	return q.values
}

// Option returns the values as a RequestOption.
func (q *Query) Option() RequestOption {
	return WithQuery(q.values)
}

// Ptr returns a pointer to v. Handy for optional query parameters.
func Ptr[T any](v T) *T {
	return &v
}
