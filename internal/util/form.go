package util

import (
	"strconv"
	"strings"
)

// NullIfEmpty maps a submitted form value to a nullable column value.
func NullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Truthy coerces a submitted form value to a strict boolean: any
// non-empty value is true, an absent or empty one is false.
func Truthy(s string) bool {
	return s != ""
}

// ParseNullableInt returns nil for an empty value and an error for a
// value that is not an integer.
func ParseNullableInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
