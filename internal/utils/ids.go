// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import (
	"errors"
	"strconv"
)

// ErrInvalidID is returned by ParseID for anything but a positive integer.
var ErrInvalidID = errors.New("id must be a positive integer")

// ParseID parses a path id. Row ids start at 1, so zero and negatives are
// rejected along with non-numeric input.
func ParseID(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, ErrInvalidID
	}
	return n, nil
}

// Int64Default converts s with strconv.ParseInt and returns def when s is
// empty or not an integer.
//
//	n := utils.Int64Default("42", 0) // 42
//	n = utils.Int64Default("", 10)   // 10
//	n = utils.Int64Default("x", 5)   // 5
func Int64Default(s string, def int64) int64 {
	if s == "" {
		return def
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return def
}
