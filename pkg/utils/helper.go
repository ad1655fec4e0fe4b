package utils

import (
	"fmt"
	"strconv"
)

// ParseID parses a positive integer identifier.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	return id, nil
}

// ParseOptionalID parses an optional positive identifier; empty input yields nil.
func ParseOptionalID(value string) (*int64, error) {
	if value == "" {
		return nil, nil
	}
	id, err := ParseID(value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
