// Package utils contains small shared helpers.
package utils

import "strconv"

// ConvertToInt parses a query-string integer, returning 0 for bad input.
func ConvertToInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

// ConvertToUint parses a path-parameter id, returning 0 for bad input.
func ConvertToUint(value string) uint {
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}
