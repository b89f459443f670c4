// Package strutil contains small string conversion helpers for query
// parameter parsing.
package strutil

import "strconv"

// ConvertToInt parses s as an int, returning 0 on failure.
func ConvertToInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// ConvertToBool parses s as a bool, returning nil on failure so callers can
// distinguish "absent" from "false".
func ConvertToBool(s string) *bool {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &v
}
