package config

import (
	"strconv"

	perrors "pista/src/errors"
)

const expectBool = "either `0`, `false`, `1`, or `true`"

// ParseBool accepts exactly "0", "false", "1" and "true". Unlike
// strconv.ParseBool it is case-sensitive and rejects "t", "F" and friends.
func ParseBool(raw string) (bool, error) {
	switch raw {
	case "0", "false":
		return false, nil
	case "1", "true":
		return true, nil
	default:
		return false, perrors.NewFieldError("", raw, expectBool, perrors.ErrInvalidBool)
	}
}

// formatBool is the inverse of ParseBool
func formatBool(b bool) string {
	return strconv.FormatBool(b)
}
