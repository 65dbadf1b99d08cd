package utils

import "strconv"

// StringToUint64 parses an ID from a URL parameter. Returns 0 on failure.
func StringToUint64(str string) uint64 {
	val, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0
	}
	return val
}

// StringToFloat parses a coordinate from a URL parameter. Returns 0 on failure.
func StringToFloat(str string) float64 {
	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0
	}
	return val
}
