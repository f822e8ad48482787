package model

import (
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var decimalPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// ParseFloat parses value the lenient way form inputs and backend payloads are read:
// numbers pass through, strings are parsed from their longest decimal prefix,
// anything else yields NaN.
func ParseFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case json.Number:
		return parseDecimalPrefix(string(n))
	case string:
		return parseDecimalPrefix(n)
	default:
		return math.NaN()
	}
}

func parseDecimalPrefix(s string) float64 {
	prefix := decimalPrefix.FindString(strings.TrimLeft(s, " \t\n\r\v\f"))
	if prefix == "" {
		return math.NaN()
	}

	switch strings.TrimLeft(prefix, "+-") {
	case "Infinity":
		if strings.HasPrefix(prefix, "-") {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	// out of range values come back as ±Inf or 0 together with ErrRange
	return f
}
