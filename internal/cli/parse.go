package cli

import (
	"strconv"
	"strings"

	apperrors "github.com/agbru/datakit/internal/errors"
)

// ParseNumbers parses a comma- or space-separated string of numbers into a
// slice of float64.
//
//	"1, 2, 3"  -> []float64{1, 2, 3}
//	"10 20 30" -> []float64{10, 20, 30}
//
// A token that cannot be converted yields an apperrors.ParseError naming the
// token; that is a front-end failure, deliberately distinct from the
// validation errors the statistics core produces. An input with no tokens
// returns an empty slice — emptiness is the core's call to reject.
func ParseNumbers(raw string) ([]float64, error) {
	pieces := strings.Fields(strings.ReplaceAll(raw, ",", " "))
	numbers := make([]float64, 0, len(pieces))
	for _, p := range pieces {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, apperrors.ParseError{Token: p}
		}
		numbers = append(numbers, v)
	}
	return numbers, nil
}

// ParseNames splits a comma-separated list of product names, trimming
// whitespace and dropping empty entries.
func ParseNames(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}
