package directory

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var quotaPattern = regexp.MustCompile(`^([0-9.,]+)\s*([A-Za-z]+)?\s*$`)

// FormatQuota renders a byte count using decimal (1000-based) units with
// two-decimal precision. Zero renders as "unlimited".
func FormatQuota(quota int64) string {
	if quota == 0 {
		return "unlimited"
	}

	value := float64(quota)
	if value < 1000 {
		return fmt.Sprintf("%.2f bytes", value)
	}

	value /= 1000
	if value < 1000 {
		return fmt.Sprintf("%.2f KB", value)
	}

	value /= 1000
	if value < 1000 {
		return fmt.Sprintf("%.2f MB", value)
	}

	value /= 1000
	return fmt.Sprintf("%.2f GB", value)
}

// ParseQuota accepts a numeric literal with an optional case-insensitive
// kb/mb/gb suffix and returns the byte count. A bare number is a raw byte
// count. Malformed input yields a ValidationError.
func ParseQuota(raw string) (int64, error) {
	match := quotaPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if match == nil || match[1] == "" {
		return 0, Validationf("invalid quota: '%s'", raw)
	}

	amount, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, Validationf("invalid quota: '%s'", raw)
	}

	if match[2] == "" {
		return int64(math.Round(amount)), nil
	}

	switch strings.ToLower(match[2]) {
	case "kb":
		return int64(math.Round(1000 * amount)), nil
	case "mb":
		return int64(math.Round(1000 * 1000 * amount)), nil
	case "gb":
		return int64(math.Round(1000 * 1000 * 1000 * amount)), nil
	}

	return 0, Validationf("invalid quota quantifier: '%s'", strings.ToLower(match[2]))
}
