package allocator

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/codeGROOVE-dev/review-allocator/pkg/types"
)

// idPattern matches unsigned integer text with an optional trailing
// ".0..." fraction, after whitespace and thousands separators are gone.
var idPattern = regexp.MustCompile(`^(\d+)(?:\.0+)?$`)

// NormalizeID collapses a raw scalar value to a canonical ReviewerID.
// It accepts exact integers, reals with a zero fractional part, and
// textual forms such as "7", " 7 ", "7.00" and "1,234". Anything else
// (missing values, NaN, fractional reals, negatives, non-numeric text)
// is not an identifier and reports ok=false. Total and deterministic:
// never panics regardless of input type.
func NormalizeID(v any) (types.ReviewerID, bool) {
	switch val := v.(type) {
	case nil:
		return 0, false
	case int:
		return intID(int64(val))
	case int32:
		return intID(int64(val))
	case int64:
		return intID(val)
	case float32:
		return floatID(float64(val))
	case float64:
		return floatID(val)
	case string:
		return stringID(val)
	default:
		return stringID(fmt.Sprint(v))
	}
}

func intID(n int64) (types.ReviewerID, bool) {
	if n < 0 {
		return 0, false
	}
	return types.ReviewerID(n), true
}

func floatID(f float64) (types.ReviewerID, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f != math.Trunc(f) || f < 0 {
		return 0, false
	}
	n := int(f)
	if float64(n) != f {
		return 0, false
	}
	return types.ReviewerID(n), true
}

func stringID(s string) (types.ReviewerID, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")

	if m := idPattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		return types.ReviewerID(n), true
	}

	// Fall back to a general numeric parse, accepted only when integral.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return floatID(f)
}
