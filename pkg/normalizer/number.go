package normalizer

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// CanonicalNumber rewrites a JSON number literal so that spellings of the
// same value agree. Integer literals that fit in 64 bits are written as plain
// integers; every other number goes through float64 and FormatFloat, so 1.0,
// 1.00 and 1e0 all become "1.0". Literals that do not parse, or overflow
// float64, are returned unchanged.
func CanonicalNumber(n json.Number) json.Number {
	s := string(n)
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil && (i != 0 || !strings.HasPrefix(s, "-")) {
			return json.Number(strconv.FormatInt(i, 10))
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return json.Number(strconv.FormatUint(u, 10))
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return n
	}
	return json.Number(FormatFloat(f))
}

// FormatFloat writes f with the shortest digits that round-trip. Integral
// values keep a ".0" suffix, and values of 1e16 and above or below 1e-5 use
// an exponent without a plus sign: 100.0, 0.00001, 1e16, 1.5e-7.
func FormatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if f == 0 {
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	var sb strings.Builder
	if f < 0 {
		sb.WriteByte('-')
		f = -f
	}

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	e, _ := strconv.Atoi(exp)
	digits := strings.Replace(mantissa, ".", "", 1)

	// the value is 0.digits * 10^point
	point := e + 1
	n := len(digits)

	switch {
	case point >= n && point <= 16:
		sb.WriteString(digits)
		sb.WriteString(strings.Repeat("0", point-n))
		sb.WriteString(".0")
	case point > 0 && point <= 16:
		sb.WriteString(digits[:point])
		sb.WriteByte('.')
		sb.WriteString(digits[point:])
	case point > -5 && point <= 0:
		sb.WriteString("0.")
		sb.WriteString(strings.Repeat("0", -point))
		sb.WriteString(digits)
	default:
		sb.WriteByte(digits[0])
		if n > 1 {
			sb.WriteByte('.')
			sb.WriteString(digits[1:])
		}
		sb.WriteByte('e')
		sb.WriteString(strconv.Itoa(point - 1))
	}
	return sb.String()
}

// asNumber converts the number kinds a value tree may hold into a canonical
// json.Number.
func asNumber(v any) (json.Number, bool) {
	switch n := v.(type) {
	case json.Number:
		return CanonicalNumber(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return "", false
		}
		return json.Number(FormatFloat(n)), true
	case float32:
		return asNumber(float64(n))
	case int:
		return json.Number(strconv.FormatInt(int64(n), 10)), true
	case int8:
		return json.Number(strconv.FormatInt(int64(n), 10)), true
	case int16:
		return json.Number(strconv.FormatInt(int64(n), 10)), true
	case int32:
		return json.Number(strconv.FormatInt(int64(n), 10)), true
	case int64:
		return json.Number(strconv.FormatInt(n, 10)), true
	case uint:
		return json.Number(strconv.FormatUint(uint64(n), 10)), true
	case uint8:
		return json.Number(strconv.FormatUint(uint64(n), 10)), true
	case uint16:
		return json.Number(strconv.FormatUint(uint64(n), 10)), true
	case uint32:
		return json.Number(strconv.FormatUint(uint64(n), 10)), true
	case uint64:
		return json.Number(strconv.FormatUint(n, 10)), true
	default:
		return "", false
	}
}
