// Package normalizer rewrites decoded JSON values into a canonical form that
// erases insertion-order differences in objects and, optionally, arrays.
//
// Values are the go types produced by decoding JSON with UseNumber:
//
//	nil, bool, json.Number, string, []any, map[string]any
//
// Native go numbers (float64, int, ...) are accepted as well so values decoded
// without UseNumber or converted from other formats normalize the same way.
// Every number comes out as a json.Number in the form CanonicalNumber gives.
package normalizer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Sort key tokens for the non-string scalars. None of them can collide with a
// number, and colliding with a string of the same text is resolved by the
// tie-break in sortArray.
const (
	nullKey  = "__null__"
	trueKey  = "__true__"
	falseKey = "__false__"
)

// Normalize returns a canonical copy of v. Objects are rebuilt with every
// value normalized; their key order is fixed by the encoder, which writes map
// keys sorted. When normalizeArrays is true each array is reordered by the
// SortKey of its normalized elements. Numbers are rewritten with
// CanonicalNumber. v itself is never modified.
func Normalize(v any, normalizeArrays bool) any {
	if n, ok := asNumber(v); ok {
		return n
	}

	switch val := v.(type) {
	case map[string]any:
		obj := make(map[string]any, len(val))
		for k, child := range val {
			obj[k] = Normalize(child, normalizeArrays)
		}
		return obj
	case []any:
		arr := make([]any, len(val))
		for i, child := range val {
			arr[i] = Normalize(child, normalizeArrays)
		}
		if normalizeArrays {
			sortArray(arr)
		}
		return arr
	default:
		return v
	}
}

// sortArray orders already-normalized elements by sort key. Elements with
// equal keys are ordered by their canonical encoding, and identical elements
// keep their relative order.
func sortArray(arr []any) {
	type entry struct {
		key   string
		canon string
		value any
	}

	entries := make([]entry, len(arr))
	for i, el := range arr {
		entries[i] = entry{key: SortKey(el), canon: compact(el), value: el}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].key != entries[j].key {
			return entries[i].key < entries[j].key
		}
		return entries[i].canon < entries[j].canon
	})

	for i, e := range entries {
		arr[i] = e.value
	}
}

// SortKey computes the structural fingerprint used to order array elements.
// It expects a normalized value: array keys concatenate element keys in their
// current order, object keys concatenate "/key:value" over sorted keys with the
// value in compact JSON.
func SortKey(v any) string {
	switch val := v.(type) {
	case nil:
		return nullKey
	case bool:
		if val {
			return trueKey
		}
		return falseKey
	case json.Number:
		return string(CanonicalNumber(val))
	case string:
		return val
	case []any:
		var sb strings.Builder
		for _, el := range val {
			sb.WriteString(SortKey(el))
		}
		return sb.String()
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var sb strings.Builder
		for _, k := range keys {
			sb.WriteString("/")
			sb.WriteString(k)
			sb.WriteString(":")
			sb.WriteString(compact(val[k]))
		}
		return sb.String()
	default:
		if n, ok := asNumber(val); ok {
			return string(n)
		}
		return compact(val)
	}
}

// Canonical returns the compact JSON encoding of v after normalization.
func Canonical(v any, normalizeArrays bool) string {
	return compact(Normalize(v, normalizeArrays))
}

// Equal reports whether a and b are the same document once object keys and
// array elements are put in canonical order.
func Equal(a, b any) bool {
	return Canonical(a, true) == Canonical(b, true)
}

func compact(v any) string {
	return Encode(v, "")
}

// Encode writes v as JSON with sorted object keys and no trailing newline.
// An empty indent gives single-line output. HTML characters and the line
// separators U+2028 and U+2029 are written as is. Values outside the JSON
// model (NaN, channels, ...) fall back to their fmt representation so the
// result is always defined.
func Encode(v any, indent string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return unescapeSeparators(strings.TrimSuffix(buf.String(), "\n"))
}

// unescapeSeparators turns the \u2028 and \u2029 escapes the encoder always
// emits back into raw characters. Other escape sequences are copied whole so
// an escaped backslash followed by "u2028" is left alone.
func unescapeSeparators(s string) string {
	if !strings.Contains(s, `\u202`) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			sb.WriteByte(s[i])
			continue
		}
		switch s[i:min(i+6, len(s))] {
		case `\u2028`:
			sb.WriteString("\u2028")
			i += 5
		case `\u2029`:
			sb.WriteString("\u2029")
			i += 5
		default:
			sb.WriteString(s[i : i+2])
			i++
		}
	}
	return sb.String()
}
