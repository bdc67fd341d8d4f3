// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mehndi

import (
	"math"
	"reflect"
	"slices"
	"strings"
)

// RepeatChar returns char repeated n times. An empty char or n <= 0 gives "".
func RepeatChar(char string, n int) string {
	if char == "" || n <= 0 {
		return ""
	}
	return char + RepeatChar(char, n-1)
}

// SumNested adds every number found in an arbitrarily nested slice. Values
// that are not numbers, and NaN, are skipped. A non-slice input sums to 0.
func SumNested(v any) float64 {
	rv := reflect.ValueOf(v)
	if !isSlice(rv) {
		return 0
	}
	return sumValue(rv)
}

func sumValue(rv reflect.Value) float64 {
	rv = unwrap(rv)

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		sum := 0.0
		for i := range rv.Len() {
			sum += sumValue(rv.Index(i))
		}
		return sum
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		if f := rv.Float(); !math.IsNaN(f) {
			return f
		}
	}
	return 0
}

// Flatten returns the leaves of an arbitrarily nested slice in order. A
// non-slice input gives an empty slice.
func Flatten(v any) []any {
	rv := reflect.ValueOf(v)
	if !isSlice(rv) {
		return []any{}
	}
	return flattenValue(rv, []any{})
}

func flattenValue(rv reflect.Value, out []any) []any {
	rv = unwrap(rv)

	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		if !rv.IsValid() {
			return append(out, nil)
		}
		return append(out, rv.Interface())
	}

	for i := range rv.Len() {
		out = flattenValue(rv.Index(i), out)
	}
	return out
}

// IsPalindrome reports whether s reads the same both ways, ignoring case
func IsPalindrome(s string) bool {
	return palindrome([]rune(strings.ToLower(s)))
}

func palindrome(r []rune) bool {
	if len(r) <= 1 {
		return true
	}
	if r[0] != r[len(r)-1] {
		return false
	}
	return palindrome(r[1 : len(r)-1])
}

// GeneratePattern returns rows of 1..n stars then back down to 1.
// n <= 0 gives an empty pattern.
func GeneratePattern(n int) []string {
	if n <= 0 {
		return []string{}
	}

	rising := ascending(n)
	falling := slices.Clone(rising[:n-1])
	slices.Reverse(falling)

	return append(rising, falling...)
}

func ascending(n int) []string {
	if n == 1 {
		return []string{"*"}
	}
	return append(ascending(n-1), RepeatChar("*", n))
}

func isSlice(rv reflect.Value) bool {
	return rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array
}

// unwrap looks through interface values such as the elements of a []any
func unwrap(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}
	return rv
}
