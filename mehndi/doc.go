// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package mehndi holds small recursive helpers for building border patterns.

	mehndi.RepeatChar("*", 4)                     // "****"
	mehndi.SumNested([]any{1, []any{2, []any{3}}}) // 6
	mehndi.Flatten([]any{1, []any{2, []any{3}}})   // [1 2 3]
	mehndi.IsPalindrome("Madam")                  // true
	mehndi.GeneratePattern(3)                     // ["*" "**" "***" "**" "*"]
*/
package mehndi
