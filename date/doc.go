// Package date implements a validated Gregorian calendar date — the classic
// "value object with invariants" exercise.
//
// What
//
//   - Date: an immutable (year, month, day) triple that can only be
//     constructed in a valid state. New rejects year < 1, month outside
//     1..12, and day outside the month's length (leap-Februaries included).
//   - IsLeapYear / DaysInMonth: the underlying calendar rules, exported.
//   - DayOfYear: ordinal day within the year, 1..366.
//   - Compare / Before / After / Equal: total chronological ordering.
//   - String: dd/mm/yyyy.
//
// Why
//
//   - Demonstrates the validation-at-the-boundary pattern: once a Date
//     exists, every method may assume the invariant holds, so none of them
//     can fail.
//
// Errors
//
//   - ErrYear  — year < 1.
//   - ErrMonth — month outside 1..12.
//   - ErrDay   — day outside 1..DaysInMonth(month, year).
//
// Usage
//
//	d, err := date.New(2022, 5, 20)
//	if err != nil { ... }
//	d.DayOfYear() // 140
//	d.String()    // "20/05/2022"
//
// Complexity: construction and DayOfYear are O(1) (at most 11 month
// lookups); comparisons are O(1).
package date
