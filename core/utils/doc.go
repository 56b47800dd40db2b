// Package utils contains small conversion helpers shared across packages.
//
// # Conversions
//
//   - ToString: renders a decoded scalar (string, int64, ...) back to text.
//   - ToStringMap: applies ToString to every value of a decoded extension map.
package utils
