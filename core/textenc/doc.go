// Package textenc converts raw prototype file bytes into text.
//
// Decoding is deliberately lossy: bytes that are not valid in the configured encoding are
// replaced with U+FFFD instead of failing the run. The encoding is chosen by its WHATWG label
// ("utf-8", "windows-1251", "koi8-r", ...) so the result is reproducible across machines.
package textenc
