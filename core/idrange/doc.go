// Package idrange computes and renders the unused parts of a bounded identifier space.
//
// Free walks identifiers in ascending order and returns the maximal closed intervals of
// [1, bound-1] not covered by any of them. Rendering follows the free PIDs report format:
//
//	7            single identifier
//	7, 8         two identifiers
//	7-9 (3 ids)  longer interval
package idrange
