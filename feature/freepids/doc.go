// Package freepids implements the free prototype identifier report.
//
// The report builds the item and the critter registries from their manifests and lists,
// per category, every unused identifier interval below the configured bound:
//
//	======================
//	Free identifiers for items
//	======================
//
//	3, 4
//	7-9 (3 ids)
//	11
//
// Building a registry fails on any malformed file or identifier collision; in that case no
// report is produced and WriteReport stores the error text in the report file instead.
package freepids
