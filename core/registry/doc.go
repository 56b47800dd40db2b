// Package registry collects prototypes from every file listed in a manifest into one
// identifier-keyed registry.
//
// A manifest (items.lst, critters.lst) is a plain text file with one path per line, relative
// to the manifest's own directory. Blank lines are ignored. Each listed file is read with the
// configured source encoding, decoded with proto.DecodeSource and merged into the registry.
//
// The registry enforces global identifier uniqueness: the first identifier collision, or any
// other failure, aborts the whole build. There is no partial result.
//
// # Usage
//
//	b := registry.NewBuilder[proto.Item](decoder, ".fopro", logger)
//	reg, err := b.Build("/proto/items/items.lst")
//	for _, id := range reg.Keys() {
//	    // ascending identifiers
//	}
package registry
