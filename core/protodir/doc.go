// Package protodir locates the prototype source tree.
//
// The root is taken from the first candidate that resolves to an existing directory:
//
//  1. the configured path (PROTO_PATH in the environment or proto.path in config),
//  2. the first line of the path file (proto_path.cfg by default),
//  3. the fallback path (../FO4RP/proto by default).
//
// Every result is absolute with symlinks resolved.
package protodir
