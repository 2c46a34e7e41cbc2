// Package disk persists Go values to files that follow OS directory
// conventions, with the serialization format delegated to pluggable codecs.
//
// A [Binding] declares where a value lives: a base directory kind, a project
// name, optional sub-directories, and a file stem. A [Store] pairs a Binding
// with a [Codec] and exposes uniform Save/Load operations:
//
//	type State struct {
//		String string `json:"string"`
//		Number uint32 `json:"number"`
//	}
//
//	store, err := disk.New[State](disk.Binding{
//		Dir:     disk.DirData,
//		Project: "MyProject",
//		File:    "state",
//	})
//	// Linux: ~/.local/share/myproject/state.json
//	md, err := store.Save(State{String: "Hello", Number: 123})
//	state, err := store.Load()
//
// Codecs exist for JSON (the default), TOML, YAML, MessagePack, BSON, gob,
// plain text, raw binary, and an empty marker file. Transparent gzip
// compression, an identifying file header, and memory-mapped reads are
// opt-in via [Option] values.
//
// Every save is atomic: bytes are written to a uniquely named temporary
// file in the target directory and renamed over the target, so readers
// never observe a torn file. Concurrent savers are otherwise uncoordinated;
// the last rename wins. There is no global registry binding types to paths:
// a Store is an explicit handle, and constructing several handles over the
// same path is allowed.
package disk
