// Package manifest models the package.json manifest and reads and writes it
// on disk. PackageJSON covers every documented field; fields that accept
// several shapes (author, funding, repository, man) are tagged unions.
//
// New builds the default template, SaveSync/LoadSync do blocking I/O and
// Save/Load run the same I/O on a goroutine bounded by a context. Loading
// performs no validation; Validate offers an opt-in shape check against an
// embedded JSON Schema.
package manifest
