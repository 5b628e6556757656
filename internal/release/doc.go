// Package release assembles and archives release bundles for the Amazing
// Z-Image workflow families. It is structured into small files by concern:
//
//   - packager.go: core Packager type, constructor, BuildAll/BuildBundle.
//   - defaults.go: built-in families, suffix lists, and fixed filenames.
//   - version.go: release version parsing.
//   - archive.go: flat zip writing with partial-output cleanup.
//   - errors.go: error types and helpers (IsMissingFile, IsArchiveFailure).
//
// Staging uses one unique temporary directory per bundle build, removed on
// every exit path, so interrupted or repeated runs never leave staged copies
// behind in the working directory.
package release
