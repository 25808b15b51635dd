package common

import "path"

// UnknownStr is the fallback name for out-of-range enum values.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// QualifiedName returns the source-style name of a type: the bare name for
// predeclared types (empty package path), "alias.Name" otherwise.
func QualifiedName(pkgPath, name string) string {
	if pkgPath == "" {
		return name
	}

	return PkgAlias(pkgPath) + "." + name
}
