package common

import "path"

// PkgAlias returns the name a package is referred to by when imported
// without an alias: the last element of its import path, or "" for an
// empty path.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}
