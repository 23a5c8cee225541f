package common

import "path"

// PkgAlias returns the name an import of pkgPath is referred to by when the
// import spec carries no name: the last element of the path. Returns the
// empty string for an empty path.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}
