package utils

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// StaticRoot is the directory served under /static.
const StaticRoot = "./static"

// EnsureStaticDir creates the local image directory if it doesn't exist.
func EnsureStaticDir(prefix string) error {
	return os.MkdirAll(filepath.Join(StaticRoot, filepath.FromSlash(prefix)), os.ModePerm)
}

// CleanFilename strips any directory parts from a stored image name so it
// can only address objects directly under the image prefix.
func CleanFilename(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, "\\", "/"))
	base := path.Base(name)
	if base == "." || base == "/" || base == ".." {
		return ""
	}
	return base
}
