package path

import "os"

// Exists reports whether p exists on the filesystem.
func Exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// IsFile reports whether p exists and is a regular file, following symlinks.
func IsFile(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && fi.Mode().IsRegular()
}
