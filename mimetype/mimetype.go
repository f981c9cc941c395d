package mimetype

import "strings"

const (
	Gzip = "application/gzip"
	Tar  = "application/x-tar"
	Zip  = "application/zip"
)

// IsArchive guesses from the file name whether a password list is packed.
func IsArchive(filename string) (string, bool) {
	switch {
	case strings.HasSuffix(filename, ".tar"),
		strings.HasSuffix(filename, ".tar.gz"),
		strings.HasSuffix(filename, ".tgz"):
		return Tar, true
	case strings.HasSuffix(filename, ".zip"),
		strings.HasSuffix(filename, ".jar"):
		return Zip, true
	case strings.HasSuffix(filename, ".gz"):
		return Gzip, true
	default:
		return "", false
	}
}
