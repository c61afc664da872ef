package testdata

import (
	"os"
	"path/filepath"
	"runtime"
)

// UCDDir returns the directory of the full UCD files, as written by
// download.go.
func UCDDir() string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}

	return filepath.Join(filepath.Dir(pkgdir), "ucd")
}

// HasUCD is true if the full UCD files for pairing have been downloaded.
func HasUCD() bool {
	for _, file := range []string{"BidiMirroring.txt", "BidiBrackets.txt"} {
		if _, err := os.Stat(filepath.Join(UCDDir(), file)); err != nil {
			return false
		}
	}
	return true
}
