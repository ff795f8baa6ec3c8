// Package testdata locates table assets used as test fixtures.
package testdata

//go:generate go run download.go

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// TableReader returns a reader for the given table asset for testing.
func TableReader(file string) (io.Reader, error) {
	data, err := os.ReadFile(TablePath(file))
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(data), nil
}

// TablePath returns the path for the given table asset.
func TablePath(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}

	return filepath.Join(filepath.Dir(pkgdir), "tables", file)
}
