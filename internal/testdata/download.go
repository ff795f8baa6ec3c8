// +build ignore

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/ulikunitz/xz"
)

// MediaWiki's conversion tables, as extracted to JSON by the zhconv project.
const assetURL = "https://raw.githubusercontent.com/gumblex/zhconv/master/zhconv/zhcdict.json"

func main() {
	err := downloadAsset(assetURL, filepath.Join("tables", "zhcdict.json.xz"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to download: %v\n", err)
		os.Exit(1)
	}
}

func downloadAsset(url, path string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("GET failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read: %w", err)
	}
	if !json.Valid(data) {
		return fmt.Errorf("asset at %s is not valid JSON", url)
	}
	return writeCompressed(path, bytes.NewReader(data))
}

func writeCompressed(path string, r io.Reader) error {
	_ = os.MkdirAll(filepath.Dir(path), 0755)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", path, err)
	}
	w, err := xz.NewWriter(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to compress %v: %w", path, err)
	}
	if _, err = io.Copy(w, r); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to copy %v: %w", path, err)
	}
	if err = w.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to compress %v: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to write %v: %w", path, err)
	}
	return nil
}
