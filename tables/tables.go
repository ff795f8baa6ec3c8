/*
Package tables loads the conversion tables zhconv operates on.

The table asset is a JSON object of named tables, each of which maps
source strings to target strings:

   { "zh2Hans": { "幹": "干", … }, "zh2Hant": { … }, "zh2TW": { … }, … }

Two tables hold script-level conversions (to Simplified and to Traditional
Chinese), the remaining ones hold regional lexical preferences which are
overlaid onto the script tables. The format is the one MediaWiki's
conversion tables are usually distributed in. Assets may be xz-compressed.

This package embeds a small default asset, which is sufficient for tests
and demonstrations. Clients will want to load a complete asset with
LoadFile.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tables

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/ulikunitz/xz"
)

// tracer traces with key 'zhconv.tables'.
func tracer() tracing.Trace {
	return tracing.Select("zhconv.tables")
}

// Names of the tables an asset has to provide.
const (
	Simplified  = "zh2Hans" // script table: to Simplified
	Traditional = "zh2Hant" // script table: to Traditional
	Mainland    = "zh2CN"   // overlay for mainland China
	Taiwan      = "zh2TW"   // overlay for Taiwan
	HongKong    = "zh2HK"   // overlay for Hong Kong and Macau
	Singapore   = "zh2SG"   // overlay for Singapore and Malaysia
)

// Required lists the table names every asset must contain.
var Required = [...]string{Simplified, Traditional, Mainland, Taiwan, HongKong, Singapore}

// A Table maps source strings to target strings.
type Table map[string]string

// Tables is a parsed table asset. Tables are read-only after loading.
type Tables map[string]Table

// ErrMissingTable is returned for assets lacking one of the required tables.
var ErrMissingTable = errors.New("tables: required table missing from asset")

var xzMagic = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}

//go:embed zhcdict.json
var embedded []byte

// Embedded returns the tables of the asset compiled into this package.
func Embedded() (Tables, error) {
	return Load(bytes.NewReader(embedded))
}

// LoadFile loads a table asset from a file.
func LoadFile(path string) (Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Load reads a table asset, which may be plain JSON or xz-compressed JSON.
// The asset is checked for the presence of all required tables.
func Load(r io.Reader) (Tables, error) {
	br := bufio.NewReader(r)
	var input io.Reader = br
	if magic, err := br.Peek(len(xzMagic)); err == nil && bytes.Equal(magic, xzMagic) {
		tracer().Debugf("table asset is xz-compressed")
		xzr, err := xz.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("tables: %w", err)
		}
		input = xzr
	}
	var t Tables
	if err := json.NewDecoder(input).Decode(&t); err != nil {
		return nil, fmt.Errorf("tables: cannot decode asset: %w", err)
	}
	if err := t.check(); err != nil {
		return nil, err
	}
	tracer().Infof("loaded %d conversion tables", len(t))
	return t, nil
}

func (t Tables) check() error {
	for _, name := range Required {
		if _, ok := t[name]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingTable, name)
		}
	}
	return nil
}
