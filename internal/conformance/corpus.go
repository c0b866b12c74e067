// Package conformance loads and runs the RFC 8941 round-trip corpus: a
// set of (input, canonical, shape) fixtures that every parse/serialize
// path must reproduce byte-exactly, or reject when must_fail is set.
package conformance

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/sfv-go/sfv"
)

// testdataFS holds the full testdata tree, including the
// serialisation-tests subdirectory: a plain "testdata/*.json" glob
// would only reach the top-level files.
//
//go:embed testdata
var testdataFS embed.FS

// Case is a single corpus fixture, shaped after the httpwg
// structured-field-tests format: a raw wire value (possibly split
// across several header field lines, joined per RFC 8941 Section 4.2),
// its expected canonical form, and either may-fail or must-fail.
type Case struct {
	Name       string   `json:"name"`
	Shape      string   `json:"header_type"`
	Raw        []string `json:"raw"`
	Canonical  []string `json:"canonical,omitempty"`
	MustFail   bool     `json:"must_fail"`
	CanFail    bool     `json:"can_fail,omitempty"`
	Key        string   `json:"key,omitempty"`
	EnableDate bool     `json:"enable_date,omitempty"`
}

// LoadFile decodes a single corpus JSON file from testdata, given a
// path relative to testdata (e.g. "list.json" or
// "serialisation-tests/number.json").
func LoadFile(name string) ([]Case, error) {
	raw, err := testdataFS.ReadFile("testdata/" + name)
	if err != nil {
		return nil, err
	}
	var cases []Case
	if err := json.Unmarshal(raw, &cases); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return cases, nil
}

// LoadAll decodes every *.json fixture file under testdata, including
// its serialisation-tests subdirectory.
func LoadAll() ([]Case, error) {
	var all []Case
	err := fs.WalkDir(testdataFS, "testdata", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		rel := strings.TrimPrefix(path, "testdata/")
		cases, err := LoadFile(rel)
		if err != nil {
			return err
		}
		all = append(all, cases...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}

// Input joins a fixture's raw header lines the way multiple header field
// instances are combined before parsing, per RFC 8941 Section 4.2.
func (c Case) Input() string {
	joined := ""
	for i, line := range c.Raw {
		if i > 0 {
			joined += ", "
		}
		joined += line
	}
	return joined
}

// Run parses c.Input() with the shape named by c.Shape and reports
// whether the result matches c's expectation: either a SyntaxError when
// MustFail is set, or a canonical form equal to c.Canonical (or, if
// Canonical is empty, to c.Input() itself).
func Run(c Case) error {
	opts := sfv.ParseOptions{EnableDate: c.EnableDate}
	canonical, err := sfv.Canonicalize(c.Shape, c.Input(), opts)
	if c.MustFail {
		if err == nil {
			return fmt.Errorf("%s: expected parse failure, got %q", c.Name, canonical)
		}
		var syntaxErr *sfv.SyntaxError
		if !errors.As(err, &syntaxErr) {
			return fmt.Errorf("%s: expected a syntax error, got %w", c.Name, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: unexpected parse failure: %w", c.Name, err)
	}
	want := c.Input()
	if len(c.Canonical) > 0 {
		want = ""
		for i, line := range c.Canonical {
			if i > 0 {
				want += ", "
			}
			want += line
		}
	}
	if canonical != want {
		return fmt.Errorf("%s: canonical mismatch: got %q, want %q", c.Name, canonical, want)
	}
	return nil
}

