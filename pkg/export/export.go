// Package export renders stored test cases as downloadable bundles.
package export

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/qaforge/qaforge/ent"
)

// Format selects the bundle encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatZip  Format = "zip"
)

// ParseFormat validates a format query value. Empty defaults to JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatZip:
		return FormatZip, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// Bundle is a rendered download.
type Bundle struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Item is one exported test case.
type Item struct {
	TestID      string    `json:"test_id" yaml:"test_id"`
	RequestID   string    `json:"request_id" yaml:"request_id"`
	Name        string    `json:"name" yaml:"name"`
	Code        string    `json:"code" yaml:"code"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	TestType    string    `json:"test_type,omitempty" yaml:"test_type,omitempty"`
	Score       int       `json:"score" yaml:"score"`
	Valid       bool      `json:"valid" yaml:"valid"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// Manifest describes a bundle. In zip bundles it is written as
// manifest.json next to the per-test .py files.
type Manifest struct {
	GeneratedAt time.Time      `json:"generated_at" yaml:"generated_at"`
	TestCount   int            `json:"test_count" yaml:"test_count"`
	Tests       []ManifestTest `json:"tests" yaml:"tests"`
}

// ManifestTest is one manifest row. File is only set for zip bundles.
type ManifestTest struct {
	TestID    string `json:"test_id" yaml:"test_id"`
	RequestID string `json:"request_id" yaml:"request_id"`
	Name      string `json:"name" yaml:"name"`
	TestType  string `json:"test_type,omitempty" yaml:"test_type,omitempty"`
	Score     int    `json:"score" yaml:"score"`
	Valid     bool   `json:"valid" yaml:"valid"`
	File      string `json:"file,omitempty" yaml:"file,omitempty"`
}

type document struct {
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	TestCount   int       `json:"test_count" yaml:"test_count"`
	Tests       []Item    `json:"tests" yaml:"tests"`
}

// BuildBundle renders test cases in the requested format. now is
// injectable for deterministic manifests.
func BuildBundle(tests []*ent.TestCase, format Format, now time.Time) (*Bundle, error) {
	switch format {
	case FormatJSON:
		return buildJSON(tests, now)
	case FormatYAML:
		return buildYAML(tests, now)
	case FormatZip:
		return buildZip(tests, now)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

func toItems(tests []*ent.TestCase) []Item {
	items := make([]Item, 0, len(tests))
	for _, t := range tests {
		items = append(items, Item{
			TestID:      t.ID,
			RequestID:   t.RequestID,
			Name:        t.Name,
			Code:        t.Code,
			Description: t.Description,
			TestType:    t.TestType,
			Score:       t.Score,
			Valid:       t.Valid,
			CreatedAt:   t.CreatedAt,
		})
	}
	return items
}

func buildJSON(tests []*ent.TestCase, now time.Time) (*Bundle, error) {
	doc := document{GeneratedAt: now.UTC(), TestCount: len(tests), Tests: toItems(tests)}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return &Bundle{
		Filename:    fmt.Sprintf("tests-%s.json", now.UTC().Format("20060102-150405")),
		ContentType: "application/json",
		Data:        data,
	}, nil
}

func buildYAML(tests []*ent.TestCase, now time.Time) (*Bundle, error) {
	doc := document{GeneratedAt: now.UTC(), TestCount: len(tests), Tests: toItems(tests)}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return &Bundle{
		Filename:    fmt.Sprintf("tests-%s.yaml", now.UTC().Format("20060102-150405")),
		ContentType: "application/x-yaml",
		Data:        buf.Bytes(),
	}, nil
}

// buildZip writes one .py file per test plus a manifest.json. Filenames
// derive from test names; collisions across requests get a numeric
// suffix so every test keeps its own file.
func buildZip(tests []*ent.TestCase, now time.Time) (*Bundle, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	manifest := Manifest{GeneratedAt: now.UTC(), TestCount: len(tests)}
	used := make(map[string]int)

	for _, t := range tests {
		name := t.Name + ".py"
		if n := used[name]; n > 0 {
			used[name] = n + 1
			name = fmt.Sprintf("%s_%d.py", t.Name, n+1)
		} else {
			used[name] = 1
		}

		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("failed to build archive: %w", err)
		}
		if _, err := w.Write([]byte(t.Code)); err != nil {
			return nil, fmt.Errorf("failed to build archive: %w", err)
		}

		manifest.Tests = append(manifest.Tests, ManifestTest{
			TestID:    t.ID,
			RequestID: t.RequestID,
			Name:      t.Name,
			TestType:  t.TestType,
			Score:     t.Score,
			Valid:     t.Valid,
			File:      name,
		})
	}

	mw, err := zw.Create("manifest.json")
	if err != nil {
		return nil, fmt.Errorf("failed to build archive: %w", err)
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to build archive: %w", err)
	}
	if _, err := mw.Write(data); err != nil {
		return nil, fmt.Errorf("failed to build archive: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to build archive: %w", err)
	}
	return &Bundle{
		Filename:    fmt.Sprintf("tests-%s.zip", now.UTC().Format("20060102-150405")),
		ContentType: "application/zip",
		Data:        buf.Bytes(),
	}, nil
}
