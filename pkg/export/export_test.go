package export

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/qaforge/qaforge/ent"
)

var exportTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func sampleTests() []*ent.TestCase {
	return []*ent.TestCase{
		{
			ID:        "tc-1",
			RequestID: "req-1",
			Name:      "test_login_positive",
			Code:      "import allure\n\ndef test_login_positive(page):\n    assert True\n",
			TestType:  "positive",
			Score:     90,
			Valid:     true,
			CreatedAt: exportTime,
		},
		{
			ID:        "tc-2",
			RequestID: "req-2",
			Name:      "test_login_positive",
			Code:      "import allure\n\ndef test_login_positive(page):\n    assert 1 == 1\n",
			TestType:  "positive",
			Score:     75,
			Valid:     true,
			CreatedAt: exportTime,
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatJSON},
		{in: "json", want: FormatJSON},
		{in: "yaml", want: FormatYAML},
		{in: "zip", want: FormatZip},
		{in: "xml", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestBuildBundle_JSON(t *testing.T) {
	bundle, err := BuildBundle(sampleTests(), FormatJSON, exportTime)
	require.NoError(t, err)

	assert.Equal(t, "application/json", bundle.ContentType)
	assert.Equal(t, "tests-20260314-120000.json", bundle.Filename)

	var doc struct {
		TestCount int    `json:"test_count"`
		Tests     []Item `json:"tests"`
	}
	require.NoError(t, json.Unmarshal(bundle.Data, &doc))
	assert.Equal(t, 2, doc.TestCount)
	require.Len(t, doc.Tests, 2)
	assert.Equal(t, "tc-1", doc.Tests[0].TestID)
	assert.Contains(t, doc.Tests[0].Code, "def test_login_positive")
}

func TestBuildBundle_YAML(t *testing.T) {
	bundle, err := BuildBundle(sampleTests(), FormatYAML, exportTime)
	require.NoError(t, err)

	assert.Equal(t, "application/x-yaml", bundle.ContentType)

	var doc struct {
		TestCount int    `yaml:"test_count"`
		Tests     []Item `yaml:"tests"`
	}
	require.NoError(t, yaml.Unmarshal(bundle.Data, &doc))
	assert.Equal(t, 2, doc.TestCount)
	assert.Equal(t, "test_login_positive", doc.Tests[1].Name)
}

func TestBuildBundle_Zip(t *testing.T) {
	bundle, err := BuildBundle(sampleTests(), FormatZip, exportTime)
	require.NoError(t, err)
	assert.Equal(t, "application/zip", bundle.ContentType)

	zr, err := zip.NewReader(bytes.NewReader(bundle.Data), int64(len(bundle.Data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 3)

	files := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		raw, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		files[f.Name] = string(raw)
	}

	// Same test name from two requests keeps two files.
	assert.Contains(t, files, "test_login_positive.py")
	assert.Contains(t, files, "test_login_positive_2.py")
	assert.Contains(t, files["test_login_positive.py"], "assert True")
	assert.Contains(t, files["test_login_positive_2.py"], "assert 1 == 1")

	var manifest Manifest
	require.NoError(t, json.Unmarshal([]byte(files["manifest.json"]), &manifest))
	assert.Equal(t, 2, manifest.TestCount)
	require.Len(t, manifest.Tests, 2)
	assert.Equal(t, "test_login_positive.py", manifest.Tests[0].File)
	assert.Equal(t, "test_login_positive_2.py", manifest.Tests[1].File)
}

func TestBuildBundle_Empty(t *testing.T) {
	bundle, err := BuildBundle(nil, FormatJSON, exportTime)
	require.NoError(t, err)

	var doc document
	require.NoError(t, json.Unmarshal(bundle.Data, &doc))
	assert.Zero(t, doc.TestCount)
	assert.Empty(t, doc.Tests)
}
