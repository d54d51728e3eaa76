package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fuzzmill/fuzzmill/campaign"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "html", want: FormatHTML},
		{in: "csv", want: FormatCSV},
		{in: "xml", want: FormatXML},
		{in: "HTML", want: FormatHTML},
		{in: "pdf", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func sampleClasses() []ClassCoverage {
	return []ClassCoverage{
		{
			Package:      "com.example",
			Class:        "Target",
			Instructions: Counter{Covered: 120, Missed: 30},
			Branches:     Counter{Covered: 10, Missed: 5},
			Lines:        Counter{Covered: 40, Missed: 12},
		},
		{
			Package:      "com.example",
			Class:        "Helper",
			Instructions: Counter{Covered: 15, Missed: 85},
			Branches:     Counter{Covered: 1, Missed: 9},
			Lines:        Counter{Covered: 5, Missed: 20},
		},
		{
			Package:      "com.example.util",
			Class:        "Strings",
			Instructions: Counter{Covered: 0, Missed: 50},
			Branches:     Counter{},
			Lines:        Counter{Covered: 0, Missed: 18},
		},
	}
}

type sliceSource []ClassCoverage

func (s sliceSource) Classes() ([]ClassCoverage, error) { return s, nil }

func TestCSVWritesSingleFixedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Generate(sliceSource(sampleClasses()), dir, []Format{FormatCSV}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, CSVFileName, entries[0].Name())

	data, err := os.ReadFile(filepath.Join(dir, CSVFileName))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4) // header + one row per class
	require.Equal(t, strings.Join(csvHeader, ","), lines[0])
	require.Contains(t, lines[1], "com.example,Target,30,120,5,10,12,40")
}

func TestXMLWritesSingleFixedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Generate(sliceSource(sampleClasses()), dir, []Format{FormatXML}))

	data, err := os.ReadFile(filepath.Join(dir, XMLFileName))
	require.NoError(t, err)
	content := string(data)
	require.Contains(t, content, "<report>")
	require.Contains(t, content, "</report>")
	require.Contains(t, content, `<class package="com.example" name="Target">`)
	require.Contains(t, content, `<counter type="INSTRUCTION" missed="30" covered="120">`)
}

func TestHTMLWritesPopulatedTree(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Generate(sliceSource(sampleClasses()), dir, []Format{FormatHTML}))

	htmlDir := filepath.Join(dir, HTMLDirName)
	index, err := os.ReadFile(filepath.Join(htmlDir, "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(index), "com.example")
	require.Contains(t, string(index), "com.example.util")

	page, err := os.ReadFile(filepath.Join(htmlDir, "com.example.html"))
	require.NoError(t, err)
	require.Contains(t, string(page), "Target")
	require.Contains(t, string(page), "Helper")
	require.Contains(t, string(page), "120/150")
}

func TestFormatsComposeInOneDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Generate(sliceSource(sampleClasses()), dir,
		[]Format{FormatCSV, FormatHTML, FormatXML}))

	for _, path := range []string{
		filepath.Join(dir, CSVFileName),
		filepath.Join(dir, XMLFileName),
		filepath.Join(dir, HTMLDirName, "index.html"),
	} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Greater(t, info.Size(), int64(0))
	}

	// The row-based file is untouched by the other formats.
	data, err := os.ReadFile(filepath.Join(dir, CSVFileName))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), strings.Join(csvHeader, ",")))
}

func TestVisitorCreationFailureIsIOError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	for _, format := range []Format{FormatCSV, FormatXML} {
		_, err := format.CreateVisitor(missing)
		var ioErr *campaign.IOError
		require.ErrorAs(t, err, &ioErr, "format %s", format)
	}
}

func TestJSONSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coverage.json")
	data, err := json.Marshal(sampleClasses())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	classes, err := JSONSource{Path: path}.Classes()
	require.NoError(t, err)
	require.Len(t, classes, 3)
	require.Equal(t, "Target", classes[0].Class)

	_, err = JSONSource{Path: filepath.Join(t.TempDir(), "missing.json")}.Classes()
	require.Error(t, err)
}
