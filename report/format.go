package report

import (
	"fmt"
	"strings"
)

// Format selects one report encoding. The set is closed: each variant
// owns exclusive write access to its fixed file or subdirectory beneath
// the output directory, so multiple formats compose in one directory.
type Format int

const (
	// FormatHTML writes a browsable multi-file tree under "html/".
	FormatHTML Format = iota
	// FormatCSV writes a single coverage.csv.
	FormatCSV
	// FormatXML writes a single coverage.xml.
	FormatXML
)

func (f Format) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatCSV:
		return "csv"
	case FormatXML:
		return "xml"
	}
	return "unknown"
}

// ParseFormat resolves a format identifier.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "html":
		return FormatHTML, nil
	case "csv":
		return FormatCSV, nil
	case "xml":
		return FormatXML, nil
	}
	return 0, fmt.Errorf("unknown report format %q (expected html, csv or xml)", name)
}

// Visitor receives coverage records one class at a time and must be
// closed before the output directory is considered complete.
type Visitor interface {
	Visit(class ClassCoverage) error
	Close() error
}

// CreateVisitor opens a report-writing handle for this format beneath
// outputDir.
func (f Format) CreateVisitor(outputDir string) (Visitor, error) {
	switch f {
	case FormatHTML:
		return newHTMLVisitor(outputDir)
	case FormatCSV:
		return newCSVVisitor(outputDir)
	case FormatXML:
		return newXMLVisitor(outputDir)
	}
	return nil, fmt.Errorf("unknown report format %d", f)
}

// Generate drains src through one visitor per requested format. The
// selector performs no merging; each format writes independently.
func Generate(src Source, outputDir string, formats []Format) error {
	classes, err := src.Classes()
	if err != nil {
		return err
	}
	for _, format := range formats {
		visitor, err := format.CreateVisitor(outputDir)
		if err != nil {
			return err
		}
		for _, class := range classes {
			if err := visitor.Visit(class); err != nil {
				visitor.Close()
				return fmt.Errorf("failed to write %s report: %w", format, err)
			}
		}
		if err := visitor.Close(); err != nil {
			return fmt.Errorf("failed to finalize %s report: %w", format, err)
		}
	}
	return nil
}
