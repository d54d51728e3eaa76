package report

// csv.go writes the row-based report: one fixed-named coverage.csv with
// a row per class.

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fuzzmill/fuzzmill/campaign"
)

// CSVFileName is the fixed name of the row-based report.
const CSVFileName = "coverage.csv"

var csvHeader = []string{
	"PACKAGE", "CLASS",
	"INSTRUCTION_MISSED", "INSTRUCTION_COVERED",
	"BRANCH_MISSED", "BRANCH_COVERED",
	"LINE_MISSED", "LINE_COVERED",
}

type csvVisitor struct {
	file   *os.File
	writer *csv.Writer
}

func newCSVVisitor(outputDir string) (Visitor, error) {
	path := filepath.Join(outputDir, CSVFileName)
	file, err := os.Create(path)
	if err != nil {
		return nil, &campaign.IOError{Msg: fmt.Sprintf("failed to create %s", path), Cause: err}
	}
	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		file.Close()
		return nil, &campaign.IOError{Msg: fmt.Sprintf("failed to write %s", path), Cause: err}
	}
	return &csvVisitor{file: file, writer: writer}, nil
}

func (v *csvVisitor) Visit(class ClassCoverage) error {
	return v.writer.Write([]string{
		class.Package, class.Class,
		strconv.Itoa(class.Instructions.Missed), strconv.Itoa(class.Instructions.Covered),
		strconv.Itoa(class.Branches.Missed), strconv.Itoa(class.Branches.Covered),
		strconv.Itoa(class.Lines.Missed), strconv.Itoa(class.Lines.Covered),
	})
}

func (v *csvVisitor) Close() error {
	v.writer.Flush()
	if err := v.writer.Error(); err != nil {
		v.file.Close()
		return err
	}
	return v.file.Close()
}
