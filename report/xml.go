package report

// xml.go writes the structured-markup report: one fixed-named
// coverage.xml streamed class by class.

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fuzzmill/fuzzmill/campaign"
)

// XMLFileName is the fixed name of the structured-markup report.
const XMLFileName = "coverage.xml"

type xmlCounter struct {
	Type    string `xml:"type,attr"`
	Missed  int    `xml:"missed,attr"`
	Covered int    `xml:"covered,attr"`
}

type xmlClass struct {
	XMLName  xml.Name     `xml:"class"`
	Package  string       `xml:"package,attr"`
	Name     string       `xml:"name,attr"`
	Counters []xmlCounter `xml:"counter"`
}

type xmlVisitor struct {
	file    *os.File
	encoder *xml.Encoder
}

func newXMLVisitor(outputDir string) (Visitor, error) {
	path := filepath.Join(outputDir, XMLFileName)
	file, err := os.Create(path)
	if err != nil {
		return nil, &campaign.IOError{Msg: fmt.Sprintf("failed to create %s", path), Cause: err}
	}
	if _, err := file.WriteString(xml.Header); err != nil {
		file.Close()
		return nil, &campaign.IOError{Msg: fmt.Sprintf("failed to write %s", path), Cause: err}
	}
	encoder := xml.NewEncoder(file)
	encoder.Indent("", "  ")
	if err := encoder.EncodeToken(xml.StartElement{Name: xml.Name{Local: "report"}}); err != nil {
		file.Close()
		return nil, &campaign.IOError{Msg: fmt.Sprintf("failed to write %s", path), Cause: err}
	}
	return &xmlVisitor{file: file, encoder: encoder}, nil
}

func (v *xmlVisitor) Visit(class ClassCoverage) error {
	return v.encoder.Encode(xmlClass{
		Package: class.Package,
		Name:    class.Class,
		Counters: []xmlCounter{
			{Type: "INSTRUCTION", Missed: class.Instructions.Missed, Covered: class.Instructions.Covered},
			{Type: "BRANCH", Missed: class.Branches.Missed, Covered: class.Branches.Covered},
			{Type: "LINE", Missed: class.Lines.Missed, Covered: class.Lines.Covered},
		},
	})
}

func (v *xmlVisitor) Close() error {
	if err := v.encoder.EncodeToken(xml.EndElement{Name: xml.Name{Local: "report"}}); err != nil {
		v.file.Close()
		return err
	}
	if err := v.encoder.Close(); err != nil {
		v.file.Close()
		return err
	}
	return v.file.Close()
}
