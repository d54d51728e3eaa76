package report

// html.go writes the human-browsable report: an index page plus one
// page per package, all under a fixed html/ subdirectory.

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"

	"github.com/fuzzmill/fuzzmill/campaign"
)

// HTMLDirName is the fixed subdirectory holding the browsable report.
const HTMLDirName = "html"

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>Coverage Report</title></head>
<body>
<h1>Coverage Report</h1>
<table border="1">
<tr><th>Package</th><th>Classes</th><th>Lines Covered</th><th>Lines Missed</th></tr>
{{range .}}<tr>
<td><a href="{{.File}}">{{.Name}}</a></td>
<td>{{len .Classes}}</td>
<td>{{.Lines.Covered}}</td>
<td>{{.Lines.Missed}}</td>
</tr>
{{end}}</table>
</body>
</html>
`))

var packageTemplate = template.Must(template.New("package").Parse(`<!DOCTYPE html>
<html>
<head><title>Coverage Report - {{.Name}}</title></head>
<body>
<h1>{{.Name}}</h1>
<p><a href="index.html">Back to index</a></p>
<table border="1">
<tr><th>Class</th><th>Instructions</th><th>Branches</th><th>Lines</th></tr>
{{range .Classes}}<tr>
<td>{{.Class}}</td>
<td>{{.Instructions.Covered}}/{{.Instructions.Total}}</td>
<td>{{.Branches.Covered}}/{{.Branches.Total}}</td>
<td>{{.Lines.Covered}}/{{.Lines.Total}}</td>
</tr>
{{end}}</table>
</body>
</html>
`))

type htmlPackage struct {
	Name    string
	File    string
	Lines   Counter
	Classes []ClassCoverage
}

type htmlVisitor struct {
	dir      string
	packages map[string]*htmlPackage
}

func newHTMLVisitor(outputDir string) (Visitor, error) {
	dir := filepath.Join(outputDir, HTMLDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &campaign.IOError{Msg: fmt.Sprintf("failed to create %s", dir), Cause: err}
	}
	return &htmlVisitor{dir: dir, packages: make(map[string]*htmlPackage)}, nil
}

func (v *htmlVisitor) Visit(class ClassCoverage) error {
	pkg, ok := v.packages[class.Package]
	if !ok {
		name := class.Package
		if name == "" {
			name = "default"
		}
		pkg = &htmlPackage{Name: name, File: name + ".html"}
		v.packages[class.Package] = pkg
	}
	pkg.Lines.Covered += class.Lines.Covered
	pkg.Lines.Missed += class.Lines.Missed
	pkg.Classes = append(pkg.Classes, class)
	return nil
}

// Close renders the package pages and the index. The tree is only
// complete once Close returns.
func (v *htmlVisitor) Close() error {
	packages := make([]*htmlPackage, 0, len(v.packages))
	for _, pkg := range v.packages {
		packages = append(packages, pkg)
	}
	sort.Slice(packages, func(i, j int) bool { return packages[i].Name < packages[j].Name })

	for _, pkg := range packages {
		sort.Slice(pkg.Classes, func(i, j int) bool { return pkg.Classes[i].Class < pkg.Classes[j].Class })
		if err := v.renderPage(pkg.File, packageTemplate, pkg); err != nil {
			return err
		}
	}
	return v.renderPage("index.html", indexTemplate, packages)
}

func (v *htmlVisitor) renderPage(name string, tmpl *template.Template, data any) error {
	file, err := os.Create(filepath.Join(v.dir, name))
	if err != nil {
		return err
	}
	if err := tmpl.Execute(file, data); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
