package campaign

// stager.go builds the manifest jar that carries the test classpath.
// Long classpaths passed directly on a subprocess command line can
// exceed OS argument-length limits; the jar's Class-Path manifest
// attribute lets the JVM resolve the full classpath from a single file
// reference instead.

import (
	"archive/zip"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const manifestPath = "META-INF/MANIFEST.MF"

// StageManifestJar writes a jar at dest whose manifest Class-Path lists
// the given classpath elements as file URIs. Duplicates collapse and
// any pre-existing artifact at dest is overwritten.
func StageManifestJar(elements []string, dest string) error {
	refs, err := classPathRefs(elements)
	if err != nil {
		return err
	}

	out, err := os.Create(dest)
	if err != nil {
		return &IOError{Msg: fmt.Sprintf("failed to create manifest jar %s", dest), Cause: err}
	}

	zw := zip.NewWriter(out)
	entry, err := zw.Create(manifestPath)
	if err != nil {
		out.Close()
		return &IOError{Msg: "failed to create manifest entry", Cause: err}
	}
	if _, err := entry.Write([]byte(renderManifest(refs))); err != nil {
		out.Close()
		return &IOError{Msg: "failed to write manifest", Cause: err}
	}
	if err := zw.Close(); err != nil {
		out.Close()
		return &IOError{Msg: fmt.Sprintf("failed to finalize manifest jar %s", dest), Cause: err}
	}
	if err := out.Close(); err != nil {
		return &IOError{Msg: fmt.Sprintf("failed to finalize manifest jar %s", dest), Cause: err}
	}
	return nil
}

// classPathRefs absolutizes, deduplicates and sorts the elements,
// rendering each as a file URI. Directories get a trailing slash so the
// JVM treats them as class directories rather than jars.
func classPathRefs(elements []string) ([]string, error) {
	seen := make(map[string]struct{}, len(elements))
	refs := make([]string, 0, len(elements))
	for _, element := range elements {
		abs, err := filepath.Abs(element)
		if err != nil {
			return nil, &IOError{Msg: fmt.Sprintf("failed to resolve classpath element %s", element), Cause: err}
		}
		if _, ok := seen[abs]; ok {
			continue
		}
		seen[abs] = struct{}{}

		slashed := filepath.ToSlash(abs)
		if info, err := os.Stat(abs); err == nil && info.IsDir() && !strings.HasSuffix(slashed, "/") {
			slashed += "/"
		}
		u := url.URL{Scheme: "file", Path: slashed}
		refs = append(refs, u.String())
	}
	sort.Strings(refs)
	return refs, nil
}

func renderManifest(refs []string) string {
	var sb strings.Builder
	sb.WriteString(wrapAttribute("Manifest-Version", "1.0"))
	if len(refs) > 0 {
		sb.WriteString(wrapAttribute("Class-Path", strings.Join(refs, " ")))
	}
	sb.WriteString("\r\n")
	return sb.String()
}

// wrapAttribute renders a manifest attribute with the standard 72-byte
// line limit; continuation lines begin with a single space.
func wrapAttribute(name, value string) string {
	line := name + ": " + value
	var sb strings.Builder
	for len(line) > 72 {
		sb.WriteString(line[:72])
		sb.WriteString("\r\n")
		line = " " + line[72:]
	}
	sb.WriteString(line)
	sb.WriteString("\r\n")
	return sb.String()
}
