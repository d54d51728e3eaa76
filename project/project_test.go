package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fuzzmill/fuzzmill/campaign"
)

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fuzzmill.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeDescriptor(t, `
projectRoot: /work/demo
buildDir: /work/demo/target
testClasspath:
  - /work/demo/target/test-classes
  - /home/user/.m2/repository/junit/junit/4.13.2/junit-4.13.2.jar
`)

	p, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/work/demo", p.Root)
	require.Equal(t, "/work/demo/target", p.BuildDir)
	require.Len(t, p.TestClasspath, 2)
}

func TestLoadUnresolvedDependencies(t *testing.T) {
	path := writeDescriptor(t, `
buildDir: /work/demo/target
testClasspath: []
unresolved:
  - org.example:missing-artifact:1.0
`)

	_, err := Load(path)
	var resErr *campaign.ResolutionError
	require.ErrorAs(t, err, &resErr)
	require.Contains(t, err.Error(), "org.example:missing-artifact:1.0")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	var resErr *campaign.ResolutionError
	require.ErrorAs(t, err, &resErr)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeDescriptor(t, "buildDir: [unclosed")
	_, err := Load(path)
	var cfgErr *campaign.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestLoadMissingBuildDir(t *testing.T) {
	path := writeDescriptor(t, "projectRoot: /work/demo\n")
	_, err := Load(path)
	var cfgErr *campaign.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}
