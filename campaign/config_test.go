package campaign

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseBudget(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{
			name: "one day",
			in:   "P1D",
			want: 24 * time.Hour,
		},
		{
			name: "thirty minutes",
			in:   "PT30M",
			want: 30 * time.Minute,
		},
		{
			name: "composite",
			in:   "PT1H30M",
			want: 90 * time.Minute,
		},
		{
			name:    "empty",
			in:      "",
			wantErr: true,
		},
		{
			name:    "malformed",
			in:      "one day",
			wantErr: true,
		},
		{
			name:    "go duration grammar rejected",
			in:      "24h",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBudget(tt.in)
			if tt.wantErr {
				var cfgErr *ConfigError
				require.ErrorAs(t, err, &cfgErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestValidateJavaExec(t *testing.T) {
	tmp := t.TempDir()
	javaPath := filepath.Join(tmp, "java")
	require.NoError(t, os.WriteFile(javaPath, []byte("#!/bin/sh\n"), 0755))

	require.NoError(t, ValidateJavaExec(javaPath))

	wrongName := filepath.Join(tmp, "python")
	require.NoError(t, os.WriteFile(wrongName, []byte("#!/bin/sh\n"), 0755))

	tests := []struct {
		name string
		path string
	}{
		{name: "empty path", path: ""},
		{name: "wrong executable name", path: wrongName},
		{name: "missing file", path: filepath.Join(tmp, "bin", "java")},
		{name: "directory named java", path: mustMkdir(t, filepath.Join(tmp, "dir", "java"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJavaExec(tt.path)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			if tt.path != "" {
				require.Contains(t, err.Error(), tt.path)
			}
		})
	}
}

func mustMkdir(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0755))
	return path
}

func TestNewConfigValidation(t *testing.T) {
	if _, err := NewConfig("", "fuzzTest", time.Hour, "campaign", nil, "test.jar", "java"); err == nil {
		t.Error("expected error for empty target class")
	}
	if _, err := NewConfig("com.example.Target", "", time.Hour, "campaign", nil, "test.jar", "java"); err == nil {
		t.Error("expected error for empty target method")
	}
	if _, err := NewConfig("com.example.Target", "fuzzTest", -time.Second, "campaign", nil, "test.jar", "java"); err == nil {
		t.Error("expected error for negative budget")
	}
}

func TestConfigIsImmutable(t *testing.T) {
	opts := []string{"-Xmx1g", "-ea"}
	cfg, err := NewConfig("com.example.Target", "fuzzTest", time.Hour, "campaign", opts, "test.jar", "java")
	require.NoError(t, err)

	// Mutating the caller's slice must not leak into the config.
	opts[0] = "-Xmx2g"
	require.Equal(t, []string{"-Xmx1g", "-ea"}, cfg.JavaOptions())

	// Mutating the accessor's result must not either.
	got := cfg.JavaOptions()
	got[1] = "-da"
	require.Equal(t, []string{"-Xmx1g", "-ea"}, cfg.JavaOptions())
}
