// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig sets FILECACHE_CFG to point to a test config file.
// Returns cleanup function that should be deferred.
func setupTestConfig(t *testing.T, testdataFile string) (cleanup func()) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("FILECACHE_CFG", absPath)

	// Reset the global Config to force reload
	Config = Type{}

	return func() {
		Config = Type{}
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		namespace []string
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple string values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Equal(t, "json", cfg.Data["output"])
				assert.Equal(t, "-size", cfg.Data["sort"])
				assert.Empty(t, cfg.Namespace)
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				colors, ok := cfg.Data["colors"].(map[string]interface{})
				require.True(t, ok, "colors should be a map")
				assert.Equal(t, "#f6be00", colors["title"])
			},
		},
		{
			name:     "mixed types",
			testFile: "mixed-types.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.Equal(t, 1, cfg.Data["padding"])
				assert.Equal(t, true, cfg.Data["titles"])
				assert.Equal(t, 80.5, cfg.Data["width"])
				attrs, ok := cfg.Data["attrs"].([]interface{})
				assert.True(t, ok)
				assert.Len(t, attrs, 3)
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source, "should have a source path")
				assert.Empty(t, cfg.Data)
			},
		},
		{
			name:      "namespace argument",
			testFile:  "namespace.yaml",
			namespace: []string{"ls"},
			checkFunc: func(t *testing.T, cfg Type) {
				assert.Equal(t, "ls", cfg.Namespace)
				assert.Equal(t, "ls", Config.Namespace)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestConfig(t, tt.testFile)
			defer cleanup()

			cfg, err := Load(tt.namespace...)
			require.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("FILECACHE_CFG", "/nonexistent/path/filecache.yaml")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_FILECACHE_CFG_IsDirectory(t *testing.T) {
	t.Setenv("FILECACHE_CFG", "testdata")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestLoad_SearchesStandardLocations(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "filecache.yaml"), []byte("output: yaml\n"), 0o600))

	t.Setenv("FILECACHE_CFG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("APPDATA", "")
	t.Setenv("HOME", home)
	Config = Type{}
	defer func() { Config = Type{} }()

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "filecache.yaml"), cfg.Source)
	assert.Equal(t, "yaml", cfg.Data["output"])
}

func TestLoad_InvalidYAML(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "filecache.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("output: [unterminated\n"), 0o600))
	t.Setenv("FILECACHE_CFG", bad)
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestGetString(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []string
		want         string
		wantErr      bool
	}{
		{
			name:     "simple string value",
			testFile: "simple.yaml",
			key:      "output",
			want:     "json",
		},
		{
			name:     "nested string value",
			testFile: "nested.yaml",
			key:      "colors.odd",
			want:     "#00c8f0",
		},
		{
			name:         "missing key with default",
			testFile:     "simple.yaml",
			key:          "missing",
			defaultValue: []string{"default-value"},
			want:         "default-value",
		},
		{
			name:     "missing key without default",
			testFile: "simple.yaml",
			key:      "missing",
			wantErr:  true,
		},
		{
			name:     "non-string value",
			testFile: "mixed-types.yaml",
			key:      "padding",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestConfig(t, tt.testFile)
			defer cleanup()

			_, _ = Load()

			got, err := GetString(tt.key, tt.defaultValue...)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []int
		want         int
		wantErr      bool
	}{
		{
			name:     "int value",
			testFile: "mixed-types.yaml",
			key:      "padding",
			want:     1,
		},
		{
			name:     "float value converted to int",
			testFile: "mixed-types.yaml",
			key:      "width",
			want:     80,
		},
		{
			name:     "nested int value",
			testFile: "nested.yaml",
			key:      "ls.padding",
			want:     2,
		},
		{
			name:         "missing key with default",
			testFile:     "simple.yaml",
			key:          "missing",
			defaultValue: []int{60},
			want:         60,
		},
		{
			name:     "missing key without default",
			testFile: "simple.yaml",
			key:      "missing",
			wantErr:  true,
		},
		{
			name:     "non-int value",
			testFile: "simple.yaml",
			key:      "output",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestConfig(t, tt.testFile)
			defer cleanup()

			_, _ = Load()

			got, err := GetInt(tt.key, tt.defaultValue...)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetStringSlice(t *testing.T) {
	cleanup := setupTestConfig(t, "mixed-types.yaml")
	defer cleanup()

	got, err := GetStringSlice("attrs")
	require.NoError(t, err)
	assert.Equal(t, []string{"kind", "key", "size"}, got)

	got, err = GetStringSlice("output")
	require.NoError(t, err)
	assert.Equal(t, []string{"text"}, got)

	_, err = GetStringSlice("padding")
	assert.Error(t, err)

	got, err = GetStringSlice("missing", []string{"key"})
	require.NoError(t, err)
	assert.Equal(t, []string{"key"}, got)
}

func TestConfig_GetWithNamespace(t *testing.T) {
	cleanup := setupTestConfig(t, "nested.yaml")
	defer cleanup()

	_, err := Load()
	require.NoError(t, err)

	Config.Namespace = "ls"
	val, err := Config.get("output")
	assert.NoError(t, err)
	assert.Equal(t, "yaml", val)

	Config.Namespace = "show"
	val, err = Config.get("output")
	assert.NoError(t, err)
	assert.Equal(t, "text", val)

	// Falls back to the bare key when the namespace lacks it.
	val, err = Config.get("colors.even")
	assert.NoError(t, err)
	assert.Equal(t, "#ffffff", val)
}

func TestConfig_GetNestedPath(t *testing.T) {
	cleanup := setupTestConfig(t, "deep-nested.yaml")
	defer cleanup()

	_, err := Load()
	assert.NoError(t, err)

	val, err := Config.get("level1.level2.level3.value")
	assert.NoError(t, err)
	assert.Equal(t, "deep-value", val)
}

func TestConfig_LazyLoad(t *testing.T) {
	cleanup := setupTestConfig(t, "simple.yaml")
	defer cleanup()

	// No explicit Load(); GetString loads on demand.
	val, err := GetString("output")
	assert.NoError(t, err)
	assert.Equal(t, "json", val)
	assert.NotEmpty(t, Config.Source, "Config should be loaded")
}

func TestGetString_NamespaceFallback(t *testing.T) {
	cleanup := setupTestConfig(t, "namespace.yaml")
	defer cleanup()

	_, err := Load("ls")
	assert.NoError(t, err)

	val, err := GetString("output")
	assert.NoError(t, err)
	assert.Equal(t, "json", val)

	val, err = GetString("sort")
	assert.NoError(t, err)
	assert.Equal(t, "key", val)

	_, err = GetString("nonexistent")
	assert.Error(t, err)
}
