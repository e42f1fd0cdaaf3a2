// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/staranto/filecache/internal/attrs"
	"github.com/staranto/filecache/internal/cacheutil"
	"github.com/staranto/filecache/internal/config"
)

func TestSortDataset(t *testing.T) {
	testData := []map[string]interface{}{
		{"name": "zebra", "count": 3.0, "kind": "entry"},
		{"name": "alpha", "count": int64(1), "kind": "temp"},
		{"name": "beta", "count": 2, "kind": "entry"},
	}

	tests := []struct {
		name      string
		spec      string
		wantOrder []string
	}{
		{
			name:      "ascending by name",
			spec:      "name",
			wantOrder: []string{"alpha", "beta", "zebra"},
		},
		{
			name:      "descending by name",
			spec:      "-name",
			wantOrder: []string{"zebra", "beta", "alpha"},
		},
		{
			name:      "ascending by count",
			spec:      "count",
			wantOrder: []string{"alpha", "beta", "zebra"},
		},
		{
			name:      "descending by count",
			spec:      "-count",
			wantOrder: []string{"zebra", "beta", "alpha"},
		},
		{
			name:      "case sensitive",
			spec:      "!name",
			wantOrder: []string{"alpha", "beta", "zebra"},
		},
		{
			name:      "multiple fields",
			spec:      "kind,-name",
			wantOrder: []string{"zebra", "beta", "alpha"},
		},
		{
			name:      "missing key keeps order",
			spec:      "nope",
			wantOrder: []string{"zebra", "alpha", "beta"},
		},
		{
			name:      "empty spec",
			spec:      "",
			wantOrder: []string{"zebra", "alpha", "beta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]map[string]interface{}, len(testData))
			copy(data, testData)
			SortDataset(data, tt.spec)
			for i, expectedName := range tt.wantOrder {
				assert.Equal(t, expectedName, data[i]["name"], "at index %d", i)
			}
		})
	}
}

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		emptyVal string
		want     string
	}{
		{
			name:  "string",
			value: "hello",
			want:  "hello",
		},
		{
			name:  "int",
			value: 42,
			want:  "42",
		},
		{
			name:  "int64",
			value: int64(1 << 40),
			want:  "1099511627776",
		},
		{
			name:  "float64",
			value: 42.5,
			want:  "42",
		},
		{
			name:  "float64 with decimal",
			value: 42.7,
			want:  "43",
		},
		{
			name:  "bool true",
			value: true,
			want:  "true",
		},
		{
			name:  "bool false is zero value",
			value: false,
			want:  "",
		},
		{
			name:  "nil default",
			value: nil,
			want:  "",
		},
		{
			name:     "nil custom",
			value:    nil,
			emptyVal: "-",
			want:     "-",
		},
		{
			name:  "slice",
			value: []string{"a", "b"},
			want:  `["a","b"]`,
		},
		{
			name:  "map",
			value: map[string]int{"x": 1},
			want:  `{"x":1}`,
		},
		{
			name:  "zero value int",
			value: 0,
			want:  "",
		},
		{
			name:     "zero value with custom empty",
			value:    0,
			emptyVal: "N/A",
			want:     "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.emptyVal != "" {
				got = InterfaceToString(tt.value, tt.emptyVal)
			} else {
				got = InterfaceToString(tt.value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetColors(t *testing.T) {
	t.Setenv("FILECACHE_CFG", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("APPDATA", "")
	t.Setenv("HOME", t.TempDir())
	config.Config = config.Type{}

	header, even, odd := getColors("colors")
	assert.Equal(t, "#f6be00", header)
	assert.Equal(t, "#ffffff", even)
	assert.Equal(t, "#00c8f0", odd)
}

func TestSortDataset_CaseSensitivity(t *testing.T) {
	names := func(data []map[string]interface{}) []string {
		var out []string
		for _, row := range data {
			out = append(out, row["name"].(string))
		}
		return out
	}
	fresh := func() []map[string]interface{} {
		return []map[string]interface{}{
			{"name": "zebra"},
			{"name": "Beta"},
			{"name": "alpha"},
		}
	}

	data := fresh()
	SortDataset(data, "name")
	assert.Equal(t, []string{"alpha", "Beta", "zebra"}, names(data))

	data = fresh()
	SortDataset(data, "!name")
	assert.Equal(t, []string{"Beta", "alpha", "zebra"}, names(data))

	data = fresh()
	SortDataset(data, "-!name")
	assert.Equal(t, []string{"zebra", "alpha", "Beta"}, names(data))
}

func testRows() []map[string]interface{} {
	return []map[string]interface{}{
		{"key": "b", "bytes": int64(20), "kind": "entry"},
		{"key": "a", "bytes": int64(10), "kind": "temp"},
	}
}

func testAttrs(t *testing.T, spec string) attrs.AttrList {
	t.Helper()
	var al attrs.AttrList
	require.NoError(t, al.Set(spec))
	return al
}

func TestSpit(t *testing.T) {
	t.Setenv("FILECACHE_CFG", "")
	t.Setenv("HOME", t.TempDir())
	config.Config = config.Type{}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		err := Spit(&buf, testRows(), testAttrs(t, "key,bytes:Size,!kind"), Options{Format: "json", Sort: "key"})
		require.NoError(t, err)

		var got []map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, []map[string]interface{}{
			{"key": "a", "Size": 10.0},
			{"key": "b", "Size": 20.0},
		}, got)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		err := Spit(&buf, testRows(), testAttrs(t, "key::u"), Options{Format: "yaml", Sort: "-bytes"})
		require.NoError(t, err)

		var got []map[string]interface{}
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, []map[string]interface{}{{"key": "B"}, {"key": "A"}}, got)
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		err := Spit(&buf, testRows(), testAttrs(t, "key,kind"), Options{Sort: "key", Titles: true})
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, []string{"key", "kind"}, strings.Fields(lines[0]))
		assert.Equal(t, []string{"a", "temp"}, strings.Fields(lines[1]))
		assert.Equal(t, []string{"b", "entry"}, strings.Fields(lines[2]))
		assert.NotContains(t, buf.String(), "\x1b[", "no color unless asked")
	})

	t.Run("text without rows", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Spit(&buf, nil, testAttrs(t, "key"), Options{Format: "text"}))
		assert.Empty(t, buf.String())
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		err := Spit(&buf, testRows(), testAttrs(t, "key"), Options{Format: "xml"})
		assert.Error(t, err)
	})
}

func TestEntryRows(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	entries := []cacheutil.Entry{
		{Key: "k", Path: "/c/k", Size: 2048, ModTime: now.Add(-2 * time.Hour)},
		{Key: "k", Path: "/c/k.save", Size: 1, ModTime: now, Temp: true},
	}

	rows := EntryRows(entries, now)
	require.Len(t, rows, 2)

	assert.Equal(t, "entry", rows[0]["kind"])
	assert.Equal(t, "k", rows[0]["key"])
	assert.Equal(t, int64(2048), rows[0]["bytes"])
	assert.Equal(t, "2.0 kB", rows[0]["size"])
	assert.Equal(t, "2026-01-02T01:04:05Z", rows[0]["modified"])
	assert.Equal(t, "2 hours ago", rows[0]["age"])

	assert.Equal(t, "temp", rows[1]["kind"])
	assert.Equal(t, "/c/k.save", rows[1]["path"])
}

func BenchmarkSortDataset(b *testing.B) {
	testData := []map[string]interface{}{
		{"name": "zebra", "count": 3.0},
		{"name": "alpha", "count": 1.0},
		{"name": "beta", "count": 2.0},
	}

	spec := "name"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		data := make([]map[string]interface{}, len(testData))
		copy(data, testData)
		SortDataset(data, spec)
	}
}

func BenchmarkInterfaceToString(b *testing.B) {
	values := []interface{}{
		"string",
		42,
		42.5,
		true,
		nil,
		[]string{"a", "b"},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range values {
			InterfaceToString(v)
		}
	}
}
