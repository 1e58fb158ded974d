package mapping

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjdinis/uncpath/internal/logging"
	"github.com/rjdinis/uncpath/internal/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTableAddAndLookup(t *testing.T) {
	tbl := NewTable()
	assert.False(t, tbl.Add(types.Mapping{Host: "Host1", Share: "Share1", MountPoint: "/mnt/test"}))

	tests := []struct {
		name  string
		host  string
		share string
		found bool
	}{
		{"exact", "Host1", "Share1", true},
		{"lowercase", "host1", "share1", true},
		{"uppercase", "HOST1", "SHARE1", true},
		{"other share", "host1", "share2", false},
		{"other host", "host2", "share1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := tbl.Lookup(tt.host, tt.share)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, "/mnt/test", m.MountPoint)
			}
		})
	}
}

func TestTableAddReplacesInPlace(t *testing.T) {
	tbl := NewTable()
	tbl.Add(types.Mapping{Host: "a", Share: "x", MountPoint: "/1"})
	tbl.Add(types.Mapping{Host: "b", Share: "y", MountPoint: "/2"})
	assert.True(t, tbl.Add(types.Mapping{Host: "A", Share: "X", MountPoint: "/3"}))

	ms := tbl.Mappings()
	require.Len(t, ms, 2)
	assert.Equal(t, "A", ms[0].Host)
	assert.Equal(t, "/3", ms[0].MountPoint)
	assert.Equal(t, "/2", ms[1].MountPoint)
}

func TestTableUnicodeFolding(t *testing.T) {
	tbl := NewTable()
	// precomposed vs decomposed e-acute
	tbl.Add(types.Mapping{Host: "caf\u00e9", Share: "\u00c5rhus", MountPoint: "/mnt/x"})

	_, ok := tbl.Lookup("CAFE\u0301", "\u00e5RHUS")
	assert.True(t, ok)
}

func TestParseCLI(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    types.Mapping
		wantErr bool
	}{
		{"valid", "host1:share1:/mnt/test", types.Mapping{Host: "host1", Share: "share1", MountPoint: "/mnt/test", Source: types.SourceCLI}, false},
		{"relative mount accepted", "h:s:mnt", types.Mapping{Host: "h", Share: "s", MountPoint: "mnt", Source: types.SourceCLI}, false},
		{"two fields", "invalid:format", types.Mapping{}, true},
		{"four fields", "a:b:/c:d", types.Mapping{}, true},
		{"empty host", ":share:/mnt", types.Mapping{}, true},
		{"empty mount", "host:share:", types.Mapping{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCLI(tt.arg)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, types.IsConfig(err))
				assert.Contains(t, err.Error(), tt.arg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCLIMessage(t *testing.T) {
	_, err := ParseCLI("invalid:format")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected format: host:share:mount_point")
}

func TestParseJSON(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		want    int
		wantErr string
	}{
		{"empty array", `[]`, 0, ""},
		{"null", `null`, 0, ""},
		{"single", `[{"host":"h","share":"s","mount_point":"/m"}]`, 1, ""},
		{"extra keys ignored", `[{"host":"h","share":"s","mount_point":"/m","comment":"x"}]`, 1, ""},
		{"malformed", `[{"host":`, 0, "JSON parsing error"},
		{"object not array", `{"host":"h"}`, 0, "JSON parsing error"},
		{"missing field", `[{"host":"h","share":"s"}]`, 0, "entry 0: missing field mount_point"},
		{"empty host", `[{"host":"","share":"s","mount_point":"/m"}]`, 0, "entry 0: host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseJSON([]byte(tt.json), "UNCPATH_MAPPINGS", types.SourceEnv)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, types.IsConfig(err))
				assert.Contains(t, err.Error(), "UNCPATH_MAPPINGS")
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
			for _, m := range got {
				assert.Equal(t, types.SourceEnv, m.Source)
			}
		})
	}
}

func TestParseJSONReportsAllBadEntries(t *testing.T) {
	data := `[
		{"host":"ok","share":"s","mount_point":"/m"},
		{"share":"s","mount_point":"/m"},
		{"host":"h","share":"a/b","mount_point":"/m"}
	]`
	_, err := ParseJSON([]byte(data), "mappings.json", types.SourceFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 1: missing field host")
	assert.Contains(t, err.Error(), "entry 2: share")
}

func TestLoadFile(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		path := writeFile(t, "m.json", `[{"host":"testhost","share":"testshare","mount_point":"/test/mount"}]`)
		ms, err := LoadFile(path)
		require.NoError(t, err)
		require.Len(t, ms, 1)
		assert.Equal(t, types.Mapping{Host: "testhost", Share: "testshare", MountPoint: "/test/mount", Source: types.SourceFile}, ms[0])
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "m.yaml", "- host: testhost\n  share: testshare\n  mount_point: /test/mount\n")
		ms, err := LoadFile(path)
		require.NoError(t, err)
		require.Len(t, ms, 1)
		assert.Equal(t, "/test/mount", ms[0].MountPoint)
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.json")
		_, err := LoadFile(path)
		require.Error(t, err)
		assert.True(t, types.IsConfig(err))
		assert.Contains(t, err.Error(), path)
	})

	t.Run("malformed", func(t *testing.T) {
		path := writeFile(t, "bad.json", "not json")
		_, err := LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})
}

func TestBuildPriority(t *testing.T) {
	file := writeFile(t, "m.json", `[
		{"host":"nas","share":"data","mount_point":"/from/file"},
		{"host":"filehost","share":"s","mount_point":"/file/only"}
	]`)

	tbl, err := Build(Sources{
		EnvJSON: `[{"host":"SERVER","share":"Shared","mount_point":"/from/env"},{"host":"nas","share":"data","mount_point":"/from/env/nas"}]`,
		File:    file,
		CLI:     []string{"server:shared:/from/cli"},
	})
	require.NoError(t, err)

	m, ok := tbl.Lookup("server", "shared")
	require.True(t, ok)
	assert.Equal(t, "/from/cli", m.MountPoint)
	assert.Equal(t, types.SourceCLI, m.Source)

	m, ok = tbl.Lookup("nas", "data")
	require.True(t, ok)
	assert.Equal(t, "/from/file", m.MountPoint)

	_, ok = tbl.Lookup("filehost", "s")
	assert.True(t, ok)
	assert.Equal(t, 3, tbl.Len())
}

func TestBuildDefaults(t *testing.T) {
	tbl, err := Build(Sources{})
	require.NoError(t, err)
	assert.Equal(t, Defaults, tbl.Mappings())

	tbl, err = Build(Sources{NoDefaults: true})
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
}

func TestBuildErrorsNameSource(t *testing.T) {
	tests := []struct {
		name string
		src  Sources
		want string
	}{
		{"env", Sources{EnvJSON: "[oops"}, "UNCPATH_MAPPINGS"},
		{"file", Sources{File: "/nonexistent/uncpath/mappings.json"}, "/nonexistent/uncpath/mappings.json"},
		{"cli", Sources{CLI: []string{"ok:ok:/ok", "broken"}}, "--mapping"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.src)
			require.Error(t, err)
			assert.True(t, types.IsConfig(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBuildFileAndCLIEquivalent(t *testing.T) {
	file := writeFile(t, "m.json", `[{"host":"h","share":"s","mount_point":"/mnt/h"}]`)

	fromFile, err := Build(Sources{NoDefaults: true, File: file})
	require.NoError(t, err)
	fromCLI, err := Build(Sources{NoDefaults: true, CLI: []string{"h:s:/mnt/h"}})
	require.NoError(t, err)

	a, _ := fromFile.Lookup("h", "s")
	b, _ := fromCLI.Lookup("h", "s")
	assert.Equal(t, a.MountPoint, b.MountPoint)
}

func TestBuilderLogsRelativeMountPoint(t *testing.T) {
	var buf bytes.Buffer
	b := NewBuilder(logging.NewWithWriter(&buf, false, true))

	_, err := b.Build(Sources{NoDefaults: true, CLI: []string{"h:s:relative/dir"}})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "not absolute")
	assert.Contains(t, buf.String(), "Loading 1 mapping(s) from --mapping")
}
