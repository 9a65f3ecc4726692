package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/logtrack/pkg/cache"
	errs "github.com/matzehuels/logtrack/pkg/errors"
)

func TestCacheDir(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		dir     string
		want    string
		code    errs.Code
	}{
		{"configured dir", cache.BackendFile, "/tmp/lt", "/tmp/lt", ""},
		{"none uses configured dir", cache.BackendNone, "/tmp/lt", "/tmp/lt", ""},
		{"redis has no dir", cache.BackendRedis, "", "", errs.ErrCodeUnsupported},
		{"mongo has no dir", cache.BackendMongo, "/tmp/lt", "", errs.ErrCodeUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(&bytes.Buffer{}, LogInfo)
			c.Config.Cache.Backend = tt.backend
			c.Config.Cache.Dir = tt.dir

			got, err := c.cacheDir()
			if tt.code != "" {
				if !errs.Is(err, tt.code) {
					t.Errorf("err = %v, want %s", err, tt.code)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("cacheDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCacheDirDefault(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	dir, err := c.cacheDir()
	if err != nil {
		t.Skipf("no user cache dir: %v", err)
	}
	if filepath.Base(dir) != appName {
		t.Errorf("cacheDir() = %q, want it to end in %q", dir, appName)
	}
}

// writeConfig writes a config file pointing the file cache at dir.
func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[cache]\nbackend = \"file\"\ndir = \"" + filepath.ToSlash(dir) + "\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCacheCommands(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)

	run := func(args ...string) string {
		t.Helper()
		c := New(&bytes.Buffer{}, LogInfo)
		root := c.RootCommand()
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetArgs(append([]string{"--config", cfg}, args...))
		if err := root.Execute(); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		return out.String()
	}

	if got := strings.TrimSpace(run("cache", "path")); got != filepath.ToSlash(dir) && got != dir {
		t.Errorf("cache path = %q, want %q", got, dir)
	}

	run("render", "one", "-f", "svg", "-o", filepath.Join(t.TempDir(), "one.svg"))
	if n := countEntries(dir); n == 0 {
		t.Fatal("render left no cache entries")
	}

	run("cache", "clear")
	if n := countEntries(dir); n != 0 {
		t.Errorf("%d entries left after clear", n)
	}
}

func countEntries(dir string) int {
	n := 0
	_ = filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() && filepath.Ext(p) == ".json" {
			n++
		}
		return nil
	})
	return n
}
