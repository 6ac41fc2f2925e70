package driver

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// fixtureManifest is one YAML file under testdata/: a named suite of source
// programs with their expected print output and diagnostic lines.
type fixtureManifest struct {
	Suite string        `yaml:"suite"`
	Cases []fixtureCase `yaml:"cases"`
}

type fixtureCase struct {
	Name        string   `yaml:"name"`
	Source      string   `yaml:"source"`
	Output      string   `yaml:"output"`
	Diagnostics []string `yaml:"diagnostics"`
}

func loadManifest(t *testing.T, path string) fixtureManifest {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var manifest fixtureManifest
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&manifest); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	if manifest.Suite == "" {
		t.Fatalf("%s: manifest is missing a suite name", path)
	}
	return manifest
}

func TestExecFixtures(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no fixture manifests under testdata/")
	}

	for _, path := range paths {
		manifest := loadManifest(t, path)
		t.Run(manifest.Suite, func(t *testing.T) {
			for _, tc := range manifest.Cases {
				t.Run(tc.Name, func(t *testing.T) {
					var out bytes.Buffer
					result := Run([]byte(tc.Source), &out)
					if got := out.String(); got != tc.Output {
						t.Errorf("output:\ngot  %q\nwant %q", got, tc.Output)
					}
					if got := result.Diagnostics; !equalLines(got, tc.Diagnostics) {
						t.Errorf("diagnostics:\ngot  %q\nwant %q", got, tc.Diagnostics)
					}
					wantFailure := len(tc.Diagnostics) > 0
					if result.Ok() == wantFailure {
						t.Errorf("Ok() = %v with diagnostics %q", result.Ok(), tc.Diagnostics)
					}
				})
			}
		})
	}
}

func equalLines(got []string, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if strings.TrimRight(got[i], "\n") != strings.TrimRight(want[i], "\n") {
			return false
		}
	}
	return true
}
