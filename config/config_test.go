//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "gotiles.yaml")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UndoLimit != 100 || cfg.Locale != "en-US" || cfg.TileWidth != 32 {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "undo-limit: 5\nlocale: de\ntileset: terrain.yaml\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UndoLimit != 5 || cfg.Locale != "de" || cfg.Tileset != "terrain.yaml" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.TileHeight != 32 {
		t.Errorf("Defaults were not kept: %+v", cfg)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "undo-limit: 5\nlocale: de\n")
	t.Setenv("GOTILES_LOCALE", "fr")
	t.Setenv("GOTILES_TILE_WIDTH", "16")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Locale != "fr" || cfg.TileWidth != 16 || cfg.UndoLimit != 5 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Expected an error for a missing explicit config")
	}

	path := writeConfig(t, "undo-limit: -1\n")
	if _, err := Load(path); err == nil {
		t.Errorf("Expected an error for a negative undo limit")
	}

	t.Setenv("GOTILES_UNDO_LIMIT", "many")
	_, err := Load(writeConfig(t, ""))
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Errorf("Expected parse env error, got %v", err)
	}
}
