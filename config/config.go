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

// Package config loads gotiles settings from a YAML file and the environment.
// Environment variables override values read from the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "GOTILES_"

type Config struct {
	UndoLimit  int    `yaml:"undo-limit" env:"UNDO_LIMIT"`
	Locale     string `yaml:"locale" env:"LOCALE"`
	LogFile    string `yaml:"log-file" env:"LOG_FILE"`
	Tileset    string `yaml:"tileset" env:"TILESET"`
	TileWidth  int    `yaml:"tile-width" env:"TILE_WIDTH"`
	TileHeight int    `yaml:"tile-height" env:"TILE_HEIGHT"`
}

func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		UndoLimit:  100,
		Locale:     "en-US",
		LogFile:    filepath.Join(home, ".gotileslog"),
		TileWidth:  32,
		TileHeight: 32,
	}
}

// DefaultPath is the file Load reads when no path is given.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".gotiles.yaml")
}

// Load reads the config file at path, then applies environment overrides.
// An empty path reads DefaultPath if it exists.
func Load(path string) (Config, error) {
	cfg := Default()
	optional := path == ""
	if optional {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	case optional && errors.Is(err, fs.ErrNotExist):
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.UndoLimit < 0 {
		return fmt.Errorf("invalid undo limit %d", c.UndoLimit)
	}
	if c.TileWidth <= 0 || c.TileHeight <= 0 {
		return fmt.Errorf("invalid tile size %dx%d", c.TileWidth, c.TileHeight)
	}
	return nil
}
