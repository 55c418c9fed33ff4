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
package tileset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type tilesetFile struct {
	Name       string     `yaml:"name"`
	TileWidth  int        `yaml:"tilewidth"`
	TileHeight int        `yaml:"tileheight"`
	Columns    int        `yaml:"columns,omitempty"`
	NextTileID int        `yaml:"nexttileid,omitempty"`
	Tiles      []tileFile `yaml:"tiles,omitempty"`
}

type tileFile struct {
	ID          int               `yaml:"id"`
	Image       string            `yaml:"image,omitempty"`
	Width       int               `yaml:"width,omitempty"`
	Height      int               `yaml:"height,omitempty"`
	Probability *float64          `yaml:"probability,omitempty"`
	Type        string            `yaml:"type,omitempty"`
	Properties  map[string]string `yaml:"properties,omitempty"`
}

// Parse reads a tileset from YAML.
func Parse(data []byte) (*Tileset, error) {
	var file tilesetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse tileset: %w", err)
	}
	ts := NewTileset(file.Name, file.TileWidth, file.TileHeight)
	ts.Columns = file.Columns
	tiles := make([]*Tile, 0, len(file.Tiles))
	for _, t := range file.Tiles {
		tile := NewTile(t.ID)
		tile.ImageSource = t.Image
		tile.Width = t.Width
		tile.Height = t.Height
		if t.Probability != nil {
			tile.Probability = *t.Probability
		}
		tile.Type = t.Type
		tile.Properties = t.Properties
		tiles = append(tiles, tile)
	}
	if err := ts.AddTiles(tiles); err != nil {
		return nil, fmt.Errorf("parse tileset %q: %w", file.Name, err)
	}
	if file.NextTileID > ts.nextTileID {
		ts.nextTileID = file.NextTileID
	}
	return ts, nil
}

// Bytes returns the YAML form of the tileset.
func (ts *Tileset) Bytes() ([]byte, error) {
	file := tilesetFile{
		Name:       ts.Name,
		TileWidth:  ts.TileWidth,
		TileHeight: ts.TileHeight,
		Columns:    ts.Columns,
		NextTileID: ts.nextTileID,
	}
	for _, tile := range ts.tiles {
		t := tileFile{
			ID:         tile.ID,
			Image:      tile.ImageSource,
			Width:      tile.Width,
			Height:     tile.Height,
			Type:       tile.Type,
			Properties: tile.Properties,
		}
		if tile.Probability != 1.0 {
			probability := tile.Probability
			t.Probability = &probability
		}
		file.Tiles = append(file.Tiles, t)
	}
	return yaml.Marshal(&file)
}

func ReadFile(path string) (*Tileset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func (ts *Tileset) WriteFile(path string) error {
	data, err := ts.Bytes()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
