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

// Package tileset implements tilesets, the containers that own tiles.
// Tiles are kept ordered by ID, so removing a list of tiles and adding the
// same list back restores every tile to its original position.
package tileset

import (
	"fmt"
	"sort"
)

type Tileset struct {
	Name       string
	TileWidth  int
	TileHeight int
	Columns    int

	tiles      []*Tile       // ordered by ID
	index      map[int]*Tile // tiles by ID
	nextTileID int
}

func NewTileset(name string, tileWidth, tileHeight int) *Tileset {
	return &Tileset{
		Name:       name,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		tiles:      make([]*Tile, 0),
		index:      make(map[int]*Tile),
	}
}

// NewTiles creates count orphaned tiles with fresh IDs. The tiles are not
// added to the tileset; their IDs are reserved so that later calls never
// reuse them.
func (ts *Tileset) NewTiles(count int, imageSource string) []*Tile {
	tiles := make([]*Tile, 0, count)
	for i := 0; i < count; i++ {
		tile := NewTile(ts.takeNextTileID())
		tile.ImageSource = imageSource
		tile.Width = ts.TileWidth
		tile.Height = ts.TileHeight
		tiles = append(tiles, tile)
	}
	return tiles
}

func (ts *Tileset) takeNextTileID() int {
	id := ts.nextTileID
	ts.nextTileID++
	return id
}

func (ts *Tileset) NextTileID() int {
	return ts.nextTileID
}

// AddTiles inserts tiles into the tileset. Either every tile is added or,
// when an error is returned, none is. Tiles take their place by ID, not by
// their position in the list: adding [T2, T1] yields [T1, T2].
func (ts *Tileset) AddTiles(tiles []*Tile) error {
	seen := make(map[int]bool, len(tiles))
	for _, tile := range tiles {
		switch {
		case tile == nil:
			return fmt.Errorf("%w: nil tile", ErrTileNotFound)
		case tile.released:
			return fmt.Errorf("%w: tile %d", ErrTileReleased, tile.ID)
		case tile.tileset == ts:
			return fmt.Errorf("%w: tile %d", ErrDuplicateTile, tile.ID)
		case tile.tileset != nil:
			return fmt.Errorf("%w: tile %d in %q", ErrTileOwned, tile.ID, tile.tileset.Name)
		case ts.index[tile.ID] != nil || seen[tile.ID]:
			return fmt.Errorf("%w: tile %d", ErrDuplicateTile, tile.ID)
		}
		seen[tile.ID] = true
	}
	for _, tile := range tiles {
		i := ts.position(tile.ID)
		ts.tiles = append(ts.tiles, nil)
		copy(ts.tiles[i+1:], ts.tiles[i:])
		ts.tiles[i] = tile
		ts.index[tile.ID] = tile
		tile.tileset = ts
		if tile.ID >= ts.nextTileID {
			ts.nextTileID = tile.ID + 1
		}
	}
	return nil
}

// RemoveTiles takes tiles out of the tileset and leaves them orphaned.
// Either every tile is removed or, when an error is returned, none is.
func (ts *Tileset) RemoveTiles(tiles []*Tile) error {
	seen := make(map[int]bool, len(tiles))
	for _, tile := range tiles {
		if tile == nil {
			return fmt.Errorf("%w: nil tile", ErrTileNotFound)
		}
		if ts.index[tile.ID] != tile || seen[tile.ID] {
			return fmt.Errorf("%w: tile %d in %q", ErrTileNotFound, tile.ID, ts.Name)
		}
		seen[tile.ID] = true
	}
	for _, tile := range tiles {
		i := ts.position(tile.ID)
		ts.tiles = append(ts.tiles[:i], ts.tiles[i+1:]...)
		delete(ts.index, tile.ID)
		tile.tileset = nil
	}
	return nil
}

// position returns the index of the tile with the given ID, or the index at
// which it would be inserted.
func (ts *Tileset) position(id int) int {
	return sort.Search(len(ts.tiles), func(i int) bool {
		return ts.tiles[i].ID >= id
	})
}

// Tiles returns the tiles in order. The slice is a copy; the tiles are not.
func (ts *Tileset) Tiles() []*Tile {
	tiles := make([]*Tile, len(ts.tiles))
	copy(tiles, ts.tiles)
	return tiles
}

func (ts *Tileset) IDs() []int {
	ids := make([]int, 0, len(ts.tiles))
	for _, tile := range ts.tiles {
		ids = append(ids, tile.ID)
	}
	return ids
}

func (ts *Tileset) TileCount() int {
	return len(ts.tiles)
}

func (ts *Tileset) FindTile(id int) *Tile {
	return ts.index[id]
}

func (ts *Tileset) Contains(tile *Tile) bool {
	return tile != nil && ts.index[tile.ID] == tile
}

// TileAt returns the tile at a position in tile order, or nil.
func (ts *Tileset) TileAt(i int) *Tile {
	if i < 0 || i >= len(ts.tiles) {
		return nil
	}
	return ts.tiles[i]
}
