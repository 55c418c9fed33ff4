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
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func setup(t *testing.T, ids ...int) (*Tileset, []*Tile) {
	ts := NewTileset("terrain", 32, 32)
	tiles := make([]*Tile, 0, len(ids))
	for _, id := range ids {
		tiles = append(tiles, NewTile(id))
	}
	if err := ts.AddTiles(tiles); err != nil {
		t.Fatalf("AddTiles failed: %+v", err)
	}
	return ts, tiles
}

func TestAddTilesKeepsIDOrder(t *testing.T) {
	ts, _ := setup(t, 4, 1, 3)
	if ids := ts.IDs(); !reflect.DeepEqual(ids, []int{1, 3, 4}) {
		t.Errorf("Unexpected tile order: %v", ids)
	}
	if next := ts.NextTileID(); next != 5 {
		t.Errorf("Unexpected next tile id: %d", next)
	}
	for _, tile := range ts.Tiles() {
		if tile.Owner() != ts {
			t.Errorf("Tile %d is not owned by the tileset", tile.ID)
		}
	}
}

func TestRemoveAndReaddRestoresPosition(t *testing.T) {
	ts, tiles := setup(t, 1, 2, 3)
	middle := tiles[1:2]
	if err := ts.RemoveTiles(middle); err != nil {
		t.Fatalf("RemoveTiles failed: %+v", err)
	}
	if ids := ts.IDs(); !reflect.DeepEqual(ids, []int{1, 3}) {
		t.Errorf("Unexpected tiles after removal: %v", ids)
	}
	if tiles[1].Owner() != nil {
		t.Errorf("Removed tile is still owned")
	}
	if err := ts.AddTiles(middle); err != nil {
		t.Fatalf("AddTiles failed: %+v", err)
	}
	if got := ts.Tiles(); !reflect.DeepEqual(got, tiles) {
		t.Errorf("Tiles not restored: %v", ts.IDs())
	}
}

func TestAddTilesIsAllOrNothing(t *testing.T) {
	ts, _ := setup(t, 1, 2)
	err := ts.AddTiles([]*Tile{NewTile(3), NewTile(2)})
	if !errors.Is(err, ErrDuplicateTile) {
		t.Fatalf("Expected duplicate tile error, got %v", err)
	}
	if ids := ts.IDs(); !reflect.DeepEqual(ids, []int{1, 2}) {
		t.Errorf("Failed add changed the tileset: %v", ids)
	}

	err = ts.AddTiles([]*Tile{NewTile(7), NewTile(7)})
	if !errors.Is(err, ErrDuplicateTile) {
		t.Errorf("Expected duplicate tile error for repeated id, got %v", err)
	}
}

func TestAddTilesRejectsForeignAndReleasedTiles(t *testing.T) {
	ts, _ := setup(t, 1)
	other, foreign := setup(t, 5)
	if err := ts.AddTiles(foreign); !errors.Is(err, ErrTileOwned) {
		t.Errorf("Expected owned tile error, got %v", err)
	}
	if err := other.RemoveTiles(foreign); err != nil {
		t.Fatalf("RemoveTiles failed: %+v", err)
	}
	if err := foreign[0].Release(); err != nil {
		t.Fatalf("Release failed: %+v", err)
	}
	if err := ts.AddTiles(foreign); !errors.Is(err, ErrTileReleased) {
		t.Errorf("Expected released tile error, got %v", err)
	}
}

func TestRemoveTilesIsAllOrNothing(t *testing.T) {
	ts, tiles := setup(t, 1, 2)
	err := ts.RemoveTiles([]*Tile{tiles[0], NewTile(2)})
	if !errors.Is(err, ErrTileNotFound) {
		t.Fatalf("Expected tile not found error, got %v", err)
	}
	if ts.TileCount() != 2 || !ts.Contains(tiles[0]) {
		t.Errorf("Failed removal changed the tileset: %v", ts.IDs())
	}
}

func TestRelease(t *testing.T) {
	ts, tiles := setup(t, 1)
	if err := tiles[0].Release(); !errors.Is(err, ErrTileOwned) {
		t.Errorf("Releasing a contained tile should fail, got %v", err)
	}
	if err := ts.RemoveTiles(tiles); err != nil {
		t.Fatalf("RemoveTiles failed: %+v", err)
	}
	if err := tiles[0].Release(); err != nil {
		t.Errorf("Release failed: %+v", err)
	}
	if err := tiles[0].Release(); !errors.Is(err, ErrTileReleased) {
		t.Errorf("Second release should fail, got %v", err)
	}
}

func TestNewTilesReservesIDs(t *testing.T) {
	ts, _ := setup(t, 0, 1)
	first := ts.NewTiles(2, "grass.png")
	second := ts.NewTiles(1, "")
	if first[0].ID != 2 || first[1].ID != 3 || second[0].ID != 4 {
		t.Errorf("Unexpected ids: %v %v", first, second)
	}
	if first[0].Owner() != nil || ts.TileCount() != 2 {
		t.Errorf("NewTiles must not add tiles to the tileset")
	}
	if first[0].Width != 32 || first[0].ImageSource != "grass.png" {
		t.Errorf("Unexpected tile: %+v", first[0])
	}
}

func TestReadWriteFile(t *testing.T) {
	ts, tiles := setup(t, 0, 2)
	tiles[1].Probability = 0.5
	tiles[1].Properties = map[string]string{"walkable": "true"}
	ts.NewTiles(1, "")

	path := filepath.Join(t.TempDir(), "terrain.yaml")
	if err := ts.WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %+v", err)
	}
	loaded, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %+v", err)
	}
	if loaded.Name != "terrain" || loaded.TileWidth != 32 {
		t.Errorf("Unexpected tileset: %+v", loaded)
	}
	if ids := loaded.IDs(); !reflect.DeepEqual(ids, []int{0, 2}) {
		t.Errorf("Unexpected tiles: %v", ids)
	}
	if loaded.NextTileID() != 4 {
		t.Errorf("Unexpected next tile id: %d", loaded.NextTileID())
	}
	tile := loaded.FindTile(2)
	if tile.Probability != 0.5 || tile.Properties["walkable"] != "true" {
		t.Errorf("Unexpected tile: %+v", tile)
	}
	if loaded.FindTile(0).Probability != 1.0 {
		t.Errorf("Default probability not restored")
	}
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	_, err := Parse([]byte("name: bad\ntiles:\n  - id: 1\n  - id: 1\n"))
	if !errors.Is(err, ErrDuplicateTile) {
		t.Errorf("Expected duplicate tile error, got %v", err)
	}
}

func TestNilTilesAreRejected(t *testing.T) {
	ts, tiles := setup(t, 1)
	if err := ts.AddTiles([]*Tile{NewTile(2), nil}); !errors.Is(err, ErrTileNotFound) {
		t.Errorf("Expected tile not found for nil tile, got %v", err)
	}
	if err := ts.RemoveTiles([]*Tile{tiles[0], nil}); !errors.Is(err, ErrTileNotFound) {
		t.Errorf("Expected tile not found for nil tile, got %v", err)
	}
	if ids := ts.IDs(); !reflect.DeepEqual(ids, []int{1}) {
		t.Errorf("Nil tile changed the tileset: %v", ids)
	}
}

func TestAddTilesOrdersByID(t *testing.T) {
	ts := NewTileset("terrain", 32, 32)
	if err := ts.AddTiles([]*Tile{NewTile(2), NewTile(1)}); err != nil {
		t.Fatalf("AddTiles failed: %+v", err)
	}
	if ids := ts.IDs(); !reflect.DeepEqual(ids, []int{1, 2}) {
		t.Errorf("Unexpected tile order: %v", ids)
	}
}
