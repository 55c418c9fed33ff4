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
)

// A Tile is a single image cell of a tileset. A tile is either held by
// exactly one tileset or orphaned; orphaned tiles belong to whoever removed
// or created them.
type Tile struct {
	ID          int
	ImageSource string
	Width       int
	Height      int
	Probability float64
	Type        string
	Properties  map[string]string

	tileset  *Tileset // owning tileset, nil while orphaned
	released bool
}

// NewTile creates an orphaned tile.
func NewTile(id int) *Tile {
	return &Tile{ID: id, Probability: 1.0}
}

// Owner returns the tileset that contains the tile, or nil.
func (t *Tile) Owner() *Tileset {
	return t.tileset
}

func (t *Tile) Released() bool {
	return t.released
}

// Release destroys an orphaned tile. A tile can be released only once and
// never while a tileset still holds it.
func (t *Tile) Release() error {
	if t.released {
		return fmt.Errorf("%w: tile %d", ErrTileReleased, t.ID)
	}
	if t.tileset != nil {
		return fmt.Errorf("%w: tile %d in %q", ErrTileOwned, t.ID, t.tileset.Name)
	}
	t.released = true
	t.Properties = nil
	return nil
}

func (t *Tile) String() string {
	return fmt.Sprintf("tile %d", t.ID)
}
