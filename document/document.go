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
package document

import (
	"errors"
	"fmt"
	"log"

	"github.com/timburks/gotiles/operations"
	"github.com/timburks/gotiles/tileset"
	gott "github.com/timburks/gotiles/types"
)

// MaxAddTiles bounds the number of tiles a single AddTiles call may create.
const MaxAddTiles = 1 << 16

var (
	ErrTooManyTiles  = errors.New("too many tiles")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// The Document holds a tileset and its undo history.
type Document struct {
	tileset   *tileset.Tileset
	fileName  string
	undo      []gott.Mutation // applied mutations, oldest first
	redo      []gott.Mutation // undone mutations, most recently undone last
	limit     int             // maximum undo depth, 0 for unlimited
	clean     int             // undo depth at the last save, -1 if unreachable
	revision  int             // number of changes seen
	listeners []func(*tileset.Tileset)
}

func NewDocument(ts *tileset.Tileset) *Document {
	return &Document{tileset: ts}
}

// ReadFile opens a document for a tileset file.
func ReadFile(path string) (*Document, error) {
	ts, err := tileset.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d := NewDocument(ts)
	d.fileName = path
	return d, nil
}

func (d *Document) GetTileset() *tileset.Tileset {
	return d.tileset
}

func (d *Document) GetFileName() string {
	return d.fileName
}

func (d *Document) GetRevision() int {
	return d.revision
}

// WriteFile saves the tileset and marks the document clean.
func (d *Document) WriteFile(path string) error {
	if path == "" {
		path = d.fileName
	}
	if path == "" {
		return errors.New("no file name")
	}
	if err := d.tileset.WriteFile(path); err != nil {
		return err
	}
	log.Printf("Wrote %d tile(s) to %s", d.tileset.TileCount(), path)
	d.fileName = path
	d.clean = len(d.undo)
	return nil
}

func (d *Document) IsModified() bool {
	return d.clean != len(d.undo)
}

// Subscribe registers a function that is called after every change.
func (d *Document) Subscribe(listener func(*tileset.Tileset)) {
	d.listeners = append(d.listeners, listener)
}

// TilesetChanged is called by mutations after they change the tileset.
func (d *Document) TilesetChanged(c gott.Container) {
	if c != gott.Container(d.tileset) {
		log.Printf("Ignoring change notification for a foreign container")
		return
	}
	d.revision++
	for _, listener := range d.listeners {
		listener(d.tileset)
	}
}

// SetUndoLimit bounds the number of undoable mutations. Mutations that fall
// off the bottom of the stack are released.
func (d *Document) SetUndoLimit(limit int) error {
	if limit < 0 {
		return fmt.Errorf("invalid undo limit %d", limit)
	}
	d.limit = limit
	return d.trim()
}

// Perform applies a mutation and pushes it on the undo stack. The document
// takes ownership of m: if it cannot be applied, it is released.
func (d *Document) Perform(m gott.Mutation) error {
	if err := m.Apply(); err != nil {
		log.Printf("%s failed: %v", m.Text(), err)
		return errors.Join(err, m.Release())
	}
	err := d.discardRedo()
	d.undo = append(d.undo, m)
	return errors.Join(err, d.trim())
}

func (d *Document) PerformUndo() error {
	if len(d.undo) == 0 {
		return ErrNothingToUndo
	}
	last := len(d.undo) - 1
	m := d.undo[last]
	if err := m.Undo(); err != nil {
		return fmt.Errorf("undo %s: %w", m.Text(), err)
	}
	d.undo = d.undo[0:last]
	d.redo = append(d.redo, m)
	return nil
}

func (d *Document) PerformRedo() error {
	if len(d.redo) == 0 {
		return ErrNothingToRedo
	}
	last := len(d.redo) - 1
	m := d.redo[last]
	if err := m.Apply(); err != nil {
		return fmt.Errorf("redo %s: %w", m.Text(), err)
	}
	d.redo = d.redo[0:last]
	d.undo = append(d.undo, m)
	return nil
}

func (d *Document) CanUndo() bool {
	return len(d.undo) > 0
}

func (d *Document) CanRedo() bool {
	return len(d.redo) > 0
}

func (d *Document) UndoText() string {
	if len(d.undo) == 0 {
		return ""
	}
	return d.undo[len(d.undo)-1].Text()
}

func (d *Document) RedoText() string {
	if len(d.redo) == 0 {
		return ""
	}
	return d.redo[len(d.redo)-1].Text()
}

// History returns the labels of all mutations, oldest first, and the number
// of them that are currently applied.
func (d *Document) History() ([]string, int) {
	texts := make([]string, 0, len(d.undo)+len(d.redo))
	for _, m := range d.undo {
		texts = append(texts, m.Text())
	}
	for i := len(d.redo) - 1; i >= 0; i-- {
		texts = append(texts, d.redo[i].Text())
	}
	return texts, len(d.undo)
}

// discardRedo drops the redo branch, releasing its mutations.
func (d *Document) discardRedo() error {
	var errs []error
	for len(d.redo) > 0 {
		first := d.redo[0]
		d.redo = d.redo[1:]
		errs = append(errs, first.Release())
	}
	d.redo = nil
	if d.clean > len(d.undo) {
		d.clean = -1
	}
	return errors.Join(errs...)
}

func (d *Document) trim() error {
	var errs []error
	for d.limit > 0 && len(d.undo) > d.limit {
		oldest := d.undo[0]
		d.undo = d.undo[1:]
		errs = append(errs, oldest.Release())
		d.clean--
	}
	if d.clean < -1 {
		d.clean = -1
	}
	return errors.Join(errs...)
}

// Close releases every mutation. The document must not be used afterwards.
func (d *Document) Close() error {
	err := d.discardRedo()
	var errs []error
	for i := len(d.undo) - 1; i >= 0; i-- {
		errs = append(errs, d.undo[i].Release())
	}
	d.undo = nil
	return errors.Join(append(errs, err)...)
}

// AddTiles creates count new tiles and adds them with an undoable mutation.
func (d *Document) AddTiles(count int, imageSource string) ([]*tileset.Tile, error) {
	if count <= 0 {
		return nil, fmt.Errorf("invalid tile count %d", count)
	}
	if count > MaxAddTiles {
		return nil, fmt.Errorf("%w: %d (at most %d)", ErrTooManyTiles, count, MaxAddTiles)
	}
	tiles := d.tileset.NewTiles(count, imageSource)
	log.Printf("Adding %d tile(s) to %s", count, d.tileset.Name)
	if err := d.Perform(operations.NewAddTiles(d.tileset, d, tiles)); err != nil {
		return nil, err
	}
	return tiles, nil
}

// RemoveTiles removes the tiles with the given IDs with an undoable mutation.
func (d *Document) RemoveTiles(ids ...int) error {
	if len(ids) == 0 {
		return nil
	}
	tiles := make([]*tileset.Tile, 0, len(ids))
	for _, id := range ids {
		tile := d.tileset.FindTile(id)
		if tile == nil {
			return fmt.Errorf("%w: tile %d in %q", tileset.ErrTileNotFound, id, d.tileset.Name)
		}
		tiles = append(tiles, tile)
	}
	log.Printf("Removing %d tile(s) from %s", len(tiles), d.tileset.Name)
	return d.Perform(operations.NewRemoveTiles(d.tileset, d, tiles))
}
