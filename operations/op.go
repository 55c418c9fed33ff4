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
package operations

import (
	"errors"
	"fmt"
	"log"

	"github.com/timburks/gotiles/tileset"
	gott "github.com/timburks/gotiles/types"
)

// State tells where a mutation's tiles live.
type State int

const (
	Owned     State = iota // the mutation holds the tiles
	Contained              // the tileset holds the tiles
)

func (s State) String() string {
	switch s {
	case Owned:
		return "owned"
	case Contained:
		return "contained"
	default:
		return "unknown"
	}
}

// held exists only while the mutation owns its tiles.
type held struct {
	tiles []*tileset.Tile
}

// AddRemoveTiles is the shared part of AddTiles and RemoveTiles. It knows how
// to move tiles in either direction; the variants decide which direction is
// Apply and which is Undo.
type AddRemoveTiles struct {
	text      string
	container gott.Container
	notifier  gott.Notifier
	tiles     []*tileset.Tile // replay list, never owning
	held      *held           // non-nil iff State() == Owned
	released  bool
	apply     func() error
	undo      func() error
}

func (op *AddRemoveTiles) init(c gott.Container, n gott.Notifier, tiles []*tileset.Tile, startsApplied bool, text string) {
	op.text = text
	op.container = c
	op.notifier = n
	op.tiles = make([]*tileset.Tile, len(tiles))
	copy(op.tiles, tiles)
	if !startsApplied {
		op.held = &held{tiles: op.tiles}
	}
}

func (op *AddRemoveTiles) Apply() error {
	if op.apply == nil {
		return op.unwired("apply")
	}
	return op.apply()
}

func (op *AddRemoveTiles) Undo() error {
	if op.undo == nil {
		return op.unwired("undo")
	}
	return op.undo()
}

// unwired reports a mutation that was not made by NewAddTiles or NewRemoveTiles.
func (op *AddRemoveTiles) unwired(direction string) error {
	err := &ContractViolation{Text: op.text, Op: direction, State: op.State()}
	log.Printf("%v", err)
	return err
}

// Text returns the label of the mutation, untranslated.
func (op *AddRemoveTiles) Text() string {
	return op.text
}

func (op *AddRemoveTiles) State() State {
	if op.held != nil {
		return Owned
	}
	return Contained
}

func (op *AddRemoveTiles) Released() bool {
	return op.released
}

// Tiles returns the tiles the mutation moves, in order.
func (op *AddRemoveTiles) Tiles() []*tileset.Tile {
	tiles := make([]*tileset.Tile, len(op.tiles))
	copy(tiles, op.tiles)
	return tiles
}

func (op *AddRemoveTiles) check(direction string, want State) error {
	if op.released {
		return ErrMutationReleased
	}
	if state := op.State(); state != want {
		err := &ContractViolation{Text: op.text, Op: direction, State: state}
		log.Printf("%v", err)
		return err
	}
	return nil
}

func (op *AddRemoveTiles) performAdd() error {
	if err := op.check("add", Owned); err != nil {
		return err
	}
	if err := op.container.AddTiles(op.held.tiles); err != nil {
		return &ContainerError{Text: op.text, Op: "add", Err: err}
	}
	op.held = nil
	op.changed()
	return nil
}

func (op *AddRemoveTiles) performRemove() error {
	if err := op.check("remove", Contained); err != nil {
		return err
	}
	if err := op.container.RemoveTiles(op.tiles); err != nil {
		return &ContainerError{Text: op.text, Op: "remove", Err: err}
	}
	op.held = &held{tiles: op.tiles}
	op.changed()
	return nil
}

func (op *AddRemoveTiles) changed() {
	if op.notifier != nil {
		op.notifier.TilesetChanged(op.container)
	}
}

// Release ends the mutation. Tiles the mutation owns are released once each,
// in list order; tiles held by the tileset are left alone.
func (op *AddRemoveTiles) Release() error {
	if op.released {
		return ErrMutationReleased
	}
	op.released = true
	h := op.held
	op.held = nil
	op.tiles = nil
	if h == nil {
		return nil
	}
	var errs []error
	for _, tile := range h.tiles {
		if tile == nil {
			errs = append(errs, fmt.Errorf("%s: nil tile", op.text))
			continue
		}
		if err := tile.Release(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
