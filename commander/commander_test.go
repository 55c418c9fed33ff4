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
package commander

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/timburks/gotiles/document"
	"github.com/timburks/gotiles/tileset"
	gott "github.com/timburks/gotiles/types"
)

func setup(t *testing.T, locale string) (*Commander, *document.Document) {
	d := document.NewDocument(tileset.NewTileset("terrain", 16, 16))
	return NewCommander(d, locale), d
}

func keys(c *Commander, text string) {
	for _, ch := range text {
		c.ProcessEvent(&gott.Event{Type: gott.EventKey, Ch: ch})
	}
}

func key(c *Commander, k gott.Key) error {
	return c.ProcessEvent(&gott.Event{Type: gott.EventKey, Key: k})
}

func command(c *Commander, text string) error {
	keys(c, ":"+text)
	return key(c, gott.KeyEnter)
}

func TestAddUndoRedoKeys(t *testing.T) {
	c, d := setup(t, "en-US")
	ts := d.GetTileset()
	keys(c, "3a")
	if ts.TileCount() != 3 || c.GetSelection() != 2 {
		t.Errorf("Unexpected state after add: %v selection=%d", ts.IDs(), c.GetSelection())
	}
	if c.GetMessage() != "Add Tiles" {
		t.Errorf("Unexpected message: %q", c.GetMessage())
	}
	keys(c, "u")
	if ts.TileCount() != 0 || c.GetMessage() != "Undo Add Tiles" {
		t.Errorf("Unexpected state after undo: %v %q", ts.IDs(), c.GetMessage())
	}
	if err := key(c, gott.KeyCtrlR); err != nil {
		t.Fatalf("Redo failed: %+v", err)
	}
	if ts.TileCount() != 3 || c.GetMessage() != "Redo Add Tiles" {
		t.Errorf("Unexpected state after redo: %v %q", ts.IDs(), c.GetMessage())
	}
}

func TestRemoveSelectedKeys(t *testing.T) {
	c, d := setup(t, "en-US")
	ts := d.GetTileset()
	keys(c, "4a")
	key(c, gott.KeyHome)
	keys(c, "j2x")
	if ids := ts.IDs(); !reflect.DeepEqual(ids, []int{0, 3}) {
		t.Errorf("Unexpected tiles after removal: %v", ids)
	}
	keys(c, "u")
	if ids := ts.IDs(); !reflect.DeepEqual(ids, []int{0, 1, 2, 3}) {
		t.Errorf("Unexpected tiles after undo: %v", ids)
	}
}

func TestUndoWithEmptyHistory(t *testing.T) {
	c, _ := setup(t, "en-US")
	keys(c, "u")
	if c.GetMessage() != document.ErrNothingToUndo.Error() {
		t.Errorf("Unexpected message: %q", c.GetMessage())
	}
}

func TestTranslatedMessages(t *testing.T) {
	c, _ := setup(t, "de")
	keys(c, "a")
	if c.GetMessage() != "Kacheln hinzufügen" {
		t.Errorf("Unexpected message: %q", c.GetMessage())
	}
	keys(c, "u")
	if c.GetMessage() != "Rückgängig Kacheln hinzufügen" {
		t.Errorf("Unexpected message: %q", c.GetMessage())
	}
}

func TestCommands(t *testing.T) {
	c, d := setup(t, "en-US")
	ts := d.GetTileset()
	if err := command(c, "add 3 grass.png"); err != nil {
		t.Fatalf("add failed: %+v", err)
	}
	if ts.TileCount() != 3 || ts.FindTile(0).ImageSource != "grass.png" {
		t.Errorf("Unexpected tiles: %v", ts.IDs())
	}
	if err := command(c, "remove 0 2"); err != nil {
		t.Fatalf("remove failed: %+v", err)
	}
	if ids := ts.IDs(); !reflect.DeepEqual(ids, []int{1}) {
		t.Errorf("Unexpected tiles: %v", ids)
	}
	if err := command(c, "remove 9"); err == nil {
		t.Errorf("Expected an error removing a missing tile")
	}
	if err := command(c, "undo"); err != nil {
		t.Fatalf("undo failed: %+v", err)
	}
	if err := command(c, "limit 1"); err != nil {
		t.Fatalf("limit failed: %+v", err)
	}
	if texts, _ := d.History(); len(texts) != 2 {
		t.Errorf("Unexpected history: %v", texts)
	}
	if err := command(c, "q"); err == nil || !c.IsRunning() {
		t.Errorf("Quitting with unsaved changes should fail")
	}

	path := filepath.Join(t.TempDir(), "terrain.yaml")
	if err := command(c, "wq "+path); err != nil {
		t.Fatalf("wq failed: %+v", err)
	}
	if c.IsRunning() {
		t.Errorf("Commander should stop after wq")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("File was not written: %v", err)
	}
}

func TestCommandLineEditing(t *testing.T) {
	c, _ := setup(t, "en-US")
	keys(c, ":addx")
	key(c, gott.KeyBackspace2)
	if c.GetMode() != gott.ModeCommand || c.GetCommand() != "add" {
		t.Errorf("Unexpected command line: %q", c.GetCommand())
	}
	key(c, gott.KeyEsc)
	if c.GetMode() != gott.ModeEdit {
		t.Errorf("Escape should leave command mode")
	}
}

func TestLisp(t *testing.T) {
	c, d := setup(t, "en-US")
	ts := d.GetTileset()
	c.ParseEval("(add-tiles 3)")
	c.ParseEval("(remove-tiles 1)")
	if ids := ts.IDs(); !reflect.DeepEqual(ids, []int{0, 2}) {
		t.Errorf("Unexpected tiles: %v", ids)
	}
	if count := c.ParseEval("(tile-count)"); count != "2" {
		t.Errorf("Unexpected tile count: %s", count)
	}
	c.ParseEval("(undo)")
	c.ParseEval("(undo)")
	if ts.TileCount() != 0 {
		t.Errorf("Unexpected tiles after undo: %v", ts.IDs())
	}
	c.ParseEval("(redo)")
	if ts.TileCount() != 3 {
		t.Errorf("Unexpected tiles after redo: %v", ts.IDs())
	}
}

func TestLispKeys(t *testing.T) {
	c, d := setup(t, "en-US")
	keys(c, "(add-tiles")
	key(c, gott.KeySpace)
	keys(c, "2)")
	key(c, gott.KeyEnter)
	if d.GetTileset().TileCount() != 2 || c.GetMode() != gott.ModeEdit {
		t.Errorf("Lisp command was not evaluated: %q", c.GetMessage())
	}
}

func TestParseEvalFile(t *testing.T) {
	c, d := setup(t, "en-US")
	path := filepath.Join(t.TempDir(), "script.lisp")
	script := "(add-tiles 2 \"water.png\")\n(remove-tiles 0)\n(tile-count)\n"
	if err := os.WriteFile(path, []byte(script), 0644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	result, err := c.ParseEvalFile(path)
	if err != nil {
		t.Fatalf("ParseEvalFile failed: %+v", err)
	}
	if result != "1" {
		t.Errorf("Unexpected result: %s", result)
	}
	if tile := d.GetTileset().FindTile(1); tile == nil || tile.ImageSource != "water.png" {
		t.Errorf("Unexpected tile: %+v", tile)
	}
}

func TestHugeCountsAreRejected(t *testing.T) {
	c, d := setup(t, "en-US")
	ts := d.GetTileset()
	if err := command(c, "add 4611686018427387904"); !errors.Is(err, document.ErrTooManyTiles) {
		t.Errorf("Expected too many tiles from add command, got %v", err)
	}
	keys(c, "4611686018427387904a")
	keys(c, "99999999999999999999999a")
	c.ParseEval("(add-tiles 4611686018427387904)")
	if ts.TileCount() != 0 {
		t.Errorf("Huge counts added tiles: %v", ts.IDs())
	}

	keys(c, "2a")
	key(c, gott.KeyHome)
	keys(c, "4611686018427387904x")
	if ts.TileCount() != 0 {
		t.Errorf("Huge removal should remove the remaining tiles: %v", ts.IDs())
	}
}
