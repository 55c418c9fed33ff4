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
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/timburks/gotiles/document"
	"github.com/timburks/gotiles/i18n"
	gott "github.com/timburks/gotiles/types"
)

// The Commander converts user input into operations on a Document.
type Commander struct {
	document   *document.Document
	locale     string // locale for labels shown in the message bar
	mode       int    // commander mode
	command    string // command as it is being typed on the command line
	lispText   string // lisp command as it is being typed
	message    string // status message
	multiplier string // multiplier string as it is being entered
	selection  int    // index of the selected tile
	image      string // image source for new tiles
}

func NewCommander(d *document.Document, locale string) *Commander {
	c := &Commander{document: d, locale: locale, mode: gott.ModeEdit}
	c.registerLisp()
	return c
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) IsRunning() bool {
	return c.mode != gott.ModeQuit
}

func (c *Commander) ProcessEvent(event *gott.Event) error {
	switch event.Type {
	case gott.EventKey:
		return c.ProcessKey(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(event *gott.Event) error {
	var err error
	switch c.mode {
	case gott.ModeEdit:
		err = c.ProcessKeyEditMode(event)
	case gott.ModeCommand:
		err = c.ProcessKeyCommandMode(event)
	case gott.ModeLisp:
		err = c.ProcessKeyLispMode(event)
	}
	if err != nil {
		c.message = err.Error()
	}
	return err
}

func (c *Commander) ProcessKeyEditMode(event *gott.Event) error {
	d := c.document

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyArrowUp:
			c.MoveSelection(gott.MoveUp, c.Multiplier())
		case gott.KeyArrowDown:
			c.MoveSelection(gott.MoveDown, c.Multiplier())
		case gott.KeyHome:
			c.selection = 0
		case gott.KeyEnd:
			c.selection = d.GetTileset().TileCount() - 1
			c.KeepSelectionInRange()
		case gott.KeyCtrlR:
			return c.Redo()
		}
	}
	if ch != 0 {
		switch ch {
		//
		// command multipliers apply to the next operation
		//
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			c.multiplier += string(ch)
		//
		// commands go to the message bar
		//
		case ':':
			c.mode = gott.ModeCommand
			c.command = ""
		//
		// lisp commands go to the message bar
		//
		case '(':
			c.mode = gott.ModeLisp
			c.lispText = "("
		//
		// selection isn't undoable
		//
		case 'k':
			c.MoveSelection(gott.MoveUp, c.Multiplier())
		case 'j':
			c.MoveSelection(gott.MoveDown, c.Multiplier())
		//
		// tile mutations are saved for undo
		//
		case 'a':
			return c.AddTiles(c.Multiplier())
		case 'x', 'd':
			return c.RemoveSelectedTiles(c.Multiplier())
		case 'u':
			return c.Undo()
		}
	}
	return nil
}

func (c *Commander) ProcessKeyCommandMode(event *gott.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			c.mode = gott.ModeEdit
		case gott.KeyEnter:
			return c.PerformCommand()
		case gott.KeyBackspace2:
			if len(c.command) > 0 {
				c.command = c.command[0 : len(c.command)-1]
			}
		case gott.KeySpace:
			c.command += " "
		}
	}
	if ch != 0 {
		c.command = c.command + string(ch)
	}
	return nil
}

func (c *Commander) ProcessKeyLispMode(event *gott.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			c.mode = gott.ModeEdit
		case gott.KeyEnter:
			c.message = c.ParseEval(c.lispText)
			c.mode = gott.ModeEdit
		case gott.KeyBackspace2:
			if len(c.lispText) > 0 {
				c.lispText = c.lispText[0 : len(c.lispText)-1]
			}
		case gott.KeySpace:
			c.lispText += " "
		}
	}
	if ch != 0 {
		c.lispText = c.lispText + string(ch)
	}
	return nil
}

// PerformCommand runs the command typed on the command line.
func (c *Commander) PerformCommand() error {
	d := c.document

	parts := strings.Fields(c.command)
	c.command = ""
	c.mode = gott.ModeEdit
	if len(parts) == 0 {
		return nil
	}
	switch parts[0] {
	case "q":
		if d.IsModified() {
			return fmt.Errorf("unsaved changes (use q! to quit anyway)")
		}
		c.mode = gott.ModeQuit
	case "q!":
		c.mode = gott.ModeQuit
	case "w", "wq":
		var filename string
		if len(parts) == 2 {
			filename = parts[1]
		}
		if err := d.WriteFile(filename); err != nil {
			return err
		}
		c.message = fmt.Sprintf("wrote %s", d.GetFileName())
		if parts[0] == "wq" {
			c.mode = gott.ModeQuit
		}
	case "undo":
		return c.Undo()
	case "redo":
		return c.Redo()
	case "add":
		count := 1
		if len(parts) > 1 {
			n, err := strconv.Atoi(parts[1])
			if err != nil {
				return err
			}
			if n > document.MaxAddTiles {
				return fmt.Errorf("%w: %d (at most %d)", document.ErrTooManyTiles, n, document.MaxAddTiles)
			}
			count = n
		}
		if len(parts) > 2 {
			c.image = parts[2]
		}
		return c.AddTiles(count)
	case "remove":
		ids := make([]int, 0, len(parts)-1)
		for _, part := range parts[1:] {
			id, err := strconv.Atoi(part)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return c.RemoveTiles(ids...)
	case "limit":
		if len(parts) != 2 {
			return fmt.Errorf("usage: limit <count>")
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			return err
		}
		return d.SetUndoLimit(n)
	case "image":
		if len(parts) == 2 {
			c.image = parts[1]
		}
		c.message = "image: " + c.image
	default:
		c.message = ""
	}
	return nil
}

func (c *Commander) AddTiles(count int) error {
	tiles, err := c.document.AddTiles(count, c.image)
	if err != nil {
		return err
	}
	if len(tiles) > 0 {
		c.selectTile(tiles[len(tiles)-1].ID)
	}
	c.message = c.label("Add Tiles")
	return nil
}

// RemoveSelectedTiles removes count tiles starting at the selection.
func (c *Commander) RemoveSelectedTiles(count int) error {
	ts := c.document.GetTileset()
	if remaining := ts.TileCount() - c.selection; count > remaining {
		count = remaining
	}
	ids := make([]int, 0, max(count, 0))
	for i := c.selection; i < c.selection+count; i++ {
		tile := ts.TileAt(i)
		if tile == nil {
			break
		}
		ids = append(ids, tile.ID)
	}
	return c.RemoveTiles(ids...)
}

func (c *Commander) RemoveTiles(ids ...int) error {
	if len(ids) == 0 {
		return nil
	}
	if err := c.document.RemoveTiles(ids...); err != nil {
		return err
	}
	c.KeepSelectionInRange()
	c.message = c.label("Remove Tiles")
	return nil
}

func (c *Commander) Undo() error {
	text := c.document.UndoText()
	if err := c.document.PerformUndo(); err != nil {
		return err
	}
	c.KeepSelectionInRange()
	c.message = c.label("Undo") + " " + c.label(text)
	return nil
}

func (c *Commander) Redo() error {
	text := c.document.RedoText()
	if err := c.document.PerformRedo(); err != nil {
		return err
	}
	c.KeepSelectionInRange()
	c.message = c.label("Redo") + " " + c.label(text)
	return nil
}

func (c *Commander) label(text string) string {
	return i18n.Label(c.locale, text)
}

func (c *Commander) selectTile(id int) {
	for i, tileID := range c.document.GetTileset().IDs() {
		if tileID == id {
			c.selection = i
			return
		}
	}
}

func (c *Commander) MoveSelection(direction int, multiplier int) {
	switch direction {
	case gott.MoveUp:
		c.selection -= multiplier
	case gott.MoveDown:
		c.selection += multiplier
	}
	c.KeepSelectionInRange()
}

func (c *Commander) KeepSelectionInRange() {
	count := c.document.GetTileset().TileCount()
	if c.selection > count-1 {
		c.selection = count - 1
	}
	if c.selection < 0 {
		c.selection = 0
	}
}

func (c *Commander) Multiplier() int {
	if c.multiplier == "" {
		return 1
	}
	i, err := strconv.ParseInt(c.multiplier, 10, 64)
	if errors.Is(err, strconv.ErrRange) || i > document.MaxAddTiles {
		// too large for any operation; AddTiles reports it
		c.multiplier = ""
		return document.MaxAddTiles + 1
	}
	if err != nil || i < 1 {
		log.Printf("Ignoring multiplier %q", c.multiplier)
		c.multiplier = ""
		return 1
	}
	c.multiplier = ""
	return int(i)
}

func (c *Commander) GetSelection() int {
	return c.selection
}

func (c *Commander) GetLispText() string {
	return c.lispText
}

func (c *Commander) GetCommand() string {
	return c.command
}

func (c *Commander) GetMessage() string {
	return c.message
}
