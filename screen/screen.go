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
package screen

import (
	"fmt"
	"log"

	"github.com/nsf/termbox-go"
	"github.com/timburks/gotiles/document"
	"github.com/timburks/gotiles/i18n"
	gott "github.com/timburks/gotiles/types"
)

const historyWidth = 32

// The Screen draws the state of a Document.
type Screen struct {
	cols   int
	rows   int
	locale string
}

func NewScreen(locale string) (*Screen, error) {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil, err
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{locale: locale}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(d *document.Document, c gott.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	s.cols, s.rows = termbox.Size()

	s.RenderTiles(d, c)
	s.RenderHistory(d)
	s.RenderInfoBar(d)
	s.RenderMessageBar(c)
	termbox.Flush()
}

// RenderTiles lists the tiles, keeping the selection in view.
func (s *Screen) RenderTiles(d *document.Document, c gott.Commander) {
	ts := d.GetTileset()
	height := s.rows - 2
	width := s.cols - historyWidth
	offset := 0
	if c.GetSelection() >= height {
		offset = c.GetSelection() - height + 1
	}
	for y := 0; y < height; y++ {
		tile := ts.TileAt(y + offset)
		if tile == nil {
			break
		}
		line := fmt.Sprintf(" %4d  %-24s %dx%d", tile.ID, tile.ImageSource, tile.Width, tile.Height)
		fg, bg := termbox.ColorWhite, termbox.ColorBlack
		if y+offset == c.GetSelection() {
			fg, bg = termbox.ColorBlack, termbox.ColorWhite
		}
		s.print(0, y, width, line, fg, bg)
	}
}

// RenderHistory shows the undo stack; undone entries are dimmed.
func (s *Screen) RenderHistory(d *document.Document) {
	x := s.cols - historyWidth
	if x < 0 {
		return
	}
	texts, applied := d.History()
	height := s.rows - 2
	first := 0
	if len(texts) > height {
		first = len(texts) - height
	}
	for i := first; i < len(texts); i++ {
		fg := termbox.ColorWhite
		if i >= applied {
			fg = termbox.ColorBlue
		}
		line := "| " + i18n.Label(s.locale, texts[i])
		s.print(x, i-first, historyWidth, line, fg, termbox.ColorBlack)
	}
}

func (s *Screen) RenderInfoBar(d *document.Document) {
	ts := d.GetTileset()
	name := d.GetFileName()
	if name == "" {
		name = ts.Name
	}
	if d.IsModified() {
		name += " [+]"
	}
	finalText := fmt.Sprintf(" %d tiles ", ts.TileCount())
	text := " gotiles - " + name + " "
	for len(text) < s.cols-len(finalText)-1 {
		text = text + " "
	}
	text += finalText
	s.print(0, s.rows-2, s.cols, text, termbox.ColorBlack, termbox.ColorWhite)
}

func (s *Screen) RenderMessageBar(c gott.Commander) {
	var line string
	switch c.GetMode() {
	case gott.ModeCommand:
		line += ":" + c.GetCommand()
	case gott.ModeLisp:
		line += c.GetLispText()
	default:
		line += c.GetMessage()
	}
	s.print(0, s.rows-1, s.cols, line, termbox.ColorWhite, termbox.ColorBlack)
	switch c.GetMode() {
	case gott.ModeCommand, gott.ModeLisp:
		termbox.SetCursor(len([]rune(line)), s.rows-1)
	default:
		termbox.HideCursor()
	}
}

func (s *Screen) print(x, y, width int, text string, fg, bg termbox.Attribute) {
	i := 0
	for _, ch := range text {
		if i >= width {
			break
		}
		termbox.SetCell(x+i, y, ch, fg, bg)
		i++
	}
}

func (s *Screen) GetNextEvent() *gott.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventResize:
		termbox.Flush()
		return &gott.Event{Type: gott.EventResize}
	case termbox.EventKey:
		return &gott.Event{
			Type: gott.EventKey,
			Key:  key(event.Key),
			Ch:   event.Ch,
		}
	default:
		return &gott.Event{Type: -1}
	}
}

func key(k termbox.Key) gott.Key {
	switch k {
	case termbox.KeyArrowDown:
		return gott.KeyArrowDown
	case termbox.KeyArrowUp:
		return gott.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return gott.KeyBackspace2
	case termbox.KeyCtrlR:
		return gott.KeyCtrlR
	case termbox.KeyEnd:
		return gott.KeyEnd
	case termbox.KeyEnter:
		return gott.KeyEnter
	case termbox.KeyEsc:
		return gott.KeyEsc
	case termbox.KeyHome:
		return gott.KeyHome
	case termbox.KeySpace:
		return gott.KeySpace
	default:
		return gott.KeyUnsupported
	}
}
