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
package types

import (
	"github.com/timburks/gotiles/tileset"
)

// Commander modes
const (
	ModeEdit    = 0
	ModeCommand = 2
	ModeLisp    = 4
	ModeQuit    = 9999
)

// Move directions
const (
	MoveUp   = 0
	MoveDown = 1
)

// Event types
const (
	EventKey    = 0
	EventResize = 1
)

type Key int

// Keys that the commander understands. Anything else arrives as KeyUnsupported.
const (
	KeyUnsupported Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyBackspace2
	KeyCtrlR
	KeyEnter
	KeyEsc
	KeyHome
	KeyEnd
	KeySpace
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
}

// A Container holds tiles. AddTiles and RemoveTiles must be exact inverses
// of each other when called with the same list.
type Container interface {
	AddTiles(tiles []*tileset.Tile) error
	RemoveTiles(tiles []*tileset.Tile) error
}

// A Notifier is told after every successful change to a container.
type Notifier interface {
	TilesetChanged(c Container)
}

// A Mutation is a reversible change to a container. Apply and Undo must be
// called alternately; Release ends the mutation and frees any tiles it owns.
type Mutation interface {
	Apply() error
	Undo() error
	Text() string
	Release() error
}

type Commander interface {
	SetMode(int)
	GetMode() int
	GetCommand() string
	GetLispText() string
	GetMessage() string
	GetSelection() int
}
