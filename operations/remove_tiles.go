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
	"github.com/timburks/gotiles/tileset"
	gott "github.com/timburks/gotiles/types"
)

// RemoveTiles removes tiles from a tileset. Once applied, it owns them.
type RemoveTiles struct {
	AddRemoveTiles
}

func NewRemoveTiles(c gott.Container, n gott.Notifier, tiles []*tileset.Tile) *RemoveTiles {
	op := &RemoveTiles{}
	op.init(c, n, tiles, true, "Remove Tiles")
	op.apply = op.performRemove
	op.undo = op.performAdd
	return op
}
