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

import "errors"

var (
	// ErrDuplicateTile indicates that a tile ID is already present in the tileset.
	ErrDuplicateTile = errors.New("duplicate tile id")

	// ErrTileNotFound indicates that a tile is not part of the tileset.
	ErrTileNotFound = errors.New("tile not found")

	// ErrTileOwned indicates that a tile still belongs to a tileset.
	ErrTileOwned = errors.New("tile belongs to a tileset")

	// ErrTileReleased indicates that a tile has already been destroyed.
	ErrTileReleased = errors.New("tile already released")
)
