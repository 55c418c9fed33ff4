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

// Package operations wraps tileset changes into reversible units.
// A mutation owns its tiles whenever they are outside the tileset: before an
// add is applied and after a remove is applied. Apply and Undo move the tiles
// between the mutation and the tileset, so at any moment exactly one of them
// owns each tile. Release frees the tiles only if the mutation holds them.
package operations
