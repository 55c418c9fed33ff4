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
	"fmt"
	"sort"

	asciitree "github.com/thediveo/go-asciitree"
)

type treeNode struct {
	Label    string     `asciitree:"label"`
	Props    []string   `asciitree:"properties"`
	Children []treeNode `asciitree:"children"`
}

// Tree renders the tileset and its undo history as an ASCII tree.
func (d *Document) Tree() string {
	return asciitree.RenderFancy(d.treeRoot())
}

func (d *Document) treeRoot() treeNode {
	ts := d.tileset
	root := treeNode{
		Label: ts.Name,
		Props: []string{
			fmt.Sprintf("tile size: %dx%d", ts.TileWidth, ts.TileHeight),
			fmt.Sprintf("tiles: %d", ts.TileCount()),
			fmt.Sprintf("revision: %d", d.revision),
		},
	}
	if d.fileName != "" {
		root.Props = append(root.Props, "file: "+d.fileName)
	}

	tiles := treeNode{Label: "tiles"}
	for _, tile := range ts.Tiles() {
		node := treeNode{Label: tile.String()}
		if tile.ImageSource != "" {
			node.Props = append(node.Props, "image: "+tile.ImageSource)
		}
		if tile.Type != "" {
			node.Props = append(node.Props, "type: "+tile.Type)
		}
		keys := make([]string, 0, len(tile.Properties))
		for key := range tile.Properties {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			node.Props = append(node.Props, fmt.Sprintf("%s: %s", key, tile.Properties[key]))
		}
		tiles.Children = append(tiles.Children, node)
	}

	history := treeNode{Label: "history"}
	texts, applied := d.History()
	for i, text := range texts {
		state := "applied"
		if i >= applied {
			state = "undone"
		}
		history.Children = append(history.Children, treeNode{Label: fmt.Sprintf("%d %s (%s)", i+1, text, state)})
	}

	root.Children = []treeNode{tiles, history}
	return root
}
