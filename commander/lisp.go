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
	"math"
	"os"

	"github.com/steelseries/golisp"
	"github.com/timburks/gotiles/document"
)

// registerLisp binds the tileset primitives to this commander. golisp keeps
// one global environment, so the most recently created commander wins.
func (c *Commander) registerLisp() {
	golisp.MakePrimitiveFunction("add-tiles", "*", c.addTilesImpl)
	golisp.MakePrimitiveFunction("remove-tiles", "*", c.removeTilesImpl)
	golisp.MakePrimitiveFunction("undo", "0", c.undoImpl)
	golisp.MakePrimitiveFunction("redo", "0", c.redoImpl)
	golisp.MakePrimitiveFunction("tile-ids", "0", c.tileIDsImpl)
	golisp.MakePrimitiveFunction("tile-count", "0", c.tileCountImpl)
	golisp.MakePrimitiveFunction("dump", "0", c.dumpImpl)
}

func intValue(d *golisp.Data) (int, error) {
	switch {
	case golisp.IntegerP(d):
		return int(golisp.IntegerValue(d)), nil
	case golisp.FloatP(d):
		f := golisp.FloatValue(d)
		if f > math.MaxInt32 || f < math.MinInt32 {
			return 0, fmt.Errorf("number out of range: %s", golisp.String(d))
		}
		return int(f), nil
	default:
		return 0, fmt.Errorf("expected a number, got %s", golisp.String(d))
	}
}

func intValues(args *golisp.Data) ([]int, error) {
	values := make([]int, 0)
	for cell := args; !golisp.NilP(cell); cell = golisp.Cdr(cell) {
		value, err := intValue(golisp.Car(cell))
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

func idList(ids []int) *golisp.Data {
	values := make([]*golisp.Data, 0, len(ids))
	for _, id := range ids {
		values = append(values, golisp.IntegerWithValue(int64(id)))
	}
	return golisp.ArrayToList(values)
}

// (add-tiles count [image]) returns the IDs of the new tiles.
func (c *Commander) addTilesImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if golisp.NilP(args) {
		return nil, errors.New("add-tiles requires a tile count")
	}
	count, err := intValue(golisp.Car(args))
	if err != nil {
		return nil, err
	}
	if count > document.MaxAddTiles {
		return nil, fmt.Errorf("%w: %d (at most %d)", document.ErrTooManyTiles, count, document.MaxAddTiles)
	}
	if image := golisp.Cadr(args); golisp.StringP(image) {
		c.image = golisp.StringValue(image)
	}
	tiles, err := c.document.AddTiles(count, c.image)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(tiles))
	for _, tile := range tiles {
		ids = append(ids, tile.ID)
	}
	return idList(ids), nil
}

// (remove-tiles id ...) returns the number of tiles removed.
func (c *Commander) removeTilesImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	ids, err := intValues(args)
	if err != nil {
		return nil, err
	}
	if err := c.RemoveTiles(ids...); err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(len(ids))), nil
}

func (c *Commander) undoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	text := c.document.UndoText()
	if err := c.Undo(); err != nil {
		return nil, err
	}
	return golisp.StringWithValue(text), nil
}

func (c *Commander) redoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	text := c.document.RedoText()
	if err := c.Redo(); err != nil {
		return nil, err
	}
	return golisp.StringWithValue(text), nil
}

func (c *Commander) tileIDsImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return idList(c.document.GetTileset().IDs()), nil
}

func (c *Commander) tileCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(c.document.GetTileset().TileCount())), nil
}

func (c *Commander) dumpImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(c.document.Tree()), nil
}

// ParseEval evaluates a lisp expression and returns its printed value.
func (c *Commander) ParseEval(command string) string {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return err.Error()
	}
	return golisp.String(value)
}

// ParseEvalFile evaluates every expression in a script file.
func (c *Commander) ParseEvalFile(filename string) (string, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	value, err := golisp.ParseAndEvalAll(string(bytes))
	if err != nil {
		return "", err
	}
	return golisp.String(value), nil
}
