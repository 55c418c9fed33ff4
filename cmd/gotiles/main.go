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
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/timburks/gotiles/commander"
	"github.com/timburks/gotiles/config"
	"github.com/timburks/gotiles/document"
	"github.com/timburks/gotiles/screen"
	"github.com/timburks/gotiles/tileset"
)

func main() {
	var script, configFile, filename string
	dump := false

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // eval program
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				log.Output(1, "No file specified for --eval option")
				return
			}
		case "--config":
			i++
			if i < len(os.Args) {
				configFile = os.Args[i]
			} else {
				log.Output(1, "No file specified for --config option")
				return
			}
		case "--dump":
			dump = true
		default:
			// If a file was specified on the command line, edit it.
			filename = argi
		}
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		log.Fatal(err)
	}
	if filename == "" {
		filename = cfg.Tileset
	}

	// The document owns the tileset and its undo history.
	d, err := open(filename, cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := d.SetUndoLimit(cfg.UndoLimit); err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := d.Close(); err != nil {
			log.Printf("%+v", err)
		}
	}()

	// The commander converts user inputs into operations on the document.
	c := commander.NewCommander(d, cfg.Locale)

	if script != "" {
		// Run a script and exit.
		result, err := c.ParseEvalFile(script)
		if err != nil {
			log.Output(1, err.Error())
			return
		}
		fmt.Println(result)
		if dump {
			fmt.Println(d.Tree())
		}
		return
	}
	if dump {
		fmt.Println(d.Tree())
		return
	}

	// Open a log file.
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	log.SetOutput(f)
	defer f.Close()

	// Create a screen to manage display.
	s, err := screen.NewScreen(cfg.Locale)
	if err != nil {
		return
	}
	defer s.Close()

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(d, c)
		err = c.ProcessEvent(s.GetNextEvent())
		if err != nil {
			log.Output(1, err.Error())
		}
	}
}

// open reads a tileset file, or starts a new tileset if the file doesn't exist.
func open(filename string, cfg config.Config) (*document.Document, error) {
	if filename == "" {
		return document.NewDocument(tileset.NewTileset("untitled", cfg.TileWidth, cfg.TileHeight)), nil
	}
	d, err := document.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
		d = document.NewDocument(tileset.NewTileset(name, cfg.TileWidth, cfg.TileHeight))
		if err := d.WriteFile(filename); err != nil {
			return nil, err
		}
		return d, nil
	}
	return d, err
}
