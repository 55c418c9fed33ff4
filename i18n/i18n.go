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

// Package i18n translates the labels of tileset mutations. Labels are
// stored untranslated on the mutations and translated only for display.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

const BaseLocale = "en-US"

//go:embed locales/*/*.yaml
var embedded embed.FS

var defaultCatalog *Catalog

func init() {
	c, err := Load(embedded)
	if err != nil {
		panic(err)
	}
	defaultCatalog = c
}

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// A Catalog holds translated labels for a set of locales.
type Catalog struct {
	builder *catalog.Builder
	locales []string
}

// Load reads catalog files named locales/<locale>/<name>.yaml.
func Load(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	c := &Catalog{builder: catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale)))}
	seen := map[string]bool{}
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		locale := strings.TrimSpace(file.Locale)
		if dir := strings.Split(path, "/")[1]; locale != dir {
			return nil, fmt.Errorf("catalog %s: locale %q must match path locale %q", path, locale, dir)
		}
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
		for key, value := range file.Messages {
			if err := c.builder.SetString(tag, key, escape(value)); err != nil {
				return nil, fmt.Errorf("catalog %s: %q: %w", path, key, err)
			}
		}
		if !seen[locale] {
			seen[locale] = true
			c.locales = append(c.locales, locale)
		}
	}
	if !seen[BaseLocale] {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return c, nil
}

// Default returns the catalog embedded in this package.
func Default() *Catalog {
	return defaultCatalog
}

func (c *Catalog) Locales() []string {
	locales := make([]string, len(c.locales))
	copy(locales, c.locales)
	return locales
}

// Label translates text into locale. Unknown locales and untranslated
// labels come back unchanged.
func (c *Catalog) Label(locale, text string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return text
	}
	p := message.NewPrinter(tag, message.Catalog(c.builder))
	return p.Sprintf(message.Key(text, escape(text)))
}

// escape keeps labels from being read as format strings.
func escape(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}

func Label(locale, text string) string {
	return defaultCatalog.Label(locale, text)
}
