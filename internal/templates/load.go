package templates

import (
	"fmt"
	"os"

	"github.com/san-kum/pixpal/internal/pixel"
	"gopkg.in/yaml.v3"
)

type fileEntry struct {
	Sprite `yaml:",inline"`
	Pixels []pixel.Cell `yaml:"pixels"`
}

type catalogFile struct {
	Templates []fileEntry `yaml:"templates"`
}

// LoadFile reads user templates from a yaml file. Each entry gives either
// rows with a key, an explicit pixel list, or both:
//
//	templates:
//	  - name: Arrow
//	    origin_y: 4
//	    key: {a: "#ff8800"}
//	    rows: ["....a.....", "...aaa...."]
//	  - name: Dots
//	    pixels: [{x: 0, y: 0, color: "#ffffff"}]
//
// Entries are trusted like the built-in ones.
func LoadFile(path string) ([]Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("templates %s: %w", path, err)
	}

	out := make([]Template, 0, len(f.Templates))
	for i, e := range f.Templates {
		if e.Name == "" {
			return nil, fmt.Errorf("templates %s: entry %d has no name", path, i)
		}
		t := e.Sprite.Template()
		t.Pixels = append(t.Pixels, e.Pixels...)
		out = append(out, t)
	}
	return out, nil
}

// LoadCatalog returns the built-in catalog extended with the templates in
// path. An empty path yields the built-ins alone.
func LoadCatalog(path string) (*Catalog, error) {
	c := Builtin()
	if path == "" {
		return c, nil
	}
	ts, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	for _, t := range ts {
		c.Add(t)
	}
	return c, nil
}
