// Package templates holds the trusted catalog of predefined artworks.
// Template pixels are loaded verbatim; nothing on this path is validated.
package templates

import (
	"sort"

	"github.com/san-kum/pixpal/internal/pixel"
)

type Template struct {
	Name   string
	Pixels []pixel.Cell
}

// Sprite describes a template as text rows. Each rune in a row is looked up
// in Key; runes without an entry are left empty. Rows are placed starting at
// (OriginX, OriginY).
type Sprite struct {
	Name    string            `yaml:"name"`
	OriginX int               `yaml:"origin_x"`
	OriginY int               `yaml:"origin_y"`
	Key     map[string]string `yaml:"key"`
	Rows    []string          `yaml:"rows"`
}

func (s Sprite) Template() Template {
	t := Template{Name: s.Name}
	for dy, row := range s.Rows {
		for dx, r := range []rune(row) {
			color, ok := s.Key[string(r)]
			if !ok {
				continue
			}
			t.Pixels = append(t.Pixels, pixel.Cell{X: s.OriginX + dx, Y: s.OriginY + dy, Color: color})
		}
	}
	return t
}

// Catalog is an ordered set of templates addressed by name. Adding a template
// whose name already exists replaces it.
type Catalog struct {
	templates []Template
}

func NewCatalog(ts ...Template) *Catalog {
	c := &Catalog{}
	for _, t := range ts {
		c.Add(t)
	}
	return c
}

func (c *Catalog) Add(t Template) {
	for i := range c.templates {
		if c.templates[i].Name == t.Name {
			c.templates[i] = t
			return
		}
	}
	c.templates = append(c.templates, t)
}

func (c *Catalog) Find(name string) (Template, bool) {
	for _, t := range c.templates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}

// Names lists template names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.templates))
	for _, t := range c.templates {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}

func (c *Catalog) Len() int {
	return len(c.templates)
}

// Builtin returns a fresh catalog holding the built-in templates.
func Builtin() *Catalog {
	c := NewCatalog()
	for _, s := range builtinSprites {
		c.Add(s.Template())
	}
	return c
}
