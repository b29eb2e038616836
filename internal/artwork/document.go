// Package artwork encodes and decodes the JSON artwork document:
//
//	{"name": "...", "pixels": [{"x": 0, "y": 0, "color": "#rrggbb"}, ...]}
//
// Decoding is the untrusted path. It checks structure and bounds only;
// colors are accepted as any string and duplicate coordinates are allowed.
package artwork

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/san-kum/pixpal/internal/pixel"
)

// DefaultName names an export whose name is blank.
const DefaultName = "pixel-art"

type Document struct {
	Name   string       `json:"name"`
	Pixels []pixel.Cell `json:"pixels"`
}

// NewDocument builds an export document, applying NameOrDefault.
func NewDocument(name string, cells []pixel.Cell) Document {
	if cells == nil {
		cells = []pixel.Cell{}
	}
	return Document{Name: NameOrDefault(name), Pixels: cells}
}

func NameOrDefault(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	return name
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._ -]+`)

// FileName turns an artwork name into a safe "<name>.json" file name.
func FileName(name string) string {
	base := unsafeFileChars.ReplaceAllString(NameOrDefault(name), "_")
	base = strings.Trim(base, ". ")
	if base == "" {
		base = DefaultName
	}
	return base + ".json"
}

// Encode renders the document with 2-space indentation.
func Encode(doc Document) ([]byte, error) {
	if doc.Pixels == nil {
		doc.Pixels = []pixel.Cell{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Decode parses and validates raw document text. Any violation rejects the
// whole document; the returned error is an *ImportError. Coordinates must be
// whole numbers inside the grid, so 2.0 is accepted and 1.5 is not.
func Decode(raw []byte) (Document, error) {
	var root any
	if err := json.Unmarshal(raw, &root); err != nil {
		return Document{}, &ImportError{Kind: ErrMalformedJSON, Detail: err.Error()}
	}

	obj, ok := root.(map[string]any)
	if !ok {
		return Document{}, schemaError("document is not an object")
	}

	list, ok := obj["pixels"].([]any)
	if !ok {
		return Document{}, schemaError("pixels is not an array")
	}

	doc := Document{Pixels: make([]pixel.Cell, 0, len(list))}
	if name, ok := obj["name"].(string); ok {
		doc.Name = name
	}

	for i, item := range list {
		cell, err := decodeCell(item)
		if err != nil {
			return Document{}, schemaError(fmt.Sprintf("pixels[%d]: %s", i, err))
		}
		doc.Pixels = append(doc.Pixels, cell)
	}
	return doc, nil
}

func decodeCell(item any) (pixel.Cell, error) {
	obj, ok := item.(map[string]any)
	if !ok {
		return pixel.Cell{}, errors.New("not an object")
	}
	x, err := coordinate(obj, "x", pixel.Width)
	if err != nil {
		return pixel.Cell{}, err
	}
	y, err := coordinate(obj, "y", pixel.Height)
	if err != nil {
		return pixel.Cell{}, err
	}
	color, ok := obj["color"].(string)
	if !ok {
		return pixel.Cell{}, errors.New("color is not a string")
	}
	return pixel.Cell{X: x, Y: y, Color: color}, nil
}

// coordinate reads an integral number in [0, limit).
func coordinate(obj map[string]any, key string, limit int) (int, error) {
	v, ok := obj[key].(float64)
	if !ok {
		return 0, fmt.Errorf("%s is not a number", key)
	}
	if v < 0 || v >= float64(limit) {
		return 0, fmt.Errorf("%s=%v outside [0,%d)", key, v, limit)
	}
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%s=%v is not an integer", key, v)
	}
	return int(v), nil
}
