package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/san-kum/pixpal/internal/artwork"
	"github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("storage: artwork not found")

const (
	artworkFile  = "artwork.json"
	metadataFile = "metadata.json"
)

// Store keeps saved artworks under baseDir, one directory per save.
type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Metadata struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
	Pixels    int       `json:"pixels"`
	Colors    []string  `json:"colors"`
}

var slugChars = regexp.MustCompile(`[^a-z0-9]+`)

func slug(name string) string {
	s := strings.Trim(slugChars.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if s == "" {
		return artwork.DefaultName
	}
	return s
}

// Save writes doc into a new directory and returns its id.
func (s *Store) Save(doc artwork.Document) (string, error) {
	ts := s.now()
	base := fmt.Sprintf("%s_%d", slug(doc.Name), ts.Unix())
	runID := base
	for i := 2; ; i++ {
		if _, err := os.Stat(filepath.Join(s.baseDir, runID)); os.IsNotExist(err) {
			break
		}
		runID = fmt.Sprintf("%s_%d", base, i)
	}
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	if err := artwork.WriteFile(filepath.Join(runDir, artworkFile), doc); err != nil {
		return "", err
	}

	meta := Metadata{
		ID:        runID,
		Name:      doc.Name,
		Timestamp: ts,
		Pixels:    len(doc.Pixels),
		Colors:    distinctColors(doc),
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{"id": runID, "pixels": meta.Pixels}).Info("artwork saved to library")
	return runID, nil
}

func distinctColors(doc artwork.Document) []string {
	seen := map[string]bool{}
	colors := make([]string, 0)
	for _, p := range doc.Pixels {
		if !seen[p.Color] {
			seen[p.Color] = true
			colors = append(colors, p.Color)
		}
	}
	sort.Strings(colors)
	return colors
}

// List returns metadata of every saved artwork, newest first. A missing
// library directory is an empty library.
func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	items := make([]Metadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.metadata(entry.Name())
		if err != nil {
			logrus.WithError(err).WithField("id", entry.Name()).Warn("skipping unreadable library entry")
			continue
		}
		items = append(items, *meta)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Timestamp.Equal(items[j].Timestamp) {
			return items[i].ID > items[j].ID
		}
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	return items, nil
}

func (s *Store) metadata(id string) (*Metadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// Load reads a saved artwork back through the document validator.
func (s *Store) Load(id string) (artwork.Document, error) {
	if err := s.checkID(id); err != nil {
		return artwork.Document{}, err
	}
	doc, err := artwork.ReadFile(filepath.Join(s.baseDir, id, artworkFile))
	if os.IsNotExist(err) {
		return artwork.Document{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return doc, err
}

func (s *Store) Delete(id string) error {
	if err := s.checkID(id); err != nil {
		return err
	}
	dir := filepath.Join(s.baseDir, id)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := os.RemoveAll(dir); err != nil {
		return err
	}
	logrus.WithField("id", id).Info("artwork deleted from library")
	return nil
}

// checkID keeps ids inside the library directory.
func (s *Store) checkID(id string) error {
	if id == "" || id != filepath.Base(id) || id == "." || id == ".." {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return nil
}
