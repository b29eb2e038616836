package artwork

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	gzip "github.com/klauspost/pgzip"
	"github.com/sirupsen/logrus"
)

func compressed(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".gz")
}

// ReadRaw returns the document text stored at path, decompressing files that
// end in .gz.
func ReadRaw(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if compressed(path) {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	}
	return io.ReadAll(r)
}

// ReadFile reads and validates the document at path.
func ReadFile(path string) (Document, error) {
	raw, err := ReadRaw(path)
	if err != nil {
		return Document{}, err
	}
	doc, err := Decode(raw)
	if err != nil {
		var ie *ImportError
		if errors.As(err, &ie) {
			logrus.WithFields(logrus.Fields{"path": path, "detail": ie.Detail}).Debug("rejected artwork file")
		}
		return Document{}, err
	}
	return doc, nil
}

// WriteFile encodes doc to path, gzip-compressing when the path ends in .gz.
func WriteFile(path string, doc Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}

	if compressed(path) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
		data = buf.Bytes()
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"path": path, "name": doc.Name, "pixels": len(doc.Pixels)}).Debug("wrote artwork file")
	return nil
}
