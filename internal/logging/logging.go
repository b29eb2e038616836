// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	colorable "github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Level string
	// File, when set, receives all log output. Interactive sessions always
	// log to a file because the terminal belongs to the editor.
	File        string
	Interactive bool
}

// Setup applies opts to the standard logrus logger. The returned closer
// releases the log file, if one was opened.
func Setup(opts Options) (io.Closer, error) {
	log := logrus.StandardLogger()

	level := logrus.InfoLevel
	if opts.Level != "" {
		l, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		level = l
	}
	log.SetLevel(level)
	log.SetReportCaller(level >= logrus.DebugLevel)

	path := opts.File
	if path == "" && opts.Interactive {
		path = filepath.Join(os.TempDir(), "pixpal.log")
	}

	if path == "" {
		log.SetFormatter(&logrus.TextFormatter{
			ForceColors: true,
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				return fmt.Sprintf("%s()", f.Function), ""
			},
		})
		log.SetOutput(colorable.NewColorableStderr())
		return io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	log.SetOutput(f)
	return f, nil
}
