package dataset

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoCandidate is returned by LoadWithSource when no candidate location
// holds a readable document.
var ErrNoCandidate = errors.New("no dataset candidate could be loaded")

// SkeletonSports are the sports present in the fallback document.
var SkeletonSports = []string{"Football", "Basketball"}

// Skeleton returns the empty two-sport document used when nothing loads.
func Skeleton() *Dataset {
	ds := &Dataset{}
	for _, s := range SkeletonSports {
		ds.Sports = append(ds.Sports, SportTable{Name: s})
	}
	return ds
}

// Loader reads the results document from the first candidate path that
// parses. It keeps no state between calls: every Load reads the file again.
type Loader struct {
	paths    []string
	logger   *slog.Logger
	readFile func(string) ([]byte, error)
}

// NewLoader creates a loader over the given candidate paths, tried in order.
func NewLoader(paths []string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		paths:    append([]string(nil), paths...),
		logger:   logger,
		readFile: os.ReadFile,
	}
}

// Paths returns the candidate paths in the order they are tried.
func (l *Loader) Paths() []string {
	return append([]string(nil), l.paths...)
}

// Load returns the first candidate that parses, or the empty skeleton.
// It never fails.
func (l *Loader) Load() *Dataset {
	ds, _, err := l.LoadWithSource()
	if err != nil {
		l.logger.Warn("dataset unavailable, using empty skeleton", "error", err)
		return Skeleton()
	}
	return ds
}

// LoadWithSource is Load that also reports which candidate was used. When
// every candidate fails it returns ErrNoCandidate wrapping the last failure.
func (l *Loader) LoadWithSource() (*Dataset, string, error) {
	var last error
	for _, path := range l.paths {
		ds, err := l.loadFile(path)
		if err != nil {
			l.logger.Debug("dataset candidate skipped", "path", path, "error", err)
			last = err
			continue
		}
		return ds, path, nil
	}
	if last == nil {
		return nil, "", ErrNoCandidate
	}
	return nil, "", fmt.Errorf("%w: %w", ErrNoCandidate, last)
}

func (l *Loader) loadFile(path string) (*Dataset, error) {
	data, err := l.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var ds *Dataset
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		ds, err = ParseYAML(data)
	default:
		ds, err = Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}
