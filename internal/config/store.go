// Package config is a small key-value store persisted as YAML or TOML. The
// format follows the file extension. A store whose file does not exist yet
// starts empty and is created by Save.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Exported variables.
var (
	ErrKeyNotFound       = errors.New("key not found in config")
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// Store holds the configuration values of one file.
type Store struct {
	path   string
	format format
	data   map[string]any
}

// Load reads path. A missing file yields an empty store bound to path.
func Load(path string) (*Store, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	s := &Store{path: path, format: f, data: map[string]any{}}

	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	err = f.decode(content, &s.data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if s.data == nil {
		s.data = map[string]any{}
	}

	return s, nil
}

// Exists reports whether the backing file is on disk.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (any, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Keys returns the top-level keys, sorted.
func (s *Store) Keys() []string {
	return slices.Sorted(maps.Keys(s.data))
}

// Merge copies values into the section named section, creating it when
// missing. Existing keys of the section are overwritten.
func (s *Store) Merge(section string, values map[string]any) {
	existing, ok := s.data[section].(map[string]any)
	if !ok {
		existing = map[string]any{}
	}

	maps.Copy(existing, values)
	s.data[section] = existing
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Require returns the value stored under key or fails with ErrKeyNotFound.
func (s *Store) Require(key string) (any, error) {
	v, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrKeyNotFound, key)
	}

	return v, nil
}

// Save writes the store to its file, readable by the owner only.
func (s *Store) Save() error {
	content, err := s.format.encode(s.data)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", s.path, err)
	}

	err = os.MkdirAll(filepath.Dir(s.path), dirPerm)
	if err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	err = os.WriteFile(s.path, content, filePerm)
	if err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}

	return nil
}

// Set stores v under key.
func (s *Store) Set(key string, v any) {
	s.data[key] = v
}

// unexported constants.
const (
	dirPerm  = 0o755
	filePerm = 0o600
)

type format int

const (
	yamlFormat format = iota
	tomlFormat
)

func (f format) decode(content []byte, out *map[string]any) error {
	if f == tomlFormat {
		return toml.Unmarshal(content, out)
	}

	return yaml.Unmarshal(content, out)
}

func (f format) encode(data map[string]any) ([]byte, error) {
	if f == tomlFormat {
		var buf bytes.Buffer

		err := toml.NewEncoder(&buf).Encode(data)

		return buf.Bytes(), err
	}

	return yaml.Marshal(data)
}

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yamlFormat, nil
	case ".toml":
		return tomlFormat, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}
