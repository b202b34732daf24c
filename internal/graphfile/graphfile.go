// Package graphfile decodes ufpath input files.
//
// A file describes either a named universe
//
//	[[items]]
//	name = "a"
//	neighbors = ["b"]   # search adjacency, made symmetric on load
//	links = ["c"]       # joined at construction
//
// or a grid of integers under the key "grid". TOML and YAML are accepted and
// chosen by file extension.
package graphfile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format names a supported encoding.
type Format string

// Supported encodings.
const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned for unsupported file extensions.
var ErrUnknownFormat = errors.New("graphfile: unknown format")

// Item is one named element of a universe.
type Item struct {
	Name      string   `toml:"name" yaml:"name"`
	Neighbors []string `toml:"neighbors" yaml:"neighbors"`
	Links     []string `toml:"links" yaml:"links"`
}

// File is the decoded content of an input file.
type File struct {
	Items []Item  `toml:"items" yaml:"items"`
	Grid  [][]int `toml:"grid" yaml:"grid"`
}

// FormatOf picks the format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", path)
	}
}

// Load reads and decodes path.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	f, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return f, nil
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case TOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, err
		}
	case YAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
	return &f, nil
}

// Validate checks the universe part of f and reports every problem found:
// empty or duplicate names and references to unknown items.
func (f *File) Validate() error {
	var result *multierror.Error
	if len(f.Items) == 0 {
		return multierror.Append(result, errors.New("no items"))
	}

	known := make(map[string]int, len(f.Items))
	for i, it := range f.Items {
		switch {
		case it.Name == "":
			result = multierror.Append(result, errors.Errorf("item %d: empty name", i+1))
		case known[it.Name] > 0:
			result = multierror.Append(result, errors.Errorf("item %d: duplicate name %q", i+1, it.Name))
		default:
			known[it.Name] = i + 1
		}
	}
	for _, it := range f.Items {
		for _, n := range it.Neighbors {
			if known[n] == 0 {
				result = multierror.Append(result, errors.Errorf("item %q: unknown neighbor %q", it.Name, n))
			}
		}
		for _, l := range it.Links {
			if known[l] == 0 {
				result = multierror.Append(result, errors.Errorf("item %q: unknown link %q", it.Name, l))
			}
		}
	}
	return result.ErrorOrNil()
}
