package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a feed description file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// AuthorFile is the author block of a feed description.
type AuthorFile struct {
	Name  string `yaml:"name" toml:"name"`
	Email string `yaml:"email" toml:"email"`
	URI   string `yaml:"uri" toml:"uri"`
}

// EntryFile is one entry of a feed description. ContentFile, when set, is
// read relative to the description file and takes the place of Content.
type EntryFile struct {
	ID          string    `yaml:"id" toml:"id"`
	Title       string    `yaml:"title" toml:"title"`
	Summary     string    `yaml:"summary" toml:"summary"`
	Updated     time.Time `yaml:"updated" toml:"updated"`
	Categories  []string  `yaml:"categories" toml:"categories"`
	Link        string    `yaml:"link" toml:"link"`
	Content     string    `yaml:"content" toml:"content"`
	ContentFile string    `yaml:"content_file" toml:"content_file"`
}

// FeedFile represents the structure of a feed description file.
type FeedFile struct {
	ID         string      `yaml:"id" toml:"id"`
	URL        string      `yaml:"url" toml:"url"`
	Title      string      `yaml:"title" toml:"title"`
	Subtitle   string      `yaml:"subtitle" toml:"subtitle"`
	Categories []string    `yaml:"categories" toml:"categories"`
	Logo       string      `yaml:"logo" toml:"logo"`
	Icon       string      `yaml:"icon" toml:"icon"`
	Language   string      `yaml:"language" toml:"language"`
	Author     AuthorFile  `yaml:"author" toml:"author"`
	Updated    time.Time   `yaml:"updated" toml:"updated"`
	Entries    []EntryFile `yaml:"entries" toml:"entries"`
}

// FormatFromPath picks a Format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported feed description format: %s", path)
	}
}

// Decode parses a feed description in the given format.
func Decode(data []byte, format Format) (*FeedFile, error) {
	var file FeedFile

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to parse toml: unknown key %s", undecoded[0])
		}
	default:
		return nil, fmt.Errorf("unsupported feed description format: %s", format)
	}

	return &file, nil
}

// LoadFile reads and decodes the feed description at path without
// converting it.
func LoadFile(path string) (*FeedFile, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed description: %w", err)
	}

	file, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return file, nil
}
