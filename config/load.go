package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type fileConfig struct {
	Boundary struct {
		CaseInsensitive bool `toml:"case_insensitive"`
	} `toml:"boundary"`
	Headers struct {
		NumberDefault int `toml:"number_default"`
		NumberMaximal int `toml:"number_max"`
		SpaceDefault  int `toml:"space_default"`
		SpaceMaximal  int `toml:"space_max"`
	} `toml:"headers"`
	Form struct {
		EntriesPrealloc    int    `toml:"entries_prealloc"`
		DefaultCoding      string `toml:"default_coding"`
		DefaultContentType string `toml:"default_content_type"`
	} `toml:"form"`
	Chunked struct {
		MaxChunkSize int64 `toml:"max_chunk_size"`
		Trailer      bool  `toml:"trailer"`
	} `toml:"chunked"`
	Read struct {
		BufferSize int `toml:"buffer_size"`
	} `toml:"read"`
}

// Load reads a TOML file and overlays the values it defines on top of Default(). Keys
// absent from the file keep their default values.
func Load(path string) (*Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	cfg := Default()

	if meta.IsDefined("boundary", "case_insensitive") {
		cfg.Boundary.CaseInsensitive = raw.Boundary.CaseInsensitive
	}

	if meta.IsDefined("headers", "number_default") {
		cfg.Headers.Number.Default = raw.Headers.NumberDefault
	}

	if meta.IsDefined("headers", "number_max") {
		cfg.Headers.Number.Maximal = raw.Headers.NumberMaximal
	}

	if meta.IsDefined("headers", "space_default") {
		cfg.Headers.Space.Default = raw.Headers.SpaceDefault
	}

	if meta.IsDefined("headers", "space_max") {
		cfg.Headers.Space.Maximal = raw.Headers.SpaceMaximal
	}

	if meta.IsDefined("form", "entries_prealloc") {
		cfg.Form.EntriesPrealloc = raw.Form.EntriesPrealloc
	}

	if meta.IsDefined("form", "default_coding") {
		cfg.Form.DefaultCoding = strings.TrimSpace(raw.Form.DefaultCoding)
	}

	if meta.IsDefined("form", "default_content_type") {
		cfg.Form.DefaultContentType = strings.TrimSpace(raw.Form.DefaultContentType)
	}

	if meta.IsDefined("chunked", "max_chunk_size") {
		cfg.Chunked.MaxChunkSize = raw.Chunked.MaxChunkSize
	}

	if meta.IsDefined("chunked", "trailer") {
		cfg.Chunked.Trailer = raw.Chunked.Trailer
	}

	if meta.IsDefined("read", "buffer_size") {
		cfg.Read.BufferSize = raw.Read.BufferSize
	}

	return cfg, cfg.Validate()
}

// Validate checks whether limits are consistent with each other.
func (c *Config) Validate() error {
	switch {
	case c.Headers.Number.Maximal <= 0:
		return fmt.Errorf("config: headers.number_max must be positive")
	case c.Headers.Number.Default > c.Headers.Number.Maximal:
		return fmt.Errorf("config: headers.number_default exceeds headers.number_max")
	case c.Headers.Space.Maximal <= 0:
		return fmt.Errorf("config: headers.space_max must be positive")
	case c.Headers.Space.Default > c.Headers.Space.Maximal:
		return fmt.Errorf("config: headers.space_default exceeds headers.space_max")
	case c.Chunked.MaxChunkSize <= 0:
		return fmt.Errorf("config: chunked.max_chunk_size must be positive")
	case c.Read.BufferSize <= 0:
		return fmt.Errorf("config: read.buffer_size must be positive")
	}

	return nil
}
