// Package yaml loads the extractor's lexicon and tuning from a YAML file.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fwojciec/prodspan"
	"github.com/fwojciec/prodspan/rules"
	"gopkg.in/yaml.v3"
)

// Config is the lexicon file format.
//
// Anchors and Exclusions replace the built-in vocabulary when set; the Extra
// lists are appended to whichever vocabulary is in effect. Zero tuning values
// keep the annotator defaults.
type Config struct {
	Anchors         []string `yaml:"anchors"`
	ExtraAnchors    []string `yaml:"extraAnchors"`
	Exclusions      []string `yaml:"exclusions"`
	ExtraExclusions []string `yaml:"extraExclusions"`
	Attributes      []string `yaml:"attributes"`
	Lookahead       int      `yaml:"lookahead"`
	MaxWords        int      `yaml:"maxWords"`
}

// Load reads a config file. An empty path returns the zero Config, which
// builds the default lexicon.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, prodspan.Errorf(prodspan.EINVALID, "lexicon file %s: %s", path, prodspan.ErrorMessage(err))
	}
	return cfg, nil
}

// Parse decodes and validates a config document. Unknown keys are rejected
// so that a misspelled list does not silently fall back to the defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, prodspan.Errorf(prodspan.EINVALID, "parsing lexicon: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate returns an error if a tuning value is out of range.
func (c *Config) Validate() error {
	if c.Lookahead < 0 {
		return prodspan.Errorf(prodspan.EINVALID, "lookahead must not be negative, got %d", c.Lookahead)
	}
	if c.MaxWords < 0 {
		return prodspan.Errorf(prodspan.EINVALID, "maxWords must not be negative, got %d", c.MaxWords)
	}
	return nil
}

// Lexicon builds the lexicon described by the config.
func (c *Config) Lexicon(logger *slog.Logger) *rules.Lexicon {
	anchors := c.Anchors
	if len(anchors) == 0 {
		anchors = rules.DefaultAnchors()
	}
	exclusions := c.Exclusions
	if len(exclusions) == 0 {
		exclusions = rules.DefaultExclusions()
	}
	attributes := c.Attributes
	if len(attributes) == 0 {
		attributes = rules.DefaultAttributes()
	}

	anchors = append(append([]string{}, anchors...), c.ExtraAnchors...)
	exclusions = append(append([]string{}, exclusions...), c.ExtraExclusions...)

	opts := []rules.LexiconOption{rules.WithAttributes(attributes)}
	if logger != nil {
		opts = append(opts, rules.WithLogger(logger))
	}
	return rules.NewLexicon(anchors, exclusions, opts...)
}

// Annotator builds an annotator over the configured lexicon and tuning.
func (c *Config) Annotator(logger *slog.Logger) *rules.Annotator {
	return rules.NewAnnotator(c.Lexicon(logger),
		rules.WithLookahead(c.Lookahead),
		rules.WithMaxWords(c.MaxWords),
	)
}
