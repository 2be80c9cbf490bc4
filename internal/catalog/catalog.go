// Package catalog holds the static topic content the app navigates over.
package catalog

import (
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed topics.yml
var builtinTopics []byte

// Topic is one content item. Topics are created once at startup and never
// mutated afterwards.
type Topic struct {
	ID         string   `yaml:"id"`
	Title      string   `yaml:"title"`
	Summary    string   `yaml:"summary"`
	Highlights []string `yaml:"highlights"`
	CodeHint   string   `yaml:"code-hint"`
}

// Catalog is an ordered, immutable sequence of topics with unique IDs.
type Catalog struct {
	topics []Topic
}

type catalogFile struct {
	Topics []Topic `yaml:"topics"`
}

// New builds a catalog from topics, validating ID uniqueness.
func New(topics []Topic) (*Catalog, error) {
	seen := make(map[string]int, len(topics))
	for i, tp := range topics {
		if tp.ID == "" {
			return nil, fmt.Errorf("catalog: topic %d has an empty id", i)
		}
		if prev, dup := seen[tp.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate topic id %q (positions %d and %d)", tp.ID, prev, i)
		}
		seen[tp.ID] = i
	}
	return &Catalog{topics: append([]Topic(nil), topics...)}, nil
}

// Load parses a YAML catalog from r.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: read: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	return New(file.Topics)
}

// Default returns the built-in catalog compiled into the binary.
func Default() *Catalog {
	var file catalogFile
	if err := yaml.Unmarshal(builtinTopics, &file); err != nil {
		// The embedded file ships with the binary; a parse failure here is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("catalog: embedded topics are invalid: %v", err))
	}
	c, err := New(file.Topics)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded topics are invalid: %v", err))
	}
	return c
}

// Topics returns a copy of the ordered topic sequence.
func (c *Catalog) Topics() []Topic {
	return append([]Topic(nil), c.topics...)
}

// Len returns the number of topics.
func (c *Catalog) Len() int { return len(c.topics) }

// ByID returns the topic with the given id, or false if absent.
func (c *Catalog) ByID(id string) (Topic, bool) {
	for _, tp := range c.topics {
		if tp.ID == id {
			return tp, true
		}
	}
	return Topic{}, false
}
