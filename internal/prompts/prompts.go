// Package prompts picks the journal question shown when a day is closed.
package prompts

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var defaultPrompts []byte

type file struct {
	Prompts []string `yaml:"prompts"`
}

// Rotation is a fixed, ordered list of prompts indexed by day of year.
type Rotation struct {
	prompts []string
}

// Default returns the rotation shipped with the binary.
func Default() *Rotation {
	r, err := Parse(defaultPrompts)
	if err != nil {
		panic(fmt.Sprintf("embedded prompts are invalid: %v", err))
	}
	return r
}

// Parse decodes a YAML document with a top-level "prompts" list.
// Blank entries are dropped; an empty result is an error.
func Parse(data []byte) (*Rotation, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse prompts: %w", err)
	}

	var list []string
	for _, p := range f.Prompts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	if len(list) == 0 {
		return nil, errors.New("prompt list is empty")
	}
	return &Rotation{prompts: list}, nil
}

// LoadFile reads a prompts YAML file from disk.
func LoadFile(path string) (*Rotation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts file: %w", err)
	}
	return Parse(data)
}

// Load returns the rotation from path, or the default when path is empty.
func Load(path string) (*Rotation, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

func (r *Rotation) Len() int {
	return len(r.prompts)
}

// Pick returns the prompt for a day-of-year value, wrapping around the list.
func (r *Rotation) Pick(dayOfYear int) string {
	n := len(r.prompts)
	i := dayOfYear % n
	if i < 0 {
		i += n
	}
	return r.prompts[i]
}

// ForDate returns the prompt for the calendar day containing now.
func (r *Rotation) ForDate(now time.Time) string {
	return r.Pick(DayOfYear(now))
}

// DayOfYear counts whole days elapsed since midnight of the day before
// January 1st in now's location, so January 1st is day 1.
func DayOfYear(now time.Time) int {
	start := time.Date(now.Year(), time.January, 0, 0, 0, 0, 0, now.Location())
	return int(now.Sub(start) / (24 * time.Hour))
}
