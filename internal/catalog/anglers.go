package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Angler is a read-only candidate shown on the matching deck.
type Angler struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Age           int      `yaml:"age"`
	Bio           string   `yaml:"bio"`
	Location      string   `yaml:"location"`
	DistanceMiles float64  `yaml:"distance_miles"`
	Experience    string   `yaml:"experience"`
	FishingStyle  string   `yaml:"fishing_style"`
	Interests     []string `yaml:"interests"`
	Availability  string   `yaml:"availability"`
	Rating        float64  `yaml:"rating"`
	TotalCatches  int      `yaml:"total_catches"`
}

type deckFile struct {
	Anglers []Angler `yaml:"anglers"`
}

//go:embed anglers.yaml
var defaultDeck []byte

// DefaultAnglers returns the built-in deck.
func DefaultAnglers() []Angler {
	anglers, err := ParseAnglers(defaultDeck)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded deck is invalid: %v", err))
	}
	return anglers
}

// LoadAnglers reads a deck from a YAML file. An empty path yields the
// built-in deck.
func LoadAnglers(path string) ([]Angler, error) {
	if path == "" {
		return DefaultAnglers(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}
	return ParseAnglers(data)
}

// ParseAnglers decodes a YAML deck. Every angler must carry a unique id.
func ParseAnglers(data []byte) ([]Angler, error) {
	var f deckFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse deck: %w", err)
	}

	seen := make(map[string]bool, len(f.Anglers))
	for i, a := range f.Anglers {
		if a.ID == "" {
			return nil, fmt.Errorf("angler %d has no id", i)
		}
		if seen[a.ID] {
			return nil, fmt.Errorf("duplicate angler id %q", a.ID)
		}
		seen[a.ID] = true
	}
	return f.Anglers, nil
}
