package scorecard

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/tenpin/internal/game/bowling"
)

// yamlCardFile is the top-level YAML structure for scorecard files.
type yamlCardFile struct {
	Game yamlGame `yaml:"game"`
}

// yamlGame is the YAML representation of a recorded game.
type yamlGame struct {
	ID            string      `yaml:"id"`
	Bowler        string      `yaml:"bowler"`
	Rolls         []yaml.Node `yaml:"rolls"`
	ExpectedScore *int        `yaml:"expected_score"`
}

// LoadFromFile reads and validates a single scorecard YAML file.
//
// Precondition: path must point to a YAML scorecard file.
// Postcondition: Returns a validated Card or a non-nil error.
func LoadFromFile(path string) (*Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scorecard file %s: %w", path, err)
	}
	card, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return card, nil
}

// LoadFromBytes parses and validates a scorecard from YAML bytes.
//
// Postcondition: Returns a validated Card or a non-nil error. A roll that is
// not an integer scalar yields an error wrapping bowling.ErrInvalidInput.
func LoadFromBytes(data []byte) (*Card, error) {
	var file yamlCardFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing scorecard YAML: %w", err)
	}

	card, err := convertYAMLGame(file.Game)
	if err != nil {
		return nil, fmt.Errorf("parsing scorecard rolls: %w", err)
	}
	if err := card.Validate(); err != nil {
		return nil, fmt.Errorf("validating scorecard: %w", err)
	}
	return card, nil
}

// LoadFromDir loads every .yaml and .yml file in dir, sorted by file name.
//
// Precondition: dir must be a valid directory path.
// Postcondition: Returns all validated cards or the first error encountered.
func LoadFromDir(dir string) ([]*Card, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading scorecard directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	cards := make([]*Card, 0, len(names))
	for _, name := range names {
		card, err := LoadFromFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func convertYAMLGame(yg yamlGame) (*Card, error) {
	rolls, err := convertYAMLRolls(yg.Rolls)
	if err != nil {
		return nil, err
	}
	id := yg.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &Card{
		ID:            id,
		Bowler:        yg.Bowler,
		Rolls:         rolls,
		ExpectedScore: yg.ExpectedScore,
	}, nil
}

// convertYAMLRolls accepts only integer scalars. A float, string, or nested
// node is rejected rather than truncated to an int.
func convertYAMLRolls(nodes []yaml.Node) ([]int, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	rolls := make([]int, len(nodes))
	for i := range nodes {
		node := &nodes[i]
		if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!int" {
			return nil, fmt.Errorf("roll %d: %w: %q is not a whole number of pins",
				i, bowling.ErrInvalidInput, node.Value)
		}
		if err := node.Decode(&rolls[i]); err != nil {
			return nil, fmt.Errorf("roll %d: %w: %v", i, bowling.ErrInvalidInput, err)
		}
	}
	return rolls, nil
}
