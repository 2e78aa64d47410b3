package raids

import (
	"context"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/raid-gold-api/internal/entities"
	"github.com/KirkDiggler/raid-gold-api/internal/errors"
)

// catalogDocument is the wrapped file form:
//
//	raids:
//	  - id: 1
//	    name: Valtan
//	    normalGold: 1200
//	    hardGold: 1800
//
// A bare list of raids, such as a raids.json array, is accepted as well.
type catalogDocument struct {
	Raids []*entities.RaidDefinition `yaml:"raids"`
}

// FileConfig holds the configuration for the file repository
type FileConfig struct {
	Path string
}

// Validate ensures the catalog path is set
func (c *FileConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", c.Path, vb)
	return vb.Build()
}

// FileRepository serves a catalog read once from a YAML or JSON file
type FileRepository struct {
	raids []*entities.RaidDefinition
}

var _ Repository = (*FileRepository)(nil)

// NewFileRepository reads and validates the catalog file
func NewFileRepository(cfg *FileConfig) (*FileRepository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read raid catalog %s", cfg.Path)
	}

	raids, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load raid catalog %s", cfg.Path)
	}

	return &FileRepository{raids: raids}, nil
}

// List returns copies of the catalog entries
func (r *FileRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	return &ListOutput{Raids: copyRaids(r.raids)}, nil
}

// Parse decodes a catalog document, validates it and sorts it by raid ID
func Parse(data []byte) ([]*entities.RaidDefinition, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.InvalidArgumentf("malformed raid catalog: %v", err)
	}

	var raids []*entities.RaidDefinition
	if len(root.Content) > 0 {
		doc := root.Content[0]
		switch doc.Kind {
		case yaml.SequenceNode:
			if err := doc.Decode(&raids); err != nil {
				return nil, errors.InvalidArgumentf("malformed raid list: %v", err)
			}
		case yaml.MappingNode:
			var wrapped catalogDocument
			if err := doc.Decode(&wrapped); err != nil {
				return nil, errors.InvalidArgumentf("malformed raid catalog: %v", err)
			}
			raids = wrapped.Raids
		default:
			return nil, errors.InvalidArgument("raid catalog must be a list or a mapping with a raids key")
		}
	}

	if err := validateRaids(raids); err != nil {
		return nil, err
	}

	sort.Slice(raids, func(i, j int) bool { return raids[i].ID < raids[j].ID })
	return raids, nil
}

func validateRaids(raids []*entities.RaidDefinition) error {
	vb := errors.NewValidationBuilder()
	seen := make(map[int32]bool, len(raids))

	for i, raid := range raids {
		if raid == nil {
			vb.Fieldf("raids", "entry %d is empty", i)
			continue
		}
		if seen[raid.ID] {
			vb.Fieldf("raids", "duplicate raid id %d", raid.ID)
		}
		seen[raid.ID] = true

		if strings.TrimSpace(raid.Name) == "" {
			vb.Fieldf("raids", "raid %d has no name", raid.ID)
		}
		if raid.NormalGold < 0 || raid.HardGold < 0 {
			vb.Fieldf("raids", "raid %d has negative gold", raid.ID)
		}
	}

	return vb.Build()
}

func copyRaids(raids []*entities.RaidDefinition) []*entities.RaidDefinition {
	out := make([]*entities.RaidDefinition, 0, len(raids))
	for _, raid := range raids {
		if raid == nil {
			continue
		}
		r := *raid
		out = append(out, &r)
	}
	return out
}
