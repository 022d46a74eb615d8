package herocatalog

import (
	"context"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/hero-planner/internal/entities"
	"github.com/KirkDiggler/hero-planner/internal/errors"
)

// catalogFile is the on-disk YAML layout
type catalogFile struct {
	Heroes []fileHero `yaml:"heroes"`
}

type fileHero struct {
	entities.HeroSpec `yaml:",inline"`
	Stats             []entities.HeroStat `yaml:"stats"`
}

type fileRepository struct {
	heroes []entities.HeroSpec
	byName map[string]fileHero
}

// FileConfig contains configuration for the YAML catalog.
type FileConfig struct {
	Path string
}

// Validate validates the FileConfig.
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", cfg.Path, vb)
	return vb.Build()
}

// NewFile loads a catalog from a YAML file. The file is read once.
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(cfg.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog file %s", cfg.Path)
	}

	repo, err := parseCatalog(raw)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

func parseCatalog(raw []byte) (*fileRepository, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse catalog file")
	}

	repo := &fileRepository{byName: make(map[string]fileHero, len(doc.Heroes))}
	vb := errors.NewValidationBuilder()
	for i, h := range doc.Heroes {
		switch {
		case h.Name == "":
			vb.Fieldf("heroes", "entry %d has no name", i)
			continue
		case h.MaxLevel <= 0:
			vb.Fieldf(h.Name, "max_level must be positive, got %d", h.MaxLevel)
			continue
		}
		if _, dup := repo.byName[h.Name]; dup {
			vb.Field(h.Name, "is listed more than once")
			continue
		}
		repo.byName[h.Name] = h
		repo.heroes = append(repo.heroes, h.HeroSpec)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return repo, nil
}

func (r *fileRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	heroes := make([]entities.HeroSpec, len(r.heroes))
	copy(heroes, r.heroes)
	return &ListOutput{Heroes: heroes}, nil
}

func (r *fileRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}
	h, ok := r.byName[input.Name]
	if !ok {
		return nil, errors.NotFoundf("hero %s not found", input.Name)
	}
	hero := h.HeroSpec
	return &GetOutput{Hero: &hero}, nil
}

func (r *fileRepository) GetDetail(_ context.Context, input GetDetailInput) (*GetDetailOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}
	h, ok := r.byName[input.Name]
	if !ok {
		return nil, errors.NotFoundf("hero %s not found", input.Name)
	}

	stats := make([]entities.HeroStat, len(h.Stats))
	copy(stats, h.Stats)
	return &GetDetailOutput{Detail: &entities.HeroDetail{Name: h.Name, Stats: stats}}, nil
}
