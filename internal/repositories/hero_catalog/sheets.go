package herocatalog

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/hero-planner/internal/clients/sheets"
	"github.com/KirkDiggler/hero-planner/internal/entities"
	"github.com/KirkDiggler/hero-planner/internal/errors"
)

// Spreadsheet ranges read by the sheets catalog
const (
	// MasterTabRange lists hero names in column A and rarity in column E
	MasterTabRange = "Master Tab!A2:E"
	// HeroDataRange is the reference table; row 1 holds headers and column C
	// the hero's max level
	HeroDataRange = "Hero Data General!A1:ZZ"

	masterNameCol   = 0
	masterRarityCol = 4
	dataNameCol     = 0
	dataMaxLevelCol = 2
)

type sheetsRepository struct {
	client          sheets.Client
	plannerSheetID  string
	heroDataSheetID string
}

// SheetsConfig contains configuration for the spreadsheet catalog.
type SheetsConfig struct {
	Client sheets.Client
	// PlannerSpreadsheetID holds the Master Tab
	PlannerSpreadsheetID string
	// HeroDataSpreadsheetID holds Hero Data General
	HeroDataSpreadsheetID string
}

// Validate validates the SheetsConfig.
func (cfg *SheetsConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	errors.ValidateRequired("PlannerSpreadsheetID", cfg.PlannerSpreadsheetID, vb)
	errors.ValidateRequired("HeroDataSpreadsheetID", cfg.HeroDataSpreadsheetID, vb)
	return vb.Build()
}

// NewSheets creates a catalog backed by the planner spreadsheets
func NewSheets(cfg *SheetsConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &sheetsRepository{
		client:          cfg.Client,
		plannerSheetID:  cfg.PlannerSpreadsheetID,
		heroDataSheetID: cfg.HeroDataSpreadsheetID,
	}, nil
}

func (r *sheetsRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	master, err := r.client.GetValues(ctx, r.plannerSheetID, MasterTabRange)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read master tab")
	}
	data, err := r.client.GetValues(ctx, r.heroDataSheetID, HeroDataRange)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read hero data")
	}

	maxLevels := make(map[string]int)
	for _, row := range dataRows(data) {
		if lvl, ok := parseMaxLevel(row); ok {
			maxLevels[cell(row, dataNameCol)] = lvl
		}
	}

	var heroes []entities.HeroSpec
	for _, row := range master {
		name := cell(row, masterNameCol)
		// the hero list ends at the first blank row
		if name == "" {
			break
		}
		hero := entities.HeroSpec{
			Name:     name,
			Rarity:   entities.Rarity(cell(row, masterRarityCol)),
			MaxLevel: maxLevels[name],
		}
		if hero.MaxLevel == 0 {
			slog.WarnContext(ctx, "hero has no max level in hero data", "hero", name)
		}
		heroes = append(heroes, hero)
	}

	return &ListOutput{Heroes: heroes}, nil
}

func (r *sheetsRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	data, err := r.client.GetValues(ctx, r.heroDataSheetID, HeroDataRange)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read hero data")
	}

	row := findRow(dataRows(data), input.Name)
	if row == nil {
		return nil, errors.NotFoundf("hero %s not found", input.Name)
	}
	maxLevel, ok := parseMaxLevel(row)
	if !ok {
		return nil, errors.Internalf("hero %s has an invalid max level %q", input.Name, cell(row, dataMaxLevelCol))
	}

	hero := &entities.HeroSpec{Name: input.Name, MaxLevel: maxLevel}

	master, err := r.client.GetValues(ctx, r.plannerSheetID, MasterTabRange)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read master tab")
	}
	if mrow := findRow(master, input.Name); mrow != nil {
		hero.Rarity = entities.Rarity(cell(mrow, masterRarityCol))
	}

	return &GetOutput{Hero: hero}, nil
}

func (r *sheetsRepository) GetDetail(ctx context.Context, input GetDetailInput) (*GetDetailOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	data, err := r.client.GetValues(ctx, r.heroDataSheetID, HeroDataRange)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read hero data")
	}
	if len(data) == 0 {
		return nil, errors.NotFoundf("hero %s not found", input.Name)
	}

	headers := data[0]
	row := findRow(dataRows(data), input.Name)
	if row == nil {
		return nil, errors.NotFoundf("hero %s not found", input.Name)
	}

	detail := &entities.HeroDetail{Name: input.Name}
	for i, header := range headers {
		value := cell(row, i)
		if value == "" {
			continue
		}
		detail.Stats = append(detail.Stats, entities.HeroStat{Header: header, Value: value})
	}

	return &GetDetailOutput{Detail: detail}, nil
}

// dataRows drops the header row of the hero data table
func dataRows(data [][]string) [][]string {
	if len(data) < 2 {
		return nil
	}
	return data[1:]
}

func findRow(rows [][]string, name string) []string {
	for _, row := range rows {
		if cell(row, 0) == name {
			return row
		}
	}
	return nil
}

func parseMaxLevel(row []string) (int, bool) {
	lvl, err := strconv.Atoi(strings.TrimSpace(cell(row, dataMaxLevelCol)))
	if err != nil || lvl <= 0 {
		return 0, false
	}
	return lvl, true
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
