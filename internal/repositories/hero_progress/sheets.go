package heroprogress

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/hero-planner/internal/clients/sheets"
	"github.com/KirkDiggler/hero-planner/internal/entities"
	"github.com/KirkDiggler/hero-planner/internal/errors"
)

// Layout of the User Hero Data tab. Row 1 is a header; columns A..F hold the
// record and G..J the cached calculation results.
const (
	SheetTitle = "User Hero Data"
	DataRange  = SheetTitle + "!A2:J"

	firstDataRow = 2
)

const (
	colUser = iota
	colHero
	colLevel
	colRelics
	colNextGoal
	colUltimateGoal
	colNextUnlock
	colRelicsToUnlock
	colRelicsToNextGoal
	colRelicsToUltimate
)

type sheetsRepository struct {
	client        sheets.Client
	spreadsheetID string
}

// SheetsConfig contains configuration for the spreadsheet progress store.
type SheetsConfig struct {
	Client sheets.Client
	// SpreadsheetID holds the User Hero Data tab
	SpreadsheetID string
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
	errors.ValidateRequired("SpreadsheetID", cfg.SpreadsheetID, vb)
	return vb.Build()
}

// NewSheets creates a progress store backed by the User Hero Data tab
func NewSheets(cfg *SheetsConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &sheetsRepository{
		client:        cfg.Client,
		spreadsheetID: cfg.SpreadsheetID,
	}, nil
}

func (r *sheetsRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.UserID, input.HeroName); err != nil {
		return nil, err
	}

	rows, err := r.readRows(ctx)
	if err != nil {
		return nil, err
	}

	idx := findRecord(rows, input.UserID, input.HeroName)
	if idx < 0 {
		return nil, errors.NotFoundf("%s is not tracked by user %s", input.HeroName, input.UserID)
	}

	return &GetOutput{Progress: parseRow(ctx, rows[idx])}, nil
}

func (r *sheetsRepository) ListByUser(ctx context.Context, input ListByUserInput) (*ListByUserOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	rows, err := r.readRows(ctx)
	if err != nil {
		return nil, err
	}

	var out []*entities.HeroProgress
	for _, row := range rows {
		if cell(row, colUser) == input.UserID && heroName(row) != "" {
			out = append(out, parseRow(ctx, row))
		}
	}

	return &ListByUserOutput{Progress: out}, nil
}

func (r *sheetsRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateProgress(input.Progress); err != nil {
		return nil, err
	}

	rows, err := r.readRows(ctx)
	if err != nil {
		return nil, err
	}
	if findRecord(rows, input.Progress.UserID, input.Progress.HeroName) >= 0 {
		return nil, errors.AlreadyExistsf("%s is already tracked by user %s", input.Progress.HeroName, input.Progress.UserID)
	}

	row := append([]string{input.Progress.UserID, input.Progress.HeroName}, recordCells(input.Progress)...)
	if err := r.client.AppendValues(ctx, r.spreadsheetID, SheetTitle, [][]string{row}); err != nil {
		return nil, errors.Wrap(err, "failed to append hero progress")
	}

	return &CreateOutput{Progress: input.Progress.Clone()}, nil
}

func (r *sheetsRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateProgress(input.Progress); err != nil {
		return nil, err
	}

	rowNum, existing, err := r.locate(ctx, input.Progress.UserID, input.Progress.HeroName)
	if err != nil {
		return nil, err
	}

	rng := fmt.Sprintf("%s!C%d:F%d", SheetTitle, rowNum, rowNum)
	if err := r.client.UpdateValues(ctx, r.spreadsheetID, rng, [][]string{recordCells(input.Progress)}); err != nil {
		return nil, errors.Wrap(err, "failed to update hero progress")
	}

	updated := input.Progress.Clone()
	updated.Needs = existing.Needs
	return &UpdateOutput{Progress: updated}, nil
}

func (r *sheetsRepository) UpdateNeeds(ctx context.Context, input UpdateNeedsInput) (*UpdateNeedsOutput, error) {
	if err := validateKey(input.UserID, input.HeroName); err != nil {
		return nil, err
	}

	rowNum, _, err := r.locate(ctx, input.UserID, input.HeroName)
	if err != nil {
		return nil, err
	}

	rng := fmt.Sprintf("%s!G%d:J%d", SheetTitle, rowNum, rowNum)
	if err := r.client.UpdateValues(ctx, r.spreadsheetID, rng, [][]string{needsCells(input.Needs)}); err != nil {
		return nil, errors.Wrap(err, "failed to update relic needs")
	}

	return &UpdateNeedsOutput{}, nil
}

func (r *sheetsRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.UserID, input.HeroName); err != nil {
		return nil, err
	}

	rowNum, _, err := r.locate(ctx, input.UserID, input.HeroName)
	if err != nil {
		return nil, err
	}

	// DeleteRows is zero-based and end-exclusive
	start := int64(rowNum - 1)
	if err := r.client.DeleteRows(ctx, r.spreadsheetID, SheetTitle, start, start+1); err != nil {
		return nil, errors.Wrap(err, "failed to delete hero progress")
	}

	return &DeleteOutput{}, nil
}

func (r *sheetsRepository) readRows(ctx context.Context) ([][]string, error) {
	rows, err := r.client.GetValues(ctx, r.spreadsheetID, DataRange)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read user hero data")
	}
	return rows, nil
}

// locate returns the 1-based sheet row of a record along with its contents
func (r *sheetsRepository) locate(ctx context.Context, userID, hero string) (int, *entities.HeroProgress, error) {
	rows, err := r.readRows(ctx)
	if err != nil {
		return 0, nil, err
	}
	idx := findRecord(rows, userID, hero)
	if idx < 0 {
		return 0, nil, errors.NotFoundf("%s is not tracked by user %s", hero, userID)
	}
	return idx + firstDataRow, parseRow(ctx, rows[idx]), nil
}

func findRecord(rows [][]string, userID, hero string) int {
	for i, row := range rows {
		if cell(row, colUser) == userID && heroName(row) == hero {
			return i
		}
	}
	return -1
}

func heroName(row []string) string {
	return strings.TrimSpace(cell(row, colHero))
}

func parseRow(ctx context.Context, row []string) *entities.HeroProgress {
	p := &entities.HeroProgress{
		UserID:            cell(row, colUser),
		HeroName:          heroName(row),
		CurrentLevel:      parseCount(ctx, row, colLevel),
		CurrentRelics:     parseCount(ctx, row, colRelics),
		NextGoalLevel:     parseGoal(ctx, row, colNextGoal),
		UltimateGoalLevel: parseGoal(ctx, row, colUltimateGoal),
	}
	p.Needs = parseNeeds(row)
	return p
}

// parseCount reads a level or relic cell; blanks count as zero
func parseCount(ctx context.Context, row []string, col int) int {
	raw := strings.TrimSpace(cell(row, col))
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.WarnContext(ctx, "ignoring malformed cell", "column", col, "value", raw)
		return 0
	}
	return v
}

// parseGoal reads a goal cell; blanks are unset
func parseGoal(ctx context.Context, row []string, col int) *int {
	raw := strings.TrimSpace(cell(row, col))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.WarnContext(ctx, "ignoring malformed goal cell", "column", col, "value", raw)
		return nil
	}
	return &v
}

// parseNeeds reads the cached calculation columns. The sheet only keeps the
// rendered text, so a surplus amount is not recoverable.
func parseNeeds(row []string) *entities.RelicNeeds {
	unlock := strings.TrimSpace(cell(row, colNextUnlock))
	if unlock == "" {
		return nil
	}

	needs := &entities.RelicNeeds{
		RelicsToNextUnlock:   parseOutcome(cell(row, colRelicsToUnlock), entities.NextUnlockPhrasing),
		RelicsToNextGoal:     parseOutcome(cell(row, colRelicsToNextGoal), entities.NextGoalPhrasing),
		RelicsToUltimateGoal: parseOutcome(cell(row, colRelicsToUltimate), entities.UltimateGoalPhrasing),
	}
	if lvl, err := strconv.Atoi(unlock); err == nil {
		needs.NextUnlock = entities.UnlockOutcome{Level: lvl}
	} else {
		needs.NextUnlock = entities.UnlockOutcome{MaxedOut: true}
	}
	return needs
}

func parseOutcome(raw string, p entities.Phrasing) entities.RelicOutcome {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return entities.RelicOutcome{Kind: entities.OutcomeNotSet}
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return entities.RelicOutcome{Kind: entities.OutcomeAmount, Amount: v}
	}
	switch raw {
	case entities.PhraseHeroMaxed:
		return entities.RelicOutcome{Kind: entities.OutcomeMaxedOut}
	case p.Sufficient:
		return entities.RelicOutcome{Kind: entities.OutcomeSufficient}
	case p.PastGoal:
		return entities.RelicOutcome{Kind: entities.OutcomeAlreadyPastGoal}
	default:
		return entities.RelicOutcome{Kind: entities.OutcomeNotSet}
	}
}

// recordCells renders columns C..F
func recordCells(p *entities.HeroProgress) []string {
	return []string{
		strconv.Itoa(p.CurrentLevel),
		strconv.Itoa(p.CurrentRelics),
		formatGoal(p.NextGoalLevel),
		formatGoal(p.UltimateGoalLevel),
	}
}

// needsCells renders columns G..J
func needsCells(n entities.RelicNeeds) []string {
	return []string{
		n.NextUnlock.String(),
		n.RelicsToNextUnlock.Render(entities.NextUnlockPhrasing),
		n.RelicsToNextGoal.Render(entities.NextGoalPhrasing),
		n.RelicsToUltimateGoal.Render(entities.UltimateGoalPhrasing),
	}
}

func formatGoal(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
