// Package sheets is the spreadsheet client used by the catalog and progress
// repositories. Cells are exchanged as strings; callers own parsing.
package sheets

//go:generate mockgen -destination=mock/mock_client.go -package=sheetsmock github.com/KirkDiggler/hero-planner/internal/clients/sheets Client

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/KirkDiggler/hero-planner/internal/errors"
)

const valueInputRaw = "RAW"

// Client defines the spreadsheet operations the repositories need
type Client interface {
	// GetValues reads a range in A1 notation. Trailing empty cells are not
	// returned, so rows may be shorter than the range.
	GetValues(ctx context.Context, spreadsheetID, rng string) ([][]string, error)

	// UpdateValues overwrites a range with rows
	UpdateValues(ctx context.Context, spreadsheetID, rng string, rows [][]string) error

	// AppendValues adds rows after the last row of the table found in rng
	AppendValues(ctx context.Context, spreadsheetID, rng string, rows [][]string) error

	// DeleteRows removes rows [start, end) (zero-based) from the named tab
	// Returns errors.NotFound if no tab has that title
	DeleteRows(ctx context.Context, spreadsheetID, sheetTitle string, start, end int64) error
}

// Config contains configuration options for the Google Sheets client.
type Config struct {
	// CredentialsFile is a service account JSON key (optional when running
	// with application default credentials)
	CredentialsFile string
	// ClientOptions are appended after the credentials option; tests use
	// them to point the client at a local endpoint
	ClientOptions []option.ClientOption
	// HTTPClient overrides the transport (optional)
	HTTPClient *http.Client
}

// Validate validates the Config.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	return nil
}

type client struct {
	svc *gsheets.Service

	mu       sync.RWMutex
	sheetIDs map[string]int64
}

// New creates a Google Sheets backed Client
func New(ctx context.Context, cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []option.ClientOption{option.WithScopes(gsheets.SpreadsheetsScope)}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}
	opts = append(opts, cfg.ClientOptions...)

	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sheets service")
	}

	return &client{
		svc:      svc,
		sheetIDs: make(map[string]int64),
	}, nil
}

func (c *client) GetValues(ctx context.Context, spreadsheetID, rng string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, convertError(err, "failed to read %s", rng)
	}

	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = fmt.Sprint(cell)
		}
		rows[i] = cells
	}
	return rows, nil
}

func (c *client) UpdateValues(ctx context.Context, spreadsheetID, rng string, rows [][]string) error {
	_, err := c.svc.Spreadsheets.Values.Update(spreadsheetID, rng, toValueRange(rows)).
		ValueInputOption(valueInputRaw).
		Context(ctx).
		Do()
	if err != nil {
		return convertError(err, "failed to write %s", rng)
	}
	return nil
}

func (c *client) AppendValues(ctx context.Context, spreadsheetID, rng string, rows [][]string) error {
	_, err := c.svc.Spreadsheets.Values.Append(spreadsheetID, rng, toValueRange(rows)).
		ValueInputOption(valueInputRaw).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return convertError(err, "failed to append to %s", rng)
	}
	return nil
}

func (c *client) DeleteRows(ctx context.Context, spreadsheetID, sheetTitle string, start, end int64) error {
	if end <= start {
		return errors.InvalidArgumentf("invalid row span [%d, %d)", start, end)
	}

	sheetID, err := c.sheetID(ctx, spreadsheetID, sheetTitle)
	if err != nil {
		return err
	}

	req := &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			DeleteDimension: &gsheets.DeleteDimensionRequest{
				Range: &gsheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: start,
					EndIndex:   end,
					// the first tab has id 0 and rows start at index 0
					ForceSendFields: []string{"SheetId", "StartIndex"},
				},
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(spreadsheetID, req).Context(ctx).Do(); err != nil {
		return convertError(err, "failed to delete rows from %s", sheetTitle)
	}
	return nil
}

// sheetID resolves a tab title to its numeric id. Ids are stable for the
// life of a tab so lookups are cached per spreadsheet.
func (c *client) sheetID(ctx context.Context, spreadsheetID, title string) (int64, error) {
	key := spreadsheetID + "/" + title

	c.mu.RLock()
	id, ok := c.sheetIDs[key]
	c.mu.RUnlock()
	if ok {
		return id, nil
	}

	ss, err := c.svc.Spreadsheets.Get(spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, convertError(err, "failed to load spreadsheet %s", spreadsheetID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, sh := range ss.Sheets {
		if sh.Properties == nil {
			continue
		}
		c.sheetIDs[spreadsheetID+"/"+sh.Properties.Title] = sh.Properties.SheetId
	}

	id, ok = c.sheetIDs[key]
	if !ok {
		return 0, errors.NotFoundf("sheet %q not found", title)
	}
	return id, nil
}

func toValueRange(rows [][]string) *gsheets.ValueRange {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}
	return &gsheets.ValueRange{Values: values}
}

func convertError(err error, format string, args ...interface{}) error {
	var apiErr *googleapi.Error
	if !stderrors.As(err, &apiErr) {
		return errors.Wrapf(err, format, args...)
	}

	slog.Debug("sheets api error", "status", apiErr.Code, "message", apiErr.Message)

	switch apiErr.Code {
	case http.StatusNotFound:
		return errors.WrapWithCode(err, errors.CodeNotFound, fmt.Sprintf(format, args...))
	case http.StatusBadRequest:
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, fmt.Sprintf(format, args...))
	case http.StatusForbidden, http.StatusUnauthorized:
		return errors.WrapWithCode(err, errors.CodePermissionDenied, fmt.Sprintf(format, args...))
	case http.StatusTooManyRequests:
		return errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf(format, args...))
	default:
		return errors.Wrapf(err, format, args...)
	}
}
