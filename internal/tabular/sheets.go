package tabular

import (
	"context"
	"fmt"
	"regexp"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var spreadsheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// Sheets keeps every table in a sheet of one Google spreadsheet. Writes go through a
// single spreadsheets.batchUpdate call, which the API applies all-or-nothing.
type Sheets struct {
	service       *sheets.Service
	spreadsheetID string
	sheetIDs      map[string]int64
	logger        *zap.SugaredLogger
}

func NewSheets(ctx context.Context, sheetURL string, credentials []byte, logger *zap.SugaredLogger) (*Sheets, error) {
	spreadsheetID, err := ExtractSpreadsheetID(sheetURL)
	if err != nil {
		return nil, err
	}

	cfg, err := google.JWTConfigFromJSON(credentials, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	s := &Sheets{
		service:       service,
		spreadsheetID: spreadsheetID,
		sheetIDs:      make(map[string]int64),
		logger:        logger,
	}
	if err = s.ensureTables(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func ExtractSpreadsheetID(url string) (string, error) {
	matches := spreadsheetIDPattern.FindStringSubmatch(url)
	if len(matches) < 2 {
		return "", fmt.Errorf("invalid Google Sheets URL: %q", url)
	}
	return matches[1], nil
}

// ensureTables creates missing sheets and writes the header row into empty ones.
func (s *Sheets) ensureTables(ctx context.Context) error {
	spreadsheet, err := s.service.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("get spreadsheet: %w", err)
	}
	for _, sh := range spreadsheet.Sheets {
		s.sheetIDs[sh.Properties.Title] = sh.Properties.SheetId
	}

	var requests []*sheets.Request
	for _, t := range Tables {
		if _, ok := s.sheetIDs[t]; !ok {
			requests = append(requests, &sheets.Request{AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: t},
			}})
		}
	}
	if len(requests) > 0 {
		resp, err := s.service.Spreadsheets.BatchUpdate(s.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{Requests: requests}).Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("create sheets: %w", err)
		}
		for _, r := range resp.Replies {
			if r.AddSheet != nil {
				s.sheetIDs[r.AddSheet.Properties.Title] = r.AddSheet.Properties.SheetId
				s.logger.Infow("sheet created", "sheet", r.AddSheet.Properties.Title)
			}
		}
	}

	for _, t := range Tables {
		headerRange := t + "!1:1"
		resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, headerRange).Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("read %s header: %w", t, err)
		}
		if len(resp.Values) > 0 && len(resp.Values[0]) > 0 {
			continue
		}

		header := make([]interface{}, len(Schema[t]))
		for i, h := range Schema[t] {
			header[i] = h
		}
		_, err = s.service.Spreadsheets.Values.Update(s.spreadsheetID, headerRange, &sheets.ValueRange{Values: [][]interface{}{header}}).
			ValueInputOption("RAW").Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("write %s header: %w", t, err)
		}
		s.logger.Infow("sheet header initialised", "sheet", t)
	}
	return nil
}

func (s *Sheets) Read(ctx context.Context, table string) ([]Row, error) {
	if _, ok := s.sheetIDs[table]; !ok {
		return nil, ErrUnknownTable
	}

	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, table).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", table, err)
	}
	if len(resp.Values) <= 1 {
		return nil, nil
	}

	rows := make([]Row, 0, len(resp.Values)-1)
	for _, values := range resp.Values[1:] {
		row := make(Row, len(values))
		for i, v := range values {
			row[i] = fmt.Sprint(v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *Sheets) Apply(ctx context.Context, ops []Op) error {
	if len(ops) == 0 {
		return nil
	}

	// sheet row of every key, header at 0; appended keys take the next free rows
	positions := make(map[string]map[string]int64)
	sizes := make(map[string]int64)
	load := func(table string) error {
		if _, ok := positions[table]; ok {
			return nil
		}
		rows, err := s.Read(ctx, table)
		if err != nil {
			return err
		}
		kc := KeyColumn(table)
		positions[table] = make(map[string]int64, len(rows))
		for i, r := range rows {
			positions[table][r.Get(kc)] = int64(i + 1)
		}
		sizes[table] = int64(len(rows) + 1)
		return nil
	}

	requests := make([]*sheets.Request, 0, len(ops))
	for _, op := range ops {
		sheetID, ok := s.sheetIDs[op.Table]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownTable, op.Table)
		}
		if err := load(op.Table); err != nil {
			return err
		}

		switch op.Kind {
		case OpAppend:
			positions[op.Table][op.Row.Get(KeyColumn(op.Table))] = sizes[op.Table]
			sizes[op.Table]++
			requests = append(requests, &sheets.Request{AppendCells: &sheets.AppendCellsRequest{
				SheetId:         sheetID,
				Rows:            []*sheets.RowData{rowData(op.Row...)},
				Fields:          "userEnteredValue",
				ForceSendFields: []string{"SheetId"},
			}})
		case OpUpdateCell:
			col, err := ColumnIndex(op.Table, op.Column)
			if err != nil {
				return err
			}
			row, ok := positions[op.Table][op.Key]
			if !ok {
				return fmt.Errorf("%w: %s/%s", ErrKeyNotFound, op.Table, op.Key)
			}
			requests = append(requests, &sheets.Request{UpdateCells: &sheets.UpdateCellsRequest{
				Start: &sheets.GridCoordinate{
					SheetId:         sheetID,
					RowIndex:        row,
					ColumnIndex:     int64(col),
					ForceSendFields: []string{"SheetId", "RowIndex", "ColumnIndex"},
				},
				Rows:   []*sheets.RowData{rowData(op.Value)},
				Fields: "userEnteredValue",
			}})
		default:
			return fmt.Errorf("tabular: unknown op %d", op.Kind)
		}
	}

	_, err := s.service.Spreadsheets.BatchUpdate(s.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{Requests: requests}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("apply %d ops: %w", len(ops), err)
	}
	return nil
}

func rowData(values ...string) *sheets.RowData {
	cells := make([]*sheets.CellData, len(values))
	for i := range values {
		v := values[i]
		cells[i] = &sheets.CellData{UserEnteredValue: &sheets.ExtendedValue{StringValue: &v}}
	}
	return &sheets.RowData{Values: cells}
}
