package csvcodec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/mastodon-list-manager/internal/domain"
)

// Header is the export column order. It must stay stable across releases.
var Header = []string{"handle", "display_name", "profile_url", "local_url"}

// Column aliases accepted on import. "Account address", "Show boosts" and
// "Notify on new posts" come from Mastodon's own following export.
var (
	handleColumns = []string{"handle", "account address"}
	boostsColumns = []string{"show boosts"}
	notifyColumns = []string{"notify on new posts"}
)

var ErrMissingHandleColumn = errors.New("csv has no handle column")

type Writer struct {
	csv         *csv.Writer
	wroteHeader bool
	rows        int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader is idempotent; Write calls it on first use.
func (w *Writer) WriteHeader() error {
	if w.wroteHeader {
		return nil
	}
	if err := w.csv.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	w.wroteHeader = true
	return nil
}

func (w *Writer) Write(accounts ...domain.Account) error {
	if err := w.WriteHeader(); err != nil {
		return err
	}

	for _, account := range accounts {
		record := []string{
			account.Handle.String(),
			account.DisplayName,
			account.URL,
			account.LocalURL,
		}
		if err := w.csv.Write(record); err != nil {
			return fmt.Errorf("write csv row for %s: %w", account.Handle, err)
		}
		w.rows++
	}

	return nil
}

func (w *Writer) Flush() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// Rows is the number of account rows written, header excluded.
func (w *Writer) Rows() int {
	return w.rows
}

// Row is one imported record. The first data row of a well-formed file is
// line 2.
type Row = domain.ImportRow

func Read(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingHandleColumn
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := indexColumns(header)
	handleIdx := columns.find(handleColumns)
	if handleIdx < 0 {
		return nil, fmt.Errorf("%w (want one of %q)", ErrMissingHandleColumn, handleColumns)
	}
	boostsIdx := columns.find(boostsColumns)
	notifyIdx := columns.find(notifyColumns)

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		line, _ := reader.FieldPos(0)
		row := Row{
			Line:    line,
			Handle:  strings.TrimSpace(field(record, handleIdx)),
			Options: domain.DefaultFollowOptions(),
		}
		if strings.EqualFold(strings.TrimSpace(field(record, boostsIdx)), "false") {
			row.Options.Boosts = false
		}
		if strings.EqualFold(strings.TrimSpace(field(record, notifyIdx)), "true") {
			row.Options.Notify = true
		}
		if row.Handle == "" && isBlank(record) {
			continue
		}

		rows = append(rows, row)
	}

	return rows, nil
}

type columnIndex map[string]int

func indexColumns(header []string) columnIndex {
	index := make(columnIndex, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		key := strings.ToLower(strings.TrimSpace(name))
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}
	return index
}

func (c columnIndex) find(names []string) int {
	for _, name := range names {
		if i, ok := c[name]; ok {
			return i
		}
	}
	return -1
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}

func isBlank(record []string) bool {
	for _, value := range record {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
