// Package export serializes transaction lists for the user-facing export
// surface. It consumes already-validated transactions; it performs no
// validation of its own.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tallyhq/tally/internal/model"
)

const dateFormat = "2006-01-02"

// Header is the CSV header row, fields quoted like the data rows.
const Header = `"ID","Type","Amount","Description","Date","Category"`

// CSV renders the list as quoted comma-joined rows under Header, in list
// order. Missing fields render as an empty quoted string. An empty list
// produces an empty string, not a lone header row.
func CSV(txs []model.Transaction) string {
	if len(txs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(Header)
	for _, tx := range txs {
		b.WriteByte('\n')
		b.WriteString(row(tx))
	}
	return b.String()
}

func row(tx model.Transaction) string {
	fields := []string{
		tx.ID,
		string(tx.Type),
		formatAmount(tx.Amount),
		tx.Description,
		formatDate(tx.Date),
		tx.Category,
	}
	for i, f := range fields {
		fields[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(fields, ",")
}

func formatAmount(a float64) string {
	if a == 0 {
		return ""
	}
	return strconv.FormatFloat(a, 'f', -1, 64)
}

func formatDate(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateFormat)
}

// jsonRecord fixes the exported field order and the plain calendar date.
type jsonRecord struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
}

// JSON renders the list with 2-space indentation. An empty list is the
// literal "[]".
func JSON(txs []model.Transaction) (string, error) {
	recs := make([]jsonRecord, len(txs))
	for i, tx := range txs {
		recs[i] = jsonRecord{
			ID:          tx.ID,
			Type:        string(tx.Type),
			Amount:      tx.Amount,
			Description: tx.Description,
			Date:        formatDate(tx.Date),
			Category:    tx.Category,
		}
	}
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling transactions: %w", err)
	}
	return string(data), nil
}

const numFields = 6

const (
	colID = iota
	colType
	colAmount
	colDesc
	colDate
	colCategory
)

// ParseCSV reads the CSV format back. Rows come out in file order; callers
// replay them through the store, which re-validates each one. Empty input
// yields an empty list.
func ParseCSV(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txs []model.Transaction
	for i, rec := range records[1:] {
		tx, err := unmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func unmarshalRow(rec []string) (model.Transaction, error) {
	var amount float64
	if rec[colAmount] != "" {
		var err error
		amount, err = strconv.ParseFloat(rec[colAmount], 64)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec[colAmount], err)
		}
	}

	var date time.Time
	if rec[colDate] != "" {
		var err error
		date, err = time.Parse(dateFormat, rec[colDate])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec[colDate], err)
		}
	}

	return model.Transaction{
		ID:          rec[colID],
		Type:        model.Type(rec[colType]),
		Amount:      amount,
		Description: rec[colDesc],
		Date:        date,
		Category:    rec[colCategory],
	}, nil
}
