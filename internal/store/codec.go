package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tallyhq/tally/internal/model"
)

const dateFormat = "2006-01-02"

// record is the persisted shape of a transaction: a flat JSON object with
// the date as a plain calendar day.
type record struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
}

// encode serializes the full list as a JSON array, list order preserved.
func encode(txs []model.Transaction) ([]byte, error) {
	recs := make([]record, len(txs))
	for i, tx := range txs {
		recs[i] = record{
			ID:          tx.ID,
			Type:        string(tx.Type),
			Amount:      tx.Amount,
			Description: tx.Description,
			Date:        tx.Date.Format(dateFormat),
			Category:    tx.Category,
		}
	}
	data, err := json.Marshal(recs)
	if err != nil {
		return nil, fmt.Errorf("marshaling transactions: %w", err)
	}
	return data, nil
}

// decode parses a persisted blob back into transactions. Any malformed row
// fails the whole blob; the caller falls back to an empty list.
func decode(data []byte) ([]model.Transaction, error) {
	var recs []record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("unmarshaling transactions: %w", err)
	}

	txs := make([]model.Transaction, len(recs))
	for i, rec := range recs {
		date, err := time.Parse(dateFormat, rec.Date)
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", i, rec.Date, err)
		}
		txs[i] = model.Transaction{
			ID:          rec.ID,
			Type:        model.Type(rec.Type),
			Amount:      rec.Amount,
			Description: rec.Description,
			Date:        date,
			Category:    rec.Category,
		}
	}
	return txs, nil
}
