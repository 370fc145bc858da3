package store

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/tallyhq/tally/internal/calc"
	"github.com/tallyhq/tally/internal/id"
	"github.com/tallyhq/tally/internal/model"
)

// Blob is the persistence boundary: a single serialized transaction list
// under a fixed key. Load returns (nil, nil) when nothing has been saved yet.
type Blob interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// Store owns the canonical transaction list. Every transaction it holds has
// passed validation; failed mutations leave the list untouched. The list is
// newest-first: Add prepends.
type Store struct {
	blob    Blob
	log     zerolog.Logger
	txs     []model.Transaction
	version uint64
	cache   calc.Cache
}

// Open reads the persisted list through blob and returns a ready Store.
// A missing, unreadable, or malformed blob degrades to an empty list with a
// logged diagnostic; Open never fails.
func Open(blob Blob, log zerolog.Logger) *Store {
	s := &Store{blob: blob, log: log}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := s.blob.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("reading transactions, starting empty")
		return
	}
	if len(data) == 0 {
		return
	}
	txs, err := decode(data)
	if err != nil {
		s.log.Warn().Err(err).Msg("decoding transactions, starting empty")
		return
	}
	s.txs = txs
}

// Add validates a candidate and prepends it as a new transaction. An empty
// category defaults to "Other" here and only here; Update does not default.
func (s *Store) Add(c model.Candidate) (model.Transaction, error) {
	if strings.TrimSpace(c.Category) == "" {
		c.Category = model.DefaultCategory
	}

	tx := model.Transaction{
		ID:          id.New(),
		Type:        c.Type,
		Amount:      c.Amount,
		Description: c.Description,
		Date:        c.Date,
		Category:    c.Category,
	}
	if err := Validate(tx); err != nil {
		return model.Transaction{}, err
	}

	s.txs = append([]model.Transaction{tx}, s.txs...)
	s.commit()
	return tx, nil
}

// Update replaces the stored transaction with matching ID by tx, validated as
// a complete record. An unknown ID is a no-op, not an error.
func (s *Store) Update(tx model.Transaction) (model.Transaction, error) {
	if err := Validate(tx); err != nil {
		return model.Transaction{}, err
	}

	for i := range s.txs {
		if s.txs[i].ID == tx.ID {
			s.txs[i] = tx
			s.commit()
			return tx, nil
		}
	}
	return tx, nil
}

// Delete removes the transaction with the given ID. An unknown ID is a
// no-op. Returns the resulting list.
func (s *Store) Delete(txID string) []model.Transaction {
	for i := range s.txs {
		if s.txs[i].ID == txID {
			s.txs = append(s.txs[:i], s.txs[i+1:]...)
			s.commit()
			break
		}
	}
	return s.Transactions()
}

// commit bumps the version and persists the full list. A write failure is
// logged and otherwise ignored: the in-memory mutation stands, the change
// just may not survive a restart.
func (s *Store) commit() {
	s.version++
	data, err := encode(s.txs)
	if err != nil {
		s.log.Error().Err(err).Msg("encoding transactions, change not persisted")
		return
	}
	if err := s.blob.Save(data); err != nil {
		s.log.Error().Err(err).Msg("saving transactions, change not persisted")
	}
}

// Get returns the transaction with the given ID, if present.
func (s *Store) Get(txID string) (model.Transaction, bool) {
	for _, tx := range s.txs {
		if tx.ID == txID {
			return tx, true
		}
	}
	return model.Transaction{}, false
}

// Transactions returns a copy of the list, newest first. Callers never see
// the store's internal slice.
func (s *Store) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	return len(s.txs)
}

// Version counts committed mutations since Open. It keys derived-view
// memoization: equal versions mean identical list content.
func (s *Store) Version() uint64 {
	return s.version
}

// Summary returns the derived views for the current list, recomputing only
// when the version has moved since the last call.
func (s *Store) Summary() calc.Summary {
	return s.cache.Summary(s.version, s.txs)
}
