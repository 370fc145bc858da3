package store

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/model"
)

// memBlob is an in-memory persistence boundary with injectable failures.
type memBlob struct {
	data    []byte
	loadErr error
	saveErr error
	saves   int
}

func (b *memBlob) Load() ([]byte, error) {
	if b.loadErr != nil {
		return nil, b.loadErr
	}
	return b.data, nil
}

func (b *memBlob) Save(data []byte) error {
	b.saves++
	if b.saveErr != nil {
		return b.saveErr
	}
	b.data = data
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func salary() model.Candidate {
	return model.Candidate{
		Type:        model.TypeIncome,
		Amount:      100,
		Description: "Salary",
		Date:        date(2023, 1, 1),
		Category:    "Salary",
	}
}

func groceries() model.Candidate {
	return model.Candidate{
		Type:        model.TypeExpense,
		Amount:      50,
		Description: "Groceries",
		Date:        date(2023, 1, 2),
		Category:    "Food",
	}
}

func newStore(blob Blob) *Store {
	return Open(blob, zerolog.Nop())
}

func TestOpen_NothingPersisted(t *testing.T) {
	s := newStore(&memBlob{})
	assert.Equal(t, 0, s.Len())
}

func TestOpen_MalformedBlob(t *testing.T) {
	s := newStore(&memBlob{data: []byte("{not json")})
	assert.Equal(t, 0, s.Len(), "malformed blob degrades to empty list")
}

func TestOpen_LoadFailure(t *testing.T) {
	s := newStore(&memBlob{loadErr: errors.New("boundary unavailable")})
	assert.Equal(t, 0, s.Len())
}

func TestAdd_PrependsNewestFirst(t *testing.T) {
	s := newStore(&memBlob{})

	first, err := s.Add(salary())
	require.NoError(t, err)
	second, err := s.Add(groceries())
	require.NoError(t, err)

	txs := s.Transactions()
	require.Len(t, txs, 2)
	assert.Equal(t, second.ID, txs[0].ID)
	assert.Equal(t, first.ID, txs[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAdd_DefaultsCategory(t *testing.T) {
	s := newStore(&memBlob{})

	c := groceries()
	c.Category = ""
	tx, err := s.Add(c)
	require.NoError(t, err)
	assert.Equal(t, "Other", tx.Category)

	c.Category = "   "
	tx, err = s.Add(c)
	require.NoError(t, err)
	assert.Equal(t, "Other", tx.Category)
}

func TestAdd_RejectsNonPositiveAmount(t *testing.T) {
	s := newStore(&memBlob{})

	c := salary()
	c.Amount = -100
	_, err := s.Add(c)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"amount"}, verr.FieldNames())
	assert.Equal(t, 0, s.Len(), "rejected add leaves the list unchanged")
}

func TestAdd_ReportsAllOffendingFields(t *testing.T) {
	s := newStore(&memBlob{})

	_, err := s.Add(model.Candidate{Type: "transfer", Description: "  "})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.FieldNames(), "type")
	assert.Contains(t, verr.FieldNames(), "amount")
	assert.Contains(t, verr.FieldNames(), "description")
	assert.Contains(t, verr.FieldNames(), "date")
	assert.Equal(t, 0, s.Len())
}

func TestAdd_Persists(t *testing.T) {
	blob := &memBlob{}
	s := newStore(blob)

	_, err := s.Add(salary())
	require.NoError(t, err)
	assert.Equal(t, 1, blob.saves)

	// A fresh store over the same blob sees the transaction.
	reopened := newStore(blob)
	require.Equal(t, 1, reopened.Len())
	got := reopened.Transactions()[0]
	assert.Equal(t, model.TypeIncome, got.Type)
	assert.Equal(t, 100.0, got.Amount)
	assert.Equal(t, "Salary", got.Description)
	assert.Equal(t, date(2023, 1, 1), got.Date)
	assert.Equal(t, "Salary", got.Category)
}

func TestAdd_SaveFailureKeepsMutation(t *testing.T) {
	blob := &memBlob{saveErr: errors.New("disk full")}
	s := newStore(blob)

	tx, err := s.Add(salary())
	require.NoError(t, err, "write failure must not surface or roll back")
	assert.Equal(t, 1, s.Len())
	_, ok := s.Get(tx.ID)
	assert.True(t, ok)
}

func TestUpdate_ReplacesMatchingID(t *testing.T) {
	s := newStore(&memBlob{})
	tx, err := s.Add(salary())
	require.NoError(t, err)

	updated, err := s.Update(model.Transaction{
		ID:          tx.ID,
		Type:        model.TypeExpense,
		Amount:      150,
		Description: "Updated",
		Date:        date(2023, 1, 1),
		Category:    "Shopping",
	})
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	got, ok := s.Get(tx.ID)
	require.True(t, ok)
	assert.Equal(t, updated, got)
	assert.Equal(t, 150.0, got.Amount)
	assert.Equal(t, model.TypeExpense, got.Type)
}

func TestUpdate_MissingCategoryRejected(t *testing.T) {
	s := newStore(&memBlob{})
	tx, err := s.Add(salary())
	require.NoError(t, err)

	// Unlike Add, Update never defaults the category.
	_, err = s.Update(model.Transaction{
		ID:          tx.ID,
		Type:        model.TypeIncome,
		Amount:      100,
		Description: "Salary",
		Date:        date(2023, 1, 1),
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"category"}, verr.FieldNames())

	got, _ := s.Get(tx.ID)
	assert.Equal(t, "Salary", got.Category, "rejected update leaves the record unchanged")
}

func TestUpdate_UnknownIDIsNoOp(t *testing.T) {
	s := newStore(&memBlob{})
	_, err := s.Add(salary())
	require.NoError(t, err)

	_, err = s.Update(model.Transaction{
		ID:          "missing",
		Type:        model.TypeExpense,
		Amount:      5,
		Description: "Ghost",
		Date:        date(2023, 1, 3),
		Category:    "Food",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
	_, ok := s.Get("missing")
	assert.False(t, ok)
}

func TestDelete_RemovesMatchingID(t *testing.T) {
	s := newStore(&memBlob{})
	first, err := s.Add(salary())
	require.NoError(t, err)
	second, err := s.Add(groceries())
	require.NoError(t, err)

	remaining := s.Delete(first.ID)
	require.Len(t, remaining, 1)
	assert.Equal(t, second.ID, remaining[0].ID)
}

func TestDelete_UnknownIDIsNoOp(t *testing.T) {
	s := newStore(&memBlob{})
	_, err := s.Add(salary())
	require.NoError(t, err)

	remaining := s.Delete("missing")
	assert.Len(t, remaining, 1)
}

func TestVersion_TracksCommittedMutations(t *testing.T) {
	s := newStore(&memBlob{})
	assert.Equal(t, uint64(0), s.Version())

	tx, err := s.Add(salary())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), s.Version())

	c := salary()
	c.Amount = -1
	_, err = s.Add(c)
	require.Error(t, err)
	assert.Equal(t, uint64(1), s.Version(), "rejected mutations do not move the version")

	s.Delete("missing")
	assert.Equal(t, uint64(1), s.Version(), "no-op delete does not move the version")

	s.Delete(tx.ID)
	assert.Equal(t, uint64(2), s.Version())
}

func TestSummary_ReflectsMutationsImmediately(t *testing.T) {
	s := newStore(&memBlob{})

	_, err := s.Add(salary())
	require.NoError(t, err)
	_, err = s.Add(groceries())
	require.NoError(t, err)

	sum := s.Summary()
	assert.Equal(t, 100.0, sum.TotalIncome)
	assert.Equal(t, 50.0, sum.TotalExpense)
	assert.Equal(t, 50.0, sum.Balance)

	s.Delete(s.Transactions()[0].ID) // drop the groceries expense
	sum = s.Summary()
	assert.Equal(t, 100.0, sum.Balance, "summary reflects the delete with no staleness window")
}

func TestTransactions_ReturnsCopy(t *testing.T) {
	s := newStore(&memBlob{})
	_, err := s.Add(salary())
	require.NoError(t, err)

	txs := s.Transactions()
	txs[0].Amount = 9999

	got := s.Transactions()
	assert.Equal(t, 100.0, got[0].Amount, "callers must not reach the internal list")
}
