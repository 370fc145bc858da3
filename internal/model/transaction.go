package model

import "time"

// Type classifies a transaction as money in or money out.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Valid reports whether t is one of the two known transaction types.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// DefaultCategory is assigned when a new transaction arrives without one.
const DefaultCategory = "Other"

// Transaction is the sole persistent entity: one income or expense record.
// Amount is in currency-agnostic units; Date carries day granularity only.
type Transaction struct {
	ID          string
	Type        Type
	Amount      float64
	Description string
	Date        time.Time
	Category    string
}

// Candidate carries everything a caller supplies when creating a
// transaction. The store assigns the ID and defaults the category.
type Candidate struct {
	Type        Type
	Amount      float64
	Description string
	Date        time.Time
	Category    string
}
