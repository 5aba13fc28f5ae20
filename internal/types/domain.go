package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// Record is any domain entity with a unique integer identifier. Fields
// beyond the identifier vary per record kind and are opaque to the client
// layer.
type Record interface {
	RecordID() int
}

// dateLayout is the wire format for expense dates.
const dateLayout = "2006-01-02"

// Expense represents a single expense record
type Expense struct {
	ID          int
	Description string
	Amount      float64
	Date        time.Time
	ProjectID   int // zero when the expense is unassigned
}

// RecordID returns the expense's unique identifier.
func (e Expense) RecordID() int { return e.ID }

// expenseWire is the JSON shape the server speaks; dates travel as
// "YYYY-MM-DD" strings and are coerced on the way in and out.
type expenseWire struct {
	ID          int     `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	ProjectID   int     `json:"project,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (e Expense) MarshalJSON() ([]byte, error) {
	return json.Marshal(expenseWire{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date.Format(dateLayout),
		ProjectID:   e.ProjectID,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Expense) UnmarshalJSON(data []byte) error {
	var w expenseWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	var date time.Time
	if w.Date != "" {
		var err error
		date, err = time.Parse(dateLayout, w.Date)
		if err != nil {
			return fmt.Errorf("expense date %q: %w", w.Date, err)
		}
	}
	*e = Expense{
		ID:          w.ID,
		Description: w.Description,
		Amount:      w.Amount,
		Date:        date,
		ProjectID:   w.ProjectID,
	}
	return nil
}

// ParseExpense converts a raw JSON object into an Expense.
func ParseExpense(raw json.RawMessage) (Expense, error) {
	var e Expense
	if err := json.Unmarshal(raw, &e); err != nil {
		return Expense{}, err
	}
	return e, nil
}

// Project represents a project records can be grouped under
type Project struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// RecordID returns the project's unique identifier.
func (p Project) RecordID() int { return p.ID }

// ParseProject converts a raw JSON object into a Project.
func ParseProject(raw json.RawMessage) (Project, error) {
	var p Project
	if err := json.Unmarshal(raw, &p); err != nil {
		return Project{}, err
	}
	return p, nil
}
