package trackline

import (
	"encoding/json"

	"github.com/trackline/trackline-go/internal/types"
)

// expenseDescriptor binds the expense collection to its wire format.
type expenseDescriptor struct{}

func (expenseDescriptor) Endpoint() string { return "/expenses/" }

func (expenseDescriptor) Parse(raw json.RawMessage) (Expense, error) {
	return types.ParseExpense(raw)
}
