package renderer

import "github.com/etnz/cashbook"

// Balance holds the formatted figures of a ledger.
type Balance struct {
	Balance string
	Income  string
	Expense string
	Count   int
}

// NewBalance computes the balance and totals of l, formatted in currency.
func NewBalance(l *cashbook.Ledger, currency string) *Balance {
	income, expense := l.Totals()
	return &Balance{
		Balance: l.Balance().Format(currency),
		Income:  income.Format(currency),
		Expense: expense.Format(currency),
		Count:   l.Len(),
	}
}

// BalanceMarkdown renders the balance of l.
func BalanceMarkdown(l *cashbook.Ledger, currency string) string {
	return RenderBalance(NewBalance(l, currency))
}
