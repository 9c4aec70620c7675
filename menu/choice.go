package menu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/cashbook"
)

// Choice is an action of the menu.
type Choice int

const (
	ChoiceUnknown Choice = iota
	ChoiceAdd
	ChoiceDelete
	ChoiceBalance
	ChoiceEdit
	ChoiceIncome
	ChoiceExpenses
	ChoiceSearch
	ChoiceAll
	ChoiceExit
)

// Choices lists the actions in menu order, their number is their position from 1.
var Choices = []Choice{
	ChoiceAdd, ChoiceDelete, ChoiceBalance, ChoiceEdit, ChoiceIncome,
	ChoiceExpenses, ChoiceSearch, ChoiceAll, ChoiceExit,
}

var choiceNames = map[Choice]string{
	ChoiceAdd:      "Add",
	ChoiceDelete:   "Delete",
	ChoiceBalance:  "Balance",
	ChoiceEdit:     "Edit",
	ChoiceIncome:   "Income",
	ChoiceExpenses: "Expenses",
	ChoiceSearch:   "Search",
	ChoiceAll:      "All",
	ChoiceExit:     "Exit",
}

var choiceHelp = map[Choice]string{
	ChoiceAdd:      "add a record",
	ChoiceDelete:   "delete a record",
	ChoiceBalance:  "show the current balance",
	ChoiceEdit:     "replace a record",
	ChoiceIncome:   "list all incomes",
	ChoiceExpenses: "list all expenses",
	ChoiceSearch:   "search records",
	ChoiceAll:      "list all records",
	ChoiceExit:     "quit",
}

// keywords accepted from older versions.
var legacyChoices = map[string]Choice{
	"добавить": ChoiceAdd,
	"удалить":  ChoiceDelete,
	"баланс":   ChoiceBalance,
	"изменить": ChoiceEdit,
	"доходы":   ChoiceIncome,
	"расходы":  ChoiceExpenses,
	"поиск":    ChoiceSearch,
	"все":      ChoiceAll,
	"выход":    ChoiceExit,
}

func (c Choice) String() string {
	if name, ok := choiceNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Choice(%d)", int(c))
}

// ParseChoice reads a choice from its number or its keyword, ignoring case.
func ParseChoice(s string) (Choice, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= len(Choices) {
			return Choices[n-1], nil
		}
		return ChoiceUnknown, fmt.Errorf("%w: no action number %d", cashbook.ErrInvalidInput, n)
	}
	lower := strings.ToLower(s)
	for _, c := range Choices {
		if strings.ToLower(choiceNames[c]) == lower {
			return c, nil
		}
	}
	if c, ok := legacyChoices[lower]; ok {
		return c, nil
	}
	return ChoiceUnknown, fmt.Errorf("%w: unknown action %q", cashbook.ErrInvalidInput, s)
}
