// Package menu implements the interactive text menu over a cashbook store.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/date"
	"github.com/etnz/cashbook/logger"
	"github.com/etnz/cashbook/renderer"
	"go.uber.org/zap"
)

// Printer displays a markdown document.
type Printer func(w io.Writer, md string) error

// PlainPrinter writes the markdown as is.
func PlainPrinter(w io.Writer, md string) error {
	_, err := io.WriteString(w, md)
	return err
}

// Menu reads actions from the user and applies them to a store.
type Menu struct {
	w        io.Writer
	r        *bufio.Reader
	store    *cashbook.Store
	currency string
	Print    Printer
}

// New creates a menu reading from r and writing to w. Amounts are displayed in currency.
func New(w io.Writer, r io.Reader, store *cashbook.Store, currency string) *Menu {
	return &Menu{
		w:        w,
		r:        bufio.NewReader(r),
		store:    store,
		currency: currency,
		Print:    PlainPrinter,
	}
}

const prompt = "> "

// Run displays the menu and runs actions until Exit or the end of the input.
// A failing action is reported and the menu is displayed again.
func (m *Menu) Run() error {
	for {
		m.usage()
		line, err := m.ask("Choose an action by keyword or number")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		c, err := ParseChoice(line)
		if err != nil {
			fmt.Fprintf(m.w, "Unknown action %q.\n\n", line)
			continue
		}
		if c == ChoiceExit {
			fmt.Fprintln(m.w, "Bye.")
			return nil
		}
		err = m.Do(c)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			logger.Error("menu action failed", zap.Stringer("choice", c), zap.Error(err))
			fmt.Fprintf(m.w, "Error: %v\n", err)
		}
		fmt.Fprintln(m.w)
	}
}

func (m *Menu) usage() {
	fmt.Fprintln(m.w, "Actions:")
	for i, c := range Choices {
		fmt.Fprintf(m.w, "%d. %s - %s\n", i+1, c, choiceHelp[c])
	}
}

// Do runs a single action.
func (m *Menu) Do(c Choice) error {
	logger.Debug("menu action", zap.Stringer("choice", c))
	switch c {
	case ChoiceAdd:
		return m.add()
	case ChoiceDelete:
		return m.delete()
	case ChoiceBalance:
		return m.print(renderer.BalanceMarkdown(m.store.Ledger(), m.currency))
	case ChoiceEdit:
		return m.edit()
	case ChoiceIncome:
		return m.print(renderer.Records("Income", m.currency, m.store.Ledger().ByCategory(cashbook.Income)))
	case ChoiceExpenses:
		return m.print(renderer.Records("Expenses", m.currency, m.store.Ledger().ByCategory(cashbook.Expense)))
	case ChoiceSearch:
		return m.search()
	case ChoiceAll:
		return m.print(renderer.Records("All records", m.currency, m.store.Ledger().All()))
	case ChoiceExit:
		return nil
	default:
		return fmt.Errorf("%w: action %v", cashbook.ErrInvalidInput, c)
	}
}

func (m *Menu) print(md string) error { return m.Print(m.w, md) }

func (m *Menu) add() error {
	d, c, a, desc, err := m.askRecord("")
	if err != nil {
		return err
	}
	if _, err := m.store.Create(d, c, a, desc); err != nil {
		return err
	}
	fmt.Fprintln(m.w, "Record added.")
	return nil
}

func (m *Menu) delete() error {
	i, err := m.selectRecord("Position of the record to delete")
	if err != nil || i == 0 {
		return err
	}
	if _, err := m.store.Delete(i); err != nil {
		return err
	}
	fmt.Fprintln(m.w, "Record deleted.")
	return nil
}

func (m *Menu) edit() error {
	i, err := m.selectRecord("Position of the record to edit")
	if err != nil || i == 0 {
		return err
	}
	d, c, a, desc, err := m.askRecord("new ")
	if err != nil {
		return err
	}
	if _, err := m.store.Update(i, d, c, a, desc); err != nil {
		return err
	}
	fmt.Fprintln(m.w, "Record updated.")
	return nil
}

func (m *Menu) search() error {
	for i, p := range cashbook.Params {
		fmt.Fprintf(m.w, "%d. %s\n", i+1, p)
	}
	params, err := m.askParams()
	if err != nil {
		return err
	}
	criteria := make([]cashbook.Criterion, 0, len(params))
	for _, p := range params {
		v, err := m.ask(fmt.Sprintf("Value for %s", p))
		if err != nil {
			return err
		}
		criteria = append(criteria, cashbook.Criterion{Param: p, Value: v})
	}
	found := m.store.Ledger().Search(criteria...)
	return m.print(renderer.SearchResults(found, m.currency))
}

// selectRecord lists the records with their position and asks for one.
// It returns 0 when the ledger is empty.
func (m *Menu) selectRecord(label string) (int, error) {
	l := m.store.Ledger()
	if l.Len() == 0 {
		fmt.Fprintln(m.w, "No records.")
		return 0, nil
	}
	table := renderer.NewTable("Records", m.currency, l.All()).WithPositions()
	if err := m.print(renderer.RenderRecords(table)); err != nil {
		return 0, err
	}
	return m.askPosition(label, l.Len())
}

func (m *Menu) askRecord(qualifier string) (d string, c cashbook.Category, a cashbook.Money, desc string, err error) {
	if d, err = m.askDate(fmt.Sprintf("Enter the %sdate (0 for today)", qualifier)); err != nil {
		return
	}
	if c, err = m.askCategory(fmt.Sprintf("Enter the %scategory (Income / Expense)", qualifier)); err != nil {
		return
	}
	if a, err = m.askAmount(fmt.Sprintf("Enter the %samount", qualifier)); err != nil {
		return
	}
	desc, err = m.ask(fmt.Sprintf("Enter the %sdescription", qualifier))
	return
}

// ask prints label and reads a trimmed line. io.EOF is returned only when
// nothing was read.
func (m *Menu) ask(label string) (string, error) {
	fmt.Fprintf(m.w, "%s\n%s", label, prompt)
	line, err := m.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) askDate(label string) (string, error) {
	in, err := m.ask(label)
	if err != nil {
		return "", err
	}
	d := date.Resolve(in)
	if !date.Canonical(d) {
		fmt.Fprintf(m.w, "Note: %q is not a DD-MM-YYYY date, it is stored as typed.\n", d)
	}
	return d, nil
}

func (m *Menu) askCategory(label string) (cashbook.Category, error) {
	for {
		in, err := m.ask(label)
		if err != nil {
			return "", err
		}
		c, err := cashbook.ParseCategory(in)
		if err == nil {
			return c, nil
		}
		label = "Invalid category, enter Income or Expense"
	}
}

func (m *Menu) askAmount(label string) (cashbook.Money, error) {
	for {
		in, err := m.ask(label)
		if err != nil {
			return cashbook.Money{}, err
		}
		a, err := cashbook.ParseAmount(in)
		if err == nil {
			return a, nil
		}
		label = "Invalid amount, enter a non-negative number"
	}
}

func (m *Menu) askPosition(label string, n int) (int, error) {
	for {
		in, err := m.ask(label)
		if err != nil {
			return 0, err
		}
		i, err := strconv.Atoi(in)
		if err == nil && i >= 1 && i <= n {
			return i, nil
		}
		label = fmt.Sprintf("Invalid position, enter a number from 1 to %d", n)
	}
}

// askParams reads search parameters separated by spaces.
func (m *Menu) askParams() ([]cashbook.Param, error) {
	label := "Enter the parameters to search by, separated by spaces"
	for {
		in, err := m.ask(label)
		if err != nil {
			return nil, err
		}
		params, ok := parseParams(in)
		if ok {
			return params, nil
		}
		label = fmt.Sprintf("Invalid parameters, enter numbers from 1 to %d", len(cashbook.Params))
	}
}

func parseParams(in string) ([]cashbook.Param, bool) {
	fields := strings.Fields(in)
	if len(fields) == 0 {
		return nil, false
	}
	params := make([]cashbook.Param, 0, len(fields))
	for _, f := range fields {
		p, err := cashbook.ParseParam(f)
		if err != nil {
			return nil, false
		}
		params = append(params, p)
	}
	return params, true
}
