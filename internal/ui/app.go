// Package ui is the interactive shell around the ledger engine: it gathers
// input through the Prompter collaborator, calls the core operations, and
// renders the derived views. The visual layer stops here; everything below
// it is plain data.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"outlay/internal/core"
	"outlay/internal/export"
	"outlay/internal/ledger"
	"outlay/internal/log"
	"outlay/internal/report"
	"outlay/internal/view"
)

var errQuit = errors.New("quit")

// App drives one interactive session over a single ledger store.
type App struct {
	store  *ledger.Store
	view   view.State
	term   *Terminal
	saver  FileSaver
	out    io.Writer
	logger *log.Logger
	clock  func() time.Time
}

func New(store *ledger.Store, term *Terminal, saver FileSaver, out io.Writer, logger *log.Logger) *App {
	return &App{
		store:  store,
		view:   view.NewState(time.Now()),
		term:   term,
		saver:  saver,
		out:    out,
		logger: logger.WithComponent(log.ComponentUI),
		clock:  time.Now,
	}
}

// Run processes commands until quit, end of input, or context cancellation.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "outlay — personal expense ledger (type 'help' for commands)")
	a.refresh()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := a.term.ReadCommand("outlay> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read command: %w", err)
		}
		if err := a.dispatch(ctx, line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
	}
}

func (a *App) dispatch(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "quit", "exit":
		return errQuit
	case "help":
		a.printHelp()
	case "list":
		a.refresh()
	case "add":
		return a.addCmd(ctx, args)
	case "select":
		return a.selectCmd(args)
	case "edit":
		return a.editCmd(ctx)
	case "del", "delete":
		return a.deleteCmd(ctx)
	case "clear":
		return a.clearCmd(ctx)
	case "budget":
		return a.budgetCmd(ctx)
	case "search":
		a.view.Search = strings.Join(args, " ")
		a.refresh()
	case "cat":
		return a.categoryCmd(args)
	case "next":
		a.view.NextMonth()
		a.refresh()
	case "prev":
		a.view.PrevMonth()
		a.refresh()
	case "today":
		a.view.GoToToday(a.clock())
		a.refresh()
	case "summary":
		renderSummary(a.out, a.summary())
	case "stats":
		renderAnalytics(a.out, report.Analyze(a.store.Records()))
	case "report":
		renderCategoryReport(a.out, report.CategoryReport(a.store.Records()))
	case "export":
		return a.exportCmd()
	default:
		fmt.Fprintf(a.out, "unknown command %q, type 'help'\n", cmd)
	}
	return nil
}

// addCmd accepts "add <amount> <category> [description...]" or, with no
// arguments, prompts for each field.
func (a *App) addCmd(ctx context.Context, args []string) error {
	var amountText, category, description string

	if len(args) >= 2 {
		amountText, category = args[0], args[1]
		description = strings.Join(args[2:], " ")
	} else {
		var ok bool
		var err error
		amountText, ok, err = a.term.PromptText("Amount:", "")
		if err != nil || !ok {
			return err
		}
		category, ok, err = a.term.PromptText(fmt.Sprintf("Category (%s):", strings.Join(a.store.Categories().Names(), ", ")), "")
		if err != nil || !ok {
			return err
		}
		description, ok, err = a.term.PromptText("Description:", "")
		if err != nil || !ok {
			return err
		}
	}

	cents, err := core.ParseDecimalToCents(amountText)
	if err != nil {
		return a.term.Alert("Please enter a valid amount")
	}

	if _, err := a.store.Add(ctx, core.Money{Cents: cents}, category, description); err != nil {
		return a.reportOpError(err)
	}
	a.refresh()
	return nil
}

func (a *App) selectCmd(args []string) error {
	if len(args) != 1 {
		return a.term.Alert("Usage: select <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return a.term.Alert("Usage: select <id>")
	}
	if a.findRecord(id) == nil {
		return a.term.Alert("No expense with that id")
	}
	a.view.Select(id)
	a.refresh()
	return nil
}

func (a *App) editCmd(ctx context.Context) error {
	if !a.view.HasSelection() {
		return a.term.Alert("Please select an expense to edit")
	}
	selected := a.findRecord(a.view.SelectedID)
	if selected == nil {
		a.view.ClearSelection()
		return a.term.Alert("That expense no longer exists")
	}

	amountText, ok, err := a.term.PromptText("Enter new amount:", selected.Amount.Decimal())
	if err != nil || !ok {
		return err
	}
	cents, err := core.ParseDecimalToCents(amountText)
	if err != nil {
		return a.term.Alert("Please enter a valid amount")
	}

	description, ok, err := a.term.PromptText("Enter new description:", selected.Description)
	if err != nil || !ok {
		return err
	}

	if err := a.store.Update(ctx, selected.ID, core.Money{Cents: cents}, description); err != nil {
		return a.reportOpError(err)
	}
	a.refresh()
	return nil
}

func (a *App) deleteCmd(ctx context.Context) error {
	if !a.view.HasSelection() {
		return a.term.Alert("Please select an expense to delete")
	}

	ok, err := a.term.Confirm("Delete this expense?")
	if err != nil || !ok {
		return err
	}

	if err := a.store.Remove(ctx, a.view.SelectedID); err != nil {
		return a.reportOpError(err)
	}
	a.view.ClearSelection()
	a.refresh()
	return nil
}

func (a *App) clearCmd(ctx context.Context) error {
	n := a.store.Len()
	if n == 0 {
		return nil
	}

	ok, err := a.term.Confirm(fmt.Sprintf("Delete all %d expenses? This cannot be undone.", n))
	if err != nil || !ok {
		return err
	}

	if err := a.store.Clear(ctx); err != nil {
		return a.reportOpError(err)
	}
	a.view.ClearSelection()
	a.refresh()
	return nil
}

func (a *App) budgetCmd(ctx context.Context) error {
	current := ""
	if a.store.Budget().Cents > 0 {
		current = a.store.Budget().Decimal()
	}

	text, ok, err := a.term.PromptText("Enter monthly budget:", current)
	if err != nil || !ok {
		return err
	}
	cents, err := core.ParseBudgetToCents(text)
	if err != nil {
		return a.term.Alert("Please enter a valid budget amount")
	}

	if err := a.store.SetBudget(ctx, core.Money{Cents: cents}); err != nil {
		return a.reportOpError(err)
	}
	renderSummary(a.out, a.summary())
	return nil
}

// exportCmd serializes the whole ledger, regardless of view filters.
// Refusing the empty ledger is this layer's policy; the exporter itself
// would happily produce a header-only file.
func (a *App) exportCmd() error {
	records := a.store.Records()
	if len(records) == 0 {
		return a.term.Alert("No expenses to export")
	}

	data := export.CSV(records)
	if err := a.saver.Save(export.FileName, export.ContentType, []byte(data)); err != nil {
		a.logger.Error("Export failed", log.FieldOperation, log.OpExport, log.FieldError, err)
		return a.term.Alert("Export failed: " + err.Error())
	}

	a.logger.Info("Ledger exported", log.FieldOperation, log.OpExport, log.FieldCount, len(records))
	fmt.Fprintf(a.out, "Exported %d expenses to %s\n", len(records), export.FileName)
	return nil
}

func (a *App) categoryCmd(args []string) error {
	if len(args) == 0 || strings.EqualFold(args[0], "all") {
		a.view.Category = view.AllCategories
		a.refresh()
		return nil
	}
	name := strings.Join(args, " ")
	if !a.store.Categories().Contains(name) {
		return a.term.Alert("Unknown category: " + name)
	}
	a.view.Category = name
	a.refresh()
	return nil
}

func (a *App) refresh() {
	fmt.Fprintf(a.out, "\n%s", a.view.MonthLabel())
	if a.view.Search != "" {
		fmt.Fprintf(a.out, "  search=%q", a.view.Search)
	}
	if a.view.Category != view.AllCategories {
		fmt.Fprintf(a.out, "  category=%s", a.view.Category)
	}
	fmt.Fprintln(a.out)

	renderTable(a.out, a.narrowed(), a.view.SelectedID)
	renderSummary(a.out, a.summary())
}

func (a *App) narrowed() []core.Expense {
	return a.view.Apply(a.store.Records())
}

func (a *App) summary() report.Summary {
	return report.Summarize(a.narrowed(), a.store.Budget(), a.clock())
}

func (a *App) findRecord(id int64) *core.Expense {
	for _, e := range a.store.Records() {
		if e.ID == id {
			return &e
		}
	}
	return nil
}

// reportOpError surfaces recoverable failures as alerts and passes
// everything else up.
func (a *App) reportOpError(err error) error {
	switch {
	case errors.Is(err, core.ErrNotFound):
		a.view.ClearSelection()
		return a.term.Alert("That expense no longer exists")
	case errors.Is(err, core.ErrValidation):
		return a.term.Alert(err.Error())
	case errors.Is(err, core.ErrPersistence):
		a.logger.Error("Persistence failure", log.FieldError, err)
		return a.term.Alert("Saved in memory only; writing to storage failed")
	default:
		return err
	}
}

func (a *App) printHelp() {
	fmt.Fprint(a.out, `commands:
  add [amount category description...]  record an expense
  select <id>                           select a row
  edit | del                            edit or delete the selected expense
  clear                                 delete all expenses
  budget                                set the monthly budget
  search [text] | cat [name|all]        filter the month view
  next | prev | today                   change the viewed month
  list | summary | stats | report       show views
  export                                write expenses.csv
  quit
`)
}
