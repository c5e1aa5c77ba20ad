package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldExpenseID   = "expense_id"
	FieldAmountCents = "amount_cents"
	FieldCategory    = "category"
	FieldYear        = "year"
	FieldMonth       = "month"
	FieldBackend     = "backend"
	FieldStateKey    = "state_key"
	FieldCount       = "count"
	FieldBudgetCents = "budget_cents"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentLedger  = "ledger"
	ComponentStorage = "storage"
	ComponentBackend = "backend"
	ComponentExport  = "export"
	ComponentUI      = "ui"
)

// Operations defines standard operation names
const (
	OpAdd       = "add"
	OpUpdate    = "update"
	OpRemove    = "remove"
	OpClear     = "clear"
	OpSetBudget = "set_budget"
	OpLoad      = "load"
	OpPersist   = "persist"
	OpExport    = "export"
	OpStartup   = "startup"
	OpShutdown  = "shutdown"
)
