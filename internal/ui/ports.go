package ui

// Ports for the shell's external collaborators. The ledger engine never
// talks to these; the shell gathers input here and calls the core with the
// result, and the core re-validates regardless.
type (
	// Prompter provides the interactive dialogs the edit/delete/budget
	// flows depend on.
	Prompter interface {
		// Confirm asks a yes/no question.
		Confirm(message string) (bool, error)

		// PromptText asks for a line of text, offering a default.
		// ok is false when the user cancelled the prompt.
		PromptText(message, defaultValue string) (value string, ok bool, err error)

		// Alert shows a message that needs no answer.
		Alert(message string) error
	}

	// FileSaver receives an export to store outside the process.
	FileSaver interface {
		Save(name, contentType string, data []byte) error
	}
)
