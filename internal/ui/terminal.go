package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// cancelToken is the input that cancels a text prompt, since a terminal
// has no cancel button.
const cancelToken = "."

// Terminal implements Prompter over a line-based reader and writer. The
// command loop shares the same reader, so scripted input drives prompts
// and commands alike.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// ReadCommand shows the prompt and reads one command line.
func (t *Terminal) ReadCommand(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	return t.readLine()
}

func (t *Terminal) Confirm(message string) (bool, error) {
	fmt.Fprintf(t.out, "%s [y/N] ", message)
	line, err := t.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (t *Terminal) PromptText(message, defaultValue string) (string, bool, error) {
	if defaultValue != "" {
		fmt.Fprintf(t.out, "%s [%s] (enter keeps current, %q cancels): ", message, defaultValue, cancelToken)
	} else {
		fmt.Fprintf(t.out, "%s (%q cancels): ", message, cancelToken)
	}
	line, err := t.readLine()
	if err != nil {
		return "", false, err
	}
	if line == cancelToken {
		return "", false, nil
	}
	if line == "" {
		return defaultValue, true, nil
	}
	return line, true, nil
}

func (t *Terminal) Alert(message string) error {
	_, err := fmt.Fprintf(t.out, "! %s\n", message)
	return err
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// DiskSaver implements FileSaver on the local filesystem. The content type
// is irrelevant for plain files.
type DiskSaver struct {
	Dir string
}

func (s DiskSaver) Save(name, _ string, data []byte) error {
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}
