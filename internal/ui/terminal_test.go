package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTerminalConfirm(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false}, // default is no
		{"whatever\n", false},
	}
	for _, tc := range cases {
		var out bytes.Buffer
		term := NewTerminal(strings.NewReader(tc.input), &out)
		got, err := term.Confirm("Sure?")
		if err != nil {
			t.Fatalf("%q: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("%q: got %v, want %v", tc.input, got, tc.want)
		}
		if !strings.Contains(out.String(), "[y/N]") {
			t.Fatalf("prompt missing: %q", out.String())
		}
	}
}

func TestTerminalPromptText(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		def    string
		want   string
		wantOK bool
	}{
		{"plain value", "hello\n", "", "hello", true},
		{"empty keeps default", "\n", "12.50", "12.50", true},
		{"dot cancels", ".\n", "12.50", "", false},
		{"value overrides default", "20\n", "12.50", "20", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			term := NewTerminal(strings.NewReader(tc.input), &out)
			got, ok, err := term.PromptText("Amount:", tc.def)
			if err != nil {
				t.Fatal(err)
			}
			if ok != tc.wantOK || got != tc.want {
				t.Fatalf("got (%q, %v), want (%q, %v)", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestTerminalEOF(t *testing.T) {
	term := NewTerminal(strings.NewReader(""), &bytes.Buffer{})
	if _, err := term.ReadCommand("> "); err == nil {
		t.Fatalf("expected error at end of input")
	}
}

func TestDiskSaver(t *testing.T) {
	dir := t.TempDir()
	saver := DiskSaver{Dir: dir}
	if err := saver.Save("expenses.csv", "text/csv", []byte("data")); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "expenses.csv"))
	if err != nil || string(b) != "data" {
		t.Fatalf("read back: %q %v", b, err)
	}
}
