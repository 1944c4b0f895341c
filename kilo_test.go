package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"kilo/config"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		filename string
		done     bool
		err      error
		output   string
	}{
		{name: "no args"},
		{name: "one file", args: []string{"notes.txt"}, filename: "notes.txt"},
		{name: "too many", args: []string{"a", "b"}, err: errTooManyArgs},
		{name: "help", args: []string{"--help"}, done: true, output: usage},
		{name: "short help", args: []string{"-h", "ignored"}, done: true, output: usage},
		{name: "version", args: []string{"--version"}, done: true, output: "kilo " + config.Version + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			filename, done, err := parseArgs(tt.args, &out)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected error %v, got %v", tt.err, err)
			}
			if filename != tt.filename || done != tt.done {
				t.Errorf("got (%q, %v), want (%q, %v)", filename, done, tt.filename, tt.done)
			}
			if out.String() != tt.output {
				t.Errorf("unexpected output %q", out.String())
			}
		})
	}
}

func TestUsageNamesFileArgument(t *testing.T) {
	if !strings.Contains(usage, "[file]") {
		t.Errorf("usage %q does not mention the file argument", usage)
	}
}
