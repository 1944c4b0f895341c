package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"kilo/config"
	"kilo/editor"
	"kilo/logging"
	"kilo/screen"
	"kilo/terminal"
)

const usage = "Usage: kilo [file]\n"

var errTooManyArgs = errors.New("expected at most one file")

// parseArgs returns the file to edit, or "" for an empty buffer. done is set
// when a flag was handled and the editor should not start.
func parseArgs(args []string, w io.Writer) (filename string, done bool, err error) {
	if len(args) > 0 {
		switch args[0] {
		case "-h", "--help":
			fmt.Fprint(w, usage)
			return "", true, nil
		case "--version":
			fmt.Fprintf(w, "kilo %s\n", config.Version)
			return "", true, nil
		}
	}
	switch len(args) {
	case 0:
		return "", false, nil
	case 1:
		return args[0], false, nil
	}
	return "", false, errTooManyArgs
}

func run() int {
	filename, done, err := parseArgs(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kilo: %v\n%s", err, usage)
		return 1
	}
	if done {
		return 0
	}

	cfg, err := config.Load()
	logging.SetFile(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kilo: %v\n", err)
		logging.LogError("config", err)
	}

	session := terminal.NewSession(os.Stdin, os.Stdout)
	if err := session.EnterRawMode(); err != nil {
		session.Die("raw mode", err)
	}
	defer session.LeaveRawMode()
	if err := session.EnterAlternateScreen(); err != nil {
		session.Die("alternate screen", err)
	}

	rows, cols, err := session.WindowSize()
	if err != nil {
		session.Die("window size", err)
	}

	// Two rows at the bottom hold the status bar and the message line.
	scr := screen.New(os.Stdout, rows-2, cols)
	ed := editor.New(terminal.NewDecoder(session), scr, cfg)
	if filename != "" {
		if err := ed.Open(filename); err != nil {
			session.Die("open", err)
		}
	}
	if err := ed.Run(); err != nil {
		session.Die("read", err)
	}
	return 0
}

func main() {
	os.Exit(run())
}
