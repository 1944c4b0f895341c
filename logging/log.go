package logging

import (
	"fmt"
	"os"
	"sync"
	"time"
)

type LogEntry struct {
	Timestamp   time.Time
	Type        string
	Message     string
	ErrorDetail string
}

var (
	logFile string
	logMu   sync.Mutex
)

// SetFile sets the log destination. An empty path disables logging.
func SetFile(path string) {
	logMu.Lock()
	defer logMu.Unlock()
	logFile = path
}

// LogEvent records an editor event such as OPEN, SAVE or QUIT
func LogEvent(kind, message string) error {
	entry := LogEntry{
		Timestamp: time.Now(),
		Type:      kind,
		Message:   message,
	}
	return saveLog(entry)
}

// LogError logs an error with proper formatting
func LogError(context string, err error) error {
	if err == nil {
		return nil
	}

	entry := LogEntry{
		Timestamp:   time.Now(),
		Type:        "ERROR",
		Message:     context,
		ErrorDetail: err.Error(),
	}
	return saveLog(entry)
}

// LogAlert logs an alert with proper formatting
func LogAlert(alert string) error {
	if alert == "" {
		return nil
	}

	entry := LogEntry{
		Timestamp: time.Now(),
		Type:      "ALERT",
		Message:   alert,
	}
	return saveLog(entry)
}

// Save log entry to file
func saveLog(entry LogEntry) error {
	logMu.Lock()
	defer logMu.Unlock()
	if logFile == "" {
		return nil
	}

	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(formatEntry(entry)); err != nil {
		return fmt.Errorf("failed to write to log file: %w", err)
	}
	return nil
}

func formatEntry(entry LogEntry) string {
	switch entry.Type {
	case "ERROR":
		return fmt.Sprintf("[%s] %s: %s Error: %s\n",
			entry.Timestamp.Format(time.RFC3339),
			entry.Type,
			entry.Message,
			entry.ErrorDetail)
	default:
		return fmt.Sprintf("[%s] %s: %s\n",
			entry.Timestamp.Format(time.RFC3339),
			entry.Type,
			entry.Message)
	}
}
