package common

import (
	"fmt"
	"log"
	"sync"
)

// Logger is a log utility to log to. It records informational and error
// messages so they can be reported back to the caller.
type Logger struct {
	mu      sync.Mutex
	Entries []*LogEntry
}

// Dbg prints an informational message
func (l *Logger) Dbg(format string, v ...interface{}) {
	log.Printf("%s\n", fmt.Sprintf(format, v...))
}

// Msg logs an informational message
func (l *Logger) Msg(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	log.Println(msg)
	l.add(&LogEntry{false, msg})
}

// Err logs an error message
func (l *Logger) Err(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	log.Printf("%s\n", fmt.Sprintf("Error: %s", msg))
	l.add(&LogEntry{true, msg})
}

// Fatal calls log.Fatalf
func (l *Logger) Fatal(format string, v ...interface{}) {
	log.Fatalf(format, v...)
}

// Errors returns the recorded error messages
func (l *Logger) Errors() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var msgs []string
	for _, entry := range l.Entries {
		if entry.IsError {
			msgs = append(msgs, entry.Msg)
		}
	}
	return msgs
}

func (l *Logger) add(entry *LogEntry) {
	l.mu.Lock()
	l.Entries = append(l.Entries, entry)
	l.mu.Unlock()
}

// NewLog creates a new logger
func NewLog() *Logger {
	return new(Logger)
}

// LogEntry contains the message and metadata
type LogEntry struct {
	IsError bool
	Msg     string
}
