// Package models defines the data objects shared across lazyscratch packages.
package models

import "time"

// Severity classifies a notification.
type Severity string

// Notification severities.
const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// DefaultNotificationDuration is how long a notification stays on screen
// unless configured otherwise.
const DefaultNotificationDuration = 3 * time.Second

// Notification is a transient message reporting the outcome of an action.
type Notification struct {
	ID          string
	Title       string
	Description string
	Severity    Severity
	Duration    time.Duration
	Closable    bool
}

// IsError reports whether the notification signals a failed action.
func (n Notification) IsError() bool {
	return n.Severity == SeverityError
}

// Selection identifies the file loaded in the edit buffer.
type Selection struct {
	Folder string
	File   string
}

// Path returns the slash-joined selection, or "" when nothing is selected.
func (s Selection) Path() string {
	if s.File == "" {
		return ""
	}
	if s.Folder == "" {
		return s.File
	}
	return s.Folder + "/" + s.File
}

// IsZero reports whether nothing is selected.
func (s Selection) IsZero() bool {
	return s.File == ""
}
