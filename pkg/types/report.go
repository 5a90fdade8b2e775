package types

import (
	"encoding/json"
	"fmt"
)

// ReportLevel is the severity of a report line
type ReportLevel string

const (
	// LevelInfo marks something that was created
	LevelInfo ReportLevel = "info"
	// LevelComment marks a benign skip
	LevelComment ReportLevel = "comment"
	// LevelError marks a skip or failure the user must act on
	LevelError ReportLevel = "error"
)

// ReportAction describes what was attempted
type ReportAction string

const (
	ActionMkdir ReportAction = "mkdir"
	ActionWrite ReportAction = "write"
	ActionSkip  ReportAction = "skip"
	ActionAbort ReportAction = "abort"
)

// ReportLine is one outcome of a directory or file operation
type ReportLine struct {
	Level   ReportLevel  `json:"level"`
	Action  ReportAction `json:"action"`
	Path    string       `json:"path,omitempty"`
	Message string       `json:"message"`
}

// String returns the human readable message
func (l ReportLine) String() string {
	return l.Message
}

// Report is the ordered, append-only account of one generation
type Report struct {
	lines []ReportLine
}

// NewReport creates an empty report
func NewReport() *Report {
	return &Report{}
}

// Add appends a line
func (r *Report) Add(line ReportLine) {
	r.lines = append(r.lines, line)
}

// MadeDirectory records a newly created directory
func (r *Report) MadeDirectory(path string) {
	r.Add(ReportLine{
		Level:   LevelInfo,
		Action:  ActionMkdir,
		Path:    path,
		Message: fmt.Sprintf("Make directory %s", path),
	})
}

// Wrote records a newly written file
func (r *Report) Wrote(path string) {
	r.Add(ReportLine{
		Level:   LevelInfo,
		Action:  ActionWrite,
		Path:    path,
		Message: fmt.Sprintf("Write %s", path),
	})
}

// Skipped records an existing file that was left alone. level is
// LevelComment for shared artifacts and LevelError for the test file.
func (r *Report) Skipped(path string, level ReportLevel) {
	r.Add(ReportLine{
		Level:   level,
		Action:  ActionSkip,
		Path:    path,
		Message: fmt.Sprintf("Skip %s: file already exists", path),
	})
}

// Aborted records the message of an error that stopped the generation
func (r *Report) Aborted(message string) {
	r.Add(ReportLine{
		Level:   LevelError,
		Action:  ActionAbort,
		Message: message,
	})
}

// Lines returns a copy of the recorded lines in order
func (r *Report) Lines() []ReportLine {
	out := make([]ReportLine, len(r.lines))
	copy(out, r.lines)
	return out
}

// Len returns the number of lines
func (r *Report) Len() int {
	return len(r.lines)
}

// HasErrors reports whether any line has LevelError
func (r *Report) HasErrors() bool {
	for _, l := range r.lines {
		if l.Level == LevelError {
			return true
		}
	}
	return false
}

// Count returns the number of lines with the given level and action
func (r *Report) Count(level ReportLevel, action ReportAction) int {
	n := 0
	for _, l := range r.lines {
		if l.Level == level && l.Action == action {
			n++
		}
	}
	return n
}

// MarshalJSON encodes the report as its list of lines
func (r *Report) MarshalJSON() ([]byte, error) {
	lines := r.lines
	if lines == nil {
		lines = []ReportLine{}
	}
	return json.Marshal(struct {
		Lines []ReportLine `json:"lines"`
	}{Lines: lines})
}
