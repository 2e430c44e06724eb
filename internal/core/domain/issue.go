package domain

import "time"

// TextRange locates a span of text in a file. Lines start at 1, offsets at 0.
type TextRange struct {
	StartLine       int
	StartLineOffset int
	EndLine         int
	EndLineOffset   int
}

// Location is a message attached to an optional range of a file.
type Location struct {
	Path      string
	Message   string
	TextRange *TextRange
}

// Flow is an ordered list of locations showing how an issue is reached.
type Flow struct {
	Locations []Location
}

// ServerIssue is an issue record as received from the server and persisted in storage.
type ServerIssue struct {
	Key            string
	ModuleKey      string
	Path           string
	RuleRepository string
	RuleKey        string
	Severity       string
	Type           string
	AssigneeLogin  string
	LineHash       string
	// CreationDate is in milliseconds since the Unix epoch.
	CreationDate    int64
	Resolution      string
	PrimaryLocation Location
	Flows           []Flow
}

// Issue is a server issue bound to a local file, as consumed by the analyzer.
type Issue struct {
	Key           string
	RuleKey       string
	Severity      string
	Type          string
	AssigneeLogin string
	LineHash      string
	Message       string
	FilePath      string
	CreationDate  time.Time
	Resolution    string
	TextRange     *TextRange
	Flows         []Flow
}

// RuleKeySeparator joins a rule repository and a rule key.
const RuleKeySeparator = ":"
