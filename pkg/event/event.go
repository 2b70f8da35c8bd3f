// Copyright (c) 2026, Sysvitals Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package event

import "time"

// Severity classifies an event by impact.
type Severity string

const (
	SeverityCritical    Severity = "Critical"
	SeverityError       Severity = "Error"
	SeverityWarning     Severity = "Warning"
	SeverityInformation Severity = "Information"
	SeverityUnknown     Severity = "Unknown"
)

// String returns the string representation of the Severity.
func (s Severity) String() string {
	return string(s)
}

// Severities is the list of severities accepted in query filters.
var Severities = []Severity{
	SeverityCritical,
	SeverityError,
	SeverityWarning,
	SeverityInformation,
}

// ParseSeverity parses a string into a Severity.
// Returns the Severity and true if parsing succeeds, or SeverityUnknown and
// false if the string is not a known severity.
func ParseSeverity(s string) (Severity, bool) {
	for _, sev := range Severities {
		if string(sev) == s {
			return sev, true
		}
	}
	return SeverityUnknown, false
}

// NotApplicable is the sentinel used for structured fields that were not
// present in the source event. Downstream rendering relies on every optional
// field carrying a value rather than an absence marker.
const NotApplicable = "N/A"

// Event is the canonical diagnostic event record produced by normalization.
// It is immutable once created: collectors hand it to sinks and the
// aggregator, neither of which mutates it.
type Event struct {
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
	EventID     uint32    `json:"eventId" yaml:"eventId"`
	Severity    Severity  `json:"severity" yaml:"severity"`
	LogName     string    `json:"logName" yaml:"logName"`
	Provider    string    `json:"provider" yaml:"provider"`
	Message     string    `json:"message" yaml:"message"`
	Description string    `json:"description" yaml:"description"`

	// Bug-check enrichment. BugCheckCode and Params hold NotApplicable
	// when the category does not extract them.
	BugCheckCode string    `json:"bugCheckCode,omitempty" yaml:"bugCheckCode,omitempty"`
	Params       [4]string `json:"params,omitempty" yaml:"params,omitempty"`

	// Execution context, when the source provides it. Zero means unknown.
	ProcessID uint32 `json:"processId,omitempty" yaml:"processId,omitempty"`
	ThreadID  uint32 `json:"threadId,omitempty" yaml:"threadId,omitempty"`
}

// Raw is an event as returned by a source query, before normalization.
type Raw struct {
	Timestamp time.Time
	EventID   uint32
	Level     Severity
	LogName   string
	Provider  string
	Message   string
	ProcessID uint32
	ThreadID  uint32
}

// MinidumpFile describes a crash-dump file found by the filesystem scanner.
// Minidumps bypass normalization; only file metadata is collected.
type MinidumpFile struct {
	Name     string    `json:"name" yaml:"name"`
	Path     string    `json:"path" yaml:"path"`
	SizeB    int64     `json:"sizeBytes" yaml:"sizeBytes"`
	Created  time.Time `json:"created" yaml:"created"`
	Modified time.Time `json:"modified" yaml:"modified"`
}
