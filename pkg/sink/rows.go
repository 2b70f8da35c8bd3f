package sink

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sysvitals/eventscope/pkg/event"
)

// timestampLayout is the canonical timestamp rendering for exports.
const timestampLayout = time.RFC3339

// EventRow renders an event into row cells matching the given headers.
// Unknown headers render as the not-applicable sentinel so a descriptor
// change cannot silently shift columns.
func EventRow(e event.Event, headers []string) []string {
	row := make([]string, len(headers))
	for i, h := range headers {
		switch h {
		case "Timestamp":
			row[i] = e.Timestamp.UTC().Format(timestampLayout)
		case "EventID":
			row[i] = strconv.FormatUint(uint64(e.EventID), 10)
		case "Severity":
			row[i] = e.Severity.String()
		case "LogName":
			row[i] = e.LogName
		case "Provider":
			row[i] = e.Provider
		case "Description":
			row[i] = e.Description
		case "Message":
			row[i] = e.Message
		case "BugCheckCode":
			row[i] = e.BugCheckCode
		case "Param1", "Param2", "Param3", "Param4":
			row[i] = e.Params[h[5]-'1']
		default:
			row[i] = event.NotApplicable
		}
	}
	return row
}

// ParseEventRow is the inverse of EventRow for the canonical columns. It
// exists so exports can be re-read and verified against the records that
// produced them.
func ParseEventRow(headers, row []string) (event.Event, error) {
	if len(headers) != len(row) {
		return event.Event{}, fmt.Errorf("row has %d cells, want %d", len(row), len(headers))
	}

	e := event.Event{
		BugCheckCode: event.NotApplicable,
		Params: [4]string{
			event.NotApplicable, event.NotApplicable,
			event.NotApplicable, event.NotApplicable,
		},
	}
	for i, h := range headers {
		cell := row[i]
		switch h {
		case "Timestamp":
			ts, err := time.Parse(timestampLayout, cell)
			if err != nil {
				return event.Event{}, fmt.Errorf("parsing timestamp %q: %w", cell, err)
			}
			e.Timestamp = ts
		case "EventID":
			id, err := strconv.ParseUint(cell, 10, 32)
			if err != nil {
				return event.Event{}, fmt.Errorf("parsing event id %q: %w", cell, err)
			}
			e.EventID = uint32(id)
		case "Severity":
			sev, ok := event.ParseSeverity(cell)
			if !ok && cell != event.SeverityUnknown.String() {
				return event.Event{}, fmt.Errorf("unknown severity %q", cell)
			}
			e.Severity = sev
		case "LogName":
			e.LogName = cell
		case "Provider":
			e.Provider = cell
		case "Description":
			e.Description = cell
		case "Message":
			e.Message = cell
		case "BugCheckCode":
			e.BugCheckCode = cell
		case "Param1", "Param2", "Param3", "Param4":
			e.Params[h[5]-'1'] = cell
		}
	}
	return e, nil
}

// MinidumpRow renders a crash-dump file record into the minidump columns.
func MinidumpRow(m event.MinidumpFile) []string {
	return []string{
		m.Name,
		m.Path,
		strconv.FormatInt(m.SizeB, 10),
		m.Created.UTC().Format(timestampLayout),
		m.Modified.UTC().Format(timestampLayout),
	}
}
