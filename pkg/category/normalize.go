package category

import (
	"fmt"
	"regexp"

	"github.com/sysvitals/eventscope/pkg/event"
)

// genericDescriptions is the static lookup for well-known event identifiers
// seen in the generic system and application categories.
var genericDescriptions = map[uint32]string{
	41:    "The system rebooted without cleanly shutting down first",
	1000:  "Application crash",
	1001:  "System crash (bug check) recorded",
	1002:  "Application hang",
	6008:  "The previous system shutdown was unexpected",
	7000:  "Service failed to start",
	7001:  "Service dependency failed to start",
	7031:  "Service terminated unexpectedly",
	7034:  "Service terminated unexpectedly and was not restarted",
	10016: "Component activation permission error",
}

// hardwareDescriptions maps the enumerated hardware-fault identifiers to
// their descriptions. These identifiers also drive the fixed-ID retrieval.
var hardwareDescriptions = map[uint32]string{
	7:  "Disk device reported a bad block",
	11: "Disk controller error",
	18: "Fatal machine check exception",
	19: "Corrected machine check error",
	46: "Corrected memory error threshold exceeded",
	47: "Uncorrectable memory error",
	51: "Paging error on disk device",
}

// reliabilitySeverities derives a severity label from the enumerated
// reliability-monitor record identifiers.
var reliabilitySeverities = map[uint32]event.Severity{
	19:   event.SeverityInformation, // update installed
	20:   event.SeverityError,       // update failed
	1000: event.SeverityError,       // application failure
	1001: event.SeverityInformation, // error report generated
	1002: event.SeverityError,       // application hang
	6008: event.SeverityCritical,    // unexpected shutdown
}

// reliabilityDescriptions labels the enumerated reliability identifiers.
var reliabilityDescriptions = map[uint32]string{
	19:   "Software update installed",
	20:   "Software update failed",
	1000: "Application failure recorded by reliability monitor",
	1001: "Error report generated",
	1002: "Application hang recorded by reliability monitor",
	6008: "Unexpected shutdown recorded by reliability monitor",
}

// Labeled-field patterns for bug-check message extraction. Both the
// labeled form ("BugcheckCode: 159 BugcheckParameter1: 0x3 ...") and the
// parenthesized form ("The bugcheck was: 0x0000009f (0x3, 0x0, 0x0, 0x0)")
// appear in the wild.
var (
	bugCheckCodeRe    = regexp.MustCompile(`(?i)bugcheck(?:Code|\s+was)[:\s]+(0x[0-9a-fA-F]+|\d+)`)
	bugCheckParamRe   = regexp.MustCompile(`(?i)bugcheckParameter([1-4])[:\s]+(\S+)`)
	bugCheckParensRe  = regexp.MustCompile(`(?i)bugcheck was[:\s]+(?:0x[0-9a-fA-F]+|\d+)\s*\(([^)]+)\)`)
	bugCheckParamsSep = regexp.MustCompile(`\s*,\s*`)
)

// base copies the fields every normalize strategy shares. Structured
// parameters start at the sentinel so no field is ever absent.
func base(raw event.Raw) event.Event {
	return event.Event{
		Timestamp:    raw.Timestamp,
		EventID:      raw.EventID,
		Severity:     raw.Level,
		LogName:      raw.LogName,
		Provider:     raw.Provider,
		Message:      raw.Message,
		BugCheckCode: event.NotApplicable,
		Params: [4]string{
			event.NotApplicable, event.NotApplicable,
			event.NotApplicable, event.NotApplicable,
		},
		ProcessID: raw.ProcessID,
		ThreadID:  raw.ThreadID,
	}
}

// normalizeGeneric labels system and application events from the static
// description table, falling back to a generic label.
func normalizeGeneric(raw event.Raw) event.Event {
	e := base(raw)
	if d, ok := genericDescriptions[raw.EventID]; ok {
		e.Description = d
	} else {
		e.Description = fmt.Sprintf("General %s event", raw.LogName)
	}
	return e
}

// normalizeKernelPower labels unexpected-shutdown signature events. The
// description is fixed; the event carries no structured parameters.
func normalizeKernelPower(raw event.Raw) event.Event {
	e := base(raw)
	e.Severity = event.SeverityCritical
	e.Description = "Unexpected shutdown or power loss"
	return e
}

// normalizeBugCheck extracts the bug-check code and up to four parameters
// from the free-text message. Fields that cannot be matched keep the
// NotApplicable sentinel.
func normalizeBugCheck(raw event.Raw) event.Event {
	e := base(raw)
	e.Description = "System crash (bug check) recorded"

	if m := bugCheckCodeRe.FindStringSubmatch(raw.Message); m != nil {
		e.BugCheckCode = m[1]
	}

	matched := false
	for _, m := range bugCheckParamRe.FindAllStringSubmatch(raw.Message, 4) {
		idx := int(m[1][0] - '1')
		e.Params[idx] = m[2]
		matched = true
	}
	if !matched {
		if m := bugCheckParensRe.FindStringSubmatch(raw.Message); m != nil {
			for i, p := range bugCheckParamsSep.Split(m[1], 4) {
				e.Params[i] = p
			}
		}
	}
	return e
}

// normalizeHardware labels hardware-fault events from the enumerated map.
func normalizeHardware(raw event.Raw) event.Event {
	e := base(raw)
	if d, ok := hardwareDescriptions[raw.EventID]; ok {
		e.Description = d
	} else {
		e.Description = "Hardware fault"
	}
	return e
}

// normalizeReliability derives severity and description from the
// reliability-monitor identifier maps, falling back to Unknown.
func normalizeReliability(raw event.Raw) event.Event {
	e := base(raw)
	if sev, ok := reliabilitySeverities[raw.EventID]; ok {
		e.Severity = sev
	} else {
		e.Severity = event.SeverityUnknown
	}
	if d, ok := reliabilityDescriptions[raw.EventID]; ok {
		e.Description = d
	} else {
		e.Description = "Reliability monitor record"
	}
	return e
}
