package source

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sysvitals/eventscope/pkg/event"
)

// Static is an in-memory Source backed by a fixed event set. It serves
// deterministic fixtures loaded from a file (--source file) and test
// scenarios. Events are held sorted newest-first.
type Static struct {
	events []event.Raw
}

// NewStatic creates a Static source from the given events. The input slice
// is copied and sorted newest-first.
func NewStatic(events []event.Raw) *Static {
	cp := make([]event.Raw, len(events))
	copy(cp, events)
	sort.SliceStable(cp, func(i, j int) bool {
		return cp[i].Timestamp.After(cp[j].Timestamp)
	})
	return &Static{events: cp}
}

// staticFixture is the on-disk shape of one fixture event.
type staticFixture struct {
	Timestamp time.Time `yaml:"timestamp"`
	EventID   uint32    `yaml:"eventId"`
	Level     string    `yaml:"level"`
	LogName   string    `yaml:"logName"`
	Provider  string    `yaml:"provider"`
	Message   string    `yaml:"message"`
	ProcessID uint32    `yaml:"processId"`
	ThreadID  uint32    `yaml:"threadId"`
}

// LoadStatic reads a YAML fixture file containing a list of raw events.
func LoadStatic(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture file: %w", err)
	}

	var fixtures []staticFixture
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("parsing fixture file %s: %w", path, err)
	}

	events := make([]event.Raw, 0, len(fixtures))
	for i, f := range fixtures {
		sev, ok := event.ParseSeverity(f.Level)
		if !ok {
			return nil, fmt.Errorf("fixture %d: unknown level %q", i, f.Level)
		}
		events = append(events, event.Raw{
			Timestamp: f.Timestamp,
			EventID:   f.EventID,
			Level:     sev,
			LogName:   f.LogName,
			Provider:  f.Provider,
			Message:   f.Message,
			ProcessID: f.ProcessID,
			ThreadID:  f.ThreadID,
		})
	}
	return NewStatic(events), nil
}

// Query implements the Source interface.
func (s *Static) Query(ctx context.Context, req Request) ([]event.Raw, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.MaxBatch <= 0 {
		return nil, fmt.Errorf("invalid max batch: %d", req.MaxBatch)
	}

	var out []event.Raw
	for _, e := range s.events {
		if !req.Matches(e) {
			continue
		}
		out = append(out, e)
		if len(out) == req.MaxBatch {
			break
		}
	}
	if len(out) == 0 {
		return nil, ErrNoEvents
	}
	return out, nil
}
