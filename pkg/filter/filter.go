// Package filter narrows the event stream before it reaches sinks and the
// aggregator. Two mechanisms compose: an explicit event-identifier list and
// an optional boolean expression evaluated per event.
package filter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/sysvitals/eventscope/pkg/event"
)

// Env is the variable set visible to filter expressions.
type Env struct {
	EventID  uint32 `expr:"EventID"`
	Severity string `expr:"Severity"`
	Provider string `expr:"Provider"`
	LogName  string `expr:"LogName"`
	Message  string `expr:"Message"`
}

// Filter decides whether a normalized event passes into the pipeline.
// A nil *Filter passes everything.
type Filter struct {
	ids     map[uint32]struct{}
	program *vm.Program
}

// New compiles a filter from an event-identifier list and an optional
// expression. Either may be empty. Expressions must evaluate to a boolean,
// e.g. `EventID in [41, 1001] && Severity == "Critical"`.
func New(ids []uint32, expression string) (*Filter, error) {
	f := &Filter{}

	if len(ids) > 0 {
		f.ids = make(map[uint32]struct{}, len(ids))
		for _, id := range ids {
			f.ids[id] = struct{}{}
		}
	}

	if expression != "" {
		program, err := expr.Compile(expression, expr.Env(Env{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compiling filter expression: %w", err)
		}
		f.program = program
	}

	if f.ids == nil && f.program == nil {
		return nil, nil
	}
	return f, nil
}

// Match reports whether the event passes the filter.
func (f *Filter) Match(e event.Event) bool {
	if f == nil {
		return true
	}
	if f.ids != nil {
		if _, ok := f.ids[e.EventID]; !ok {
			return false
		}
	}
	if f.program != nil {
		out, err := expr.Run(f.program, Env{
			EventID:  e.EventID,
			Severity: e.Severity.String(),
			Provider: e.Provider,
			LogName:  e.LogName,
			Message:  e.Message,
		})
		if err != nil {
			// A runtime evaluation failure rejects the event rather than
			// letting an unfilterable record through.
			return false
		}
		pass, ok := out.(bool)
		return ok && pass
	}
	return true
}
