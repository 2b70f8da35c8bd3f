package category

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysvitals/eventscope/pkg/event"
)

var ts = time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)

func TestNormalizeGeneric(t *testing.T) {
	t.Run("known id", func(t *testing.T) {
		e := normalizeGeneric(event.Raw{
			Timestamp: ts,
			EventID:   7034,
			Level:     event.SeverityError,
			LogName:   "System",
			Provider:  "Service Control Manager",
			Message:   "The spooler service terminated unexpectedly.",
		})
		assert.Equal(t, "Service terminated unexpectedly and was not restarted", e.Description)
		assert.Equal(t, event.SeverityError, e.Severity)
		assert.Equal(t, ts, e.Timestamp)
	})

	t.Run("unknown id falls back", func(t *testing.T) {
		e := normalizeGeneric(event.Raw{EventID: 424242, LogName: "Application"})
		assert.Equal(t, "General Application event", e.Description)
	})

	t.Run("structured fields default to sentinel", func(t *testing.T) {
		e := normalizeGeneric(event.Raw{EventID: 7000})
		assert.Equal(t, event.NotApplicable, e.BugCheckCode)
		for _, p := range e.Params {
			assert.Equal(t, event.NotApplicable, p)
		}
	})
}

func TestNormalizeKernelPower(t *testing.T) {
	e := normalizeKernelPower(event.Raw{
		EventID: 41,
		Level:   event.SeverityError,
		Message: "The system has rebooted without cleanly shutting down first.",
	})
	assert.Equal(t, "Unexpected shutdown or power loss", e.Description)
	assert.Equal(t, event.SeverityCritical, e.Severity)
	assert.Equal(t, event.NotApplicable, e.BugCheckCode)
}

func TestNormalizeBugCheck(t *testing.T) {
	t.Run("labeled fields", func(t *testing.T) {
		e := normalizeBugCheck(event.Raw{
			EventID: 1001,
			Message: "The computer has rebooted from a bugcheck. BugcheckCode: 0x0000009f " +
				"BugcheckParameter1: 0x3 BugcheckParameter2: 0xffffe00012345678 " +
				"BugcheckParameter3: 0xfffff80312345678 BugcheckParameter4: 0x0",
		})
		assert.Equal(t, "0x0000009f", e.BugCheckCode)
		assert.Equal(t, [4]string{"0x3", "0xffffe00012345678", "0xfffff80312345678", "0x0"}, e.Params)
	})

	t.Run("parenthesized form", func(t *testing.T) {
		e := normalizeBugCheck(event.Raw{
			EventID: 1001,
			Message: "The bugcheck was: 0x0000009f (0x3, 0xffffe000, 0xfffff803, 0x0).",
		})
		assert.Equal(t, "0x0000009f", e.BugCheckCode)
		assert.Equal(t, [4]string{"0x3", "0xffffe000", "0xfffff803", "0x0"}, e.Params)
	})

	t.Run("missing fields keep sentinel", func(t *testing.T) {
		e := normalizeBugCheck(event.Raw{
			EventID: 1001,
			Message: "The computer has rebooted from a bugcheck. A dump was saved.",
		})
		assert.Equal(t, event.NotApplicable, e.BugCheckCode)
		for _, p := range e.Params {
			assert.Equal(t, event.NotApplicable, p)
		}
	})

	t.Run("partial labeled fields", func(t *testing.T) {
		e := normalizeBugCheck(event.Raw{
			EventID: 1001,
			Message: "BugcheckCode: 159 BugcheckParameter1: 0x3",
		})
		assert.Equal(t, "159", e.BugCheckCode)
		assert.Equal(t, "0x3", e.Params[0])
		assert.Equal(t, event.NotApplicable, e.Params[1])
	})
}

func TestNormalizeHardware(t *testing.T) {
	e := normalizeHardware(event.Raw{EventID: 47, Level: event.SeverityError})
	assert.Equal(t, "Uncorrectable memory error", e.Description)

	e = normalizeHardware(event.Raw{EventID: 999})
	assert.Equal(t, "Hardware fault", e.Description)
}

func TestNormalizeReliability(t *testing.T) {
	tests := []struct {
		id      uint32
		wantSev event.Severity
	}{
		{6008, event.SeverityCritical},
		{1000, event.SeverityError},
		{19, event.SeverityInformation},
		{31337, event.SeverityUnknown},
	}

	for _, tt := range tests {
		e := normalizeReliability(event.Raw{EventID: tt.id})
		assert.Equal(t, tt.wantSev, e.Severity, "id %d", tt.id)
	}
}

func TestDescriptors(t *testing.T) {
	all := All()
	require.Len(t, all, 7)

	for _, d := range all {
		got, ok := Get(d.Name)
		require.True(t, ok, "Get(%s)", d.Name)
		assert.Equal(t, d.Name, got.Name)
		if d.Strategy != StrategyFilesystem {
			require.NotNil(t, got.Normalize, "%s must carry a normalize strategy", d.Name)
		}
		require.NotEmpty(t, got.Headers)
	}

	_, ok := Get("NoSuchCategory")
	assert.False(t, ok)

	assert.Equal(t, len(all), len(Names()))
}

func TestFixedIDCategoriesEnumerateIDs(t *testing.T) {
	for _, name := range []string{HardwareErrors, ReliabilityRecords} {
		d, ok := Get(name)
		require.True(t, ok)
		assert.Equal(t, StrategyFixedIDs, d.Strategy)
		assert.NotEmpty(t, d.EventIDs)
	}
}
