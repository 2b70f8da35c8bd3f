package sink

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/sysvitals/eventscope/pkg/event"
)

// CSV is a row-oriented streaming sink. The header row is written once at
// first use; thereafter each record is appended and flushed as it is
// produced, so memory use is O(1) per record and partial output survives an
// interrupted run.
type CSV struct {
	path     string
	headers  []string
	simulate bool

	file          *os.File
	w             *csv.Writer
	rows          int
	headerWritten bool
}

// NewCSV creates a streaming CSV sink targeting path. The file is not
// created until the first record arrives, so empty categories leave no
// empty files behind.
func NewCSV(path string, headers []string, simulate bool) *CSV {
	return &CSV{
		path:     path,
		headers:  headers,
		simulate: simulate,
	}
}

// Write implements the Sink interface.
func (c *CSV) Write(e event.Event) error {
	return c.WriteRow(EventRow(e, c.headers))
}

// WriteRow implements the Sink interface.
func (c *CSV) WriteRow(row []string) error {
	c.rows++
	if c.simulate {
		return nil
	}

	if !c.headerWritten {
		if err := c.open(); err != nil {
			return err
		}
		if err := c.w.Write(c.headers); err != nil {
			return fmt.Errorf("writing header to %s: %w", c.path, err)
		}
		c.headerWritten = true
	}

	if err := c.w.Write(row); err != nil {
		return fmt.Errorf("writing row to %s: %w", c.path, err)
	}
	// Flush per record so a crash mid-category loses at most the current row.
	c.w.Flush()
	return c.w.Error()
}

func (c *CSV) open() error {
	f, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", c.path, err)
	}
	c.file = f
	c.w = csv.NewWriter(f)
	return nil
}

// Close implements the Sink interface.
func (c *CSV) Close() error {
	if c.file == nil {
		return nil
	}
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		c.file.Close()
		return err
	}
	return c.file.Close()
}

// Rows implements the Sink interface.
func (c *CSV) Rows() int { return c.rows }

// Path implements the Sink interface.
func (c *CSV) Path() string { return c.path }
