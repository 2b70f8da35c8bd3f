//go:build !linux || !cgo

package source

import "errors"

// NewJournal is unavailable without the systemd journal; callers fall back
// to a fixture-backed source.
func NewJournal() (Source, error) {
	return nil, errors.New("systemd journal source requires linux with cgo")
}
