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

// Package version carries the build metadata stamped into the binary and a
// small release-string parser used for host kernel identification in the
// summary report.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Build metadata, overridden at build time with ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info returns the one-line build identification string.
func Info() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}

// Error types for release parsing failures
var (
	ErrEmptyRelease      = errors.New("release string is empty")
	ErrTooManyComponents = errors.New("release has more than 3 components")
	ErrNonNumeric        = errors.New("release component is not numeric")
	ErrNegativeComponent = errors.New("release component cannot be negative")
)

// Release represents a dotted numeric release with up to three components.
// Precision records how many components were present in the input, and
// Extras preserves any suffix after '-' or '+' (e.g. "-generic", "-aws").
type Release struct {
	Major int `json:"major,omitempty" yaml:"major,omitempty"`
	Minor int `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch int `json:"patch,omitempty" yaml:"patch,omitempty"`

	// Precision indicates how many components are significant (1, 2, or 3)
	Precision int `json:"precision,omitempty" yaml:"precision,omitempty"`

	// Extras stores the trailing metadata like "-35-generic"
	Extras string `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// String returns the release respecting its precision. Extras are not
// included.
func (r Release) String() string {
	switch r.Precision {
	case 1:
		return fmt.Sprintf("%d", r.Major)
	case 2:
		return fmt.Sprintf("%d.%d", r.Major, r.Minor)
	default:
		return fmt.Sprintf("%d.%d.%d", r.Major, r.Minor, r.Patch)
	}
}

// Full returns the release including any preserved suffix.
func (r Release) Full() string {
	return r.String() + r.Extras
}

// ParseRelease parses a release string such as "6", "6.8", "6.8.0",
// "v6.8.0", or "6.8.0-35-generic". The "v" prefix is optional; anything
// after the first '-' or '+' is preserved in Extras.
func ParseRelease(s string) (Release, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Release{}, ErrEmptyRelease
	}
	s = strings.TrimPrefix(s, "v")

	var extras string
	if i := strings.IndexAny(s, "-+"); i >= 0 {
		extras = s[i:]
		s = s[:i]
	}

	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return Release{}, fmt.Errorf("%w: %q", ErrTooManyComponents, s)
	}

	r := Release{Precision: len(parts), Extras: extras}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Release{}, fmt.Errorf("%w: %q", ErrNonNumeric, p)
		}
		if n < 0 {
			return Release{}, fmt.Errorf("%w: %q", ErrNegativeComponent, p)
		}
		switch i {
		case 0:
			r.Major = n
		case 1:
			r.Minor = n
		case 2:
			r.Patch = n
		}
	}
	return r, nil
}

// Compare returns -1, 0, or 1 comparing r to other on the numeric
// components only. Components beyond either side's precision compare as
// zero.
func (r Release) Compare(other Release) int {
	pairs := [3][2]int{
		{r.Major, other.Major},
		{r.Minor, other.Minor},
		{r.Patch, other.Patch},
	}
	for _, p := range pairs {
		if p[0] < p[1] {
			return -1
		}
		if p[0] > p[1] {
			return 1
		}
	}
	return 0
}
