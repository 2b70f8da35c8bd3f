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

package version

import (
	"testing"
)

// FuzzParseRelease verifies the parser never panics and that anything it
// accepts round-trips through String/Full without losing components.
func FuzzParseRelease(f *testing.F) {
	seeds := []string{
		"6.8.0-35-generic",
		"v5.15.0",
		"6.8",
		"6",
		"6.1.0+build7",
		"",
		"1.2.3.4",
		"x.y.z",
		"-1.0.0",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, in string) {
		r, err := ParseRelease(in)
		if err != nil {
			return
		}
		if r.Precision < 1 || r.Precision > 3 {
			t.Errorf("ParseRelease(%q) precision out of range: %d", in, r.Precision)
		}
		reparsed, err := ParseRelease(r.Full())
		if err != nil {
			t.Fatalf("ParseRelease(%q) output %q failed to reparse: %v", in, r.Full(), err)
		}
		if reparsed.Compare(r) != 0 || reparsed.Precision != r.Precision {
			t.Errorf("ParseRelease(%q) round-trip mismatch: %+v vs %+v", in, reparsed, r)
		}
	})
}
