package event

import "testing"

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input  string
		want   Severity
		wantOK bool
	}{
		{"Critical", SeverityCritical, true},
		{"Error", SeverityError, true},
		{"Warning", SeverityWarning, true},
		{"Information", SeverityInformation, true},
		{"critical", SeverityUnknown, false},
		{"", SeverityUnknown, false},
		{"Fatal", SeverityUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseSeverity(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseSeverity(%q) = %v, %v; want %v, %v",
					tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
