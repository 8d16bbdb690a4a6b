package diag

import "testing"

func TestSeverityString(t *testing.T) {
	cases := []struct {
		sev  Severity
		want string
	}{
		{SevInfo, "INFO"},
		{SevWarning, "WARNING"},
		{SevError, "ERROR"},
		{Severity(42), "UNKNOWN"},
	}
	for _, tc := range cases {
		if got := tc.sev.String(); got != tc.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tc.sev, got, tc.want)
		}
	}
}
