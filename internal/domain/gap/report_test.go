package gap

import "testing"

func TestSeverityFor_Bands(t *testing.T) {
	tests := []struct {
		pct  float64
		want Severity
	}{
		{100, SeverityLow},
		{80, SeverityLow},
		{79.9, SeverityMedium},
		{60, SeverityMedium},
		{59.9, SeverityHigh},
		{40, SeverityHigh},
		{39.9, SeverityCritical},
		{0, SeverityCritical},
	}
	for _, tt := range tests {
		if got := SeverityFor(tt.pct); got != tt.want {
			t.Errorf("SeverityFor(%v) = %s, want %s", tt.pct, got, tt.want)
		}
	}
}

func TestSeverityFor_Monotonic(t *testing.T) {
	rank := map[Severity]int{
		SeverityCritical: 0,
		SeverityHigh:     1,
		SeverityMedium:   2,
		SeverityLow:      3,
	}
	prev := rank[SeverityFor(0)]
	for pct := 0.0; pct <= 100; pct += 0.5 {
		cur := rank[SeverityFor(pct)]
		if cur < prev {
			t.Fatalf("severity got worse as match percentage grew: %v%%", pct)
		}
		prev = cur
	}
}
