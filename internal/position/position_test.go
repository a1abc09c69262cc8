package position

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLabels(t *testing.T) {
	fields := []string{"Id", "domain_no", "hmm_species", "e-value", "1", "2", "111A", "112"}
	got := Labels(fields)
	want := []string{"1", "2", "111A", "112"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Labels mismatch (-want +got):\n%s", diff)
	}
}

func TestLabelsNone(t *testing.T) {
	if got := Labels([]string{"Id", "score", ""}); len(got) != 0 {
		t.Fatalf("want empty, got %v", got)
	}
	if got := Labels(nil); len(got) != 0 {
		t.Fatalf("want empty for nil, got %v", got)
	}
}

func TestLeadingInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1", 1, true},
		{"111A", 111, true},
		{"111B", 111, true},
		{"007", 7, true},
		{"A1", 0, false},
		{"", 0, false},
		{" 5", 0, false},
	}
	for _, tc := range cases {
		n, ok := LeadingInt(tc.in)
		if ok != tc.ok || n != tc.want {
			t.Errorf("LeadingInt(%q) = %d,%v want %d,%v", tc.in, n, ok, tc.want, tc.ok)
		}
	}
}
