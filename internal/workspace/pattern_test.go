package workspace

import "testing"

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    bool
	}{
		// Star patterns strip '*' and match as substring
		{"notes.inkfinite.json", "*.inkfinite.json", true},
		{"draft.inkfinite.json.bak", "*.inkfinite.json", true},
		{"b.INKFINITE.JSON", "*.inkfinite.json", false},
		{"midnight.txt", "*mid*", true},
		{"amidst", "*mid*", true},
		{"other.txt", "*mid*", false},
		{"anything", "*", true},
		// Bare patterns match as exact suffix
		{"report-suffix.json", "suffix.json", true},
		{"suffix.json", "suffix.json", true},
		{"suffix.json.old", "suffix.json", false},
		{"SUFFIX.JSON", "suffix.json", false},
		{"anything", "", true},
	}

	for _, tt := range tests {
		if got := matchPattern(tt.name, tt.pattern); got != tt.want {
			t.Errorf("matchPattern(%q, %q) = %v, want %v", tt.name, tt.pattern, got, tt.want)
		}
	}
}

func TestSortEntriesStable(t *testing.T) {
	entries := []Entry{
		{Name: "b.inkfinite.json"},
		{Name: "Zed", IsDir: true},
		{Name: "a.inkfinite.json"},
		{Name: "apple", IsDir: true},
	}
	sortEntries(entries)

	want := []string{"apple", "Zed", "a.inkfinite.json", "b.inkfinite.json"}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, entries[i].Name)
		}
	}
}
