//nolint:testpackage // using package name 'fuzzy' to access unexported helpers for testing
package fuzzy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMatcher_FindBest(t *testing.T) {
	matcher := NewMatcher(2)

	tests := []struct {
		name       string
		input      string
		candidates []string
		expected   string
	}{
		{
			name:       "exact match excluded",
			input:      "port",
			candidates: []string{"port", "count"},
			expected:   "",
		},
		{
			name:       "transposition",
			input:      "prot",
			candidates: []string{"port", "host", "count"},
			expected:   "port",
		},
		{
			name:       "missing letter",
			input:      "colr",
			candidates: []string{"color", "count"},
			expected:   "color",
		},
		{
			name:       "truncated word",
			input:      "verbos",
			candidates: []string{"verbose", "version"},
			expected:   "verbose",
		},
		{
			name:       "no good match",
			input:      "xyz",
			candidates: []string{"help", "version", "verbose"},
			expected:   "",
		},
		{
			name:       "input too short",
			input:      "x",
			candidates: []string{"xy"},
			expected:   "",
		},
		{
			name:       "case insensitive",
			input:      "COLR",
			candidates: []string{"color"},
			expected:   "color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matcher.FindBest(tt.input, tt.candidates); got != tt.expected {
				t.Errorf("FindBest(%q, %v) = %q, want %q", tt.input, tt.candidates, got, tt.expected)
			}
		})
	}
}

func TestMatcher_LevenshteinDistance(t *testing.T) {
	matcher := NewMatcher(10)

	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"port", "port", 0},
		{"port", "prot", 2},
		{"colr", "color", 1},
		{"kitten", "sitting", 3},
	}

	for _, tt := range tests {
		if got := matcher.levenshteinDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMatcher_EarlyTermination(t *testing.T) {
	matcher := NewMatcher(1)

	if got := matcher.levenshteinDistance("a", "abcdef"); got != 2 {
		t.Errorf("Expected length shortcut to return maxDistance+1=2, got %d", got)
	}
	if got := matcher.levenshteinDistance("abcd", "wxyz"); got != 2 {
		t.Errorf("Expected row shortcut to return maxDistance+1=2, got %d", got)
	}
}

func TestMatcher_FindMatchesOrdering(t *testing.T) {
	matcher := NewMatcher(2)

	matches := matcher.FindMatches("colr", []string{"count", "colour", "color"})
	got := make([]string, 0, len(matches))
	for _, m := range matches {
		got = append(got, m.Value)
	}

	// color is one edit away, colour two, count three (excluded)
	if diff := cmp.Diff([]string{"color", "colour"}, got); diff != "" {
		t.Errorf("FindMatches ordering mismatch (-want +got):\n%s", diff)
	}
	for _, m := range matches {
		if m.Score <= 0 || m.Score > 1 {
			t.Errorf("score for %q out of range: %f", m.Value, m.Score)
		}
	}
}

func TestConvenienceFunctions(t *testing.T) {
	names := []string{"port", "host", "verbose", "version"}

	if got := FindBestArgument("hots", names, 2); got != "host" {
		t.Errorf("FindBestArgument(hots) = %q, want host", got)
	}

	suggestions := FindSuggestions("verson", names, 2, 1)
	if diff := cmp.Diff([]string{"version"}, suggestions); diff != "" {
		t.Errorf("FindSuggestions mismatch (-want +got):\n%s", diff)
	}

	if got := FindSuggestions("zz", names, 2, 3); len(got) != 0 {
		t.Errorf("Expected no suggestions, got %v", got)
	}
}

func TestHelpers(t *testing.T) {
	if got := commonPrefixLength("verbose", "version"); got != 3 {
		t.Errorf("commonPrefixLength = %d, want 3", got)
	}
	if got := countCommonChars("aab", "abb"); got != 2 {
		t.Errorf("countCommonChars = %d, want 2", got)
	}
	if abs(-3) != 3 || abs(3) != 3 {
		t.Errorf("abs broken")
	}
}
