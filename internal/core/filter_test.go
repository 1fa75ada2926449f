package core

import (
	"testing"

	"github.com/google/uuid"
)

func sampleOffers() []JobOffer {
	return []JobOffer{
		{ID: uuid.New(), Title: "Backend Developer", CandidateName: "Alice", Category: "Engineering", Location: "Paris", Description: "Go and Postgres", Visible: true},
		{ID: uuid.New(), Title: "Account Manager", CandidateName: "Bob", Category: "Sales", Location: "Lyon", Visible: true},
		{ID: uuid.New(), Title: "Hidden Role", CandidateName: "Eve", Category: "Sales", Location: "Paris", Description: "secret", Visible: false},
		{ID: uuid.New(), Title: "Développeuse Frontend", CandidateName: "Chloé", Category: "Engineering", Location: "Paris 11e", Visible: true},
		{ID: uuid.New(), Title: "Straßenbahn Fahrer", CandidateName: "Jörg", Category: "Transport", Location: "Berlin", Visible: true},
	}
}

func titles(offers []JobOffer) []string {
	out := make([]string, len(offers))
	for i, o := range offers {
		out[i] = o.Title
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter(t *testing.T) {
	offers := sampleOffers()

	tests := []struct {
		name     string
		search   string
		location string
		want     []string
	}{
		{"empty terms keep visible in order", "", "", []string{"Backend Developer", "Account Manager", "Développeuse Frontend", "Straßenbahn Fahrer"}},
		{"case insensitive category", "SALES", "", []string{"Account Manager"}},
		{"candidate name", "alice", "", []string{"Backend Developer"}},
		{"description", "postgres", "", []string{"Backend Developer"}},
		{"invisible never returned", "secret", "", []string{}},
		{"location filter", "", "paris", []string{"Backend Developer", "Développeuse Frontend"}},
		{"location excludes otherwise matching", "manager", "Paris", []string{}},
		{"accented lowercase", "DÉVELOPPEUSE", "", []string{"Développeuse Frontend"}},
		{"no sharp s expansion", "ss", "", []string{}},
		{"sharp s literal", "straße", "", []string{"Straßenbahn Fahrer"}},
		{"no match", "astronaut", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(Filter(offers, tt.search, tt.location))
			if !equalStrings(got, tt.want) {
				t.Fatalf("Filter(%q, %q) = %v, want %v", tt.search, tt.location, got, tt.want)
			}
		})
	}
}

func TestFilterExcludesLyonForParis(t *testing.T) {
	offers := []JobOffer{
		{ID: uuid.New(), Title: "x-ray technician", Location: "Lyon", Visible: true},
	}
	if got := Filter(offers, "x", "Paris"); len(got) != 0 {
		t.Fatalf("expected no results, got %v", titles(got))
	}
}

func TestFilterMissingDescription(t *testing.T) {
	offers := []JobOffer{
		{ID: uuid.New(), Title: "Cook", CandidateName: "Dan", Category: "Food", Visible: true},
	}
	got := Filter(offers, "kubernetes", "")
	if got == nil {
		t.Fatal("Filter returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Fatalf("expected no results, got %v", titles(got))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	offers := sampleOffers()
	before := titles(offers)

	out := Filter(offers, "", "")
	if len(out) > 0 {
		out[0].Title = "changed"
	}

	if !equalStrings(titles(offers), before) {
		t.Fatalf("input modified: %v", titles(offers))
	}
}

func TestNormalizeOffer(t *testing.T) {
	n := NewSimpleNormalizer()
	o := NormalizeOffer(n, JobOffer{
		Description:      "<p>Build <b>APIs</b></p><script>alert(1)</script>",
		Responsibilities: "  plain   text  ",
		Requirements:     "<ul><li>Go</li><li>SQL</li></ul>",
	})

	if o.Description != "Build APIs" {
		t.Errorf("Description = %q", o.Description)
	}
	if o.Responsibilities != "plain text" {
		t.Errorf("Responsibilities = %q", o.Responsibilities)
	}
	if o.Requirements != "Go\nSQL" {
		t.Errorf("Requirements = %q", o.Requirements)
	}
}

func TestSimpleNormalizerKeepsPlainText(t *testing.T) {
	n := NewSimpleNormalizer()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"generic type", "Experience with List<String> generics", "Experience with List<String> generics"},
		{"unterminated tag", "need a<b skills\nline two", "need a<b skills\nline two"},
		{"comparison", "salary > 40k and a < b", "salary > 40k and a < b"},
		{"multi-line", "line one\n  line   two\n\n\n\nline three\n", "line one\nline two\n\nline three"},
		{"plain entity", "x &amp; y", "x & y"},
		{"markup entity", "<p>x &amp; y</p>", "x & y"},
		{"break tags", "first<br>second<br/>third", "first\nsecond\nthird"},
		{"style block", "<style>p{color:red}</style>Hello", "Hello"},
		{"comment", "a<!-- hidden -->b", "ab"},
		{"bang text", "Urgent <!important> role", "Urgent <!important> role"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := n.Normalize(tt.in)
			if err != nil {
				t.Fatalf("Normalize(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizedDescriptionStillMatches(t *testing.T) {
	o := NormalizeOffer(NewSimpleNormalizer(), JobOffer{
		Title:       "Java Developer",
		Description: "Experience with List<String> generics",
		Visible:     true,
	})
	if got := Filter([]JobOffer{o}, "generics", ""); len(got) != 1 {
		t.Fatalf("Filter(generics) = %d offers, want 1 (description %q)", len(got), o.Description)
	}
}
