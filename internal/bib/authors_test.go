package bib

import "testing"

func TestFormatAuthors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "single author is reversed",
			raw:  "Smith, John",
			want: "John Smith",
		},
		{
			name: "two authors join with and",
			raw:  "Smith, John and Doe, Jane",
			want: "John Smith and Jane Doe",
		},
		{
			name: "three authors use a serial comma",
			raw:  "A, B and C, D and E, F",
			want: "B A, D C, and F E",
		},
		{
			name: "four or more collapse to et al",
			raw:  "A, B and C, D and E, F and G, H",
			want: "B A et al",
		},
		{
			name: "name without comma stays as written",
			raw:  "John Smith",
			want: "John Smith",
		},
		{
			name: "mixed forms",
			raw:  "John Smith and Doe, Jane",
			want: "John Smith and Jane Doe",
		},
		{
			name: "suffix segment stays after the family name",
			raw:  "de Vries, Jr, Willem",
			want: "Willem de Vries Jr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatAuthors(tt.raw)
			if err != nil {
				t.Fatalf("FormatAuthors(%q) returned error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("FormatAuthors(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormatAuthorsEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", " and "} {
		if _, err := FormatAuthors(raw); err == nil {
			t.Errorf("FormatAuthors(%q) succeeded, want error", raw)
		}
	}
}
