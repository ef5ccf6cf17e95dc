package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	got, err := SanitizeFileName(" reports/2024\\q1.pdf ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "reports_2024_q1.pdf" {
		t.Fatalf("unexpected name %q", got)
	}
	if _, err := SanitizeFileName("../etc/passwd"); err == nil {
		t.Fatalf("expected traversal to be rejected")
	}
}

func TestSlugFileName(t *testing.T) {
	cases := map[string]string{
		"Jane Doe - Data Scientist": "jane_doe_data_scientist.pdf",
		"  ":                        "document.pdf",
		"Cover Letter: José!":       "cover_letter_josé.pdf",
	}
	for title, want := range cases {
		if got := SlugFileName(title, ".pdf"); got != want {
			t.Fatalf("SlugFileName(%q) = %q, want %q", title, got, want)
		}
	}
	if got := SlugFileName("Résumé", ""); got != "résumé" {
		t.Fatalf("unexpected slug without extension: %q", got)
	}
}
