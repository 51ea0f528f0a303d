package prompts

import (
	"strings"
	"testing"
)

func TestPathSuggestions(t *testing.T) {
	got := PathSuggestions("Learn Rust")
	if !strings.HasPrefix(got, "\n            You are an intelligent educational assistant") {
		t.Fatalf("unexpected prefix: %q", got[:60])
	}
	if !strings.Contains(got, `tailored to the learning path titled "Learn Rust". `+"\n") {
		t.Fatalf("title not embedded: %q", got)
	}
	for _, field := range []string{`"suggestedCourses"`, `"tutorials"`, `"exercises"`, `"goals"`} {
		if !strings.Contains(got, field) {
			t.Fatalf("missing field %s", field)
		}
	}
	if !strings.HasSuffix(got, "} without any additional text or explanations.") {
		t.Fatalf("unexpected suffix: %q", got[len(got)-60:])
	}
	if strings.Contains(got, "%TITLE%") {
		t.Fatalf("placeholder left behind")
	}
}

func TestPathSuggestionsTitleWithPlaceholderText(t *testing.T) {
	// A title containing placeholder-like text is inserted once, literally.
	got := PathSuggestions("%TITLE%")
	if strings.Count(got, "%TITLE%") != 1 {
		t.Fatalf("expected the literal title once: %q", got)
	}
}

func TestSkillSuggestions(t *testing.T) {
	got := SkillSuggestions("Data Engineer", "CS 101")
	want := `You are an intelligent educational assistant designed to help users generate a list of skills and brief descriptions required for the job "Data Engineer" or the university course "CS 101" in the current day and time.` + "\n" +
		"          Return only valid JSON in the following format: \n" +
		"            {\n" +
		`              "skills": ["Skill 1", "Skill 2"],` + "\n" +
		`              "descriptions": ["Description 1", "Description 2"]` + "\n" +
		"            } without any additional text or explanations."
	if got != want {
		t.Fatalf("prompt mismatch:\n got: %q\nwant: %q", got, want)
	}
}
