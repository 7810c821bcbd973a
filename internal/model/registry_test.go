package model

import (
	"strings"
	"testing"
)

func TestProfilesOrderAndCount(t *testing.T) {
	got := Profiles()
	want := []string{"OpenAI-GPT", "Google-Gemini", "Claude"}
	if len(got) != len(want) {
		t.Fatalf("profiles: got %d, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("profile %d: got %s, want %s", i, got[i].Name, name)
		}
	}
}

func TestProfilesReturnsCopy(t *testing.T) {
	first := Profiles()
	first[0].Name = "mutated"
	if Profiles()[0].Name != "OpenAI-GPT" {
		t.Error("mutating the returned slice leaked into the registry")
	}
}

func TestProfileFor(t *testing.T) {
	p, err := ProfileFor("Google-Gemini")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.ProcessJavaScript {
		t.Error("Google-Gemini should process JavaScript")
	}
	if !strings.Contains(p.UserAgent, "Google-Extended") {
		t.Errorf("user agent should carry the Google-Extended token, got %q", p.UserAgent)
	}

	if _, err := ProfileFor("Bingbot"); err == nil {
		t.Error("expected an error for an unregistered crawler")
	}
}

func TestProfileUserAgentsDistinct(t *testing.T) {
	seen := make(map[string]string)
	for _, p := range Profiles() {
		if other, dup := seen[p.UserAgent]; dup {
			t.Errorf("%s and %s share a user agent", p.Name, other)
		}
		seen[p.UserAgent] = p.Name
		if p.Timeout <= 0 {
			t.Errorf("%s has no timeout", p.Name)
		}
	}
}

func TestImpactWeightOrdering(t *testing.T) {
	if !(ImpactHigh.Weight() > ImpactMedium.Weight() && ImpactMedium.Weight() > ImpactLow.Weight()) {
		t.Errorf("impact weights not strictly ordered: high=%d medium=%d low=%d",
			ImpactHigh.Weight(), ImpactMedium.Weight(), ImpactLow.Weight())
	}
}

func TestH1Count(t *testing.T) {
	content := ExtractedContent{Headings: []Heading{
		{Level: 1, Text: "Main"},
		{Level: 2, Text: "Sub"},
		{Level: 1, Text: "Second main"},
	}}
	if got := content.H1Count(); got != 2 {
		t.Errorf("H1Count: got %d, want 2", got)
	}
}
