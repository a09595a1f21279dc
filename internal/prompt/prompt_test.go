package prompt

import (
	"strings"
	"testing"
)

func TestBuildContainsQuestionAndMarker(t *testing.T) {
	question := "How should I budget 30,000 per month?"

	for _, persona := range All {
		got := Build(question, persona)
		if !strings.Contains(got, question) {
			t.Fatalf("persona %s: prompt missing question text:\n%s", persona, got)
		}
		if !strings.HasSuffix(got, "Output:") {
			t.Fatalf("persona %s: prompt does not end with Output: marker:\n%s", persona, got)
		}
		if !strings.HasPrefix(got, "You are a helpful personal finance assistant.") {
			t.Fatalf("persona %s: prompt missing role statement:\n%s", persona, got)
		}
	}
}

func TestBuildPersonaSelectsTone(t *testing.T) {
	student := Build("q", PersonaStudent)
	professional := Build("q", PersonaProfessional)

	if student == professional {
		t.Fatal("student and professional prompts are identical")
	}
	if !strings.Contains(student, "Clear, friendly, simple.") {
		t.Fatalf("student prompt missing student tone:\n%s", student)
	}
	if !strings.Contains(professional, "Concise, professional, data-forward.") {
		t.Fatalf("professional prompt missing professional tone:\n%s", professional)
	}
}

func TestBuildUnknownPersonaFallsBackToStudent(t *testing.T) {
	if got, want := Build("q", Persona("ceo")), Build("q", PersonaStudent); got != want {
		t.Fatalf("unknown persona prompt = %q, want student prompt %q", got, want)
	}
}

func TestWithBudgetAppendsReferenceSection(t *testing.T) {
	p := Build("q", PersonaStudent)
	got := WithBudget(p, "summary line")

	if !strings.HasPrefix(got, p) {
		t.Fatal("WithBudget altered the base prompt")
	}
	if !strings.Contains(got, "Reference budget (income info):\nsummary line") {
		t.Fatalf("missing reference budget section:\n%s", got)
	}
}

func TestWithPreference(t *testing.T) {
	p := Build("q", PersonaStudent)

	if got := WithPreference(p, ""); got != p {
		t.Fatal("empty preference changed the prompt")
	}
	if got := WithPreference(p, "savings"); !strings.Contains(got, "optimize for: savings.") {
		t.Fatalf("preference missing from prompt:\n%s", got)
	}
}

func TestPersonaValid(t *testing.T) {
	if !PersonaStudent.Valid() || !PersonaProfessional.Valid() {
		t.Fatal("built-in personas reported invalid")
	}
	if Persona("ceo").Valid() {
		t.Fatal("unknown persona reported valid")
	}
}
