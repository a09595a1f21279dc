package chat

import (
	"context"
	"strings"
	"testing"

	"finchat/internal/config"
	"finchat/internal/prompt"
)

func testConfig() config.Config {
	cfg := config.DefaultConfig()
	// No credentials: the granite client reports token-not-set without any
	// network call, which is enough to exercise the full pipeline offline.
	return cfg
}

func TestRunRejectsEmptyQuestion(t *testing.T) {
	_, err := Run(context.Background(), testConfig(), Request{
		Question: "   ",
		Persona:  prompt.PersonaStudent,
		Backend:  "granite",
	})
	if err == nil {
		t.Fatal("Run accepted an empty question")
	}
}

func TestRunRejectsUnknownBackend(t *testing.T) {
	_, err := Run(context.Background(), testConfig(), Request{
		Question: "q",
		Persona:  prompt.PersonaStudent,
		Backend:  "gpt",
	})
	if err == nil || !strings.Contains(err.Error(), "unknown backend") {
		t.Fatalf("err = %v, want unknown backend", err)
	}
}

func TestRunWithoutIncomeOmitsBudget(t *testing.T) {
	res, err := Run(context.Background(), testConfig(), Request{
		Question: "How do I save money?",
		Persona:  prompt.PersonaStudent,
		Backend:  "granite",
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.BudgetSummary != "" {
		t.Fatalf("BudgetSummary = %q, want empty for income 0", res.BudgetSummary)
	}
	if !strings.Contains(res.Answer, "token not set") {
		t.Fatalf("Answer = %q, want unconfigured-client message", res.Answer)
	}
}

func TestRunWithIncomeComputesBudget(t *testing.T) {
	res, err := Run(context.Background(), testConfig(), Request{
		Question: "How should I budget?",
		Persona:  prompt.PersonaProfessional,
		Backend:  "granite",
		Income:   30000,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(res.BudgetSummary, "₹15,000.00") {
		t.Fatalf("BudgetSummary = %q, want essentials line", res.BudgetSummary)
	}
	if !strings.Contains(res.BudgetSummary, "₹6,000.00") {
		t.Fatalf("BudgetSummary = %q, want savings line", res.BudgetSummary)
	}
	if !strings.Contains(res.BudgetSummary, "₹9,000.00") {
		t.Fatalf("BudgetSummary = %q, want discretionary line", res.BudgetSummary)
	}
}

func TestRunWatsonUnconfigured(t *testing.T) {
	res, err := Run(context.Background(), testConfig(), Request{
		Question: "q",
		Persona:  prompt.PersonaStudent,
		Backend:  "watson",
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Answer != "Watson not configured." {
		t.Fatalf("Answer = %q, want Watson not configured.", res.Answer)
	}
}
