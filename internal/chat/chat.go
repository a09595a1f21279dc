// Package chat orchestrates one question/answer round trip.
package chat

import (
	"context"
	"fmt"
	"strings"

	"finchat/internal/backend"
	"finchat/internal/budget"
	"finchat/internal/config"
	"finchat/internal/prompt"
)

// Request carries the inputs for one ask.
type Request struct {
	Question    string
	Persona     prompt.Persona
	Backend     string
	Income      float64 // 0 means not provided
	OptimizeFor string  // optional: savings, growth, safety
}

// Result is the outcome of one ask. Answer is always set: either generated
// text or the client's error description.
type Result struct {
	Answer        string
	BudgetSummary string // empty when no income was provided
}

// Run builds the prompt, dispatches to the selected backend, and computes the
// standalone budget summary when income was provided. Exactly one outbound
// call is made per invocation.
func Run(ctx context.Context, cfg config.Config, req Request) (Result, error) {
	if strings.TrimSpace(req.Question) == "" {
		return Result{}, fmt.Errorf("question must not be empty")
	}

	responder, err := backend.For(req.Backend, cfg)
	if err != nil {
		return Result{}, err
	}

	p := prompt.Build(req.Question, req.Persona)
	p = prompt.WithPreference(p, req.OptimizeFor)

	var res Result
	if req.Income > 0 {
		res.BudgetSummary = budget.DefaultSummary(req.Income, cfg.Display.Currency)
		p = prompt.WithBudget(p, res.BudgetSummary)
	}

	res.Answer = responder.Ask(ctx, p)
	return res, nil
}
