// Package cmd implements the finchat CLI commands.
package cmd

import (
	"fmt"
	"os"

	"finchat/internal/chat"
	"finchat/internal/config"
	"finchat/internal/env"
	"finchat/internal/prompt"
	"finchat/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagPersona   string
	flagBackend   string
	flagIncome    float64
	flagOptimize  string
	flagNoHistory bool
)

var rootCmd = &cobra.Command{
	Use:   "finchat",
	Short: "Personal finance chatbot",
	Long:  "Ask personal finance questions against Granite (via the Hugging Face Inference API) or Watson Assistant.",
	RunE:  runChat,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		_ = env.Load(".env")
	})

	rootCmd.PersistentFlags().StringVarP(&flagPersona, "persona", "p", "", "Persona: student or professional")
	rootCmd.PersistentFlags().StringVarP(&flagBackend, "backend", "b", "", "Backend: granite or watson")
	rootCmd.PersistentFlags().Float64VarP(&flagIncome, "income", "i", 0, "Optional monthly income for a budget breakdown")
	rootCmd.PersistentFlags().StringVar(&flagOptimize, "optimize", "", "Optimize for: savings, growth, or safety")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Skip recording the exchange")
}

// buildRequest fills a chat request from flags, falling back to config
// defaults for persona and backend.
func buildRequest(cfg config.Config, question string) (chat.Request, error) {
	persona := flagPersona
	if persona == "" {
		persona = cfg.General.DefaultPersona
	}
	p := prompt.Persona(persona)
	if !p.Valid() {
		return chat.Request{}, fmt.Errorf("unknown persona %q (want student or professional)", persona)
	}

	be := flagBackend
	if be == "" {
		be = cfg.General.DefaultBackend
	}

	if flagIncome < 0 {
		return chat.Request{}, fmt.Errorf("income must not be negative")
	}

	return chat.Request{
		Question:    question,
		Persona:     p,
		Backend:     be,
		Income:      flagIncome,
		OptimizeFor: flagOptimize,
	}, nil
}

// recordExchange saves the exchange to history. Failures are reported on
// stderr but never affect the rendered answer.
func recordExchange(req chat.Request, res chat.Result) {
	if flagNoHistory {
		return
	}

	h, err := store.Open(store.DefaultPath(config.Dir()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "  warning: history unavailable: %v\n", err)
		return
	}
	defer h.Close()

	err = h.SaveExchange(store.Exchange{
		Backend:  req.Backend,
		Persona:  string(req.Persona),
		Question: req.Question,
		Answer:   res.Answer,
		Income:   req.Income,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "  warning: could not record exchange: %v\n", err)
	}
}
