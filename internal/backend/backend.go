// Package backend selects the remote conversational service for a request.
package backend

import (
	"context"
	"fmt"

	"finchat/internal/config"
	"finchat/internal/granite"
	"finchat/internal/watson"
)

// Responder answers a fully built prompt. Implementations absorb their own
// failures: the returned string is either generated text or a human-readable
// error description.
type Responder interface {
	Ask(ctx context.Context, prompt string) string
}

// Known backend names.
const (
	Granite = "granite"
	Watson  = "watson"
)

// All lists the selectable backends in display order.
var All = []string{Granite, Watson}

// For returns a configured Responder for the named backend.
func For(name string, cfg config.Config) (Responder, error) {
	switch name {
	case Granite:
		return granite.NewClient(granite.Options{
			Token:        cfg.Granite.APIToken,
			Model:        cfg.GraniteModel(),
			MaxNewTokens: 400,
		}), nil
	case Watson:
		return watson.NewClient(watson.Options{
			APIKey:      cfg.Watson.APIKey,
			URL:         cfg.Watson.URL,
			AssistantID: cfg.Watson.AssistantID,
		}), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want %s or %s)", name, Granite, Watson)
	}
}
