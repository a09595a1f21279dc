// Package prompt assembles the instruction sent to a conversational backend.
package prompt

import "fmt"

// Persona selects the tone and depth of the generated answer.
type Persona string

const (
	PersonaStudent      Persona = "student"
	PersonaProfessional Persona = "professional"
)

// All lists the supported personas in display order.
var All = []Persona{PersonaStudent, PersonaProfessional}

// Valid reports whether p is a known persona.
func (p Persona) Valid() bool {
	return p == PersonaStudent || p == PersonaProfessional
}

const (
	studentTone  = "Clear, friendly, simple. Define financial terms in plain English and give short examples."
	studentDepth = "Provide practical steps a student can follow and a short sample monthly budget table."

	professionalTone  = "Concise, professional, data-forward. Use precise terminology and include numeric examples where helpful."
	professionalDepth = "Provide trade-offs and a recommended allocation by percentage if relevant."
)

// Build formats the user question into a full instruction string. Personas
// other than professional fall back to the student voice. Empty questions are
// rejected by callers, not here.
func Build(question string, persona Persona) string {
	tone, depth := studentTone, studentDepth
	if persona == PersonaProfessional {
		tone, depth = professionalTone, professionalDepth
	}
	return fmt.Sprintf("You are a helpful personal finance assistant. %s %s\n\nUser question: %s\n\nOutput:",
		tone, depth, question)
}

// WithBudget appends a reference budget section to an already built prompt.
func WithBudget(p, summary string) string {
	return p + "\n\nReference budget (income info):\n" + summary
}

// WithPreference appends a one-line optimization preference to the prompt.
// An empty preference leaves the prompt unchanged.
func WithPreference(p, optimizeFor string) string {
	if optimizeFor == "" {
		return p
	}
	return p + "\n\nThe user wants to optimize for: " + optimizeFor + "."
}
