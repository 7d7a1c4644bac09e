package generator

import "fmt"

// TokenGenerator produces distinct tokens of the form _<prefix>_<n>_.
// The counter belongs to the generator instance, so two generators with the
// same prefix produce overlapping sequences.
type TokenGenerator struct {
	prefix  string
	counter int
}

// NewTokenGenerator returns a generator whose first token is _<prefix>_0_.
func NewTokenGenerator(prefix string) *TokenGenerator {
	return &TokenGenerator{prefix: prefix}
}

// Next returns the next token and advances the counter.
func (g *TokenGenerator) Next() string {
	token := fmt.Sprintf("_%s_%d_", g.prefix, g.counter)
	g.counter++
	return token
}

// Issued returns how many tokens have been handed out.
func (g *TokenGenerator) Issued() int {
	return g.counter
}
