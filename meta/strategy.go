package meta

import (
	"github.com/matpuk/rex/literal"
	"github.com/matpuk/rex/nfa"
	"github.com/matpuk/rex/prefilter"
	"github.com/matpuk/rex/syntax"
)

// Strategy represents the execution strategy for matching.
//
// Strategy selection is automatic based on pattern analysis.
type Strategy int

const (
	// UseNFA runs the PikeVM on every text.
	// Selected when no useful literal is guaranteed (e.g. `\d+`, "a|").
	UseNFA Strategy = iota

	// UsePrefilter rejects texts lacking a required literal, then runs the
	// PikeVM on the rest.
	// Selected for patterns like "(foo|bar)\d+".
	UsePrefilter

	// UseLiteral decides the match by set membership alone.
	// Selected for patterns that accept a finite set of literal strings,
	// like "gg(ac|bd)".
	UseLiteral

	// UseMatchAll accepts every text without looking at it.
	// Selected for the empty pattern.
	UseMatchAll
)

// String returns a human-readable representation of the strategy.
func (s Strategy) String() string {
	switch s {
	case UseNFA:
		return "NFA"
	case UsePrefilter:
		return "Prefilter"
	case UseLiteral:
		return "Literal"
	case UseMatchAll:
		return "MatchAll"
	default:
		return "Unknown"
	}
}

// selectStrategy picks a strategy and, where one is needed, its prefilter.
func selectStrategy(n *nfa.NFA, postfix syntax.Postfix, config Config) (Strategy, prefilter.Prefilter) {
	if n.MatchesEverything() {
		return UseMatchAll, nil
	}

	if !config.EnablePrefilter && !config.EnableLiteralMatch {
		return UseNFA, nil
	}

	extractor := literal.New(literal.ExtractorConfig{
		MaxLiterals:   config.MaxLiterals,
		MaxLiteralLen: literal.DefaultConfig().MaxLiteralLen,
	})
	seq := extractor.ExtractRequired(postfix)
	if seq.IsEmpty() {
		return UseNFA, nil
	}

	if config.EnableLiteralMatch && seq.AllComplete() {
		if pf := prefilter.New(seq); pf != nil && pf.IsComplete() {
			return UseLiteral, pf
		}
	}

	if !config.EnablePrefilter || seq.MinLen() < config.MinLiteralLen {
		return UseNFA, nil
	}

	if pf := prefilter.New(seq); pf != nil {
		return UsePrefilter, pf
	}
	return UseNFA, nil
}
