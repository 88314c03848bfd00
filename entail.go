// Package entail is the public face of the propositional logic engine.
// It re-exports the sentence types, constructors, parser and model checker
// so that callers outside this module do not import internal packages.
package entail

import "github.com/gnolang/entail/internal/logic"

type (
	Sentence      = logic.Sentence
	Symbol        = logic.Symbol
	Not           = logic.Not
	And           = logic.And
	Or            = logic.Or
	Implication   = logic.Implication
	Biconditional = logic.Biconditional

	Model     = logic.Model
	SymbolSet = logic.SymbolSet

	Checker     = logic.Checker
	CheckConfig = logic.CheckConfig
	Table       = logic.Table

	LookupError = logic.LookupError
	ParseError  = logic.ParseError
)

var (
	ErrNotSentence    = logic.ErrNotSentence
	ErrNotInModel     = logic.ErrNotInModel
	ErrTooManySymbols = logic.ErrTooManySymbols
)

var (
	NewSymbol        = logic.NewSymbol
	NewNot           = logic.NewNot
	NewAnd           = logic.NewAnd
	NewOr            = logic.NewOr
	NewImplication   = logic.NewImplication
	NewBiconditional = logic.NewBiconditional
	NewChecker       = logic.NewChecker
	Validate         = logic.Validate
	Equal            = logic.Equal
	Hash             = logic.Hash
	Parse            = logic.Parse
	MustParse        = logic.MustParse
)

// Entails reports whether knowledge entails query.
func Entails(knowledge, query Sentence) (bool, error) {
	return logic.Entails(knowledge, query)
}
