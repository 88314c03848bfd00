// Package logic implements a small propositional-logic engine.
//
// Sentences are built from six variants: Symbol, Not, And, Or, Implication
// and Biconditional. Every variant can evaluate itself against a Model
// (a truth assignment), render itself as a formula, and report the symbols
// it references.
//
// Entailment is decided by brute-force model checking: every assignment
// over the union of the knowledge and query symbols is enumerated, and the
// knowledge entails the query iff no assignment makes the knowledge true
// and the query false.
//
// Out of scope:
//   - satisfiability solving beyond brute enumeration
//   - resolution or clause-normal-form reasoning
//   - large symbol sets (enumeration is exponential in the symbol count)
package logic
