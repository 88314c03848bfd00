package logic

import (
	"fmt"

	"go.uber.org/zap"
)

// CheckConfig holds configuration for a Checker.
type CheckConfig struct {
	// MaxSymbols bounds the number of distinct symbols a single check may
	// enumerate over. Zero means no limit.
	MaxSymbols int
}

// DefaultConfig returns the default checker configuration.
func DefaultConfig() CheckConfig {
	return CheckConfig{MaxSymbols: 0}
}

// Stats counts the work done by a Checker.
type Stats struct {
	Checks int // number of top-level checks
	Leaves int // complete assignments visited
}

// Checker decides entailment by enumerating truth assignments.
// A Checker is not safe for concurrent use; give each goroutine its own.
type Checker struct {
	config CheckConfig
	logger *zap.Logger
	stats  Stats
}

// NewChecker creates a checker. A nil logger disables logging.
func NewChecker(config CheckConfig, logger *zap.Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{config: config, logger: logger}
}

// Stats returns the work counters accumulated so far.
func (c *Checker) Stats() Stats {
	return c.stats
}

// Entails reports whether knowledge entails query: query is true in every
// model in which knowledge is true.
func Entails(knowledge, query Sentence) (bool, error) {
	return NewChecker(DefaultConfig(), nil).Entails(knowledge, query)
}

// Entails reports whether knowledge entails query.
func (c *Checker) Entails(knowledge, query Sentence) (bool, error) {
	_, found, err := c.Counterexample(knowledge, query)
	if err != nil {
		return false, err
	}
	return !found, nil
}

// Counterexample searches for a model in which knowledge is true and query
// is false. It returns that model and true if one exists; otherwise knowledge
// entails query and it returns nil and false.
func (c *Checker) Counterexample(knowledge, query Sentence) (Model, bool, error) {
	if _, err := Validate(knowledge); err != nil {
		return nil, false, fmt.Errorf("knowledge: %w", err)
	}
	if _, err := Validate(query); err != nil {
		return nil, false, fmt.Errorf("query: %w", err)
	}

	// The full symbol set must be known before branching so that every
	// leaf model assigns every symbol either sentence can reach.
	symbols := knowledge.Symbols().Union(query.Symbols()).Sorted()
	if err := c.checkLimit(len(symbols)); err != nil {
		return nil, false, err
	}

	c.stats.Checks++
	before := c.stats.Leaves

	var witness Model
	complete, err := c.enumerate(symbols, Model{}, func(m Model) (bool, error) {
		holds, err := knowledge.Evaluate(m)
		if err != nil {
			return false, err
		}
		if !holds {
			return true, nil
		}
		q, err := query.Evaluate(m)
		if err != nil {
			return false, err
		}
		if !q {
			witness = m
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, false, err
	}

	c.logger.Debug("model check",
		zap.String("knowledge", knowledge.Formula()),
		zap.String("query", query.Formula()),
		zap.Int("symbols", len(symbols)),
		zap.Int("leaves", c.stats.Leaves-before),
		zap.Bool("entailed", complete),
	)

	if complete {
		return nil, false, nil
	}
	return witness, true, nil
}

// Equivalent reports whether a and b have the same truth value in every
// model over their symbols. When they differ it also returns a model that
// tells them apart.
func (c *Checker) Equivalent(a, b Sentence) (bool, Model, error) {
	iff, err := NewBiconditional(a, b)
	if err != nil {
		return false, nil, err
	}
	witness, found, err := c.Counterexample(Must(NewAnd()), iff)
	if err != nil {
		return false, nil, err
	}
	return !found, witness, nil
}

// Row is one line of a truth table.
type Row struct {
	Model  Model
	Values []bool
}

// Table is a truth table over the union of the symbols of its sentences.
type Table struct {
	Symbols   []string
	Sentences []Sentence
	Rows      []Row
}

// TruthTable evaluates every sentence in every model over their combined
// symbols. Rows are ordered with true assignments before false, symbols
// taken in lexical order.
func (c *Checker) TruthTable(sentences ...Sentence) (*Table, error) {
	symbols := NewSymbolSet()
	for i, s := range sentences {
		if _, err := Validate(s); err != nil {
			return nil, fmt.Errorf("sentence %d: %w", i, err)
		}
		symbols = symbols.Union(s.Symbols())
	}
	names := symbols.Sorted()
	if err := c.checkLimit(len(names)); err != nil {
		return nil, err
	}

	c.stats.Checks++
	table := &Table{Symbols: names, Sentences: sentences}
	_, err := c.enumerate(names, Model{}, func(m Model) (bool, error) {
		row := Row{Model: m, Values: make([]bool, len(sentences))}
		for i, s := range sentences {
			v, err := s.Evaluate(m)
			if err != nil {
				return false, err
			}
			row.Values[i] = v
		}
		table.Rows = append(table.Rows, row)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

func (c *Checker) checkLimit(n int) error {
	if c.config.MaxSymbols > 0 && n > c.config.MaxSymbols {
		return fmt.Errorf("%w: %d symbols exceeds limit of %d", ErrTooManySymbols, n, c.config.MaxSymbols)
	}
	return nil
}

// enumerate visits every complete assignment of remaining on top of model,
// depth first. Each branch extends its own copy of the model. visit returns
// false to stop the search; enumerate then returns false as well.
func (c *Checker) enumerate(remaining []string, model Model, visit func(Model) (bool, error)) (bool, error) {
	if len(remaining) == 0 {
		c.stats.Leaves++
		return visit(model)
	}

	p, rest := remaining[0], remaining[1:]
	ok, err := c.enumerate(rest, model.With(p, true), visit)
	if err != nil || !ok {
		return ok, err
	}
	return c.enumerate(rest, model.With(p, false), visit)
}
