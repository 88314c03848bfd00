package kb

import (
	"fmt"

	"github.com/gnolang/entail/internal/logic"
)

// Query is a parsed query together with its source text.
type Query struct {
	Source   string
	Sentence logic.Sentence
}

// Program is a compiled configuration: the conjoined knowledge and
// the parsed queries.
type Program struct {
	Name       string
	Knowledge  *logic.And
	Queries    []Query
	MaxSymbols int
}

// Compile parses every formula in the config. Knowledge entries that are
// structurally identical to an earlier entry are dropped.
func Compile(config *Config) (*Program, error) {
	seen := logic.NewSet()
	knowledge := logic.Must(logic.NewAnd())
	for i, src := range config.Knowledge {
		s, err := logic.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("knowledge[%d] %q: %w", i, src, err)
		}
		if !seen.Add(s) {
			continue
		}
		if err := knowledge.Add(s); err != nil {
			return nil, err
		}
	}

	queries := make([]Query, 0, len(config.Queries))
	for i, src := range config.Queries {
		s, err := logic.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("queries[%d] %q: %w", i, src, err)
		}
		queries = append(queries, Query{Source: src, Sentence: s})
	}

	return &Program{
		Name:       config.Name,
		Knowledge:  knowledge,
		Queries:    queries,
		MaxSymbols: config.MaxSymbols,
	}, nil
}
