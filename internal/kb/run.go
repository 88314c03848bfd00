package kb

import (
	"context"
	"io"
	"runtime"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gnolang/entail/internal/logic"
)

// Verdict classifies a query against the knowledge base.
type Verdict string

const (
	// Entailed means the knowledge entails the query.
	Entailed Verdict = "entailed"
	// Contradicted means the knowledge entails the negation of the query.
	Contradicted Verdict = "contradicted"
	// Unknown means the knowledge settles the query neither way.
	Unknown Verdict = "unknown"
)

// Result is the outcome of checking one query.
type Result struct {
	Query   string  `json:"query"`
	Formula string  `json:"formula"`
	Verdict Verdict `json:"verdict"`
	// Counterexample is a model of the knowledge in which the query is
	// false. It is nil when the query is entailed.
	Counterexample logic.Model `json:"counterexample,omitempty"`
}

// Report collects the results of one run.
type Report struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Knowledge  string        `json:"knowledge"`
	Consistent bool          `json:"consistent"`
	Results    []Result      `json:"results"`
	Elapsed    time.Duration `json:"elapsed"`
}

// AllEntailed reports whether every query was entailed.
func (r *Report) AllEntailed() bool {
	for _, res := range r.Results {
		if res.Verdict != Entailed {
			return false
		}
	}
	return true
}

// Options control how a program is run.
type Options struct {
	// Workers bounds the number of queries checked at once.
	// Zero uses runtime.NumCPU().
	Workers int
	// Progress, when non-nil, receives a progress bar.
	Progress io.Writer
	// Cache, when non-nil, is consulted before checking a query and
	// updated afterwards.
	Cache *Cache
}

// Run checks every query of the program against its knowledge.
// Queries are independent, so they are checked concurrently, each with its
// own Checker; a single check is always sequential.
func Run(ctx context.Context, logger *zap.Logger, prog *Program, opts Options) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	start := time.Now()
	config := logic.CheckConfig{MaxSymbols: prog.MaxSymbols}

	// An inconsistent knowledge base entails falsehood (the empty disjunction).
	inconsistent, err := logic.NewChecker(config, logger).Entails(prog.Knowledge, logic.Must(logic.NewOr()))
	if err != nil {
		return nil, err
	}
	if inconsistent {
		logger.Warn("knowledge base is inconsistent; every query is entailed", zap.String("name", prog.Name))
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(len(prog.Queries),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription(prog.Name),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	results := make([]Result, len(prog.Queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, q := range prog.Queries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := cachedCheck(opts.Cache, logic.NewChecker(config, logger), prog.Knowledge, q)
			if err != nil {
				logger.Error("Error checking query", zap.String("query", q.Source), zap.Error(err))
				return err
			}
			results[i] = res
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	report := &Report{
		ID:         ulid.Make().String(),
		Name:       prog.Name,
		Knowledge:  prog.Knowledge.Formula(),
		Consistent: !inconsistent,
		Results:    results,
		Elapsed:    time.Since(start),
	}
	logger.Info("knowledge base checked",
		zap.String("id", report.ID),
		zap.String("name", report.Name),
		zap.Int("queries", len(results)),
		zap.Duration("elapsed", report.Elapsed),
	)
	return report, nil
}

func cachedCheck(cache *Cache, c *logic.Checker, knowledge logic.Sentence, q Query) (Result, error) {
	if cache == nil {
		return checkQuery(c, knowledge, q)
	}
	if entry, ok := cache.Get(knowledge, q.Sentence); ok {
		return Result{
			Query:          q.Source,
			Formula:        q.Sentence.Formula(),
			Verdict:        entry.Verdict,
			Counterexample: entry.Counterexample,
		}, nil
	}
	res, err := checkQuery(c, knowledge, q)
	if err != nil {
		return res, err
	}
	cache.Set(knowledge, q.Sentence, res)
	return res, nil
}

func checkQuery(c *logic.Checker, knowledge logic.Sentence, q Query) (Result, error) {
	res := Result{Query: q.Source, Formula: q.Sentence.Formula()}

	counter, found, err := c.Counterexample(knowledge, q.Sentence)
	if err != nil {
		return res, err
	}
	if !found {
		res.Verdict = Entailed
		return res, nil
	}
	res.Counterexample = counter

	negated, err := logic.NewNot(q.Sentence)
	if err != nil {
		return res, err
	}
	contradicted, err := c.Entails(knowledge, negated)
	if err != nil {
		return res, err
	}
	if contradicted {
		res.Verdict = Contradicted
	} else {
		res.Verdict = Unknown
	}
	return res, nil
}
