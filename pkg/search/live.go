package search

import (
	"context"
	"time"

	"github.com/mattsolo1/grove-palette/pkg/models"
)

// LiveSearch publishes results for a stream of query edits. Each Issue
// cancels the previous pending query, so only the latest query's results are
// ever published after it is issued.
//
// Non-empty queries wait for the corpus latency before publishing; empty
// queries publish immediately. Latency defaults to zero.
type LiveSearch struct {
	engine    *Engine
	debouncer Debouncer
	latency   map[models.Corpus]time.Duration
	fallback  time.Duration
	publish   func(Results)
}

// LiveOption configures a LiveSearch.
type LiveOption func(*LiveSearch)

// WithLatency sets the minimum perceived latency for every corpus without a
// specific setting.
func WithLatency(d time.Duration) LiveOption {
	return func(l *LiveSearch) {
		l.fallback = d
	}
}

// WithCorpusLatency sets the minimum perceived latency for one corpus.
func WithCorpusLatency(corpus models.Corpus, d time.Duration) LiveOption {
	return func(l *LiveSearch) {
		l.latency[corpus] = d
	}
}

// Live creates a LiveSearch that hands results to publish. publish may run on
// a timer goroutine.
func (e *Engine) Live(publish func(Results), opts ...LiveOption) *LiveSearch {
	l := &LiveSearch{
		engine:  e,
		latency: make(map[models.Corpus]time.Duration),
		publish: publish,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Latency returns the delay applied to non-empty queries on corpus.
func (l *LiveSearch) Latency(corpus models.Corpus) time.Duration {
	if d, ok := l.latency[corpus]; ok {
		return d
	}
	return l.fallback
}

// Issue supersedes any pending query with this one.
func (l *LiveSearch) Issue(ctx context.Context, query string, corpus models.Corpus, opts ...Option) {
	delay := time.Duration(0)
	if query != "" {
		delay = l.Latency(corpus)
	}
	l.debouncer.Schedule(ctx, delay, func() {
		l.publish(l.engine.Search(query, corpus, opts...))
	})
}

// Cancel drops the pending query without publishing anything.
func (l *LiveSearch) Cancel() {
	l.debouncer.Cancel()
}

// Pending reports whether a query is waiting to publish.
func (l *LiveSearch) Pending() bool {
	return l.debouncer.Pending()
}

// Wait blocks until pending timers have fired or been cancelled.
func (l *LiveSearch) Wait() {
	l.debouncer.Wait()
}
