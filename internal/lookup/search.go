package lookup

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/nitheesb/personal-calorie-tracker/internal/model"
)

type Phase int

const (
	PhaseLocal Phase = iota + 1
	PhaseMerged
)

func (p Phase) String() string {
	switch p {
	case PhaseLocal:
		return "local"
	case PhaseMerged:
		return "merged"
	default:
		return "unknown"
	}
}

// Batch is one presentation of search results. A merged batch always starts
// with the local batch of the same generation.
type Batch struct {
	Generation uint64
	Phase      Phase
	Results    []model.NutrientRecord
}

// Search is an in-flight two-phase search.
type Search struct {
	Query      string
	Generation uint64
	Local      []model.NutrientRecord

	batches chan Batch
}

// Batches yields the local batch, then the merged batch if this search is
// still the latest when the remote phase finishes. The channel is closed after
// the last batch.
func (s *Search) Batches() <-chan Batch {
	return s.batches
}

// Latest drains the search and returns the last batch delivered.
func (s *Search) Latest() Batch {
	var last Batch
	for b := range s.batches {
		last = b
	}
	return last
}

// Search starts a two-phase search. The local batch is ready before Search
// returns; the remote phase runs in the background and is discarded if another
// Search starts before it resolves.
func (s *Service) Search(ctx context.Context, query string) *Search {
	s.deliverMu.Lock()
	gen := s.generation.Add(1)
	s.deliverMu.Unlock()
	local := s.SearchLocal(query)
	search := &Search{
		Query:      query,
		Generation: gen,
		Local:      local,
		batches:    make(chan Batch, 2),
	}
	search.batches <- Batch{Generation: gen, Phase: PhaseLocal, Results: local}
	if strings.TrimSpace(query) == "" {
		close(search.batches)
		return search
	}

	go func() {
		defer close(search.batches)
		remote := s.SearchRemote(ctx, query)
		if !s.deliver(search.batches, Batch{Generation: gen, Phase: PhaseMerged, Results: Merge(local, remote)}) {
			s.log.Debug("discarding superseded search",
				zap.String("query", query),
				zap.Uint64("generation", gen),
				zap.Uint64("latest", s.generation.Load()),
			)
		}
	}()
	return search
}

// deliver sends b only while its generation is the latest. The check and the
// send share a lock with generation issuance, so a Search started after the
// check is never preceded by a stale delivery. ch must have room for b.
func (s *Service) deliver(ch chan<- Batch, b Batch) bool {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()
	if !s.IsCurrent(b.Generation) {
		return false
	}
	ch <- b
	return true
}

// IsCurrent reports whether gen is the most recently issued search generation.
func (s *Service) IsCurrent(gen uint64) bool {
	return s.generation.Load() == gen
}
