package core

import (
	"fmt"
	"log/slog"
	"strings"

	"shortlist/pkg/common"
	"shortlist/pkg/config"
	"shortlist/pkg/core/avl"
	"shortlist/pkg/core/memory"
	"shortlist/pkg/core/structure"
	"shortlist/pkg/monitor"
)

// NewIndex builds the index named by cfg.Kind. Rotations of an AVL index
// are reported to stats when stats is non-nil.
func NewIndex(cfg config.IndexConfig, stats *monitor.WorkloadStats) (Index, error) {
	switch strings.ToLower(cfg.Kind) {
	case "", "avl":
		t := avl.New()
		if stats != nil {
			t.SetObserver(stats)
		}
		return t, nil
	case "btree":
		degree := cfg.BTreeDegree
		if degree < 2 {
			degree = 32
		}
		return memory.NewMemTable(degree), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIndexKind, cfg.Kind)
	}
}

// Shortlist is what the menu layer talks to. It wraps one Index with a tag
// filter, workload counters and logging.
type Shortlist struct {
	index  Index
	filter *structure.TagFilter
	stats  *monitor.WorkloadStats
	logger *slog.Logger
}

func NewShortlist(cfg *config.Config, logger *slog.Logger) (*Shortlist, error) {
	if logger == nil {
		logger = slog.Default()
	}
	stats := monitor.NewWorkloadStats()
	idx, err := NewIndex(cfg.Index, stats)
	if err != nil {
		return nil, err
	}
	s := &Shortlist{
		index:  idx,
		filter: structure.NewTagFilter(cfg.Filter.ExpectedTags, cfg.Filter.FalsePositive),
		stats:  stats,
		logger: logger,
	}
	logger.Debug("index ready", "type", idx.Type())
	return s, nil
}

// Seed inserts fixture records, typically config.Seed.
func (s *Shortlist) Seed(recs []common.Record) {
	for _, rec := range recs {
		s.Insert(rec)
	}
	s.logger.Info("seeded candidates", "count", len(recs), "index", s.index.Type())
}

func (s *Shortlist) Insert(rec common.Record) {
	s.index.Insert(rec)
	s.filter.Add(rec.Tag)
	s.stats.RecordInsert()
	s.logger.Debug("candidate added", "record", rec.String())
}

// Ascending lists candidates lowest score first.
func (s *Shortlist) Ascending() []common.Record {
	s.stats.RecordDump()
	return s.index.Ascending()
}

// Descending lists candidates highest score first.
func (s *Shortlist) Descending() []common.Record {
	s.stats.RecordDump()
	return s.index.Descending()
}

func (s *Shortlist) SearchByTag(tag string) []common.Record {
	s.stats.RecordSearch()
	if !s.filter.MayContain(tag) {
		s.stats.RecordFilterSkip()
		s.logger.Debug("tag never inserted", "tag", tag)
		return []common.Record{}
	}
	return s.index.SearchByTag(tag)
}

func (s *Shortlist) IsEmpty() bool {
	return s.index.IsEmpty()
}

func (s *Shortlist) Len() int {
	return s.index.Len()
}

func (s *Shortlist) IndexType() string {
	return s.index.Type()
}

func (s *Shortlist) Stats() map[string]interface{} {
	out := s.stats.Snapshot()
	for k, v := range s.filter.Stats() {
		out[k] = v
	}
	out["index_type"] = s.index.Type()
	out["records"] = s.index.Len()
	if t, ok := s.index.(*avl.Tree); ok {
		out["tree_height"] = t.Height()
	}
	return out
}

func (s *Shortlist) Workload() *monitor.WorkloadStats {
	return s.stats
}
