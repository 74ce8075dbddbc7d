// Package app wires the engines to storage and file watching, and runs
// whole-file analyses: given a set of sample measurements, compute the
// configured quantile, tolerance, and assurance intervals plus the mean
// interval, and record the outcome to history.
package app

import (
	"time"

	"github.com/rkeating/reli/internal/domain/binomial"
	"github.com/rkeating/reli/internal/domain/orderstat"
	"github.com/rkeating/reli/internal/ports"
)

// Service runs analyses and records them to a project's history store.
// Store may be nil, in which case nothing is recorded.
type Service struct {
	Binomial *binomial.Engine
	Order    *orderstat.Engine
	Store    ports.Storage
	Project  string
	diag     ports.Diagnostics
}

// NewService wires a Service. A nil diag falls back to a no-op sink.
func NewService(b *binomial.Engine, o *orderstat.Engine, store ports.Storage, project string, diag ports.Diagnostics) *Service {
	if diag == nil {
		diag = ports.NopDiagnostics{}
	}
	return &Service{Binomial: b, Order: o, Store: store, Project: project, diag: diag}
}

// IntervalResult is one interval statistic within a report. Err is nil on
// success, or explains why the statistic could not be computed (usually
// ErrUnsatisfiable at the current sample size).
type IntervalResult struct {
	Places orderstat.Interval
	Bounds orderstat.Bounds
	Err    error
}

// Report is the outcome of analyzing one sample set.
type Report struct {
	N         int
	Settings  Settings
	Quantile  IntervalResult // bracket for Settings.Quantile at Settings.Confidence
	Tolerance IntervalResult // middle Settings.Fraction at Settings.Confidence
	Assurance IntervalResult // self-consistent band at Settings.Assurance
	Mean      orderstat.Bounds
	MeanErr   error
}

// Analyze computes every configured interval statistic over the samples.
// Individual statistics may fail (too few samples for the requested
// confidence) without failing the report; each carries its own error.
func (s *Service) Analyze(samples []float64, cfg Settings) *Report {
	rep := &Report{N: len(samples), Settings: cfg}

	rep.Quantile.Places, rep.Quantile.Err = s.Order.QuantileIntervalPlaces(len(samples), cfg.Quantile, cfg.Confidence)
	if rep.Quantile.Err == nil {
		rep.Quantile.Bounds, rep.Quantile.Err = s.Order.QuantileIntervalOf(cfg.Quantile, cfg.Confidence, samples)
	}

	rep.Tolerance.Places, rep.Tolerance.Err = s.Order.ToleranceIntervalPlaces(len(samples), cfg.Fraction, cfg.Confidence)
	if rep.Tolerance.Err == nil {
		rep.Tolerance.Bounds, rep.Tolerance.Err = s.Order.ToleranceIntervalOf(cfg.Fraction, cfg.Confidence, samples)
	}

	rep.Assurance.Places, rep.Assurance.Err = s.Order.AssuranceIntervalPlaces(len(samples), cfg.Assurance)
	if rep.Assurance.Err == nil {
		rep.Assurance.Bounds, rep.Assurance.Err = s.Order.AssuranceIntervalOf(cfg.Assurance, samples)
	}

	rep.Mean, rep.MeanErr = s.Order.MeanInterval(cfg.Confidence, samples)

	s.record(rep)
	return rep
}

// record persists a report to history, best effort: the results are already
// in the caller's hands, so a storage failure only logs.
func (s *Service) record(rep *Report) {
	if s.Store == nil {
		return
	}
	rec := &ports.Record{
		Kind: "analyze",
		At:   time.Now().Unix(),
		Inputs: map[string]float64{
			"n":          float64(rep.N),
			"quantile":   rep.Settings.Quantile,
			"confidence": rep.Settings.Confidence,
			"fraction":   rep.Settings.Fraction,
			"assurance":  rep.Settings.Assurance,
		},
		Outputs: map[string]float64{},
	}
	if rep.Quantile.Err == nil {
		rec.Outputs["quantile_lo"] = rep.Quantile.Bounds.Lo
		rec.Outputs["quantile_hi"] = rep.Quantile.Bounds.Hi
	}
	if rep.Tolerance.Err == nil {
		rec.Outputs["tolerance_lo"] = rep.Tolerance.Bounds.Lo
		rec.Outputs["tolerance_hi"] = rep.Tolerance.Bounds.Hi
	}
	if rep.Assurance.Err == nil {
		rec.Outputs["assurance_lo"] = rep.Assurance.Bounds.Lo
		rec.Outputs["assurance_hi"] = rep.Assurance.Bounds.Hi
	}
	if rep.MeanErr == nil {
		rec.Outputs["mean_lo"] = rep.Mean.Lo
		rec.Outputs["mean_hi"] = rep.Mean.Hi
	}
	if err := s.Store.AppendRecord(s.Project, rec); err != nil {
		s.diag.Error("history append failed", "err", err)
	}
}

// RecordQuery persists a single point computation (confidence, reliability,
// assurance) to history. Best effort, same as record.
func (s *Service) RecordQuery(kind string, inputs, outputs map[string]float64) {
	if s.Store == nil {
		return
	}
	rec := &ports.Record{Kind: kind, At: time.Now().Unix(), Inputs: inputs, Outputs: outputs}
	if err := s.Store.AppendRecord(s.Project, rec); err != nil {
		s.diag.Error("history append failed", "kind", kind, "err", err)
	}
}
