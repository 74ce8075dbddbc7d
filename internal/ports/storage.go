package ports

// Storage persists computation history to durable storage. The backing store
// (bbolt) is project-scoped: each projectID gets its own namespace.
// Concurrent reads are safe; writes are serialized by the adapter.
//
// Crash safety: AppendRecord must be transactional. A crash mid-write must
// not corrupt previously committed records.
type Storage interface {
	// AppendRecord persists one computation record for a project.
	// Records are retained in insertion order.
	AppendRecord(projectID string, rec *Record) error

	// ListRecords retrieves the most recent records for a project, newest
	// first, up to limit (limit <= 0 means all). Returns nil, nil for a
	// fresh project.
	ListRecords(projectID string, limit int) ([]*Record, error)

	// DeleteProject removes all history for a project.
	// Idempotent: deleting a nonexistent project is not an error.
	DeleteProject(projectID string) error
}

// Record is one persisted computation: which operation ran, with what inputs,
// and what it produced. Inputs and outputs are flat name -> value maps so the
// store never needs to know the shape of any particular statistic.
type Record struct {
	Kind    string             `json:"kind"`    // "confidence", "assurance", "interval", ...
	At      int64              `json:"at"`      // unix timestamp
	Inputs  map[string]float64 `json:"inputs"`  // e.g. n, f, r, m
	Outputs map[string]float64 `json:"outputs"` // e.g. confidence, lo, hi
	Note    string             `json:"note,omitempty"`
}
