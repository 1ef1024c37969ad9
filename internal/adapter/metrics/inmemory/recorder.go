package inmemory

import "sync"

type Snapshot struct {
	ForgeTotal    uint64            `json:"forge_total"`
	ForgeSuccess  uint64            `json:"forge_success"`
	ForgeConflict uint64            `json:"forge_conflict"`
	ForgeFailure  uint64            `json:"forge_failure"`
	ByOperation   map[string]uint64 `json:"by_operation"`
}

type Recorder struct {
	mu       sync.Mutex
	success  uint64
	conflict uint64
	failure  uint64
	byOp     map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byOp: map[string]uint64{},
	}
}

func (r *Recorder) RecordSuccess(op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byOp[op]++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ForgeSuccess:  r.success,
		ForgeConflict: r.conflict,
		ForgeFailure:  r.failure,
		ForgeTotal:    r.success + r.conflict + r.failure,
		ByOperation:   make(map[string]uint64, len(r.byOp)),
	}
	for k, v := range r.byOp {
		out.ByOperation[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
