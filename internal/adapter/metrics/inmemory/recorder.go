package inmemory

import (
	"sync"

	"agoraverse/internal/domain/econ"
)

type Snapshot struct {
	IntentTotal      uint64            `json:"intent_total"`
	IntentExecuted   uint64            `json:"intent_executed"`
	IntentBlocked    uint64            `json:"intent_blocked"`
	IntentFailed     uint64            `json:"intent_failed"`
	SkillSkips       map[string]uint64 `json:"skill_skips"`
	SkillTruncations map[string]uint64 `json:"skill_truncations"`
	AgentDefects     uint64            `json:"agent_defects"`
	Freezes          map[string]uint64 `json:"freezes"`
	Revivals         uint64            `json:"revivals"`
}

type Recorder struct {
	mu          sync.Mutex
	executed    uint64
	blocked     uint64
	failed      uint64
	skips       map[string]uint64
	truncations map[string]uint64
	defects     uint64
	freezes     map[string]uint64
	revivals    uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		skips:       map[string]uint64{},
		truncations: map[string]uint64{},
		freezes:     map[string]uint64{},
	}
}

func (r *Recorder) RecordIntent(status econ.IntentStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch status {
	case econ.IntentExecuted:
		r.executed++
	case econ.IntentBlocked:
		r.blocked++
	case econ.IntentFailed:
		r.failed++
	}
}

func (r *Recorder) RecordSkillSkip(skill string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skips[skill]++
}

func (r *Recorder) RecordSkillTruncation(skill string, dropped int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.truncations[skill] += uint64(dropped)
}

func (r *Recorder) RecordAgentDefect(string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defects++
}

func (r *Recorder) RecordFreeze(reason econ.FreezeReason) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.freezes[string(reason)]++
}

func (r *Recorder) RecordRevival() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revivals++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		IntentExecuted:   r.executed,
		IntentBlocked:    r.blocked,
		IntentFailed:     r.failed,
		IntentTotal:      r.executed + r.blocked + r.failed,
		SkillSkips:       make(map[string]uint64, len(r.skips)),
		SkillTruncations: make(map[string]uint64, len(r.truncations)),
		AgentDefects:     r.defects,
		Freezes:          make(map[string]uint64, len(r.freezes)),
		Revivals:         r.revivals,
	}
	for k, v := range r.skips {
		out.SkillSkips[k] = v
	}
	for k, v := range r.truncations {
		out.SkillTruncations[k] = v
	}
	for k, v := range r.freezes {
		out.Freezes[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
