package commands

import (
	"sync"

	"github.com/jinzhu/copier"
)

const DefaultHistoryCapacity = 50

type historyEntry struct {
	cmd    Command
	record CommandRecord
}

// History is the bounded ledger of executed commands plus the redo stack.
// It only moves entries between stacks; invoking a command's Execute/Undo is
// the executor's job. A History belongs to exactly one executor; sharing one
// across executors needs external synchronization.
type History struct {
	mu       sync.Mutex
	capacity int
	executed []*historyEntry
	redo     []*historyEntry
}

func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &History{capacity: capacity}
}

// Push records a freshly executed command. Any pending redo entries are
// dropped: history never branches. Once capacity is exceeded the oldest
// entry is evicted; evicted commands are no longer reachable from either
// stack, so eviction cannot affect later undo/redo.
func (h *History) Push(cmd Command, record CommandRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.redo = nil
	h.executed = append(h.executed, &historyEntry{cmd: cmd, record: record})
	if len(h.executed) > h.capacity {
		h.executed = h.executed[len(h.executed)-h.capacity:]
	}
}

func (h *History) popExecuted() (*historyEntry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.executed) == 0 {
		return nil, false
	}
	e := h.executed[len(h.executed)-1]
	h.executed = h.executed[:len(h.executed)-1]
	return e, true
}

// restoreExecuted puts an entry back on top after a failed undo, leaving the
// redo stack untouched so repeated calls stay well-defined.
func (h *History) restoreExecuted(e *historyEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.executed = append(h.executed, e)
}

func (h *History) pushRedo(e *historyEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.redo = append(h.redo, e)
}

func (h *History) popRedo() (*historyEntry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redo) == 0 {
		return nil, false
	}
	e := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	return e, true
}

// appendExecuted re-files a redone entry without clearing the redo stack.
func (h *History) appendExecuted(e *historyEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.executed = append(h.executed, e)
	if len(h.executed) > h.capacity {
		h.executed = h.executed[len(h.executed)-h.capacity:]
	}
}

func (h *History) Size() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.executed)
}

func (h *History) RedoSize() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redo)
}

func (h *History) CanUndo() bool {
	return h.Size() > 0
}

func (h *History) CanRedo() bool {
	return h.RedoSize() > 0
}

func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.executed = nil
	h.redo = nil
}

// Records returns deep copies of the retained records, oldest first, so
// callers cannot mutate the ledger through the returned metadata maps.
func (h *History) Records() []CommandRecord {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]CommandRecord, 0, len(h.executed))
	for _, e := range h.executed {
		var rec CommandRecord
		if err := copier.CopyWithOption(&rec, &e.record, copier.Option{DeepCopy: true}); err != nil {
			rec = e.record
		}
		out = append(out, rec)
	}
	return out
}
