package animator

// FrameID identifies a requested frame callback.
type FrameID uint64

// Scheduler runs callbacks before the next repaint.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// FrameQueue is a Scheduler driven by the host's repaint. Each Flush runs
// the callbacks requested before it started; anything requested while
// flushing waits for the next Flush, so frames never overlap.
type FrameQueue struct {
	next    FrameID
	pending []frameRequest
	running []frameRequest
}

type frameRequest struct {
	id FrameID
	fn func()
}

func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.next++
	q.pending = append(q.pending, frameRequest{id: q.next, fn: fn})
	return q.next
}

// CancelFrame drops a request. Unknown or already-run ids are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i, r := range q.pending {
		if r.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	// The batch being flushed may still hold it.
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
			return
		}
	}
}

// Flush runs the due callbacks and returns how many ran.
func (q *FrameQueue) Flush() int {
	q.running, q.pending = q.pending, nil
	defer func() { q.running = nil }()

	ran := 0
	for i := range q.running {
		fn := q.running[i].fn
		if fn == nil {
			continue
		}
		q.running[i].fn = nil
		fn()
		ran++
	}
	return ran
}

func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
