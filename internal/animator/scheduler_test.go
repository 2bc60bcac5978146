package animator

import "testing"

func TestFrameQueueDefersRequestsMadeDuringFlush(t *testing.T) {
	q := &FrameQueue{}
	var order []string

	q.RequestFrame(func() {
		order = append(order, "a")
		q.RequestFrame(func() { order = append(order, "c") })
	})
	q.RequestFrame(func() { order = append(order, "b") })

	if ran := q.Flush(); ran != 2 {
		t.Fatalf("first flush ran %d, want 2", ran)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("order after first flush = %v", order)
	}
	if ran := q.Flush(); ran != 1 || order[2] != "c" {
		t.Fatalf("second flush ran %d, order %v", ran, order)
	}
}

func TestFrameQueueCancel(t *testing.T) {
	q := &FrameQueue{}
	called := false
	id := q.RequestFrame(func() { called = true })
	q.CancelFrame(id)
	q.CancelFrame(id)
	q.CancelFrame(999)

	if q.Pending() != 0 {
		t.Errorf("pending = %d, want 0", q.Pending())
	}
	if q.Flush(); called {
		t.Error("cancelled callback ran")
	}
}

func TestFrameQueueCancelWithinSameFlush(t *testing.T) {
	q := &FrameQueue{}
	var second FrameID
	ran := map[string]bool{}

	q.RequestFrame(func() {
		ran["first"] = true
		q.CancelFrame(second)
	})
	second = q.RequestFrame(func() { ran["second"] = true })

	if n := q.Flush(); n != 1 {
		t.Errorf("flush ran %d, want 1", n)
	}
	if !ran["first"] || ran["second"] {
		t.Errorf("ran = %v, want only first", ran)
	}
}
