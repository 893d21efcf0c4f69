package pseries

import "testing"

func TestMemoStreamCachesEachIndexOnce(t *testing.T) {
	calls := 0
	i := 0
	s := newMemoStream(func() (int, bool) {
		calls++
		i++
		return i, true
	})

	c1 := s.openCursor()
	c2 := s.openCursor()

	if v, ok := c1.next(); !ok || v != 1 {
		t.Fatalf("c1.next() = %d, %v; want 1, true", v, ok)
	}
	if v, ok := c1.next(); !ok || v != 2 {
		t.Fatalf("c1.next() = %d, %v; want 2, true", v, ok)
	}
	if v, ok := c2.next(); !ok || v != 1 {
		t.Fatalf("c2.next() = %d, %v; want 1, true (shared cache)", v, ok)
	}
	if calls != 2 {
		t.Fatalf("producer called %d times, want 2 (second cursor should hit cache)", calls)
	}
}

func TestMemoStreamExhaustion(t *testing.T) {
	i := 0
	s := newMemoStream(func() (int, bool) {
		if i >= 2 {
			return 0, false
		}
		i++
		return i, true
	})

	c := s.openCursor()
	if v, ok := c.next(); !ok || v != 1 {
		t.Fatalf("first next() = %d, %v; want 1, true", v, ok)
	}
	if v, ok := c.next(); !ok || v != 2 {
		t.Fatalf("second next() = %d, %v; want 2, true", v, ok)
	}
	if _, ok := c.next(); ok {
		t.Fatalf("third next() should report exhaustion")
	}
	n, exhausted := s.lenIfExhausted()
	if !exhausted || n != 2 {
		t.Fatalf("lenIfExhausted() = %d, %v; want 2, true", n, exhausted)
	}
}

func TestMemoStreamReentrantProducerDoesNotDeadlock(t *testing.T) {
	// Simulates a self-referential producer reading an earlier,
	// already-cached index of its own stream while producing a later one.
	var s *memoStream[int]
	var cur *cursor[int]
	n := 0
	s = newMemoStream(func() (int, bool) {
		n++
		if n == 1 {
			return 1, true
		}
		prev, _ := cur.next() // reentrant read of index n-2, already cached
		return prev + 1, true
	})
	cur = s.openCursor()

	readCur := s.openCursor()
	for i, want := range []int{1, 2, 3, 4} {
		v, ok := readCur.next()
		if !ok || v != want {
			t.Fatalf("index %d = %d, %v; want %d, true", i, v, ok, want)
		}
	}
}
