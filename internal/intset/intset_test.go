package intset

import "testing"

func TestMinAfterAdds(t *testing.T) {
	s := New()
	for _, v := range []int{5, 1, 3, 9, 0} {
		s.Add(v)
	}
	v, ok := s.Min()
	if !ok || v != 0 {
		t.Fatalf("Min() = (%d,%v), want (0,true)", v, ok)
	}
	if s.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", s.Len())
	}
}

func TestRemoveShiftsMin(t *testing.T) {
	s := New()
	s.Add(1)
	s.Add(2)
	s.Add(3)
	s.Remove(1)
	v, ok := s.Min()
	if !ok || v != 2 {
		t.Fatalf("Min() after removing 1 = (%d,%v), want (2,true)", v, ok)
	}
	if s.Contains(1) {
		t.Fatal("Contains(1) should be false after Remove")
	}
}

func TestEmptyMin(t *testing.T) {
	s := New()
	_, ok := s.Min()
	if ok {
		t.Fatal("Min() on empty set should report ok=false")
	}
}

func TestAddIdempotent(t *testing.T) {
	s := New()
	s.Add(7)
	s.Add(7)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after duplicate Add", s.Len())
	}
}

func TestRemoveThenReaddPreservesMin(t *testing.T) {
	s := New()
	s.Add(1)
	s.Add(2)
	s.Remove(1)
	s.Add(1)
	v, _ := s.Min()
	if v != 1 {
		t.Fatalf("Min() = %d, want 1 after remove-then-readd", v)
	}
}
