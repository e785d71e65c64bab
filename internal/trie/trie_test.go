package trie

import (
	"reflect"
	"testing"
)

func TestInsertGet(t *testing.T) {
	tr := New()
	tr.Insert([]int{1, 2, 3}, 42)
	v, ok := tr.Get([]int{1, 2, 3})
	if !ok || v != 42 {
		t.Fatalf("Get = (%d,%v), want (42,true)", v, ok)
	}
	if tr.Contains([]int{1, 2}) {
		t.Fatal("intermediate non-terminal key should not be Contains()")
	}
}

func TestInsertOverwrites(t *testing.T) {
	tr := New()
	tr.Insert([]int{1}, 1)
	tr.Insert([]int{1}, 2)
	v, ok := tr.Get([]int{1})
	if !ok || v != 2 {
		t.Fatalf("Get after overwrite = (%d,%v), want (2,true)", v, ok)
	}
	if tr.Size() != 1 {
		t.Fatalf("Size() = %d, want 1 (overwrite must not double count)", tr.Size())
	}
}

func TestEmptyKeyIsTrivialMatch(t *testing.T) {
	tr := New()
	tr.Insert(nil, NoToken)
	matched, value := tr.LongestPrefix([]int{5, 6})
	if len(matched) != 0 || value != NoToken {
		t.Fatalf("LongestPrefix = (%v,%d), want ([],NoToken)", matched, value)
	}
}

func TestLongestPrefixNoTerminalVisited(t *testing.T) {
	tr := New()
	matched, value := tr.LongestPrefix([]int{1, 2, 3})
	if matched != nil || value != NoToken {
		t.Fatalf("LongestPrefix on empty trie = (%v,%d), want (nil,NoToken)", matched, value)
	}
}

func TestLongestPrefixDeepest(t *testing.T) {
	tr := New()
	tr.Insert([]int{1}, 10)
	tr.Insert([]int{1, 2}, 20)
	matched, value := tr.LongestPrefix([]int{1, 2, 3})
	if !reflect.DeepEqual(matched, []int{1, 2}) || value != 20 {
		t.Fatalf("LongestPrefix = (%v,%d), want ([1 2],20)", matched, value)
	}
}

func TestLongestPrefixStopsAtMismatch(t *testing.T) {
	tr := New()
	tr.Insert([]int{1, 2, 3}, 99)
	matched, value := tr.LongestPrefix([]int{1, 2, 9})
	if matched != nil || value != NoToken {
		t.Fatalf("LongestPrefix = (%v,%d), want (nil,NoToken)", matched, value)
	}
}

func TestSize(t *testing.T) {
	tr := New()
	tr.Insert([]int{1}, 1)
	tr.Insert([]int{1, 2}, 2)
	tr.Insert([]int{3}, 3)
	if tr.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", tr.Size())
	}
}
