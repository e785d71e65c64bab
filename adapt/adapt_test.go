package adapt

import (
	"reflect"
	"testing"
)

func TestBytes(t *testing.T) {
	got := Bytes([]byte{0, 1, 255, 'a'})
	want := []int{0, 1, 255, 97}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Bytes() = %v, want %v", got, want)
	}
}

func TestString(t *testing.T) {
	got := String("ab")
	want := []int{97, 98}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("String() = %v, want %v", got, want)
	}
}

func TestSet(t *testing.T) {
	got := Set(map[int]struct{}{3: {}, 1: {}, 2: {}})
	want := []int{1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Set() = %v, want %v", got, want)
	}
}

func TestSetEmpty(t *testing.T) {
	got := Set(map[int]struct{}{})
	if len(got) != 0 {
		t.Fatalf("Set(empty) = %v, want empty", got)
	}
}
