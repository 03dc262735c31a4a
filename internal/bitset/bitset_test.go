package bitset

import "testing"

func TestSet_InsertContains(t *testing.T) {
	s := New(130) // exercises more than one backing word
	if s.Contains(65) {
		t.Fatalf("fresh set must not contain 65")
	}

	s.Insert(65)
	if !s.Contains(65) {
		t.Fatalf("65 should be contained after Insert")
	}
	if s.Contains(64) || s.Contains(66) {
		t.Fatalf("Insert(65) must not set neighboring bits")
	}
}

func TestSet_Clear(t *testing.T) {
	s := New(10)
	s.Insert(3)
	s.Insert(7)
	s.Clear()

	for i := 0; i < 10; i++ {
		if s.Contains(i) {
			t.Fatalf("bit %d still set after Clear", i)
		}
	}
}

func TestMatrix_InsertContains(t *testing.T) {
	m := NewMatrix(4)
	m.Insert(1, 2)

	if !m.Contains(1, 2) {
		t.Fatalf("(1,2) should be contained after Insert")
	}
	if m.Contains(2, 1) {
		t.Fatalf("Matrix is directional: (2,1) must be independent of (1,2)")
	}
}
