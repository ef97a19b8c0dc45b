package sequencer

import "testing"

func TestRotationStart(t *testing.T) {
	r := NewRotation()
	if r.Last() != -1 {
		t.Fatalf("fresh rotation Last = %d", r.Last())
	}
	got := []int{r.Start(3), r.Start(3), r.Start(3), r.Start(3)}
	want := []int{0, 1, 2, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Start sequence = %v, want %v", got, want)
		}
	}
}

func TestRotationAt(t *testing.T) {
	r := NewRotationAt(4)
	if got := r.Start(3); got != 1 {
		t.Fatalf("Start = %d, want 4 mod 3 = 1", got)
	}
	r.Record(0)
	if got := r.Start(3); got != 1 {
		t.Fatalf("Start after Record(0) = %d, want 1", got)
	}
}
