package mathx

import "testing"

func TestCeilDiv(t *testing.T) {
	if got := CeilDiv[uint32](108_000_000, 5_000_000); got != 22 {
		t.Fatalf("got %d", got)
	}
	if got := CeilDiv[uint32](54_000_000, 27_000_000); got != 2 {
		t.Fatalf("got %d", got)
	}
	if got := CeilDiv[uint8](9, 0); got != 0 {
		t.Fatalf("divide by zero gave %d", got)
	}
}

func TestLog2Ceil(t *testing.T) {
	cases := map[uint32]int{0: 0, 1: 0, 2: 1, 3: 2, 4: 2, 5: 3, 22: 5, 256: 8, 1080: 11}
	for n, want := range cases {
		if got := Log2Ceil(n); got != want {
			t.Fatalf("Log2Ceil(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(10, 0, 7) != 7 || Clamp(-1, 0, 7) != 0 || Clamp(3, 7, 0) != 3 {
		t.Fatal("clamp")
	}
}
