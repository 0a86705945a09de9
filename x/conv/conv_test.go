package conv

import "testing"

func TestUtoa(t *testing.T) {
	cases := []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{15, "15"},
		{18446744073709551615, "18446744073709551615"},
	}
	for _, c := range cases {
		var buf [20]byte
		if got := string(Utoa(buf[:], c.n)); got != c.want {
			t.Fatalf("Utoa(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestItoa(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{3, "3"},
		{-1, "-1"},
		{-42, "-42"},
	}
	for _, c := range cases {
		var buf [20]byte
		if got := string(Itoa(buf[:], c.n)); got != c.want {
			t.Fatalf("Itoa(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestHex(t *testing.T) {
	var buf [8]byte
	if got := string(Hex(buf[:], 0x40013000, 8)); got != "40013000" {
		t.Fatalf("got %q", got)
	}
	if got := string(Hex(buf[:], 0xAB, 4)); got != "00AB" {
		t.Fatalf("got %q", got)
	}
	if got := Hex(buf[:2], 1, 4); len(got) != 0 {
		t.Fatalf("short buffer wrote %q", got)
	}
}
