package color

import "testing"

func TestBytesRoundTrip(t *testing.T) {
	tests := []RGBA{
		Black, White, Red, Green, Blue, RGBA{0.5, 0.25, 0.75, 1},
	}
	for _, c := range tests {
		b := c.Bytes()
		got := FromBytes(b)
		const tol = 1.0 / 255
		if absDiff(got.R, c.R) > tol || absDiff(got.G, c.G) > tol ||
			absDiff(got.B, c.B) > tol || absDiff(got.A, c.A) > tol {
			t.Errorf("Bytes/FromBytes round trip: %+v -> %v -> %+v", c, b, got)
		}
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		hex  string
		want RGBA
	}{
		{"#ff0000", RGB(1, 0, 0)},
		{"f00", RGB(1, 0, 0)},
		{"#00ff0080", RGBA{0, 1, 0, 128.0 / 255}},
	}
	for _, tt := range tests {
		got := Hex(tt.hex)
		const tol = 1.0 / 255
		if absDiff(got.R, tt.want.R) > tol || absDiff(got.G, tt.want.G) > tol ||
			absDiff(got.B, tt.want.B) > tol || absDiff(got.A, tt.want.A) > tol {
			t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	mid := Black.Lerp(White, 0.5)
	if absDiff(mid.R, 0.5) > 1e-9 {
		t.Errorf("Lerp midpoint R = %v, want 0.5", mid.R)
	}
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
