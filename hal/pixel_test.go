package hal

import "testing"

func TestRGB565RoundTrip(t *testing.T) {
	cases := []struct{ r, g, b uint8 }{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
		{0x18, 0x18, 0x18},
	}
	for _, c := range cases {
		r, g, b := rgb888From565(rgb565(c.r, c.g, c.b))
		// 565 keeps the top 5/6/5 bits; round-tripping those must be exact.
		if r>>3 != c.r>>3 || g>>2 != c.g>>2 || b>>3 != c.b>>3 {
			t.Fatalf("roundtrip (%d,%d,%d) -> (%d,%d,%d)", c.r, c.g, c.b, r, g, b)
		}
	}
}

func TestFramebufferClear(t *testing.T) {
	fb := newHostFramebuffer(4, 4)
	fb.ClearRGB(255, 0, 0)

	p := rgb565(255, 0, 0)
	for i := 0; i < len(fb.buf); i += 2 {
		got := uint16(fb.buf[i]) | uint16(fb.buf[i+1])<<8
		if got != p {
			t.Fatalf("pixel %d = %04x, want %04x", i/2, got, p)
		}
	}
	if fb.StrideBytes() != 8 {
		t.Fatalf("stride = %d, want 8", fb.StrideBytes())
	}
}
