package vt

import "testing"

func TestColorNameKnownIndices(t *testing.T) {
	cases := map[int]string{
		ColorBlack: "black",
		ColorRed:   "red",
		ColorWhite: "white",
	}
	for idx, want := range cases {
		if got := ColorName(idx); got != want {
			t.Errorf("ColorName(%d) = %q, want %q", idx, got, want)
		}
	}
}

func TestColorNameOutOfRange(t *testing.T) {
	if got := ColorName(-1); got != "" {
		t.Errorf("ColorName(-1) = %q, want \"\"", got)
	}
	if got := ColorName(8); got != "" {
		t.Errorf("ColorName(8) = %q, want \"\"", got)
	}
}

func TestPackUnpackAttrRoundTrip(t *testing.T) {
	for fg := 0; fg < 8; fg++ {
		for bg := 0; bg < 8; bg++ {
			attr := packAttr(fg, bg)
			gotFg, gotBg := unpackAttr(attr)
			if gotFg != fg || gotBg != bg {
				t.Fatalf("packAttr(%d,%d)=%#x, unpacked to (%d,%d)", fg, bg, attr, gotFg, gotBg)
			}
		}
	}
}

func TestPackAttrMasksOutOfRangeInput(t *testing.T) {
	// packAttr must never let an out-of-range color leak a bit outside
	// its nibble.
	attr := packAttr(0xff, 0xff)
	if attr&0x88 != 0 {
		t.Fatalf("packAttr did not mask input: attr=%#x", attr)
	}
}
