package diffcolors

import "testing"

func TestLookup(t *testing.T) {
	c, err := Lookup("Midnight")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if c.Name != "Midnight" || c.Hex != "#011F2E" {
		t.Errorf("Lookup() = %+v, want {Midnight #011F2E}", c)
	}

	if _, err := Lookup("Daylight"); err == nil {
		t.Error("Lookup() returned no error for an unknown name")
	}
}

func TestColorRGBA(t *testing.T) {
	type want struct {
		r, g, b, a uint32
	}
	tests := []struct {
		name  string
		color Color
		want  want
	}{
		{name: "orange", color: Color{"Orange", "#FA693A"}, want: want{0xFA * 0x101, 0x69 * 0x101, 0x3A * 0x101, 0xFFFF}},
		{name: "white", color: Color{"White", "#FFFFFF"}, want: want{0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF}},
		{name: "almost black", color: Color{"Almost Black", "#1E1E1E"}, want: want{0x1E1E, 0x1E1E, 0x1E1E, 0xFFFF}},
		{name: "lowercase hex", color: Color{"", "#fa693a"}, want: want{0xFA * 0x101, 0x69 * 0x101, 0x3A * 0x101, 0xFFFF}},
		{name: "malformed falls back to black", color: Color{"", "#GGGGGG"}, want: want{0, 0, 0, 0xFFFF}},
		{name: "short hex falls back to black", color: Color{"", "#FFF"}, want: want{0, 0, 0, 0xFFFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.color.RGBA()
			if r != tt.want.r || g != tt.want.g || b != tt.want.b || a != tt.want.a {
				t.Errorf("RGBA() = (%#x, %#x, %#x, %#x), want (%#x, %#x, %#x, %#x)",
					r, g, b, a, tt.want.r, tt.want.g, tt.want.b, tt.want.a)
			}
		})
	}
}
