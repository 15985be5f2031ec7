package core

import "testing"

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#FF0000", Color{R: 255}, false},
		{"#0b3d91", Color{R: 0x0B, G: 0x3D, B: 0x91}, false},
		{"#fff", ColorWhite, false},
		{"FF0000", Color{}, true},
		{"#GGGGGG", Color{}, true},
		{"#12345", Color{}, true},
		{"", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ColorFromHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ColorFromHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equals(tt.want) {
				t.Errorf("ColorFromHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColor_String(t *testing.T) {
	if got := ColorFromRGB(0x66, 0x50, 0xA4).String(); got != "#6650A4" {
		t.Errorf("String() = %q, want #6650A4", got)
	}
	if got := ColorDefault.String(); got != "default" {
		t.Errorf("String() = %q, want default", got)
	}
}

func TestColor_Blend(t *testing.T) {
	red := ColorFromRGB(255, 0, 0)
	if got := red.Blend(ColorBlack, 0); !got.Equals(red) {
		t.Errorf("Blend(0) = %v, want %v", got, red)
	}
	if got := red.Blend(ColorBlack, 1); !got.Equals(ColorBlack) {
		t.Errorf("Blend(1) = %v, want black", got)
	}
	if got := red.Darken(0.5); got.R >= red.R {
		t.Errorf("Darken(0.5).R = %d, want < 255", got.R)
	}
	if got := ColorDefault.Blend(red, 0.2); !got.IsDefault() {
		t.Errorf("default Blend(0.2) = %v, want default", got)
	}
}

func TestColor_Contrast(t *testing.T) {
	if got := ColorWhite.Contrast(); !got.Equals(ColorBlack) {
		t.Errorf("white.Contrast() = %v, want black", got)
	}
	if got := MustColorFromHex("#0B3D91").Contrast(); !got.Equals(ColorWhite) {
		t.Errorf("navy.Contrast() = %v, want white", got)
	}
}

func TestStyle(t *testing.T) {
	s := NewStyle(ColorWhite, ColorBlack).Bold()
	if !s.Attributes.Has(AttrBold) {
		t.Error("Bold() did not set AttrBold")
	}
	if s.Attributes.Has(AttrReverse) {
		t.Error("unexpected AttrReverse")
	}
	if s.Equals(s.Reverse()) {
		t.Error("Reverse() should change the style")
	}
	if !DefaultStyle().Equals(Style{Foreground: ColorDefault, Background: ColorDefault}) {
		t.Error("DefaultStyle mismatch")
	}
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"0.25", 4},
		{"÷", 1},
		{"×−", 2},
		{"世界", 4},
		{"é", 1},
	}
	for _, tt := range tests {
		if got := StringWidth(tt.in); got != tt.want {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRuneWidth(t *testing.T) {
	if got := RuneWidth('\t'); got != 0 {
		t.Errorf("RuneWidth(tab) = %d, want 0", got)
	}
	if got := RuneWidth('7'); got != 1 {
		t.Errorf("RuneWidth('7') = %d, want 1", got)
	}
	if got := RuneWidth('界'); got != 2 {
		t.Errorf("RuneWidth('界') = %d, want 2", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in        string
		width     int
		keepRight bool
		want      string
	}{
		{"12345", 10, false, "12345"},
		{"12345", 3, false, "123"},
		{"12345", 3, true, "345"},
		{"世界x", 3, false, "世"},
		{"x世界", 3, true, "界"},
		{"abc", 0, false, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width, tt.keepRight); got != tt.want {
			t.Errorf("Truncate(%q, %d, %v) = %q, want %q", tt.in, tt.width, tt.keepRight, got, tt.want)
		}
	}
}

func TestScreenRect(t *testing.T) {
	r := RectFromSize(2, 4, 3, 5)
	if r.Width() != 5 || r.Height() != 3 {
		t.Errorf("size = %dx%d, want 5x3", r.Width(), r.Height())
	}
	if !r.Contains(4, 2) || !r.Contains(8, 4) {
		t.Error("Contains should include top-left and bottom-right cells")
	}
	if r.Contains(9, 2) || r.Contains(4, 5) {
		t.Error("Contains should exclude right and bottom edges")
	}
	if !(ScreenRect{Top: 1, Bottom: 1, Right: 4}).IsEmpty() {
		t.Error("zero-height rect should be empty")
	}
}
