package converter

import (
	"math"
	"testing"
)

func TestAngleToPi(t *testing.T) {
	tests := []struct {
		angle float64
		want  string
	}{
		{0, "0"},
		{math.Pi, "pi"},
		{-math.Pi, "-pi"},
		{math.Pi / 2, "pi/2"},
		{-math.Pi / 2, "-pi/2"},
		{math.Pi / 3, "pi/3"},
		{math.Pi / 6, "pi/6"},
		{3 * math.Pi / 4, "3*pi/4"},
		{-3 * math.Pi / 4, "-3*pi/4"},
		{2 * math.Pi / 3, "2*pi/3"},
		{2 * math.Pi, "2*pi"},
		{1, "1.0000"},
		{-0.5, "-0.5000"},
	}
	for _, tt := range tests {
		if got := AngleToPi(tt.angle); got != tt.want {
			t.Errorf("AngleToPi(%v) = %q, want %q", tt.angle, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{1e-12, "0"},
		{3, "3"},
		{-4, "-4"},
		{math.Sqrt2, "√2"},
		{-math.Sqrt(3), "-√3"},
		{math.Sqrt(7), "√7"},
		{2.5, "2.5"},
		{1.0 / 3, "0.3333"},
		{-0.00001, "0"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.v); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{7 * math.Pi / 2, -math.Pi / 2},
		{-5 * math.Pi / 2, -math.Pi / 2},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFromCartesian(t *testing.T) {
	r := FromCartesian(1, math.Sqrt(3))
	if r.ModulusText != "2" || r.AngleText != "pi/3" {
		t.Errorf("modulus %q angle %q", r.ModulusText, r.AngleText)
	}
	if r.Cartesian != "1 + √3i" {
		t.Errorf("Cartesian = %q", r.Cartesian)
	}
	if r.Polar != "2(cos(pi/3) + i sin(pi/3))" {
		t.Errorf("Polar = %q", r.Polar)
	}
	if r.Exponential != "2 e^(i pi/3)" {
		t.Errorf("Exponential = %q", r.Exponential)
	}

	r = FromCartesian(1, -1)
	if r.Cartesian != "1 - 1i" || r.ModulusText != "√2" || r.AngleText != "-pi/4" {
		t.Errorf("got %q, %q, %q", r.Cartesian, r.ModulusText, r.AngleText)
	}
}

func TestFromPolar(t *testing.T) {
	r := FromPolar(2, math.Pi/2)
	if r.RealText != "0" || r.ImagText != "2" {
		t.Errorf("real %q imag %q", r.RealText, r.ImagText)
	}

	r = FromPolar(-1, 0)
	if r.RealText != "-1" || r.AngleText != "pi" || r.Modulus != 1 {
		t.Errorf("negative modulus: real %q angle %q modulus %v", r.RealText, r.AngleText, r.Modulus)
	}

	r = FromPolar(1, 5*math.Pi/2)
	if r.AngleText != "pi/2" {
		t.Errorf("angle not normalized: %q", r.AngleText)
	}
}

func TestConvert(t *testing.T) {
	r, err := Convert(Exponential, "sqrt(2)", "pi/4")
	if err != nil {
		t.Fatal(err)
	}
	if r.Cartesian != "1 + 1i" {
		t.Errorf("Cartesian = %q", r.Cartesian)
	}

	r, err = Convert(Cartesian, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if r.Cartesian != "0 + 0i" || r.AngleText != "0" {
		t.Errorf("zero: %q angle %q", r.Cartesian, r.AngleText)
	}

	if _, err := Convert(Polar, "2", "pi/"); err == nil {
		t.Error("expected parse error")
	}
}

func TestParseForm(t *testing.T) {
	for in, want := range map[string]Form{"polar": Polar, "E": Exponential, "cartesian": Cartesian} {
		got, err := ParseForm(in)
		if err != nil || got != want {
			t.Errorf("ParseForm(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseForm("spherical"); err == nil {
		t.Error("expected error")
	}
}

func TestSessionSuppressesReentrantUpdates(t *testing.T) {
	s := NewSession()
	var calls, suppressed int
	s.Subscribe(func(source Form, r Representation) {
		calls++
		// refreshing the polar fields fires their change handler
		if _, applied, _ := s.Update(Polar, r.ModulusText, r.AngleText); !applied {
			suppressed++
		}
	})

	r, applied, err := s.Update(Cartesian, "3", "4")
	if err != nil || !applied {
		t.Fatalf("Update: applied=%v err=%v", applied, err)
	}
	if r.ModulusText != "5" {
		t.Errorf("modulus = %q", r.ModulusText)
	}
	if calls != 1 || suppressed != 1 {
		t.Errorf("calls=%d suppressed=%d, want 1 and 1", calls, suppressed)
	}
	if s.Updating() {
		t.Error("session still updating after fan-out")
	}
	if last, ok := s.Last(); !ok || last.ModulusText != "5" {
		t.Errorf("Last() = %+v, %v", last, ok)
	}

	if _, applied, _ := s.Update(Polar, "1", "0"); !applied {
		t.Error("update after fan-out was suppressed")
	}
}
