package theme

import "testing"

func TestSetThemeReplacesCurrent(t *testing.T) {
	orig := Current()
	defer SetTheme(orig)

	light := Light()
	SetTheme(light)
	if Current().Background != light.Background {
		t.Fatalf("SetTheme did not take effect")
	}
}

func TestDarkAndLightDiffer(t *testing.T) {
	d, l := Dark(), Light()
	if d.Background == l.Background {
		t.Errorf("expected Dark and Light backgrounds to differ")
	}
}

func TestBlendAtZeroAndOneReturnsEndpoints(t *testing.T) {
	a := Dark().Primary
	b := Dark().Error
	if got := Blend(a, b, 0); got.R != a.R || got.G != a.G || got.B != a.B {
		t.Errorf("Blend(a,b,0) = %+v, want %+v", got, a)
	}
	if got := Blend(a, b, 1); got.R != b.R || got.G != b.G || got.B != b.B {
		t.Errorf("Blend(a,b,1) = %+v, want %+v", got, b)
	}
}
