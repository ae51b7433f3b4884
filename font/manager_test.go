package font

import "testing"

func TestConfigForSelectsMatchingFace(t *testing.T) {
	regular := &Face{Name: "regular"}
	bold := &Face{Name: "bold"}
	italic := &Face{Name: "italic"}
	boldItalic := &Face{Name: "bold-italic"}
	cfg := Config{Regular: regular, Bold: bold, Italic: italic, BoldItalic: boldItalic}

	cases := []struct {
		style Style
		want  *Face
	}{
		{Regular(), regular},
		{Regular().Bold(), bold},
		{Regular().Italic(), italic},
		{Regular().Bold().Italic(), boldItalic},
	}
	for _, c := range cases {
		if got := cfg.For(c.style); got != c.want {
			t.Errorf("For(%+v) = %v, want %v", c.style, got.Name, c.want.Name)
		}
	}
}

func TestManagerConfigFailsOnMissingFace(t *testing.T) {
	m := NewManager()
	m.Add(&Face{Name: "regular"})
	if _, err := m.Config("regular", "bold", "italic", "bold-italic"); err == nil {
		t.Errorf("expected error for missing faces")
	}
}

func TestManagerGetRoundTrips(t *testing.T) {
	m := NewManager()
	f := &Face{Name: "regular"}
	m.Add(f)
	got, ok := m.Get("regular")
	if !ok || got != f {
		t.Errorf("Get(regular) = %v, %v, want %v, true", got, ok, f)
	}
}
