package ingest

import "testing"

func TestVocabulary(t *testing.T) {
	v := NewVocabulary()

	v.Add([]string{"alpha", "beta", "alpha"})
	v.Add([]string{"gamma", "beta"})

	if got := v.Len(); got != 3 {
		t.Errorf("Len = %d, want 3", got)
	}
	if got := v.ID("alpha"); got != 0 {
		t.Errorf("ID(alpha) = %d, want 0", got)
	}
	if got := v.ID("gamma"); got != 2 {
		t.Errorf("ID(gamma) = %d, want 2", got)
	}
	if got := v.ID("delta"); got != -1 {
		t.Errorf("ID(delta) = %d, want -1", got)
	}
	if got := v.Token(1); got != "beta" {
		t.Errorf("Token(1) = %q, want beta", got)
	}
}
