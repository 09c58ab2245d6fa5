package mediatypes

import "testing"

func TestGetKind(t *testing.T) {
	tests := []struct {
		ext  string
		kind Kind
		ok   bool
	}{
		{".mp3", KindAudio, true},
		{".flac", KindAudio, true},
		{".m4a", KindAudio, true},
		{".txt", KindText, true},
		{".lrc", KindText, true},
		{".srt", KindText, true},
		{".ass", KindText, true},
		{".jpg", KindImage, true},
		{".webp", KindImage, true},
		{".pdf", KindOther, true},
		{".exe", "", false},
		{".zip", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		kind, ok := GetKind(tt.ext)
		if kind != tt.kind || ok != tt.ok {
			t.Errorf("GetKind(%q) = (%q, %v), want (%q, %v)", tt.ext, kind, ok, tt.kind, tt.ok)
		}
	}
}

// Every extension in any of the supported sets must classify to exactly one
// kind, and classification must never disagree with set membership.
func TestKindsAreExclusive(t *testing.T) {
	all := map[string]Kind{}
	sets := []struct {
		exts map[string]bool
		kind Kind
	}{
		{TextExtensions, KindText},
		{ImageExtensions, KindImage},
		{OtherExtensions, KindOther},
		{AudioExtensions, KindAudio},
	}

	for _, s := range sets {
		for ext := range s.exts {
			if prev, dup := all[ext]; dup {
				t.Errorf("extension %q appears in both %q and %q sets", ext, prev, s.kind)
			}
			all[ext] = s.kind
		}
	}

	for ext, want := range all {
		got, ok := GetKind(ext)
		if !ok || got != want {
			t.Errorf("GetKind(%q) = (%q, %v), want (%q, true)", ext, got, ok, want)
		}
	}
}

func TestIsAudio(t *testing.T) {
	if !IsAudio(".mp3") {
		t.Error("expected .mp3 to be audio")
	}
	if IsAudio(".txt") {
		t.Error("did not expect .txt to be audio")
	}
	if IsAudio(".pdf") {
		t.Error("did not expect .pdf to be audio")
	}
}
