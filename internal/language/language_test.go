package language

import "testing"

func TestCatalogs(t *testing.T) {
	if got := Names(Natives()); len(got) != 2 || got[0] != "English" || got[1] != "Portuguese" {
		t.Fatalf("unexpected natives: %v", got)
	}

	want := []string{"English", "French", "German", "Italian", "Japanese", "Spanish"}
	got := Names(Targets())
	if len(got) != len(want) {
		t.Fatalf("got %d targets, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("target[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCatalogsAreCopies(t *testing.T) {
	list := Targets()
	list[0].Name = "Klingon"
	if Targets()[0].Name != "English" {
		t.Fatal("mutating a returned slice must not change the catalog")
	}
}

func TestSpeechTags(t *testing.T) {
	tests := map[string]string{
		"French":   "fr-FR",
		"German":   "de-DE",
		"Italian":  "it-IT",
		"Japanese": "ja-JP",
		"Spanish":  "es-ES",
	}
	for name, tag := range tests {
		l, ok := LookupTarget(name)
		if !ok {
			t.Fatalf("%s not found", name)
		}
		if l.Tag != tag {
			t.Errorf("%s tag = %q, want %q", name, l.Tag, tag)
		}
	}

	en, _ := LookupNative("english")
	if en.Tag != "en-US" || en.ISO639() != "en" {
		t.Errorf("native English = %+v", en)
	}
}

func TestLookupMissing(t *testing.T) {
	if _, ok := LookupTarget("Klingon"); ok {
		t.Fatal("expected lookup miss")
	}
	if _, ok := LookupNative("French"); ok {
		t.Fatal("French is not a native option")
	}
}
