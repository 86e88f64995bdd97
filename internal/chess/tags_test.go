package chess

import (
	"reflect"
	"testing"
)

func TestTagsOrdering(t *testing.T) {
	tags := NewTags()
	tags.Set("Annotator", "Someone")
	tags.Set("White", "Fischer")
	tags.Set("Event", "Match")
	tags.Set("ECO", "C95")
	tags.Set("Annotator", "Someone else")

	wantRoster := []Tag{{"Event", "Match"}, {"White", "Fischer"}}
	if got := tags.Roster(); !reflect.DeepEqual(got, wantRoster) {
		t.Errorf("Roster() = %v; want %v", got, wantRoster)
	}

	wantExtra := []Tag{{"Annotator", "Someone else"}, {"ECO", "C95"}}
	if got := tags.Extra(); !reflect.DeepEqual(got, wantExtra) {
		t.Errorf("Extra() = %v; want %v", got, wantExtra)
	}

	if n := tags.Len(); n != 4 {
		t.Errorf("Len() = %d; want 4", n)
	}
}

func TestTagsDelete(t *testing.T) {
	var tags Tags
	tags.Set("Opening", "Ruy Lopez")
	tags.Set("ECO", "C95")
	tags.Delete("Opening")
	tags.Delete("Missing")

	if tags.Has("Opening") {
		t.Error("Has(Opening) = true after Delete")
	}
	if got := tags.Extra(); len(got) != 1 || got[0].Name != "ECO" {
		t.Errorf("Extra() = %v; want [ECO]", got)
	}
}

func TestIsSevenTagRosterTag(t *testing.T) {
	for _, name := range SevenTagRoster {
		if !IsSevenTagRosterTag(name) {
			t.Errorf("IsSevenTagRosterTag(%q) = false", name)
		}
	}
	if IsSevenTagRosterTag("ECO") {
		t.Error("IsSevenTagRosterTag(ECO) = true")
	}
}

func TestTagsLookup(t *testing.T) {
	tags := NewTags()
	tags.Set("Site", "")

	if v, ok := tags.Lookup("Site"); !ok || v != "" {
		t.Errorf("Lookup(Site) = %q, %v; want \"\", true", v, ok)
	}
	if _, ok := tags.Lookup("Round"); ok {
		t.Error("Lookup(Round) found a missing tag")
	}
	if got := tags.Get("Round"); got != "" {
		t.Errorf("Get(Round) = %q; want empty", got)
	}
}
