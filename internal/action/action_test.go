package action

import (
	"reflect"
	"testing"
)

func TestNamesAreUnique(t *testing.T) {
	seen := map[string]Action{}
	for _, a := range All() {
		name := a.Name()
		if name == "" {
			t.Fatalf("empty name for %T", a)
		}
		if prev, ok := seen[name]; ok {
			t.Fatalf("duplicate name %q for %T and %T", name, prev, a)
		}
		seen[name] = a
	}
}

func TestActionsAreComparableValues(t *testing.T) {
	a := ChangeDir{Path: "/tmp"}
	b := ChangeDir{Path: "/tmp"}
	if a != b {
		t.Fatalf("expected equal values, got %#v and %#v", a, b)
	}
	if (EndInputText{Text: "x", Submitted: true}) == (EndInputText{Text: "x"}) {
		t.Fatalf("expected submitted flag to distinguish values")
	}
}

func TestNoFieldShadowsName(t *testing.T) {
	for _, a := range All() {
		if _, ok := reflect.TypeOf(a).FieldByName("Name"); ok {
			t.Fatalf("%T declares a Name field alongside its Name method", a)
		}
	}
	rename := StartRename{Entry: "notes.txt"}
	if rename.Entry != "notes.txt" || rename.Name() != "input.rename" {
		t.Fatalf("unexpected rename action %#v (%s)", rename, rename.Name())
	}
}
