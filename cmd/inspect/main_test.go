package main

import (
	"strings"
	"testing"

	"github.com/jiexingtech/kryo-serializers/collections"
	"github.com/jiexingtech/kryo-serializers/wire"
)

func TestAnnotateWrapperValue(t *testing.T) {
	e, err := newEngine()
	if err != nil {
		t.Fatalf("newEngine: %v", err)
	}

	view := collections.UnmodifiableList(collections.NewArrayList("a", "b", "c"))
	w := wire.NewWriter()
	if err := e.WriteTagged(w, view); err != nil {
		t.Fatalf("WriteTagged: %v", err)
	}

	var out strings.Builder
	annotate(&out, e, w.Bytes(), 0)
	got := out.String()

	if !strings.Contains(got, "stream ID") {
		t.Errorf("missing stream ID annotation:\n%s", got)
	}
	if !strings.Contains(got, "*collections.ReadOnlyRandomAccessList") {
		t.Errorf("missing wrapper type name:\n%s", got)
	}
	if !strings.Contains(got, "variant tag 1") {
		t.Errorf("missing variant tag annotation:\n%s", got)
	}
	if !strings.Contains(got, "payload") {
		t.Errorf("missing payload section:\n%s", got)
	}
}

func TestAnnotateBasicValue(t *testing.T) {
	e, err := newEngine()
	if err != nil {
		t.Fatalf("newEngine: %v", err)
	}

	w := wire.NewWriter()
	if err := e.WriteTagged(w, "hello"); err != nil {
		t.Fatalf("WriteTagged: %v", err)
	}

	var out strings.Builder
	annotate(&out, e, w.Bytes(), 0)
	got := out.String()

	if !strings.Contains(got, "stream ID 6 (string)") {
		t.Errorf("missing stream ID annotation:\n%s", got)
	}
	if strings.Contains(got, "variant tag") {
		t.Errorf("basic value should not have a variant tag line:\n%s", got)
	}
}
