package gotok

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTag(t *testing.T) {
	got, err := parseTag("field=abc optional")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]string{"field": "abc", "optional": ""}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("tag mismatch (-want +got):\n%s", d)
	}
}

func TestParseTagQuoted(t *testing.T) {
	got, err := parseTag("field='a b'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["field"] != "a b" {
		t.Errorf("expected quoted value %q, got %q", "a b", got["field"])
	}
}

func TestParseTagErrors(t *testing.T) {
	for _, tag := range []string{
		"field='abc",
		"field=a field=b",
		"=x",
	} {
		if _, err := parseTag(tag); err == nil {
			t.Errorf("expected error for tag %q", tag)
		}
	}
}

func TestStructFieldsOrder(t *testing.T) {
	type s struct {
		B int `tok:"field=b"`
		A int `tok:"field=a"`
		C int `tok:"omit"`
		d int
	}
	_ = s{d: 0}
	fields := structFields(reflect.TypeOf(s{}))
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Name != "b" || fields[1].Name != "a" {
		t.Errorf("expected declaration order b, a; got %s, %s",
			fields[0].Name, fields[1].Name)
	}
}
