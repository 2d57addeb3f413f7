package envutil

import (
	"reflect"
	"testing"
)

func TestString(t *testing.T) {
	t.Setenv("CASEBOOK_TEST_STR", "  value ")
	if got := String("CASEBOOK_TEST_STR", "def", nil); got != "value" {
		t.Fatalf("got %q", got)
	}
	t.Setenv("CASEBOOK_TEST_STR", "   ")
	if got := String("CASEBOOK_TEST_STR", "def", nil); got != "def" {
		t.Fatalf("blank should fall back: got %q", got)
	}
}

func TestIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("CASEBOOK_TEST_INT", "abc")
	if got := Int("CASEBOOK_TEST_INT", 7, nil); got != 7 {
		t.Fatalf("got %d", got)
	}
	t.Setenv("CASEBOOK_TEST_INT", "42")
	if got := Int("CASEBOOK_TEST_INT", 7, nil); got != 42 {
		t.Fatalf("got %d", got)
	}
}

func TestBool(t *testing.T) {
	cases := map[string]bool{"true": true, "ON": true, "0": false, "no": false, "maybe": true}
	for raw, want := range cases {
		t.Setenv("CASEBOOK_TEST_BOOL", raw)
		if got := Bool("CASEBOOK_TEST_BOOL", true, nil); got != want {
			t.Fatalf("%q: got=%v want=%v", raw, got, want)
		}
	}
}

func TestFloat(t *testing.T) {
	t.Setenv("CASEBOOK_TEST_FLOAT", "0.25")
	if got := Float("CASEBOOK_TEST_FLOAT", 1, nil); got != 0.25 {
		t.Fatalf("got %v", got)
	}
}

func TestList(t *testing.T) {
	t.Setenv("CASEBOOK_TEST_LIST", "a, b,,c ")
	if got := List("CASEBOOK_TEST_LIST", nil, nil); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("got %v", got)
	}
	t.Setenv("CASEBOOK_TEST_LIST", " , ")
	if got := List("CASEBOOK_TEST_LIST", []string{"x"}, nil); !reflect.DeepEqual(got, []string{"x"}) {
		t.Fatalf("got %v", got)
	}
}
