package arr_test

import (
	"testing"

	"github.com/hasbyte1/go-hooray/arr"
)

func makeNested() map[string]any {
	return map[string]any{
		"user": map[string]any{
			"name": "Alice",
			"address": map[string]any{
				"city":    "London",
				"country": "UK",
			},
		},
		"score": 42,
	}
}

func TestGet(t *testing.T) {
	m := makeNested()
	if v := arr.Get(m, "user.address.city"); v != "London" {
		t.Fatalf("Get city = %v; want London", v)
	}
	if v := arr.Get(m, "score"); v != 42 {
		t.Fatalf("Get score = %v; want 42", v)
	}
	if v := arr.Get(m, "missing"); v != nil {
		t.Fatalf("Get missing = %v; want nil", v)
	}
	if v := arr.Get(m, "user.missing", "default"); v != "default" {
		t.Fatalf("Get missing default = %v; want default", v)
	}
}

func TestSet(t *testing.T) {
	m := map[string]any{}
	arr.Set(m, "a.b.c", 42)
	if got := arr.Get(m, "a.b.c"); got != 42 {
		t.Fatalf("Set/Get a.b.c = %v; want 42", got)
	}
	arr.Set(m, "a.b.c", "over")
	if got := arr.GetPath(m, "/a/b/c"); got != "over" {
		t.Fatalf("Set did not overwrite: %v", got)
	}
}

func TestHas(t *testing.T) {
	m := makeNested()
	m["nothing"] = nil
	for _, key := range []string{"user.name", "user.address.city", "nothing"} {
		if !arr.Has(m, key) {
			t.Errorf("Has %s should be true", key)
		}
	}
	for _, key := range []string{"user.missing", "user.name.deep", ""} {
		if arr.Has(m, key) {
			t.Errorf("Has %q should be false", key)
		}
	}
}

func TestHasAllAndAny(t *testing.T) {
	m := makeNested()
	if !arr.HasAll(m, "user.name", "score") {
		t.Fatal("HasAll should return true")
	}
	if arr.HasAll(m, "user.name", "missing") {
		t.Fatal("HasAll should return false when one key missing")
	}
	if !arr.HasAny(m, "missing", "score") {
		t.Fatal("HasAny should be true")
	}
	if arr.HasAny(m, "x", "y") {
		t.Fatal("HasAny should be false")
	}
}

func TestForget(t *testing.T) {
	m := makeNested()
	arr.Forget(m, "user.address.city")
	if arr.Has(m, "user.address.city") {
		t.Fatal("Forget did not remove key")
	}
	if !arr.Has(m, "user.address.country") {
		t.Fatal("Forget removed sibling key")
	}
	arr.Forget(m, "score.deeper")
	if !arr.Has(m, "score") {
		t.Fatal("Forget through a scalar must not remove it")
	}
}
