// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prune

import (
	"encoding/json"
	"reflect"
	"testing"
)

// decode parses JSON into the generic any form that Prune operates on.
func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("unmarshal %q: %v", s, err)
	}
	return v
}

func TestPrune(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"null value", `{"a":null,"b":1}`, `{"b":1}`},
		{"empty string", `{"a":"","b":"x"}`, `{"b":"x"}`},
		{"empty list", `{"a":[],"b":[1]}`, `{"b":[1]}`},
		{"empty object", `{"a":{},"b":{"c":2}}`, `{"b":{"c":2}}`},
		{"nested nulls", `{"a":{"b":{"c":null}},"d":"keep"}`, `{"d":"keep"}`},
		{"list of empties collapses", `{"a":[null,"",{},[]],"b":"x"}`, `{"b":"x"}`},
		{"mixed list keeps non-empty", `{"a":[null,"x",{"k":null},{"k":1}]}`, `{"a":["x",{"k":1}]}`},
		{"zero and false survive", `{"n":0,"f":false,"s":""}`, `{"n":0,"f":false}`},
		{"deep nesting", `{"a":{"b":[{"c":"","d":[{}]},{"e":"v"}]}}`, `{"a":{"b":[{"e":"v"}]}}`},
		{"already clean", `{"a":1,"b":["x"],"c":{"d":true}}`, `{"a":1,"b":["x"],"c":{"d":true}}`},
		{"top-level scalar", `"hello"`, `"hello"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Prune(decode(t, tt.in))
			want := decode(t, tt.want)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Prune(%s) = %#v, want %#v", tt.in, got, want)
			}
		})
	}
}

func TestPruneIdempotent(t *testing.T) {
	in := decode(t, `{"a":{"b":[null,{"c":""},"x"]},"d":[{},{"e":1}],"f":null}`)
	once := Prune(in)
	twice := Prune(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second pass changed the document: %#v vs %#v", once, twice)
	}
}

func TestPruneNeverRemovesNonEmpty(t *testing.T) {
	in := decode(t, `{"id":"LEGIARTI000006421301","num":0,"flag":false,"tags":["a"],"meta":{"k":"v"}}`)
	got := Prune(in)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("non-empty values were removed: %#v", got)
	}
}

func TestMapPreservesType(t *testing.T) {
	m := map[string]any{"a": nil, "b": "x"}
	got := Map(m)
	if _, ok := got["a"]; ok {
		t.Error("nil key should be pruned")
	}
	if got["b"] != "x" {
		t.Errorf("b = %v, want x", got["b"])
	}
}
