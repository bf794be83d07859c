package jsonvalue_test

import (
	"testing"

	jv "github.com/d1ced/jsonvalue"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b        *jv.Value
		ab, ba      bool
		description string
	}{
		{jv.Int(1), jv.Str("1.5"), true, false, "integer against fractional string"},
		{jv.Int(1), jv.Float(1), true, true, "integer against number"},
		{jv.Float(1.5), jv.Int(1), false, true, "number against integer"},
		{jv.Bool(true), jv.Str("x"), true, false, "boolean against string"},
		{jv.Str("true"), jv.Bool(true), true, true, "string spelling a boolean"},
		{jv.Int(0), jv.Bool(false), true, true, "zero against false"},
		{jv.Int(2), jv.Bool(true), false, true, "two against true"},
		{jv.Str(" 7 "), jv.Int(7), false, true, "padded string"},
		{jv.Int(7), jv.Str("seven"), false, false, "unconvertible string"},
		{nil, jv.Int(0), false, false, "undefined against zero"},
		{nil, &jv.Value{}, true, true, "nil against undefined"},
		{jv.NewArray(), jv.Str("Array[]"), false, false, "array against its sentinel"},
		{jv.NewObject(), nil, false, false, "object against undefined"},
		{jv.Parse(`[1,2]`), jv.Parse(`[1, 2]`), true, true, "arrays by content"},
		{jv.Parse(`{"a":1,"b":2}`), jv.Parse(`{"b":2,"a":1}`), false, false, "objects by order"},
		{jv.Parse(`{"a":[{}]}`), jv.Parse(`{"a":[{}]}`), true, true, "nested objects"},
	}
	for _, test := range tests {
		if got := jv.Equal(test.a, test.b); got != test.ab {
			t.Errorf("%s: %v == %v is %v", test.description, test.a, test.b, got)
		}
		if got := test.b.Equal(test.a); got != test.ba {
			t.Errorf("%s: %v == %v is %v", test.description, test.b, test.a, got)
		}
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		a, b     string
		plus, or string
	}{
		{`{"a":1}`, `{"a":2}`, `{"a":3}`, `{"a":1}`},
		{`[1,2]`, `[3]`, `[1,2,3]`, `[1,2,3]`},
		{`[1]`, `5`, `[1,5]`, `[1,5]`},
		{`[1]`, `null`, `[1]`, `[1]`},
		{`{"a":1}`, `{"b":"x"}`, `{"a":1,"b":"x"}`, `{"a":1,"b":"x"}`},
		{`{"a":{"b":1}}`, `{"a":{"b":2,"c":3}}`, `{"a":{"b":3,"c":3}}`, `{"a":{"b":1,"c":3}}`},
		{`{"a":[1]}`, `{"a":[2]}`, `{"a":[1,2]}`, `{"a":[1,2]}`},
		{`{"x":"y"}`, `"x"`, `{"x":"yx"}`, `{"x":"y"}`},
		{`{"a":1}`, `null`, `{"a":1}`, `{"a":1}`},
		{`null`, `5`, `5`, `5`},
		{`"a"`, `1`, `"a1"`, `"a"`},
		{`1`, `"2"`, `3`, `1`},
		{`1`, `2.9`, `3`, `1`},
		{`1.5`, `1`, `2.5`, `1.5`},
		{`true`, `0`, `false`, `true`},
		{`false`, `null`, `false`, `false`},
	}
	for _, test := range tests {
		a, b := jv.Parse(test.a), jv.Parse(test.b)
		if got := jv.Plus(a, b).String(); got != test.plus {
			t.Errorf("%s + %s = %s, want %s", test.a, test.b, got, test.plus)
		}
		if got := a.Or(b).String(); got != test.or {
			t.Errorf("%s | %s = %s, want %s", test.a, test.b, got, test.or)
		}
		if a.String() != jv.Parse(test.a).String() || b.String() != jv.Parse(test.b).String() {
			t.Errorf("operands of %s and %s changed", test.a, test.b)
		}
	}
}

func TestMergeParents(t *testing.T) {
	a := jv.Parse(`{"a":[{"b":1}]}`)
	m := jv.Plus(a, jv.Parse(`{"a":[{"c":2}],"d":{"e":true}}`))
	if m.Parent() != nil || m.Get("a").At(1).Get("c").Pointer() != "/a/1/c" {
		t.Errorf("merged tree has broken parents: %v", m)
	}
	if m.Get("d").Get("e").Root() != m {
		t.Error("merged member not adopted")
	}
}
