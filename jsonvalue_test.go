package jsonvalue_test

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/andreyvit/diff"
	jv "github.com/d1ced/jsonvalue"
)

func TestFile(t *testing.T) {
	n, err := jv.ReadFile("testfiles/webapp.json")
	if err != nil {
		t.Fatal(err)
	}
	m := n.EvalPointer("/web-app/servlet/1/init-param/mailHost", false)
	if m.AsString("") != "mail1" {
		t.Errorf("want mail1, got %v", m)
	}
	if m.Type() != jv.String {
		t.Errorf("want String, got %s", m.Type())
	}
	if m.Pointer() != "/web-app/servlet/1/init-param/mailHost" {
		t.Errorf(`pointer mismatch: want "/web-app/servlet/1/init-param/mailHost", got %s`,
			m.Pointer())
	}

	m = n.EvalPointer("#/web-app/servlet/2/init-param", false)
	m.Set("new", jv.Str("indeed!"))
	if !m.Delete("betaServer") {
		t.Error("betaServer not deleted")
	}
	m.Set("log", jv.Int(5))
	m.Set("dataLogMaxSize", nil)
	want := `
{
  "templatePath":"toolstemplates\/",
  "log":5,
  "logLocation":"\/usr\/local\/tomcat\/logs\/CofaxTools.log",
  "logMaxSize":"",
  "dataLogMaxSize":null,
  "lookInContext":1,
  "adminGroupID":4,
  "new":"indeed!"
}`
	if m.Len() != 8 {
		t.Errorf("want 8, got %d", m.Len())
	}
	b := &bytes.Buffer{}
	m.WriteIndent(b, "  ")
	if b.String() != strings.TrimSpace(want) {
		t.Errorf("string representation mismatch: \n%s",
			diff.LineDiff(b.String(), strings.TrimSpace(want)))
	}
}

func TestParseFile(t *testing.T) {
	if v := jv.ParseFile("testfiles/missing.json"); !v.IsUndefined() {
		t.Errorf("want Undefined for a missing file, got %v", v)
	}
	if v := jv.Parse(`{"a":`); !v.IsUndefined() {
		t.Errorf("want Undefined for malformed text, got %v", v)
	}
	if !jv.Valid([]byte(`[1, {"a": "b"}]`)) || jv.Valid([]byte(`[1,]`)) {
		t.Error("Valid misjudged its input")
	}
}

func TestPretty(t *testing.T) {
	v := jv.Parse(`{"b":[1,2],"a":{"x":null},"c":{},"d":[]}`)
	tests := []struct {
		format jv.Format
		want   string
	}{{
		jv.Pretty, `
{
  "b":[
    1,
    2
  ],
  "a":{
    "x":null
  },
  "c":{},
  "d":[]
}`,
	}, {
		jv.Format{Indent: "\t", FirstIndent: "\t", EOL: "\n", Sorted: true}, `
{
	"a":{
		"x":null
	},
	"b":[
		1,
		2
	],
	"c":{},
	"d":[]
}`,
	}, {
		jv.Format{Indent: "  ", BaseIndent: "> ", FirstIndent: ">   ", EOL: "\n"}, `
{
>   "b":[
>     1,
>     2
>   ],
>   "a":{
>     "x":null
>   },
>   "c":{},
>   "d":[]
> }`,
	}}
	for _, test := range tests {
		have := jv.PrettyStringify(v, test.format)
		if have != strings.TrimPrefix(test.want, "\n") {
			t.Errorf("string representation mismatch: \n%s",
				diff.LineDiff(have, strings.TrimPrefix(test.want, "\n")))
		}
	}
}

func TestOrder(t *testing.T) {
	v := jv.NewObject()
	for _, k := range []string{"z", "x", "y"} {
		v.Set(k, jv.Str(k))
	}
	var keys []string
	for k := range v.All() {
		keys = append(keys, k.AsString(""))
	}
	if !reflect.DeepEqual(keys, []string{"z", "x", "y"}) {
		t.Errorf("iteration order %v", keys)
	}
	if have := jv.Stringify(v, false); have != `{"z":"z","x":"x","y":"y"}` {
		t.Errorf("insertion order rendering: %s", have)
	}
	if have := jv.Stringify(v, true); have != `{"x":"x","y":"y","z":"z"}` {
		t.Errorf("sorted rendering: %s", have)
	}
	v.Set("z", jv.Int(1))
	if have := v.String(); have != `{"z":1,"x":"x","y":"y"}` {
		t.Errorf("Set changed the member order: %s", have)
	}
}

func TestPut(t *testing.T) {
	v := jv.Parse(`{"a":1,"b":2,"c":3}`)
	old := v.Get("a")
	a := v.Put("a", jv.Int(9))
	if have := v.String(); have != `{"b":2,"c":3,"a":9}` {
		t.Errorf("Put did not move the key to the end: %s", have)
	}
	if old.Parent() != nil || a.Parent() != v || a.Pointer() != "/a" {
		t.Errorf("old parent %v, new value at %s", old.Parent(), a.Pointer())
	}
	v.Put("d", v.Get("b"))
	if have := v.String(); have != `{"b":2,"c":3,"a":9,"d":2}` {
		t.Errorf("Put of a new key: %s", have)
	}
	if !v.Delete("b") || v.Delete("b") || v.Has("b") {
		t.Errorf("Delete after Put: %s", v)
	}

	s := jv.Str("x")
	s.Put("k", jv.New(jv.Undefined))
	if have := s.String(); have != `{"k":null}` {
		t.Errorf("Put on a string: %s", have)
	}
}

func TestStableReference(t *testing.T) {
	v := jv.Parse(`{"a":1,"b":2,"c":3}`)
	b := v.Get("b")
	v.Set("d", jv.Int(4))
	v.Delete("a")
	v.InsertMember(0, "e", jv.Int(5))
	if v.Get("b") != b {
		t.Fatal("reference to b changed")
	}
	if b.AsInteger(0) != 2 || b.Parent() != v || b.Pointer() != "/b" {
		t.Errorf("b is %v at %s", b, b.Pointer())
	}
	if b.Pos() != 1 {
		t.Errorf("want position 1, got %d", b.Pos())
	}

	a := jv.Parse(`[{"k":0},1,2]`)
	first := a.At(0)
	a.Insert(0, jv.Str("front"))
	a.DeleteAt(3)
	a.Elem(10)
	if a.At(1) != first || first.Pointer() != "/1" {
		t.Errorf("array element moved: %s", first.Pointer())
	}
}

func TestPointerRoundTrip(t *testing.T) {
	root := jv.Parse(`{"a/b":{"~k":[0,{"":true,"x y":[[]]}]},"plain":{"n":null}}`)
	var walk func(v *jv.Value)
	count := 0
	walk = func(v *jv.Value) {
		for _, c := range v.All() {
			if c == v {
				return
			}
			count++
			if got := root.EvalPointer(c.Pointer(), false); got != c {
				t.Errorf("pointer %q resolves to %v", c.Pointer(), got)
			}
			walk(c)
		}
	}
	walk(root)
	if count != 9 {
		t.Errorf("visited %d values", count)
	}
	if p := root.Find("/a~1b/~0k/1/").Pointer(); p != "/a~1b/~0k/1/" {
		t.Errorf("empty key pointer %q", p)
	}
}

func TestEvalPointer(t *testing.T) {
	root := jv.Parse(`{"items":[{"x":1},{"x":2}],"m/n":{"~":"tilde"},"":"empty"}`)
	tests := []struct {
		ptr      string
		zeroOnly bool
		want     string
	}{
		{"", false, root.String()},
		{"#", false, root.String()},
		{"/items/1/x", false, "2"},
		{"#/items/1/x", false, "2"},
		{"/items/1/x", true, "1"},
		{"/items/7/x", true, "1"},
		{"/m~1n/~0", false, `"tilde"`},
		{"/", false, `"empty"`},
		{"/items/2", false, "<nil>"},
		{"/items/-1", false, "<nil>"},
		{"/items/x", true, "<nil>"},
		{"/nope/1", false, "<nil>"},
		{"/items/0/x/deeper", false, "<nil>"},
	}
	for _, test := range tests {
		got := root.EvalPointer(test.ptr, test.zeroOnly)
		have := "<nil>"
		if got != nil {
			have = got.String()
		}
		if have != test.want {
			t.Errorf("%q (zero index %v): got %s, want %s", test.ptr, test.zeroOnly, have, test.want)
		}
	}

	items := root.Get("items")
	if items.At(0).EvalPointer("/items", false) != items {
		t.Error("EvalPointer did not start at the root")
	}
	if items.Find("/1/x").AsInteger(0) != 2 {
		t.Error("Find did not start at the receiver")
	}
}

func TestReference(t *testing.T) {
	root := jv.Parse(`{"a":"/b","b":"/c","c":5,"self":"/self","loop1":"/loop2","loop2":"/loop1",
		"broken":"/nope","plain":"hello"}`)
	if !root.Get("a").IsReference() || root.Get("self").IsReference() || root.Get("plain").IsReference() {
		t.Error("IsReference misjudged")
	}
	tests := []struct {
		key  string
		want *jv.Value
	}{
		{"a", root.Get("c")},
		{"b", root.Get("c")},
		{"c", root.Get("c")},
		{"self", root.Get("self")},
		{"loop1", root.Get("loop1")},
		{"broken", root.Get("broken")},
		{"plain", root.Get("plain")},
	}
	for _, test := range tests {
		if got := root.Get(test.key).Reference(); got != test.want {
			t.Errorf("%s: got %v, want %v", test.key, got, test.want)
		}
	}
}

func TestKey(t *testing.T) {
	root := jv.Parse(`{"a":1,"b":[10,20]}`)
	e := root.Get("b").At(1)
	if k := e.Key(); !k.IsInteger() || k.AsInteger(-1) != 1 || e.Pos() != 1 {
		t.Errorf("element key %v at %d", k, e.Pos())
	}
	if k := root.Get("b").Key(); !k.IsString() || k.AsString("") != "b" {
		t.Errorf("member key %v", k)
	}
	if root.Key() != nil || root.Pos() != -1 || root.Parent() != nil {
		t.Error("root has a placement")
	}
	if e.Root() != root {
		t.Error("Root does not reach the top")
	}
}

func TestIterator(t *testing.T) {
	tests := []struct {
		json string
		want []string
	}{
		{`{"a":1,"b":[2]}`, []string{`"a"=1`, `"b"=[2]`}},
		{`[true,"s"]`, []string{`0=true`, `1="s"`}},
		{`"scalar"`, []string{`<nil>="scalar"`}},
		{`4.5`, []string{`<nil>=4.5`}},
		{`null`, nil},
		{`[]`, nil},
		{`{}`, nil},
	}
	for _, test := range tests {
		var have []string
		it := jv.Parse(test.json).Iter()
		for it.Next() {
			k := "<nil>"
			if it.Key() != nil {
				k = it.Key().String()
			}
			have = append(have, k+"="+it.Pair().Value.String())
		}
		if it.Next() {
			t.Errorf("%s: iterator restarted", test.json)
		}
		if !reflect.DeepEqual(have, test.want) {
			t.Errorf("%s: got %v, want %v", test.json, have, test.want)
		}
	}
	var nilValue *jv.Value
	for range nilValue.All() {
		t.Error("nil value yielded an element")
	}
}

func TestAssignMove(t *testing.T) {
	a := jv.Parse(`{"x":[1,2]}`)
	b := jv.NewObject()
	y := b.Member("y").Assign(a.Get("x"))
	a.Get("x").Elem(0).Assign(jv.Int(100))
	if b.String() != `{"y":[1,2]}` {
		t.Errorf("copy shares storage: %s", b)
	}
	if y.At(0).Parent() != y || y.Parent() != b {
		t.Error("copied children not re-parented")
	}

	src := jv.Parse(`[1,{"k":2}]`)
	dst := jv.Parse(`{"slot":null}`)
	dst.Get("slot").Move(src)
	if !src.IsUndefined() {
		t.Errorf("moved-from value is %v", src)
	}
	if p := dst.Get("slot").At(1).Get("k").Pointer(); p != "/slot/1/k" {
		t.Errorf("moved children report %s", p)
	}

	root := jv.Parse(`{"a":{"b":{"c":1}}}`)
	inner := root.Get("a").Get("b")
	inner.Move(root)
	if !root.IsUndefined() || inner.String() != `{"a":{"b":{"c":1}}}` {
		t.Errorf("move from ancestor: root %v, inner %v", root, inner)
	}

	root = jv.Parse(`{"a":{"b":1}}`)
	root.Assign(root.Get("a"))
	if root.String() != `{"b":1}` || root.Get("b").Parent() != root {
		t.Errorf("assign from descendant: %v", root)
	}

	c := root.Clone()
	if c.Parent() != nil || c.Get("b").Parent() != c || !jv.Equal(c, root) {
		t.Errorf("clone %v", c)
	}
}

func TestVivify(t *testing.T) {
	var v jv.Value
	v.Elem(2).Assign(jv.Int(7))
	if v.String() != "[null,null,7]" || v.Len() != 3 {
		t.Errorf("padding: %v", &v)
	}
	v.Member("k").Member("l").Append(jv.Bool(true))
	if v.String() != `{"k":{"l":[true]}}` {
		t.Errorf("retagging: %v", &v)
	}
	if v.Get("missing") != nil || v.Has("missing") || v.Len() != 1 {
		t.Error("Get vivified a member")
	}
	defer func() {
		if recover() == nil {
			t.Error("negative index did not panic")
		}
	}()
	v.Elem(-1)
}

func TestMutation(t *testing.T) {
	a := jv.Parse(`[1,3]`)
	if !a.Insert(1, jv.Int(2)) || a.Insert(4, jv.Int(9)) {
		t.Error("Insert bounds")
	}
	if !a.Erase(jv.Str("0")) || a.String() != "[2,3]" {
		t.Errorf("Erase index: %v", a)
	}
	o := jv.Parse(`{"a":1,"c":3}`)
	o.InsertMember(1, "b", jv.Int(2))
	if o.String() != `{"a":1,"b":2,"c":3}` {
		t.Errorf("InsertMember: %v", o)
	}
	o.InsertMember(0, "c", jv.Int(0))
	if o.String() != `{"c":0,"a":1,"b":2}` {
		t.Errorf("InsertMember existing key: %v", o)
	}
	if !reflect.DeepEqual(o.Keys(), []string{"c", "a", "b"}) {
		t.Errorf("Keys %v", o.Keys())
	}
	b := o.Get("b")
	if !o.Erase(jv.Str("b")) || b.Parent() != nil {
		t.Error("erased member still attached")
	}
	o.Clear()
	if o.String() != "{}" || !o.IsObject() {
		t.Errorf("Clear: %v", o)
	}
}

func TestCoerce(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		v       *jv.Value
		boolean bool
		number  float64
		integer int64
		str     string
	}{
		{jv.Str(""), false, -1, -1, ""},
		{jv.Str("0"), true, 0, 0, "0"},
		{jv.Str(" 2.5 "), true, 2.5, 2, " 2.5 "},
		{jv.Str("abc"), true, -1, -1, "abc"},
		{jv.Str("0x10"), true, -1, -1, "0x10"},
		{jv.Str("inf"), true, -1, -1, "inf"},
		{jv.Int(0), false, 0, 0, "0"},
		{jv.Int(-7), true, -7, -7, "-7"},
		{jv.Float(0.25), true, 0.25, 0, "0.25"},
		{jv.Float(-3.7), true, -3.7, -3, "-3.7"},
		{jv.Float(1e30), true, 1e30, -1, "1.000000e+30"},
		{jv.Bool(true), true, 1, 1, "true"},
		{jv.Bool(false), false, 0, 0, "false"},
		{jv.NewArray(jv.Int(1)), true, -1, -1, "Array[]"},
		{jv.NewObject(), true, -1, -1, "Object{}"},
		{nil, true, -1, -1, "def"},
	}
	for _, test := range tests {
		if b := test.v.AsBoolean(true); b != test.boolean {
			t.Errorf("AsBoolean(%v) = %v", test.v, b)
		}
		if f := test.v.AsNumber(-1); f != test.number {
			t.Errorf("AsNumber(%v) = %v", test.v, f)
		}
		if i := test.v.AsInteger(-1); i != test.integer {
			t.Errorf("AsInteger(%v) = %v", test.v, i)
		}
		if s := test.v.AsString("def"); s != test.str {
			t.Errorf("AsString(%v) = %q", test.v, s)
		}
	}
	if i := jv.Float(nan).AsInteger(-1); i != -1 {
		t.Errorf("NaN converted to %d", i)
	}
	if s := jv.Str("a\"b/c\n").AsEscapedString(""); s != `a\"b\/c\n` {
		t.Errorf("AsEscapedString: %s", s)
	}
}

func TestNumberFormat(t *testing.T) {
	zero := 0.0
	tests := []struct {
		have float64
		want string
	}{
		{1, "1.0"},
		{0, "0.0"},
		{-2.5, "-2.5"},
		{0.1, "0.1"},
		{123456.789, "123456.789"},
		{1e9, "1000000000.0"},
		{1e10, "1.000000e+10"},
		{-1e10, "-1.000000e+10"},
		{1e-7, "1.000000e-07"},
		{zero / zero, "null"},
		{1 / zero, "null"},
	}
	for _, test := range tests {
		if have := jv.Float(test.have).String(); have != test.want {
			t.Errorf("%v renders as %s, want %s", test.have, have, test.want)
		}
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name, have, want string
	}{
		{"u", `"abc"`, `"abc"`},
		{"surrogate", `"\ud83d\ude00"`, "\"\U0001F600\""},
		{"lone", `"\ud83dx"`, "\"�x\""},
		{"solidus", `"a/b"`, `"a\/b"`},
		{"control", `"\u0001\t"`, `"\u0001\t"`},
		{"quote", `"say \"hi\""`, `"say \"hi\""`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			n, err := jv.ReadJSON(strings.NewReader(test.have))
			if err != nil {
				t.Fatalf("tests setup fail: %s", err)
			}
			if n.String() != test.want {
				t.Error(n.String() + " != " + test.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		`{"a":[1,2.5,"x",true,null,{"b":{}}],"c":-9223372036854775808}`,
		`[[],[[]],{"":""}]`,
		`"\u0007\/"`,
		`{"pi":3.14159,"big":1.5e+300,"small":-2.5e-10}`,
	}
	for _, doc := range docs {
		v := jv.Parse(doc)
		if v.IsUndefined() {
			t.Fatalf("%s did not parse", doc)
		}
		w := jv.Parse(jv.Stringify(v, false))
		if !jv.Equal(v, w) {
			t.Errorf("round trip changed %s into %s", v, w)
		}
		w = jv.Parse(jv.PrettyStringify(v, jv.Pretty))
		if !jv.Equal(v, w) {
			t.Errorf("pretty round trip changed %s into %s", v, w)
		}
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		json  string
		ptr   string
		want  bool
		value string
	}{{
		`[null,5,"hello there"]`, "/2", true, `"hello there"`,
	}, {
		`{"a":null,"b":5,"json":"hello there"}`, "/json", true, `"hello there"`,
	}, {
		`{"index":{"inner":[true]}}`, "/index/inner/0", true, "true",
	}, {
		`{"index":[{"inner":[null,true]}]}`, "/index/inner/0", false, "",
	}, {
		`{"index":[{"inner":[null,true]}]}`, "/index/0/inner/1", true, "true",
	}, {
		`{"index":{"inner":[true]}}`, "/index/iner/0", false, "",
	}}
	for _, test := range tests {
		n := jv.Parse(test.json)
		if m := n.Find(test.ptr); (m != nil) != test.want {
			t.Errorf("%s %s", test.json, test.ptr)
		} else if m != nil && m.String() != test.value {
			t.Errorf("%s %s", m, test.value)
		}
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		json string
		len  int
	}{{
		"true", 0,
	}, {
		"{}", 0,
	}, {
		`{"a":5,"b":null}`, 2,
	}, {
		"[1,2,3,4,5,6,7,8,9]", 9,
	}}
	for _, test := range tests {
		n := jv.Parse(test.json)
		if n.Len() != test.len {
			t.Errorf("want %v got %v for %v", test.len, n.Len(), test.json)
		}
	}
}
