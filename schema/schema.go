// Package schema derives information from JSON Schema documents: an
// expanded copy with every $ref and oneOf resolved, a default document
// built from the required, default and minItems keywords, and the
// sub-schema or type name governing a document path.
//
// Only the keywords type, properties, items, required, minItems, default,
// $ref and oneOf are interpreted. Nothing is validated.
package schema

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"

	jv "github.com/d1ced/jsonvalue"
)

// DefaultMaxDepth is the nesting bound used when Options.MaxDepth is zero.
const DefaultMaxDepth = 64

// Options tunes how a schema is resolved.
type Options struct {
	// MaxDepth bounds the nesting followed while expanding references and
	// synthesizing defaults.
	MaxDepth int
}

// Schema is a parsed schema document. It is not safe for concurrent use.
type Schema struct {
	source   string
	original *jv.Value
	expanded *jv.Value
	def      *jv.Value
	warnings []string
	opts     Options
}

// New parses src and expands it.
func New(src string, opts ...Options) (*Schema, error) {
	v, err := jv.ReadJSON(strings.NewReader(src))
	if err != nil {
		return nil, errors.Wrap(err, "schema")
	}
	s := newSchema(v, opts)
	s.source = src
	return s, nil
}

// FromValue builds a schema from a copy of v.
func FromValue(v *jv.Value, opts ...Options) *Schema {
	return newSchema(v.Clone(), opts)
}

// Load reads and expands the schema stored at path.
func Load(path string, opts ...Options) (*Schema, error) {
	v, err := jv.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "schema")
	}
	return newSchema(v, opts), nil
}

// FromYAML builds a schema from a YAML document.
func FromYAML(data []byte, opts ...Options) (*Schema, error) {
	v, err := jv.ParseYAML(data)
	if err != nil {
		return nil, errors.Wrap(err, "schema")
	}
	return newSchema(v, opts), nil
}

func newSchema(v *jv.Value, opts []Options) *Schema {
	s := &Schema{original: v}
	if len(opts) > 0 {
		s.opts = opts[0]
	}
	if s.opts.MaxDepth <= 0 {
		s.opts.MaxDepth = DefaultMaxDepth
	}
	s.source = v.String()
	s.expanded = v.Clone()
	s.expand(s.expanded, nil, 0)
	return s
}

// Source returns the schema text. For schemas not built from text it is
// the compact rendering of the document.
func (s *Schema) Source() string { return s.source }

// Original returns the schema document as parsed.
func (s *Schema) Original() *jv.Value { return s.original }

// Expanded returns the schema with every $ref and oneOf merged in place.
// A $ref that would re-enter itself stays in place, see Warnings.
func (s *Schema) Expanded() *jv.Value { return s.expanded }

// Warnings returns the problems met while resolving the schema, such as
// cyclic or unresolved references.
func (s *Schema) Warnings() []string {
	return append([]string(nil), s.warnings...)
}

func (s *Schema) warn(format string, a ...interface{}) {
	s.warnings = append(s.warnings, fmt.Sprintf(format, a...))
}

// DefaultDocument returns the minimal instance of an object schema: the
// required properties, each with its default or the zero value of its
// type. It is nil unless the schema has type "object" and declares
// properties. The result is shared between calls; Clone it before change.
func (s *Schema) DefaultDocument() *jv.Value {
	if s.def != nil {
		return s.def
	}
	if !s.expanded.Has("properties") || s.expanded.Get("type").AsString("") != "object" {
		return nil
	}
	s.def = s.object(s.original, nil, 0)
	return s.def
}

// DefaultFor returns a new default value for the document location ptr,
// whatever the type of its schema. DefaultFor("") covers the whole
// document and also serves array and scalar schemas. It is nil when ptr
// leaves the schema.
func (s *Schema) DefaultFor(ptr string) *jv.Value {
	node := s.original
	for _, seg := range jv.SplitPointer(ptr) {
		node = s.resolved(node)
		node = child(node, jv.UnescapeToken(seg))
		if node == nil {
			return nil
		}
	}
	return s.property(node, nil, 0)
}

// Info returns the expanded sub-schema governing the document location
// ptr. Walking stops at the first schema that is neither an object nor an
// array schema, that schema is returned. It is nil when a property is not
// declared.
func (s *Schema) Info(ptr string) *jv.Value {
	cur := s.expanded
	for _, seg := range jv.SplitPointer(ptr) {
		switch cur.Get("type").AsString("") {
		case "object", "array":
			cur = child(cur, jv.UnescapeToken(seg))
		default:
			return cur
		}
	}
	return cur
}

// TypeName names the type found at the document location ptr: the last
// segment of the $ref of its schema, or else the last segment of ptr.
func (s *Schema) TypeName(ptr string) string {
	cur := s.original
	key := ""
walk:
	for _, seg := range jv.SplitPointer(ptr) {
		key = jv.UnescapeToken(seg)
		if cur.Has("$ref") {
			cur = s.original.EvalPointer(cur.Get("$ref").AsString(""), false)
		}
		switch cur.Get("type").AsString("") {
		case "object", "array":
			cur = child(cur, key)
		default:
			break walk
		}
	}
	if cur.Has("$ref") {
		if segs := jv.SplitPointer(cur.Get("$ref").AsString("")); len(segs) > 0 {
			return jv.UnescapeToken(segs[len(segs)-1])
		}
	}
	return key
}

// child steps from an object or array schema to the schema of key.
func child(node *jv.Value, key string) *jv.Value {
	switch node.Get("type").AsString("") {
	case "object":
		return node.Get("properties").Get(key)
	case "array":
		items := node.Get("items")
		if items.IsArray() {
			return items.At(0)
		}
		return items
	}
	return nil
}

// resolved returns node with its own $ref and oneOf merged in, as a copy.
func (s *Schema) resolved(node *jv.Value) *jv.Value {
	if !node.Has("$ref") && !node.Has("oneOf") {
		return node
	}
	c := node.Clone()
	s.resolve(c, nil)
	return c
}

// refChain lists the $ref pointers whose targets a node was copied from,
// outermost first.
type refChain []string

func (c refChain) has(ref string) bool {
	return slices.Contains(c, ref)
}

// sub returns the chain for the member key of a node that followed the
// references entered. Members the targets did not contribute keep c.
func (c refChain) sub(entered []string, from map[string]bool, key string) refChain {
	if len(entered) == 0 || !from[key] {
		return c
	}
	return append(c[:len(c):len(c)], entered...)
}

func (s *Schema) expand(v *jv.Value, chain refChain, depth int) {
	if depth > s.opts.MaxDepth {
		s.warn("%s: nesting exceeds %d levels", v.Pointer(), s.opts.MaxDepth)
		return
	}
	switch v.Type() {
	case jv.Object:
		entered, from := s.resolve(v, chain)
		for k, c := range v.All() {
			s.expand(c, chain.sub(entered, from, k.AsString("")), depth+1)
		}
	case jv.Array:
		for _, c := range v.All() {
			s.expand(c, chain, depth+1)
		}
	}
}

// resolve merges the oneOf and $ref targets of the object v into v, the
// members of v taking precedence. It returns the references followed and
// the member names their targets contributed. A reference already on chain
// is a cycle and stays in place.
func (s *Schema) resolve(v *jv.Value, chain refChain) (entered []string, from map[string]bool) {
	pickOneOf(v)
	from = map[string]bool{}
	for v.Has("$ref") {
		ptr := v.Get("$ref").AsString("")
		ref := strings.TrimPrefix(ptr, "#")
		if chain.has(ref) || slices.Contains(entered, ref) {
			s.warn("%s: cyclic $ref %s left unresolved", v.Pointer(), ptr)
			break
		}
		v.Delete("$ref")
		target := s.original.EvalPointer(ptr, false)
		if target == nil {
			s.warn("%s: unresolved $ref %s", v.Pointer(), ptr)
		}
		for _, k := range target.Keys() {
			from[k] = true
		}
		v.Move(jv.Or(v, target))
		entered = append(entered, ref)
		inherited := from["oneOf"]
		for _, k := range pickOneOf(v) {
			from[k] = from[k] || inherited
		}
	}
	return entered, from
}

// pickOneOf merges the first oneOf alternative into v and returns the
// member names it brought.
func pickOneOf(v *jv.Value) []string {
	if !v.Has("oneOf") {
		return nil
	}
	alt := v.Get("oneOf").At(0).Clone()
	v.Delete("oneOf")
	v.Move(jv.Or(v, alt))
	return alt.Keys()
}
func typeOf(prop *jv.Value) jv.Type {
	t := prop.Get("type")
	if t.IsArray() {
		t = t.At(0)
	}
	switch t.AsString("") {
	case "string":
		return jv.String
	case "integer":
		return jv.Integer
	case "number":
		return jv.Number
	case "boolean":
		return jv.Boolean
	case "object":
		return jv.Object
	case "array":
		return jv.Array
	}
	return jv.Undefined
}

func (s *Schema) property(node *jv.Value, chain refChain, depth int) *jv.Value {
	if depth > s.opts.MaxDepth {
		s.warn("%s: nesting exceeds %d levels", node.Pointer(), s.opts.MaxDepth)
		return &jv.Value{}
	}
	prop := node.Clone()
	entered, from := s.resolve(prop, chain)

	switch typeOf(prop) {
	case jv.String:
		return defaultOr(prop, jv.Str(""))
	case jv.Integer:
		return defaultOr(prop, jv.Int(0))
	case jv.Number:
		return defaultOr(prop, jv.Float(0))
	case jv.Boolean:
		return defaultOr(prop, jv.Bool(false))
	case jv.Array:
		return s.array(prop, chain.sub(entered, from, "items"), depth)
	case jv.Object:
		return s.object(prop, chain.sub(entered, from, "properties"), depth)
	}
	return &jv.Value{}
}

func defaultOr(prop, zero *jv.Value) *jv.Value {
	if prop.Has("default") {
		return prop.Get("default").Clone()
	}
	return zero
}

func (s *Schema) object(prop *jv.Value, chain refChain, depth int) *jv.Value {
	if prop.Has("default") {
		return prop.Get("default").Clone()
	}
	rv := jv.NewObject()
	required := prop.Get("required")
	if !required.IsArray() {
		return rv
	}
	props := prop.Get("properties")
	for _, r := range required.All() {
		key := r.AsString("")
		if props.Has(key) {
			rv.Member(key).Move(s.property(props.Get(key), chain, depth+1))
		}
	}
	return rv
}

func (s *Schema) array(prop *jv.Value, chain refChain, depth int) *jv.Value {
	if prop.Has("default") {
		return prop.Get("default").Clone()
	}
	rv := jv.NewArray()
	n := max(0, int(prop.Get("minItems").AsInteger(0)))
	items := prop.Get("items")
	switch items.Type() {
	case jv.Object:
		d := s.property(items, chain, depth+1)
		for i := 0; i < n; i++ {
			rv.Append(d)
		}
	case jv.Array:
		for i, item := range items.All() {
			if int(i.AsInteger(0)) >= n {
				break
			}
			rv.Append(s.property(item, chain, depth+1))
		}
	}
	return rv
}
