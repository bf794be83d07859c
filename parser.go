package jsonvalue

import (
	"regexp"
)

var numberRegex = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

type spanKind uint8

const (
	primitiveSpan spanKind = iota
	stringSpan
	arraySpan
	objectSpan
)

// span is one entry of the flat depth-first layout of a document. Arrays
// are followed by count element subtrees, objects by count pairs of a
// string span holding the key and the value subtree.
type span struct {
	kind  spanKind
	text  string
	count int
}

// parser is a state machine turning lex tokens into spans
// the parser stops at the first error token it receives from the lexer
type parser struct {
	in    []token
	next  int
	prev  token
	spans []span
	open  []int    // indexes of the unclosed container spans
	keys  []string // last key read per open container
}

type parseFunc func(p *parser) (parseFunc, error)

// parse checks a token stream against the JSON grammar and lays it out as
// spans.
func parse(tokens []token) ([]span, error) {
	p := &parser{
		in:    tokens,
		spans: make([]span, 0, len(tokens)/2+1),
	}
	var err error
	for f := parseFunc(expektValue); f != nil && err == nil; f, err = f(p) {
	}
	if err != nil {
		return nil, err
	}
	return p.spans, nil
}

func (p *parser) read() token {
	if p.next >= len(p.in) {
		return token{Type: eofToken, position: p.prev.position}
	}
	t := p.in[p.next]
	p.next++
	return t
}

// top returns the index of the innermost open container or -1.
func (p *parser) top() int {
	if len(p.open) == 0 {
		return -1
	}
	return p.open[len(p.open)-1]
}

func (p *parser) push(kind spanKind) {
	p.open = append(p.open, len(p.spans))
	p.keys = append(p.keys, "")
	p.spans = append(p.spans, span{kind: kind})
}

func (p *parser) pop() {
	p.open = p.open[:len(p.open)-1]
	p.keys = p.keys[:len(p.keys)-1]
}

func (p *parser) fail(msg string, t token) error {
	in, key := p.context()
	return newParseError(msg, p.prev, t, in, key)
}

// parseFuncs

func expektKey(p *parser) (parseFunc, error) {
	t := p.read()
	defer func() { p.prev = t }()
	top := p.top()
	if top < 0 || p.spans[top].kind != objectSpan {
		panic("invariant violation: expect key while not in object")
	}
	if t.Type == objectCToken && p.prev.Type == objectOToken {
		p.pop()
		return expektDelim, nil
	}
	if t.Type != stringToken {
		return nil, p.fail("key", t)
	}
	p.spans[top].count++
	p.spans = append(p.spans, span{kind: stringSpan, text: t.Value})
	p.keys[len(p.keys)-1] = t.Value
	p.prev, t = t, p.read()
	if t.Type != colonToken {
		return nil, p.fail("colon", t)
	}
	return expektValue, nil
}

func expektValue(p *parser) (parseFunc, error) {
	t := p.read()
	defer func() { p.prev = t }()
	top := p.top()
	if top >= 0 && p.spans[top].kind == arraySpan {
		if t.Type == arrayCToken && p.prev.Type == arrayOToken {
			p.pop()
			return expektDelim, nil
		}
		p.spans[top].count++
	}
	switch t.Type {
	case numberToken:
		if !numberRegex.MatchString(t.Value) {
			return nil, p.fail("number", t)
		}
		p.spans = append(p.spans, span{kind: primitiveSpan, text: t.Value})
		return expektDelim, nil
	case stringToken:
		p.spans = append(p.spans, span{kind: stringSpan, text: t.Value})
		return expektDelim, nil
	case nullToken, trueToken, falseToken:
		p.spans = append(p.spans, span{kind: primitiveSpan, text: t.Value})
		return expektDelim, nil
	case arrayOToken:
		p.push(arraySpan)
		return expektValue, nil
	case objectOToken:
		p.push(objectSpan)
		return expektKey, nil
	default:
		return nil, p.fail("value", t)
	}
}

func expektDelim(p *parser) (parseFunc, error) {
	t := p.read()
	defer func() { p.prev = t }()
	top := p.top()
	switch t.Type {
	case eofToken:
		if top < 0 {
			return nil, nil // all OK!
		}
		return nil, p.fail("delimiter", t)
	case commaToken:
		if top < 0 {
			return nil, p.fail("no comma", t)
		}
		if p.spans[top].kind == arraySpan {
			return expektValue, nil
		}
		return expektKey, nil
	case arrayCToken, objectCToken:
		if top < 0 {
			return nil, p.fail("to be in array or object", t)
		}
		switch p.spans[top].kind {
		case arraySpan:
			if t.Type != arrayCToken {
				return nil, p.fail("array closing", t)
			}
		case objectSpan:
			if t.Type != objectCToken {
				return nil, p.fail("object closing", t)
			}
		}
		p.pop()
		return expektDelim, nil
	default:
		return nil, p.fail("delimiter", t)
	}
}

// context names the innermost open container and, inside an object, the
// last key read.
func (p *parser) context() (Type, string) {
	top := p.top()
	switch {
	case top < 0:
		return Undefined, ""
	case p.spans[top].kind == arraySpan:
		return Array, ""
	default:
		return Object, p.keys[len(p.keys)-1]
	}
}
