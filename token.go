package jsonvalue

import "fmt"

type tokenType uint8

const (
	errToken tokenType = iota
	nullToken
	trueToken
	falseToken
	numberToken
	stringToken
	commaToken
	colonToken
	arrayOToken
	arrayCToken
	objectOToken
	objectCToken
	eofToken
)

// token is a lexical token. Value holds the raw text of numbers, the still
// escaped content of strings and the offending text of errors.
type token struct {
	Type     tokenType
	Value    string
	position [2]int
}

func newToken(b byte, row, col int) token {
	t := token{position: [2]int{row, col}}
	switch b {
	case '{':
		t.Type = objectOToken
	case '}':
		t.Type = objectCToken
	case '[':
		t.Type = arrayOToken
	case ']':
		t.Type = arrayCToken
	case ':':
		t.Type = colonToken
	case ',':
		t.Type = commaToken
	default:
		t.Value = string(b)
	}
	return t
}

// String generates a readable form of a token meant for debuging.
func (t token) String() string {
	switch t.Type {
	case errToken:
		return "lex-err_" + t.Value
	case nullToken:
		return "'null'"
	case trueToken:
		return "'true'"
	case falseToken:
		return "'false'"
	case numberToken:
		return "lex-num_" + t.Value
	case stringToken:
		return "lex-str_" + t.Value
	case commaToken:
		return "','"
	case colonToken:
		return "':'"
	case arrayOToken:
		return "'['"
	case arrayCToken:
		return "']'"
	case objectOToken:
		return "'{'"
	case objectCToken:
		return "'}'"
	case eofToken:
		return "end of input"
	default:
		return "lex-unkown"
	}
}

// Error describes t as the offending token of a syntax error.
func (t token) Error() string {
	return fmt.Sprintf("%d:%d: unexpected %s", t.position[0]+1, t.position[1]+1, t.String())
}
