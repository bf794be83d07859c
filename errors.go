package jsonvalue

import (
	"fmt"
)

// ParseError captures information on errors when parsing.
type ParseError struct {
	msg        string
	token      token
	before     token
	parentType Type
	key        string
}

func newParseError(msg string, before, after token, parent Type, key string) *ParseError {
	return &ParseError{
		msg:        msg,
		before:     before,
		token:      after,
		parentType: parent,
		key:        key,
	}
}

func (e *ParseError) Error() string {
	if e.before == (token{}) {
		return fmt.Sprintf("%s; expected %s", e.token.Error(), e.msg)
	}
	if e.parentType == Undefined {
		return fmt.Sprintf("%s; expected %s token after %s",
			e.token.Error(), e.msg, e.before.String())
	}
	if e.key == "" {
		return fmt.Sprintf("%s; expected %s token after %s (in %s)",
			e.token.Error(), e.msg, e.before.String(), e.parentType)
	}
	return fmt.Sprintf("%s; expected %s token after %s (at %q in %s)",
		e.token.Error(), e.msg, e.before.String(), e.key, e.parentType)
}

// Where returns the row and column, both counted from 1, where the syntax
// error in json occured.
func (e *ParseError) Where() (row, col int) {
	return e.token.position[0] + 1, e.token.position[1] + 1
}
