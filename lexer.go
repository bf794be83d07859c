package jsonvalue

// lexer generates tokens from json
// after emitting an error token the lexer has to quit
type lexer struct {
	data     string
	start    int
	pos      int
	row, col int
	at       [2]int // position of the token starting at start
	out      []token
}

type lexFunc func(*lexer) lexFunc

// lex splits data into tokens. The last token is either an error token or
// an eofToken.
func lex(data string) []token {
	l := &lexer{data: data, out: make([]token, 0, len(data)/4+1)}
	for f := lexFunc(noneMode); f != nil; f = f(l) {
	}
	return l.out
}

func (l *lexer) fwd() {
	l.pos++
	l.col++
}

func (l *lexer) mark() {
	l.start = l.pos
	l.at = [2]int{l.row, l.col}
}

func (l *lexer) emit(t tokenType, value string) {
	l.out = append(l.out, token{Type: t, Value: value, position: l.at})
}

func noneMode(l *lexer) lexFunc {
	if l.pos >= len(l.data) {
		l.mark()
		l.emit(eofToken, "")
		return nil
	}
	switch c := l.data[l.pos]; c {
	case ' ', '\t', '\r':
		l.fwd()
		return noneMode
	case '\n':
		l.pos++
		l.col = 0
		l.row++
		return noneMode
	case '{', '}', '[', ']', ',', ':':
		l.out = append(l.out, newToken(c, l.row, l.col))
		l.fwd()
		return noneMode
	case '"':
		l.mark()
		l.fwd()
		return stringMode
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		l.mark()
		return numberMode
	default:
		l.mark()
		return otherMode
	}
}

func stringMode(l *lexer) lexFunc {
	if l.pos >= len(l.data) {
		l.emit(errToken, l.data[l.start:])
		return nil
	}
	switch c := l.data[l.pos]; {
	case c == '"':
		l.emit(stringToken, l.data[l.start+1:l.pos])
		l.fwd()
		return noneMode
	case c == '\\':
		l.fwd()
		return escapeMode
	case c < 0x20:
		l.emit(errToken, l.data[l.start:l.pos+1])
		return nil
	default:
		l.fwd()
		return stringMode
	}
}

// escapeMode checks the character following a backslash.
func escapeMode(l *lexer) lexFunc {
	if l.pos >= len(l.data) {
		l.emit(errToken, l.data[l.start:])
		return nil
	}
	switch l.data[l.pos] {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		l.fwd()
		return stringMode
	case 'u':
		l.fwd()
		for i := 0; i < 4; i++ {
			if l.pos >= len(l.data) || !isHex(l.data[l.pos]) {
				l.emit(errToken, l.data[l.start:min(l.pos+1, len(l.data))])
				return nil
			}
			l.fwd()
		}
		return stringMode
	default:
		l.emit(errToken, l.data[l.start:l.pos+1])
		return nil
	}
}

func numberMode(l *lexer) lexFunc {
	if l.pos < len(l.data) {
		switch l.data[l.pos] {
		case '-', '+', 'e', 'E', '.', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			l.fwd()
			return numberMode
		}
	}
	l.emit(numberToken, l.data[l.start:l.pos])
	return noneMode
}

func otherMode(l *lexer) lexFunc {
	for l.pos < len(l.data) && !isDelim(l.data[l.pos]) {
		l.fwd()
	}
	switch word := l.data[l.start:l.pos]; word {
	case "null":
		l.emit(nullToken, word)
	case "true":
		l.emit(trueToken, word)
	case "false":
		l.emit(falseToken, word)
	default:
		l.emit(errToken, word)
		return nil
	}
	return noneMode
}

func isDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '{', '}', '[', ']', ',', ':', '"':
		return true
	}
	return false
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
