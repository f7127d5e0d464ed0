package pipelang

type Token uint8

const (
	TokenInvalid Token = iota
	TokenLoop          // |
	TokenReset         // #
	TokenIncrement     // -
	TokenDecrement     // !
	TokenInput         // /
	TokenOutput        // \
	TokenNewline       // \n
)

var tokenSymbols = [...]rune{
	TokenLoop:      '|',
	TokenReset:     '#',
	TokenIncrement: '-',
	TokenDecrement: '!',
	TokenInput:     '/',
	TokenOutput:    '\\',
	TokenNewline:   '\n',
}

var tokenNames = [...]string{
	TokenInvalid:   "invalid",
	TokenLoop:      "loop",
	TokenReset:     "reset",
	TokenIncrement: "increment",
	TokenDecrement: "decrement",
	TokenInput:     "input",
	TokenOutput:    "output",
	TokenNewline:   "newline",
}

func (t Token) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return tokenNames[TokenInvalid]
}

// Symbol returns the source character of the token, or zero for TokenInvalid.
func (t Token) Symbol() rune {
	if t == TokenInvalid || int(t) >= len(tokenSymbols) {
		return 0
	}
	return tokenSymbols[t]
}

func lookupToken(r rune) (Token, bool) {
	switch r {
	case '|':
		return TokenLoop, true
	case '#':
		return TokenReset, true
	case '-':
		return TokenIncrement, true
	case '!':
		return TokenDecrement, true
	case '/':
		return TokenInput, true
	case '\\':
		return TokenOutput, true
	case '\n':
		return TokenNewline, true
	}
	return TokenInvalid, false
}
