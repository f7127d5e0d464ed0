package pipelang

import (
	"bufio"
	"io"
	"strings"
)

// Tokenize maps every recognized character of src to its token, in order.
// Unrecognized characters are dropped.
func Tokenize(src string) []Token {
	var tokens []Token
	for _, r := range src {
		if token, ok := lookupToken(r); ok {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

type Program struct {
	Source    *Source
	Tokens    []Token
	Positions []Pos
}

type Tokenizer struct {
	source  *bufio.Reader
	src     *Source
	currPos Pos
}

func NewTokenizer(src *Source) *Tokenizer {
	return &Tokenizer{
		source: bufio.NewReader(strings.NewReader(src.Content)),
		src:    src,
		currPos: Pos{
			Source: src,
			Line:   1,
			Column: 1,
		},
	}
}

func (t *Tokenizer) readRune() (rune, Pos, error) {
	r, _, err := t.source.ReadRune()
	if err != nil {
		return 0, t.currPos, err
	}
	pos := t.currPos
	if r == '\n' {
		t.currPos.Line++
		t.currPos.Column = 1
	} else {
		t.currPos.Column++
	}
	return r, pos, nil
}

func (t *Tokenizer) Program() (*Program, error) {
	program := &Program{
		Source: t.src,
	}
	for {
		r, pos, err := t.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		token, ok := lookupToken(r)
		if !ok {
			continue
		}
		program.Tokens = append(program.Tokens, token)
		program.Positions = append(program.Positions, pos)
	}
	return program, nil
}

// Parse tokenizes content and keeps the source position of every token.
func Parse(name string, content string) *Program {
	program, err := NewTokenizer(NewSource(name, content)).Program()
	if err != nil {
		// reading from a strings.Reader only fails with io.EOF
		panic(err)
	}
	return program
}

func ParseReader(name string, r io.Reader) (*Program, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(name, string(content)), nil
}

func (p *Program) Name() string {
	if p.Source == nil {
		return ""
	}
	return p.Source.Name
}

// PosOf returns the source position of the token at ip. Positions past the
// last token resolve to the end of the source.
func (p *Program) PosOf(ip int) Pos {
	if ip >= 0 && ip < len(p.Positions) {
		return p.Positions[ip]
	}
	pos := Pos{
		Source: p.Source,
		Line:   1,
		Column: 1,
	}
	if p.Source != nil && len(p.Source.Lines) > 0 {
		pos.Line = len(p.Source.Lines)
		pos.Column = len([]rune(p.Source.Lines[pos.Line-1])) + 1
	}
	return pos
}
