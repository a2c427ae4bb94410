package galang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// The tokens representing literal one-char lexemes
var literals = []string{"(", ")", ",", "+", "-", "*", "/", "^", ".", "|"}

// The named tokens
const (
	tokEOF = -1
	tokNum = 1
	tokID  = 2
	tokVar = 3
)

var lexer *lexmachine.Lexer
var lexerErr error

var initOnce sync.Once // monitors one-time initialization
func initLexer() {
	initOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`[0-9]+(\.[0-9]+)?`), makeToken(tokNum))
		lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), makeToken(tokID))
		lexer.Add([]byte(`\$([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), makeToken(tokVar))
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		for _, lit := range literals {
			lexer.Add([]byte(`\`+lit), makeToken(int(lit[0])))
		}
		lexerErr = lexer.Compile()
	})
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// token is a scanned input token.
type token struct {
	id     int
	lexeme string
	col    int
}

// scan tokenizes an input string completely.
func scan(input string) ([]token, error) {
	initLexer()
	if lexerErr != nil {
		return nil, fmt.Errorf("galang: cannot compile DFA: %w", lexerErr)
	}
	s, err := lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	var toks []token
	for {
		tok, err, eof := s.Next()
		if eof {
			break
		}
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				return nil, &SyntaxError{
					Pos:     ui.FailTC,
					Message: fmt.Sprintf("unrecognized input %q", input[ui.StartTC:ui.FailTC]),
				}
			}
			return nil, err
		}
		if tok == nil {
			continue
		}
		t := tok.(*lexmachine.Token)
		tracer().Debugf("token %d %q @%d", t.Type, string(t.Lexeme), t.TC)
		toks = append(toks, token{id: t.Type, lexeme: string(t.Lexeme), col: t.TC})
	}
	toks = append(toks, token{id: tokEOF, col: len(input)})
	return toks, nil
}
