package mdhtml

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnbalanced reports a token stream whose open and close tokens do not
// pair up.
var ErrUnbalanced = errors.New("unbalanced token stream")

// CheckNesting verifies that every open token is closed later by a token of
// the same kind and tag at the same level, and that each table_open is
// directly followed by its table_close. Inline children are checked as
// separate streams.
func CheckNesting(tokens []Token) error {
	return checkNesting(tokens, "")
}

func checkNesting(tokens []Token, path string) error {
	var stack []int
	for i := range tokens {
		tok := &tokens[i]
		if tok.Type == TypeTableOpen {
			if i+1 >= len(tokens) || tokens[i+1].Type != TypeTableClose {
				return fmt.Errorf("%w: table_open at %s%d is not directly closed", ErrUnbalanced, path, i)
			}
			continue
		}
		if tok.Type == TypeTableClose {
			if i == 0 || tokens[i-1].Type != TypeTableOpen {
				return fmt.Errorf("%w: stray table_close at %s%d", ErrUnbalanced, path, i)
			}
			continue
		}
		switch tok.Nesting {
		case NestingOpen:
			stack = append(stack, i)
		case NestingClose:
			if len(stack) == 0 {
				return fmt.Errorf("%w: %s at %s%d closes nothing", ErrUnbalanced, tok.Type, path, i)
			}
			open := &tokens[stack[len(stack)-1]]
			stack = stack[:len(stack)-1]
			if !pairs(open, tok) {
				return fmt.Errorf("%w: %s at %s%d does not close %s", ErrUnbalanced, tok.Type, path, i, open.Type)
			}
		}
		if len(tok.Children) > 0 {
			if err := checkNesting(tok.Children, fmt.Sprintf("%s%d/", path, i)); err != nil {
				return err
			}
		}
	}
	if len(stack) > 0 {
		open := &tokens[stack[len(stack)-1]]
		return fmt.Errorf("%w: %s at %s%d is never closed", ErrUnbalanced, open.Type, path, stack[len(stack)-1])
	}
	return nil
}

func pairs(open, close *Token) bool {
	base, ok := strings.CutSuffix(string(open.Type), "_open")
	if !ok {
		return false
	}
	return string(close.Type) == base+"_close" && open.Tag == close.Tag && open.Level == close.Level
}
