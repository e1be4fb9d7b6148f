package parser

import (
	"github.com/ion-lang/ionc/internal/diagnostics"
	"github.com/ion-lang/ionc/internal/token"
)

// closeAngleBracket consumes one level of a generic argument or type
// parameter list's closing `>`, splitting a compound `>>`/`>>>` token if
// that's what sits at cur, per spec.md §4.2.3/§9. The leftover half is
// pushed back onto the stream as a synthetic token so an enclosing
// generic list (or an enclosing comparison) sees it next.
func (p *Parser) closeAngleBracket() {
	switch p.cur.Kind {
	case token.Greater:
		p.advance()
	case token.Shr:
		rem := token.Synthetic(token.Greater, ">", p.cur.Span.Start.AddColumns(1))
		p.stream.PushBack(rem)
		p.advance()
	case token.UShr:
		rem := token.Synthetic(token.Shr, ">>", p.cur.Span.Start.AddColumns(1))
		p.stream.PushBack(rem)
		p.advance()
	default:
		p.report(diagnostics.ExpectedDifferentSyntax, ">", p.cur.Kind.String())
	}
}

// looksLikeTypeArgumentList implements spec.md §4.2.3's lookahead: a `<`
// after a postfix position starts a type-argument list only if a
// plausible closing `>`/`>>`/`>>>` is reachable through a run of tokens
// that could plausibly make up a type-argument list, immediately
// followed by `(` or `!(`. It never consumes anything -- it walks the
// stream's Peek window, which leaves the cursor untouched.
func (p *Parser) looksLikeTypeArgumentList() bool {
	const maxLookahead = 64
	depth := 1
	i := 1
	for depth > 0 {
		toks := p.stream.Peek(i)
		if len(toks) < i {
			return false
		}
		t := toks[i-1]
		switch t.Kind {
		case token.Less:
			depth++
		case token.Greater:
			depth--
		case token.Shr:
			depth -= 2
		case token.UShr:
			depth -= 3
		case token.Identifier, token.Comma, token.Dot, token.Question,
			token.LBracket, token.RBracket, token.Arrow,
			token.Pipe, token.Amp, token.LParen, token.RParen, token.Newline:
			// plausible inside a type-argument list
		default:
			return false
		}
		if depth < 0 || i >= maxLookahead {
			return false
		}
		i++
	}
	term := p.stream.Peek(i)
	if len(term) < i {
		return false
	}
	next := term[i-1]
	if next.Kind == token.LParen {
		return true
	}
	if next.Kind == token.Bang {
		term2 := p.stream.Peek(i + 1)
		return len(term2) > i && term2[i].Kind == token.LParen
	}
	return false
}
