package parser

import (
	"math/big"

	"github.com/ion-lang/ionc/internal/ast"
	"github.com/ion-lang/ionc/internal/diagnostics"
	"github.com/ion-lang/ionc/internal/token"
)

func (p *Parser) registerPrefixFns() {
	p.prefixFns = map[token.SyntaxKind]prefixParseFn{
		token.Identifier:      p.parseIdentifierOrInstanceConstructor,
		token.NumberLiteral:   p.parsePrimitiveLiteral,
		token.StringLiteral:   p.parsePrimitiveLiteral,
		token.TrueKeyword:     p.parsePrimitiveLiteral,
		token.FalseKeyword:    p.parsePrimitiveLiteral,
		token.NullKeyword:     p.parsePrimitiveLiteral,
		token.InterpolationStart: p.parseInterpolatedString,
		token.LParen:          p.parseParenOrTuple,
		token.LBracket:        p.parseArrayLiteral,
		token.Less:            p.parseVectorLiteral,
		token.Minus:           p.parseUnary,
		token.Bang:            p.parseUnary,
		token.Tilde:           p.parseUnary,
		token.PlusPlus:        p.parseUnary,
		token.MinusMinus:      p.parseUnary,
		token.TypeOfKeyword:   p.parseTypeOf,
		token.NameOfKeyword:   p.parseNameOf,
		token.AwaitKeyword:    p.parseAwait,
	}
	// InterpolatedStringPart is the token the lexer produces for a
	// string's text before its first #{ (a string with no #{ is a plain
	// StringLiteral); parseInterpolatedString then resumes the lexer for
	// each following segment until the closing StringLiteral. It shares
	// the handler registered for InterpolationStart.
	p.prefixFns[token.InterpolatedStringPart] = p.parseInterpolatedString
}

func (p *Parser) registerInfixFns() {
	p.infixFns = map[token.SyntaxKind]infixParseFn{
		token.Plus:          p.parseBinary,
		token.Minus:         p.parseBinary,
		token.Star:          p.parseBinary,
		token.Slash:         p.parseBinary,
		token.Percent:       p.parseBinary,
		token.Caret:         p.parseBinary,
		token.Tilde:         p.parseBinary,
		token.Amp:           p.parseBinary,
		token.Pipe:          p.parseBinary,
		token.Shl:           p.parseBinary,
		token.Shr:           p.parseBinary,
		token.UShr:          p.parseBinary,
		token.EqualsEquals:  p.parseBinary,
		token.BangEquals:    p.parseBinary,
		token.Greater:       p.parseBinary,
		token.LessEquals:    p.parseBinary,
		token.GreaterEquals: p.parseBinary,
		token.AndAnd:        p.parseBinary,
		token.OrOr:          p.parseBinary,
		token.NullCoalesce:  p.parseBinary,
		token.DotDot:        p.parseRange,
		token.Less:          p.parseLessInfix,

		token.Equals:             p.parseAssignment,
		token.PlusEquals:         p.parseAssignment,
		token.MinusEquals:        p.parseAssignment,
		token.StarEquals:         p.parseAssignment,
		token.SlashEquals:        p.parseAssignment,
		token.PercentEquals:      p.parseAssignment,
		token.CaretEquals:        p.parseAssignment,
		token.AmpEquals:          p.parseAssignment,
		token.PipeEquals:         p.parseAssignment,
		token.ShlEquals:          p.parseAssignment,
		token.ShrEquals:          p.parseAssignment,
		token.UShrEquals:         p.parseAssignment,
		token.NullCoalesceEquals: p.parseAssignment,
		token.AndEquals:          p.parseAssignment,
		token.OrEquals:           p.parseAssignment,

		token.Question:   p.parseTernary,
		token.LParen:      p.parseInvocation,
		token.LBracket:    p.parseElementAccess,
		token.Dot:         p.parseMemberAccess,
		token.OptionalDot: p.parseOptionalMemberAccess,
		token.PlusPlus:    p.parsePostfixUnary,
		token.MinusMinus:  p.parsePostfixUnary,
	}
}

// parseExpression is the Pratt driver: parse a prefix (nud), then keep
// folding infix/postfix operators whose precedence exceeds minPrec.
func (p *Parser) parseExpression(minPrec int) ast.Expression {
	prefix, ok := p.prefixFns[p.cur.Kind]
	if !ok {
		p.report(diagnostics.UnexpectedCharacter, p.cur.GetText())
		tok := p.cur
		p.advance()
		return &ast.Identifier{Token: tok, Name: tok.GetText()}
	}
	left := prefix()
	for minPrec < p.curPrecedence() {
		infix, ok := p.infixFns[p.cur.Kind]
		if !ok {
			break
		}
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifierOrInstanceConstructor() ast.Expression {
	if p.looksLikeInstanceConstructorStart() {
		return p.parseInstanceConstructorBody(p.parseTypeNameRef())
	}
	tok := p.cur
	p.advance()
	name := tok.GetText()
	if name == "rgb" && p.cur.Kind == token.LParen {
		return p.parseRgbLiteral(tok)
	}
	if name == "hsv" && p.cur.Kind == token.LParen {
		return p.parseHsvLiteral(tok)
	}
	return &ast.Identifier{Token: tok, Name: name}
}

// looksLikeInstanceConstructorStart reports whether cur (an Identifier)
// is directly followed by `{`, with no intervening newline -- the
// surface form of an instance constructor in expression position.
// A type-argument list may appear in between (`Name<T> { ... }`); that
// case is left to the caller parsing a TypeNameRef first and checking
// for `{` itself, so this check only handles the common bare case.
func (p *Parser) looksLikeInstanceConstructorStart() bool {
	next := p.stream.Peek(1)
	return len(next) == 1 && next[0].Kind == token.LBrace
}

func (p *Parser) parsePrimitiveLiteral() ast.Expression {
	tok := p.cur
	p.advance()
	lit := &ast.PrimitiveLiteral{Token: tok, Kind: tok.Kind}
	switch tok.Kind {
	case token.NumberLiteral:
		lit.NumberValue = tok.Literal
		if _, ok := tok.Literal.(float64); ok {
			text := tok.GetText()
			i := len(text)
			for i > 0 && (text[i-1] == '%' || (text[i-1] >= 'a' && text[i-1] <= 'z')) {
				i--
			}
			lit.Unit = text[i:]
		}
	case token.StringLiteral:
		if s, ok := tok.Literal.(string); ok {
			lit.StringValue = s
		} else {
			lit.StringValue = tok.GetText()
		}
	case token.TrueKeyword:
		lit.BoolValue = true
	case token.FalseKeyword:
		lit.BoolValue = false
	case token.NullKeyword:
		// zero value is sufficient; Kind alone distinguishes null.
	}
	return lit
}

func (p *Parser) parseRgbLiteral(start token.Token) ast.Expression {
	p.advance() // consume '('
	r := p.parseByteComponent()
	p.expect(token.Comma)
	g := p.parseByteComponent()
	p.expect(token.Comma)
	b := p.parseByteComponent()
	p.expect(token.RParen)
	return &ast.RgbLiteral{Token: start, R: r, G: g, B: b}
}

func (p *Parser) parseByteComponent() uint8 {
	tok := p.expect(token.NumberLiteral)
	switch v := tok.Literal.(type) {
	case *big.Int:
		return uint8(v.Int64())
	case float64:
		return uint8(v)
	default:
		return 0
	}
}

func (p *Parser) parseHsvLiteral(start token.Token) ast.Expression {
	p.advance() // consume '('
	h := p.parseExpression(Lowest)
	p.expect(token.Comma)
	s := p.parseExpression(Lowest)
	p.expect(token.Comma)
	v := p.parseExpression(Lowest)
	p.expect(token.RParen)
	return &ast.HsvLiteral{Token: start, H: h, S: s, V: v}
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.cur
	p.advance()
	elems := p.parseExpressionList(token.RBracket)
	end := p.expect(token.RBracket)
	return &ast.ArrayLiteral{Token: tok, End: end, Elements: elems}
}

func (p *Parser) parseParenOrTuple() ast.Expression {
	tok := p.cur
	p.advance()
	if p.cur.Kind == token.RParen {
		end := p.cur
		p.advance()
		return &ast.TupleLiteral{Token: tok, End: end, Elements: nil}
	}
	first := p.parseExpression(Lowest)
	if p.cur.Kind == token.Comma {
		elems := []ast.Expression{first}
		for p.cur.Kind == token.Comma {
			p.advance()
			if p.cur.Kind == token.RParen {
				break
			}
			elems = append(elems, p.parseExpression(Lowest))
		}
		end := p.expect(token.RParen)
		return &ast.TupleLiteral{Token: tok, End: end, Elements: elems}
	}
	end := p.expect(token.RParen)
	return &ast.Parenthesized{Token: tok, End: end, Inner: first}
}

// parseVectorLiteral handles `<x, y, z>` in prefix/primary position.
// Per spec.md §4.2.3, this never competes with the postfix generic
// argument disambiguation (parseLessInfix), since that one only fires
// after an already-parsed primary expression.
func (p *Parser) parseVectorLiteral() ast.Expression {
	tok := p.cur
	p.advance()
	var comps []ast.Expression
	if p.cur.Kind != token.Greater && p.cur.Kind != token.Shr && p.cur.Kind != token.UShr {
		comps = append(comps, p.parseExpression(Lowest))
		for p.cur.Kind == token.Comma {
			p.advance()
			comps = append(comps, p.parseExpression(Lowest))
		}
	}
	end := p.cur
	p.closeAngleBracket()
	return &ast.VectorLiteral{Token: tok, End: end, Components: comps}
}

func (p *Parser) parseUnary() ast.Expression {
	tok := p.cur
	p.advance()
	operand := p.parseExpression(Unary)
	return &ast.UnaryOp{Token: tok, Operator: tok.Kind, Operand: operand}
}

func (p *Parser) parseTypeOf() ast.Expression {
	tok := p.cur
	p.advance()
	return &ast.TypeOf{Token: tok, Argument: p.parseExpression(Unary)}
}

func (p *Parser) parseNameOf() ast.Expression {
	tok := p.cur
	p.advance()
	target := p.parseExpression(Unary)
	if !ast.IsNameOfTarget(target) {
		p.ctx.Report(diagnostics.New(diagnostics.InvalidNameOf, target.Span()))
	}
	return &ast.NameOf{Token: tok, Target: target}
}

func (p *Parser) parseAwait() ast.Expression {
	tok := p.cur
	p.advance()
	return &ast.Await{Token: tok, Argument: p.parseExpression(Unary)}
}

func (p *Parser) parseInterpolatedString() ast.Expression {
	startTok := p.cur
	first, _ := startTok.Literal.(string)
	segments := []string{first}
	var exprs []ast.Expression
	endTok := startTok
	for {
		p.advance() // move past the part token into the embedded expression
		exprs = append(exprs, p.parseExpression(Lowest))
		if p.cur.Kind != token.RBrace {
			p.report(diagnostics.ExpectedDifferentSyntax, "}", p.cur.Kind.String())
		}
		part := p.stream.ResumeInterpolatedString()
		seg, _ := part.Literal.(string)
		segments = append(segments, seg)
		p.cur = part
		endTok = part
		if part.Kind == token.StringLiteral {
			p.advance()
			break
		}
		if p.ctx.Fatal {
			break
		}
	}
	return &ast.InterpolatedString{Token: startTok, End: endTok, Segments: segments, Expressions: exprs}
}

func (p *Parser) parseExpressionList(closeKind token.SyntaxKind) []ast.Expression {
	var list []ast.Expression
	if p.cur.Kind == closeKind {
		return nil
	}
	list = append(list, p.parseExpression(Lowest))
	for p.cur.Kind == token.Comma {
		p.advance()
		if p.cur.Kind == closeKind {
			break
		}
		list = append(list, p.parseExpression(Lowest))
	}
	return list
}

func (p *Parser) parseBinary(left ast.Expression) ast.Expression {
	tok := p.cur
	prec := p.curPrecedence()
	p.advance()
	right := p.parseExpression(prec)
	return &ast.BinaryOp{Token: tok, Left: left, Operator: tok.Kind, Right: right}
}

func (p *Parser) parseAssignment(left ast.Expression) ast.Expression {
	tok := p.cur
	if !ast.IsAssignmentTarget(left) {
		p.ctx.Report(diagnostics.New(diagnostics.InvalidAssignment, left.Span()))
	}
	p.advance()
	right := p.parseExpression(Assign - 1) // right-associative
	return &ast.AssignmentOp{Token: tok, Left: left, Operator: tok.Kind, Right: right}
}

func (p *Parser) parseTernary(cond ast.Expression) ast.Expression {
	tok := p.cur
	p.advance()
	then := p.parseExpression(Lowest)
	p.expect(token.Colon)
	els := p.parseExpression(Ternary - 1)
	return &ast.TernaryOp{Token: tok, Condition: cond, Then: then, Else: els}
}

func (p *Parser) parseRange(start ast.Expression) ast.Expression {
	tok := p.cur
	p.advance()
	second := p.parseExpression(Range)
	if p.cur.Kind == token.DotDot {
		p.advance()
		third := p.parseExpression(Range)
		return &ast.RangeLiteral{Token: tok, Start: start, Step: second, End: third}
	}
	return &ast.RangeLiteral{Token: tok, Start: start, Step: nil, End: second}
}

func (p *Parser) parseInvocation(callee ast.Expression) ast.Expression {
	tok := p.cur
	p.advance()
	args := p.parseExpressionList(token.RParen)
	end := p.expect(token.RParen)
	return &ast.Invocation{Token: tok, End: end, Callee: callee, Arguments: args}
}

func (p *Parser) parseElementAccess(object ast.Expression) ast.Expression {
	tok := p.cur
	p.advance()
	idx := p.parseExpression(Lowest)
	end := p.expect(token.RBracket)
	return &ast.ElementAccess{Token: tok, End: end, Object: object, Index: idx}
}

func (p *Parser) parseMemberAccess(object ast.Expression) ast.Expression {
	tok := p.cur
	p.advance()
	member := p.expectIdentifier()
	return &ast.MemberAccess{Token: tok, Object: object, Member: member}
}

func (p *Parser) parseOptionalMemberAccess(object ast.Expression) ast.Expression {
	tok := p.cur
	p.advance()
	member := p.expectIdentifier()
	return &ast.OptionalMemberAccess{Token: tok, Object: object, Member: member}
}

func (p *Parser) parsePostfixUnary(operand ast.Expression) ast.Expression {
	tok := p.cur
	p.advance()
	return &ast.PostfixUnaryOp{Token: tok, Operand: operand, Operator: tok.Kind}
}

// parseLessInfix is the postfix-position handler for `<`: either a
// generic-argument-prefixed invocation (spec.md §4.2.3) or an ordinary
// less-than comparison, decided by lookahead alone -- the grammar is
// genuinely ambiguous here, so this is the disambiguation point.
func (p *Parser) parseLessInfix(left ast.Expression) ast.Expression {
	if !p.looksLikeTypeArgumentList() {
		return p.parseBinary(left)
	}
	typeArgs := p.parseTypeArgumentList()
	if p.cur.Kind == token.Bang {
		p.advance()
	}
	tok := p.expect(token.LParen)
	args := p.parseExpressionList(token.RParen)
	end := p.expect(token.RParen)
	return &ast.Invocation{Token: tok, End: end, Callee: left, TypeArguments: typeArgs, Arguments: args}
}

func checkUnreachableCode(ctx interface {
	Report(d *diagnostics.Diagnostic)
}, statements []ast.Statement) {
	seenReturn := false
	for _, stmt := range statements {
		if seenReturn {
			ctx.Report(diagnostics.New(diagnostics.UnreachableCode, stmt.Span()))
			continue
		}
		if _, ok := stmt.(*ast.Return); ok {
			seenReturn = true
		}
	}
}

func (p *Parser) checkAmbiguousEquals(cond ast.Expression) {
	if _, ok := cond.(*ast.AssignmentOp); ok {
		p.ctx.Report(diagnostics.New(diagnostics.AmbiguousEquals, cond.Span()))
	}
}
