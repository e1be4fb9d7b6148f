package parser

import (
	"github.com/ion-lang/ionc/internal/ast"
	"github.com/ion-lang/ionc/internal/token"
)

var primitiveTypeNames = map[string]bool{
	"number": true,
	"string": true,
	"bool":   true,
	"void":   true,
}

// parseTypeRef parses a full type expression: union of intersections of
// postfix (nullable/array-suffixed) primaries, per spec.md §3's TypeRef
// family.
func (p *Parser) parseTypeRef() ast.TypeRef {
	first := p.parseIntersectionType()
	if p.cur.Kind != token.Pipe {
		return first
	}
	types := []ast.TypeRef{first}
	for p.cur.Kind == token.Pipe {
		p.advance()
		types = append(types, p.parseIntersectionType())
	}
	return &ast.UnionTypeRef{Token: zeroToken(), Types: types}
}

func (p *Parser) parseIntersectionType() ast.TypeRef {
	first := p.parsePostfixType()
	if p.cur.Kind != token.Amp {
		return first
	}
	types := []ast.TypeRef{first}
	for p.cur.Kind == token.Amp {
		p.advance()
		types = append(types, p.parsePostfixType())
	}
	return &ast.IntersectionTypeRef{Token: zeroToken(), Types: types}
}

func (p *Parser) parsePostfixType() ast.TypeRef {
	t := p.parsePrimaryType()
	for {
		switch {
		case p.cur.Kind == token.Question:
			tok := p.cur
			p.advance()
			t = &ast.NullableTypeRef{Token: tok, Inner: t}
		case p.cur.Kind == token.LBracket:
			tok := p.cur
			p.advance()
			end := p.expect(token.RBracket)
			t = &ast.ArrayTypeRef{Token: tok, End: end, Element: t}
		default:
			return t
		}
	}
}

func (p *Parser) parsePrimaryType() ast.TypeRef {
	switch p.cur.Kind {
	case token.NullKeyword:
		tok := p.cur
		p.advance()
		return &ast.PrimitiveTypeRef{Token: tok, Kind: tok.Kind}
	case token.NumberLiteral, token.StringLiteral, token.TrueKeyword, token.FalseKeyword:
		tok := p.cur
		lit := p.parsePrimitiveLiteral()
		return &ast.LiteralTypeRef{Token: tok, Value: lit}
	case token.LParen:
		return p.parseParenOrFunctionType(nil)
	case token.Less:
		typeParams := p.parseTypeParameterList()
		p.expect(token.LParen)
		return p.parseParenOrFunctionType(typeParams)
	case token.Identifier:
		if primitiveTypeNames[p.cur.GetText()] {
			tok := p.cur
			p.advance()
			return &ast.PrimitiveTypeRef{Token: tok, Kind: tok.Kind}
		}
		return p.parseTypeNameRef()
	default:
		tok := p.expect(token.Identifier)
		return &ast.TypeNameRef{Token: tok, Name: tok.GetText()}
	}
}

// parseParenOrFunctionType is entered with cur already at '(' (or just
// past it, when typeParams is non-nil and the caller already consumed
// the '(' via expect). It disambiguates tuple types from function
// types by the presence of a trailing `->`.
func (p *Parser) parseParenOrFunctionType(typeParams []*ast.TypeParameterRef) ast.TypeRef {
	tok := p.cur
	if typeParams == nil {
		p.advance() // consume '('
	}
	var elems []ast.TypeRef
	for p.cur.Kind != token.RParen && p.cur.Kind != token.EOF {
		elems = append(elems, p.parseTypeRef())
		if p.cur.Kind == token.Comma {
			p.advance()
			continue
		}
		break
	}
	closeParen := p.expect(token.RParen)
	if p.cur.Kind == token.Arrow || typeParams != nil {
		p.expect(token.Arrow)
		ret := p.parseTypeRef()
		return &ast.FunctionTypeRef{Token: tok, TypeParameters: typeParams, Parameters: elems, Return: ret}
	}
	if len(elems) == 1 {
		return elems[0]
	}
	return &ast.TupleTypeRef{Token: tok, End: closeParen, Elements: elems}
}

func (p *Parser) parseTypeNameRef() *ast.TypeNameRef {
	tok := p.expect(token.Identifier)
	ref := &ast.TypeNameRef{Token: tok, End: tok, Name: tok.GetText()}
	if p.cur.Kind == token.Less {
		ref.TypeArguments = p.parseTypeArgumentList()
		ref.End = p.cur
	}
	return ref
}

func (p *Parser) parseTypeParameterList() []*ast.TypeParameterRef {
	p.expect(token.Less)
	var params []*ast.TypeParameterRef
	for {
		tok := p.expect(token.Identifier)
		param := &ast.TypeParameterRef{Token: tok, Name: tok.GetText()}
		if p.cur.Kind == token.Colon {
			p.advance()
			param.Base = p.parseTypeRef()
		}
		if p.cur.Kind == token.Equals {
			p.advance()
			param.Default = p.parseTypeRef()
		}
		params = append(params, param)
		if p.cur.Kind == token.Comma {
			p.advance()
			continue
		}
		break
	}
	p.closeAngleBracket()
	return params
}

// parseTypeArgumentList parses `<T, U, ...>` with cur at '<', closing via
// the same >>/>>> splitting closeAngleBracket uses for expressions.
func (p *Parser) parseTypeArgumentList() []ast.TypeRef {
	p.advance() // consume '<'
	var args []ast.TypeRef
	for {
		args = append(args, p.parseTypeRef())
		if p.cur.Kind == token.Comma {
			p.advance()
			continue
		}
		break
	}
	p.closeAngleBracket()
	return args
}

func zeroToken() token.Token {
	return token.Token{}
}
