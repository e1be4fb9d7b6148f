package parser

import (
	"github.com/ion-lang/ionc/internal/ast"
	"github.com/ion-lang/ionc/internal/token"
)

func (p *Parser) parseVariableDeclaration() ast.Statement {
	tok := p.cur
	isConst := tok.Kind == token.ConstKeyword
	p.advance()
	name := p.expectIdentifier()
	var typeAnnotation ast.TypeRef
	if p.cur.Kind == token.Colon {
		p.advance()
		typeAnnotation = p.parseTypeRef()
	}
	var initializer ast.Expression
	if p.cur.Kind == token.Equals {
		p.advance()
		initializer = p.parseExpression(Lowest)
	}
	return &ast.VariableDeclaration{
		Token:          tok,
		IsConst:        isConst,
		Name:           name,
		TypeAnnotation: typeAnnotation,
		Initializer:    initializer,
	}
}

func (p *Parser) parseFunctionDeclaration(decorators []*ast.Decorator, isAsync bool) ast.Statement {
	tok := p.expect(token.FunctionKeyword)
	name := p.expectIdentifier()
	var typeParams []*ast.TypeParameterRef
	if p.cur.Kind == token.Less {
		typeParams = p.parseTypeParameterList()
	}
	p.expect(token.LParen)
	params := p.parseParameterList()
	p.expect(token.RParen)
	var returnType ast.TypeRef
	if p.cur.Kind == token.Colon {
		p.advance()
		returnType = p.parseTypeRef()
	}
	body := p.parseBlock()
	return &ast.FunctionDeclaration{
		Token:          tok,
		Decorators:     decorators,
		IsAsync:        isAsync,
		Name:           name,
		TypeParameters: typeParams,
		Parameters:     params,
		ReturnType:     returnType,
		Body:           body,
	}
}

func (p *Parser) parseParameterList() []*ast.Parameter {
	var params []*ast.Parameter
	for p.cur.Kind != token.RParen && p.cur.Kind != token.EOF {
		params = append(params, p.parseParameter())
		if p.cur.Kind == token.Comma {
			p.advance()
			continue
		}
		break
	}
	return params
}

func (p *Parser) parseParameter() *ast.Parameter {
	tok := p.cur
	isVariadic := false
	if tok.Kind == token.Ellipsis {
		isVariadic = true
		p.advance()
		tok = p.cur
	}
	name := p.expectIdentifier()
	var typeRef ast.TypeRef
	if p.cur.Kind == token.Colon {
		p.advance()
		typeRef = p.parseTypeRef()
	}
	var def ast.Expression
	if p.cur.Kind == token.Equals {
		p.advance()
		def = p.parseExpression(Lowest)
	}
	return &ast.Parameter{Token: tok, Name: name, Type: typeRef, IsVariadic: isVariadic, Default: def}
}

func (p *Parser) parseTypeDeclaration() ast.Statement {
	tok := p.cur
	p.advance()
	name := p.expectIdentifier()
	var typeParams []*ast.TypeParameterRef
	if p.cur.Kind == token.Less {
		typeParams = p.parseTypeParameterList()
	}
	p.expect(token.Equals)
	value := p.parseTypeRef()
	return &ast.TypeDeclaration{Token: tok, Name: name, TypeParameters: typeParams, Value: value}
}

func (p *Parser) parseEventDeclaration() ast.Statement {
	tok := p.cur
	p.advance()
	name := p.expectIdentifier()
	p.expect(token.LParen)
	params := p.parseParameterList()
	end := p.expect(token.RParen)
	return &ast.EventDeclaration{Token: tok, End: end, Name: name, Parameters: params}
}

func (p *Parser) parseEnumDeclaration() ast.Statement {
	tok := p.cur
	p.advance()
	name := p.expectIdentifier()
	p.expect(token.LBrace)
	var members []*ast.EnumMember
	for p.cur.Kind != token.RBrace && p.cur.Kind != token.EOF {
		memberTok := p.cur
		memberName := p.expectIdentifier()
		var value ast.Expression
		if p.cur.Kind == token.Equals {
			p.advance()
			value = p.parseExpression(Lowest)
		}
		members = append(members, &ast.EnumMember{Token: memberTok, Name: memberName, Value: value})
		if p.cur.Kind == token.Comma {
			p.advance()
			continue
		}
		break
	}
	end := p.expect(token.RBrace)
	return &ast.EnumDeclaration{Token: tok, End: end, Name: name, Members: members}
}

func (p *Parser) parseInterfaceDeclaration() ast.Statement {
	tok := p.cur
	p.advance()
	name := p.expectIdentifier()
	var typeParams []*ast.TypeParameterRef
	if p.cur.Kind == token.Less {
		typeParams = p.parseTypeParameterList()
	}
	var extends []*ast.TypeNameRef
	if p.cur.Kind == token.Colon {
		p.advance()
		extends = append(extends, p.parseTypeNameRef())
		for p.cur.Kind == token.Comma {
			p.advance()
			extends = append(extends, p.parseTypeNameRef())
		}
	}
	p.expect(token.LBrace)
	var fields []*ast.InterfaceField
	var methods []*ast.InterfaceMethod
	for p.cur.Kind != token.RBrace && p.cur.Kind != token.EOF {
		memberTok := p.cur
		memberName := p.expectIdentifier()
		if p.cur.Kind == token.LParen {
			p.advance()
			params := p.parseParameterList()
			p.expect(token.RParen)
			var returnType ast.TypeRef
			if p.cur.Kind == token.Colon {
				p.advance()
				returnType = p.parseTypeRef()
			}
			methods = append(methods, &ast.InterfaceMethod{Token: memberTok, Name: memberName, Parameters: params, ReturnType: returnType})
		} else {
			optional := false
			if p.cur.Kind == token.Question {
				optional = true
				p.advance()
			}
			p.expect(token.Colon)
			fieldType := p.parseTypeRef()
			fields = append(fields, &ast.InterfaceField{Token: memberTok, Name: memberName, Type: fieldType, Optional: optional})
		}
		if p.cur.Kind == token.Comma || p.cur.Kind == token.Semicolon {
			p.advance()
			continue
		}
		break
	}
	end := p.expect(token.RBrace)
	return &ast.InterfaceDeclaration{
		Token:          tok,
		End:            end,
		Name:           name,
		TypeParameters: typeParams,
		Extends:        extends,
		Fields:         fields,
		Methods:        methods,
	}
}

func (p *Parser) parseInstanceStatement() ast.Statement {
	tok := p.cur
	p.advance()
	typeName := p.parseTypeNameRef()
	ctor := p.parseInstanceConstructorBody(typeName)
	return &ast.ExpressionStatement{Token: tok, Expression: ctor}
}

func (p *Parser) parseInstanceConstructorBody(typeName *ast.TypeNameRef) *ast.InstanceConstructor {
	p.expect(token.LBrace)
	ctor := &ast.InstanceConstructor{Token: typeName.Token, Type: typeName}
	for p.cur.Kind != token.RBrace && p.cur.Kind != token.EOF {
		if p.ctx.Fatal {
			break
		}
		switch p.cur.Kind {
		case token.NameKeyword:
			nameTok := p.cur
			p.advance()
			p.expect(token.Colon)
			value := p.parseExpression(Lowest)
			ctor.NameClause = &ast.InstanceNameDeclarator{Token: nameTok, Value: value}
		case token.TagKeyword:
			tagTok := p.cur
			p.advance()
			p.expect(token.Colon)
			var tags []ast.Expression
			if p.cur.Kind == token.LBracket {
				p.advance()
				tags = p.parseExpressionList(token.RBracket)
				p.expect(token.RBracket)
			} else {
				tags = append(tags, p.parseExpression(Lowest))
			}
			ctor.TagsClause = &ast.InstanceTagDeclarator{Token: tagTok, Tags: tags}
		case token.AttributeKeyword:
			attrTok := p.cur
			p.advance()
			attrName := p.expectIdentifier()
			p.expect(token.Colon)
			value := p.parseExpression(Lowest)
			ctor.Attributes = append(ctor.Attributes, &ast.InstanceAttributeDeclarator{Token: attrTok, Name: attrName, Value: value})
		case token.Identifier:
			if p.looksLikeInstanceConstructorStart() {
				ctor.Children = append(ctor.Children, p.parseInstanceConstructorBody(p.parseTypeNameRef()))
				break
			}
			propTok := p.cur
			propName := p.expectIdentifier()
			p.expect(token.Colon)
			value := p.parseExpression(Lowest)
			ctor.Properties = append(ctor.Properties, &ast.InstancePropertyDeclarator{Token: propTok, Name: propName, Value: value})
		default:
			p.expect(token.Identifier)
		}
		if p.cur.Kind == token.Comma || p.cur.Kind == token.Semicolon {
			p.advance()
		}
	}
	ctor.End = p.expect(token.RBrace)
	return ctor
}
