package parser

import (
	"github.com/ion-lang/ionc/internal/ast"
	"github.com/ion-lang/ionc/internal/diagnostics"
	"github.com/ion-lang/ionc/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Kind {
	case token.At:
		return p.parseDecoratedFunction()
	case token.AsyncKeyword:
		p.advance()
		return p.parseFunctionDeclaration(nil, true)
	case token.FunctionKeyword:
		return p.parseFunctionDeclaration(nil, false)
	case token.LetKeyword, token.ConstKeyword:
		return p.parseVariableDeclaration()
	case token.TypeKeyword:
		return p.parseTypeDeclaration()
	case token.EventKeyword:
		return p.parseEventDeclaration()
	case token.EnumKeyword:
		return p.parseEnumDeclaration()
	case token.InterfaceKeyword:
		return p.parseInterfaceDeclaration()
	case token.InstanceKeyword:
		return p.parseInstanceStatement()
	case token.ExportKeyword:
		return p.parseExport()
	case token.ImportKeyword:
		return p.parseImport()
	case token.IfKeyword:
		return p.parseIf()
	case token.WhileKeyword:
		return p.parseWhile()
	case token.RepeatKeyword:
		return p.parseRepeat()
	case token.ForKeyword:
		return p.parseFor()
	case token.AfterKeyword:
		return p.parseAfter()
	case token.EveryKeyword:
		return p.parseEvery()
	case token.MatchKeyword:
		return p.parseMatch()
	case token.ReturnKeyword:
		return p.parseReturn()
	case token.BreakKeyword:
		tok := p.cur
		p.advance()
		return &ast.Break{Token: tok}
	case token.ContinueKeyword:
		tok := p.cur
		p.advance()
		return &ast.Continue{Token: tok}
	case token.LBrace:
		return p.parseBlock()
	default:
		tok := p.cur
		expr := p.parseExpression(Lowest)
		return &ast.ExpressionStatement{Token: tok, Expression: expr}
	}
}

func (p *Parser) parseDecoratedFunction() ast.Statement {
	var decorators []*ast.Decorator
	for p.cur.Kind == token.At {
		decorators = append(decorators, p.parseDecorator())
	}
	isAsync := false
	if p.cur.Kind == token.AsyncKeyword {
		isAsync = true
		p.advance()
	}
	if p.cur.Kind != token.FunctionKeyword {
		p.report(diagnostics.InvalidDecoratorTarget)
	}
	return p.parseFunctionDeclaration(decorators, isAsync)
}

func (p *Parser) parseDecorator() *ast.Decorator {
	tok := p.cur
	p.advance()
	name := p.expectIdentifier()
	var args []ast.Expression
	end := tok
	if p.cur.Kind == token.LParen {
		p.advance()
		args = p.parseExpressionList(token.RParen)
		end = p.expect(token.RParen)
	}
	return &ast.Decorator{Token: tok, End: end, Name: name, Arguments: args}
}

func (p *Parser) parseBlock() *ast.Block {
	tok := p.expect(token.LBrace)
	var statements []ast.Statement
	for p.cur.Kind != token.RBrace && p.cur.Kind != token.EOF {
		p.skipSemicolons()
		if p.cur.Kind == token.RBrace {
			break
		}
		statements = append(statements, p.parseStatement())
		p.skipSemicolons()
		if p.ctx.Fatal {
			break
		}
	}
	checkUnreachableCode(p.ctx, statements)
	end := p.expect(token.RBrace)
	return &ast.Block{Token: tok, End: end, Statements: statements}
}

func (p *Parser) parseExport() ast.Statement {
	tok := p.cur
	p.advance()
	inner := p.parseStatement()
	if !ast.IsDeclaration(inner) {
		p.ctx.Report(diagnostics.New(diagnostics.InvalidExport, inner.Span()))
	}
	return &ast.Export{Token: tok, Inner: inner}
}

func (p *Parser) parseImport() ast.Statement {
	tok := p.cur
	p.advance()
	var names []*ast.Identifier
	importAll := false
	if p.cur.Kind == token.Star {
		importAll = true
		p.advance()
	} else {
		names = append(names, p.expectIdentifier())
		for p.cur.Kind == token.Comma {
			p.advance()
			names = append(names, p.expectIdentifier())
		}
	}
	p.expect(token.FromKeyword)
	moduleTok := p.expect(token.StringLiteral)
	moduleName, _ := moduleTok.Literal.(string)
	if moduleName == "" {
		moduleName = moduleTok.GetText()
	}
	return &ast.Import{Token: tok, ImportAll: importAll, Names: names, ModuleName: moduleName}
}

func (p *Parser) parseIf() ast.Statement {
	tok := p.cur
	p.advance()
	cond := p.parseExpression(Lowest)
	p.checkAmbiguousEquals(cond)
	then := p.parseBlock()
	var elseStmt ast.Statement
	if p.cur.Kind == token.ElseKeyword {
		p.advance()
		if p.cur.Kind == token.IfKeyword {
			elseStmt = p.parseIf()
		} else {
			elseStmt = p.parseBlock()
		}
	}
	return &ast.If{Token: tok, Condition: cond, Then: then, Else: elseStmt}
}

func (p *Parser) parseWhile() ast.Statement {
	tok := p.cur
	p.advance()
	cond := p.parseExpression(Lowest)
	p.checkAmbiguousEquals(cond)
	body := p.parseBlock()
	return &ast.While{Token: tok, Condition: cond, Body: body}
}

func (p *Parser) parseRepeat() ast.Statement {
	tok := p.cur
	p.advance()
	body := p.parseBlock()
	p.expect(token.WhileKeyword)
	cond := p.parseExpression(Lowest)
	p.checkAmbiguousEquals(cond)
	return &ast.Repeat{Token: tok, Body: body, Condition: cond}
}

func (p *Parser) parseFor() ast.Statement {
	tok := p.cur
	p.advance()
	names := []*ast.Identifier{p.expectIdentifier()}
	for p.cur.Kind == token.Comma {
		p.advance()
		names = append(names, p.expectIdentifier())
	}
	p.expect(token.Colon)
	iterable := p.parseExpression(Lowest)
	body := p.parseBlock()
	return &ast.For{Token: tok, Names: names, Iterable: iterable, Body: body}
}

func (p *Parser) parseAfter() ast.Statement {
	tok := p.cur
	p.advance()
	delay := p.parseExpression(Lowest)
	body := p.parseBlock()
	return &ast.After{Token: tok, Delay: delay, Body: body}
}

func (p *Parser) parseEvery() ast.Statement {
	tok := p.cur
	p.advance()
	interval := p.parseExpression(Lowest)
	body := p.parseBlock()
	return &ast.Every{Token: tok, Interval: interval, Body: body}
}

func (p *Parser) parseMatch() ast.Statement {
	tok := p.cur
	p.advance()
	subject := p.parseExpression(Lowest)
	p.expect(token.LBrace)
	var cases []*ast.MatchCase
	var elseCase *ast.MatchElseCase
	for p.cur.Kind != token.RBrace && p.cur.Kind != token.EOF {
		if p.ctx.Fatal {
			break
		}
		if p.cur.Kind == token.ElseKeyword {
			elseTok := p.cur
			p.advance()
			var name *ast.Identifier
			if p.cur.Kind == token.Identifier {
				name = p.expectIdentifier()
			}
			p.expect(token.Arrow)
			body := p.parseCaseBody()
			elseCase = &ast.MatchElseCase{Token: elseTok, Name: name, Body: body}
		} else {
			caseTok := p.cur
			comparands := []ast.Expression{p.parseExpression(Lowest)}
			for p.cur.Kind == token.Comma {
				p.advance()
				comparands = append(comparands, p.parseExpression(Lowest))
			}
			p.expect(token.Arrow)
			body := p.parseCaseBody()
			cases = append(cases, &ast.MatchCase{Token: caseTok, Comparands: comparands, Body: body})
		}
		for p.cur.Kind == token.Comma || p.cur.Kind == token.Semicolon {
			p.advance()
		}
	}
	end := p.expect(token.RBrace)
	return &ast.Match{Token: tok, End: end, Subject: subject, Cases: cases, ElseCase: elseCase}
}

func (p *Parser) parseCaseBody() ast.Statement {
	if p.cur.Kind == token.LBrace {
		return p.parseBlock()
	}
	tok := p.cur
	expr := p.parseExpression(Lowest)
	return &ast.ExpressionStatement{Token: tok, Expression: expr}
}

func (p *Parser) parseReturn() ast.Statement {
	tok := p.cur
	raw := p.stream.Peek(1)
	omitValue := len(raw) == 0 || raw[0].Kind == token.Newline || raw[0].Kind == token.Semicolon || raw[0].Kind == token.RBrace
	if omitValue {
		p.advance()
		return &ast.Return{Token: tok}
	}
	p.advance()
	value := p.parseExpression(Lowest)
	return &ast.Return{Token: tok, Value: value}
}
