// Package parser builds ast.Expr trees from a lexer.Token stream.
package parser

import (
	"fmt"
	"strconv"

	"github.com/leinonen/golisp-core/pkg/ast"
	"github.com/leinonen/golisp-core/pkg/lexer"
)

// Parser consumes a fixed token slice and produces ast.Expr values.
type Parser struct {
	tokens   []lexer.Token
	pos      int
	filename string
}

// New creates a Parser over tokens, attributing filename in errors.
func New(tokens []lexer.Token, filename string) *Parser {
	return &Parser{tokens: tokens, filename: filename}
}

// ParseExpr parses a single expression from source text.
func ParseExpr(input, filename string) (ast.Expr, error) {
	toks, err := lexer.New(input, filename).Tokenize()
	if err != nil {
		return nil, err
	}
	return New(toks, filename).parseExpr()
}

// ParseFile parses a whole file into a sequence of top-level expressions.
func ParseFile(input, filename string) ([]ast.Expr, error) {
	toks, err := lexer.New(input, filename).Tokenize()
	if err != nil {
		return nil, err
	}
	p := New(toks, filename)
	var exprs []ast.Expr
	for p.current().Type != lexer.EOF {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

func (p *Parser) current() lexer.Token { return p.tokens[p.pos] }

func (p *Parser) advance() lexer.Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	tok := p.current()
	pos := tok.Position
	pos.File = p.filename

	switch tok.Type {
	case lexer.EOF:
		return nil, fmt.Errorf("%s: unexpected end of input", pos)

	case lexer.LParen:
		return p.parseList()

	case lexer.Quote:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.ExpressionList{
			Elements: []ast.Expr{&ast.Identifier{Name: "quote", Position: pos}, inner},
			Position: pos,
		}, nil

	case lexer.Number:
		p.advance()
		n, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: malformed integer literal %q", pos, tok.Value)
		}
		return &ast.IntLiteral{Value: n, Position: pos}, nil

	case lexer.String:
		p.advance()
		return &ast.StringLiteral{Value: tok.Value, Position: pos}, nil

	case lexer.Symbol:
		p.advance()
		return &ast.Identifier{Name: tok.Value, Position: pos}, nil

	case lexer.RParen:
		return nil, fmt.Errorf("%s: unexpected )", pos)

	default:
		return nil, fmt.Errorf("%s: unexpected token %q", pos, tok.Value)
	}
}

func (p *Parser) parseList() (ast.Expr, error) {
	pos := p.current().Position
	pos.File = p.filename
	p.advance() // consume (

	var elements []ast.Expr
	for {
		if p.current().Type == lexer.EOF {
			return nil, fmt.Errorf("%s: unclosed list", pos)
		}
		if p.current().Type == lexer.RParen {
			p.advance()
			return &ast.ExpressionList{Elements: elements, Position: pos}, nil
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}
}
