package parser

import (
	"slices"

	"pact/internal/ast"
	"pact/internal/diag"
	"pact/internal/lexer"
	"pact/internal/source"
	"pact/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Unit ast.UnitID
	Bag  *diag.Bag
}

// Parser — состояние парсера на один файл.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	unit     ast.UnitID
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseUnit — входная точка для разбора одной единицы компиляции.
// Требует уже созданный lexer (на основе source.File).
func ParseUnit(lx *lexer.Lexer, arenas *ast.Builder, opts Options) Result {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	p.parseModuleHeader()
	p.parseDecls()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		Unit: p.unit,
		Bag:  bag,
	}
}

// parseModuleHeader читает обязательный заголовок `script;`/`library;`/
// `contract;`/`predicate;`. При его отсутствии создаёт script-юнит, чтобы
// разбор мог продолжиться.
func (p *Parser) parseModuleHeader() {
	tok := p.lx.Peek()
	if !token.IsModuleKindKeyword(tok.Kind) {
		p.report(diag.SynMissingModuleHeader, diag.SevError, tok.Span,
			"expected module kind header ('script', 'library', 'contract' or 'predicate')")
		p.unit = p.arenas.Units.New(ast.ModuleScript, tok.Span)
		return
	}
	p.advance()

	kind := moduleKindOf(tok.Kind)
	headerSpan := tok.Span
	if p.at(token.Semicolon) {
		headerSpan = headerSpan.Cover(p.lx.Peek().Span)
		p.advance()
	} else {
		p.report(diag.SynExpectSemicolon, diag.SevError, p.lx.Peek().Span,
			"expected ';' after module kind header")
	}
	p.unit = p.arenas.Units.New(kind, headerSpan)
}

func moduleKindOf(k token.Kind) ast.ModuleKind {
	switch k {
	case token.KwLibrary:
		return ast.ModuleLibrary
	case token.KwContract:
		return ast.ModuleContract
	case token.KwPredicate:
		return ast.ModulePredicate
	default:
		return ast.ModuleScript
	}
}

// parseDecls — основной цикл верхнего уровня: пока не EOF — parseDecl.
func (p *Parser) parseDecls() {
	for !p.at(token.EOF) {
		if p.opts.Enough() {
			return
		}
		declID, ok := p.parseDecl()
		if !ok {
			p.resyncTop()
		} else {
			p.arenas.PushDecl(p.unit, declID)
		}
	}
}

// parseDecl выбирает по первому токену нужный распознаватель top-level конструкции.
func (p *Parser) parseDecl() (ast.DeclID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.KwStruct:
		return p.parseStructDecl()
	case token.KwEnum:
		return p.parseEnumDecl()
	case token.KwFn:
		return p.parseFnDecl()
	case token.KwStorage:
		return p.parseStorageDecl()
	case token.KwConst:
		return p.parseConstDecl()
	case token.KwScript, token.KwLibrary, token.KwContract, token.KwPredicate:
		p.report(diag.SynDuplicateModuleHeader, diag.SevError, tok.Span,
			"module kind is already declared; only one header is allowed per unit")
		p.advance()
		if p.at(token.Semicolon) {
			p.advance()
		}
		return ast.NoDeclID, false
	default:
		p.report(diag.SynUnexpectedTopLevel, diag.SevError, tok.Span, "unexpected top-level construct")
		return ast.NoDeclID, false
	}
}

// resyncTop — восстановление после ошибки на верхнем уровне:
// прокручиваем до ';' ИЛИ до стартового токена следующей декларации ИЛИ EOF.
func (p *Parser) resyncTop() {
	stopTokens := []token.Kind{
		token.Semicolon,
		token.KwStruct, token.KwEnum, token.KwFn, token.KwStorage, token.KwConst,
	}
	p.resyncUntil(stopTokens...)
	if p.at(token.Semicolon) {
		p.advance()
	}
}

func (p *Parser) resyncUntil(kinds ...token.Kind) {
	for !p.at(token.EOF) && !slices.Contains(kinds, p.lx.Peek().Kind) {
		p.advance()
	}
}
