package sema

import (
	"pact/internal/ast"
	"pact/internal/diag"
)

// ValidatePatternShapes walks every destructuring pattern reachable from the
// unit — match arms, let bindings and function parameters — and checks
// rest-marker placement: within a field-pattern sequence of length n, `..`
// is valid only at index n-1. Every misplaced rest is flagged on its own;
// a correctly placed final rest never suppresses an earlier violation.
//
// Diagnostics come out in traversal order, which is source order.
func ValidatePatternShapes(builder *ast.Builder, unitID ast.UnitID, reporter diag.Reporter) {
	w := patternWalker{builder: builder, reporter: reporter}
	unit := builder.Units.Get(unitID)
	for _, declID := range unit.Decls {
		w.walkDecl(declID)
	}
}

type patternWalker struct {
	builder  *ast.Builder
	reporter diag.Reporter
}

func (w *patternWalker) walkDecl(id ast.DeclID) {
	decl := w.builder.Decls.Get(id)
	switch decl.Kind {
	case ast.DeclFn:
		fn, _ := w.builder.Decls.Fn(id)
		for _, param := range fn.Params {
			w.checkPattern(param.Pattern)
		}
		w.walkExpr(fn.Body)

	case ast.DeclStorage:
		storage, _ := w.builder.Decls.Storage(id)
		for _, field := range storage.Fields {
			w.walkExpr(field.Init)
		}

	case ast.DeclConst:
		c, _ := w.builder.Decls.Const(id)
		w.walkExpr(c.Value)

	case ast.DeclStruct, ast.DeclEnum:
		// no patterns or expressions inside
	}
}

func (w *patternWalker) walkStmt(id ast.StmtID) {
	stmt := w.builder.Stmts.Get(id)
	switch stmt.Kind {
	case ast.StmtLet:
		let, _ := w.builder.Stmts.Let(id)
		w.checkPattern(let.Pattern)
		w.walkExpr(let.Value)

	case ast.StmtExpr:
		es, _ := w.builder.Stmts.Expr(id)
		w.walkExpr(es.Expr)

	case ast.StmtReturn:
		ret, _ := w.builder.Stmts.Return(id)
		w.walkExpr(ret.Value)
	}
}

func (w *patternWalker) walkExpr(id ast.ExprID) {
	if id == ast.NoExprID {
		return
	}
	expr := w.builder.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprMatch:
		m, _ := w.builder.Exprs.Match(id)
		w.walkExpr(m.Scrutinee)
		for _, arm := range m.Arms {
			w.checkPattern(arm.Pattern)
			w.walkExpr(arm.Body)
		}

	case ast.ExprBlock:
		b, _ := w.builder.Exprs.Block(id)
		for _, stmt := range b.Stmts {
			w.walkStmt(stmt)
		}
		w.walkExpr(b.Tail)

	case ast.ExprCall:
		c, _ := w.builder.Exprs.Call(id)
		w.walkExpr(c.Callee)
		for _, arg := range c.Args {
			w.walkExpr(arg)
		}

	case ast.ExprField:
		f, _ := w.builder.Exprs.Field(id)
		w.walkExpr(f.Recv)

	case ast.ExprBinary:
		b, _ := w.builder.Exprs.Binary(id)
		w.walkExpr(b.Left)
		w.walkExpr(b.Right)

	case ast.ExprIdent, ast.ExprPath, ast.ExprLit:
		// leaves
	}
}

// checkPattern validates one pattern and recurses into sub-patterns, so the
// rule applies independently at every nesting level. Pre-order traversal
// keeps diagnostics in non-decreasing span order.
func (w *patternWalker) checkPattern(id ast.PatternID) {
	if id == ast.NoPatternID {
		return
	}
	pat := w.builder.Patterns.Get(id)
	switch pat.Kind {
	case ast.PatStruct, ast.PatTupleStruct, ast.PatEnumVariant:
		fields := w.builder.Patterns.FieldList(id)
		w.checkFieldList(pat, fields)
		for _, field := range fields {
			w.checkPattern(field.Sub)
		}

	case ast.PatWildcard, ast.PatBinding, ast.PatLit:
		// leaves
	}
}

// checkFieldList scans a field-pattern sequence once, left to right. A rest
// element anywhere but the final position produces one diagnostic whose
// primary span covers the entire enclosing pattern, not just the `..` token.
func (w *patternWalker) checkFieldList(enclosing *ast.Pattern, fields []ast.FieldPat) {
	for i, field := range fields {
		if field.Kind != ast.FieldPatRest {
			continue
		}
		if i == len(fields)-1 {
			continue
		}
		diag.ReportError(w.reporter, diag.SemaMisplacedRestPattern, enclosing.Span,
			"rest patterns must appear at the end of a field list").
			WithNote(field.Span, "move this '..' to the last position").
			Emit()
	}
}
