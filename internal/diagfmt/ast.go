package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"pact/internal/ast"
	"pact/internal/source"
)

// ASTNodeOutput is one node of the dumped syntax tree. The same tree backs
// both the pretty and the JSON renderers.
type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	Span     source.Span     `json:"span"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatUnitPretty выводит дерево единицы компиляции в человекочитаемом виде.
func FormatUnitPretty(w io.Writer, builder *ast.Builder, unitID ast.UnitID, fs *source.FileSet) error {
	root, err := buildUnitNode(builder, unitID)
	if err != nil {
		return err
	}
	writeNodePretty(w, root, fs, "", true, true)
	return nil
}

// FormatUnitJSON выводит дерево единицы компиляции в JSON.
func FormatUnitJSON(w io.Writer, builder *ast.Builder, unitID ast.UnitID) error {
	root, err := buildUnitNode(builder, unitID)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(root)
}

func writeNodePretty(w io.Writer, node ASTNodeOutput, fs *source.FileSet, prefix string, isLast, isRoot bool) {
	label := node.Type
	if node.Text != "" {
		label += " " + node.Text
	}

	if isRoot {
		fmt.Fprintf(w, "%s (span: %s)\n", label, formatSpan(node.Span, fs))
	} else if isLast {
		fmt.Fprintf(w, "%s└─ %s (span: %s)\n", prefix, label, formatSpan(node.Span, fs))
		prefix += "   "
	} else {
		fmt.Fprintf(w, "%s├─ %s (span: %s)\n", prefix, label, formatSpan(node.Span, fs))
		prefix += "│  "
	}

	for i, child := range node.Children {
		writeNodePretty(w, child, fs, prefix, i == len(node.Children)-1, false)
	}
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if span.Empty() {
		return "-"
	}
	start, end := fs.Resolve(span)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

func buildUnitNode(builder *ast.Builder, unitID ast.UnitID) (ASTNodeOutput, error) {
	unit := builder.Units.Get(unitID)
	if unit == nil {
		return ASTNodeOutput{}, fmt.Errorf("unit not found")
	}

	node := ASTNodeOutput{
		Type: "Unit",
		Text: unit.Kind.String(),
		Span: unit.Span,
	}
	for _, declID := range unit.Decls {
		node.Children = append(node.Children, buildDeclNode(builder, declID))
	}
	return node, nil
}

func buildDeclNode(builder *ast.Builder, declID ast.DeclID) ASTNodeOutput {
	decl := builder.Decls.Get(declID)
	if decl == nil {
		return ASTNodeOutput{Type: "Decl", Text: "<nil>"}
	}

	switch decl.Kind {
	case ast.DeclStruct:
		payload, _ := builder.Decls.Struct(declID)
		node := ASTNodeOutput{Type: "StructDecl", Text: lookupName(builder, payload.Name), Span: decl.Span}
		for _, field := range payload.Fields {
			node.Children = append(node.Children, ASTNodeOutput{
				Type:     "Field",
				Text:     lookupName(builder, field.Name),
				Span:     field.Span,
				Children: typeChildren(builder, field.Type),
			})
		}
		return node

	case ast.DeclEnum:
		payload, _ := builder.Decls.Enum(declID)
		node := ASTNodeOutput{Type: "EnumDecl", Text: lookupName(builder, payload.Name), Span: decl.Span}
		for _, variant := range payload.Variants {
			varNode := ASTNodeOutput{Type: "Variant", Text: lookupName(builder, variant.Name), Span: variant.Span}
			for _, elem := range variant.Elems {
				varNode.Children = append(varNode.Children, typeChildren(builder, elem)...)
			}
			node.Children = append(node.Children, varNode)
		}
		return node

	case ast.DeclFn:
		payload, _ := builder.Decls.Fn(declID)
		node := ASTNodeOutput{Type: "FnDecl", Text: lookupName(builder, payload.Name), Span: decl.Span}
		for _, param := range payload.Params {
			paramNode := ASTNodeOutput{Type: "Param", Span: param.Span}
			paramNode.Children = append(paramNode.Children, buildPatternNode(builder, param.Pattern))
			paramNode.Children = append(paramNode.Children, typeChildren(builder, param.Type)...)
			node.Children = append(node.Children, paramNode)
		}
		if payload.ReturnType != ast.NoTypeID {
			node.Children = append(node.Children, typeChildren(builder, payload.ReturnType)...)
		}
		node.Children = append(node.Children, buildExprNode(builder, payload.Body))
		return node

	case ast.DeclStorage:
		payload, _ := builder.Decls.Storage(declID)
		node := ASTNodeOutput{Type: "StorageDecl", Span: decl.Span}
		for _, field := range payload.Fields {
			fieldNode := ASTNodeOutput{
				Type:     "Field",
				Text:     lookupName(builder, field.Name),
				Span:     field.Span,
				Children: typeChildren(builder, field.Type),
			}
			if field.Init != ast.NoExprID {
				fieldNode.Children = append(fieldNode.Children, buildExprNode(builder, field.Init))
			}
			node.Children = append(node.Children, fieldNode)
		}
		return node

	case ast.DeclConst:
		payload, _ := builder.Decls.Const(declID)
		node := ASTNodeOutput{Type: "ConstDecl", Text: lookupName(builder, payload.Name), Span: decl.Span}
		node.Children = append(node.Children, typeChildren(builder, payload.Type)...)
		node.Children = append(node.Children, buildExprNode(builder, payload.Value))
		return node

	default:
		return ASTNodeOutput{Type: "Decl", Text: decl.Kind.String(), Span: decl.Span}
	}
}

func buildPatternNode(builder *ast.Builder, patternID ast.PatternID) ASTNodeOutput {
	pat := builder.Patterns.Get(patternID)
	if pat == nil {
		return ASTNodeOutput{Type: "Pattern", Text: "<nil>"}
	}

	switch pat.Kind {
	case ast.PatWildcard:
		return ASTNodeOutput{Type: "WildcardPat", Span: pat.Span}

	case ast.PatBinding:
		payload, _ := builder.Patterns.Binding(patternID)
		return ASTNodeOutput{Type: "BindingPat", Text: lookupName(builder, payload.Name), Span: pat.Span}

	case ast.PatLit:
		payload, _ := builder.Patterns.Lit(patternID)
		return ASTNodeOutput{Type: "LitPat", Text: lookupName(builder, payload.Text), Span: pat.Span}

	case ast.PatStruct:
		payload, _ := builder.Patterns.Struct(patternID)
		node := ASTNodeOutput{Type: "StructPat", Text: lookupName(builder, payload.Name), Span: pat.Span}
		node.Children = buildFieldPatNodes(builder, payload.Fields)
		return node

	case ast.PatTupleStruct:
		payload, _ := builder.Patterns.TupleStruct(patternID)
		node := ASTNodeOutput{Type: "TupleStructPat", Text: lookupName(builder, payload.Name), Span: pat.Span}
		node.Children = buildFieldPatNodes(builder, payload.Elems)
		return node

	case ast.PatEnumVariant:
		payload, _ := builder.Patterns.EnumVariant(patternID)
		node := ASTNodeOutput{Type: "EnumVariantPat", Text: joinSegs(builder, payload.Segs), Span: pat.Span}
		node.Children = buildFieldPatNodes(builder, payload.Elems)
		return node

	default:
		return ASTNodeOutput{Type: "Pattern", Span: pat.Span}
	}
}

func buildFieldPatNodes(builder *ast.Builder, fields []ast.FieldPat) []ASTNodeOutput {
	var nodes []ASTNodeOutput
	for _, field := range fields {
		switch field.Kind {
		case ast.FieldPatRest:
			nodes = append(nodes, ASTNodeOutput{Type: "RestPat", Span: field.Span})
		case ast.FieldPatNamed:
			node := ASTNodeOutput{Type: "NamedFieldPat", Text: lookupName(builder, field.Name), Span: field.Span}
			node.Children = append(node.Children, buildPatternNode(builder, field.Sub))
			nodes = append(nodes, node)
		default:
			nodes = append(nodes, buildPatternNode(builder, field.Sub))
		}
	}
	return nodes
}

func buildStmtNode(builder *ast.Builder, stmtID ast.StmtID) ASTNodeOutput {
	stmt := builder.Stmts.Get(stmtID)
	if stmt == nil {
		return ASTNodeOutput{Type: "Stmt", Text: "<nil>"}
	}

	switch stmt.Kind {
	case ast.StmtLet:
		payload, _ := builder.Stmts.Let(stmtID)
		node := ASTNodeOutput{Type: "LetStmt", Span: stmt.Span}
		node.Children = append(node.Children, buildPatternNode(builder, payload.Pattern))
		node.Children = append(node.Children, typeChildren(builder, payload.Type)...)
		node.Children = append(node.Children, buildExprNode(builder, payload.Value))
		return node

	case ast.StmtReturn:
		payload, _ := builder.Stmts.Return(stmtID)
		node := ASTNodeOutput{Type: "ReturnStmt", Span: stmt.Span}
		if payload.Value != ast.NoExprID {
			node.Children = append(node.Children, buildExprNode(builder, payload.Value))
		}
		return node

	default:
		payload, _ := builder.Stmts.Expr(stmtID)
		return ASTNodeOutput{
			Type:     "ExprStmt",
			Span:     stmt.Span,
			Children: []ASTNodeOutput{buildExprNode(builder, payload.Expr)},
		}
	}
}

func buildExprNode(builder *ast.Builder, exprID ast.ExprID) ASTNodeOutput {
	expr := builder.Exprs.Get(exprID)
	if expr == nil {
		return ASTNodeOutput{Type: "Expr", Text: "<nil>"}
	}

	switch expr.Kind {
	case ast.ExprIdent:
		payload, _ := builder.Exprs.Ident(exprID)
		return ASTNodeOutput{Type: "IdentExpr", Text: lookupName(builder, payload.Name), Span: expr.Span}

	case ast.ExprPath:
		payload, _ := builder.Exprs.Path(exprID)
		return ASTNodeOutput{Type: "PathExpr", Text: joinSegs(builder, payload.Segs), Span: expr.Span}

	case ast.ExprLit:
		payload, _ := builder.Exprs.Lit(exprID)
		return ASTNodeOutput{Type: "LitExpr", Text: lookupName(builder, payload.Text), Span: expr.Span}

	case ast.ExprCall:
		payload, _ := builder.Exprs.Call(exprID)
		node := ASTNodeOutput{Type: "CallExpr", Span: expr.Span}
		node.Children = append(node.Children, buildExprNode(builder, payload.Callee))
		for _, arg := range payload.Args {
			node.Children = append(node.Children, buildExprNode(builder, arg))
		}
		return node

	case ast.ExprField:
		payload, _ := builder.Exprs.Field(exprID)
		return ASTNodeOutput{
			Type:     "FieldExpr",
			Text:     lookupName(builder, payload.Name),
			Span:     expr.Span,
			Children: []ASTNodeOutput{buildExprNode(builder, payload.Recv)},
		}

	case ast.ExprBinary:
		payload, _ := builder.Exprs.Binary(exprID)
		return ASTNodeOutput{
			Type: "BinaryExpr",
			Text: payload.Op.String(),
			Span: expr.Span,
			Children: []ASTNodeOutput{
				buildExprNode(builder, payload.Left),
				buildExprNode(builder, payload.Right),
			},
		}

	case ast.ExprMatch:
		payload, _ := builder.Exprs.Match(exprID)
		node := ASTNodeOutput{Type: "MatchExpr", Span: expr.Span}
		node.Children = append(node.Children, buildExprNode(builder, payload.Scrutinee))
		for _, arm := range payload.Arms {
			armNode := ASTNodeOutput{Type: "MatchArm", Span: arm.Span}
			armNode.Children = append(armNode.Children, buildPatternNode(builder, arm.Pattern))
			armNode.Children = append(armNode.Children, buildExprNode(builder, arm.Body))
			node.Children = append(node.Children, armNode)
		}
		return node

	case ast.ExprBlock:
		payload, _ := builder.Exprs.Block(exprID)
		node := ASTNodeOutput{Type: "BlockExpr", Span: expr.Span}
		for _, stmtID := range payload.Stmts {
			node.Children = append(node.Children, buildStmtNode(builder, stmtID))
		}
		if payload.Tail != ast.NoExprID {
			node.Children = append(node.Children, buildExprNode(builder, payload.Tail))
		}
		return node

	default:
		return ASTNodeOutput{Type: "Expr", Span: expr.Span}
	}
}

func typeChildren(builder *ast.Builder, typeID ast.TypeID) []ASTNodeOutput {
	if typeID == ast.NoTypeID {
		return nil
	}
	typ := builder.Types.Get(typeID)
	if typ == nil {
		return nil
	}
	return []ASTNodeOutput{{Type: "TypeName", Text: joinSegs(builder, typ.Segs), Span: typ.Span}}
}

func lookupName(builder *ast.Builder, id source.StringID) string {
	if id == source.NoStringID {
		return ""
	}
	name, ok := builder.StringsInterner.Lookup(id)
	if !ok {
		return "<?>"
	}
	return name
}

func joinSegs(builder *ast.Builder, segs []source.StringID) string {
	parts := make([]string, 0, len(segs))
	for _, seg := range segs {
		parts = append(parts, lookupName(builder, seg))
	}
	return strings.Join(parts, "::")
}
