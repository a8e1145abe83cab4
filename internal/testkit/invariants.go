package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"cee/internal/ast"
	"cee/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed file:
//  1. file span points at sf and ends within its text
//  2. every node span has Begin <= End and lies in sf
//  3. every node span is contained in its parent's span; nodes synthesised
//     during recovery (Bad*, missing identifiers) are exempt
//  4. top-level declarations appear in source order
func CheckSpanInvariants(f *ast.File, sf *source.File) error {
	if f == nil || sf == nil {
		return fmt.Errorf("nil file")
	}
	if f.Pos.File != sf.ID {
		return fmt.Errorf("file span points to different file id: got=%d want=%d", f.Pos.File, sf.ID)
	}
	lenText, err := safecast.Conv[uint32](len(sf.Text))
	if err != nil {
		return fmt.Errorf("len text overflow: %w", err)
	}
	if f.Pos.End.Offset > lenText {
		return fmt.Errorf("file span end beyond text: %d > %d", f.Pos.End.Offset, lenText)
	}

	var prevEnd uint32
	for i, d := range f.Decls {
		sp := d.Span()
		if sp.Begin.Offset < prevEnd {
			return fmt.Errorf("decl #%d (%s) at %v overlaps the previous one", i, ast.NodeName(d), sp)
		}
		prevEnd = sp.End.Offset
	}

	var stack []ast.Node
	var failure error
	ast.Inspect(f, func(n ast.Node) bool {
		if failure != nil {
			return false
		}
		if n == nil {
			stack = stack[:len(stack)-1]
			return true
		}
		sp := n.Span()
		switch {
		case sp.File != sf.ID:
			failure = fmt.Errorf("%s span file mismatch: got=%d want=%d", ast.NodeName(n), sp.File, sf.ID)
		case sp.End.Offset < sp.Begin.Offset:
			failure = fmt.Errorf("%s span is inverted: %v", ast.NodeName(n), sp)
		case len(stack) > 0 && !synthetic(n) && !stack[len(stack)-1].Span().Contains(sp):
			parent := stack[len(stack)-1]
			failure = fmt.Errorf("%s span %v is outside %s span %v", ast.NodeName(n), sp, ast.NodeName(parent), parent.Span())
		}
		stack = append(stack, n)
		return failure == nil
	})
	return failure
}

func synthetic(n ast.Node) bool {
	switch x := n.(type) {
	case *ast.BadExpr, *ast.BadType:
		return true
	case *ast.Ident:
		return x.IsMissing()
	case *ast.NamedType:
		return x.Name.IsMissing()
	default:
		return false
	}
}
