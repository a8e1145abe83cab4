package ast

import "fmt"

// Visitor's Visit is called for each node; returning nil skips the children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses the tree in depth-first order. Nil children are skipped.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *File:
		for _, d := range n.Decls {
			Walk(v, d)
		}

	// declarations
	case *ImportDecl:
		if n.Alias != nil {
			Walk(v, n.Alias)
		}
	case *FuncDecl:
		Walk(v, n.Name)
		Walk(v, n.Type)
		if n.Body != nil {
			Walk(v, n.Body)
		}
	case *TypeDecl:
		Walk(v, n.Type)

	// types
	case *FuncType:
		walkList(v, n.Params)
		if n.Result != nil {
			Walk(v, n.Result)
		}
	case *StructType:
		Walk(v, n.Name)
		walkList(v, n.Fields)
	case *TraitType:
		Walk(v, n.Name)
	case *NamedType:
		Walk(v, n.Name)
	case *Field:
		Walk(v, n.Name)
		Walk(v, n.Type)

	// statements
	case *MutDecl:
		Walk(v, n.Name)
		Walk(v, n.Type)
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *StmtBlock:
		walkList(v, n.Stmts)
	case *ExprStmt:
		Walk(v, n.X)
	case *ReturnStmt:
		if n.Result != nil {
			Walk(v, n.Result)
		}

	// expressions
	case *CallExpr:
		Walk(v, n.Callee)
		walkList(v, n.Args)
	case *UnwrapExpr:
		Walk(v, n.Inner)
	case *ParenExpr:
		Walk(v, n.X)
	case *UnaryExpr:
		Walk(v, n.X)
	case *BinaryExpr:
		Walk(v, n.X)
		Walk(v, n.Y)
	case *SelectorExpr:
		Walk(v, n.X)
		Walk(v, n.Sel)
	case *IndexExpr:
		Walk(v, n.X)
		Walk(v, n.Index)

	case *Ident, *LiteralValue, *BranchStmt, *BadExpr, *BadType:
		// листья

	default:
		panic(fmt.Sprintf("ast.Walk: unexpected node type %T", n))
	}

	v.Visit(nil)
}

func walkList[T Node](v Visitor, list List[T]) {
	for _, n := range list.Elements {
		Walk(v, n)
	}
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect calls f for every node; f(nil) marks the end of a node's children.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// NodeName returns the grammar name of a node, as used in diagnostics and dumps.
func NodeName(node Node) string {
	switch node.(type) {
	case *File:
		return "File"
	case *ImportDecl:
		return "ImportDecl"
	case *FuncDecl:
		return "FuncDecl"
	case *TypeDecl:
		return "TypeDecl"
	case *FuncType:
		return "FuncType"
	case *StructType:
		return "StructType"
	case *TraitType:
		return "TraitType"
	case *NamedType:
		return "NamedType"
	case *BadType:
		return "BadType"
	case *Field:
		return "Field"
	case *Ident:
		return "Ident"
	case *MutDecl:
		return "MutDecl"
	case *StmtBlock:
		return "StmtBlock"
	case *ExprStmt:
		return "ExprStmt"
	case *ReturnStmt:
		return "ReturnStmt"
	case *BranchStmt:
		return "BranchStmt"
	case *LiteralValue:
		return "LiteralValue"
	case *CallExpr:
		return "CallExpr"
	case *UnwrapExpr:
		return "UnwrapExpr"
	case *ParenExpr:
		return "ParenExpr"
	case *UnaryExpr:
		return "UnaryExpr"
	case *BinaryExpr:
		return "BinaryExpr"
	case *SelectorExpr:
		return "SelectorExpr"
	case *IndexExpr:
		return "IndexExpr"
	case *BadExpr:
		return "BadExpr"
	default:
		return fmt.Sprintf("%T", node)
	}
}
