package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"cee/internal/ast"
	"cee/internal/source"
	"cee/internal/token"
)

type ASTNodeOutput struct {
	Type     string          `json:"type" yaml:"type"`
	Text     string          `json:"text,omitempty" yaml:"text,omitempty"`
	Span     source.Span     `json:"span" yaml:"span,flow"`
	Children []ASTNodeOutput `json:"children,omitempty" yaml:"children,omitempty"`
}

type treeNode struct {
	name     string
	detail   string
	span     source.Span
	children []*treeNode
}

func (n *treeNode) label(fs *source.FileSet) string {
	var sb strings.Builder
	sb.WriteString(n.name)
	if n.detail != "" {
		sb.WriteString(" ")
		sb.WriteString(n.detail)
	}
	sb.WriteString(" (span: ")
	sb.WriteString(formatSpan(n.span, fs))
	sb.WriteString(")")
	return sb.String()
}

// buildTree mirrors the AST into treeNode form, one node per ast.Node.
func buildTree(root ast.Node) *treeNode {
	var (
		stack []*treeNode
		top   *treeNode
	)
	ast.Inspect(root, func(n ast.Node) bool {
		if n == nil {
			top = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			return true
		}
		node := &treeNode{name: ast.NodeName(n), detail: nodeDetail(n), span: n.Span()}
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, node)
		}
		stack = append(stack, node)
		return true
	})
	return top
}

func nodeDetail(n ast.Node) string {
	switch x := n.(type) {
	case *ast.Ident:
		if x.IsMissing() {
			return "<missing>"
		}
		return x.Name()
	case *ast.LiteralValue:
		return literalDetail(x.Token)
	case *ast.ImportDecl:
		return fmt.Sprintf("%q as %s", x.Canonical.Text, x.Name())
	case *ast.MutDecl:
		if x.Mutable {
			return "mut"
		}
		return "val"
	case *ast.UnaryExpr:
		return x.Op.Text
	case *ast.BinaryExpr:
		return x.Op.Text
	case *ast.BranchStmt:
		return x.Tok.Kind.String()
	default:
		return ""
	}
}

func literalDetail(tok token.Token) string {
	switch tok.Kind {
	case token.Int:
		if tok.Base != token.Base10 {
			return fmt.Sprintf("%s %s (base %d)", tok.Kind, tok.Text, tok.Base)
		}
		return fmt.Sprintf("%s %s", tok.Kind, tok.Text)
	case token.String, token.Char:
		return fmt.Sprintf("%s %q", tok.Kind, tok.Text)
	default:
		return fmt.Sprintf("%s %s", tok.Kind, tok.Text)
	}
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs != nil {
		start, end := fs.Resolve(span)
		return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}
	return fmt.Sprintf("span(%d-%d)", span.Begin.Offset, span.End.Offset)
}

// FormatASTPretty печатает дерево с отступами:
//
//	File (span: 1:1-2:1)
//	└─ FuncDecl (span: ...)
//	   ├─ Ident f (span: ...)
func FormatASTPretty(w io.Writer, file *ast.File, fs *source.FileSet) error {
	if file == nil {
		return fmt.Errorf("file not found")
	}
	root := buildTree(file)
	if fs != nil {
		if sf := fs.Get(file.Pos.File); sf != nil {
			root.name = sf.FormatPath("auto", fs.BaseDir())
		}
	}
	if _, err := fmt.Fprintln(w, root.label(fs)); err != nil {
		return err
	}
	writeChildren(w, root, "", fs)
	return nil
}

func writeChildren(w io.Writer, n *treeNode, prefix string, fs *source.FileSet) {
	for i, child := range n.children {
		branch, indent := "├─ ", "│  "
		if i == len(n.children)-1 {
			branch, indent = "└─ ", "   "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, branch, child.label(fs))
		writeChildren(w, child, prefix+indent, fs)
	}
}

// BuildASTJSON converts the tree to its JSON shape without encoding it.
func BuildASTJSON(file *ast.File) (ASTNodeOutput, error) {
	if file == nil {
		return ASTNodeOutput{}, fmt.Errorf("file not found")
	}
	return toOutput(buildTree(file)), nil
}

// FormatASTJSON пишет дерево в JSON.
func FormatASTJSON(w io.Writer, file *ast.File) error {
	node, err := BuildASTJSON(file)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(node)
}

// FormatASTYAML writes the same document as FormatASTJSON in YAML.
func FormatASTYAML(w io.Writer, file *ast.File) error {
	node, err := BuildASTJSON(file)
	if err != nil {
		return err
	}
	return EncodeYAML(w, node)
}

// EncodeYAML writes v as a YAML document indented by two spaces.
func EncodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func toOutput(n *treeNode) ASTNodeOutput {
	out := ASTNodeOutput{Type: n.name, Text: n.detail, Span: n.span}
	for _, c := range n.children {
		out.Children = append(out.Children, toOutput(c))
	}
	return out
}
