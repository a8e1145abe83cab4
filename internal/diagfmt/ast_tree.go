package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"cee/internal/ast"
)

type treeBlock struct {
	lines []string
	width int
	root  int // колонка, над которой висит корень
}

// FormatASTTree рисует дерево сверху вниз, родитель над детьми:
//
//	   FuncDecl
//	  /   |    \
//	Ident ...  StmtBlock
//
// Only node names are drawn; spans would make the picture unreadable.
func FormatASTTree(w io.Writer, file *ast.File) error {
	if file == nil {
		return fmt.Errorf("file not found")
	}
	block := renderTree(buildTree(file))
	for _, line := range block.lines {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

func diagramLabel(n *treeNode) string {
	if n.detail == "" {
		return n.name
	}
	return n.name + "(" + n.detail + ")"
}

func renderTree(n *treeNode) treeBlock {
	label := diagramLabel(n)
	labelWidth := runewidth.StringWidth(label)
	if len(n.children) == 0 {
		return treeBlock{lines: []string{label}, width: labelWidth, root: labelWidth / 2}
	}

	const spacing = 3

	blocks := make([]treeBlock, len(n.children))
	positions := make([]int, len(n.children))
	rowWidth, height := 0, 0
	for i, child := range n.children {
		if i > 0 {
			rowWidth += spacing
		}
		blocks[i] = renderTree(child)
		positions[i] = rowWidth + blocks[i].root
		rowWidth += blocks[i].width
		height = max(height, len(blocks[i].lines))
	}

	// центрируем подпись над детьми; если не влезает слева, двигаем детей
	labelAt := (positions[0]+positions[len(positions)-1])/2 - labelWidth/2
	childAt := 0
	if labelAt < 0 {
		childAt, labelAt = -labelAt, 0
	}
	rootPos := labelAt + labelWidth/2
	width := max(labelAt+labelWidth, childAt+rowWidth)

	lines := make([]string, 0, height+2)
	lines = append(lines, runewidth.FillRight(strings.Repeat(" ", labelAt)+label, width))

	connector := []byte(strings.Repeat(" ", width))
	connector[rootPos] = '|'
	for _, pos := range positions {
		pos += childAt
		switch {
		case pos < rootPos:
			connector[pos] = '/'
		case pos > rootPos:
			connector[pos] = '\\'
		default:
			connector[pos] = '|'
		}
	}
	lines = append(lines, string(connector))

	for row := range height {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", childAt))
		for i, block := range blocks {
			if i > 0 {
				sb.WriteString(strings.Repeat(" ", spacing))
			}
			line := ""
			if row < len(block.lines) {
				line = block.lines[row]
			}
			sb.WriteString(runewidth.FillRight(line, block.width))
		}
		lines = append(lines, runewidth.FillRight(sb.String(), width))
	}

	return treeBlock{lines: lines, width: width, root: rootPos}
}
