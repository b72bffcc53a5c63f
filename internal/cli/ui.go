package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/katalvlaran/hydronet/network"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary values
	colorGreen = lipgloss.Color("35")  // Green - success
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(16)
)

const (
	iconSuccess = "✓"
	iconArrow   = "→"
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

// printQuantity prints a labelled value with its unit.
func printQuantity(w io.Writer, key string, v float64, unit string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+styleNumber.Render(formatFloat(v))+" "+styleDim.Render(unit))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+styleValue.Render(value))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// renderTable renders rows under headers with rounded borders.
func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Render()
}

// renderTree renders a collection tree. Consecutive references to the same
// member collapse into one line with a count.
func renderTree(n *network.Node) string {
	return buildTree(n, 1).String()
}

func buildTree(n *network.Node, count int) *tree.Tree {
	t := tree.Root(nodeLabel(n, count))
	for i := 0; i < len(n.Children); {
		c := n.Children[i]
		j := i + 1
		for j < len(n.Children) && n.Children[j] == c {
			j++
		}
		if c.Leaf() {
			t.Child(nodeLabel(c, j-i))
		} else {
			t.Child(buildTree(c, j-i))
		}
		i = j
	}
	return t
}

func nodeLabel(n *network.Node, count int) string {
	label := styleTitle.Render(n.Name) + " " + styleDim.Render(n.Kind)
	if n.Detail != "" {
		label += " " + styleValue.Render(n.Detail)
	}
	if n.Tracked {
		label += " " + styleSuccess.Render("tracked")
	}
	if count > 1 {
		label += " " + styleNumber.Render(fmt.Sprintf("×%d", count))
	}
	return label
}
