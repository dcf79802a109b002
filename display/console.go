package display

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/treelight/arbor"
	"golang.org/x/term"
)

// Role classifies a node for coloring purposes.
type Role int

const (
	// RoleRoot is the start node of the rendered tree.
	RoleRoot Role = iota
	// RoleParent is an inner node owning children.
	RoleParent
	// RoleLeaf is a node without children.
	RoleLeaf
)

// Config represents a set of configuration parameters for rendering.
type Config struct {
	LineWidth int
	Context   *uax11.Context
}

// ConsoleTree renders trees for consoles with a fixed width font.
//
// Label turns node values into display labels; if unset, fmt.Sprint
// formatting is used.
type ConsoleTree[T any] struct {
	Label  func(T) string
	colors map[Role]*color.Color
}

// NewConsoleTree creates a new console renderer.
//
// colors maps node roles to display colors. It may be nil or cover just a
// subset of roles; missing roles render uncolored.
func NewConsoleTree[T any](colors map[Role]*color.Color) *ConsoleTree[T] {
	ct := &ConsoleTree[T]{
		Label: func(value T) string { return fmt.Sprintf("%v", value) },
	}
	if colors == nil {
		ct.colors = makeDefaultPalette()
	} else {
		ct.colors = colors
	}
	return ct
}

func makeDefaultPalette() map[Role]*color.Color {
	palette := map[Role]*color.Color{
		RoleRoot:   color.New(color.FgRed),
		RoleParent: color.New(color.FgBlue),
	}
	return palette
}

// Print outputs a tree to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive). Config.Context
// will also be created based on heuristics from the user environment.
func (ct *ConsoleTree[T]) Print(root *arbor.Node[T], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return ct.Render(root, os.Stdout, config)
}

// Render outputs a tree to w, one line per node, breadth growing downward
// from left to right.
func (ct *ConsoleTree[T]) Render(root *arbor.Node[T], w io.Writer, config *Config) error {
	if root == nil || w == nil {
		return errors.New("illegal argument: nil")
	}
	if config == nil {
		config = &Config{LineWidth: 65}
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	return ct.render(root, w, config, "", "", RoleRoot)
}

func (ct *ConsoleTree[T]) render(n *arbor.Node[T], w io.Writer, config *Config,
	head string, tail string, role Role) error {
	//
	value, err := n.Value()
	if err != nil {
		return err
	}
	label := ct.Label(value)
	budget := config.LineWidth - cellWidth(head, config.Context)
	label = clipTo(label, budget, config.Context)
	tracer().Debugf("render %q with role %d", label, role)
	if _, err := io.WriteString(w, head); err != nil {
		return err
	}
	if c, ok := ct.colors[role]; ok {
		if _, err := c.Fprintln(w, label); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintln(w, label); err != nil {
			return err
		}
	}
	if !n.IsParent() {
		return nil
	}
	children, err := n.Children()
	if err != nil {
		return err
	}
	for i, child := range children {
		branch, cont := "├── ", "│   "
		if i == len(children)-1 {
			branch, cont = "└── ", "    "
		}
		childRole := RoleLeaf
		if child.IsParent() {
			childRole = RoleParent
		}
		if err := ct.render(child, w, config, tail+branch, tail+cont, childRole); err != nil {
			return err
		}
	}
	return nil
}

// --- Label measuring -------------------------------------------------------

var setupGraphemes sync.Once

// cellWidth measures a string in fixed-width terminal cells, grapheme by
// grapheme and respecting East Asian width.
func cellWidth(s string, context *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	return uax11.StringWidth(gstr, context)
}

// clipTo clips a label to at most budget cells, marking elisions with an
// ellipsis. Cuts happen at rune boundaries and are re-measured, so a clipped
// label never exceeds the budget.
func clipTo(s string, budget int, context *uax11.Context) string {
	if budget <= 0 {
		return ""
	}
	if cellWidth(s, context) <= budget {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		clipped := string(runes) + "…"
		if cellWidth(clipped, context) <= budget {
			return clipped
		}
	}
	return "…"
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			config.LineWidth = w
		}
	} else {
		config.LineWidth = 65
	}
	return config
}
