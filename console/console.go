package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bitset"
	"github.com/fatih/color"
	"github.com/npillmayer/segtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config holds parameters for printing trees.
type Config struct {
	Width   int            // maximum display width of an output line, in ‘en’s
	Context *uax11.Context // context for measuring display width of node labels
	Marked  *color.Color   // color for marked nodes
	Plain   *color.Color   // color for unmarked nodes; may be nil
}

// DefaultConfig returns a config for a console of 80 columns and a Latin context.
func DefaultConfig() *Config {
	return &Config{
		Width:   80,
		Context: uax11.LatinContext,
		Marked:  color.New(color.FgRed, color.Bold),
	}
}

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.Width parameter accordingly. Context is derived from
// the user environment.
func ConfigFromTerminal() *Config {
	config := DefaultConfig()
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			T().Debugf("console: cannot read terminal size: %v", err)
		} else if w > 30 {
			config.Width = w - 2
		}
	}
	config.Context = uax11.ContextFromEnvironment()
	return config
}

// Print outputs a tree to stdout, with a config derived from the terminal.
// Nodes whose slot is contained in marked are highlighted; marked may be nil.
func Print[V any](tree *segtree.Tree[V], marked *bitset.BitSet) error {
	return Fprint(os.Stdout, tree, marked, ConfigFromTerminal())
}

var setupGraphemes sync.Once

// Fprint outputs a tree to w. Nodes whose slot is contained in marked are
// printed with config.Marked; marked may be nil. If config is nil,
// DefaultConfig() is used.
//
// Every depth level of the tree is printed as a block of lines. A line is
// wrapped before a node label would exceed config.Width.
func Fprint[V any](w io.Writer, tree *segtree.Tree[V], marked *bitset.BitSet, config *Config) error {
	if tree == nil {
		return errors.New("console: cannot print nil tree")
	}
	if config == nil {
		config = DefaultConfig()
	}
	setupGraphemes.Do(func() {
		grapheme.SetupGraphemeClasses()
	})
	var levels [][]segtree.Node[V]
	tree.EachNode(func(n segtree.Node[V]) bool {
		for len(levels) <= n.Depth {
			levels = append(levels, nil)
		}
		levels[n.Depth] = append(levels[n.Depth], n)
		return true
	})
	p := &printer{w: w, config: config}
	for depth, level := range levels {
		p.startLevel(depth)
		for _, n := range level {
			label := fmt.Sprintf("%s=%v", n.Span, n.Value)
			p.node(label, marked != nil && marked.Test(uint(n.Slot)))
		}
		p.newline()
	}
	if p.err != nil {
		T().Errorf("console: %v", p.err)
	}
	return p.err
}

// printer writes node labels, wrapping lines at config.Width.
// It remembers the first write error and ignores output thereafter.
type printer struct {
	w      io.Writer
	config *Config
	indent int // width of the level prefix
	col    int // number of character positions already printed for line
	empty  bool
	err    error
}

func (p *printer) startLevel(depth int) {
	prefix := fmt.Sprintf("%2d: ", depth)
	p.indent = len(prefix)
	p.write(prefix)
	p.col = p.indent
	p.empty = true
}

func (p *printer) node(label string, marked bool) {
	lw := p.width(label)
	if !p.empty {
		if p.col+1+lw > p.config.Width {
			p.newline()
			p.write(strings.Repeat(" ", p.indent))
			p.col = p.indent
		} else {
			p.write(" ")
			p.col++
		}
	}
	c := p.config.Plain
	if marked {
		c = p.config.Marked
	}
	if c != nil {
		p.write(c.Sprint(label))
	} else {
		p.write(label)
	}
	p.col += lw
	p.empty = false
}

func (p *printer) newline() {
	p.write("\n")
}

func (p *printer) width(s string) int {
	context := p.config.Context
	if context == nil {
		context = uax11.LatinContext
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

func (p *printer) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}
