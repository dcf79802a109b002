package outline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guiguan/caster"
	"github.com/treelight/arbor"
)

// Some constants for file size defaults
const (
	twoKb = 2048
	tenKb = 10240
)

// asyncThreshold is the file size above which Load switches to background
// loading.
const asyncThreshold = tenKb

// Parse reads indented outline text and builds a tree from it.
//
// Every non-blank line is one node; its depth is given by leading
// whitespace (tabs and spaces count alike, only relative depth matters).
// The first line is the root and must be the only line at its level; every
// other line becomes a child of the nearest shallower line above it.
func Parse(r io.Reader) (*arbor.Node[string], error) {
	return parse(r, nil)
}

type level struct {
	indent int
	node   *arbor.Node[string]
}

func parse(r io.Reader, attached func(*arbor.Node[string])) (*arbor.Node[string], error) {
	scanner := bufio.NewScanner(r)
	var root *arbor.Node[string]
	var stack []level
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		indent := countIndent(line)
		if root == nil {
			root = arbor.Root(text)
			stack = []level{{indent: indent, node: root}}
			if attached != nil {
				attached(root)
			}
			continue
		}
		for len(stack) > 0 && indent <= stack[len(stack)-1].indent {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			return nil, fmt.Errorf("%w: line %d", ErrBadIndent, lineno)
		}
		node, err := stack[len(stack)-1].node.Insert(text)
		if err != nil {
			return nil, err
		}
		stack = append(stack, level{indent: indent, node: node})
		if attached != nil {
			attached(node)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, ErrEmptyOutline
	}
	return root, nil
}

func countIndent(line string) int {
	indent := 0
	for _, r := range line {
		if r != ' ' && r != '\t' {
			break
		}
		indent++
	}
	return indent
}

// Load reads a file, which must be an outline text file, and builds a tree
// from it. Small files load synchronously; files above a size threshold are
// loaded in the background, with Load waiting for completion. Opening of
// the file is always done synchronously.
func Load(name string) (*arbor.Node[string], error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if fi.Size() <= asyncThreshold {
		file, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return Parse(file)
	}
	ld, err := LoadAsync(name)
	if err != nil {
		return nil, err
	}
	return ld.Tree()
}

// Loader loads an outline file in the background.
//
// The tree under construction belongs to the loading goroutine; clients
// must not touch published node handles until Tree or Done signals
// completion.
type Loader struct {
	path string
	info os.FileInfo
	file *os.File
	cast *caster.Caster // broadcaster for attached-node events
	done chan struct{}
	root *arbor.Node[string]
	err  error
}

// LoadAsync opens an outline file and starts loading it in the background.
// Opening and the size check happen synchronously; all reading and tree
// building happens in a goroutine.
func LoadAsync(name string) (*Loader, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	ld := &Loader{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // we will broadcast nodes as they are attached
		done: make(chan struct{}),
	}
	go ld.run()
	return ld, nil
}

func (ld *Loader) run() {
	defer close(ld.done)
	defer ld.cast.Close()
	defer ld.file.Close()
	tracer().Debugf("outline: loading %q (%d bytes) in the background", ld.path, ld.info.Size())
	count := 0
	ld.root, ld.err = parse(bufio.NewReaderSize(ld.file, twoKb), func(n *arbor.Node[string]) {
		count++
		ld.cast.Pub(n)
	})
	if ld.err != nil {
		tracer().Errorf("outline: loading %q failed: %v", ld.path, ld.err)
		return
	}
	tracer().Infof("outline: loaded %d nodes from %q", count, ld.path)
}

// Watch subscribes to attached-node events. Every event is a
// *arbor.Node[string] handle; the channel closes when loading finishes.
// Subscribing after completion reports ok=false.
//
// Published handles are progress information only; see the Loader contract
// for when they may be dereferenced.
func (ld *Loader) Watch(ctx context.Context) (<-chan interface{}, bool) {
	return ld.cast.Sub(ctx, 1)
}

// Done returns a channel that is closed once loading has finished.
func (ld *Loader) Done() <-chan struct{} {
	return ld.done
}

// Tree waits for loading to finish and returns the tree root, or the first
// error encountered while reading or building.
func (ld *Loader) Tree() (*arbor.Node[string], error) {
	<-ld.done
	return ld.root, ld.err
}
