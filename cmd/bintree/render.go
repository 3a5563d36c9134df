package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dainf/bintree/ds/binarytree"
)

const (
	formatText = "text"
	formatDOT  = "dot"
	formatTree = "tree"
)

var (
	// ErrUnknownTraversal is returned if a configured traversal does not exist.
	ErrUnknownTraversal = errors.New("unknown traversal")
	// ErrUnknownFormat is returned if the configured output format does not exist.
	ErrUnknownFormat = errors.New("unknown output format")
)

type namedTraversal struct {
	name      string
	heading   string
	traversal binarytree.Traversal[int]
}

var traversals = []namedTraversal{
	{"inorder", "in-order (recursive)", binarytree.InOrder[int]},
	{"inorder-iterative", "in-order (iterative)", binarytree.IterativeInOrder[int]},
	{"preorder", "pre-order (recursive)", binarytree.PreOrder[int]},
	{"preorder-iterative", "pre-order (iterative)", binarytree.IterativePreOrder[int]},
	{"postorder", "post-order (recursive)", binarytree.PostOrder[int]},
	{"postorder-iterative", "post-order (iterative)", binarytree.IterativePostOrder[int]},
	{"levelorder", "level-order", binarytree.LevelOrderTraversal[int]},
}

func traversalNames() []string {
	names := make([]string, len(traversals))
	for i, t := range traversals {
		names[i] = t.name
	}

	return names
}

func lookupTraversal(name string) (namedTraversal, error) {
	for _, t := range traversals {
		if t.name == strings.ToLower(strings.TrimSpace(name)) {
			return t, nil
		}
	}

	return namedTraversal{}, errors.Wrapf(ErrUnknownTraversal, "%q (known: %s)", name, strings.Join(traversalNames(), ", "))
}

func execute(s settings, out io.Writer, log *zap.SugaredLogger) error {
	root, err := buildTree(s.literal)
	if err != nil {
		return err
	}
	if log.Desugar().Core().Enabled(zapcore.DebugLevel) {
		// counting walks the whole tree
		log.Debugw("tree built", "fromLiteral", s.literal != "", "size", binarytree.NewTree(root).Size())
	}

	switch s.format {
	case formatText:
		log.Debugw("printing traversals", "traversals", s.traversals)

		return renderText(out, root, s.traversals)
	case formatDOT:
		return renderDOT(out, root)
	case formatTree:
		_, err := io.WriteString(out, binarytree.NewTree(root).String())

		return errors.Wrap(err, "unable to write tree")
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", s.format)
	}
}

// renderText prints a heading and the space separated values for every traversal.
func renderText(out io.Writer, root *binarytree.Node[int], names []string) error {
	selected := make([]namedTraversal, 0, len(names))
	for _, name := range names {
		t, err := lookupTraversal(name)
		if err != nil {
			return err
		}
		selected = append(selected, t)
	}

	for _, t := range selected {
		if _, err := fmt.Fprintf(out, "%s:\n%s\n", t.heading, join(binarytree.Collect(t.traversal, root))); err != nil {
			return errors.Wrapf(err, "unable to write %s", t.name)
		}
	}

	return nil
}

func renderDOT(out io.Writer, root *binarytree.Node[int]) error {
	b, err := binarytree.MarshalDOT(root, "bintree")
	if err != nil {
		return err
	}

	if _, err := out.Write(append(b, '\n')); err != nil {
		return errors.Wrap(err, "unable to write DOT output")
	}

	return nil
}

func join(values []int) string {
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = fmt.Sprint(value)
	}

	return strings.Join(parts, " ")
}
