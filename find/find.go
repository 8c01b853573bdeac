// Package find holds the expression tree evaluated by a find-style
// filesystem walker. Expressions form a boolean tree; each node is applied
// to one item at a time and reports whether the item passes and whether the
// walk should descend below it.
package find

import (
	"io"
	"io/fs"
)

// Result of applying an expression to one item.
type Result struct {
	pass    bool
	descend bool
}

var (
	// Pass accepts the item and keeps descending.
	Pass = Result{pass: true, descend: true}
	// Fail rejects the item and keeps descending.
	Fail = Result{pass: false, descend: true}
	// Stop accepts the item but prunes the subtree below it.
	Stop = Result{pass: true, descend: false}
)

func (r Result) Passed() bool  { return r.pass }
func (r Result) Descend() bool { return r.descend }

// Combine ANDs two results.
func (r Result) Combine(o Result) Result {
	return Result{pass: r.pass && o.pass, descend: r.descend && o.descend}
}

// Negate flips acceptance, leaving descent alone.
func (r Result) Negate() Result {
	return Result{pass: !r.pass, descend: r.descend}
}

// Item is one filesystem entry presented to expressions.
type Item struct {
	Path string
	Info fs.FileInfo
}

// Options configure a walk and are pushed down the expression tree before
// it runs.
type Options struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	FollowLinks bool
	DepthFirst  bool
	MinDepth    int
	MaxDepth    int
}

// Expression is one node of the boolean tree.
type Expression interface {
	// Apply evaluates the node against item at the given walk depth.
	Apply(item Item, depth int) (Result, error)
	// SetOptions pushes walk options down before the walk starts.
	SetOptions(opts *Options) error
	// Finish runs once after the walk completes.
	Finish() error

	Usage() []string
	Help() []string

	// IsAction reports whether the node has side effects (e.g. print).
	IsAction() bool
	// Precedence orders operators when the command line is parsed.
	Precedence() int

	// AddChildren hands sub-expressions to operator nodes.
	AddChildren(children []Expression)
	// AddArguments hands parsed command-line arguments to the node.
	AddArguments(args []string)
}
