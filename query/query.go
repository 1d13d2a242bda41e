// Package query selects elements of a red tree with boolean expressions.
//
// Expressions are written in the expr language
// (https://expr-lang.org) over the fields of Env:
//
//	kind == "Field" && depth > 1
//	token && kind == "Number" && start >= 10
//	kind == "Literal" && text matches "^[A-Z]"
package query

import (
	"errors"
	"fmt"

	"github.com/signadot/syntree/red"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrQuery = errors.New("bad query")

// Env is what an expression sees of an element.
type Env struct {
	Kind   string `expr:"kind"`
	Start  int    `expr:"start"`
	End    int    `expr:"end"`
	Size   int    `expr:"size"`
	Depth  int    `expr:"depth"`
	Index  int    `expr:"index"`
	Text   string `expr:"text"`
	Token  bool   `expr:"token"`
	Parent string `expr:"parent"`
}

type Query struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string { return q.src }

// Match evaluates q on e.
func (q *Query) Match(e red.Element) (bool, error) {
	depth, index := 0, 0
	if p := e.Parent(); p != nil {
		depth = p.Depth() + 1
		index, _ = p.ChildIndex(e)
	}
	return q.eval(envOf(e, depth, index))
}

func (q *Query) eval(env Env) (bool, error) {
	res, err := expr.Run(q.prg, env)
	if err != nil {
		return false, fmt.Errorf("evaluating %q: %w", q.src, err)
	}
	b, _ := res.(bool)
	return b, nil
}

// Find returns the elements of root, in preorder, on which q holds.
func Find(root *red.Node, q *Query) ([]red.Element, error) {
	var res []red.Element
	var walk func(e red.Element, depth, index int) error
	walk = func(e red.Element, depth, index int) error {
		ok, err := q.eval(envOf(e, depth, index))
		if err != nil {
			return err
		}
		if ok {
			res = append(res, e)
		}
		n, isNode := e.(*red.Node)
		if !isNode {
			return nil
		}
		i := 0
		for c := range n.Children() {
			if err := walk(c, depth+1, i); err != nil {
				return err
			}
			i++
		}
		return nil
	}
	if err := walk(root, root.Depth(), root.IndexInParent()); err != nil {
		return nil, err
	}
	return res, nil
}

func envOf(e red.Element, depth, index int) Env {
	r := red.TextRange(e)
	env := Env{
		Kind:  e.Kind().String(),
		Start: r.Start,
		End:   r.End,
		Size:  r.Len(),
		Depth: depth,
		Index: index,
		Text:  e.String(),
	}
	_, env.Token = e.(*red.Token)
	if p := e.Parent(); p != nil {
		env.Parent = p.Kind().String()
	}
	return env
}
