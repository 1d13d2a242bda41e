package syntree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/syntree/red"
)

// Path addresses an element by the child indices leading to it from the
// document root. The empty path is the root.
type Path []int

// ParsePath parses a dot separated list of indices such as "0.2.1". The
// empty string and "." denote the root.
func ParsePath(s string) (Path, error) {
	if s == "" || s == "." {
		return Path{}, nil
	}
	parts := strings.Split(s, ".")
	p := make(Path, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q: component %d is %q", ErrBadPath, s, i, part)
		}
		p[i] = n
	}
	return p, nil
}

func MustPath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Path) String() string {
	if len(p) == 0 {
		return "."
	}
	buf := &strings.Builder{}
	for i, n := range p {
		if i > 0 {
			buf.WriteByte('.')
		}
		buf.WriteString(strconv.Itoa(n))
	}
	return buf.String()
}

// Parent returns p without its last component, and that component.
func (p Path) Parent() (Path, int, bool) {
	if len(p) == 0 {
		return nil, 0, false
	}
	return p[:len(p)-1], p[len(p)-1], true
}

// PathOf returns the path from the root of e's tree to e.
func PathOf(e red.Element) Path {
	var rev []int
	for {
		p := e.Parent()
		if p == nil {
			break
		}
		switch x := e.(type) {
		case *red.Node:
			rev = append(rev, x.IndexInParent())
		case *red.Token:
			i, _ := p.ChildIndex(x)
			rev = append(rev, i)
		}
		e = p
	}
	res := make(Path, len(rev))
	for i, n := range rev {
		res[len(rev)-1-i] = n
	}
	return res
}
