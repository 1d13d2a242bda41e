package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/syntree/format"
	"github.com/signadot/syntree/green"
	"github.com/signadot/syntree/red"
	"github.com/signadot/syntree/token"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	format   format.Format
	maxDepth int
	trivia   bool

	Color func(green.Kind, ColorAttr, string) string
}

// Dump is the serializable form of a red element.
type Dump struct {
	Kind     string  `json:"kind" yaml:"kind"`
	Start    int     `json:"start" yaml:"start"`
	End      int     `json:"end" yaml:"end"`
	Text     *string `json:"text,omitempty" yaml:"text,omitempty"`
	Children []*Dump `json:"children,omitempty" yaml:"children,omitempty"`
}

// Encode writes a dump of e and its descendants to w.
func Encode(e red.Element, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{maxDepth: -1, trivia: true}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.TextFormat:
		return encodeText(e, w, es, 0)
	case format.JSONFormat:
		d, err := json.MarshalIndent(ToDump(e, opts...), "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(d, '\n'))
		return err
	case format.YAMLFormat:
		d, err := yaml.Marshal(ToDump(e, opts...))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
}

// ToDump converts e to a Dump honoring the depth and trivia options.
func ToDump(e red.Element, opts ...EncodeOption) *Dump {
	es := &EncState{maxDepth: -1, trivia: true}
	for _, opt := range opts {
		opt(es)
	}
	return toDump(e, es, 0)
}

func toDump(e red.Element, es *EncState, depth int) *Dump {
	r := red.TextRange(e)
	d := &Dump{Kind: e.Kind().String(), Start: r.Start, End: r.End}
	switch x := e.(type) {
	case *red.Token:
		text := x.Text()
		d.Text = &text
	case *red.Node:
		if es.maxDepth >= 0 && depth >= es.maxDepth {
			return d
		}
		for c := range x.Children() {
			if !es.trivia && token.IsTrivia(c.Kind()) {
				continue
			}
			d.Children = append(d.Children, toDump(c, es, depth+1))
		}
	}
	return d
}

func encodeText(e red.Element, w io.Writer, es *EncState, depth int) error {
	color := es.Color
	if color == nil {
		color = func(_ green.Kind, _ ColorAttr, s string) string { return s }
	}
	r := red.TextRange(e)
	line := strings.Repeat("  ", depth) +
		color(e.Kind(), KindColor, e.Kind().String()) +
		color(e.Kind(), RangeColor, "@"+r.String())
	if tok, ok := e.(*red.Token); ok {
		line += " " + color(e.Kind(), TextColor, strconv.Quote(tok.Text()))
	}
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return err
	}
	n, ok := e.(*red.Node)
	if !ok || (es.maxDepth >= 0 && depth >= es.maxDepth) {
		return nil
	}
	for c := range n.Children() {
		if !es.trivia && token.IsTrivia(c.Kind()) {
			continue
		}
		if err := encodeText(c, w, es, depth+1); err != nil {
			return err
		}
	}
	return nil
}
