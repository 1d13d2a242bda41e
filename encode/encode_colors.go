package encode

import (
	"strings"

	"github.com/signadot/syntree/green"
	"github.com/signadot/syntree/token"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind green.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	KindColor ColorAttr = iota
	RangeColor
	TextColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range token.Kinds() {
		able := Colorable{Kind: k, Attr: RangeColor}
		colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
		able.Attr = KindColor
		if token.IsNodeKind(k) {
			colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		} else {
			colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		}
	}
	able := Colorable{Attr: TextColor}

	able.Kind = token.Comment
	colors.Map[able] = color.BlueString
	able.Kind = token.Number
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = token.String
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Kind = token.Literal
	colors.Map[able] = color.RGB(88, 158, 86).SprintfFunc()
	able.Kind = token.Tag
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
	for _, k := range []green.Kind{token.Colon, token.Comma, token.LCurl, token.RCurl,
		token.LSquare, token.RSquare, token.LParen, token.RParen} {
		able.Kind = k
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k green.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k green.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
