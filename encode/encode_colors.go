package encode

import (
	"strings"

	"github.com/sexp-format/go-sexp/node"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind node.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	ValueColor
	KeywordColor
	SepColor
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
	for _, k := range node.Kinds() {
		able := Colorable{
			Kind: k,
			Attr: SepColor,
		}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = CommentColor
		colors.Map[able] = color.BlueString
	}
	able := Colorable{Kind: node.KindToken, Attr: ValueColor}
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Attr = KeywordColor
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k node.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k node.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
