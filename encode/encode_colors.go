package encode

import (
	"github.com/fatih/color"
)

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	AttrColor
	ValueColor
)

type Colors struct {
	Map map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Map: map[ColorAttr]func(string, ...any) string{
			FieldColor: color.RGB(196, 96, 16).SprintfFunc(),
			AttrColor:  color.BlueString,
			ValueColor: color.RGB(128, 216, 236).SprintfFunc(),
		},
	}
}

func (c *Colors) Color(attr ColorAttr, s string) string {
	f := c.Map[attr]
	if f == nil {
		return s
	}
	return f("%s", s)
}
