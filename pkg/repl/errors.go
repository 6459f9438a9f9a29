package repl

import (
	"github.com/fatih/color"
	"github.com/leinonen/golisp-core/pkg/lisperr"
)

// errorFormatter colors a reported error by its concrete lisperr kind,
// mirroring the teacher's colored-by-category error presentation but
// dispatching on Go's own error types instead of substring sniffing.
type errorFormatter struct {
	parse     *color.Color
	undefined *color.Color
	usage     *color.Color
	list      *color.Color
	call      *color.Color
	runtime   *color.Color
	prefix    *color.Color
}

func newErrorFormatter() *errorFormatter {
	return &errorFormatter{
		parse:     color.New(color.FgRed, color.Bold),
		undefined: color.New(color.FgYellow, color.Bold),
		usage:     color.New(color.FgCyan, color.Bold),
		list:      color.New(color.FgBlue, color.Bold),
		call:      color.New(color.FgMagenta, color.Bold),
		runtime:   color.New(color.FgWhite, color.Bold),
		prefix:    color.New(color.FgRed, color.Bold),
	}
}

func (ef *errorFormatter) Format(err error) string {
	label, c := ef.classify(err)
	return ef.prefix.Sprint("Error: ") + c.Sprintf("[%s] ", label) + err.Error()
}

func (ef *errorFormatter) classify(err error) (string, *color.Color) {
	switch err.(type) {
	case *lisperr.ParseError, *parseFailure:
		return "parse", ef.parse
	case *lisperr.UndefinedIdentifier:
		return "undefined", ef.undefined
	case *lisperr.WrongOperatorUsage:
		return "usage", ef.usage
	case *lisperr.InvalidList:
		return "list", ef.list
	case *lisperr.CannotCall:
		return "call", ef.call
	default:
		return "runtime", ef.runtime
	}
}
