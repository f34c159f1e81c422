package interrotron

import (
	"strconv"
	"strings"
)

// String renders v the way the "str" builtin and error messages do.
func (v Value) String() string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindStr:
		return v.Str
	case KindTime:
		return v.Time.Format(timeDisplayLayout)
	case KindArray:
		var b strings.Builder
		b.WriteString("(array")
		for _, e := range v.Array {
			b.WriteString(" ")
			b.WriteString(e.String())
		}
		b.WriteString(")")
		return b.String()
	case KindHostFn:
		if v.Fn != nil {
			return "<builtin " + v.Name + ">"
		}
		return "<lambda " + displayName(v) + ">"
	case KindMacro:
		return "<special-form " + v.Name + ">"
	default:
		return "<invalid>"
	}
}

const timeDisplayLayout = "2006-01-02T15:04:05Z07:00"
