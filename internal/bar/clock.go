package bar

import (
	"strings"
	"time"
)

var strftimeLayouts = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'a': "Mon",
	'A': "Monday",
	'b': "Jan",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
}

// Strftime formats t with the strftime directives clock widgets use.
// Unknown directives are copied through unchanged.
func Strftime(format string, t time.Time) string {
	var sb strings.Builder
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 == len(format) {
			sb.WriteByte(c)
			continue
		}
		i++
		d := format[i]
		if d == '%' {
			sb.WriteByte('%')
			continue
		}
		if layout, ok := strftimeLayouts[d]; ok {
			sb.WriteString(t.Format(layout))
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(d)
	}
	return sb.String()
}
