package xjournal

// Layout renders one event plus its message into buf.
//
// Implementations must invoke msg exactly once, and only when Render
// itself is invoked: message construction is deferred until a backend
// actually renders.
type Layout interface {
	Render(buf *Buffer, ev Event, msg Producer)
}

// timeLayout is ISO-8601 with millisecond precision and an explicit UTC
// offset, e.g. 2003-02-01T11:55:00.123+00:00.
const timeLayout = "2006-01-02T15:04:05.000-07:00"

// LineLayout is the default line-oriented layout:
//
//	2003-02-01T11:55:00.123+00:00 error log.d:42 don't panic
//
// The level name is left-justified to 5 columns. Tag, when non-empty, is
// rendered as a bracketed segment after file:line.
type LineLayout struct {
	Tag string
}

func (l *LineLayout) Render(buf *Buffer, ev Event, msg Producer) {
	var tmp [40]byte
	buf.b = append(buf.b, ev.At.AppendFormat(tmp[:0], timeLayout)...)
	buf.b = append(buf.b, ' ')
	name := ev.Level.String()
	buf.b = append(buf.b, name...)
	for i := len(name); i < 5; i++ {
		buf.b = append(buf.b, ' ')
	}
	buf.b = append(buf.b, ' ')
	buf.b = append(buf.b, ev.File...)
	buf.b = append(buf.b, ':')
	appendUint(buf, uint64(ev.Line))
	if l.Tag != "" {
		buf.b = append(buf.b, " ["...)
		buf.b = append(buf.b, l.Tag...)
		buf.b = append(buf.b, ']')
	}
	buf.b = append(buf.b, ' ')
	msg(buf)
	buf.b = append(buf.b, '\n')
}

// MessageLayout renders only the message, for sinks that supply their own
// metadata (syslog).
type MessageLayout struct{}

func (MessageLayout) Render(buf *Buffer, ev Event, msg Producer) {
	msg(buf)
}
