//go:build !windows

package xjournal

import (
	"log/syslog"

	"github.com/pkg/errors"
)

// SyslogConfig configures a syslog backend. Facility defaults to LOG_USER.
type SyslogConfig struct {
	Levels   Level
	Facility syslog.Priority
}

// Syslog forwards messages to the system log. Each severity maps onto a
// fixed syslog priority; the message is rendered bare since syslog adds
// its own timestamp and tag.
type Syslog struct {
	levels Level
	layout Layout
	w      *syslog.Writer
}

// NewSyslog opens the system log facility once, tagged with tag.
func NewSyslog(tag string, cfg SyslogConfig) (*Syslog, error) {
	if cfg.Levels == LevelNone {
		cfg.Levels = LevelInfo.OrAbove()
	}
	if cfg.Facility == 0 {
		cfg.Facility = syslog.LOG_USER
	}
	w, err := syslog.New(cfg.Facility, tag)
	if err != nil {
		return nil, errors.Wrap(err, "xjournal: syslog")
	}
	return &Syslog{levels: cfg.Levels, layout: MessageLayout{}, w: w}, nil
}

func (b *Syslog) Levels() Level { return b.levels }

func (b *Syslog) Append(ev Event, msg Producer) error {
	buf := getBuf()
	defer putBuf(buf)
	b.layout.Render(buf, ev, msg)

	var err error
	s := string(buf.Bytes())
	switch ev.Level {
	case LevelTrace:
		err = b.w.Debug(s)
	case LevelInfo:
		err = b.w.Info(s)
	case LevelWarn:
		err = b.w.Warning(s)
	case LevelError:
		err = b.w.Err(s)
	case LevelFatal:
		err = b.w.Crit(s)
	default:
		err = b.w.Info(s)
	}
	return errors.Wrap(err, "xjournal: syslog")
}

func (b *Syslog) Fd() (uintptr, bool) { return 0, false }

// Close closes the connection to the system log.
func (b *Syslog) Close() error {
	return errors.Wrap(b.w.Close(), "xjournal: syslog")
}
