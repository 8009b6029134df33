// Package xjournal is a multi-backend logging dispatcher. A Dispatcher
// routes each call through a severity bitmask to file, rolling-file,
// rotating-file, syslog and stream backends, each rendering through a
// pluggable Layout. Message construction is deferred: a call at a level no
// backend accepts costs one mask test and never evaluates its arguments.
package xjournal
