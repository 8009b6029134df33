package xjournal

// Producer renders the call's message into buf. The dispatcher builds one
// Producer per accepted call and shares it across the matching backends;
// each backend's layout invokes it exactly once.
type Producer func(buf *Buffer)

// Lazy defers computing an argument until the call's level is known to be
// enabled. The dispatcher resolves Lazy arguments before backend
// iteration, so the closure runs exactly once when the level is enabled
// and never when it is disabled, regardless of backend count.
type Lazy func() string
