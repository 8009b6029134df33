package xjournal

// staticDisabled collects the levels compiled out via the build tags
// xjournal_notrace, xjournal_noinfo, xjournal_nowarn, xjournal_noerror and
// xjournal_nofatal. Calls at a disabled level are rejected before any
// argument resolution, regardless of runtime configuration. Written only
// from init functions.
var staticDisabled Level
