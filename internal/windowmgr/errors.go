package windowmgr

import "strconv"

// CommandError wraps an adapter-command error (spec.md §7 kind 3: "engine
// rejects a state change... logged; the pump continues") with the window
// id and command name it failed against, so a single structured value
// carries everything the log line needs instead of a handful of
// loose fields.
type CommandError struct {
	WindowID uint32
	Command  string
	Err      error
}

func (e *CommandError) Error() string {
	return "windowmgr: command " + e.Command + " failed for window " + strconv.FormatUint(uint64(e.WindowID), 10) + ": " + e.Err.Error()
}

func (e *CommandError) Unwrap() error { return e.Err }
