// Package controller runs the scan lifecycle.
//
// A Controller owns the state machine
//
//	Ready -> Scanning -> Displaying | Failed
//
// and drives a Surface through it: the trigger is disabled and relabelled
// while a scan runs, results are hidden until a new record has been parsed
// and rendered, and every failure ends on the error panel with the trigger
// usable again. The one exception is a collector that failed to load, which
// leaves the trigger disabled for the rest of the session.
//
// Intents from the user interface ("scan", "copyHash", "toggleJson") are
// routed through a Dispatcher so every front end shares the same handlers.
package controller
