// Package errors provides the structured error taxonomy used across fpview.
//
// Every failure that can reach the user carries an ErrorCode so the controller
// can decide how to surface it:
//
//   - ErrCodeInit: the collector could not be loaded. Fatal for the session.
//   - ErrCodeNotInitialized: a scan was attempted before the collector was ready.
//   - ErrCodeCollection: collect failed or returned text that is not JSON.
//   - ErrCodeValidation: the payload parsed but does not match the record schema.
//   - ErrCodeClipboard: writing to the clipboard failed. Logged, never shown.
//
// Example usage:
//
//	err := errors.Wrap(errors.ErrCodeCollection, "collector returned malformed JSON", cause)
//	if errors.IsCode(err, errors.ErrCodeCollection) {
//	    panel.ShowError(errors.UserMessage(err))
//	}
package errors
