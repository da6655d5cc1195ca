// Package logging provides structured logging for the ddx CLI using slog.
//
// The console [Handler] renders compact, optionally colorized lines
// and masks credential-shaped attribute values; JSON output comes from
// slog's stock JSONHandler. Verbosity flags map to levels through
// [LevelFromVerbosity], including the extra-chatty [LevelTrace], and
// loggers travel with a command's context via [NewContext] and
// [FromContext]. [Tee] mirrors records to a second handler when logs
// also go to a file.
//
// # Testing
//
// Use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
//
// # Silence
//
// Use [NewDiscard] when log output should be suppressed entirely:
//
//	logger := logging.NewDiscard()
package logging
