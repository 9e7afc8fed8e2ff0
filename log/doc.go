// Package log provides structured logging handler construction for use with
// [log/slog].
//
// It supports several output formats ([FormatJSON], [FormatLogfmt],
// [FormatText] and [FormatAuto]) and severity levels ([LevelError],
// [LevelWarn], [LevelInfo] and [LevelDebug]). Use [NewHandler] to create a
// handler directly, or use [Config] with CLI flag integration via
// [github.com/spf13/pflag] and shell completion support via
// [github.com/spf13/cobra].
//
// [FormatText] renders human-readable, colorized lines using
// [charm.land/log/v2]. [FormatAuto] selects [FormatText] when the writer is
// a terminal and [FormatLogfmt] otherwise, so piping the output of a command
// into a file yields machine-readable logs.
//
// Typical usage creates a [Config], registers flags, then builds a handler
// at startup:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
package log
