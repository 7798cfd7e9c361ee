// Package logger provides a thin factory around log/slog with functional
// options and helpers that keep attribute names consistent.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("fcmopts"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Error("rejected option",
//	    logger.OptionKey("priority"),
//	    logger.Source("flag"),
//	    logger.Error(err),
//	)
//
// # Configuration
//
//   - WithDevelopment / WithProduction – text at debug or JSON at info.
//   - WithFormat – FormatText or FormatJSON; panics for anything else.
//   - WithLevel – set the minimum slog.Level.
//   - WithOutput – set the destination writer.
//   - WithAttr – attach static attributes.
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
