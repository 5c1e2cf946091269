// Package logger provides structured logging built on the standard slog package:
// a small factory with functional options and a set of attribute helpers.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/qrgames/core/logger"
//
//	log := logger.New(
//		logger.WithDevelopment("qrgames"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Info("QR code saved",
//		logger.Component("project"),
//		logger.Path("lights_out/img/qr_code.png"),
//		logger.Count("version", code.Version),
//	)
//
// # Environment Configurations
//
//	// Development: text format, debug level
//	devLogger := logger.New(logger.WithDevelopment("qrgames"))
//
//	// Production: JSON format, info level
//	prodLogger := logger.New(logger.WithProduction("qrgames"))
//
//	// Custom configuration
//	customLogger := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("run", runID)),
//		logger.WithOutput(os.Stdout),
//	)
//
// Loggers write to stderr unless WithOutput says otherwise, leaving stdout to
// command output.
//
// # Attribute Helpers
//
// Helpers return the empty slog.Attr for nil values, which slog drops:
//
//	log.Error("compile failed",
//		logger.Error(err), // no-op when err is nil
//		logger.Action("compile"),
//		logger.Path(input),
//	)
//
//	log.Info("loader built",
//		logger.Size("original", len(plain)),
//		logger.Size("compressed", len(packed)),
//		logger.Ratio("reduction_pct", report.Percent()),
//		logger.Elapsed(start),
//	)
package logger
