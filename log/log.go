package log

// Log provides the common output methods used throughout the engine.
// Print and its variants are reserved for errors, so that the default
// stdlib logger can act as a drop-in error logger.
type Log interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Infoln(v ...interface{})

	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Debugln(v ...interface{})
}
