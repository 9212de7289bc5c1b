package main

import (
	"log"
	"strings"
)

// logLevel gates which of the leveled wrappers below actually print.
// All log output goes to stderr through the standard logger; the
// per-file "Minified X -> Y" progress lines are not log output and are
// printed to stdout by the driver regardless of level.
type logLevel int

const (
	levelDebug logLevel = iota
	levelInfo
	levelWarn
	levelError
)

var currentLogLevel = levelInfo

// parseLogLevel maps a LOG_LEVEL value to a level, defaulting to INFO.
func parseLogLevel(s string) logLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return levelDebug
	case "WARN", "WARNING":
		return levelWarn
	case "ERROR":
		return levelError
	default:
		return levelInfo
	}
}

// setLogLevel applies a LOG_LEVEL value to the process-wide gate.
func setLogLevel(s string) {
	currentLogLevel = parseLogLevel(s)
}

// logDebug logs a debug-level message.
func logDebug(format string, v ...any) {
	if currentLogLevel <= levelDebug {
		log.Printf("[DEBUG] "+format, v...)
	}
}

// logInfo logs an info-level message.
func logInfo(format string, v ...any) {
	if currentLogLevel <= levelInfo {
		log.Printf("[INFO] "+format, v...)
	}
}

// logWarn logs a warning-level message.
func logWarn(format string, v ...any) {
	if currentLogLevel <= levelWarn {
		log.Printf("[WARN] "+format, v...)
	}
}

// logFatal logs a fatal error and exits.
func logFatal(format string, v ...any) {
	log.Fatalf("[FATAL] "+format, v...)
}
