package logger

import (
	"fmt"
	"log/slog"
	"os"
)

var log = slog.Default()

// Init configures the process-wide logger. Production gets JSON output,
// everything else a readable text handler with debug enabled.
func Init(environment string) {
	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

func Info(msg string, args ...interface{}) {
	log.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...interface{}) {
	log.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...interface{}) {
	log.Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...interface{}) {
	log.Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize tolerates call sites that pass a bare error or value instead of
// key-value pairs.
func normalize(args []interface{}) []interface{} {
	if len(args) == 1 {
		switch v := args[0].(type) {
		case error:
			return []interface{}{"error", v.Error()}
		case string:
			return []interface{}{"detail", v}
		default:
			return []interface{}{"detail", fmt.Sprint(v)}
		}
	}

	return args
}
