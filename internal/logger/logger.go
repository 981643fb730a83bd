package logger

import (
	"os"

	"go.uber.org/zap"
)

var sugar *zap.SugaredLogger

// Get returns the process-wide sugared logger, building it on first use.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		var l *zap.Logger
		if os.Getenv("APP_ENV") == "production" {
			l, _ = zap.NewProduction()
		} else {
			l, _ = zap.NewDevelopment()
		}
		sugar = l.Sugar()
	}
	return sugar
}

func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
