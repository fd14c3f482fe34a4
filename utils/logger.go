package utils

import "go.uber.org/zap"

var sugar *zap.SugaredLogger

// InitLogger must be called once at startup (e.g. in main.go).
func InitLogger() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	sugar = logger.Sugar()
}

// Logger returns the process-wide sugared logger, initializing a default one
// if InitLogger was never called (e.g. in tests).
func Logger() *zap.SugaredLogger {
	if sugar == nil {
		sugar = zap.NewNop().Sugar()
	}
	return sugar
}
