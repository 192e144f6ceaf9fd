// Package log is the process-wide logging handle the core calls into,
// mirroring the teacher's pktlog/log package: a package-level logger
// backed by go.uber.org/zap. It defaults to zap's production logger
// (Info level and above, so Debugf output is dropped), falls back to a
// no-op sink if that cannot be built, and can be replaced with
// UseLogger. The core never logs key material.
package log

import "go.uber.org/zap"

var logger *zap.SugaredLogger

func init() {
	z, err := zap.NewProduction()
	if err != nil {
		// Fall back to a no-op logger rather than panicking in a library.
		logger = zap.NewNop().Sugar()
		return
	}
	logger = z.Sugar()
}

// UseLogger replaces the package-level logger, for callers embedding
// txcore in a process that already has its own zap.Logger configured.
func UseLogger(l *zap.SugaredLogger) {
	logger = l
}

func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { logger.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { logger.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }
