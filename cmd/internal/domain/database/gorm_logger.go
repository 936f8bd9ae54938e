package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"agrodog/cmd/internal/utils"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormLogger writes GORM statements to the gommon logger, tagging them with the request id.
type GormLogger struct {
	level         logger.LogLevel
	slowThreshold time.Duration
}

func NewGormLogger(level logger.LogLevel, slowThreshold time.Duration) *GormLogger {
	return &GormLogger{level: level, slowThreshold: slowThreshold}
}

// GormLogLevel maps an application log level to the GORM one.
// SQL statements are only traced in debug.
func GormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.Info
	case "error":
		return logger.Error
	case "off":
		return logger.Silent
	default:
		return logger.Warn
	}
}

func (l *GormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &GormLogger{level: level, slowThreshold: l.slowThreshold}
}

func (l *GormLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Info {
		log.Info(prefix(ctx) + fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Warn {
		log.Warn(prefix(ctx) + fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Error {
		log.Error(prefix(ctx) + fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		log.Errorf("%squery failed [%s] [rows:%d] %s: %v", prefix(ctx), elapsed, rows, sql, err)
	case l.slowThreshold != 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		sql, rows := fc()
		log.Warnf("%sslow query >= %s [%s] [rows:%d] %s", prefix(ctx), l.slowThreshold, elapsed, rows, sql)
	case l.level >= logger.Info:
		sql, rows := fc()
		log.Debugf("%s[%s] [rows:%d] %s", prefix(ctx), elapsed, rows, sql)
	}
}

func prefix(ctx context.Context) string {
	if id := utils.RequestIDFromContext(ctx); id != "" {
		return "[request_id=" + id + "] "
	}
	return ""
}
