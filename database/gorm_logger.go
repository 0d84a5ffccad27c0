package database

import (
	"context"
	"errors"
	"time"

	"go-users-backend/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// gormLogger sends GORM's SQL trace and messages to zap.
type gormLogger struct {
	zap   *zap.Logger
	level gormlogger.LogLevel
}

func newGormLogger(log *zap.Logger, level gormlogger.LogLevel) gormLogger {
	if log == nil {
		log = logger.L()
	}
	return gormLogger{zap: log.Named("gorm"), level: level}
}

func (l gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	l.level = level
	return l
}

func (l gormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		l.zap.Sugar().Infof(msg, args...)
	}
}

func (l gormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.zap.Sugar().Warnf(msg, args...)
	}
}

func (l gormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		l.zap.Sugar().Errorf(msg, args...)
	}
}

func (l gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == gormlogger.Silent {
		return
	}
	sql, rows := fc()
	fields := []zap.Field{
		zap.Duration("duration", time.Since(begin)),
		zap.Int64("rows", rows),
		zap.String("sql", sql),
	}
	// not-found and duplicate keys are expected outcomes, reported by the store
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, gorm.ErrDuplicatedKey) {
		l.zap.Error("query error", append(fields, zap.Error(err))...)
		return
	}
	l.zap.Debug("query", fields...)
}
