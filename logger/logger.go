package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls the application logger.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // text | json
	File   string // optional path, rotated by lumberjack
}

var (
	log  = logrus.New()
	once sync.Once
)

// Init configures the shared logger. Safe to call once at startup; later calls are ignored.
func Init(opts Options) error {
	var initErr error
	once.Do(func() {
		level, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			level = logrus.InfoLevel
		}
		log.SetLevel(level)

		if strings.EqualFold(opts.Format, "json") {
			log.SetFormatter(&logrus.JSONFormatter{
				TimestampFormat: "2006-01-02 15:04:05.000",
				FieldMap: logrus.FieldMap{
					logrus.FieldKeyTime:  "timestamp",
					logrus.FieldKeyLevel: "level",
					logrus.FieldKeyMsg:   "message",
				},
			})
		} else {
			log.SetFormatter(&logrus.TextFormatter{
				FullTimestamp:   true,
				TimestampFormat: "2006-01-02 15:04:05.000",
			})
		}

		writers := []io.Writer{os.Stdout}
		if opts.File != "" {
			if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
				initErr = err
				return
			}
			writers = append(writers, &lumberjack.Logger{
				Filename:   opts.File,
				MaxSize:    100, // MB
				MaxBackups: 7,
				MaxAge:     30, // days
				Compress:   true,
			})
		}
		log.SetOutput(io.MultiWriter(writers...))
	})
	return initErr
}

// L returns the shared logger.
func L() *logrus.Logger {
	return log
}

// WithComponent tags entries with the emitting component.
func WithComponent(name string) *logrus.Entry {
	return log.WithField("component", name)
}

// GinLogger replaces gin's default logger with a structured request log.
func GinLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := logrus.Fields{
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		}
		if uid, ok := c.Get("user_id"); ok {
			fields["user_id"] = uid
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		entry := log.WithFields(fields)
		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("request failed")
		case status >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request handled")
		}
	}
}
