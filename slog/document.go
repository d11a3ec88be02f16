// Package slog provides logging decorators for htmlinspect interfaces
// using the standard library's structured logger.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/htmlinspect"
)

// Ensure LoggingConstructor implements htmlinspect.DocumentConstructor.
var _ htmlinspect.DocumentConstructor = (*LoggingConstructor)(nil)

// LoggingConstructor wraps a DocumentConstructor with structured
// logging. Construction failures are logged at error level; advisory
// warnings accumulated by the document (such as an ignored invalid
// <base href>) are logged at warn level without affecting the result.
type LoggingConstructor struct {
	next   htmlinspect.DocumentConstructor
	logger *slog.Logger
}

// NewLoggingConstructor creates a new LoggingConstructor.
func NewLoggingConstructor(next htmlinspect.DocumentConstructor, logger *slog.Logger) *LoggingConstructor {
	return &LoggingConstructor{next: next, logger: logger}
}

// New delegates to the wrapped constructor and logs the outcome.
func (c *LoggingConstructor) New(htmlText string, location string) (htmlinspect.Document, error) {
	begin := time.Now()
	doc, err := c.next.New(htmlText, location)
	if err != nil {
		c.logger.Error("document construction failed",
			"location", location,
			"code", htmlinspect.ErrorCode(err),
			"message", htmlinspect.ErrorMessage(err),
		)
		return nil, err
	}

	for _, warning := range doc.Warnings() {
		c.logger.Warn("document construction warning",
			"location", location,
			"warning", warning,
		)
	}
	c.logger.Info("document constructed",
		"location", location,
		"base", doc.Base(),
		"duration", time.Since(begin),
	)
	return doc, nil
}
