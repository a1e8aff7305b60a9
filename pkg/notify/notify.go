// Package notify carries user-facing success and failure messages from
// services to the HTTP response. Callers fire and forget; nothing reads a
// return value.
package notify

import (
	"context"
	"log"
	"sync"
)

const (
	LevelSuccess = "success"
	LevelError   = "error"
)

type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type Sink interface {
	Success(message string)
	Error(message string)
}

// Collector gathers notices for one request.
type Collector struct {
	mu      sync.Mutex
	notices []Notice
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Success(message string) { c.add(LevelSuccess, message) }

func (c *Collector) Error(message string) { c.add(LevelError, message) }

func (c *Collector) add(level, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = append(c.notices, Notice{Level: level, Message: message})
}

// Notices returns a copy of what has been collected so far.
func (c *Collector) Notices() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notice, len(c.notices))
	copy(out, c.notices)
	return out
}

type logSink struct{}

func (logSink) Success(message string) { log.Printf("[notify] success: %s", message) }

func (logSink) Error(message string) { log.Printf("[notify] error: %s", message) }

type sinkKey struct{}

func WithSink(ctx context.Context, s Sink) context.Context {
	return context.WithValue(ctx, sinkKey{}, s)
}

// FromContext returns the request's sink, or one that only logs.
func FromContext(ctx context.Context) Sink {
	if ctx != nil {
		if s, ok := ctx.Value(sinkKey{}).(Sink); ok && s != nil {
			return s
		}
	}
	return logSink{}
}
