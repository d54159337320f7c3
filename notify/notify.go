// Package notify collects transient user-facing notifications: the
// storefront facade pushes operation-scoped messages here instead of
// returning raw errors to the UI.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level classifies a notification.
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
)

// Notification is one transient message.
type Notification struct {
	ID        string
	Level     Level
	Message   string
	Timestamp time.Time
}

// Center holds the current notifications.
type Center struct {
	mu            sync.RWMutex
	notifications []Notification
	nowTime       func() time.Time
}

// Option configures the Center.
type Option func(*Center)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) Option {
	return func(c *Center) {
		c.nowTime = nowFunc
	}
}

// NewCenter creates an empty notification center.
func NewCenter(options ...Option) *Center {
	c := &Center{nowTime: time.Now}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Push adds a notification and returns its ID.
func (c *Center) Push(level Level, message string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := Notification{
		ID:        uuid.New().String(),
		Level:     level,
		Message:   message,
		Timestamp: c.nowTime(),
	}
	c.notifications = append(c.notifications, n)
	return n.ID
}

// Dismiss removes a notification by ID. Unknown IDs are ignored.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, n := range c.notifications {
		if n.ID == id {
			c.notifications = append(c.notifications[:i], c.notifications[i+1:]...)
			return
		}
	}
}

// Clear removes everything.
func (c *Center) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = nil
}

// List returns the current notifications, oldest first.
func (c *Center) List() []Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Notification, len(c.notifications))
	copy(out, c.notifications)
	return out
}
