package usecase

import (
	"sync"
	"time"

	"fieldtech/internal/domain/entities"

	"github.com/google/uuid"
)

const DefaultNotificationTTL = 3 * time.Second

// INotificationCenter is the toast queue the presentation layer polls.
type INotificationCenter interface {
	Push(level entities.NotificationLevel, message string) entities.Notification
	Active() []entities.Notification
	Dismiss(id string) bool
}

type NotificationCenter struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items []entities.Notification
}

var _ INotificationCenter = (*NotificationCenter)(nil)

func NewNotificationCenter(ttl time.Duration, now func() time.Time) *NotificationCenter {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	if now == nil {
		now = time.Now
	}
	return &NotificationCenter{ttl: ttl, now: now}
}

func (c *NotificationCenter) Push(level entities.NotificationLevel, message string) entities.Notification {
	now := c.now()
	n := entities.Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.evictLocked(now)
	c.items = append(c.items, n)
	return n
}

// Active returns the unexpired notifications, oldest first.
func (c *NotificationCenter) Active() []entities.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evictLocked(c.now())

	out := make([]entities.Notification, len(c.items))
	copy(out, c.items)
	return out
}

func (c *NotificationCenter) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *NotificationCenter) evictLocked(now time.Time) {
	kept := c.items[:0]
	for _, n := range c.items {
		if !n.Expired(now) {
			kept = append(kept, n)
		}
	}
	c.items = kept
}
