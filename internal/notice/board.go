// Package notice хранит последние сообщения пользователю: alert и модальные окна.
package notice

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/wildfire_dashboard/internal/models"
)

const defaultCapacity = 50

// Board - ограниченная очередь сообщений, старые вытесняются
type Board struct {
	mu       sync.Mutex
	notices  []models.Notice
	capacity int
	now      func() time.Time
}

func NewBoard(capacity int) *Board {
	if capacity < 1 {
		capacity = defaultCapacity
	}
	return &Board{
		capacity: capacity,
		now:      time.Now,
	}
}

// Publish добавляет сообщение и возвращает его
func (b *Board) Publish(level models.NoticeLevel, kind models.NoticeKind, title, message string) models.Notice {
	n := models.Notice{
		ID:        uuid.New(),
		Level:     level,
		Kind:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: b.now().UTC(),
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.notices = append(b.notices, n)
	if over := len(b.notices) - b.capacity; over > 0 {
		b.notices = append(b.notices[:0:0], b.notices[over:]...)
	}
	return n
}

// List возвращает копию сообщений, от старых к новым
func (b *Board) List() []models.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.Notice, len(b.notices))
	copy(out, b.notices)
	return out
}

// Dismiss удаляет сообщение, false если его нет
func (b *Board) Dismiss(id uuid.UUID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, n := range b.notices {
		if n.ID == id {
			b.notices = append(b.notices[:i], b.notices[i+1:]...)
			return true
		}
	}
	return false
}
