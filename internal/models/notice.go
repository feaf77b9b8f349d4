package models

import (
	"time"

	"github.com/google/uuid"
)

type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// NoticeKind - как показать сообщение: блокирующий alert или модальное окно
type NoticeKind string

const (
	NoticeAlert NoticeKind = "alert"
	NoticeModal NoticeKind = "modal"
)

// Notice - сообщение пользователю
type Notice struct {
	ID        uuid.UUID   `json:"id"`
	Level     NoticeLevel `json:"level"`
	Kind      NoticeKind  `json:"kind"`
	Title     string      `json:"title,omitempty"`
	Message   string      `json:"message"`
	CreatedAt time.Time   `json:"created_at"`
}
