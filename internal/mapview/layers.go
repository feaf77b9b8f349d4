// Package mapview владеет слоями карты: единственным слоем фокусов,
// слоями результата анализа и индикатором занятости.
package mapview

import (
	"sync"

	"github.com/shenikar/wildfire_dashboard/internal/models"
)

const CursorBusy = "wait"

// FetchToken выдается на каждую загрузку; устаревший токен не может заменить слой
type FetchToken struct {
	generation uint64
}

// Generation возвращает номер загрузки
func (t FetchToken) Generation() uint64 {
	return t.generation
}

type LayerManager struct {
	mu         sync.Mutex
	current    *models.HotspotLayer
	overlay    *models.ScarOverlay
	generation uint64
	inFlight   int
}

func NewLayerManager() *LayerManager {
	return &LayerManager{}
}

// BeginFetch помечает карту занятой и выдает токен новой загрузки.
// Каждый вызов обязан закончиться EndFetch.
func (m *LayerManager) BeginFetch() FetchToken {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.generation++
	m.inFlight++
	return FetchToken{generation: m.generation}
}

// EndFetch снимает отметку занятости
func (m *LayerManager) EndFetch() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.inFlight > 0 {
		m.inFlight--
	}
}

// IsLatest сообщает, что после токена не начиналась другая загрузка
func (m *LayerManager) IsLatest(token FetchToken) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return token.generation == m.generation
}

// Swap заменяет текущий слой новым за одну операцию.
// Возвращает false, если токен устарел, и слой не меняется.
func (m *LayerManager) Swap(token FetchToken, layer *models.HotspotLayer) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if token.generation != m.generation {
		return false
	}
	m.current = layer
	return true
}

// Current возвращает текущий слой фокусов или nil
func (m *LayerManager) Current() *models.HotspotLayer {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.current
}

func (m *LayerManager) Busy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.inFlight > 0
}

// Cursor возвращает стиль курсора карты
func (m *LayerManager) Cursor() string {
	if m.Busy() {
		return CursorBusy
	}
	return ""
}

// SetOverlay показывает слои результата анализа, заменяя прежние
func (m *LayerManager) SetOverlay(overlay *models.ScarOverlay) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.overlay = overlay
}

// ClearOverlay убирает слои результата анализа
func (m *LayerManager) ClearOverlay() {
	m.SetOverlay(nil)
}

func (m *LayerManager) Overlay() *models.ScarOverlay {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.overlay
}
