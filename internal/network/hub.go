package network

import (
	"apple-chase/pkg/api"
	"apple-chase/pkg/logger"
	"sync"
)

// DefaultBufferSize - емкость личного канала подписчика
const DefaultBufferSize = 64

// Broadcaster занимается только рассылкой сообщений подписчикам
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ConnID -> Личный канал
	subscribers map[string]chan api.ServerMessage
	bufferSize  int
}

func NewBroadcaster() *Broadcaster {
	return NewBroadcasterSize(DefaultBufferSize)
}

// NewBroadcasterSize создает Broadcaster с заданной емкостью каналов
func NewBroadcasterSize(size int) *Broadcaster {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerMessage),
		bufferSize:  size,
	}
}

// Register создает личный канал для соединения
func (b *Broadcaster) Register(connID string) chan api.ServerMessage {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[connID]; ok {
		close(old)
	}

	ch := make(chan api.ServerMessage, b.bufferSize)
	b.subscribers[connID] = ch
	return ch
}

// Unregister удаляет подписчика. Повторный вызов безопасен.
func (b *Broadcaster) Unregister(connID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[connID]; ok {
		close(ch)
		delete(b.subscribers, connID)
	}
}

// SendTo отправляет сообщение конкретному соединению (Unicast)
func (b *Broadcaster) SendTo(connID string, msg api.ServerMessage) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ch, ok := b.subscribers[connID]
	if !ok {
		return false
	}
	return b.deliver(connID, ch, msg)
}

// Multicast отправляет сообщение списку соединений. Возвращает число доставленных.
func (b *Broadcaster) Multicast(connIDs []string, msg api.ServerMessage) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	delivered := 0
	for _, id := range connIDs {
		if ch, ok := b.subscribers[id]; ok && b.deliver(id, ch, msg) {
			delivered++
		}
	}
	return delivered
}

// Broadcast отправляет всем подписчикам
func (b *Broadcaster) Broadcast(msg api.ServerMessage) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	delivered := 0
	for id, ch := range b.subscribers {
		if b.deliver(id, ch, msg) {
			delivered++
		}
	}
	return delivered
}

// deliver не блокирует: медленный клиент пропускает снимок и получит следующий полный
func (b *Broadcaster) deliver(connID string, ch chan api.ServerMessage, msg api.ServerMessage) bool {
	select {
	case ch <- msg:
		return true
	default:
		logger.ForConn(connID).WithField("type", msg.Type).Debug("Hub: channel full, message dropped")
		return false
	}
}

// HasSubscriber проверяет, есть ли живое соединение
func (b *Broadcaster) HasSubscriber(connID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[connID]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
