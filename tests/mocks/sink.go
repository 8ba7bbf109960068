package mocks

import (
	"context"
	"sync"

	"github.com/davicafu/fourthwall-relay/internal/webhook/domain"
)

// SinkMock registra los mensajes entregados y permite forzar el resultado de
// la entrega. Seguro para uso concurrente.
type SinkMock struct {
	mu       sync.Mutex
	Messages []domain.Message
	Result   bool
}

// Verificación estática del puerto.
var _ domain.MessageSink = (*SinkMock)(nil)

func NewSinkMock() *SinkMock {
	return &SinkMock{Result: true}
}

func (s *SinkMock) Send(ctx context.Context, msg domain.Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Messages = append(s.Messages, msg)
	return s.Result
}

// Sent devuelve una copia de los mensajes registrados.
func (s *SinkMock) Sent() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Message, len(s.Messages))
	copy(out, s.Messages)
	return out
}
