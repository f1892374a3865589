package notify

import (
	"sync"
	"time"
)

type breakerState int

const (
	stateClosed breakerState = iota
	stateOpen
	stateHalfOpen
)

// CircuitBreaker защищает webhook получателя от шквала запросов при сбоях.
// Состояние явно принадлежит экземпляру: никаких глобальных переменных,
// конкурентные вызовы не связаны скрытым разделяемым состоянием
type CircuitBreaker struct {
	mu        sync.Mutex
	state     breakerState
	failures  int
	openedAt  time.Time
	threshold int
	cooldown  time.Duration
	now       func() time.Time
}

// NewCircuitBreaker создает замкнутый breaker с порогом отказов и паузой
func NewCircuitBreaker(threshold int, cooldown time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		threshold: threshold,
		cooldown:  cooldown,
		now:       time.Now,
	}
}

// Allow сообщает, разрешен ли запрос. После паузы в открытом состоянии
// пропускается один пробный запрос (half-open)
func (b *CircuitBreaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case stateClosed:
		return true
	case stateOpen:
		if b.now().Sub(b.openedAt) >= b.cooldown {
			b.state = stateHalfOpen
			return true
		}
		return false
	case stateHalfOpen:
		// Пробный запрос уже в полете
		return false
	}

	return false
}

// Success фиксирует успешный запрос и замыкает breaker
func (b *CircuitBreaker) Success() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.state = stateClosed
	b.failures = 0
}

// Failure фиксирует неудачный запрос; по достижении порога breaker
// размыкается, неудачная проба размыкает его снова
func (b *CircuitBreaker) Failure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == stateHalfOpen {
		b.state = stateOpen
		b.openedAt = b.now()
		return
	}

	b.failures++
	if b.failures >= b.threshold {
		b.state = stateOpen
		b.openedAt = b.now()
	}
}
