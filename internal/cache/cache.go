package cache

import (
	"math"
	"sync/atomic"
	"time"
)

// AgeUnavailable é a idade reportada quando nada foi armazenado ainda
const AgeUnavailable = time.Duration(math.MaxInt64)

// Snapshot é o conteúdo do slot: os registros e o instante em que foram gravados
type Snapshot[T any] struct {
	Records   []T       `json:"records"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Cache guarda um único snapshot em memória.
// Store troca o snapshot inteiro; leitores veem o antigo ou o novo, nunca uma mistura.
type Cache[T any] struct {
	current atomic.Pointer[Snapshot[T]]
	now     func() time.Time
}

func New[T any]() *Cache[T] {
	return NewWithClock[T](time.Now)
}

func NewWithClock[T any](now func() time.Time) *Cache[T] {
	return &Cache[T]{now: now}
}

// Store substitui o snapshot atual. A fatia é copiada para que o chamador possa reutilizá-la.
func (c *Cache[T]) Store(records []T) Snapshot[T] {
	copied := make([]T, len(records))
	copy(copied, records)

	snapshot := &Snapshot[T]{
		Records:   copied,
		UpdatedAt: c.now(),
	}
	c.current.Store(snapshot)

	return *snapshot
}

// Fetch retorna uma cópia do snapshot e sua idade. Vazio, a idade é AgeUnavailable e ok é falso.
func (c *Cache[T]) Fetch() (Snapshot[T], time.Duration, bool) {
	snapshot := c.current.Load()
	if snapshot == nil {
		return Snapshot[T]{Records: []T{}}, AgeUnavailable, false
	}

	records := make([]T, len(snapshot.Records))
	copy(records, snapshot.Records)

	return Snapshot[T]{Records: records, UpdatedAt: snapshot.UpdatedAt}, c.age(snapshot), true
}

// IsFresh indica se o snapshot tem no máximo maxAge
func (c *Cache[T]) IsFresh(maxAge time.Duration) bool {
	snapshot := c.current.Load()
	return snapshot != nil && c.age(snapshot) <= maxAge
}

func (c *Cache[T]) age(snapshot *Snapshot[T]) time.Duration {
	age := c.now().Sub(snapshot.UpdatedAt)
	if age < 0 {
		return 0
	}
	return age
}

func (c *Cache[T]) Clear() {
	c.current.Store(nil)
}

// AgeMinutes arredonda a idade para baixo em minutos; -1 quando indisponível
func AgeMinutes(age time.Duration) int {
	if age == AgeUnavailable {
		return -1
	}
	return int(age / time.Minute)
}
