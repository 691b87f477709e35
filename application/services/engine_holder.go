package services

import (
	"sync/atomic"

	"github.com/Anirach/ncd-health-plus/domain/services"
)

// EngineHolder keeps the engine of the active model. Swapping is atomic, so
// a request that already took an engine keeps using it until it returns.
type EngineHolder struct {
	current atomic.Pointer[services.Engine]
}

// NewEngineHolder creates a holder serving the engine
func NewEngineHolder(engine *services.Engine) *EngineHolder {
	h := &EngineHolder{}
	h.current.Store(engine)
	return h
}

// Engine returns the active engine
func (h *EngineHolder) Engine() *services.Engine {
	return h.current.Load()
}

// Swap installs a new engine and returns the previous one
func (h *EngineHolder) Swap(engine *services.Engine) *services.Engine {
	return h.current.Swap(engine)
}
