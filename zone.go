package chrono

import (
	"fmt"
	"sync"
	"time"
)

// ZoneProvider resolves an IANA zone name to a *time.Location. The
// default implementation wraps time.LoadLocation and caches results; a
// richer timezone database can be substituted by implementing this
// one-method interface.
type ZoneProvider interface {
	Load(name string) (*time.Location, error)
}

// systemZoneProvider wraps time.LoadLocation, caching lookups so that
// repeated schedule construction against the same zone name does not
// repeatedly hit the host's timezone database.
type systemZoneProvider struct {
	mu    sync.RWMutex
	cache map[string]*time.Location
}

// NewSystemZoneProvider returns a ZoneProvider backed by time.LoadLocation.
func NewSystemZoneProvider() ZoneProvider {
	return &systemZoneProvider{cache: make(map[string]*time.Location)}
}

func (p *systemZoneProvider) Load(name string) (*time.Location, error) {
	p.mu.RLock()
	loc, ok := p.cache[name]
	p.mu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("chrono: load zone %q: %w", name, err)
	}

	p.mu.Lock()
	p.cache[name] = loc
	p.mu.Unlock()

	return loc, nil
}
