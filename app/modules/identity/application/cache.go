package identityservice

import (
	"sync"

	identitydomain "github.com/XdrBOBX/rating-widget/app/modules/identity/domain"
)

const defaultCacheSize = 10000

// ProfileCache remembers profiles of users who logged in, so that their
// ratings can show a real name. It is bounded; once full, an arbitrary
// entry is evicted per insert.
type ProfileCache struct {
	mu       sync.RWMutex
	profiles map[string]identitydomain.Profile
	max      int
}

// NewProfileCache creates a cache holding at most max profiles. Zero or
// negative max uses the default size.
func NewProfileCache(max int) *ProfileCache {
	if max <= 0 {
		max = defaultCacheSize
	}
	return &ProfileCache{profiles: make(map[string]identitydomain.Profile), max: max}
}

func (c *ProfileCache) Store(p identitydomain.Profile) {
	if p.ID == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.profiles[p.ID]; !ok && len(c.profiles) >= c.max {
		for id := range c.profiles {
			delete(c.profiles, id)
			break
		}
	}
	c.profiles[p.ID] = p
}

func (c *ProfileCache) Lookup(id string) (identitydomain.Profile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.profiles[id]
	return p, ok
}

func (c *ProfileCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.profiles)
}
