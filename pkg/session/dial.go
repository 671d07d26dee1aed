package session

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ormasoftchile/nodescope/pkg/config"
)

// Dialer builds an unconnected Session for a configured endpoint. The
// caller owns the Connect/Disconnect lifecycle.
type Dialer func(cfg *config.Config) (Session, error)

var (
	dialersMu sync.RWMutex
	dialers   = map[string]Dialer{}
)

// Register installs a protocol adapter for an endpoint scheme (the part
// before "://"). Adapters register from their package init.
func Register(scheme string, d Dialer) {
	dialersMu.Lock()
	defer dialersMu.Unlock()
	dialers[strings.ToLower(scheme)] = d
}

// Dial resolves the endpoint's scheme to a registered adapter and builds a
// session. The session is not yet connected.
func Dial(cfg *config.Config) (Session, error) {
	scheme, _, ok := strings.Cut(cfg.Endpoint, "://")
	if !ok || scheme == "" {
		return nil, fmt.Errorf("endpoint %q has no scheme", cfg.Endpoint)
	}

	dialersMu.RLock()
	d, found := dialers[strings.ToLower(scheme)]
	dialersMu.RUnlock()
	if !found {
		return nil, fmt.Errorf("no protocol adapter for scheme %q (have: %s)",
			scheme, strings.Join(schemes(), ", "))
	}
	return d(cfg)
}

func schemes() []string {
	dialersMu.RLock()
	defer dialersMu.RUnlock()
	out := make([]string, 0, len(dialers))
	for s := range dialers {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
