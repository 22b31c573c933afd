package coord

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/lemon-mint/coord/pconf"
	"github.com/lemon-mint/coord/provider"
)

var (
	ttsProvidersMu sync.RWMutex
	ttsProviders   = make(map[string]provider.TTSProvider)
)

// ListTTSProviders returns the names of the registered tts providers.
func ListTTSProviders() []string {
	ttsProvidersMu.RLock()
	defer ttsProvidersMu.RUnlock()
	list := make([]string, 0, len(ttsProviders))
	for name := range ttsProviders {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}

// RegisterTTSProvider registers a tts provider.
func RegisterTTSProvider(name string, p provider.TTSProvider) {
	ttsProvidersMu.Lock()
	defer ttsProvidersMu.Unlock()
	ttsProviders[name] = p
}

// NewTTSClient creates a client of the tts provider registered as name.
func NewTTSClient(ctx context.Context, name string, configs ...pconf.Config) (provider.TTSClient, error) {
	ttsProvidersMu.RLock()
	p, ok := ttsProviders[name]
	ttsProvidersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("coord: unknown tts provider %q", name)
	}
	return p.NewTTSClient(ctx, configs...)
}
