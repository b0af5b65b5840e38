package surveystore

import (
	"fmt"
	"sync"

	"github.com/huangsam/votetab/internal/contract"
	"github.com/huangsam/votetab/schema"
)

// RunStoreManager manages the RunStore instance.
type RunStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	run          contract.RunStore
}

var _ contract.StoreManager = &RunStoreManager{} // Compile-time check

// GetRunStore returns the RunStore, or nil when tracking is disabled.
func (mgr *RunStoreManager) GetRunStore() contract.RunStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.run
}

// Global Manager instance for main logic.
var (
	Manager   = &RunStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// InitStore initializes the global run store manager.
// The backend can be NoneBackend to disable run tracking.
func InitStore(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		store, err := NewRunStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize run tracking: %w", err)
			return
		}

		Manager.Lock()
		Manager.run = store
		Manager.Unlock()
	})

	return initErr
}

// CloseStore closes the global run store.
func CloseStore() error {
	var closeErr error

	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.run != nil {
			closeErr = Manager.run.Close()
			Manager.run = nil
		}
	})

	return closeErr
}
