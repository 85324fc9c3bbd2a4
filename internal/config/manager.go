package config

import (
	"context"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Manager holds the current configuration and reloads it when the file
// changes on disk.
type Manager struct {
	mu       sync.RWMutex
	config   *Config
	path     string
	watcher  *fsnotify.Watcher
	wg       sync.WaitGroup
	onReload func(*Config)
}

func NewManager() (*Manager, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return NewManagerForFile(configPath)
}

func NewManagerForFile(configPath string) (*Manager, error) {
	log.Printf("Config manager: initializing configuration system...")

	config, err := LoadFile(configPath)
	if err != nil {
		log.Printf("Config manager: failed to load initial configuration: %v", err)
		return nil, err
	}

	log.Printf("Config manager: validating initial configuration...")
	if err := config.Validate(); err != nil {
		log.Printf("Config manager: validation warning: %v", err)
	}

	m := &Manager{
		config: config,
		path:   configPath,
	}

	log.Printf("Config manager: initialization completed successfully")
	return m, nil
}

func (m *Manager) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// OnReload registers fn to run after every successful reload.
func (m *Manager) OnReload(fn func(*Config)) {
	m.mu.Lock()
	m.onReload = fn
	m.mu.Unlock()
}

func (m *Manager) StartWatching(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	m.watcher = watcher

	configDir := filepath.Dir(m.path)
	err = watcher.Add(configDir)
	if err != nil {
		watcher.Close()
		return err
	}

	m.wg.Add(1)
	go m.watchLoop(ctx)

	log.Printf("Config manager: watching %s for changes", m.path)
	return nil
}

func (m *Manager) Stop() {
	if m.watcher != nil {
		m.watcher.Close()
	}
	m.wg.Wait()
}

func (m *Manager) watchLoop(ctx context.Context) {
	defer m.wg.Done()
	configFileName := filepath.Base(m.path)

	for {
		select {
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}

			// Filter for our config file only
			if filepath.Base(event.Name) != configFileName {
				continue
			}

			// Save writes a temp file and renames it, which shows up as Create
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				log.Printf("Config manager: file change detected: %s. Reloading config...", event.Name)
				m.reloadConfig()
			}

		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Config watcher error: %v", err)

		case <-ctx.Done():
			return
		}
	}
}

func (m *Manager) reloadConfig() {
	log.Printf("Config manager: starting configuration reload...")

	newConfig, err := LoadFile(m.path)
	if err != nil {
		log.Printf("Config manager: failed to reload config: %v", err)
		return
	}

	log.Printf("Config manager: validating new configuration...")
	if err := newConfig.Validate(); err != nil {
		log.Printf("Config manager: invalid config after reload: %v", err)
		return
	}

	m.mu.Lock()
	m.config = newConfig
	onReload := m.onReload
	m.mu.Unlock()

	if onReload != nil {
		onReload(newConfig)
	}

	log.Printf("Config manager: configuration successfully reloaded")
}
