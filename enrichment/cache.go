package enrichment

import (
	"sync"
	"time"
)

// CacheConfig конфигурация кэша тарифной информации
type CacheConfig struct {
	Enabled         bool          `json:"enabled"`
	TTL             time.Duration `json:"ttl"`
	CleanupInterval time.Duration `json:"cleanup_interval"`
}

// TariffCache кэш результатов обогащения по коду ТН ВЭД.
// Тарифные страницы меняются редко, поэтому повторные обращения за тем же
// кодом в пределах TTL не требуют сетевого запроса.
type TariffCache struct {
	config   *CacheConfig
	data     map[string]*cacheEntry
	mutex    sync.RWMutex
	stats    CacheStats
	stop     chan struct{}
	stopOnce sync.Once
}

type cacheEntry struct {
	info      *TariffInfo
	timestamp time.Time
}

// CacheStats статистика кэша
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// NewTariffCache создает новый кэш
func NewTariffCache(config *CacheConfig) *TariffCache {
	cache := &TariffCache{
		config: config,
		data:   make(map[string]*cacheEntry),
		stop:   make(chan struct{}),
	}

	// Запускаем очистку устаревших записей
	if config.Enabled && config.CleanupInterval > 0 {
		go cache.startCleanup()
	}

	return cache
}

// Get возвращает результат из кэша
func (c *TariffCache) Get(code string) (*TariffInfo, bool) {
	if !c.config.Enabled {
		return nil, false
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, exists := c.data[code]
	if !exists || time.Since(entry.timestamp) > c.config.TTL {
		c.stats.Misses++
		return nil, false
	}

	c.stats.Hits++
	return entry.info, true
}

// Set сохраняет результат в кэш
func (c *TariffCache) Set(code string, info *TariffInfo) {
	if !c.config.Enabled {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[code] = &cacheEntry{
		info:      info,
		timestamp: time.Now(),
	}
	c.stats.Size = len(c.data)
}

// Remove удаляет запись из кэша
func (c *TariffCache) Remove(code string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, code)
	c.stats.Size = len(c.data)
}

// Clear очищает весь кэш
func (c *TariffCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data = make(map[string]*cacheEntry)
	c.stats = CacheStats{}
}

// GetStats возвращает статистику кэша
func (c *TariffCache) GetStats() CacheStats {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	stats := c.stats
	stats.Size = len(c.data)
	return stats
}

// Stop останавливает фоновую очистку
func (c *TariffCache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
}

// startCleanup периодически удаляет устаревшие записи
func (c *TariffCache) startCleanup() {
	ticker := time.NewTicker(c.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stop:
			return
		}
	}
}

func (c *TariffCache) cleanup() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for code, entry := range c.data {
		if time.Since(entry.timestamp) > c.config.TTL {
			delete(c.data, code)
		}
	}
	c.stats.Size = len(c.data)
}
