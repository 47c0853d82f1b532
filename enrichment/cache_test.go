package enrichment

import (
	"testing"
	"time"

	"tariffserver/classification"
)

func testCacheConfig(ttl time.Duration) *CacheConfig {
	return &CacheConfig{
		Enabled: true,
		TTL:     ttl,
	}
}

func testTariffInfo(code string) *TariffInfo {
	return &TariffInfo{
		Code: code,
		Duty: classification.DutyRate{
			DutyType: classification.DutyAdValorem,
			Rate:     15.0,
		},
		VATRate: 20.0,
	}
}

// TestTariffCacheSetGet проверяет базовые операции кэша
func TestTariffCacheSetGet(t *testing.T) {
	cache := NewTariffCache(testCacheConfig(time.Minute))

	if _, found := cache.Get("6203423100"); found {
		t.Error("пустой кэш не должен возвращать записи")
	}

	info := testTariffInfo("6203423100")
	cache.Set("6203423100", info)

	got, found := cache.Get("6203423100")
	if !found {
		t.Fatal("запись не найдена после Set")
	}
	if got.Code != info.Code || got.Duty.Rate != info.Duty.Rate {
		t.Errorf("получено %+v, ожидалось %+v", got, info)
	}
}

// TestTariffCacheTTL запись устаревает по истечении TTL
func TestTariffCacheTTL(t *testing.T) {
	cache := NewTariffCache(testCacheConfig(20 * time.Millisecond))
	cache.Set("6203423100", testTariffInfo("6203423100"))

	time.Sleep(50 * time.Millisecond)

	if _, found := cache.Get("6203423100"); found {
		t.Error("запись должна устареть после TTL")
	}
}

// TestTariffCacheDisabled выключенный кэш ничего не хранит
func TestTariffCacheDisabled(t *testing.T) {
	cache := NewTariffCache(&CacheConfig{Enabled: false, TTL: time.Minute})
	cache.Set("6203423100", testTariffInfo("6203423100"))

	if _, found := cache.Get("6203423100"); found {
		t.Error("выключенный кэш не должен возвращать записи")
	}
}

// TestTariffCacheStats проверяет учёт попаданий и промахов
func TestTariffCacheStats(t *testing.T) {
	cache := NewTariffCache(testCacheConfig(time.Minute))
	cache.Set("6203423100", testTariffInfo("6203423100"))

	cache.Get("6203423100") // hit
	cache.Get("0000000000") // miss

	stats := cache.GetStats()
	if stats.Hits != 1 {
		t.Errorf("Hits = %d, ожидалось 1", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, ожидалось 1", stats.Misses)
	}
	if stats.Size != 1 {
		t.Errorf("Size = %d, ожидалось 1", stats.Size)
	}
}

// TestTariffCacheRemoveClear проверяет удаление и полную очистку
func TestTariffCacheRemoveClear(t *testing.T) {
	cache := NewTariffCache(testCacheConfig(time.Minute))
	cache.Set("6203423100", testTariffInfo("6203423100"))
	cache.Set("6403999600", testTariffInfo("6403999600"))

	cache.Remove("6203423100")
	if _, found := cache.Get("6203423100"); found {
		t.Error("запись не удалена")
	}

	cache.Clear()
	if stats := cache.GetStats(); stats.Size != 0 {
		t.Errorf("Size после Clear = %d, ожидалось 0", stats.Size)
	}
}
