package enrichment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"golang.org/x/time/rate"

	"tariffserver/classification"
	"tariffserver/extractors"
)

// TariffInfo тарифная информация по коду ТН ВЭД, собранная со страницы каталога
type TariffInfo struct {
	Code      string                  `json:"code"`
	Duty      classification.DutyRate `json:"duty"`
	VATRate   float64                 `json:"vat_rate"`
	SourceURL string                  `json:"source_url"`
	FetchedAt time.Time               `json:"fetched_at"`
}

// EnricherConfig конфигурация обогатителя тарифной информации
type EnricherConfig struct {
	BaseURL   string        `json:"base_url"`
	UserAgent string        `json:"user_agent"`
	Timeout   time.Duration `json:"timeout"`
	RateLimit rate.Limit    `json:"rate_limit"` // запросов в секунду к каталогу
}

// TnvedEnricher загружает страницу кода ТН ВЭД из каталога, извлекает строку
// импортной пошлины и классифицирует её. Запрос выполняется один раз —
// политика повторов остаётся за вызывающей стороной.
type TnvedEnricher struct {
	config  EnricherConfig
	client  *http.Client
	limiter *rate.Limiter
	cache   *TariffCache
}

var codeRe = regexp.MustCompile(`^\d{4,10}$`)

// Сентинельные ошибки обогащения для трансляции в HTTP статусы
var (
	ErrInvalidCode = errors.New("некорректный код ТН ВЭД")
	ErrNotFound    = errors.New("код не найден в каталоге")
	ErrUpstream    = errors.New("каталог недоступен")
)

// NewTnvedEnricher создает новый обогатитель. cache может быть nil — тогда
// каждый вызов Enrich обращается к каталогу.
func NewTnvedEnricher(config EnricherConfig, cache *TariffCache) *TnvedEnricher {
	if config.BaseURL == "" {
		config.BaseURL = "https://www.ifcg.ru"
	}
	if config.UserAgent == "" {
		config.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.RateLimit == 0 {
		config.RateLimit = rate.Every(time.Second) // 1 запрос в секунду
	}

	return &TnvedEnricher{
		config: config,
		client: &http.Client{
			Timeout: config.Timeout,
		},
		limiter: rate.NewLimiter(config.RateLimit, 1),
		cache:   cache,
	}
}

// Enrich возвращает тарифную информацию по коду ТН ВЭД.
// Если на странице нет строки импортной пошлины, возвращается запись
// с DutyNone — это штатный исход для кодов без пошлины. Ошибка разбора
// числа (*classification.ParseError) пробрасывается вызывающей стороне.
func (e *TnvedEnricher) Enrich(ctx context.Context, code string) (*TariffInfo, error) {
	if !codeRe.MatchString(code) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}

	if e.cache != nil {
		if cached, found := e.cache.Get(code); found {
			return cached, nil
		}
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	sourceURL := fmt.Sprintf("%s/kb/tnved/%s/", strings.TrimRight(e.config.BaseURL, "/"), code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", e.config.UserAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, code)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: статус %d", ErrUpstream, resp.StatusCode)
	}

	body, err := decodeBody(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("failed to decode body: %w", err)
	}

	info, err := e.Parse(body, code)
	if err != nil {
		return nil, err
	}
	info.SourceURL = sourceURL

	if e.cache != nil {
		e.cache.Set(code, info)
	}

	return info, nil
}

// Parse извлекает тарифную информацию из уже полученного HTML.
// Выделен отдельно, чтобы разбирать сохранённые страницы без сети.
func (e *TnvedEnricher) Parse(body io.Reader, code string) (*TariffInfo, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	info := &TariffInfo{
		Code:      code,
		Duty:      classification.DutyRate{DutyType: classification.DutyNone},
		VATRate:   extractors.ExtractVATRate(doc),
		FetchedAt: time.Now().UTC(),
	}

	rowText, dutyValue, err := extractors.ExtractDutyRow(doc)
	if err != nil {
		// Код без строки пошлины — штатный случай, а не ошибка
		log.Printf("Строка пошлины не найдена для кода %s: %v", code, err)
		return info, nil
	}

	duty, err := classification.Classify(rowText, dutyValue)
	if err != nil {
		return nil, fmt.Errorf("код %s: %w", code, err)
	}
	info.Duty = duty

	return info, nil
}

// decodeBody приводит тело ответа к UTF-8. Каталог отдаёт страницы и в UTF-8,
// и в windows-1251 в зависимости от фронтенда.
func decodeBody(body io.Reader, contentType string) (io.Reader, error) {
	if strings.Contains(strings.ToLower(contentType), "1251") {
		return transform.NewReader(body, charmap.Windows1251.NewDecoder()), nil
	}
	return charset.NewReader(body, contentType)
}
