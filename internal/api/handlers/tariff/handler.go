package tariff

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"tariffserver/calculation"
	"tariffserver/classification"
	"tariffserver/enrichment"
	"tariffserver/extractors"
	apperrors "tariffserver/internal/api/errors"
)

// Handler HTTP обработчик тарифных операций
type Handler struct {
	enricher *enrichment.TnvedEnricher
}

// NewHandler создает новый HTTP обработчик
func NewHandler(enricher *enrichment.TnvedEnricher) *Handler {
	return &Handler{enricher: enricher}
}

// ClassifyRequest запрос на классификацию ставки пошлины
type ClassifyRequest struct {
	RowText   string   `json:"row_text"`
	DutyValue string   `json:"duty_value"`
	Cells     []string `json:"cells"`
}

// HandleClassify разбирает текст ставки пошлины
// POST /api/tariff/classify
func (h *Handler) HandleClassify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperrors.NewValidationError("некорректное тело запроса", err))
		return
	}

	if req.RowText == "" && req.DutyValue == "" && len(req.Cells) == 0 {
		h.respondError(c, apperrors.NewValidationError("требуется row_text/duty_value или cells", nil))
		return
	}

	var duty classification.DutyRate
	var err error
	if len(req.Cells) > 0 {
		duty, err = classification.ClassifyRow(req.Cells)
	} else {
		duty, err = classification.Classify(req.RowText, req.DutyValue)
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, duty)
}

// HandleGetTariff возвращает тарифную информацию по коду ТН ВЭД
// GET /api/tariff/:code
func (h *Handler) HandleGetTariff(c *gin.Context) {
	code := c.Param("code")

	info, err := h.enricher.Enrich(c.Request.Context(), code)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// SlotsRequest запрос на извлечение слотов из свободного текста
type SlotsRequest struct {
	Text string `json:"text"`
}

// HandleSlots извлекает страну, количество, единицу измерения и цену из текста
// POST /api/tariff/slots
func (h *Handler) HandleSlots(c *gin.Context) {
	var req SlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperrors.NewValidationError("некорректное тело запроса", err))
		return
	}
	if req.Text == "" {
		h.respondError(c, apperrors.NewValidationError("поле text обязательно", nil))
		return
	}

	slots := extractors.ExtractFreeTextSlots(req.Text)
	c.JSON(http.StatusOK, slots)
}

// CalculateRequest запрос на расчет пошлины к уплате
type CalculateRequest struct {
	Duty         classification.DutyRate `json:"duty"`
	CustomsValue string                  `json:"customs_value"`
	WeightKg     string                  `json:"weight_kg"`
	Units        string                  `json:"units"`
}

// HandleCalculate рассчитывает сумму пошлины для груза
// POST /api/tariff/calculate
func (h *Handler) HandleCalculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperrors.NewValidationError("некорректное тело запроса", err))
		return
	}

	cargo, err := parseCargo(req)
	if err != nil {
		h.respondError(c, apperrors.NewValidationError("некорректные параметры груза", err))
		return
	}

	payable, err := calculation.DutyPayable(req.Duty, cargo)
	if err != nil {
		h.respondError(c, apperrors.NewValidationError("расчет невозможен", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"duty_payable": payable.StringFixed(2),
	})
}

// HandleHealth проверка работоспособности сервиса
// GET /health
func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func parseCargo(req CalculateRequest) (calculation.CargoParams, error) {
	var cargo calculation.CargoParams
	var err error

	cargo.CustomsValue, err = parseDecimalField(req.CustomsValue)
	if err != nil {
		return cargo, err
	}
	cargo.WeightKg, err = parseDecimalField(req.WeightKg)
	if err != nil {
		return cargo, err
	}
	cargo.Units, err = parseDecimalField(req.Units)
	if err != nil {
		return cargo, err
	}
	return cargo, nil
}

func parseDecimalField(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// respondError переводит ошибку в HTTP ответ с подходящим статусом
func (h *Handler) respondError(c *gin.Context, err error) {
	var parseErr *classification.ParseError
	if errors.As(err, &parseErr) {
		appErr := apperrors.NewUnprocessableError(parseErr.Error(), parseErr)
		c.AbortWithStatusJSON(appErr.StatusCode(), gin.H{"error": appErr.UserMessage(), "input": parseErr.Input})
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.AbortWithStatusJSON(appErr.StatusCode(), gin.H{"error": appErr.UserMessage()})
		return
	}

	if errors.Is(err, enrichment.ErrInvalidCode) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, enrichment.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, enrichment.ErrUpstream) {
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Внутренняя ошибка сервера"})
}
