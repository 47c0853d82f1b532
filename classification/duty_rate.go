package classification

import "fmt"

// DutyType тип импортной пошлины
type DutyType string

const (
	// DutyAdValorem адвалорная пошлина (процент от таможенной стоимости)
	DutyAdValorem DutyType = "ad_valorem"
	// DutySpecific специфическая пошлина (фиксированная сумма за физическую единицу)
	DutySpecific DutyType = "specific"
	// DutyNone пошлина не распознана или отсутствует
	DutyNone DutyType = "none"
)

// UnitBasis физическая единица, к которой привязана специфическая ставка
type UnitBasis string

const (
	// BasisPerWeight ставка за килограмм (EUR/кг)
	BasisPerWeight UnitBasis = "per_weight"
	// BasisPerPair ставка за пару (EUR/пар)
	BasisPerPair UnitBasis = "per_pair"
	// BasisPerPiece ставка за штуку (EUR/шт)
	BasisPerPiece UnitBasis = "per_piece"
)

// DutyRate нормализованное описание импортной пошлины, извлечённое из текста
// строки тарифной таблицы.
//
// Инварианты:
//   - DutyType всегда одно из трёх значений: ad_valorem, specific, none
//   - UnitBasis заполняется только для specific (у адвалорной ставки минималка
//     несёт собственную весовую базу и отдельно не публикуется)
//   - Rate равен 0.0 при DutyType = none
type DutyRate struct {
	DutyType     DutyType  `json:"duty_type"`
	Rate         float64   `json:"rate"`
	UnitBasis    UnitBasis `json:"unit_basis,omitempty"`
	MinimumFloor *float64  `json:"minimum_floor,omitempty"`
}

// Floor возвращает значение минимальной пошлины и признак её наличия
func (d DutyRate) Floor() (float64, bool) {
	if d.MinimumFloor == nil {
		return 0, false
	}
	return *d.MinimumFloor, true
}

// ParseError ошибка разбора числового фрагмента: паттерн найден, но число
// не удалось преобразовать. Хранит сам фрагмент и его позицию в исходной строке,
// чтобы вызывающая сторона могла решить, игнорировать строку или прервать обработку.
type ParseError struct {
	Input    string // фрагмент, который не удалось разобрать
	Position int    // байтовая позиция фрагмента в исходной строке
}

// Error реализует интерфейс error
func (e *ParseError) Error() string {
	return fmt.Sprintf("не удалось разобрать число %q (позиция %d)", e.Input, e.Position)
}
