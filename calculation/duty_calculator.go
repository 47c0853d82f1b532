package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"tariffserver/classification"
)

// CargoParams параметры партии товара для расчёта пошлины.
// Все денежные значения — в валюте тарифа (EUR); конвертация валют
// в расчёт не входит.
type CargoParams struct {
	CustomsValue decimal.Decimal `json:"customs_value"` // таможенная стоимость партии
	WeightKg     decimal.Decimal `json:"weight_kg"`     // вес партии, кг
	Units        decimal.Decimal `json:"units"`         // количество штук или пар
}

var hundred = decimal.NewFromInt(100)

// DutyPayable считает сумму пошлины к уплате по классифицированной ставке.
//
// Адвалорная ставка: процент от таможенной стоимости; если задана минималка,
// итог не может быть меньше минималки, умноженной на вес партии.
// Специфическая ставка: ставка, умноженная на вес (per_weight) либо на
// количество единиц (per_pair, per_piece). Нераспознанная пошлина даёт ноль.
func DutyPayable(duty classification.DutyRate, cargo CargoParams) (decimal.Decimal, error) {
	if cargo.CustomsValue.IsNegative() || cargo.WeightKg.IsNegative() || cargo.Units.IsNegative() {
		return decimal.Zero, fmt.Errorf("параметры партии не могут быть отрицательными")
	}

	rate := decimal.NewFromFloat(duty.Rate)

	switch duty.DutyType {
	case classification.DutyAdValorem:
		amount := cargo.CustomsValue.Mul(rate).Div(hundred)
		if floor, ok := duty.Floor(); ok {
			floorAmount := decimal.NewFromFloat(floor).Mul(cargo.WeightKg)
			if floorAmount.GreaterThan(amount) {
				amount = floorAmount
			}
		}
		return amount, nil

	case classification.DutySpecific:
		switch duty.UnitBasis {
		case classification.BasisPerWeight:
			return rate.Mul(cargo.WeightKg), nil
		case classification.BasisPerPair, classification.BasisPerPiece:
			return rate.Mul(cargo.Units), nil
		default:
			return decimal.Zero, fmt.Errorf("неизвестная единица измерения: %q", duty.UnitBasis)
		}

	case classification.DutyNone:
		return decimal.Zero, nil

	default:
		return decimal.Zero, fmt.Errorf("неизвестный тип пошлины: %q", duty.DutyType)
	}
}
