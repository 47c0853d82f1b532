package classification

import (
	"regexp"
	"strconv"
	"strings"

	"tariffserver/normalization"
)

// Распознаватели применяются каскадом в фиксированном порядке:
// минималка извлекается всегда, затем процент, затем специфическая ставка.
// Каждый distinct-паттерн вынесен в отдельную функцию, чтобы приоритеты
// проверялись по отдельности, а не через побочное поведение одного регулярного выражения.
var (
	// «но не менее 0.35 Евро/кг» — минимальная пошлина с весовой базой
	minimumRe = regexp.MustCompile(`(?i)(?:но\s+)?не\s+менее\s+([\d,\.]+)\s*(?:Евро|EUR|€)\s*/?\s*(?:кг|kg)`)

	// «15%», «7,5 %» — адвалорная ставка
	percentRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*%`)

	// первый числовой токен в ячейке со ставкой (после нормализации запятой)
	amountRe = regexp.MustCompile(`[\d.,]+`)

	// маркеры единицы измерения, проверяются в фиксированном порядке
	perWeightRe = regexp.MustCompile(`(?i)/\s*(?:кг|kg)`)
	perPairRe   = regexp.MustCompile(`(?i)/\s*(?:пар|pair)`)
	perPieceRe  = regexp.MustCompile(`(?i)/\s*(?:шт|unit|pc|piece)`)
)

// currencyMarkers закрытый список обозначений валюты в тарифных таблицах
var currencyMarkers = []string{"Евро", "EUR", "€"}

// Classify разбирает нормализованный текст строки тарифной таблицы и возвращает
// структурированное описание пошлины.
//
// rowText — полный текст строки (все ячейки, склеенные через пробел),
// dutyValue — текст ячейки со ставкой (вторая ячейка строки). Ячейка нужна
// отдельно: когда минималка и основная ставка стоят в одной строке, единицу
// измерения определяет именно ячейка со ставкой, а не вся строка.
//
// Порядок проверок:
//  1. минималка «не менее N Евро/кг» ищется всегда по всей строке и не влияет
//     на определение типа
//  2. процент по всей строке → ad_valorem (составная пошлина «15% но не менее
//     0.35 Евро/кг» остаётся адвалорной, минималка записывается отдельно)
//  3. валюта и «/» в ячейке со ставкой → specific, единица по маркеру в ячейке
//  4. иначе none с нулевой ставкой
//
// Ошибка возвращается только если найденный числовой фрагмент не разбирается
// (*ParseError); «паттерн не найден» ошибкой не считается.
//
// Числа с разделителями тысяч («1,250.00») не поддерживаются: запятая всегда
// трактуется как десятичный разделитель.
func Classify(rowText, dutyValue string) (DutyRate, error) {
	result := DutyRate{DutyType: DutyNone}

	// 1. Минималка. Извлекается независимо от типа пошлины.
	if loc := minimumRe.FindStringSubmatchIndex(rowText); loc != nil {
		value, err := parseDecimal(rowText[loc[2]:loc[3]], loc[2])
		if err != nil {
			return DutyRate{DutyType: DutyNone}, err
		}
		result.MinimumFloor = &value
	}

	// 2. Адвалорная ставка. Процент имеет приоритет над суммой в евро.
	if loc := percentRe.FindStringSubmatchIndex(rowText); loc != nil {
		rate, err := parseDecimal(rowText[loc[2]:loc[3]], loc[2])
		if err != nil {
			return DutyRate{DutyType: DutyNone}, err
		}
		result.DutyType = DutyAdValorem
		result.Rate = rate
		return result, nil
	}

	// 3. Специфическая ставка: в ячейке должны быть и валюта, и «/»
	// («0.8 EUR/кг»). «2 EUR» без слэша ставкой не считается.
	if hasCurrencyMarker(dutyValue) && strings.Contains(dutyValue, "/") {
		normalized := strings.ReplaceAll(dutyValue, ",", ".")
		if loc := amountRe.FindStringIndex(normalized); loc != nil {
			rate, err := parseDecimal(normalized[loc[0]:loc[1]], loc[0])
			if err != nil {
				return DutyRate{DutyType: DutyNone}, err
			}
			result.DutyType = DutySpecific
			result.Rate = rate
			result.UnitBasis = detectUnitBasis(dutyValue)
			return result, nil
		}
	}

	// 4. Пошлина не распознана. Минималка, если нашлась, остаётся в результате.
	return result, nil
}

// ClassifyRow нормализует ячейки строки и классифицирует пошлину за один вызов
func ClassifyRow(cells []string) (DutyRate, error) {
	rowText, dutyValue := normalization.NormalizeRow(cells)
	return Classify(rowText, dutyValue)
}

// detectUnitBasis определяет единицу измерения по ячейке со ставкой.
// Порядок проверок фиксированный: вес, пара, штука. Если валюта и «/» есть,
// но маркер не распознан, по умолчанию считается поштучная ставка.
func detectUnitBasis(dutyValue string) UnitBasis {
	switch {
	case perWeightRe.MatchString(dutyValue):
		return BasisPerWeight
	case perPairRe.MatchString(dutyValue):
		return BasisPerPair
	case perPieceRe.MatchString(dutyValue):
		return BasisPerPiece
	default:
		return BasisPerPiece
	}
}

// hasCurrencyMarker проверяет наличие обозначения валюты в тексте
func hasCurrencyMarker(text string) bool {
	for _, marker := range currencyMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// parseDecimal разбирает числовой фрагмент с запятой или точкой в роли
// десятичного разделителя. При неразбираемом фрагменте (например «1.2.3»)
// возвращает *ParseError с фрагментом и его позицией.
func parseDecimal(raw string, position int) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, &ParseError{Input: raw, Position: position}
	}
	return value, nil
}
