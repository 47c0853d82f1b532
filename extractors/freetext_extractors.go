package extractors

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kljensen/snowball"
)

// FreeTextSlots результат эвристического разбора свободного текста заявки.
// Незаполненные слоты остаются нулевыми — частичный результат это норма,
// разбор улучшает UX заполнения, но ни на что не влияет критически.
type FreeTextSlots struct {
	CountryOrigin string   `json:"country_origin,omitempty"`
	Quantity      *float64 `json:"quantity,omitempty"`
	UOM           string   `json:"uom,omitempty"`
	Price         *float64 `json:"price,omitempty"`
}

var (
	// цена вида «25$» или «25 usd»
	priceRe = regexp.MustCompile(`(?i)(\d+[.,]?\d*)\s*(\$|usd)`)

	// количество вида «100 шт», «2 пары», «1,5 кг», «10 pcs»
	quantityRe = regexp.MustCompile(`(?i)(\d+[.,]?\d*)\s*(шт[а-яё]*|пар[а-яё]*|килограмм[а-яё]*|кг|pcs|pc|pairs|pair|kg)`)

	// закрытые списки стран; для кириллицы \b не работает (границы слова в
	// regexp считаются только по ASCII), поэтому кириллица ищется подстрокой
	countryCyrRe = regexp.MustCompile(`(?i)(Китай|Вьетнам|Россия|Беларусь)`)
	countryLatRe = regexp.MustCompile(`(?i)\b(Germany|China|Vietnam)\b`)
)

// uomStems таблица «основа слова → каноническая единица», построенная
// стеммингом известных словоформ. Позволяет узнавать падежные формы
// («штуки», «парах», «килограммов») без перечисления каждой в регулярном выражении.
var uomStems = buildUOMStems()

func buildUOMStems() map[string]string {
	forms := map[string][]string{
		"шт":  {"шт", "штука", "штуки", "штук", "штуках", "pcs", "pc"},
		"пар": {"пар", "пара", "пары", "парах", "pairs", "pair"},
		"кг":  {"кг", "килограмм", "килограмма", "килограммов", "kg"},
	}

	stems := make(map[string]string)
	for canonical, words := range forms {
		for _, word := range words {
			stems[stemUOM(word)] = canonical
		}
	}
	return stems
}

func stemUOM(word string) string {
	normalized := strings.ToLower(strings.TrimSpace(word))
	stemmed, err := snowball.Stem(normalized, "russian", true)
	if err != nil {
		return normalized
	}
	return stemmed
}

// ExtractFreeTextSlots извлекает страну происхождения, количество, единицу
// измерения и цену из свободного текста («100 пар из Китая по 25$»)
func ExtractFreeTextSlots(text string) FreeTextSlots {
	var slots FreeTextSlots

	if m := priceRe.FindStringSubmatch(text); m != nil {
		if price, err := parseSlotNumber(m[1]); err == nil {
			slots.Price = &price
		}
	}

	if m := quantityRe.FindStringSubmatch(text); m != nil {
		if quantity, err := parseSlotNumber(m[1]); err == nil {
			slots.Quantity = &quantity
			slots.UOM = NormalizeUOM(m[2])
		}
	}

	if m := countryCyrRe.FindStringSubmatch(text); m != nil {
		slots.CountryOrigin = m[1]
	} else if m := countryLatRe.FindStringSubmatch(text); m != nil {
		slots.CountryOrigin = m[1]
	}

	return slots
}

// NormalizeUOM приводит единицу измерения к канонической форме (шт, пар, кг).
// Нераспознанный токен возвращается в нижнем регистре как есть.
func NormalizeUOM(token string) string {
	if canonical, ok := uomStems[stemUOM(token)]; ok {
		return canonical
	}
	return strings.ToLower(strings.TrimSpace(token))
}

func parseSlotNumber(raw string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
}
