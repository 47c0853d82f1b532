package normalization

import "strings"

// NormalizeCellText убирает ведущие и замыкающие пробелы и схлопывает
// внутренние пробельные последовательности до одного пробела
func NormalizeCellText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeRow готовит текст строки тарифной таблицы к сопоставлению с паттернами.
//
// Возвращает полный текст строки (тексты ячеек, склеенные через один пробел)
// и текст ячейки со ставкой — по соглашению это вторая ячейка строки.
// Если ячеек меньше двух, текст ставки пустой: классификатор трактует пустую
// строку как отсутствие пошлины, это штатный исход, а не ошибка.
//
// Локализация чисел (запятая/точка) здесь не нормализуется — это забота
// классификатора, которому нужны исходные разделители для диагностики.
func NormalizeRow(cells []string) (rowText, dutyValue string) {
	rowText = NormalizeCellText(strings.Join(cells, " "))
	if len(cells) >= 2 {
		dutyValue = NormalizeCellText(cells[1])
	}
	return rowText, dutyValue
}
