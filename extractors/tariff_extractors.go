package extractors

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tariffserver/normalization"
)

// DefaultVATRate ставка НДС по умолчанию, когда строка НДС на странице не найдена
const DefaultVATRate = 20.0

var (
	dutyLabelRe = regexp.MustCompile(`(?i)импортная\s+пошлина`)
	vatLabelRe  = regexp.MustCompile(`(?i)ввозной\s+ндс|ндс`)
	numberRe    = regexp.MustCompile(`[\d.,]+`)
)

// ExtractDutyRow находит в документе строку таблицы «Импортная пошлина»
// и возвращает нормализованный полный текст строки и текст ячейки со ставкой.
//
// Ищется ячейка td, чей текст содержит метку (без учёта регистра), затем
// берётся родительская строка tr и тексты всех её ячеек. Сам разбор значений
// здесь не выполняется — это задача classification.Classify.
func ExtractDutyRow(doc *goquery.Document) (rowText, dutyValue string, err error) {
	cells, found := findLabeledRow(doc, dutyLabelRe)
	if !found {
		return "", "", fmt.Errorf("строка «Импортная пошлина» не найдена в документе")
	}

	rowText, dutyValue = normalization.NormalizeRow(cells)
	return rowText, dutyValue, nil
}

// ExtractVATRate находит строку «Ввозной НДС» и возвращает ставку НДС в процентах.
// Если строка не найдена или число не распознано, возвращается DefaultVATRate.
func ExtractVATRate(doc *goquery.Document) float64 {
	cells, found := findLabeledRow(doc, vatLabelRe)
	if !found || len(cells) < 2 {
		return DefaultVATRate
	}

	vatValue := strings.ReplaceAll(normalization.NormalizeCellText(cells[1]), ",", ".")
	match := numberRe.FindString(vatValue)
	if match == "" {
		return DefaultVATRate
	}

	rate, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return DefaultVATRate
	}
	return rate
}

// findLabeledRow ищет первую строку таблицы, у которой текст какой-либо ячейки
// совпадает с меткой, и возвращает тексты всех ячеек этой строки
func findLabeledRow(doc *goquery.Document, label *regexp.Regexp) ([]string, bool) {
	var cells []string
	found := false

	doc.Find("td").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !label.MatchString(s.Text()) {
			return true
		}
		tr := s.Closest("tr")
		if tr.Length() == 0 {
			return true
		}
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, td.Text())
		})
		found = true
		return false
	})

	return cells, found
}
