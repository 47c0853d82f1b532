package normalization

import "testing"

// TestNormalizeRow проверяет склейку ячеек и схлопывание пробелов
func TestNormalizeRow(t *testing.T) {
	tests := []struct {
		name          string
		cells         []string
		wantRowText   string
		wantDutyValue string
	}{
		{
			name:          "типовая строка из двух ячеек",
			cells:         []string{"Импортная пошлина", "15%"},
			wantRowText:   "Импортная пошлина 15%",
			wantDutyValue: "15%",
		},
		{
			name:          "лишние пробелы и переводы строк",
			cells:         []string{"  Импортная \n пошлина ", " 15%  но не менее\t0.35 Евро / кг "},
			wantRowText:   "Импортная пошлина 15% но не менее 0.35 Евро / кг",
			wantDutyValue: "15% но не менее 0.35 Евро / кг",
		},
		{
			name:          "три ячейки: ставка из второй",
			cells:         []string{"Импортная пошлина", "15%", "но не менее 0.35 Евро/кг"},
			wantRowText:   "Импортная пошлина 15% но не менее 0.35 Евро/кг",
			wantDutyValue: "15%",
		},
		{
			name:          "одна ячейка: ставка пустая",
			cells:         []string{"Импортная пошлина"},
			wantRowText:   "Импортная пошлина",
			wantDutyValue: "",
		},
		{
			name:          "пустой список ячеек",
			cells:         nil,
			wantRowText:   "",
			wantDutyValue: "",
		},
		{
			name:          "пустая вторая ячейка",
			cells:         []string{"Импортная пошлина", "   "},
			wantRowText:   "Импортная пошлина",
			wantDutyValue: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rowText, dutyValue := NormalizeRow(tt.cells)
			if rowText != tt.wantRowText {
				t.Errorf("rowText = %q, ожидалось %q", rowText, tt.wantRowText)
			}
			if dutyValue != tt.wantDutyValue {
				t.Errorf("dutyValue = %q, ожидалось %q", dutyValue, tt.wantDutyValue)
			}
		})
	}
}

// TestNormalizeCellText проверяет нормализацию отдельной ячейки
func TestNormalizeCellText(t *testing.T) {
	if got := NormalizeCellText("  0,8\t EUR/кг \n"); got != "0,8 EUR/кг" {
		t.Errorf("NormalizeCellText() = %q", got)
	}
	if got := NormalizeCellText(""); got != "" {
		t.Errorf("NormalizeCellText(\"\") = %q", got)
	}
}
