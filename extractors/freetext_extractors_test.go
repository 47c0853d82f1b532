package extractors

import "testing"

// TestExtractFreeTextSlots проверяет эвристический разбор свободного текста
func TestExtractFreeTextSlots(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantCountry  string
		wantQuantity float64
		hasQuantity  bool
		wantUOM      string
		wantPrice    float64
		hasPrice     bool
	}{
		{
			name:         "полная заявка",
			text:         "100 пар из Китая по 25$",
			wantCountry:  "Китай",
			wantQuantity: 100,
			hasQuantity:  true,
			wantUOM:      "пар",
			wantPrice:    25,
			hasPrice:     true,
		},
		{
			name:         "количество в штуках и цена в usd",
			text:         "закажу 50 штук, цена 12.5 usd",
			wantQuantity: 50,
			hasQuantity:  true,
			wantUOM:      "шт",
			wantPrice:    12.5,
			hasPrice:     true,
		},
		{
			name:         "вес с запятой",
			text:         "1,5 кг чая",
			wantQuantity: 1.5,
			hasQuantity:  true,
			wantUOM:      "кг",
		},
		{
			name:         "латинская единица нормализуется",
			text:         "10 pcs from China",
			wantCountry:  "China",
			wantQuantity: 10,
			hasQuantity:  true,
			wantUOM:      "шт",
		},
		{
			name:         "падежная форма единицы",
			text:         "ботинки, 2 пары",
			wantQuantity: 2,
			hasQuantity:  true,
			wantUOM:      "пар",
		},
		{
			name: "текст без слотов",
			text: "просто описание товара",
		},
		{
			name:        "страна кириллицей внутри падежной формы",
			text:        "поставка из Вьетнама",
			wantCountry: "Вьетнам",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractFreeTextSlots(tt.text)
			if got.CountryOrigin != tt.wantCountry {
				t.Errorf("CountryOrigin = %q, ожидалось %q", got.CountryOrigin, tt.wantCountry)
			}
			if (got.Quantity != nil) != tt.hasQuantity {
				t.Fatalf("Quantity наличие = %v, ожидалось %v", got.Quantity != nil, tt.hasQuantity)
			}
			if got.Quantity != nil && *got.Quantity != tt.wantQuantity {
				t.Errorf("Quantity = %v, ожидалось %v", *got.Quantity, tt.wantQuantity)
			}
			if got.UOM != tt.wantUOM {
				t.Errorf("UOM = %q, ожидалось %q", got.UOM, tt.wantUOM)
			}
			if (got.Price != nil) != tt.hasPrice {
				t.Fatalf("Price наличие = %v, ожидалось %v", got.Price != nil, tt.hasPrice)
			}
			if got.Price != nil && *got.Price != tt.wantPrice {
				t.Errorf("Price = %v, ожидалось %v", *got.Price, tt.wantPrice)
			}
		})
	}
}

// TestNormalizeUOM проверяет приведение единиц измерения к канонической форме
func TestNormalizeUOM(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"шт", "шт"},
		{"штуки", "шт"},
		{"ШТУК", "шт"},
		{"пара", "пар"},
		{"пары", "пар"},
		{"pairs", "пар"},
		{"кг", "кг"},
		{"килограммов", "кг"},
		{"kg", "кг"},
		{"pcs", "шт"},
		{"тонн", "тонн"},
	}

	for _, tt := range tests {
		if got := NormalizeUOM(tt.token); got != tt.want {
			t.Errorf("NormalizeUOM(%q) = %q, ожидалось %q", tt.token, got, tt.want)
		}
	}
}
