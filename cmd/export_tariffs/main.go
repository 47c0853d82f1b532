// Утилита пакетной выгрузки тарифной информации: читает коды ТН ВЭД из файла
// (по одному на строку), обогащает каждый через каталог и сохраняет результат
// в JSON, CSV или Excel.
//
// Пример:
//
//	export_tariffs -codes codes.txt -format excel -out tariffs.xlsx
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"strings"

	"tariffserver/classification"
	"tariffserver/enrichment"
	"tariffserver/exporter"
	"tariffserver/internal/config"
)

func main() {
	codesPath := flag.String("codes", "codes.txt", "файл со списком кодов ТН ВЭД")
	format := flag.String("format", "json", "формат выгрузки: json, csv или excel")
	outPath := flag.String("out", "tariffs.json", "файл результата")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	codes, err := readCodes(*codesPath)
	if err != nil {
		log.Fatalf("Ошибка чтения кодов: %v", err)
	}
	if len(codes) == 0 {
		log.Fatalf("Файл %s не содержит кодов", *codesPath)
	}
	log.Printf("Загружено %d кодов из %s", len(codes), *codesPath)

	enricher := enrichment.NewTnvedEnricher(enrichment.EnricherConfig{
		BaseURL:   cfg.IfcgBaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.FetchTimeout,
	}, nil)

	ctx := context.Background()

	var items []*enrichment.TariffInfo
	var failed int
	for _, code := range codes {
		info, err := enricher.Enrich(ctx, code)
		if err != nil {
			failed++
			var parseErr *classification.ParseError
			if errors.As(err, &parseErr) {
				log.Printf("Код %s: нечитаемая ставка %q, пропускаем", code, parseErr.Input)
			} else {
				log.Printf("Код %s: %v", code, err)
			}
			continue
		}
		items = append(items, info)
	}

	log.Printf("Обогащено %d кодов, ошибок: %d", len(items), failed)

	if err := exporter.Export(exporter.ExportFormat(*format), *outPath, items); err != nil {
		log.Fatalf("Ошибка выгрузки: %v", err)
	}
	log.Printf("Результат сохранён в %s", *outPath)
}

// readCodes читает коды по одному на строку, пустые строки и комментарии пропускаются
func readCodes(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var codes []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		codes = append(codes, line)
	}
	return codes, scanner.Err()
}
