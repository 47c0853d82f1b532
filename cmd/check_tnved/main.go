// Утилита проверки разбора тарифной страницы: получает код из каталога
// или разбирает сохранённый HTML файл и печатает результат в JSON.
//
// Примеры:
//
//	check_tnved 6203423100
//	check_tnved -file page.html 6203423100
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"tariffserver/enrichment"
	"tariffserver/internal/config"
)

func main() {
	filePath := flag.String("file", "", "разобрать сохранённый HTML вместо запроса к каталогу")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Использование: %s [-file page.html] <код ТН ВЭД>\n", os.Args[0])
		os.Exit(2)
	}
	code := flag.Arg(0)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	enricher := enrichment.NewTnvedEnricher(enrichment.EnricherConfig{
		BaseURL:   cfg.IfcgBaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.FetchTimeout,
	}, nil)

	var info *enrichment.TariffInfo
	if *filePath != "" {
		f, err := os.Open(*filePath)
		if err != nil {
			log.Fatalf("Ошибка открытия файла: %v", err)
		}
		defer f.Close()

		info, err = enricher.Parse(f, code)
		if err != nil {
			log.Fatalf("Ошибка разбора: %v", err)
		}
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		info, err = enricher.Enrich(ctx, code)
		if err != nil {
			log.Fatalf("Ошибка обогащения: %v", err)
		}
	}

	output, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		log.Fatalf("Ошибка сериализации: %v", err)
	}
	fmt.Println(string(output))
}
