package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tariffserver/internal/config"
	"tariffserver/server"
)

func main() {
	log.Println("Запуск сервиса классификации таможенных пошлин...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	srv := server.New(cfg)

	// Запускаем сервер в отдельной горутине, чтобы ловить сигналы остановки
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Ошибка сервера: %v", err)
		}
	case sig := <-quit:
		log.Printf("Получен сигнал %v, останавливаем сервер...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Fatalf("Ошибка остановки сервера: %v", err)
		}
	}
}
