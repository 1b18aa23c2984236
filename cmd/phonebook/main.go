// Package main - точка входа пакетной обработки адресной книги Contact Dedup Hub.
//
// Один прогон выполняет:
// - Загрузку «сырых» контактов из CSV с нормализацией телефонов и почты
// - Поиск дубликатов по каналам идентичности (почта, телефон, фамилия+имя)
// - Слияние конфликтов с отчётом оператору
// - Выгрузку итогового списка контактов в CSV
//
// Конфликт - не ошибка, а полноправный результат: данные не
// перезаписываются и не теряются молча.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/contact-hub/contact-dedup-hub/config"
	"github.com/contact-hub/contact-dedup-hub/internal/application/command"
	"github.com/contact-hub/contact-dedup-hub/internal/application/eventhandler"
	"github.com/contact-hub/contact-dedup-hub/internal/application/query"
	"github.com/contact-hub/contact-dedup-hub/internal/domain/contact"
	"github.com/contact-hub/contact-dedup-hub/internal/domain/phonebook"
	"github.com/contact-hub/contact-dedup-hub/internal/domain/shared"
	"github.com/contact-hub/contact-dedup-hub/internal/infrastructure/messaging"
	"github.com/contact-hub/contact-dedup-hub/internal/infrastructure/persistence/csvfile"
	"github.com/contact-hub/contact-dedup-hub/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// ─────────────────────────────────────────────────────────────────────────
	// Configuration & logging
	// ─────────────────────────────────────────────────────────────────────────

	cfg, err := config.Load()
	if err != nil {
		logger.Default().Error("loading configuration", logger.Err(err))
		return err
	}

	log := logger.New(os.Stdout, logger.ParseLevel(cfg.App.LogLevel))
	log = log.With(logger.F("app", cfg.App.Name))

	slogLevel := slog.LevelInfo
	if cfg.IsDebug() {
		slogLevel = slog.LevelDebug
	}
	slogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel}))

	// ─────────────────────────────────────────────────────────────────────────
	// Wiring: event bus, reporting handlers, phonebook
	// ─────────────────────────────────────────────────────────────────────────

	bus := messaging.NewInMemoryEventBus(slogger)
	defer bus.Close()

	if err := bus.Subscribe(shared.EventDuplicateDetected, eventhandler.NewOnDuplicateDetectedHandler(slogger)); err != nil {
		log.Error("subscribing duplicate handler", logger.Err(err))
		return err
	}
	if err := bus.Subscribe(shared.EventConflictResolved, eventhandler.NewOnConflictResolvedHandler(slogger)); err != nil {
		log.Error("subscribing resolve handler", logger.Err(err))
		return err
	}

	book := phonebook.New()
	reader := csvfile.NewReader(cfg.CSV.InputPath, cfg.CSV.Delimiter)
	writer := csvfile.NewWriter(cfg.CSV.OutputPath, cfg.CSV.Delimiter)

	// ─────────────────────────────────────────────────────────────────────────
	// Run: import → report → merge → export
	// ─────────────────────────────────────────────────────────────────────────

	importResult, err := command.NewImportContactsHandler(book, reader, bus, slogger).Execute(ctx)
	if err != nil {
		log.Error("importing contacts", logger.Err(err), logger.F("input", cfg.CSV.InputPath))
		return err
	}

	ignore := make([]contact.Field, 0, len(cfg.Merge.IgnoreFields))
	for _, name := range cfg.Merge.IgnoreFields {
		field, ok := contact.ParseField(name)
		if !ok {
			log.Warn("unknown merge field ignored", logger.F("field", name))
			continue
		}
		ignore = append(ignore, field)
	}

	resolveResult, err := command.NewResolveConflictsHandler(book, bus, slogger).
		Execute(ctx, command.ResolveConflictsCommand{Ignore: ignore})
	if err != nil {
		log.Error("resolving conflicts", logger.Err(err))
		return err
	}

	if _, err := command.NewExportContactsHandler(book, writer, slogger).Execute(ctx); err != nil {
		log.Error("exporting contacts", logger.Err(err), logger.F("output", writer.Path()))
		return err
	}

	unresolved, err := query.NewGetConflictsHandler(book).
		Execute(ctx, query.GetConflictsQuery{OnlyUnresolved: true})
	if err != nil {
		log.Error("querying conflicts", logger.Err(err))
		return err
	}

	log.Info("phonebook run completed",
		logger.F("rows", importResult.RowsRead),
		logger.F("accepted", importResult.Accepted),
		logger.F("conflicts", importResult.Conflicts),
		logger.F("resolved", resolveResult.Resolved),
		logger.F("unresolved", len(unresolved)),
		logger.F("output", writer.Path()),
	)
	return nil
}
