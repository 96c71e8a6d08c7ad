package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/kintai/internal/adapters/http/handler"
	pgrepo "github.com/ogurasousui/kintai/internal/adapters/repository/postgres"
	"github.com/ogurasousui/kintai/internal/core/employee"
	"github.com/ogurasousui/kintai/internal/core/shiftreport"
	"github.com/ogurasousui/kintai/internal/core/timeclock"
	"github.com/ogurasousui/kintai/internal/platform/config"
	pg "github.com/ogurasousui/kintai/internal/platform/db/postgres"
	"github.com/ogurasousui/kintai/internal/platform/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to initialize database pool: %v", err)
	}
	defer dbPool.Close()

	tx := pg.NewTransactionManager(dbPool)

	employeeRepo := pgrepo.NewEmployeeRepository(dbPool)
	eventRepo := pgrepo.NewClockEventRepository(dbPool)
	shiftRepo := pgrepo.NewShiftRepository(dbPool)
	reportRepo := pgrepo.NewShiftReportRepository(dbPool)

	clockSvc := timeclock.NewService(employeeRepo, eventRepo, shiftRepo, nil, tx)
	employeeSvc := employee.NewService(employeeRepo, clockSvc, nil, tx)
	reportSvc := shiftreport.NewService(reportRepo, tx)

	router := handler.NewRouter(
		handler.NewKioskHandler(clockSvc),
		handler.NewEmployeeHandler(employeeSvc),
		handler.NewShiftHandler(reportSvc),
	)

	httpServer := server.New(cfg.Server.ListenAddr, router, cfg.Server.ShutdownTimeout)

	log.Printf("HTTP server listening on %s", cfg.Server.ListenAddr)

	if err := httpServer.Run(ctx); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}
