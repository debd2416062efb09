package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pontosweb/pontosweb-backend-go/internal/config"
	appHTTP "github.com/pontosweb/pontosweb-backend-go/internal/handler/http"
	"github.com/pontosweb/pontosweb-backend-go/internal/pkg/database"
	"github.com/pontosweb/pontosweb-backend-go/internal/pkg/storage"
	"github.com/pontosweb/pontosweb-backend-go/internal/repository/postgresql"
	abonoService "github.com/pontosweb/pontosweb-backend-go/internal/service/abono"
	employeeService "github.com/pontosweb/pontosweb-backend-go/internal/service/employee"
	holidayService "github.com/pontosweb/pontosweb-backend-go/internal/service/holiday"
	punchService "github.com/pontosweb/pontosweb-backend-go/internal/service/punch"
	reportService "github.com/pontosweb/pontosweb-backend-go/internal/service/report"
	workdayService "github.com/pontosweb/pontosweb-backend-go/internal/service/workday"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolConfig{
		MaxConns: int32(cfg.Database.MaxConns),
		MinConns: int32(cfg.Database.MinConns),
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	workdayRepo := postgresql.NewWorkdayRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	abonoRepo := postgresql.NewAbonoRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	dedupWindow := time.Duration(cfg.Punch.DedupWindowMinutes) * time.Minute

	workdaySvc := workdayService.NewWorkdayService(db, workdayRepo, punchRepo, employeeRepo, holidayRepo, abonoRepo, dedupWindow)
	punchSvc := punchService.NewPunchService(punchRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	abonoSvc := abonoService.NewAbonoService(abonoRepo, workdayRepo, fileStorage)
	reportSvc := reportService.NewReportService(reportRepo, punchRepo, workdaySvc)

	punchHandler := appHTTP.NewPunchHandler(punchSvc, workdaySvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	workdayHandler := appHTTP.NewWorkdayHandler(workdaySvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	abonoHandler := appHTTP.NewAbonoHandler(abonoSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		punchHandler,
		employeeHandler,
		workdayHandler,
		holidayHandler,
		abonoHandler,
		reportHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
