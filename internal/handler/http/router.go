package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	punchHandler PunchHandler,
	employeeHandler EmployeeHandler,
	workdayHandler WorkdayHandler,
	holidayHandler HolidayHandler,
	abonoHandler AbonoHandler,
	reportHandler ReportHandler,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "pontosweb"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/punches/import", punchHandler.ImportFile)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Post("/", employeeHandler.CreateEmployee)
			r.Get("/{id}", employeeHandler.GetEmployee)
			r.Put("/{id}/schedule", employeeHandler.UpdateSchedule)
			r.Post("/{id}/reconcile", workdayHandler.Reconcile)
		})

		r.Get("/timecards/{employeeId}/{month}", workdayHandler.MonthlyTimecard)

		r.Route("/workdays", func(r chi.Router) {
			r.Put("/{id}", workdayHandler.UpdateWorkday)
			r.Get("/{id}/history", workdayHandler.History)
		})

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", holidayHandler.ListHolidays)
			r.Post("/", holidayHandler.CreateHoliday)
			r.Delete("/{id}", holidayHandler.DeleteHoliday)
		})

		r.Route("/abonos", func(r chi.Router) {
			r.Post("/", abonoHandler.CreateAbono)
			r.Delete("/{id}", abonoHandler.DeleteAbono)
			r.Post("/{id}/document", abonoHandler.UploadDocument)
			r.Get("/workday/{workdayId}", abonoHandler.GetByWorkday)
			r.Get("/workday/{workdayId}/document", abonoHandler.DownloadDocument)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/monthly/{month}", reportHandler.CompanyMonthly)
			r.Get("/monthly/{month}/excel", reportHandler.CompanyMonthlyExcel)
			r.Get("/timecard/{employeeId}/{month}/excel", reportHandler.TimecardExcel)
		})

		r.Get("/dashboard", reportHandler.Dashboard)
	})

	return r
}
