package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "patient-care-manager/internal/adapters/storage/memory"
	pg "patient-care-manager/internal/adapters/storage/postgres"
	"patient-care-manager/internal/domain/changelog"
	"patient-care-manager/internal/domain/patients"
	"patient-care-manager/internal/middleware"
	"patient-care-manager/internal/platform/logger"

	_ "patient-care-manager/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: habilita el log de requests.
	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if opts.Log != nil {
		r.Use(middleware.RequestLogger(opts.Log))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		patientsRepo patients.Repository
		changesRepo  changelog.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		patientsRepo = pg.NewPatientsRepo(db)
		changesRepo = pg.NewChangelogRepo(db)
	} else {
		patientsRepo = mem.NewPatientsRepo()
		changesRepo = mem.NewChangelogRepo()
	}

	// Services por módulo
	patientsSvc := patients.NewService(patientsRepo)
	changesSvc := changelog.NewService(changesRepo)

	// Rutas por módulo
	patients.RegisterRoutes(r, patientsSvc, changesSvc)
	changelog.RegisterRoutes(r, changesSvc)

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
