package router

import (
	"database/sql"
	"net/http"
	"os"

	_ "dog-feeding-tracker/docs" // registro del documento swagger
	mem "dog-feeding-tracker/internal/adapters/storage/memory"
	pg "dog-feeding-tracker/internal/adapters/storage/postgres"
	sb "dog-feeding-tracker/internal/adapters/storage/supabase"
	"dog-feeding-tracker/internal/domain/dogs"
	"dog-feeding-tracker/internal/domain/feedings"
	"dog-feeding-tracker/internal/middleware"
	"dog-feeding-tracker/internal/platform/logger"
	"dog-feeding-tracker/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres directo. Si no, se decide por env:
	// SUPABASE_URL+SUPABASE_ANON_KEY => gateway Supabase,
	// DB_DSN => Postgres, nada => in-memory.
	DB *sql.DB

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/docs/*", httpSwagger.Handler())

	var (
		dogRepo  dogs.Repository
		feedRepo feedings.Repository
	)

	switch {
	case opts.DB != nil:
		dogRepo = pg.NewDogsRepo(opts.DB)
		feedRepo = pg.NewFeedingsRepo(opts.DB)
		log.Info("storage: postgres (injected)", nil)

	case os.Getenv("SUPABASE_URL") != "" && os.Getenv("SUPABASE_ANON_KEY") != "":
		client, err := sb.NewClient(sb.Config{
			ProjectURL: os.Getenv("SUPABASE_URL"),
			APIKey:     os.Getenv("SUPABASE_ANON_KEY"),
		})
		if err == nil {
			dogRepo = sb.NewDogsRepo(client)
			feedRepo = sb.NewFeedingsRepo(client)
			log.Info("storage: supabase gateway", nil)
		} else {
			log.Error("storage: supabase config invalid, falling back", map[string]any{"err": err.Error()})
		}

	case os.Getenv("DB_DSN") != "":
		if db, err := pg.Open(os.Getenv("DB_DSN")); err == nil {
			dogRepo = pg.NewDogsRepo(db)
			feedRepo = pg.NewFeedingsRepo(db)
			log.Info("storage: postgres", nil)
		} else {
			log.Error("storage: postgres open failed, falling back", map[string]any{"err": err.Error()})
		}
	}

	if dogRepo == nil || feedRepo == nil {
		store := mem.NewStore()
		dogRepo = store.Dogs()
		feedRepo = store.Feedings()
		log.Info("storage: in-memory", nil)
	}

	// Services por módulo
	dogsSvc := dogs.NewService(dogRepo)
	feedingsSvc := feedings.NewService(feedRepo)

	// Rutas por módulo. feedings valida ownership contra dogs; dogs usa el
	// conteo de hoy de feedings vía interfaz local (sin ciclo de imports).
	dogs.RegisterRoutes(r, dogsSvc, feedingsSvc)
	feedings.RegisterRoutes(r, feedingsSvc, dogsSvc)

	return r
}
