package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/DanielKiedis/TallerMecanico/internal/config"
	"github.com/DanielKiedis/TallerMecanico/internal/handlers"
	"github.com/DanielKiedis/TallerMecanico/internal/middleware"
	"github.com/DanielKiedis/TallerMecanico/internal/models"
	"github.com/DanielKiedis/TallerMecanico/internal/repository/postgres"
	"github.com/DanielKiedis/TallerMecanico/internal/service"
	"github.com/DanielKiedis/TallerMecanico/internal/workflow"
)

func New(log zerolog.Logger, db *pgxpool.Pool, cfg config.Config, notifier service.Notifier) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(200, time.Minute))
	r.Use(middleware.WithAuth(log, cfg))

	// Health
	r.Get("/healthz", handlers.Health())

	// Repos + services + handlers
	requestRepo := postgres.NewRequestRepo(db)
	userRepo := postgres.NewUserRepo(db)
	catalogRepo := postgres.NewCatalogRepo(db)

	intake := service.NewIntakeService(requestRepo, notifier, log)
	engine := workflow.NewEngine(requestRepo)
	auth := service.NewAuthService(userRepo, cfg.SessionSecret)

	rh := handlers.NewRequestHTTP(intake, requestRepo, engine)
	ah := handlers.NewAuthHTTP(auth)
	uh := handlers.NewUserHTTP(userRepo)
	ch := handlers.NewContentHTTP(catalogRepo)

	// Public site
	r.Get("/services", ch.Services())
	r.Get("/offers", ch.Offers())
	r.Get("/location", ch.Location())
	r.Get("/about", ch.About())
	r.Get("/info/mission-vision", ch.MissionVision())

	r.Post("/login", ah.Login())

	r.Route("/requests", func(r chi.Router) {
		r.Post("/appointments", rh.Create(models.VariantAppointment))
		r.Post("/tows", rh.Create(models.VariantTow))
	})

	// Back office
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireRoles(models.RoleAdmin))

		r.Route("/requests", func(r chi.Router) {
			r.Get("/appointments", rh.List(models.VariantAppointment))
			r.Get("/tows", rh.List(models.VariantTow))
			r.Put("/appointments/{id}", rh.UpdateStatus(models.VariantAppointment))
			r.Put("/tows/{id}", rh.UpdateStatus(models.VariantTow))
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", uh.List())
			r.Post("/", uh.Create())
			r.Put("/{id}", uh.Update())
			r.Delete("/{id}", uh.Delete())
		})
	})

	return r
}
