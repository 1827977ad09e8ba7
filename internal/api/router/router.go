package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "bloghub/docs" // registra a especificação Swagger gerada
	"bloghub/internal/api/author"
	"bloghub/internal/api/category"
	"bloghub/internal/api/user"
	"bloghub/internal/pkg/cache"
	"bloghub/internal/pkg/logger"
	"bloghub/internal/pkg/middleware"
)

// Options reúne as dependências do roteador.
type Options struct {
	Authors    *author.Handler
	Categories *category.Handler
	Users      *user.Handler

	Gate          middleware.Authorizer
	SessionCookie string
	AllowOrigins  []string

	// RateLimiter é opcional; nil desabilita o limite.
	RateLimiter *RateLimit

	Logger logger.Logger
}

// RateLimit configura o limite por IP.
type RateLimit struct {
	Client      cache.Client
	MaxRequests int
	Period      time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
// Ordem: CORS, rate limit e, nas rotas de recursos, o gate de autorização.
func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(opts.AllowOrigins))
	if rl := opts.RateLimiter; rl != nil {
		r.Use(middleware.RateLimiter(rl.Client, rl.MaxRequests, rl.Period, opts.Logger))
	}

	r.Get("/ping", PingHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		// Sessões são abertas e fechadas aqui, portanto fora do gate.
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", opts.Users.Register)
			r.Post("/login", opts.Users.Login)
			r.Post("/logout", opts.Users.Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.NewAuthMiddleware(opts.Gate, opts.SessionCookie, opts.Logger))

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", opts.Categories.List)
				r.Post("/", opts.Categories.Create)
				r.Get("/{id}", opts.Categories.Get)
				r.Put("/{id}", opts.Categories.Update)
				r.Patch("/{id}", opts.Categories.Update)
				r.Delete("/{id}", opts.Categories.Delete)
			})

			r.Route("/authors", func(r chi.Router) {
				r.Get("/", opts.Authors.List)
				r.Post("/", opts.Authors.Create)
				r.Get("/{id}", opts.Authors.Get)
				r.Put("/{id}", opts.Authors.Update)
				r.Patch("/{id}", opts.Authors.Update)
				r.Delete("/{id}", opts.Authors.Delete)
			})
		})
	})

	return r
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
