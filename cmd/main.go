package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"bloghub/config"
	"bloghub/internal/authz"
	"bloghub/internal/pkg/cache"
	"bloghub/internal/pkg/database"
	"bloghub/internal/pkg/logger"
	"bloghub/internal/pkg/session"

	// Camadas para Injeção de Dependências
	"bloghub/internal/api/author"
	"bloghub/internal/api/category"
	"bloghub/internal/api/router"
	"bloghub/internal/api/user"
	"bloghub/internal/repository/authorrepo"
	"bloghub/internal/repository/categoryrepo"
	"bloghub/internal/repository/userrepo"
	"bloghub/internal/service/authorservice"
	"bloghub/internal/service/categoryservice"
	"bloghub/internal/service/userservice"
)

// @title BlogHub API
// @version 1.0
// @description Administração de autores e categorias do blog.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name BLOGHUB_SESSION
func main() {
	log.Println("⚡ Inicializando serviço BlogHub...")
	// O godotenv.Load() procura por um arquivo chamado .env na raiz.
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuração inválida: %v", err)
	}
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment, "db_driver": cfg.DBDriver})

	// 1. Banco de Dados
	db, err := database.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	log.Info("Conexão com o banco estabelecida.", nil)

	// 2. Sessões (Redis ou memória). O Redis também alimenta o rate limiter.
	var (
		sessions    session.Store
		cacheClient cache.Client
	)
	switch cfg.SessionStore {
	case "redis":
		rc, err := cache.NewRedisClient(cache.RedisOptions{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err != nil {
			log.Fatal("Falha ao conectar ao Redis.", err)
		}
		defer rc.Close()
		cacheClient = rc
		sessions = session.NewRedisStore(rc, cfg.SessionTTL)
		log.Info("Conexão Redis estabelecida.", nil)
	default:
		sessions = session.NewMemoryStore(cfg.SessionTTL)
		log.Warn("Sessões em memória: não use com mais de uma instância.", nil)
	}

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler
	authorRepo := authorrepo.NewAuthorRepository(db, cfg.DBTimeout, log)
	categoryRepo := categoryrepo.NewCategoryRepository(db, cfg.DBTimeout, log)
	userRepo := userrepo.NewUserRepository(db, cfg.DBTimeout, log)

	authorSvc := authorservice.NewService(authorRepo, log)
	categorySvc := categoryservice.NewService(categoryRepo, log)
	userSvc := userservice.NewService(userRepo, sessions, log)

	gate := authz.NewGate(sessions, authz.DefaultRules(), log)

	opts := router.Options{
		Authors:    author.NewHandler(authorSvc, log),
		Categories: category.NewHandler(categorySvc, log),
		Users: user.NewHandler(userSvc, user.CookieOptions{
			Name:   cfg.SessionCookieName,
			Secure: cfg.CookieSecure,
			MaxAge: int(cfg.SessionTTL.Seconds()),
		}, log),
		Gate:          gate,
		SessionCookie: cfg.SessionCookieName,
		AllowOrigins:  cfg.CORSAllowedOrigins,
		Logger:        log,
	}
	if cfg.RateLimitEnabled && cacheClient != nil {
		opts.RateLimiter = &router.RateLimit{
			Client:      cacheClient,
			MaxRequests: cfg.RateLimitMaxRequests,
			Period:      cfg.RateLimitPeriod,
		}
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 4. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor BlogHub ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
