package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/juju/clock"

	// Nossos pacotes de infraestrutura e utilitários
	"controlemat/config"
	"controlemat/internal/domain"
	"controlemat/internal/pkg/cache"
	"controlemat/internal/pkg/database"
	"controlemat/internal/pkg/logger"
	"controlemat/internal/pkg/token"

	// Camadas para Injeção de Dependências
	"controlemat/internal/api/admin"
	"controlemat/internal/api/fiberstock"
	"controlemat/internal/api/release"
	"controlemat/internal/api/router"
	"controlemat/internal/repository/memrepo"
	"controlemat/internal/repository/sqlrepo"
	"controlemat/internal/service/authservice"
	"controlemat/internal/service/recordservice"
	"controlemat/internal/service/sequence"
)

func main() {
	// 1. Configuração e Inicialização
	log.Println("⚡ Inicializando serviço de controle de materiais...")
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	if err := godotenv.Load(); err != nil {
		// Em contêiner as variáveis vêm do ambiente do sistema.
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Erro de Configuração: %v", err)
	}
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Configurações carregadas.", map[string]interface{}{"backend": cfg.StorageBackend, "env": cfg.Environment})

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("Fuso horário inválido.", err)
	}

	// 2. Conexão com Recursos de Infraestrutura

	// A. Armazenamento
	store, db := openBackend(cfg, log)
	if db != nil {
		defer db.Close()
	}

	// B. Cache (Redis), opcional
	rl := router.RateLimit{MaxRequests: cfg.RateLimitMaxRequests, Period: cfg.RateLimitPeriod}
	if cfg.RedisAddr != "" {
		redisClient, err := cache.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			log.Warn("Redis indisponível; rate limiting desativado.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
		} else {
			defer redisClient.Close()
			rl.Client = redisClient
			log.Info("Conexão Redis estabelecida.", nil)
		}
	}

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Backend -> Alocador -> Service -> Handler

	allocator := sequence.NewAllocator(store, log)
	records := recordservice.NewService(store, allocator, clock.WallClock, loc, log)
	log.Debug("Serviço de registros inicializado.", nil)

	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry, clock.WallClock)
	authSvc := authservice.NewService(authservice.Credentials{
		Username:     cfg.AdminUser,
		PasswordHash: cfg.AdminPasswordHash,
	}, tokenSvc, log)
	if !authSvc.Enabled() {
		log.Warn("ADMIN_PASSWORD_HASH ausente; login administrativo desativado.", nil)
	}

	handlers := router.Handlers{
		Release:    release.NewHandler(records, log),
		FiberStock: fiberstock.NewHandler(records, log),
		Admin:      admin.NewHandler(records, authSvc, log),
	}

	// 4. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(handlers, tokenSvc, rl, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor ouvindo na porta", map[string]interface{}{"port": cfg.Port})
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

// openBackend abre o armazenamento escolhido em STORAGE_BACKEND.
// O *sql.DB retornado é nil para o backend em memória.
func openBackend(cfg *config.Config, log logger.Logger) (domain.Backend, *sql.DB) {
	switch cfg.StorageBackend {
	case config.BackendRemote:
		db, err := database.NewPostgresDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("Falha ao conectar ao PostgreSQL.", err)
		}
		log.Info("Conexão PostgreSQL estabelecida. Rode cmd/migrate antes da primeira subida.", nil)
		return sqlrepo.NewPostgresRepository(db, cfg.DBTimeout, log), db
	case config.BackendMemory:
		log.Warn("Backend em memória: os registros se perdem ao encerrar.", nil)
		return memrepo.NewRepository(), nil
	default:
		db, err := database.NewSQLiteDB(cfg.SQLitePath)
		if err != nil {
			log.Fatal("Falha ao abrir o SQLite.", err)
		}
		log.Info("Banco SQLite aberto e migrado.", map[string]interface{}{"path": cfg.SQLitePath})
		return sqlrepo.NewSQLiteRepository(db, cfg.DBTimeout, log), db
	}
}
