package router

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"controlemat/internal/api/admin"
	"controlemat/internal/api/fiberstock"
	"controlemat/internal/api/release"
	"controlemat/internal/domain"
	"controlemat/internal/pkg/cache"
	"controlemat/internal/pkg/logger"
	"controlemat/internal/pkg/middleware"

	// Registra a documentação gerada para o /swagger/doc.json
	_ "controlemat/docs"
)

// Handlers reúne os handlers já inicializados por injeção de dependências.
type Handlers struct {
	Release    *release.Handler
	FiberStock *fiberstock.Handler
	Admin      *admin.Handler
}

// RateLimit configura o middleware de limite de requisições.
// Client nil desativa o limite.
type RateLimit struct {
	Client      cache.Client
	MaxRequests int
	Period      time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(h Handlers, tokenSvc middleware.TokenService, rl RateLimit, log logger.Logger) http.Handler {
	// ServeMux do net/http com padrões "MÉTODO /caminho/{id}"
	mux := http.NewServeMux()

	// --- 1. Health Check ---
	mux.HandleFunc("GET /ping", PingHandler)

	// --- 2. Liberações de material ---
	mux.HandleFunc("GET /v1/releases", h.Release.ListReleasesHandler)
	mux.HandleFunc("POST /v1/releases", h.Release.CreateReleaseHandler)
	mux.HandleFunc("PUT /v1/releases/{id}", h.Release.UpdateReleaseHandler)
	mux.HandleFunc("DELETE /v1/releases/{id}", h.Release.DeleteReleaseHandler)

	// --- 3. Estoque de fibras ---
	mux.HandleFunc("GET /v1/fiber-stock", h.FiberStock.ListFiberStockHandler)
	mux.HandleFunc("POST /v1/fiber-stock", h.FiberStock.CreateFiberStockItemHandler)
	mux.HandleFunc("POST /v1/fiber-stock/import", h.FiberStock.ImportFiberStockHandler)
	mux.HandleFunc("PUT /v1/fiber-stock/{id}", h.FiberStock.UpdateFiberStockItemHandler)
	mux.HandleFunc("DELETE /v1/fiber-stock/{id}", h.FiberStock.DeleteFiberStockItemHandler)

	// --- 4. Área administrativa ---
	auth := middleware.NewAuthMiddleware(tokenSvc, log)
	adminOnly := middleware.PermissionMiddleware(log, domain.RoleAdmin)

	mux.HandleFunc("GET /v1/admin/lists", h.Admin.GetListsHandler)
	mux.HandleFunc("PUT /v1/admin/lists", auth(adminOnly(h.Admin.SaveListsHandler)))
	mux.HandleFunc("POST /v1/admin/login", h.Admin.LoginHandler)

	// --- 5. Documentação ---
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// --- 6. Middlewares globais ---
	var handler http.Handler = mux
	if rl.Client != nil {
		handler = middleware.RateLimiter(rl.Client, rl.MaxRequests, rl.Period, log)(handler)
	}
	return handler
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
