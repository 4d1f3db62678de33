package router

import (
	"time"

	"comanda/internal/config"
	"comanda/internal/handler"
	"comanda/internal/middleware"
	"comanda/internal/repository"
	"comanda/internal/service"
	"comanda/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine plus the
// reservation service, which main also hands to the sweep cron.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis/MemStore
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, store *repository.MemStore, dispatcher *worker.Dispatcher) (*gin.Engine, service.ReservaService) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	// Ledger and reservation book live in the shared MemStore; the catalog
	// lives in Postgres.
	caixaRepo := repository.NewCaixaRepository(store)
	reservaRepo := repository.NewReservaRepository(store)
	mesaRepo := repository.NewMesaRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	clienteRepo := repository.NewClienteRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	caixaSvc := service.NewCaixaService(caixaRepo, dispatcher, cfg.ResumoEmail)
	reservaSvc := service.NewReservaService(reservaRepo, mesaRepo)
	mesaSvc := service.NewMesaService(mesaRepo)
	pedidoSvc := service.NewPedidoService(pedidoRepo, produtoRepo, mesaRepo, caixaSvc, dispatcher)
	produtoSvc := service.NewProdutoService(produtoRepo, categoriaRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	clienteSvc := service.NewClienteService(clienteRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	caixaH := handler.NewCaixaHandler(caixaSvc)
	reservasH := handler.NewReservaHandler(reservaSvc)
	mesasH := handler.NewMesaHandler(mesaSvc)
	pedidosH := handler.NewPedidoHandler(pedidoSvc)
	produtosH := handler.NewProdutoHandler(produtoSvc)
	categoriasH := handler.NewCategoriaHandler(categoriaSvc)
	clientesH := handler.NewClienteHandler(clienteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		caixa := v1.Group("/caixa")
		{
			caixa.POST("/abrir", caixaH.Abrir)
			caixa.GET("/aberto", caixaH.Aberto)
			caixa.GET("/resumo", caixaH.ResumoPeriodo)
			caixa.GET("", caixaH.ListarCaixas)
			caixa.POST("/:id/fechar", caixaH.Fechar)
			caixa.GET("/:id/relatorio", caixaH.Relatorio)
			caixa.POST("/transacoes", caixaH.RegistrarTransacao)
			caixa.GET("/transacoes", caixaH.ListarTransacoes)
			caixa.PATCH("/transacoes/:id", caixaH.AtualizarTransacao)
			caixa.DELETE("/transacoes/:id", caixaH.RemoverTransacao)
		}

		reservas := v1.Group("/reservas")
		{
			reservas.POST("", reservasH.Criar)
			reservas.GET("", reservasH.Listar)
			reservas.POST("/varrer", reservasH.Varrer)
			reservas.GET("/:id", reservasH.ObterPorID)
			reservas.PATCH("/:id", reservasH.Atualizar)
			reservas.POST("/:id/cancelar", reservasH.Cancelar)
		}

		mesas := v1.Group("/mesas")
		{
			mesas.POST("", mesasH.Criar)
			mesas.GET("", mesasH.Listar)
			mesas.POST("/unir", mesasH.Unir)
			mesas.GET("/:id", mesasH.ObterPorID)
			mesas.PUT("/:id", mesasH.Atualizar)
			mesas.PATCH("/:id/status", mesasH.AtualizarStatus)
			mesas.POST("/:id/separar", mesasH.Separar)
		}

		pedidos := v1.Group("/pedidos")
		{
			pedidos.POST("", pedidosH.Criar)
			pedidos.GET("", pedidosH.Listar)
			pedidos.GET("/:id", pedidosH.ObterPorID)
			pedidos.POST("/:id/fechar", pedidosH.Fechar)
			pedidos.POST("/:id/cancelar", pedidosH.Cancelar)
		}

		produtos := v1.Group("/produtos")
		{
			produtos.POST("", produtosH.Criar)
			produtos.GET("", produtosH.Listar)
			produtos.GET("/:id", produtosH.ObterPorID)
			produtos.PUT("/:id", produtosH.Atualizar)
		}

		categorias := v1.Group("/categorias")
		{
			categorias.POST("", categoriasH.Criar)
			categorias.GET("", categoriasH.Listar)
			categorias.PUT("/:id", categoriasH.Atualizar)
		}

		clientes := v1.Group("/clientes")
		{
			clientes.POST("", clientesH.Criar)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.ObterPorID)
			clientes.PUT("/:id", clientesH.Atualizar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, reservaSvc
}
