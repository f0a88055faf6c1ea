package router

import (
	"time"

	"github.com/nomanchughtai306/tuck-shop-manager/internal/config"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/handler"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/infra"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/middleware"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/rateboard"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/repository"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
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

	// ── Infrastructure ───────────────────────────────────────────────────────
	// Assign through a nil check so an unconfigured mailer stays a nil
	// interface, not a typed nil pointer.
	var mailer service.Mailer
	if m := infra.NewMailer(cfg); m != nil {
		mailer = m
	}
	rateStore := rateboard.NewStore(cfg.RatesFile)

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	loanRepo := repository.NewLoanRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg, mailer)
	productSvc := service.NewProductService(productRepo, saleRepo)
	saleSvc := service.NewSaleService(saleRepo, productRepo)
	loanSvc := service.NewLoanService(loanRepo)
	adminSvc := service.NewAdminService(userRepo, productRepo, saleRepo, loanRepo, cfg)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductHandler(productSvc, saleSvc)
	loansH := handler.NewLoanHandler(loanSvc, cfg)
	ratesH := handler.NewRateHandler(rateStore)
	adminH := handler.NewAdminHandler(adminSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}
	r.POST("/v1/admin/login", middleware.LoginRateLimiter(), adminH.Login)

	// Shop owner routes — every query inside is filtered by the token's user id
	v1 := r.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))
	{
		v1.GET("/dashboard", productsH.Dashboard)

		v1.GET("/products", productsH.List)
		v1.POST("/products", productsH.Create)
		v1.POST("/products/:id/sales", productsH.RegisterSale)
		v1.DELETE("/products/:id", productsH.Delete)

		v1.GET("/loans", loansH.List)
		v1.POST("/loans", loansH.Create)
		v1.PATCH("/loans/:id/paid", loansH.MarkPaid)
		v1.DELETE("/loans/:id", loansH.Delete)
		v1.GET("/loans/:id/whatsapp", loansH.WhatsApp)
		v1.GET("/loans/:id/receipt.pdf", loansH.Receipt)

		v1.GET("/rates", ratesH.List)
		v1.POST("/rates", ratesH.Create)
		v1.DELETE("/rates/:index", ratesH.Delete)
	}

	// Master console — fixed credential pair, separate token scope
	admin := r.Group("/v1/admin", middleware.AdminAuth(cfg.JWTSecret))
	{
		admin.GET("/dashboard", adminH.Stats)
		admin.GET("/users", adminH.ListUsers)
		admin.GET("/users/:id", adminH.UserDetail)
		admin.PATCH("/users/:id/toggle", adminH.ToggleActive)
		admin.DELETE("/users/:id", adminH.DeleteUser)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
