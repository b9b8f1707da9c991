package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockflow-api/internal/application/auth"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/storage"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	CategoryUC     *usecase.CategoryUseCase
	StockUC        *usecase.StockUseCase
	SaleUC         *usecase.SaleUseCase
	MovementUC     *usecase.MovementUseCase
	NotificationUC *usecase.NotificationUseCase
	AnalyticsUC    *usecase.AnalyticsUseCase
	SaleRepo       repository.SaleRepository
	StockRepo      repository.StockRepository
	Receipts       *pdf.ReceiptGenerator
	Store          *storage.LocalStore
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público; change-password queda detrás del middleware)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/change-password", authHandler.ChangePassword)

	// Users (protegido; List y Delete solo admin)
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users")
	users.Get("/", RequireRole(entity.RoleAdmin), userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Delete("/:id", RequireRole(entity.RoleAdmin), userHandler.Delete)

	// Categories (protegido)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := protected.Group("/categories")
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Delete("/:id", categoryHandler.Delete)

	// Stocks (protegido)
	stockHandler := NewStockHandler(deps.StockUC, deps.AnalyticsUC, deps.Store)
	stocks := protected.Group("/stocks")
	stocks.Post("/", stockHandler.Create)
	stocks.Get("/", stockHandler.List)
	stocks.Get("/total/total-stock", stockHandler.TotalValue)
	stocks.Get("/image/:filename", stockHandler.Image)
	stocks.Get("/:id", stockHandler.GetByID)
	stocks.Patch("/:id", stockHandler.Update)
	stocks.Delete("/:id", stockHandler.Delete)

	// Sales + analíticas de ventas (protegido). Las rutas fijas van antes
	// que /:id para que Fiber no las capture como parámetro.
	saleHandler := NewSaleHandler(deps.SaleUC, deps.SaleRepo, deps.StockRepo, deps.Receipts, deps.Store)
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	sales := protected.Group("/sales")
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/customer/:fullName", saleHandler.FindByFullName)
	sales.Get("/date/:date", saleHandler.FindByDate)
	sales.Get("/credit/all", saleHandler.ListCredit)
	sales.Get("/receipt/:filename", saleHandler.Receipt)
	sales.Get("/analytics/total", analyticsHandler.TotalSum)
	sales.Get("/analytics/total/:window", analyticsHandler.TotalForWindow)
	sales.Get("/analytics/returns/:reason", analyticsHandler.TotalByReturnReason)
	sales.Get("/analytics/count", analyticsHandler.CountSalesAndCredit)
	sales.Get("/analytics/credit/future", analyticsHandler.CountFutureCreditDue)
	sales.Get("/analytics/credit/past", analyticsHandler.CountPastCreditDue)
	sales.Get("/analytics/top/:window", analyticsHandler.TopProducts)
	sales.Get("/:id/receipt-pdf", saleHandler.ReceiptPDF)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Patch("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)

	// Movements (protegido)
	movementHandler := NewMovementHandler(deps.MovementUC, deps.AnalyticsUC)
	movements := protected.Group("/movements")
	movements.Post("/", movementHandler.Create)
	movements.Get("/", movementHandler.List)
	movements.Get("/produced/:window", movementHandler.ProducedAdjustments)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Delete("/:id", movementHandler.Delete)

	// Notifications (protegido)
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications := protected.Group("/notifications")
	notifications.Post("/", notificationHandler.Create)
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/check-credit-due", notificationHandler.CheckCreditDue)
	notifications.Get("/:id", notificationHandler.GetByID)
	notifications.Patch("/:id/read", notificationHandler.MarkAsRead)
	notifications.Delete("/:id", notificationHandler.Delete)
}
