package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-api/internal/application/auth"
	apporder "github.com/tu-usuario/tienda-api/internal/application/order"
	"github.com/tu-usuario/tienda-api/internal/application/upload"
	"github.com/tu-usuario/tienda-api/internal/application/usecase"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	OrderUC    *apporder.OrderUseCase
	ReceiptUC  *apporder.ReceiptUseCase
	UploadUC   *upload.UploadUseCase
	Users      userResolver
	JWTSecret  string
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authRequired := AuthMiddleware(deps.JWTSecret, deps.Users)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Users: registro y login públicos, el resto protegido
	users := api.Group("/users")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	users.Post("/", authHandler.Register)
	users.Post("/login", authHandler.Login)
	users.Get("/", authRequired, adminOnly, userHandler.List)
	users.Get("/:id", authRequired, userHandler.GetByID)
	users.Patch("/:id", authRequired, userHandler.Update)
	users.Delete("/:id", authRequired, adminOnly, userHandler.Delete)

	// Products: lectura pública, escritura solo admin
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", authRequired, adminOnly, productHandler.Create)
	products.Put("/:id", authRequired, adminOnly, productHandler.Update)
	products.Delete("/:id", authRequired, adminOnly, productHandler.Delete)

	// Categories: lectura pública, escritura solo admin
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Log)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", authRequired, adminOnly, categoryHandler.Create)
	categories.Put("/:id", authRequired, adminOnly, categoryHandler.Update)
	categories.Delete("/:id", authRequired, adminOnly, categoryHandler.Delete)

	// Orders: todo protegido; estado y borrado solo admin
	orders := api.Group("/orders", authRequired)
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReceiptUC, deps.Log)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/receipt", orderHandler.DownloadReceipt)
	orders.Patch("/:id", orderHandler.Update)
	orders.Patch("/:id/status", adminOnly, orderHandler.UpdateStatus)
	orders.Delete("/:id", adminOnly, orderHandler.Delete)

	// Upload: protegido
	uploads := api.Group("/upload", authRequired)
	uploadHandler := NewUploadHandler(deps.UploadUC, deps.Log)
	uploads.Post("/single", uploadHandler.UploadSingle)
	uploads.Post("/multiple", uploadHandler.UploadMultiple)
	uploads.Get("/files", uploadHandler.List)
	uploads.Delete("/delete", uploadHandler.Delete)
}
