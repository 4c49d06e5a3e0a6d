package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mebel-store/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Categories      *usecase.CategoryStore
	Products        *usecase.ProductStore
	Shops           *usecase.ShopStore
	Slides          *usecase.SlideStore
	ContactInfo     *usecase.ContactInfoStore
	ContactMessages *usecase.ContactMessageStore
	Storage         StorageManager
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	categoryHandler := NewCategoryHandler(deps.Categories)
	productHandler := NewProductHandler(deps.Products)
	shopHandler := NewShopHandler(deps.Shops)
	slideHandler := NewSlideHandler(deps.Slides)
	contactHandler := NewContactHandler(deps.ContactInfo, deps.ContactMessages)

	// Tienda (público)
	api.Get("/categories", categoryHandler.ListActive)
	api.Get("/categories/:slug", categoryHandler.GetBySlug)
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.GetByID)
	api.Get("/shops", shopHandler.List)
	api.Get("/slides", slideHandler.ListActive)
	api.Get("/contact-info", contactHandler.GetInfo)
	api.Post("/contact-messages", contactHandler.Submit)

	// Administración: la autenticación la resuelve el gateway que está delante.
	admin := api.Group("/admin")

	categories := admin.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	products := admin.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	shops := admin.Group("/shops")
	shops.Get("/", shopHandler.List)
	shops.Post("/", shopHandler.Create)
	shops.Put("/:id", shopHandler.Update)
	shops.Delete("/:id", shopHandler.Delete)

	slides := admin.Group("/slides")
	slides.Get("/", slideHandler.List)
	slides.Post("/", slideHandler.Create)
	slides.Put("/:id", slideHandler.Update)
	slides.Delete("/:id", slideHandler.Delete)

	admin.Put("/contact-info", contactHandler.UpdateInfo)
	messages := admin.Group("/contact-messages")
	messages.Get("/", contactHandler.ListMessages)
	messages.Patch("/:id", contactHandler.MarkMessage)
	messages.Delete("/:id", contactHandler.DeleteMessage)

	if deps.Storage != nil {
		storageHandler := NewStorageHandler(deps.Storage)
		admin.Get("/storage", storageHandler.Get)
		admin.Put("/storage", storageHandler.Switch)
		admin.Post("/storage/reload", storageHandler.Reload)
		admin.Delete("/cache", storageHandler.ClearCache)
	}

	streamHandler := NewStreamHandler(deps)
	admin.Get("/stream/:kind", streamHandler.Stream)
}
