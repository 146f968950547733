package router

import (
	"shop-service/internal/handlers"
	"shop-service/internal/middleware"
	"shop-service/internal/service"
	"shop-service/internal/token"

	"github.com/gin-contrib/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

// Services собирает сервисный слой для маршрутизатора.
type Services struct {
	Catalog  *service.CatalogService
	Cart     *service.CartService
	Orders   *service.OrderService
	Address  *service.AddressService
	Coupons  *service.CouponService
	Wishlist *service.WishlistService
}

func Router(svcs Services, verifier *token.HSVerifier, sessionTTLSeconds int, log *zap.Logger) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	catalogH := handlers.NewCatalogHandler(svcs.Catalog, log)
	cartH := handlers.NewCartHandler(svcs.Cart, log)
	orderH := handlers.NewOrderHandler(svcs.Orders, log)
	addressH := handlers.NewAddressHandler(svcs.Address, log)
	couponH := handlers.NewCouponHandler(svcs.Coupons, log)
	wishlistH := handlers.NewWishlistHandler(svcs.Wishlist, log)

	v1 := r.Group("/api/v1")

	// витрина доступна без токена
	v1.GET("/categories", catalogH.ListRootCategories)
	v1.GET("/categories/:id/descendants", catalogH.Descendants)
	v1.GET("/categories/:id/products", catalogH.ListProductsByCategory)
	v1.GET("/products", catalogH.ListProducts)
	v1.GET("/products/:id", catalogH.GetProduct)

	auth := v1.Group("")
	auth.Use(middleware.AuthRequired(verifier, log), middleware.SessionCart(sessionTTLSeconds))

	auth.POST("/categories", catalogH.CreateCategory)
	auth.POST("/products", catalogH.CreateProduct)
	auth.DELETE("/products/:id", catalogH.DeleteProduct)
	auth.PUT("/products/:id/discount", catalogH.SetDiscount)
	auth.DELETE("/products/:id/discount", catalogH.RemoveDiscount)

	auth.GET("/cart", cartH.View)
	auth.GET("/cart/count", cartH.Count)
	auth.POST("/cart/items", cartH.Add)
	auth.PUT("/cart/items", cartH.Update)
	auth.DELETE("/cart/items/:productID", cartH.Remove)

	auth.POST("/orders/checkout", orderH.Checkout)
	auth.GET("/orders/active", orderH.ActiveOrder)
	auth.GET("/orders", orderH.List)
	auth.POST("/orders/confirm", orderH.Confirm)

	auth.POST("/addresses", addressH.Create)
	auth.GET("/addresses", addressH.List)
	auth.PUT("/addresses/:id/activate", addressH.Activate)
	auth.DELETE("/addresses/:id", addressH.Delete)

	auth.POST("/coupons", couponH.Create)
	auth.GET("/coupons", couponH.List)
	auth.GET("/coupons/check/:code", couponH.Check)

	auth.POST("/wishlist", wishlistH.Add)
	auth.GET("/wishlist", wishlistH.List)
	auth.DELETE("/wishlist/:productID", wishlistH.Remove)

	return r
}
