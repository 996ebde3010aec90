package httpserver

import (
	"time"

	"goshop/internal/config"
	"goshop/internal/middleware"
	"goshop/internal/order"
	"goshop/internal/product"
	"goshop/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	Config   *config.Config
	Products product.Service
	Users    user.Service
	Orders   order.Service
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogging())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{deps.Config.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := newHandler(deps)

	r.Static("/uploads", deps.Config.UploadDir)

	api := r.Group("/api")
	api.Use(middleware.RateLimit())
	{
		api.GET("/products", h.listProducts)
		api.POST("/register", h.register)
		api.POST("/login", h.login)

		api.POST("/checkout", middleware.RequireAuth(), h.checkout)

		my := api.Group("/my")
		my.Use(middleware.RequireAuth())
		{
			my.GET("/orders", h.myOrders)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth(), middleware.RequireAdmin())
		{
			admin.GET("/orders", h.allOrders)
			admin.PUT("/orders/:id", h.updateOrderStatus)
			admin.POST("/products", h.createProduct)
			admin.DELETE("/products/:id", h.deleteProduct)
		}
	}

	return r
}
