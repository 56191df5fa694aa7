package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/entity"
	"backend/middlewares"
	"backend/pkg/authz"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(catalogRepo)
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo)
	groupSvc := services.NewGroupService(userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catCtrl := controllers.NewCategoryController(catalogSvc)
	menuCtrl := controllers.NewMenuItemController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	managerGroupCtrl := controllers.NewGroupController(groupSvc, entity.GroupManager)
	crewGroupCtrl := controllers.NewGroupController(groupSvc, entity.GroupDeliveryCrew)

	auth := middlewares.Auth(db, cfg.JWTSecret)
	managerOnly := middlewares.Auth(db, cfg.JWTSecret, authz.RoleManager)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth, authCtrl.Me)
	}

	// Catalog reads: public or authenticated, per deployment policy
	catalogRead := r.Group("/")
	if !cfg.PublicCatalog {
		catalogRead.Use(auth)
	}
	{
		catalogRead.GET("/menu-categories", catCtrl.List)
		catalogRead.GET("/menu-items", menuCtrl.List)
		catalogRead.GET("/menu-items/:id", menuCtrl.Detail)
	}

	// Catalog writes: manager/admin only
	catalogWrite := r.Group("/", managerOnly)
	{
		catalogWrite.POST("/menu-categories", catCtrl.Create)
		catalogWrite.DELETE("/menu-categories/:id", catCtrl.Delete)
		catalogWrite.POST("/menu-items", menuCtrl.Create)
		catalogWrite.PUT("/menu-items/:id", menuCtrl.Update)
		catalogWrite.PATCH("/menu-items/:id", menuCtrl.Update)
		catalogWrite.DELETE("/menu-items/:id", menuCtrl.Delete)
	}

	// Cart: authenticated, always self-scoped
	cart := r.Group("/cart", auth)
	{
		cart.GET("/menu-items", cartCtrl.List)
		cart.POST("/menu-items", cartCtrl.Add)
		cart.DELETE("/menu-items", cartCtrl.Clear)
		cart.DELETE("/menu-items/:id", cartCtrl.RemoveLine)
	}

	// Orders: authenticated, role-scoped inside the service
	orders := r.Group("/orders", auth)
	{
		orders.GET("", orderCtrl.List)
		orders.POST("", orderCtrl.Place)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PATCH("/:id", orderCtrl.Patch)
		orders.PUT("/:id", orderCtrl.Update)
		orders.DELETE("/:id", orderCtrl.Delete)
	}

	// Role directory: manager/admin only
	groups := r.Group("/groups", managerOnly)
	{
		groups.GET("/manager/users", managerGroupCtrl.List)
		groups.POST("/manager/users", managerGroupCtrl.Add)
		groups.DELETE("/manager/users/:id", managerGroupCtrl.Remove)

		groups.GET("/delivery-crew/users", crewGroupCtrl.List)
		groups.POST("/delivery-crew/users", crewGroupCtrl.Add)
		groups.DELETE("/delivery-crew/users/:id", crewGroupCtrl.Remove)
	}
}
