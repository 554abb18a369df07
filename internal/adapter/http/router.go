package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YelzhanWeb/restaurant/internal/adapter/logger"
	"github.com/YelzhanWeb/restaurant/internal/domain"
	"github.com/YelzhanWeb/restaurant/internal/interfaces"
)

type Services struct {
	Auth     interfaces.AuthService
	Orders   interfaces.OrderService
	Menu     interfaces.MenuService
	Customer interfaces.CustomerService
	Table    interfaces.TableService
	Report   interfaces.ReportService
}

// NewRouter wires every handler under /api. Reads on menu, tables and orders
// need a valid token; management writes additionally need manager or admin.
func NewRouter(svc Services, lgr logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(lgr))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := NewAuthHandler(svc.Auth)
	orderHandler := NewOrderHandler(svc.Orders)
	menuHandler := NewMenuHandler(svc.Menu)
	customerHandler := NewCustomerHandler(svc.Customer)
	tableHandler := NewTableHandler(svc.Table)
	reportHandler := NewReportHandler(svc.Report)

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/register", authHandler.Register)

		profile := authGroup.Group("", Authenticate(svc.Auth))
		profile.GET("/profile", authHandler.Profile)
		profile.PUT("/profile", authHandler.UpdateProfile)
		profile.PUT("/change-password", authHandler.ChangePassword)
	}

	menu := api.Group("/menu", Authenticate(svc.Auth))
	{
		menu.GET("/categories", menuHandler.ListCategories)
		menu.GET("/items", menuHandler.ListItems)
		menu.GET("/items/:id", menuHandler.GetItem)

		manage := menu.Group("", RequireRole(domain.RoleManager))
		manage.POST("/categories", menuHandler.CreateCategory)
		manage.PUT("/categories/:id", menuHandler.UpdateCategory)
		manage.DELETE("/categories/:id", menuHandler.DeleteCategory)
		manage.POST("/items", menuHandler.CreateItem)
		manage.PUT("/items/:id", menuHandler.UpdateItem)
		manage.DELETE("/items/:id", menuHandler.DeleteItem)
	}

	customers := api.Group("/customers", Authenticate(svc.Auth))
	{
		customers.GET("", customerHandler.List)
		customers.GET("/analytics/summary", customerHandler.AnalyticsSummary)
		customers.GET("/:id", customerHandler.Get)
		customers.POST("", customerHandler.Create)
		customers.PUT("/:id", customerHandler.Update)
		customers.DELETE("/:id", RequireRole(domain.RoleManager), customerHandler.Delete)
	}

	tables := api.Group("/tables", Authenticate(svc.Auth))
	{
		tables.GET("", tableHandler.List)
		tables.GET("/stats/summary", tableHandler.Stats)
		tables.GET("/:id", tableHandler.Get)
		tables.PUT("/:id/status", tableHandler.SetAvailability)

		manage := tables.Group("", RequireRole(domain.RoleManager))
		manage.POST("", tableHandler.Create)
		manage.PUT("/:id", tableHandler.Update)
		manage.DELETE("/:id", tableHandler.Delete)
	}

	orders := api.Group("/orders", Authenticate(svc.Auth))
	{
		orders.GET("", orderHandler.List)
		orders.GET("/stats/summary", orderHandler.DailySummary)
		orders.GET("/:id", orderHandler.Get)
		orders.POST("", orderHandler.Create)
		orders.PUT("/:id/status", orderHandler.UpdateStatus)
		orders.PUT("/:id/payment", orderHandler.UpdatePayment)
	}

	reports := api.Group("/reports", Authenticate(svc.Auth), RequireRole(domain.RoleManager))
	{
		reports.GET("/daily-sales", reportHandler.DailySales)
		reports.GET("/monthly-sales", reportHandler.MonthlySales)
		reports.GET("/popular-items", reportHandler.PopularItems)
		reports.GET("/payment-methods", reportHandler.PaymentMethods)
		reports.GET("/customer-analytics", reportHandler.CustomerAnalytics)
		reports.GET("/table-utilization", reportHandler.TableUtilization)
	}

	return router
}
