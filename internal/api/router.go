package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"cafes-backend/config"
	"cafes-backend/internal/logger"
	"cafes-backend/internal/model"
	"cafes-backend/internal/mw"
	"cafes-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.Middleware(), mw.CORS())

	// Rate limit per client IP; a zero rate disables it.
	if cfg.Server.RateLimitPerSec > 0 {
		limiter := mw.NewIPRateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst, 10*time.Minute)
		r.Use(mw.RateLimiter(limiter))
	}

	timeout := cfg.Database.QueryTimeout
	handler := NewHandler(s, timeout)

	r.GET("/", Welcome)
	r.GET("/healthz", handler.Health)

	clients := newResourceHandlers[model.Client, model.ClientInput](s.Clients(), "client", timeout)
	suppliers := newResourceHandlers[model.Supplier, model.SupplierInput](s.Suppliers(), "supplier", timeout)
	supplies := newResourceHandlers[model.Supply, model.SupplyInput](s.Supplies(), "supply", timeout)
	machines := newResourceHandlers[model.Machine, model.MachineInput](s.Machines(), "machine", timeout)
	technicians := newResourceHandlers[model.Technician, model.TechnicianInput](s.Technicians(), "technician", timeout)
	maintenances := newResourceHandlers[model.Maintenance, model.MaintenanceInput](s.Maintenances(), "maintenance", timeout)
	consumptions := newResourceHandlers[model.Consumption, model.ConsumptionInput](s.Consumptions(), "consumption", timeout)
	users := newResourceHandlers[model.User, model.UserInput](s.Users().Resource, "user", timeout)

	api := r.Group("/api")
	{
		g := api.Group("/clients")
		g.GET("", clients.list)
		g.GET("/:id", clients.get)
		g.POST("", clients.create)
		g.PUT("/:id", clients.replace)
		g.DELETE("/:id", clients.remove)

		g = api.Group("/suppliers")
		g.GET("", suppliers.list)
		g.GET("/:id", suppliers.get)
		g.POST("", suppliers.create)
		g.PUT("/:id", suppliers.replace)
		g.DELETE("/:id", suppliers.remove)

		g = api.Group("/supplies")
		g.GET("", supplies.list)
		g.GET("/supplier/:id", supplies.listBy(model.ColumnSupplierID))
		g.GET("/:id", supplies.get)
		g.POST("", supplies.create)
		g.PUT("/:id", supplies.replace)
		g.DELETE("/:id", supplies.remove)

		g = api.Group("/machines")
		g.GET("", machines.list)
		g.GET("/client/:id", machines.listBy(model.ColumnClientID))
		g.GET("/:id", machines.get)
		g.POST("", machines.create)
		g.PUT("/:id", machines.replace)
		g.DELETE("/:id", machines.remove)

		g = api.Group("/technicians")
		g.GET("", technicians.list)
		g.GET("/client/:id", technicians.listBy(model.ColumnClientID))
		g.GET("/:id", technicians.get)
		g.POST("", technicians.create)
		g.PUT("/:id", technicians.replace)
		g.DELETE("/:id", technicians.remove)

		g = api.Group("/maintenances")
		g.GET("", maintenances.list)
		g.GET("/machine/:id", maintenances.listBy(model.ColumnMachineID))
		g.GET("/technician/:id", maintenances.listBy(model.ColumnTechnicianID))
		g.GET("/:id", maintenances.get)
		g.POST("", maintenances.create)
		g.PUT("/:id", maintenances.replace)
		g.DELETE("/:id", maintenances.remove)

		// Consumption updates are partial: PUT and PATCH behave the same.
		g = api.Group("/consumptions")
		g.GET("", consumptions.list)
		g.GET("/machine/:id", consumptions.listBy(model.ColumnMachineID))
		g.GET("/:id", consumptions.get)
		g.POST("", consumptions.create)
		g.PUT("/:id", handler.PatchConsumption)
		g.PATCH("/:id", handler.PatchConsumption)
		g.DELETE("/:id", consumptions.remove)

		g = api.Group("/users")
		g.POST("/register", handler.Register)
		g.POST("/login", handler.Login)
		g.GET("", users.list)
		g.GET("/:id", users.get)
		g.PUT("/:id", users.replace)
		g.DELETE("/:id", users.remove)
	}

	return r
}
