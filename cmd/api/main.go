package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-bakery-backend/internal/handler"
	"go-bakery-backend/internal/middleware"
	"go-bakery-backend/internal/model"
	"go-bakery-backend/internal/repository"
	"go-bakery-backend/internal/service"
	"go-bakery-backend/internal/ws"
	"go-bakery-backend/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Open the database file; Open migrates the schema and refuses to
	// continue on a partial migration.
	dbPath := os.Getenv("BAKERY_DB_PATH")
	if dbPath == "" {
		dbPath = "bakery.db"
	}
	store, err := database.Open(dbPath)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	db := store.DB()

	// 3. Seed default admin login
	userRepo := repository.NewUserRepo(db)
	authService := service.NewAuthService(userRepo)
	seedAdmin(authService, userRepo)

	// 4. WebSocket hub for stock and expiry events
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	stockRepo := repository.NewStockRepo(db)
	employeeRepo := repository.NewEmployeeRepo(db)
	vehicleRepo := repository.NewVehicleRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	financeRepo := repository.NewFinanceRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)

	stockService := service.NewStockService(stockRepo, db, wsHub)
	vehicleService := service.NewVehicleService(vehicleRepo, employeeRepo, db)
	orderService := service.NewOrderService(orderRepo, employeeRepo, vehicleRepo)
	financeService := service.NewFinanceService(financeRepo)
	reportService := service.NewReportService(financeRepo, orderRepo, employeeRepo, vehicleRepo, supplierRepo)

	stockHandler := handler.NewStockHandler(stockService)
	employeeHandler := handler.NewEmployeeHandler(employeeRepo)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	orderHandler := handler.NewOrderHandler(orderService)
	financeHandler := handler.NewFinanceHandler(financeService)
	supplierHandler := handler.NewSupplierHandler(supplierRepo)
	reportHandler := handler.NewReportHandler(reportService)
	authHandler := handler.NewAuthHandler(authService)
	exportHandler := handler.NewExportHandler(store)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Bakery Manager v1.0",
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// 7. Routes
	api := app.Group("/api/v1")

	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("", middleware.RequireAuth())

	// Stock
	protected.Get("/stock/items", stockHandler.GetItems)
	protected.Post("/stock/items", stockHandler.CreateItem)
	protected.Get("/stock/items/:id", stockHandler.GetItem)
	protected.Put("/stock/items/:id", stockHandler.UpdateItem)
	protected.Delete("/stock/items/:id", stockHandler.DeleteItem)
	protected.Get("/stock/movements", stockHandler.GetMovements)
	protected.Post("/stock/movements", stockHandler.RecordMovement)

	// Employees, credits, documents, licenses
	protected.Get("/employees", employeeHandler.GetAll)
	protected.Post("/employees", employeeHandler.Create)
	protected.Get("/employees/:id", employeeHandler.Get)
	protected.Put("/employees/:id", employeeHandler.Update)
	protected.Delete("/employees/:id", employeeHandler.Delete)
	protected.Get("/employees/:id/credits", employeeHandler.GetCredits)
	protected.Post("/employees/:id/credits", employeeHandler.CreateCredit)
	protected.Get("/employees/:id/documents", employeeHandler.GetDocuments)
	protected.Post("/employees/:id/documents", employeeHandler.CreateDocument)
	protected.Delete("/documents/:id", employeeHandler.DeleteDocument)
	protected.Get("/employees/:id/licenses", employeeHandler.GetLicenses)
	protected.Post("/employees/:id/licenses", employeeHandler.CreateLicense)
	protected.Put("/licenses/:id", employeeHandler.UpdateLicense)
	protected.Delete("/licenses/:id", employeeHandler.DeleteLicense)

	// Vehicles, km and service history
	protected.Get("/vehicles", vehicleHandler.GetAll)
	protected.Post("/vehicles", vehicleHandler.Create)
	protected.Get("/vehicles/:id", vehicleHandler.Get)
	protected.Put("/vehicles/:id", vehicleHandler.Update)
	protected.Delete("/vehicles/:id", vehicleHandler.Delete)
	protected.Put("/vehicles/:id/driver", vehicleHandler.AssignDriver)
	protected.Get("/vehicles/:id/km", vehicleHandler.GetKmRecords)
	protected.Post("/vehicles/:id/km", vehicleHandler.RecordKm)
	protected.Get("/vehicles/:id/services", vehicleHandler.GetServiceRecords)
	protected.Post("/vehicles/:id/services", vehicleHandler.RecordService)

	// Production orders
	protected.Get("/orders", orderHandler.GetAll)
	protected.Post("/orders", orderHandler.Create)
	protected.Get("/orders/:id", orderHandler.Get)
	protected.Delete("/orders/:id", orderHandler.Delete)

	// Finance
	protected.Get("/income", financeHandler.GetIncome)
	protected.Post("/income", financeHandler.CreateIncome)
	protected.Delete("/income/:id", financeHandler.DeleteIncome)
	protected.Get("/expenses", financeHandler.GetExpenses)
	protected.Post("/expenses", financeHandler.CreateExpense)
	protected.Delete("/expenses/:id", financeHandler.DeleteExpense)

	// Suppliers
	protected.Get("/suppliers", supplierHandler.GetAll)
	protected.Post("/suppliers", supplierHandler.Create)
	protected.Get("/suppliers/:id", supplierHandler.Get)
	protected.Put("/suppliers/:id", supplierHandler.Update)
	protected.Delete("/suppliers/:id", supplierHandler.Delete)
	protected.Get("/suppliers/:id/account", supplierHandler.GetAccount)
	protected.Post("/suppliers/:id/invoices", supplierHandler.CreateInvoice)
	protected.Post("/suppliers/:id/payments", supplierHandler.CreatePayment)

	// Reports
	protected.Get("/reports/daily-summary", reportHandler.GetDailySummary)
	protected.Get("/reports/cash-breakdown", reportHandler.GetCashBreakdown)
	protected.Get("/reports/license-expiry", reportHandler.GetLicenseExpiry)
	protected.Get("/reports/disk-expiry", reportHandler.GetDiskExpiry)

	// Table export, admin only
	admin := protected.Group("", middleware.RequireRole(model.UserRoleAdmin))
	admin.Get("/export/tables", exportHandler.ListTables)
	admin.Get("/export/:table", exportHandler.DumpTable)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	if err := store.Close(); err != nil {
		log.Println("Warning: failed to close database:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin login on first boot.
func seedAdmin(authService service.AuthService, userRepo repository.UserRepository) {
	if _, err := userRepo.FindByUsername("admin"); err == nil {
		return
	}

	admin := &model.User{
		Username: "admin",
		FullName: "Administrator",
		Role:     model.UserRoleAdmin,
		IsActive: true,
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	if err := authService.CreateUser(admin, password); err != nil {
		log.Printf("Warning: failed to create admin user: %v", err)
		return
	}
	log.Println("Admin user created: admin (change the default password)")
}
