package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"go-pos-backend/internal/cache"
	"go-pos-backend/internal/handler"
	"go-pos-backend/internal/middleware"
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/service"
	"go-pos-backend/internal/ws"
	"go-pos-backend/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.Branch{}, &model.UserBranch{},
		&model.Category{}, &model.Product{}, &model.ProductVariant{},
		&model.ProductStock{}, &model.StockMovement{}, &model.ProductBatch{},
		&model.Customer{},
		&model.Order{}, &model.OrderItem{}, &model.Payment{},
		&model.User{}, &model.Permission{}, &model.Role{},
	)

	// 3. Seed default permissions, roles, and admin user
	seedPermissionsRolesAndAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Report cache (falls back to no-op when Redis isn't configured)
	reportCache := newReportCache()

	// 6. Dependency Injection (Wiring Layers)
	uow := repository.NewUnitOfWork(db)
	orderRepo := repository.NewOrderRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	stockRepo := repository.NewProductStockRepo(db)
	movementRepo := repository.NewStockMovementRepo(db)
	batchRepo := repository.NewProductBatchRepo(db)
	productRepo := repository.NewProductRepo(db)
	variantRepo := repository.NewVariantRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	branchRepo := repository.NewBranchRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	userRepo := repository.NewUserRepo(db)
	permissionRepo := repository.NewPermissionRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	reportRepo := repository.NewReportRepo(db)

	orderService := service.NewOrderService(uow, orderRepo, productRepo, variantRepo, customerRepo, stockRepo)
	paymentService := service.NewPaymentService(uow, orderRepo, paymentRepo, wsHub)
	stockService := service.NewStockService(uow, stockRepo, movementRepo, batchRepo, productRepo, variantRepo)
	catalogService := service.NewCatalogService(categoryRepo, productRepo, variantRepo)
	branchService := service.NewBranchService(branchRepo, userRepo)
	customerService := service.NewCustomerService(customerRepo)
	authService := service.NewAuthService(userRepo, wsHub)
	userService := service.NewUserService(userRepo, permissionRepo, roleRepo)
	reportService := service.NewReportService(reportRepo, paymentRepo, orderRepo, reportCache)

	orderHandler := handler.NewOrderHandler(orderService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	stockHandler := handler.NewStockHandler(stockService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	branchHandler := handler.NewBranchHandler(branchService)
	customerHandler := handler.NewCustomerHandler(customerService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	reportHandler := handler.NewReportHandler(reportService)

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "POS Backend v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 8. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Get("/me", authHandler.ValidateToken)
	auth.Post("/heartbeat", middleware.RequireAuth(userRepo), authHandler.Heartbeat)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Branches
	protected.Get("/branches", middleware.RequirePermission("branch:view"), branchHandler.GetBranches)
	protected.Get("/branches/mine", branchHandler.GetMyBranches)
	protected.Get("/branches/:id", middleware.RequirePermission("branch:view"), branchHandler.GetBranch)
	protected.Post("/branches", middleware.RequirePermission("branch:create"), branchHandler.CreateBranch)
	protected.Put("/branches/:id", middleware.RequirePermission("branch:update"), branchHandler.UpdateBranch)
	protected.Delete("/branches/:id", middleware.RequirePermission("branch:delete"), branchHandler.DeleteBranch)
	protected.Post("/branches/:id/users", middleware.RequirePermission("branch:update"), branchHandler.AssignUser)
	protected.Delete("/branches/:id/users/:userId", middleware.RequirePermission("branch:update"), branchHandler.UnassignUser)

	// Catalog
	protected.Get("/categories", middleware.RequirePermission("category:view"), catalogHandler.GetCategories)
	protected.Post("/categories", middleware.RequirePermission("category:create"), catalogHandler.CreateCategory)
	protected.Put("/categories/:id", middleware.RequirePermission("category:update"), catalogHandler.UpdateCategory)
	protected.Delete("/categories/:id", middleware.RequirePermission("category:delete"), catalogHandler.DeleteCategory)

	protected.Get("/products", middleware.RequirePermission("product:view"), catalogHandler.GetProducts)
	protected.Get("/products/:id", middleware.RequirePermission("product:view"), catalogHandler.GetProduct)
	protected.Post("/products", middleware.RequirePermission("product:create"), catalogHandler.CreateProduct)
	protected.Put("/products/:id", middleware.RequirePermission("product:update"), catalogHandler.UpdateProduct)
	protected.Delete("/products/:id", middleware.RequirePermission("product:delete"), catalogHandler.DeleteProduct)
	protected.Post("/products/:id/variants", middleware.RequirePermission("product:update"), catalogHandler.CreateVariant)
	protected.Get("/variants/:id", middleware.RequirePermission("product:view"), catalogHandler.GetVariant)
	protected.Put("/variants/:id", middleware.RequirePermission("product:update"), catalogHandler.UpdateVariant)
	protected.Delete("/variants/:id", middleware.RequirePermission("product:delete"), catalogHandler.DeleteVariant)

	// Stocks, movements, batches
	protected.Get("/stocks", middleware.RequirePermission("stock:view"), stockHandler.GetStocks)
	protected.Get("/stocks/:id", middleware.RequirePermission("stock:view"), stockHandler.GetStock)
	protected.Post("/stocks", middleware.RequirePermission("stock:create"), stockHandler.CreateStock)
	protected.Put("/stocks/:id", middleware.RequirePermission("stock:update"), stockHandler.UpdateStock)
	protected.Delete("/stocks/:id", middleware.RequirePermission("stock:delete"), stockHandler.DeleteStock)

	protected.Post("/stock-movements", middleware.RequirePermission("movement:create"), stockHandler.CreateMovement)
	protected.Get("/stock-movements", middleware.RequirePermission("movement:view"), stockHandler.GetMovements)
	protected.Get("/stock-movements/:id", middleware.RequirePermission("movement:view"), stockHandler.GetMovement)

	protected.Get("/batches", middleware.RequirePermission("batch:view"), stockHandler.GetBatches)
	protected.Get("/batches/:id", middleware.RequirePermission("batch:view"), stockHandler.GetBatch)
	protected.Post("/batches", middleware.RequirePermission("batch:create"), stockHandler.CreateBatch)
	protected.Put("/batches/:id", middleware.RequirePermission("batch:update"), stockHandler.UpdateBatch)
	protected.Delete("/batches/:id", middleware.RequirePermission("batch:delete"), stockHandler.DeleteBatch)

	// Customers
	protected.Get("/customers", middleware.RequirePermission("customer:view"), customerHandler.GetCustomers)
	protected.Get("/customers/:id", middleware.RequirePermission("customer:view"), customerHandler.GetCustomer)
	protected.Post("/customers", middleware.RequirePermission("customer:create"), customerHandler.CreateCustomer)
	protected.Put("/customers/:id", middleware.RequirePermission("customer:update"), customerHandler.UpdateCustomer)
	protected.Delete("/customers/:id", middleware.RequirePermission("customer:delete"), customerHandler.DeleteCustomer)
	protected.Post("/customers/:id/loyalty", middleware.RequirePermission("customer:update"), customerHandler.AddLoyaltyPoints)

	// Orders
	protected.Get("/orders", middleware.RequirePermission("order:view"), orderHandler.GetOrders)
	protected.Get("/orders/:id", middleware.RequirePermission("order:view"), orderHandler.GetOrder)
	protected.Post("/orders", middleware.RequirePermission("order:create"), orderHandler.CreateOrder)
	protected.Put("/orders/:id/items/:itemId", middleware.RequirePermission("order:update"), orderHandler.UpdateItemQuantity)
	protected.Delete("/orders/:id/items/:itemId", middleware.RequirePermission("order:update"), orderHandler.RemoveItem)
	protected.Put("/orders/:id/customer", middleware.RequirePermission("order:update"), orderHandler.AssignCustomer)
	protected.Post("/orders/:id/cancel", middleware.RequirePermission("order:update"), orderHandler.CancelOrder)

	// Payments
	protected.Get("/payments", middleware.RequirePermission("payment:view"), paymentHandler.GetPayments)
	protected.Get("/payments/:id", middleware.RequirePermission("payment:view"), paymentHandler.GetPayment)
	protected.Post("/payments", middleware.RequirePermission("payment:create"), paymentHandler.CreatePayment)
	protected.Post("/payments/:id/verify", middleware.RequirePermission("payment:verify"), paymentHandler.VerifyPayment)

	// Reports
	protected.Get("/reports/sales", middleware.RequirePermission("report:view"), reportHandler.GetSalesReport)
	protected.Get("/reports/daily", middleware.RequirePermission("report:view"), reportHandler.GetDailySummary)

	// User Management
	protected.Get("/users", userHandler.GetAllUsers)
	protected.Get("/users/:id", userHandler.GetUserByID)
	protected.Post("/users", middleware.RequirePermission("user:create"), userHandler.CreateUser)
	protected.Put("/users/:id", middleware.RequirePermission("user:update"), userHandler.UpdateUser)
	protected.Delete("/users/:id", middleware.RequirePermission("user:delete"), userHandler.DeleteUser)
	protected.Put("/users/:id/permissions", middleware.RequirePermission("user:update_permission"), userHandler.UpdateUserPermissions)

	// Roles & permissions
	protected.Get("/roles", userHandler.GetRoles)
	protected.Put("/roles/:id/permissions", middleware.RequirePermission("user:update_permission"), userHandler.UpdateRolePermissions)
	protected.Get("/permissions", func(c *fiber.Ctx) error {
		permissions, err := permissionRepo.FindAll()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch permissions"})
		}
		return c.JSON(fiber.Map{"message": "Permissions retrieved", "datas": permissions})
	})

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

	// 9. Graceful Shutdown
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

	log.Println("Server exited")
}

func newReportCache() cache.Cache {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, report caching disabled")
		return cache.NewNoopCache()
	}
	db := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			db = parsed
		}
	}
	c, err := cache.NewRedisCache(addr, os.Getenv("REDIS_PASSWORD"), db)
	if err != nil {
		log.Printf("Warning: Redis unavailable (%v), report caching disabled", err)
		return cache.NewNoopCache()
	}
	log.Println("Redis report cache connected")
	return c
}

// seedPermissionsRolesAndAdmin creates default permissions, roles, and admin user if they don't exist
func seedPermissionsRolesAndAdmin(db *gorm.DB) {
	permissionRepo := repository.NewPermissionRepo(db)
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)

	// 1. Seed permissions first
	if err := permissionRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed permissions: %v", err)
	}

	// 2. Seed roles
	if err := roleRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed roles: %v", err)
	}

	// 3. Assign permissions to roles
	allPermissions, _ := permissionRepo.FindAll()

	// MASTER_ADMIN gets ALL permissions
	masterRole, err := roleRepo.FindByCode(model.RoleMasterAdmin)
	if err == nil && len(masterRole.Permissions) == 0 {
		db.Model(&masterRole).Association("Permissions").Replace(allPermissions)
		log.Println("MASTER_ADMIN role assigned all permissions")
	}

	// ADMIN gets everything except user management
	adminRole, err := roleRepo.FindByCode(model.RoleAdmin)
	if err == nil && len(adminRole.Permissions) == 0 {
		adminPermissions := []model.Permission{}
		for _, p := range allPermissions {
			if p.Code != "user:create" && p.Code != "user:update" && p.Code != "user:delete" && p.Code != "user:update_permission" {
				adminPermissions = append(adminPermissions, p)
			}
		}
		db.Model(&adminRole).Association("Permissions").Replace(adminPermissions)
		log.Println("ADMIN role assigned limited permissions")
	}

	// CASHIER gets the point-of-sale set
	cashierRole, err := roleRepo.FindByCode(model.RoleCashier)
	if err == nil && len(cashierRole.Permissions) == 0 {
		cashierPermissions, _ := permissionRepo.FindByCodes(model.CashierPermissionCodes)
		db.Model(&cashierRole).Association("Permissions").Replace(cashierPermissions)
		log.Println("CASHIER role assigned point-of-sale permissions")
	}

	// 4. Create default admin user with MASTER_ADMIN role
	_, err = userRepo.FindByEmail("admin@example.com")
	if err != nil {
		masterRole, _ := roleRepo.FindByCode(model.RoleMasterAdmin)

		admin := &model.User{
			Email:       "admin@example.com",
			FullName:    "Master Administrator",
			PhoneNumber: "",
			RoleID:      &masterRole.ID,
			IsActive:    true,
			Permissions: masterRole.Permissions,
		}
		admin.CreatedBy = "system"
		admin.UpdatedBy = "system"

		if err := admin.SetPassword("admin123"); err != nil {
			log.Printf("Warning: Failed to hash admin password: %v", err)
			return
		}

		if err := userRepo.Create(admin); err != nil {
			log.Printf("Warning: Failed to create admin user: %v", err)
		} else {
			log.Println("Admin user created: admin@example.com / admin123 (MASTER_ADMIN)")
		}
	}
}
