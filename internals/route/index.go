package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pawmart_backend/internals/configs"
	"pawmart_backend/internals/features/chat/relay"
	"pawmart_backend/internals/features/payment/gateway"
	paymentRoute "pawmart_backend/internals/features/payment/routes"
	paymentService "pawmart_backend/internals/features/payment/service"
	authMw "pawmart_backend/internals/middlewares/auth"

	paymentController "pawmart_backend/internals/features/payment/controller"
	routeDetails "pawmart_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthGroup(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.PublicGroup(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMw.AuthMiddleware())
	routeDetails.UserGroup(private, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Admins only", "admin"),
	)
	routeDetails.AdminGroup(admin, db)

	// ===================== PAYMENTS =====================
	log.Println("[INFO] Setting up PAYMENT routes...")
	svc := paymentService.NewPaymentService(db, gateway.SSLCz,
		paymentService.CallbackURLsFromBase(configs.PaymentCallbackBaseURL))
	payCtrl := paymentController.NewPaymentController(svc, gateway.Stripe)

	payments := app.Group("/api/payments")
	paymentRoute.PaymentRoutes(payments, payCtrl)

	// reconcile listing rides the admin group's auth
	paymentRoute.PaymentAdminRoutes(admin.Group("/payments"), payCtrl)

	// ===================== WEBSOCKET =====================
	log.Println("[INFO] Setting up WEBSOCKET routes...")
	hub := relay.NewHub()
	routeDetails.SocketGroup(app.Group("/ws"), hub)
}
