package route

import (
	"github.com/gofiber/fiber/v2"

	paymentController "pawmart_backend/internals/features/payment/controller"
	"pawmart_backend/internals/middlewares"
	authMw "pawmart_backend/internals/middlewares/auth"
)

// PaymentRoutes wires the checkout lifecycle. The terminal callbacks and
// the IPN endpoint are called by the gateway, never by the SPA, so they
// stay unauthenticated; initiation gets its own limiter because the
// handler blocks for the outbound gateway call.
func PaymentRoutes(api fiber.Router, ctrl *paymentController.PaymentController) {
	api.Post("/ssl", middlewares.PaymentRateLimiter(), ctrl.InitiateProductPayment)
	api.Post("/adopt", middlewares.PaymentRateLimiter(), ctrl.InitiateAdoptPayment)
	api.Post("/booking", middlewares.PaymentRateLimiter(), ctrl.InitiateBookingPayment)

	api.Post("/create-payment-intent", middlewares.PaymentRateLimiter(), ctrl.CreatePaymentIntent)

	// gateway callbacks
	api.Post("/success", ctrl.PaymentSuccess)
	api.Post("/fail", ctrl.PaymentFail)
	api.Post("/cancel", ctrl.PaymentCancel)
	api.Post("/ipn", ctrl.PaymentIPN)

	// anyone holding the tran_id may poll; contact fields stay redacted
	// unless the caller authenticates as the owner or an admin
	api.Get("/status/:tran_id", authMw.AuthMiddleware(authMw.Options{Optional: true}), ctrl.PaymentStatus)
}

// PaymentAdminRoutes: operator-only listings, mounted under /api/a where
// the group already enforces the admin role.
func PaymentAdminRoutes(api fiber.Router, ctrl *paymentController.PaymentController) {
	api.Get("/reconcile", ctrl.ListReconcileRequired)
}
