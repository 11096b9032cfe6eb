package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pawmart_backend/internals/configs"
	"pawmart_backend/internals/features/payment/dto"
	"pawmart_backend/internals/features/payment/gateway"
	"pawmart_backend/internals/features/payment/model"
	"pawmart_backend/internals/features/payment/service"
	helper "pawmart_backend/internals/helpers"
)

/*
	========================================================
	  Controller
========================================================
*/

type PaymentController struct {
	Service  *service.PaymentService
	Stripe   *gateway.StripeClient
	Validate *validator.Validate
}

func NewPaymentController(svc *service.PaymentService, stripe *gateway.StripeClient) *PaymentController {
	return &PaymentController{
		Service:  svc,
		Stripe:   stripe,
		Validate: validator.New(),
	}
}

/* ===================== Initiation ===================== */

// POST /api/payments/ssl
func (ctrl *PaymentController) InitiateProductPayment(c *fiber.Ctx) error {
	var body dto.InitiateProductPaymentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(ctrl.Validate); err != nil {
		return validationOut(c, err)
	}

	pay, sess, err := ctrl.Service.InitiateProduct(c.UserContext(), &body)
	return initiationOut(c, pay, sess, err)
}

// POST /api/payments/adopt
func (ctrl *PaymentController) InitiateAdoptPayment(c *fiber.Ctx) error {
	var body dto.InitiateAdoptPaymentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(ctrl.Validate); err != nil {
		return validationOut(c, err)
	}

	pay, sess, err := ctrl.Service.InitiateAdopt(c.UserContext(), &body)
	return initiationOut(c, pay, sess, err)
}

// POST /api/payments/booking
func (ctrl *PaymentController) InitiateBookingPayment(c *fiber.Ctx) error {
	var body dto.InitiateBookingPaymentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(ctrl.Validate); err != nil {
		return validationOut(c, err)
	}

	pay, sess, err := ctrl.Service.InitiateBooking(c.UserContext(), &body)
	return initiationOut(c, pay, sess, err)
}

func validationOut(c *fiber.Ctx, err error) error {
	if ve, ok := err.(validator.ValidationErrors); ok {
		return helper.ValidationError(c, ve)
	}
	return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
}

// initiationOut keeps the legacy response contract the SPA expects:
// {status, GatewayPageURL, tran_id} on success, {status:"error"} else.
func initiationOut(c *fiber.Ctx, pay *model.Payment, sess *gateway.SessionResponse, err error) error {
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound),
			errors.Is(err, service.ErrPetNotFound),
			errors.Is(err, service.ErrVolunteerNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status": "error", "message": err.Error(),
			})
		case errors.Is(err, service.ErrOutOfStock),
			errors.Is(err, service.ErrPetUnavailable),
			errors.Is(err, service.ErrSlotUnavailable):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"status": "error", "message": err.Error(),
			})
		case errors.Is(err, service.ErrGatewayRejected):
			msg := "gateway rejected the session"
			if sess != nil && sess.FailedReason != "" {
				msg = sess.FailedReason
			}
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"status": "error", "message": msg,
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status": "error", "message": err.Error(),
			})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.InitiateResponse{
		Status:         "success",
		GatewayPageURL: sess.GatewayPageURL,
		TranID:         pay.PaymentTranID,
	})
}

/* ===================== Terminal callbacks ===================== */

// The gateway is the caller here, posting form data and following the
// redirect we answer with. These endpoints never return JSON.

// POST /api/payments/success
func (ctrl *PaymentController) PaymentSuccess(c *fiber.Ctx) error {
	tranID := callbackTranID(c)
	if tranID == "" {
		return redirectClient(c, "/payment/error")
	}
	outcome, err := ctrl.Service.HandleSuccess(c.UserContext(), tranID, gatewayPayload(c))
	if err != nil {
		log.Printf("[ERROR] success callback %s: %v", tranID, err)
	}
	if outcome != service.OutcomeApplied {
		return redirectClient(c, "/payment/error")
	}
	return redirectClient(c, "/payment/success?tran_id="+tranID)
}

// POST /api/payments/fail
func (ctrl *PaymentController) PaymentFail(c *fiber.Ctx) error {
	tranID := callbackTranID(c)
	if tranID == "" {
		return redirectClient(c, "/payment/error")
	}
	outcome, err := ctrl.Service.HandleFail(c.UserContext(), tranID, gatewayPayload(c))
	if err != nil {
		log.Printf("[ERROR] fail callback %s: %v", tranID, err)
	}
	if outcome != service.OutcomeApplied {
		return redirectClient(c, "/payment/error")
	}
	return redirectClient(c, "/payment/fail?tran_id="+tranID)
}

// POST /api/payments/cancel
func (ctrl *PaymentController) PaymentCancel(c *fiber.Ctx) error {
	tranID := callbackTranID(c)
	if tranID == "" {
		return redirectClient(c, "/payment/error")
	}
	outcome, err := ctrl.Service.HandleCancel(c.UserContext(), tranID, gatewayPayload(c))
	if err != nil {
		log.Printf("[ERROR] cancel callback %s: %v", tranID, err)
	}
	if outcome != service.OutcomeApplied {
		return redirectClient(c, "/payment/error")
	}
	return redirectClient(c, "/payment/cancelled?tran_id="+tranID)
}

/* ===================== IPN ===================== */

// POST /api/payments/ipn
func (ctrl *PaymentController) PaymentIPN(c *fiber.Ctx) error {
	var body dto.IPNRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification body")
	}
	// the gateway also embeds tran_id in the callback URL we registered
	if body.TranID == "" {
		body.TranID = callbackTranID(c)
	}
	body.TranID = strings.TrimSpace(body.TranID)
	body.Status = strings.TrimSpace(body.Status)
	if err := ctrl.Validate.Struct(&body); err != nil {
		// malformed notification; answering 200 would silence the
		// gateway's retry, answering 4xx keeps the noise bounded
		return helper.JsonError(c, fiber.StatusBadRequest, "tran_id and status are required")
	}

	if err := ctrl.Service.RecordIPN(c.UserContext(), body.TranID, body.Status, gatewayPayload(c)); err != nil {
		log.Printf("[ERROR] ipn %s: %v", body.TranID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "could not record IPN")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "IPN received",
	})
}

/* ===================== Status query ===================== */

// GET /api/payments/status/:tran_id
func (ctrl *PaymentController) PaymentStatus(c *fiber.Ctx) error {
	tranID := strings.TrimSpace(c.Params("tran_id"))
	if tranID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "tran_id is required")
	}

	pay, err := ctrl.Service.GetByTranID(c.UserContext(), tranID)
	if err != nil {
		if errors.Is(err, service.ErrUnknownTransaction) {
			return helper.JsonError(c, fiber.StatusNotFound, "payment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "could not load payment")
	}

	// contact/address fields only for the owner or an admin
	includeContact := helper.IsAdmin(c) ||
		(helper.GetUserEmail(c) != "" && strings.EqualFold(helper.GetUserEmail(c), pay.PaymentCusEmail))
	return helper.JsonOK(c, "", dto.NewPaymentStatusResponse(pay, includeContact))
}

// GET /api/a/payments/reconcile — payments whose success callback rolled
// back; operators settle these by hand.
func (ctrl *PaymentController) ListReconcileRequired(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctrl.Service.ListReconcileRequired(c.UserContext(), paging.Limit, paging.Offset)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "could not list payments")
	}
	return helper.JsonList(c, "", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ===================== Stripe ===================== */

// POST /api/payments/create-payment-intent
func (ctrl *PaymentController) CreatePaymentIntent(c *fiber.Ctx) error {
	var body dto.CreatePaymentIntentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return validationOut(c, err)
	}

	intent, err := ctrl.Stripe.CreatePaymentIntent(c.UserContext(), body.Amount, body.Currency)
	if err != nil {
		log.Println("[ERROR] stripe payment intent:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "could not create payment intent")
	}
	return helper.JsonCreated(c, "", fiber.Map{
		"clientSecret": intent.ClientSecret,
	})
}

/* ===================== Helpers ===================== */

// callbackTranID: the gateway passes tran_id in the callback URL query
// (we embed it at initiation) and repeats it in the form body.
func callbackTranID(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Query("tran_id")); v != "" {
		return v
	}
	return strings.TrimSpace(c.FormValue("tran_id"))
}

// gatewayPayload snapshots the posted form for the audit trail.
func gatewayPayload(c *fiber.Ctx) map[string]any {
	payload := map[string]any{}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		payload[string(k)] = string(v)
	})
	return payload
}

func redirectClient(c *fiber.Ctx, path string) error {
	return c.Redirect(configs.ClientBaseURL+path, fiber.StatusSeeOther)
}
