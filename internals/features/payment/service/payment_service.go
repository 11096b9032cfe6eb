package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pawmart_backend/internals/features/payment/dto"
	"pawmart_backend/internals/features/payment/gateway"
	"pawmart_backend/internals/features/payment/model"
	petModel "pawmart_backend/internals/features/pets/model"
	productModel "pawmart_backend/internals/features/products/model"
	volunteerModel "pawmart_backend/internals/features/volunteers/model"
)

/* ===================== Errors ===================== */

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrOutOfStock         = errors.New("product is out of stock")
	ErrPetNotFound        = errors.New("pet not found")
	ErrPetUnavailable     = errors.New("pet is no longer available for adoption")
	ErrVolunteerNotFound  = errors.New("volunteer not found")
	ErrSlotUnavailable    = errors.New("slot is missing or already booked")
	ErrGatewayRejected    = errors.New("gateway rejected the session")
	ErrUnknownTransaction = errors.New("unknown transaction id")
	ErrSideEffectFailed   = errors.New("domain side effect matched no rows")
)

// SessionCreator is what the orchestrator needs from the gateway; tests
// substitute a stub.
type SessionCreator interface {
	CreateSession(ctx context.Context, req gateway.SessionRequest) (*gateway.SessionResponse, error)
}

// CallbackURLs are the four gateway-callback endpoints, derived from
// config at construction time.
type CallbackURLs struct {
	Success string
	Fail    string
	Cancel  string
	IPN     string
}

func CallbackURLsFromBase(base string) CallbackURLs {
	return CallbackURLs{
		Success: base + "/api/payments/success",
		Fail:    base + "/api/payments/fail",
		Cancel:  base + "/api/payments/cancel",
		IPN:     base + "/api/payments/ipn",
	}
}

// PaymentService owns the checkout lifecycle. Constructed once at
// bootstrap and handed to the controllers.
type PaymentService struct {
	DB        *gorm.DB
	Gateway   SessionCreator
	Callbacks CallbackURLs
}

func NewPaymentService(db *gorm.DB, gw SessionCreator, cb CallbackURLs) *PaymentService {
	return &PaymentService{DB: db, Gateway: gw, Callbacks: cb}
}

/* ===================== Initiation ===================== */

// InitiateProduct runs the product-checkout initiation: verify the
// product, insert the pending row, open the gateway session. A gateway
// rejection leaves the row pending on purpose — the reconciler expires
// it later.
func (s *PaymentService) InitiateProduct(ctx context.Context, req *dto.InitiateProductPaymentRequest) (*model.Payment, *gateway.SessionResponse, error) {
	productID, err := dto.ParseUUID(req.ProductID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: bad product_id", ErrProductNotFound)
	}

	var product productModel.Product
	if err := s.DB.WithContext(ctx).Where("product_id = ?", productID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrProductNotFound
		}
		return nil, nil, err
	}
	if !product.InStock() {
		return nil, nil, ErrOutOfStock
	}
	// The client-supplied amount is what gets charged; a mismatch with
	// the listed price is logged, not rejected.
	if !req.TotalAmount.Equal(product.ProductPrice) {
		log.Printf("[WARN] price mismatch tran init: product=%s listed=%s charged=%s",
			product.ProductID, product.ProductPrice, req.TotalAmount)
	}

	pay := s.newPayment(model.PaymentKindProduct, req.TotalAmount, req.Currency, req.CustomerInfo)
	pay.PaymentProductID = &product.ProductID
	name := req.ProductName
	pay.PaymentProductName = &name

	return s.createAndOpenSession(ctx, pay, req.ProductName)
}

// InitiateAdopt runs the adoption-checkout initiation.
func (s *PaymentService) InitiateAdopt(ctx context.Context, req *dto.InitiateAdoptPaymentRequest) (*model.Payment, *gateway.SessionResponse, error) {
	petID, err := dto.ParseUUID(req.PetID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: bad petId", ErrPetNotFound)
	}

	var pet petModel.Pet
	if err := s.DB.WithContext(ctx).Where("pet_id = ?", petID).First(&pet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrPetNotFound
		}
		return nil, nil, err
	}
	if pet.PetStatus != petModel.PetStatusAvailable {
		return nil, nil, ErrPetUnavailable
	}

	pay := s.newPayment(model.PaymentKindAdoptPet, req.TotalAmount, req.Currency, req.CustomerInfo)
	pay.PaymentPetID = &pet.PetID
	name := req.PetName
	pay.PaymentPetName = &name

	return s.createAndOpenSession(ctx, pay, "Adoption: "+req.PetName)
}

// InitiateBooking runs the trainer-slot checkout initiation. The slot id
// is captured on the payment row so the success callback never trusts
// gateway-supplied ids.
func (s *PaymentService) InitiateBooking(ctx context.Context, req *dto.InitiateBookingPaymentRequest) (*model.Payment, *gateway.SessionResponse, error) {
	volunteerID, err := dto.ParseUUID(req.VolunteerID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: bad volunteerId", ErrVolunteerNotFound)
	}

	var vol volunteerModel.Volunteer
	if err := s.DB.WithContext(ctx).Where("volunteer_id = ?", volunteerID).First(&vol).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrVolunteerNotFound
		}
		return nil, nil, err
	}
	days, err := volunteerModel.DecodeAvailableDays(vol.VolunteerAvailableDays)
	if err != nil {
		return nil, nil, err
	}
	free := false
	for _, d := range days {
		if d.SlotID == req.SlotID && !d.IsBooked {
			free = true
			break
		}
	}
	if !free {
		return nil, nil, ErrSlotUnavailable
	}

	pay := s.newPayment(model.PaymentKindSlotBooking, req.TotalAmount, req.Currency, req.CustomerInfo)
	pay.PaymentVolunteerID = &vol.VolunteerID
	slot := req.SlotID
	pay.PaymentSlotID = &slot

	return s.createAndOpenSession(ctx, pay, "Training session with "+vol.VolunteerName)
}

func (s *PaymentService) newPayment(kind string, amount decimal.Decimal, currency string, cus dto.CustomerInfo) *model.Payment {
	if currency == "" {
		currency = "BDT"
	}
	return &model.Payment{
		PaymentTranID:        NewTranID(kind),
		PaymentKind:          kind,
		PaymentStatus:        model.PaymentStatusPending,
		PaymentAmount:        amount,
		PaymentCurrency:      currency,
		PaymentCusName:       cus.CusName,
		PaymentCusEmail:      cus.CusEmail,
		PaymentCusPhone:      cus.CusPhone,
		PaymentCusAddress:    cus.CusAddress,
		PaymentCusCity:       cus.CusCity,
		PaymentCusPostcode:   cus.CusPostcode,
		PaymentCusCountry:    cus.CusCountry,
		PaymentStatusHistory: model.NewStatusHistory("payment initiated"),
	}
}

// createAndOpenSession persists the pending row, then calls the gateway.
func (s *PaymentService) createAndOpenSession(ctx context.Context, pay *model.Payment, productLabel string) (*model.Payment, *gateway.SessionResponse, error) {
	if err := s.DB.WithContext(ctx).Create(pay).Error; err != nil {
		return nil, nil, fmt.Errorf("persist pending payment: %w", err)
	}

	sessReq := gateway.SessionRequest{
		TranID:      pay.PaymentTranID,
		Amount:      pay.PaymentAmount,
		Currency:    pay.PaymentCurrency,
		ProductName: productLabel,
		CusName:     pay.PaymentCusName,
		CusEmail:    pay.PaymentCusEmail,
		CusPhone:    deref(pay.PaymentCusPhone),
		CusAddress:  deref(pay.PaymentCusAddress),
		CusCity:     deref(pay.PaymentCusCity),
		CusPostcode: deref(pay.PaymentCusPostcode),
		CusCountry:  deref(pay.PaymentCusCountry),
		SuccessURL:  s.Callbacks.Success,
		FailURL:     s.Callbacks.Fail,
		CancelURL:   s.Callbacks.Cancel,
		IPNURL:      s.Callbacks.IPN,
	}

	sess, err := s.Gateway.CreateSession(ctx, sessReq)
	if err != nil {
		// The pending row stays; the reconciler will expire it.
		log.Printf("[ERROR] gateway session for %s: %v", pay.PaymentTranID, err)
		return pay, nil, err
	}
	if !sess.OK() {
		log.Printf("[ERROR] gateway refused %s: %s", pay.PaymentTranID, sess.FailedReason)
		return pay, sess, ErrGatewayRejected
	}

	// keep the raw session reply for debugging; best effort
	if err := s.DB.WithContext(ctx).Model(pay).
		UpdateColumn("payment_gateway_session", []byte(sess.Raw)).Error; err != nil {
		log.Printf("[WARN] could not store session reply for %s: %v", pay.PaymentTranID, err)
	}
	return pay, sess, nil
}

/* ===================== Status query ===================== */

func (s *PaymentService) GetByTranID(ctx context.Context, tranID string) (*model.Payment, error) {
	var pay model.Payment
	if err := s.DB.WithContext(ctx).Where("payment_tran_id = ?", tranID).First(&pay).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownTransaction
		}
		return nil, err
	}
	return &pay, nil
}

// ListReconcileRequired returns completed-then-rolled-back payments an
// operator still has to look at.
func (s *PaymentService) ListReconcileRequired(ctx context.Context, limit, offset int) ([]model.Payment, int64, error) {
	var (
		rows  []model.Payment
		total int64
	)
	q := s.DB.WithContext(ctx).Model(&model.Payment{}).Where("payment_reconcile_required = TRUE")
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("updated_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func nowPtr() *time.Time {
	t := time.Now()
	return &t
}
