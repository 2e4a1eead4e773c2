// Package checkout turns one cart snapshot into a confirmed order and a
// settled payment, or fails with a classified error. Order creation is the
// durable commit point: a payment failure leaves the created order in place
// and the cart untouched, so callers can retry the payment or resubmit.
package checkout

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/models"
)

// Consumer-side views of the remote services, satisfied by internal/clients.
type OrderService interface {
	CreateOrder(ctx context.Context, req models.OrderCreate) (*models.Order, error)
}

type PaymentService interface {
	ProcessPayment(ctx context.Context, req models.PaymentCreate) (*models.Payment, error)
}

type AddressService interface {
	AddressesByUser(ctx context.Context, userID int64) ([]models.Address, error)
}

// UserSource reports who is signed in, nil when nobody is.
type UserSource interface {
	CurrentUser() *models.User
}

// CompletionPublisher emits an integration event after a fully settled
// checkout. Best-effort: failures are logged, never surfaced.
type CompletionPublisher interface {
	PublishCheckoutCompleted(ctx context.Context, order *models.Order, payment *models.Payment) error
}

// Form is what the checkout screen starts from: fields prefilled from the
// address book when one exists, blank otherwise.
type Form struct {
	ShippingAddress string
	BillingAddress  string
	PaymentMethod   models.PaymentMethod
	Addresses       []models.Address

	// AddressErr records a failed address fetch. Non-fatal; the form is
	// still usable with free-text addresses.
	AddressErr error
}

// Submission is the user's confirmed checkout input.
type Submission struct {
	ShippingAddress string
	BillingAddress  string
	PaymentMethod   models.PaymentMethod
}

// Result is a fully settled checkout.
type Result struct {
	Order   *models.Order
	Payment *models.Payment
	Totals  Totals
}

type Orchestrator struct {
	cart      *cart.Store
	orders    OrderService
	payments  PaymentService
	addresses AddressService
	session   UserSource
	publisher CompletionPublisher // nil disables events
	logger    *log.Logger

	mu      sync.Mutex
	state   State
	userID  int64
	frozen  cart.Cart // snapshot taken at submission, fixed for the attempt
	totals  Totals
	order   *models.Order // retained across PaymentFailed for retry
	attempt string
}

func NewOrchestrator(
	cartStore *cart.Store,
	orders OrderService,
	payments PaymentService,
	addresses AddressService,
	session UserSource,
	publisher CompletionPublisher,
	logger *log.Logger,
) *Orchestrator {
	return &Orchestrator{
		cart:      cartStore,
		orders:    orders,
		payments:  payments,
		addresses: addresses,
		session:   session,
		publisher: publisher,
		logger:    logger,
		state:     StateIdle,
	}
}

// State returns the current machine state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// OrderID returns the id of the order created by the current attempt, zero
// when none exists yet.
func (o *Orchestrator) OrderID() int64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.order == nil {
		return 0
	}
	return o.order.ID
}

// Begin opens checkout: it guards on authentication and a non-empty cart,
// loads the address book, and returns a prefilled Form. A failed address
// fetch degrades to blank fields and is reported through Form.AddressErr.
func (o *Orchestrator) Begin(ctx context.Context) (*Form, error) {
	user := o.session.CurrentUser()
	if user == nil {
		return nil, &Error{Kind: KindValidation, Err: ErrNotAuthenticated}
	}
	if o.cart.Snapshot().LineCount == 0 {
		return nil, &Error{Kind: KindValidation, Err: ErrEmptyCart}
	}

	o.mu.Lock()
	if o.state != StateIdle {
		o.mu.Unlock()
		return nil, ErrNotReady
	}
	o.state = StateAddressLoading
	o.userID = user.ID
	o.mu.Unlock()

	form := &Form{PaymentMethod: models.MethodCreditCard}

	addresses, err := o.addresses.AddressesByUser(ctx, user.ID)
	if err != nil {
		o.logger.Printf("checkout: address load failed for user %d: %v", user.ID, err)
		form.AddressErr = &Error{Kind: KindAddressLoad, Err: err}
	} else if len(addresses) > 0 {
		form.Addresses = addresses
		preferred := addresses[0]
		for _, a := range addresses {
			if a.IsDefault {
				preferred = a
				break
			}
		}
		formatted := preferred.Format()
		form.ShippingAddress = formatted
		form.BillingAddress = formatted
	}

	o.mu.Lock()
	o.state = StateReady
	o.mu.Unlock()

	return form, nil
}

// Submit runs the two-phase commit: create the order, then charge payment.
// The cart snapshot and totals are frozen at entry; concurrent cart edits do
// not affect the attempt. A second Submit while one is in flight returns
// ErrSubmitInProgress without issuing any remote call.
func (o *Orchestrator) Submit(ctx context.Context, sub Submission) (*Result, error) {
	if err := ValidateSubmission(sub); err != nil {
		return nil, &Error{Kind: KindValidation, Err: err}
	}
	user := o.session.CurrentUser()
	if user == nil {
		return nil, &Error{Kind: KindValidation, Err: ErrNotAuthenticated}
	}

	snap := o.cart.Snapshot()

	o.mu.Lock()
	switch {
	case o.state.inFlight():
		o.mu.Unlock()
		return nil, ErrSubmitInProgress
	case !o.state.submittable():
		o.mu.Unlock()
		return nil, ErrNotReady
	}
	if snap.LineCount == 0 {
		o.mu.Unlock()
		return nil, &Error{Kind: KindValidation, Err: ErrEmptyCart}
	}
	o.state = StateSubmitting
	o.userID = user.ID
	o.frozen = snap
	o.totals = ComputeTotals(snap)
	o.order = nil
	o.attempt = uuid.NewString()
	totals := o.totals
	attempt := o.attempt
	o.mu.Unlock()

	req := models.OrderCreate{
		UserID:          user.ID,
		ShippingAddress: sub.ShippingAddress,
		BillingAddress:  sub.BillingAddress,
		TaxAmount:       totals.Tax,
		ShippingAmount:  totals.Shipping,
	}
	for _, l := range snap.Lines {
		req.Items = append(req.Items, models.OrderItem{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			ProductSKU:  l.ProductSKU,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}

	order, err := o.orders.CreateOrder(ctx, req)
	if err != nil {
		o.setState(StateOrderFailed)
		o.logger.Printf("checkout %s: order submission failed: %v", attempt, err)
		return nil, &Error{Kind: KindOrderSubmission, Err: err}
	}

	o.mu.Lock()
	o.state = StateOrderCreated
	o.order = order
	o.mu.Unlock()

	return o.processPayment(ctx, user.ID, order, sub.PaymentMethod, totals)
}

// RetryPayment re-targets the payment at the order retained from a
// PaymentFailed attempt, keeping the frozen total. No new order is created.
func (o *Orchestrator) RetryPayment(ctx context.Context, method models.PaymentMethod) (*Result, error) {
	o.mu.Lock()
	if o.state != StatePaymentFailed || o.order == nil {
		o.mu.Unlock()
		return nil, ErrNoFailedPayment
	}
	order := o.order
	totals := o.totals
	userID := o.userID
	// Claim the attempt so a concurrent retry bounces off ErrNoFailedPayment.
	o.state = StateOrderCreated
	o.mu.Unlock()

	return o.processPayment(ctx, userID, order, method, totals)
}

// processPayment runs from StateOrderCreated. On success it clears the cart
// and completes; on failure the order stays created and the cart stays intact
// so the attempt can be retried.
func (o *Orchestrator) processPayment(ctx context.Context, userID int64, order *models.Order, method models.PaymentMethod, totals Totals) (*Result, error) {
	o.setState(StatePaymentProcessing)

	payment, err := o.payments.ProcessPayment(ctx, models.PaymentCreate{
		OrderID:       order.ID,
		UserID:        userID,
		Amount:        totals.Total,
		PaymentMethod: method,
	})
	if err != nil {
		o.setState(StatePaymentFailed)
		o.logger.Printf("checkout: payment failed for order %d: %v", order.ID, err)
		return nil, &Error{Kind: KindPayment, OrderID: order.ID, Err: err}
	}

	if o.publisher != nil {
		if err := o.publisher.PublishCheckoutCompleted(ctx, order, payment); err != nil {
			o.logger.Printf("checkout: publish completion event for order %d: %v", order.ID, err)
		}
	}

	o.cart.Clear(ctx)
	o.setState(StateCompleted)

	return &Result{Order: order, Payment: payment, Totals: totals}, nil
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}
