package models

import "time"

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentProcessing PaymentStatus = "PROCESSING"
	PaymentCompleted  PaymentStatus = "COMPLETED"
	PaymentFailed     PaymentStatus = "FAILED"
	PaymentRefunded   PaymentStatus = "REFUNDED"
	PaymentCancelled  PaymentStatus = "CANCELLED"
)

type PaymentMethod string

const (
	MethodCreditCard     PaymentMethod = "CREDIT_CARD"
	MethodDebitCard      PaymentMethod = "DEBIT_CARD"
	MethodPayPal         PaymentMethod = "PAYPAL"
	MethodBankTransfer   PaymentMethod = "BANK_TRANSFER"
	MethodCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
	MethodWallet         PaymentMethod = "WALLET"
)

// PaymentMethods lists the methods a storefront can offer at checkout.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		MethodCreditCard,
		MethodDebitCard,
		MethodPayPal,
		MethodBankTransfer,
		MethodCashOnDelivery,
		MethodWallet,
	}
}

type Payment struct {
	ID            int64         `json:"id"`
	TransactionID string        `json:"transactionId"`
	OrderID       int64         `json:"orderId"`
	UserID        int64         `json:"userId"`
	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Status        PaymentStatus `json:"status"`
	CreatedAt     *time.Time    `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time    `json:"updatedAt,omitempty"`
}

type PaymentCreate struct {
	OrderID       int64         `json:"orderId"`
	UserID        int64         `json:"userId"`
	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}
