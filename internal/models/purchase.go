package models

import "time"

// PurchaseStatus represents the lifecycle state of a purchase record.
// Only creation is handled here; later transitions belong to the backend.
type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending"
	PurchaseStatusConfirmed PurchaseStatus = "confirmed"
	PurchaseStatusCancelled PurchaseStatus = "cancelled"
)

// Label returns the status display name
func (s PurchaseStatus) Label() string {
	switch s {
	case PurchaseStatusPending:
		return "Aguardando confirmação"
	case PurchaseStatusConfirmed:
		return "Confirmada"
	case PurchaseStatusCancelled:
		return "Cancelada"
	default:
		return string(s)
	}
}

// PaymentMethod represents the buyer's chosen payment method.
// The method is recorded, not processed.
type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodBoleto     PaymentMethod = "boleto"
)

// IsValid checks if the payment method is one of the offered values
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCreditCard || m == PaymentMethodPix || m == PaymentMethodBoleto
}

// Label returns the payment method's display name
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentMethodCreditCard:
		return "Cartão de Crédito"
	case PaymentMethodPix:
		return "PIX"
	case PaymentMethodBoleto:
		return "Boleto Bancário"
	default:
		return string(m)
	}
}

// DeliveryMethod represents the buyer's chosen delivery method
type DeliveryMethod string

const (
	DeliveryMethodSedex          DeliveryMethod = "sedex"
	DeliveryMethodTransportadora DeliveryMethod = "transportadora"
	DeliveryMethodOnibus         DeliveryMethod = "onibus"
)

// IsValid checks if the delivery method is one of the offered values
func (m DeliveryMethod) IsValid() bool {
	return m == DeliveryMethodSedex || m == DeliveryMethodTransportadora || m == DeliveryMethodOnibus
}

// Label returns the delivery method's display name
func (m DeliveryMethod) Label() string {
	switch m {
	case DeliveryMethodSedex:
		return "Sedex / Correios"
	case DeliveryMethodTransportadora:
		return "Transportadora"
	case DeliveryMethodOnibus:
		return "Ônibus Rodoviário"
	default:
		return string(m)
	}
}

// Purchase references a listing and buyer identity plus snapshotted contact
// fields, as returned by the backend after creation.
type Purchase struct {
	ID             string         `json:"id"`
	ListingID      string         `json:"announcement_id"`
	BuyerID        string         `json:"buyer_id"`
	BuyerName      string         `json:"buyer_name"`
	BuyerEmail     string         `json:"buyer_email"`
	BuyerPhone     string         `json:"buyer_phone"`
	BuyerCity      string         `json:"buyer_city"`
	BuyerState     string         `json:"buyer_state"`
	PaymentMethod  PaymentMethod  `json:"payment_method"`
	DeliveryMethod DeliveryMethod `json:"delivery_method"`
	ZipCode        string         `json:"zip_code"`
	Status         PurchaseStatus `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
}
