package config

// Platform reference data. These tables mirror what the marketing side
// publishes; they feed templates and the purchase wizard but carry no
// enforcement logic of their own.

// BrazilianStates lists the state codes selectable in the region filter.
var BrazilianStates = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA", "MT", "MS", "MG",
	"PA", "PB", "PR", "PE", "PI", "RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE", "TO",
}

// VehicleBrands lists the brands selectable in the brand filter.
var VehicleBrands = []string{
	"Volkswagen", "Fiat", "Chevrolet", "Ford", "Toyota", "Honda", "Hyundai",
	"Renault", "Nissan", "Jeep", "Peugeot", "Citroën", "BMW", "Mercedes-Benz",
	"Audi", "Mitsubishi", "Kia", "Volvo", "Land Rover", "Porsche",
}

// PartCategories groups listings for browsing.
var PartCategories = []string{
	"Motor e Transmissão",
	"Suspensão e Direção",
	"Freios",
	"Sistema Elétrico",
	"Carroceria e Lataria",
	"Iluminação",
	"Interior",
	"Ar Condicionado",
	"Escapamento",
	"Rodas e Pneus",
	"Vidros e Retrovisores",
	"Acessórios",
}

// DeliveryOption describes one of the delivery methods offered in the wizard.
type DeliveryOption struct {
	ID          string
	Name        string
	Description string
	LeadTime    string
}

// DeliveryOptions lists the delivery methods offered in step two of the wizard.
var DeliveryOptions = []DeliveryOption{
	{ID: "sedex", Name: "Sedex / Correios", Description: "Entrega rápida pelos Correios", LeadTime: "2-5 dias úteis"},
	{ID: "transportadora", Name: "Transportadora", Description: "Para peças grandes e pesadas", LeadTime: "5-10 dias úteis"},
	{ID: "onibus", Name: "Ônibus Rodoviário", Description: "Econômico para peças grandes", LeadTime: "3-7 dias úteis"},
}

// PaymentOption describes one of the payment methods offered in the wizard.
type PaymentOption struct {
	ID          string
	Name        string
	Description string
}

// PaymentOptions lists the payment methods offered in step one of the wizard.
// The method is recorded on the purchase; no gateway is called.
var PaymentOptions = []PaymentOption{
	{ID: "credit_card", Name: "Cartão de Crédito", Description: "Parcelamento em até 12x"},
	{ID: "pix", Name: "PIX", Description: "Aprovação instantânea"},
	{ID: "boleto", Name: "Boleto Bancário", Description: "Aprovação em 1-2 dias úteis"},
}

// TierInfo carries the display treatment for a listing tier.
type TierInfo struct {
	Name     string
	Color    string
	Benefits []string
}

// ListingTiers maps tier ids to their display treatment. Commission rates live
// in internal/models; this table is presentation only.
var ListingTiers = map[string]TierInfo{
	"normal": {
		Name:     "Normal",
		Color:    "blue",
		Benefits: []string{"Anúncio padrão", "Visibilidade normal"},
	},
	"premium": {
		Name:     "Premium",
		Color:    "amber",
		Benefits: []string{"Destaque na busca", "Aparece no topo", "Badge especial", "Mais visibilidade"},
	},
	"new": {
		Name:     "Peça Nova",
		Color:    "emerald",
		Benefits: []string{"Menor comissão", "Badge 'Novo'", "Confiança extra", "Para lojas parceiras"},
	},
}

// Media limits published to sellers. Declared platform policy; the shown code
// does not enforce them (the hosted backend does).
var (
	VideoMaxSizeMB         = 100
	VideoMaxDurationSecs   = 180
	VideoAcceptedFormats   = []string{"video/mp4", "video/webm", "video/quicktime"}
	PhotoMaxSizeMB         = 5
	PhotoMaxCount          = 6
	PhotoAcceptedFormats   = []string{"image/jpeg", "image/png", "image/webp"}
)
