package domain

import "time"

// Типы событий процессора, которые обрабатывает диспетчер вебхуков.
const (
	EventPaymentIntentSucceeded    = "payment_intent.succeeded"
	EventPaymentIntentFailed       = "payment_intent.payment_failed"
	EventCheckoutSessionCompleted  = "checkout.session.completed"
	EventInvoicePaymentSucceeded   = "invoice.payment_succeeded"
	EventInvoicePaymentFailed      = "invoice.payment_failed"
	EventAccountUpdated            = "account.updated"
	CheckoutSessionPaymentStatusOK = "paid"
)

// Ключи метаданных, которые мы передаем процессору.
const (
	MetadataMerchantUserID = "merchant_user_id"
	MetadataSource         = "source"
	MetadataCustomerName   = "customer_name"
	MetadataCustomerEmail  = "customer_email"
	SourcePaymentLink      = "payment_link"
)

// ProcessorEvent проверенное и декодированное событие вебхука. Заполнено только поле, соответствующее Type.
type ProcessorEvent struct {
	ID               string
	Type             string
	Account          string
	Created          time.Time
	PaymentIntent    *PaymentIntentEvent
	CheckoutSession  *CheckoutSessionEvent
	Invoice          *InvoiceEvent
	ConnectedAccount *AccountStatus
}

type PaymentIntentEvent struct {
	ID                   string
	Amount               int64
	Currency             string
	Description          string
	DestinationAccountID string
	PaymentMethodID      string
	PaymentMethodType    string
	ReceiptEmail         string
	FailureMessage       string
	Metadata             map[string]string
}

type CheckoutSessionEvent struct {
	ID              string
	PaymentStatus   string
	PaymentLinkID   string
	PaymentIntentID string
	CustomerEmail   string
	CustomerName    string
}

type InvoiceEvent struct {
	ID              string
	PaymentLinkID   string
	PaymentIntentID string
	AttemptCount    int64
	FailureMessage  string
}

// AccountStatus состояние connected account. Онбординг считается завершенным при ChargesEnabled.
type AccountStatus struct {
	AccountID        string              `json:"accountId"`
	ChargesEnabled   bool                `json:"chargesEnabled"`
	PayoutsEnabled   bool                `json:"payoutsEnabled"`
	DetailsSubmitted bool                `json:"detailsSubmitted"`
	Requirements     AccountRequirements `json:"requirements"`
}

func (s *AccountStatus) OnboardingComplete() bool {
	return s.ChargesEnabled
}

type AccountRequirements struct {
	CurrentlyDue   []string `json:"currentlyDue"`
	PastDue        []string `json:"pastDue"`
	EventuallyDue  []string `json:"eventuallyDue"`
	DisabledReason string   `json:"disabledReason,omitempty"`
}

// ConnectedAccountProfile данные для создания или обновления connected account.
type ConnectedAccountProfile struct {
	AccountID    string
	UserID       string
	Email        string
	Country      string
	Currency     string
	BusinessName string
	BusinessURL  string
}

// PaymentLinkSpec параметры одноразовой платежной ссылки. Amount в минорных единицах.
type PaymentLinkSpec struct {
	DestinationAccountID string
	Amount               int64
	Currency             string
	Description          string
	PaymentMethodTypes   []string
	Metadata             map[string]string
}

type PaymentLink struct {
	ID  string
	URL string
}

type PaymentMethodDescriptor struct {
	Type      string
	CardBrand string
	CardLast4 string
}

// PaymentIntentOutcome способ оплаты и причина последнего отказа payment intent.
type PaymentIntentOutcome struct {
	ID             string
	PaymentMethod  PaymentMethodDescriptor
	FailureMessage string
}

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type Balance struct {
	Available []Money
	Pending   []Money
}

type ProcessorPayout struct {
	ID          string
	Amount      int64
	Currency    string
	Status      string
	ArrivalDate time.Time
	CreatedAt   time.Time
}
