package dto

// RevenueCatWebhook is the envelope RevenueCat posts to the webhook
// endpoint. Only the fields the subscription service reads are mapped; the
// rest of the payload is ignored.
type RevenueCatWebhook struct {
	APIVersion string          `json:"api_version"`
	Event      RevenueCatEvent `json:"event"`
}

type RevenueCatEvent struct {
	Type           string  `json:"type"`
	ID             string  `json:"id"`
	AppUserID      string  `json:"app_user_id"`
	ProductID      string  `json:"product_id"`
	PeriodType     string  `json:"period_type"`
	PurchasedAtMs  int64   `json:"purchased_at_ms"`
	ExpirationAtMs int64   `json:"expiration_at_ms"`
	Environment    string  `json:"environment"`
	Store          string  `json:"store"`
	TransactionID  string  `json:"transaction_id"`
	Price          float64 `json:"price"`
	Currency       string  `json:"currency"`
}
