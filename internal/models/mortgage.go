package models

// MortgageEvent is one paydown event. Kind is "principal_payment" or
// "balance_check"; Amount holds the payment amount or the checked balance.
type MortgageEvent struct {
	ID        string  `json:"id"`
	Day       string  `json:"day"`
	Kind      string  `json:"kind"`
	Amount    float64 `json:"amount"`
	Note      string  `json:"note"`
	CreatedAt string  `json:"created_at"`
}

// MortgageProgress is the server-precomputed progress block.
type MortgageProgress struct {
	TargetDelta  float64 `json:"target_delta"`
	PaidExtraYTD float64 `json:"paid_extra_ytd"`
}

// MortgageSummary is the response of GET /api/mortgage/summary.
type MortgageSummary struct {
	StartPrincipal         float64          `json:"mortgage_start_principal"`
	TargetPrincipal        float64          `json:"mortgage_target_principal"`
	LatestPrincipalBalance *float64         `json:"latest_principal_balance"`
	PaidExtraYTD           float64          `json:"principal_paid_extra_ytd"`
	PaidExtraMonth         float64          `json:"principal_paid_extra_month"`
	Progress               MortgageProgress `json:"progress"`
}

// PrincipalPaymentCreate is the payload for POST /api/mortgage/principal-payment.
type PrincipalPaymentCreate struct {
	Day    string  `json:"day"`
	Amount float64 `json:"amount"`
	Note   string  `json:"note"`
}

// BalanceCheckCreate is the payload for POST /api/mortgage/balance-check.
type BalanceCheckCreate struct {
	Day              string  `json:"day"`
	PrincipalBalance float64 `json:"principal_balance"`
	Note             string  `json:"note"`
}
