package yookassa

type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type Confirmation struct {
	Type            string `json:"type"`
	ReturnURL       string `json:"return_url,omitempty"`
	ConfirmationURL string `json:"confirmation_url,omitempty"`
}

type ReceiptCustomer struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type ReceiptItem struct {
	Description    string  `json:"description"`
	Quantity       float64 `json:"quantity"`
	Amount         Amount  `json:"amount"`
	VatCode        int     `json:"vat_code"`
	PaymentMode    string  `json:"payment_mode"`
	PaymentSubject string  `json:"payment_subject"`
}

type Receipt struct {
	Customer ReceiptCustomer `json:"customer"`
	Items    []ReceiptItem   `json:"items"`
	Internet string          `json:"internet"`
}

type CreatePaymentRequest struct {
	Amount       Amount            `json:"amount"`
	Capture      bool              `json:"capture"`
	Confirmation Confirmation      `json:"confirmation"`
	Description  string            `json:"description"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	Receipt      *Receipt          `json:"receipt,omitempty"`
}
