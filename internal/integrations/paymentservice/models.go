package paymentservice

// PreferenceItem позиция платежа
type PreferenceItem struct {
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Payer данные плательщика
type Payer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// BackURLs адреса возврата пользователя после оплаты
type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

// PreferenceRequest запрос на создание платежного намерения
// ExternalReference - идентификатор временной брони (correlation reference),
// связывает исход платежа с холдом
type PreferenceRequest struct {
	Items             []PreferenceItem `json:"items"`
	Payer             *Payer           `json:"payer,omitempty"`
	BackURLs          BackURLs         `json:"back_urls"`
	ExternalReference string           `json:"external_reference"`
}

// preferenceResponse ответ провайдера с redirect URL
type preferenceResponse struct {
	InitPoint string `json:"init_point"`
}

// PaymentStatus статус платежа по correlation reference
type PaymentStatus struct {
	Status    string `json:"status"`
	Estado    string `json:"estado"`
	PaymentID string `json:"paymentId,omitempty"`
}

// Терминальные значения поля estado; всё остальное считается pending-like
const (
	EstadoApproved = "approved"
	EstadoRejected = "rejected"
)

// IsApproved возвращает true, если платеж подтвержден
func (s *PaymentStatus) IsApproved() bool {
	return s.Estado == EstadoApproved
}

// IsRejected возвращает true, если платеж отклонен
func (s *PaymentStatus) IsRejected() bool {
	return s.Estado == EstadoRejected
}
