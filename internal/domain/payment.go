package domain

import "time"

type PaymentProofStatus string

const (
	PaymentProofPending  PaymentProofStatus = "pending"
	PaymentProofApproved PaymentProofStatus = "approved"
)

// PaymentProof é o comprovante de pagamento enviado por um cliente
type PaymentProof struct {
	ID         string             `json:"id"`
	UserID     int                `json:"user_id"`
	UserEmail  string             `json:"user_email,omitempty"`
	FileName   string             `json:"file_name"`
	Note       string             `json:"note"`
	Status     PaymentProofStatus `json:"status"`
	EmailSent  bool               `json:"email_sent"`
	CreatedAt  time.Time          `json:"created_at"`
	ApprovedAt *time.Time         `json:"approved_at"`
}

// Attachment é um arquivo anexado a um e-mail
type Attachment struct {
	FileName    string
	ContentType string
	Content     []byte
}

// EmailMessage é a mensagem entregue ao serviço de notificação
type EmailMessage struct {
	To         string
	Subject    string
	BodyHTML   string
	Attachment *Attachment
}
