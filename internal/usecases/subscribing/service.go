package subscribing

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"github.com/vfg2006/loan-ledger-api/infrastructure/repository"
	"github.com/vfg2006/loan-ledger-api/internal/config"
	"github.com/vfg2006/loan-ledger-api/internal/domain"
	"github.com/vfg2006/loan-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/loan-ledger-api/pkg/log"
	"github.com/vfg2006/loan-ledger-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Subscriber interface {
	Status(ctx context.Context, userID int) (*domain.TrialStatus, error)
	SetSubscription(ctx context.Context, userID int, subscribed bool) (*domain.User, error)
	SubmitPaymentProof(ctx context.Context, userID int, note string, file *domain.Attachment) (*domain.PaymentProof, error)
	ApprovePaymentProof(ctx context.Context, proofID string) (*domain.PaymentProof, error)
	ListPaymentProofs(ctx context.Context, status *domain.PaymentProofStatus) ([]*domain.PaymentProof, error)
}

// Notifier entrega e-mails
type Notifier interface {
	Send(ctx context.Context, msg domain.EmailMessage) error
}

var allowedProofExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

var proofEmailTemplate = template.Must(template.New("proof").Parse(`
<h2>Novo comprovante de pagamento</h2>
<p><strong>Cliente:</strong> {{.Name}} ({{.Email}})</p>
<p><strong>Comprovante:</strong> {{.ProofID}}</p>
<p><strong>Enviado em:</strong> {{.SentAt}}</p>
{{if .Note}}<p><strong>Observação:</strong> {{.Note}}</p>{{end}}
<p>Aprove o comprovante no painel administrativo para liberar a assinatura.</p>
`))

var subscriptionEmailTemplate = template.Must(template.New("subscription").Parse(`
<h2>Assinatura ativada</h2>
<p>Olá {{.Name}}, seu pagamento foi confirmado e sua conta já pode editar as planilhas normalmente.</p>
`))

type Service struct {
	userRepo   repository.UserRepository
	proofRepo  repository.PaymentProofRepository
	notifier   Notifier
	gate       *Gate
	adminEmail string
	generateID func() (string, error)
}

func NewService(
	userRepo repository.UserRepository,
	proofRepo repository.PaymentProofRepository,
	notifier Notifier,
	gate *Gate,
	cfg config.SMTP,
) *Service {
	return &Service{
		userRepo:   userRepo,
		proofRepo:  proofRepo,
		notifier:   notifier,
		gate:       gate,
		adminEmail: cfg.AdminEmail,
		generateID: utils.GenerateID,
	}
}

// Status calcula o estado de acesso atual da conta
func (s *Service) Status(ctx context.Context, userID int) (*domain.TrialStatus, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	status := s.gate.Status(user)
	return &status, nil
}

// SetSubscription liga ou desliga a assinatura de uma conta
func (s *Service) SetSubscription(ctx context.Context, userID int, subscribed bool) (*domain.User, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var subscribedAt *time.Time
	if subscribed {
		now := s.gate.now().UTC()
		subscribedAt = &now
	}

	if err := s.userRepo.UpdateSubscription(ctx, userID, subscribed, subscribedAt); err != nil {
		return nil, NewUserSubscriptionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, err.Error())
	}

	user.IsSubscribed = subscribed
	user.SubscribedAt = subscribedAt
	user.PasswordHash = ""

	status := s.gate.Status(user)
	user.Trial = &status

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id":         userID,
		"user_subscribed": subscribed,
	}).Info("Assinatura atualizada")

	return user, nil
}

// SubmitPaymentProof grava o comprovante e o envia por e-mail ao
// administrador. Se o envio falhar o comprovante continua gravado e o erro
// é retornado junto com ele.
func (s *Service) SubmitPaymentProof(ctx context.Context, userID int, note string, file *domain.Attachment) (*domain.PaymentProof, error) {
	if file == nil || len(file.Content) == 0 {
		return nil, NewUserSubscriptionError(ErrInvalidAttachment, apiErrors.ErrMissingRequiredData, userID, "arquivo obrigatório")
	}

	ext := strings.ToLower(filepath.Ext(file.FileName))
	if !allowedProofExtensions[ext] {
		return nil, NewUserSubscriptionError(ErrInvalidAttachment, apiErrors.ErrInvalidFormat, userID, "formatos aceitos: pdf, png, jpg")
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	id, err := s.generateID()
	if err != nil {
		return nil, NewSubscriptionError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	proof := &domain.PaymentProof{
		ID:        id,
		UserID:    user.ID,
		UserEmail: user.Email,
		FileName:  filepath.Base(file.FileName),
		Note:      strings.TrimSpace(note),
		Status:    domain.PaymentProofPending,
		CreatedAt: s.gate.now().UTC(),
	}

	if err := s.proofRepo.Create(ctx, proof); err != nil {
		return nil, NewUserSubscriptionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, err.Error())
	}

	body, err := render(proofEmailTemplate, map[string]any{
		"Name":    user.Name,
		"Email":   user.Email,
		"ProofID": proof.ID,
		"SentAt":  proof.CreatedAt.Format("02/01/2006 15:04"),
		"Note":    proof.Note,
	})
	if err != nil {
		return proof, NewUserSubscriptionError(ErrNotificationFailed, apiErrors.ErrInternalServer, userID, err.Error())
	}

	err = s.notifier.Send(ctx, domain.EmailMessage{
		To:         s.adminEmail,
		Subject:    fmt.Sprintf("Comprovante de pagamento - %s", user.Email),
		BodyHTML:   body,
		Attachment: file,
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", userID).Error("Erro ao enviar comprovante por e-mail")
		return proof, NewUserSubscriptionError(ErrNotificationFailed, apiErrors.ErrExternalService, userID, err.Error())
	}

	if err := s.proofRepo.MarkEmailSent(ctx, proof.ID); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Comprovante enviado mas não marcado como enviado")
	} else {
		proof.EmailSent = true
	}

	return proof, nil
}

// ApprovePaymentProof aprova o comprovante e ativa a assinatura do dono
func (s *Service) ApprovePaymentProof(ctx context.Context, proofID string) (*domain.PaymentProof, error) {
	proof, err := s.proofRepo.GetByID(ctx, proofID)
	if err != nil {
		return nil, NewSubscriptionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if proof == nil {
		return nil, NewSubscriptionError(ErrPaymentProofNotFound, apiErrors.ErrPaymentProofNotFound, proofID)
	}
	if proof.Status == domain.PaymentProofApproved {
		return nil, NewSubscriptionError(ErrProofAlreadyApproved, apiErrors.ErrInvalidRequest, proofID)
	}

	now := s.gate.now().UTC()
	if err := s.proofRepo.Approve(ctx, proofID, now); err != nil {
		return nil, NewSubscriptionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	proof.Status = domain.PaymentProofApproved
	proof.ApprovedAt = &now

	s.notifyApproval(ctx, proof)

	return proof, nil
}

func (s *Service) ListPaymentProofs(ctx context.Context, status *domain.PaymentProofStatus) ([]*domain.PaymentProof, error) {
	proofs, err := s.proofRepo.List(ctx, status)
	if err != nil {
		return nil, NewSubscriptionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return proofs, nil
}

// notifyApproval avisa o cliente; falhas apenas geram log
func (s *Service) notifyApproval(ctx context.Context, proof *domain.PaymentProof) {
	user, err := s.userRepo.GetUserByID(ctx, proof.UserID)
	if err != nil || user == nil {
		log.ForContext(ctx).WithField("user_id", proof.UserID).Warn("Usuário do comprovante não encontrado para notificação")
		return
	}

	body, err := render(subscriptionEmailTemplate, map[string]any{"Name": user.Name})
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao montar e-mail de assinatura")
		return
	}

	err = s.notifier.Send(ctx, domain.EmailMessage{
		To:       user.Email,
		Subject:  "Assinatura ativada",
		BodyHTML: body,
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", user.ID).Warn("Erro ao avisar cliente sobre a assinatura")
	}
}

func (s *Service) findUser(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, NewUserSubscriptionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, err.Error())
	}
	if user == nil {
		return nil, NewUserSubscriptionError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "")
	}
	return user, nil
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
