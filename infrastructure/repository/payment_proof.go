package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/loan-ledger-api/infrastructure/database/postgres"
	"github.com/vfg2006/loan-ledger-api/internal/domain"
)

//go:generate mockgen -source=payment_proof.go -destination=mocks/payment_proof.go -package=mocks

const (
	paymentProofsTable = "payment_proofs pp"
)

var paymentProofColumns = []string{
	"pp.id",
	"pp.user_id",
	"u.email",
	"pp.file_name",
	"pp.note",
	"pp.status",
	"pp.email_sent",
	"pp.created_at",
	"pp.approved_at",
}

type PaymentProofRepository interface {
	Create(ctx context.Context, proof *domain.PaymentProof) error
	GetByID(ctx context.Context, id string) (*domain.PaymentProof, error)
	List(ctx context.Context, status *domain.PaymentProofStatus) ([]*domain.PaymentProof, error)
	MarkEmailSent(ctx context.Context, id string) error
	Approve(ctx context.Context, id string, approvedAt time.Time) error
}

type paymentProofRepository struct {
	conn postgres.Conn
}

func NewPaymentProofRepository(conn postgres.Conn) PaymentProofRepository {
	return &paymentProofRepository{
		conn: conn,
	}
}

func (r *paymentProofRepository) Create(ctx context.Context, proof *domain.PaymentProof) error {
	query, args, err := squirrel.
		Insert("payment_proofs").
		Columns("id", "user_id", "file_name", "note", "status", "email_sent", "created_at").
		Values(proof.ID, proof.UserID, proof.FileName, proof.Note, string(proof.Status), proof.EmailSent, proof.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir inserção de comprovante")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao gravar comprovante")
	}

	return nil
}

// GetByID retorna nil quando o comprovante não existe
func (r *paymentProofRepository) GetByID(ctx context.Context, id string) (*domain.PaymentProof, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"pp.id": id}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de comprovante")
	}

	proof, err := scanPaymentProof(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar comprovante")
	}

	return proof, nil
}

func (r *paymentProofRepository) List(ctx context.Context, status *domain.PaymentProofStatus) ([]*domain.PaymentProof, error) {
	queryBuilder := r.selectBuilder().OrderBy("pp.created_at DESC")
	if status != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"pp.status": string(*status)})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir listagem de comprovantes")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar comprovantes")
	}
	defer rows.Close()

	proofs := make([]*domain.PaymentProof, 0)
	for rows.Next() {
		proof, err := scanPaymentProof(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler comprovante")
		}
		proofs = append(proofs, proof)
	}

	return proofs, errors.Wrap(rows.Err(), "erro durante iteração de comprovantes")
}

func (r *paymentProofRepository) MarkEmailSent(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Update("payment_proofs").
		Set("email_sent", true).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir atualização de comprovante")
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return errors.Wrap(err, "erro ao atualizar comprovante")
}

// Approve marca o comprovante como aprovado e ativa a assinatura do dono
// na mesma transação
func (r *paymentProofRepository) Approve(ctx context.Context, id string, approvedAt time.Time) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Update("payment_proofs").
			Set("status", string(domain.PaymentProofApproved)).
			Set("approved_at", approvedAt).
			Where(squirrel.Eq{"id": id}).
			Suffix("RETURNING user_id").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		var userID int
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&userID); err != nil {
			return err
		}

		query, args, err = squirrel.
			Update(usersTable).
			Set("is_subscribed", true).
			Set("subscribed_at", approvedAt).
			Set("updated_at", approvedAt).
			Where(squirrel.Eq{"id": userID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return errors.Wrap(err, "erro ao ativar assinatura")
		}

		return nil
	})
}

func (r *paymentProofRepository) selectBuilder() squirrel.SelectBuilder {
	return squirrel.
		Select(paymentProofColumns...).
		From(paymentProofsTable).
		Join("users u ON u.id = pp.user_id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanPaymentProof(row rowScanner) (*domain.PaymentProof, error) {
	var (
		proof      domain.PaymentProof
		status     string
		approvedAt sql.NullTime
	)

	err := row.Scan(
		&proof.ID,
		&proof.UserID,
		&proof.UserEmail,
		&proof.FileName,
		&proof.Note,
		&status,
		&proof.EmailSent,
		&proof.CreatedAt,
		&approvedAt,
	)
	if err != nil {
		return nil, err
	}

	proof.Status = domain.PaymentProofStatus(status)
	if approvedAt.Valid {
		t := approvedAt.Time
		proof.ApprovedAt = &t
	}

	return &proof, nil
}
