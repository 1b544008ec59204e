package notification

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/loan-ledger-api/internal/config"
	"github.com/vfg2006/loan-ledger-api/internal/domain"
)

type captured struct {
	addr string
	auth smtp.Auth
	from string
	to   []string
	msg  []byte
}

func newTestSMTP(cfg config.SMTP) (*SMTP, *captured) {
	c := &captured{}
	s := NewSMTP(cfg)
	s.now = func() time.Time { return time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC) }
	s.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		c.addr, c.auth, c.from, c.to, c.msg = addr, a, from, to, msg
		return nil
	}
	return s, c
}

func TestSMTP_Send(t *testing.T) {
	ctx := context.Background()
	cfg := config.SMTP{Host: "smtp.prestamos.pe", Port: 587, User: "bot", Password: "x", From: "bot@prestamos.pe"}

	t.Run("Mensagem com anexo", func(t *testing.T) {
		s, c := newTestSMTP(cfg)

		err := s.Send(ctx, domain.EmailMessage{
			To:       "admin@prestamos.pe",
			Subject:  "Comprovante de pagamento",
			BodyHTML: "<p>Olá</p>",
			Attachment: &domain.Attachment{
				FileName:    "voucher.pdf",
				ContentType: "application/pdf",
				Content:     []byte("%PDF-1.4"),
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "smtp.prestamos.pe:587", c.addr)
		assert.NotNil(t, c.auth)
		assert.Equal(t, "bot@prestamos.pe", c.from)
		assert.Equal(t, []string{"admin@prestamos.pe"}, c.to)

		msg := string(c.msg)
		assert.Contains(t, msg, "To: admin@prestamos.pe\r\n")
		assert.Contains(t, msg, "multipart/mixed")
		assert.Contains(t, msg, "text/html; charset=utf-8")
		assert.Contains(t, msg, `attachment; filename=voucher.pdf`)
		assert.Contains(t, msg, "JVBERi0xLjQ=")
	})

	t.Run("Sem autenticação quando não há usuário", func(t *testing.T) {
		noAuth := cfg
		noAuth.User = ""
		s, c := newTestSMTP(noAuth)

		require.NoError(t, s.Send(ctx, domain.EmailMessage{To: "a@b.pe", BodyHTML: "oi"}))
		assert.Nil(t, c.auth)
		assert.False(t, strings.Contains(string(c.msg), "base64"))
	})

	t.Run("Sem host configurado", func(t *testing.T) {
		s, _ := newTestSMTP(config.SMTP{})

		err := s.Send(ctx, domain.EmailMessage{To: "a@b.pe"})

		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("Falha no envio", func(t *testing.T) {
		s, _ := newTestSMTP(cfg)
		s.send = func(string, smtp.Auth, string, []string, []byte) error {
			return errors.New("conexão recusada")
		}

		err := s.Send(ctx, domain.EmailMessage{To: "a@b.pe"})

		assert.ErrorContains(t, err, "conexão recusada")
	})
}

func TestWriteBase64_QuebraLinhas(t *testing.T) {
	var sb strings.Builder

	require.NoError(t, writeBase64(&sb, make([]byte, 120)))

	lines := strings.Split(strings.TrimSuffix(sb.String(), "\r\n"), "\r\n")
	require.Len(t, lines, 3)
	assert.Len(t, lines[0], base64LineLength)
}
