package notification

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/loan-ledger-api/internal/config"
	"github.com/vfg2006/loan-ledger-api/internal/domain"
	"github.com/vfg2006/loan-ledger-api/pkg/log"
)

// ErrNotConfigured indica que SMTP_HOST não foi definido
var ErrNotConfigured = errors.New("servidor smtp não configurado")

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTP envia e-mails HTML com um anexo opcional
type SMTP struct {
	cfg  config.SMTP
	send sendFunc
	now  func() time.Time
}

func NewSMTP(cfg config.SMTP) *SMTP {
	return &SMTP{
		cfg:  cfg,
		send: smtp.SendMail,
		now:  time.Now,
	}
}

func (s *SMTP) Send(ctx context.Context, msg domain.EmailMessage) error {
	if s.cfg.Host == "" {
		log.ForContext(ctx).WithField("to", msg.To).Warn("SMTP não configurado, e-mail descartado")
		return ErrNotConfigured
	}
	if msg.To == "" {
		return errors.New("destinatário vazio")
	}

	body, err := s.build(msg)
	if err != nil {
		return errors.Wrap(err, "erro ao montar e-mail")
	}

	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	}

	addr := s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port)
	if err := s.send(addr, auth, s.cfg.From, []string{msg.To}, body); err != nil {
		return errors.Wrapf(err, "erro ao enviar e-mail para %s", msg.To)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"to":      msg.To,
		"subject": msg.Subject,
	}).Info("E-mail enviado")

	return nil
}

// build monta a mensagem multipart/mixed com o corpo HTML e o anexo
func (s *SMTP) build(msg domain.EmailMessage) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", s.now().Format(time.RFC1123Z))
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", writer.Boundary())

	htmlPart, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {"text/html; charset=utf-8"},
		"Content-Transfer-Encoding": {"quoted-printable"},
	})
	if err != nil {
		return nil, err
	}
	if err := writeQuotedPrintable(htmlPart, msg.BodyHTML); err != nil {
		return nil, err
	}

	if msg.Attachment != nil {
		contentType := msg.Attachment.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		filePart, err := writer.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {contentType},
			"Content-Transfer-Encoding": {"base64"},
			"Content-Disposition":       {mime.FormatMediaType("attachment", map[string]string{"filename": msg.Attachment.FileName})},
		})
		if err != nil {
			return nil, err
		}
		if err := writeBase64(filePart, msg.Attachment.Content); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
