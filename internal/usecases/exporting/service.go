package exporting

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/vfg2006/loan-ledger-api/infrastructure/repository"
	"github.com/vfg2006/loan-ledger-api/internal/config"
	"github.com/vfg2006/loan-ledger-api/internal/domain"
	"github.com/vfg2006/loan-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/loan-ledger-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
)

type Exporter interface {
	ExportDocument(ctx context.Context, clientID int, month domain.Month, year int, format domain.ExportFormat) (*domain.ExportFile, error)
	ExportYear(ctx context.Context, clientID int, year int) (*domain.ExportFile, error)
	RunBackup(ctx context.Context, year int, trigger string) (*domain.BackupInfo, error)
	LastBackup() *domain.BackupInfo
}

type SheetEncoder interface {
	Encode(w io.Writer, sheets []domain.Sheet) error
}

type PDFRenderer interface {
	Render(title string, sheet domain.Sheet) ([]byte, error)
}

type Service struct {
	documentRepo repository.DocumentRepository
	encoder      SheetEncoder
	pdf          PDFRenderer
	registry     *BackupRegistry
	backupDir    string
	now          func() time.Time
}

func NewService(
	documentRepo repository.DocumentRepository,
	encoder SheetEncoder,
	pdf PDFRenderer,
	registry *BackupRegistry,
	cfg config.Backup,
) *Service {
	return &Service{
		documentRepo: documentRepo,
		encoder:      encoder,
		pdf:          pdf,
		registry:     registry,
		backupDir:    cfg.Dir,
		now:          time.Now,
	}
}

// ExportDocument gera o arquivo da grade mesclada do mês. Um mês ainda não
// criado é exportado com o cabeçalho canônico e grade vazia, sem gravar nada.
func (s *Service) ExportDocument(ctx context.Context, clientID int, month domain.Month, year int, format domain.ExportFormat) (*domain.ExportFile, error) {
	if format == "" {
		format = domain.ExportXLSX
	}
	if format != domain.ExportXLSX && format != domain.ExportPDF {
		return nil, NewExportError(ErrUnsupportedFormat, apiErrors.ErrInvalidFormat, string(format))
	}

	doc, err := s.documentRepo.Find(ctx, clientID, month, year)
	if err != nil {
		return nil, NewExportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if doc == nil {
		doc = domain.NewDocument(clientID, month, year)
	}

	sheet := sheetOf(doc)
	baseName := fmt.Sprintf("planilla_%s_%d", month, year)

	if format == domain.ExportPDF {
		content, err := s.pdf.Render(fmt.Sprintf("%s %d", month, year), sheet)
		if err != nil {
			return nil, NewExportError(ErrRenderFailed, apiErrors.ErrInternalServer, err.Error())
		}

		return &domain.ExportFile{
			FileName:    baseName + ".pdf",
			ContentType: pdfContentType,
			Content:     content,
		}, nil
	}

	var buf bytes.Buffer
	if err := s.encoder.Encode(&buf, []domain.Sheet{sheet}); err != nil {
		return nil, NewExportError(ErrRenderFailed, apiErrors.ErrInternalServer, err.Error())
	}

	return &domain.ExportFile{
		FileName:    baseName + ".xlsx",
		ContentType: xlsxContentType,
		Content:     buf.Bytes(),
	}, nil
}

// ExportYear gera uma planilha com uma aba por mês existente, em ordem de calendário
func (s *Service) ExportYear(ctx context.Context, clientID int, year int) (*domain.ExportFile, error) {
	docs, err := s.documentRepo.ListByYear(ctx, &clientID, year)
	if err != nil {
		return nil, NewExportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if len(docs) == 0 {
		return nil, NewExportError(ErrNoDocuments, apiErrors.ErrDocumentNotFound, strconv.Itoa(year))
	}

	content, err := s.encodeYear(docs)
	if err != nil {
		return nil, NewExportError(ErrRenderFailed, apiErrors.ErrInternalServer, err.Error())
	}

	return &domain.ExportFile{
		FileName:    fmt.Sprintf("planillas_%d.xlsx", year),
		ContentType: xlsxContentType,
		Content:     content,
	}, nil
}

// RunBackup grava a planilha anual de cada cliente em
// <backupDir>/<clientID>/planillas_<ano>.xlsx. Falhas de um cliente não
// interrompem os demais e ficam registradas em Failures.
func (s *Service) RunBackup(ctx context.Context, year int, trigger string) (*domain.BackupInfo, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"year":    year,
		"trigger": trigger,
	})

	info := domain.BackupInfo{
		Year:      year,
		StartedAt: s.now().UTC(),
		Trigger:   trigger,
		Files:     make([]string, 0),
		Failures:  make([]string, 0),
	}

	docs, err := s.documentRepo.ListByYear(ctx, nil, year)
	if err != nil {
		return nil, NewExportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	byClient := make(map[int][]*domain.Document)
	for _, doc := range docs {
		byClient[doc.ClientID] = append(byClient[doc.ClientID], doc)
	}

	clientIDs := make([]int, 0, len(byClient))
	for clientID := range byClient {
		clientIDs = append(clientIDs, clientID)
	}
	sort.Ints(clientIDs)

	for _, clientID := range clientIDs {
		if ctx.Err() != nil {
			info.Failures = append(info.Failures, fmt.Sprintf("cliente %d: %v", clientID, ctx.Err()))
			continue
		}

		clientDocs := byClient[clientID]

		path, err := s.writeBackup(clientID, year, clientDocs)
		if err != nil {
			logger.WithError(err).WithField("user_id", clientID).Error("Erro ao gravar backup do cliente")
			info.Failures = append(info.Failures, fmt.Sprintf("cliente %d: %v", clientID, err))
			continue
		}

		info.Clients++
		info.Documents += len(clientDocs)
		info.Files = append(info.Files, path)
	}

	info.CompletedAt = s.now().UTC()
	s.registry.Record(info)

	logger.WithFields(log.Fields{
		"clients":   info.Clients,
		"documents": info.Documents,
		"failures":  len(info.Failures),
		"duration":  info.CompletedAt.Sub(info.StartedAt).String(),
	}).Info("Backup de planilhas concluído")

	return &info, nil
}

func (s *Service) LastBackup() *domain.BackupInfo {
	return s.registry.Last()
}

func (s *Service) writeBackup(clientID int, year int, docs []*domain.Document) (string, error) {
	content, err := s.encodeYear(docs)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(s.backupDir, strconv.Itoa(clientID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("planillas_%d.xlsx", year))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", err
	}

	return path, nil
}

func (s *Service) encodeYear(docs []*domain.Document) ([]byte, error) {
	ordered := make([]*domain.Document, len(docs))
	copy(ordered, docs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Month.Index() < ordered[j].Month.Index()
	})

	sheets := make([]domain.Sheet, 0, len(ordered))
	for _, doc := range ordered {
		sheets = append(sheets, sheetOf(doc))
	}

	var buf bytes.Buffer
	if err := s.encoder.Encode(&buf, sheets); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func sheetOf(doc *domain.Document) domain.Sheet {
	return domain.Sheet{
		Name:    string(doc.Month),
		Headers: doc.Headers,
		Rows:    doc.Merged(),
	}
}
