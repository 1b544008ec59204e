package documenting

import (
	"context"
	"io"
	"sort"

	"github.com/vfg2006/loan-ledger-api/infrastructure/repository"
	"github.com/vfg2006/loan-ledger-api/internal/domain"
	"github.com/vfg2006/loan-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/loan-ledger-api/pkg/log"
	"github.com/vfg2006/loan-ledger-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Documenter define o ciclo de vida das planilhas mensais de um cliente
type Documenter interface {
	GetOrCreate(ctx context.Context, clientID int, month domain.Month, year int) (*domain.Document, error)
	Get(ctx context.Context, clientID int, month domain.Month, year int) (*domain.MergedDocument, error)
	Replace(ctx context.Context, clientID int, month domain.Month, year int, headers []string, rows domain.Grid) (*domain.MergedDocument, error)
	Import(ctx context.Context, clientID int, month domain.Month, year int, workbook io.Reader) (*domain.MergedDocument, error)
	ApplyCellEdit(ctx context.Context, clientID int, month domain.Month, year int, edit domain.CellEdit) (*domain.MergedDocument, error)
	ApplyBulkEdits(ctx context.Context, clientID int, month domain.Month, year int, edits []domain.CellEdit) (*domain.MergedDocument, error)
	Delete(ctx context.Context, clientID int, month domain.Month, year int) error
	List(ctx context.Context, clientID int, year int) ([]*domain.DocumentSummary, error)
	Stats(ctx context.Context, year int) (*domain.DocumentStats, error)
}

// SheetDecoder lê uma planilha enviada pelo cliente
type SheetDecoder interface {
	Decode(r io.Reader) ([]string, domain.Grid, error)
}

// CacheInvalidator descarta agregações calculadas para o cliente e ano
type CacheInvalidator interface {
	Invalidate(ctx context.Context, clientID int, year int)
}

type Service struct {
	documentRepo repository.DocumentRepository
	decoder      SheetDecoder
	invalidator  CacheInvalidator
	generateID   func() (string, error)
}

func NewService(documentRepo repository.DocumentRepository, decoder SheetDecoder) *Service {
	return &Service{
		documentRepo: documentRepo,
		decoder:      decoder,
		generateID:   utils.GenerateID,
	}
}

// WithInvalidator liga a invalidação do cache do painel às mutações
func (s *Service) WithInvalidator(invalidator CacheInvalidator) *Service {
	s.invalidator = invalidator
	return s
}

// GetOrCreate retorna o documento do mês, criando-o com o cabeçalho canônico
// e a grade vazia padrão quando ainda não existe. Chamadas concorrentes
// resultam em um único documento.
func (s *Service) GetOrCreate(ctx context.Context, clientID int, month domain.Month, year int) (*domain.Document, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}

	doc, err := s.documentRepo.Find(ctx, clientID, month, year)
	if err != nil {
		return nil, NewDocumentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if doc != nil {
		return doc, nil
	}

	id, err := s.generateID()
	if err != nil {
		return nil, NewDocumentError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	doc = domain.NewDocument(clientID, month, year)
	doc.ID = id

	if err := s.documentRepo.CreateIfAbsent(ctx, doc); err != nil {
		return nil, NewDocumentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	// Outra requisição pode ter criado o documento antes; vale o que está gravado
	doc, err = s.documentRepo.Find(ctx, clientID, month, year)
	if err != nil {
		return nil, NewDocumentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if doc == nil {
		return nil, NewDocumentError(ErrDocumentNotFound, apiErrors.ErrDocumentNotFound, "documento não encontrado após criação")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id": clientID,
		"month":   month,
		"year":    year,
	}).Info("Documento criado")

	return doc, nil
}

func (s *Service) Get(ctx context.Context, clientID int, month domain.Month, year int) (*domain.MergedDocument, error) {
	doc, err := s.GetOrCreate(ctx, clientID, month, year)
	if err != nil {
		return nil, err
	}

	return doc.View(), nil
}

// Replace substitui cabeçalho e grade base. As linhas são ajustadas para a
// largura do cabeçalho e as sobrescritas existentes são mantidas.
func (s *Service) Replace(ctx context.Context, clientID int, month domain.Month, year int, headers []string, rows domain.Grid) (*domain.MergedDocument, error) {
	if len(headers) == 0 {
		return nil, NewDocumentError(ErrInvalidHeaders, apiErrors.ErrInvalidRequest, "o cabeçalho não pode ser vazio")
	}

	doc, err := s.GetOrCreate(ctx, clientID, month, year)
	if err != nil {
		return nil, err
	}

	grid := rows.Normalize(len(headers))

	if err := s.documentRepo.UpdateBase(ctx, doc.ID, headers, grid); err != nil {
		return nil, NewDocumentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	s.invalidate(ctx, clientID, year)

	return s.reload(ctx, clientID, month, year)
}

// Import lê a planilha enviada e substitui o conteúdo do documento
func (s *Service) Import(ctx context.Context, clientID int, month domain.Month, year int, workbook io.Reader) (*domain.MergedDocument, error) {
	headers, rows, err := s.decoder.Decode(workbook)
	if err != nil {
		return nil, NewDocumentError(ErrInvalidWorkbook, apiErrors.ErrInvalidFormat, err.Error())
	}

	return s.Replace(ctx, clientID, month, year, headers, rows)
}

func (s *Service) ApplyCellEdit(ctx context.Context, clientID int, month domain.Month, year int, edit domain.CellEdit) (*domain.MergedDocument, error) {
	return s.ApplyBulkEdits(ctx, clientID, month, year, []domain.CellEdit{edit})
}

// ApplyBulkEdits aplica as edições na ordem recebida. Dentro do lote a
// última edição de uma célula prevalece. Uma coordenada inválida rejeita o lote.
func (s *Service) ApplyBulkEdits(ctx context.Context, clientID int, month domain.Month, year int, edits []domain.CellEdit) (*domain.MergedDocument, error) {
	if len(edits) == 0 {
		return nil, NewDocumentError(ErrInvalidEdit, apiErrors.ErrMissingRequiredData, "nenhuma edição informada")
	}

	batch, err := domain.OverridesFrom(edits)
	if err != nil {
		return nil, NewDocumentError(ErrInvalidEdit, apiErrors.ErrInvalidRequest, err.Error())
	}

	doc, err := s.GetOrCreate(ctx, clientID, month, year)
	if err != nil {
		return nil, err
	}

	if err := s.documentRepo.UpsertCells(ctx, doc.ID, batch.Edits()); err != nil {
		return nil, NewDocumentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	s.invalidate(ctx, clientID, year)

	return s.reload(ctx, clientID, month, year)
}

// Delete remove o documento do mês. Retorna ErrDocumentNotFound quando não existe.
func (s *Service) Delete(ctx context.Context, clientID int, month domain.Month, year int) error {
	deleted, err := s.documentRepo.Delete(ctx, clientID, month, year)
	if err != nil {
		return NewDocumentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if !deleted {
		return NewDocumentError(ErrDocumentNotFound, apiErrors.ErrDocumentNotFound, string(month))
	}

	s.invalidate(ctx, clientID, year)

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id": clientID,
		"month":   month,
		"year":    year,
	}).Info("Documento removido")

	return nil
}

// List resume os documentos do cliente no ano, em ordem de calendário
func (s *Service) List(ctx context.Context, clientID int, year int) ([]*domain.DocumentSummary, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}

	docs, err := s.documentRepo.ListByYear(ctx, &clientID, year)
	if err != nil {
		return nil, NewDocumentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	summaries := make([]*domain.DocumentSummary, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, &domain.DocumentSummary{
			ID:            doc.ID,
			Month:         doc.Month,
			Year:          doc.Year,
			RowCount:      len(doc.BaseGrid),
			OverrideCount: doc.Overrides.Len(),
			LastModified:  doc.LastModified,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Month.Index() < summaries[j].Month.Index()
	})

	return summaries, nil
}

// Stats conta os documentos do ano por cliente e por mês
func (s *Service) Stats(ctx context.Context, year int) (*domain.DocumentStats, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}

	byClient, err := s.documentRepo.CountByClient(ctx, year)
	if err != nil {
		return nil, NewDocumentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	byMonth, err := s.documentRepo.AggregateByMonth(ctx, year)
	if err != nil {
		return nil, NewDocumentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return &domain.DocumentStats{
		Year:     year,
		ByClient: byClient,
		ByMonth:  byMonth,
	}, nil
}

func (s *Service) reload(ctx context.Context, clientID int, month domain.Month, year int) (*domain.MergedDocument, error) {
	doc, err := s.documentRepo.Find(ctx, clientID, month, year)
	if err != nil {
		return nil, NewDocumentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if doc == nil {
		return nil, NewDocumentError(ErrDocumentNotFound, apiErrors.ErrDocumentNotFound, string(month))
	}

	return doc.View(), nil
}

func (s *Service) invalidate(ctx context.Context, clientID int, year int) {
	if s.invalidator == nil {
		return
	}
	s.invalidator.Invalidate(ctx, clientID, year)
}

func validateYear(year int) error {
	if year < 2000 || year > 2100 {
		return NewDocumentError(ErrInvalidYear, apiErrors.ErrInvalidRequest, "o ano deve estar entre 2000 e 2100")
	}
	return nil
}
