package documenting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/loan-ledger-api/infrastructure/repository/mocks"
	"github.com/vfg2006/loan-ledger-api/internal/domain"
	docmocks "github.com/vfg2006/loan-ledger-api/internal/usecases/documenting/mocks"
	"github.com/vfg2006/loan-ledger-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const (
	testClientID = 7
	testYear     = 2026
)

func newTestService(t *testing.T) (*Service, *mocks.MockDocumentRepository, *docmocks.MockSheetDecoder, *docmocks.MockCacheInvalidator) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockDocumentRepository(ctrl)
	decoder := docmocks.NewMockSheetDecoder(ctrl)
	invalidator := docmocks.NewMockCacheInvalidator(ctrl)

	service := NewService(repo, decoder).WithInvalidator(invalidator)
	service.generateID = func() (string, error) { return "doc-1", nil }

	return service, repo, decoder, invalidator
}

func storedDocument() *domain.Document {
	doc := domain.NewDocument(testClientID, domain.March, testYear)
	doc.ID = "doc-1"
	doc.LastModified = time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	return doc
}

func TestService_GetOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Documento existente é retornado sem criação", func(t *testing.T) {
		service, repo, _, _ := newTestService(t)
		existing := storedDocument()

		repo.EXPECT().Find(ctx, testClientID, domain.March, testYear).Return(existing, nil)

		doc, err := service.GetOrCreate(ctx, testClientID, domain.March, testYear)

		require.NoError(t, err)
		assert.Same(t, existing, doc)
	})

	t.Run("Documento ausente é criado com cabeçalho canônico e grade 50x11", func(t *testing.T) {
		service, repo, _, _ := newTestService(t)

		var created *domain.Document
		gomock.InOrder(
			repo.EXPECT().Find(ctx, testClientID, domain.March, testYear).Return(nil, nil),
			repo.EXPECT().CreateIfAbsent(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, doc *domain.Document) error {
				created = doc
				return nil
			}),
			repo.EXPECT().Find(ctx, testClientID, domain.March, testYear).DoAndReturn(
				func(context.Context, int, domain.Month, int) (*domain.Document, error) {
					return created, nil
				}),
		)

		doc, err := service.GetOrCreate(ctx, testClientID, domain.March, testYear)

		require.NoError(t, err)
		assert.Equal(t, "doc-1", doc.ID)
		assert.Equal(t, domain.CanonicalHeaders, doc.Headers)
		assert.Len(t, doc.BaseGrid, domain.DefaultGridRows)
		assert.Len(t, doc.BaseGrid[0], domain.DefaultGridCols)
	})

	t.Run("Criação concorrente devolve o documento já gravado", func(t *testing.T) {
		service, repo, _, _ := newTestService(t)
		winner := storedDocument()
		winner.ID = "outro"

		gomock.InOrder(
			repo.EXPECT().Find(ctx, testClientID, domain.March, testYear).Return(nil, nil),
			repo.EXPECT().CreateIfAbsent(ctx, gomock.Any()).Return(nil),
			repo.EXPECT().Find(ctx, testClientID, domain.March, testYear).Return(winner, nil),
		)

		doc, err := service.GetOrCreate(ctx, testClientID, domain.March, testYear)

		require.NoError(t, err)
		assert.Equal(t, "outro", doc.ID)
	})

	t.Run("Ano fora do intervalo", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		_, err := service.GetOrCreate(ctx, testClientID, domain.March, 1800)

		assert.ErrorIs(t, err, ErrInvalidYear)
	})

	t.Run("Erro do banco", func(t *testing.T) {
		service, repo, _, _ := newTestService(t)

		repo.EXPECT().Find(ctx, testClientID, domain.March, testYear).Return(nil, errors.New("conexão perdida"))

		_, err := service.GetOrCreate(ctx, testClientID, domain.March, testYear)

		var docErr *DocumentError
		require.ErrorAs(t, err, &docErr)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, docErr.Code)
	})
}

func TestService_Get_MergesOverrides(t *testing.T) {
	ctx := context.Background()
	service, repo, _, _ := newTestService(t)

	doc := storedDocument()
	doc.BaseGrid[2][3] = domain.TextCell("X")
	require.NoError(t, doc.Overrides.Set(2, 3, "Y"))

	repo.EXPECT().Find(ctx, testClientID, domain.March, testYear).Return(doc, nil)

	view, err := service.Get(ctx, testClientID, domain.March, testYear)

	require.NoError(t, err)
	assert.Equal(t, "Y", view.Rows[2][3].String())
	assert.Equal(t, 1, view.OverrideCount)
	assert.Equal(t, "X", doc.BaseGrid[2][3].String())
}

func TestService_Replace(t *testing.T) {
	ctx := context.Background()

	t.Run("Linhas são ajustadas à largura do cabeçalho e sobrescritas permanecem", func(t *testing.T) {
		service, repo, _, invalidator := newTestService(t)
		doc := storedDocument()
		require.NoError(t, doc.Overrides.Set(0, 0, "editado"))

		headers := []string{"Fecha", "Mes", "DNI"}
		rows := domain.GridFromStrings([][]string{{"a"}, {"a", "b", "c", "d"}})

		repo.EXPECT().Find(ctx, testClientID, domain.March, testYear).Return(doc, nil).Times(2)
		repo.EXPECT().UpdateBase(ctx, "doc-1", headers, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, h []string, grid domain.Grid) error {
				assert.Equal(t, [][]string{{"a", "", ""}, {"a", "b", "c"}}, grid.Strings())
				doc.Headers = h
				doc.BaseGrid = grid
				return nil
			})
		invalidator.EXPECT().Invalidate(ctx, testClientID, testYear)

		view, err := service.Replace(ctx, testClientID, domain.March, testYear, headers, rows)

		require.NoError(t, err)
		assert.Equal(t, headers, view.Headers)
		assert.Equal(t, "editado", view.Rows[0][0].String())
		assert.Equal(t, "a", view.Rows[1][0].String())
	})

	t.Run("Cabeçalho vazio é rejeitado", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		_, err := service.Replace(ctx, testClientID, domain.March, testYear, nil, nil)

		assert.ErrorIs(t, err, ErrInvalidHeaders)
		assert.True(t, IsValidationError(err))
	})
}

func TestService_Import(t *testing.T) {
	ctx := context.Background()

	t.Run("Planilha inválida", func(t *testing.T) {
		service, _, decoder, _ := newTestService(t)

		decoder.EXPECT().Decode(gomock.Any()).Return(nil, nil, errors.New("zip: not a valid zip file"))

		_, err := service.Import(ctx, testClientID, domain.March, testYear, strings.NewReader("lixo"))

		var docErr *DocumentError
		require.ErrorAs(t, err, &docErr)
		assert.ErrorIs(t, err, ErrInvalidWorkbook)
		assert.Equal(t, apiErrors.ErrInvalidFormat, docErr.Code)
	})

	t.Run("Planilha válida substitui a grade", func(t *testing.T) {
		service, repo, decoder, invalidator := newTestService(t)
		doc := storedDocument()

		decoder.EXPECT().Decode(gomock.Any()).Return(
			domain.CanonicalHeaders,
			domain.GridFromStrings([][]string{{"2026-03-05", "", "123"}}),
			nil,
		)
		repo.EXPECT().Find(ctx, testClientID, domain.March, testYear).Return(doc, nil).Times(2)
		repo.EXPECT().UpdateBase(ctx, "doc-1", domain.CanonicalHeaders, gomock.Any()).Return(nil)
		invalidator.EXPECT().Invalidate(ctx, testClientID, testYear)

		_, err := service.Import(ctx, testClientID, domain.March, testYear, strings.NewReader("xlsx"))

		require.NoError(t, err)
	})
}

func TestService_ApplyBulkEdits(t *testing.T) {
	ctx := context.Background()

	t.Run("Última edição da mesma célula prevalece", func(t *testing.T) {
		service, repo, _, invalidator := newTestService(t)
		doc := storedDocument()

		repo.EXPECT().Find(ctx, testClientID, domain.March, testYear).Return(doc, nil).Times(2)
		repo.EXPECT().UpsertCells(ctx, "doc-1", []domain.CellEdit{
			{Row: 0, Col: 0, Value: "B"},
			{Row: 1, Col: 2, Value: "C"},
		}).DoAndReturn(func(_ context.Context, _ string, edits []domain.CellEdit) error {
			return doc.Overrides.Apply(edits)
		})
		invalidator.EXPECT().Invalidate(ctx, testClientID, testYear)

		view, err := service.ApplyBulkEdits(ctx, testClientID, domain.March, testYear, []domain.CellEdit{
			{Row: 1, Col: 2, Value: "C"},
			{Row: 0, Col: 0, Value: "A"},
			{Row: 0, Col: 0, Value: "B"},
		})

		require.NoError(t, err)
		assert.Equal(t, "B", view.Rows[0][0].String())
		assert.Equal(t, "C", view.Rows[1][2].String())
	})

	t.Run("Coordenada negativa rejeita o lote", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		_, err := service.ApplyBulkEdits(ctx, testClientID, domain.March, testYear, []domain.CellEdit{
			{Row: 0, Col: 0, Value: "ok"},
			{Row: -1, Col: 0, Value: "x"},
		})

		assert.ErrorIs(t, err, ErrInvalidEdit)
	})

	t.Run("Lote vazio", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		_, err := service.ApplyBulkEdits(ctx, testClientID, domain.March, testYear, nil)

		assert.ErrorIs(t, err, ErrInvalidEdit)
	})

	t.Run("Edição fora da grade é aceita e ignorada na leitura", func(t *testing.T) {
		service, repo, _, invalidator := newTestService(t)
		doc := storedDocument()

		repo.EXPECT().Find(ctx, testClientID, domain.March, testYear).Return(doc, nil).Times(2)
		repo.EXPECT().UpsertCells(ctx, "doc-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, edits []domain.CellEdit) error {
			return doc.Overrides.Apply(edits)
		})
		invalidator.EXPECT().Invalidate(ctx, testClientID, testYear)

		view, err := service.ApplyCellEdit(ctx, testClientID, domain.March, testYear, domain.CellEdit{Row: 500, Col: 3, Value: "longe"})

		require.NoError(t, err)
		assert.Len(t, view.Rows, domain.DefaultGridRows)
		assert.Equal(t, 1, view.OverrideCount)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Documento removido", func(t *testing.T) {
		service, repo, _, invalidator := newTestService(t)

		repo.EXPECT().Delete(ctx, testClientID, domain.March, testYear).Return(true, nil)
		invalidator.EXPECT().Invalidate(ctx, testClientID, testYear)

		assert.NoError(t, service.Delete(ctx, testClientID, domain.March, testYear))
	})

	t.Run("Documento inexistente", func(t *testing.T) {
		service, repo, _, _ := newTestService(t)

		repo.EXPECT().Delete(ctx, testClientID, domain.March, testYear).Return(false, nil)

		err := service.Delete(ctx, testClientID, domain.March, testYear)

		var docErr *DocumentError
		require.ErrorAs(t, err, &docErr)
		assert.ErrorIs(t, err, ErrDocumentNotFound)
		assert.Equal(t, apiErrors.ErrDocumentNotFound, docErr.Code)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	service, repo, _, _ := newTestService(t)

	june := domain.NewDocument(testClientID, domain.June, testYear)
	june.ID = "jun"
	january := domain.NewDocument(testClientID, domain.January, testYear)
	january.ID = "jan"
	require.NoError(t, january.Overrides.Set(0, 0, "x"))

	clientID := testClientID
	repo.EXPECT().ListByYear(ctx, &clientID, testYear).Return([]*domain.Document{june, january}, nil)

	summaries, err := service.List(ctx, testClientID, testYear)

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, domain.January, summaries[0].Month)
	assert.Equal(t, 1, summaries[0].OverrideCount)
	assert.Equal(t, domain.June, summaries[1].Month)
	assert.Equal(t, domain.DefaultGridRows, summaries[1].RowCount)
}

func TestService_Stats(t *testing.T) {
	ctx := context.Background()
	service, repo, _, _ := newTestService(t)

	repo.EXPECT().CountByClient(ctx, testYear).Return([]domain.ClientDocumentCount{{ClientID: 7, Documents: 3}}, nil)
	repo.EXPECT().AggregateByMonth(ctx, testYear).Return([]domain.MonthDocumentCount{{Month: domain.March, Documents: 3}}, nil)

	stats, err := service.Stats(ctx, testYear)

	require.NoError(t, err)
	assert.Equal(t, testYear, stats.Year)
	assert.Equal(t, 3, stats.ByClient[0].Documents)
	assert.Equal(t, domain.March, stats.ByMonth[0].Month)
}
