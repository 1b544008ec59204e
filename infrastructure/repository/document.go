package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/loan-ledger-api/infrastructure/database/postgres"
	"github.com/vfg2006/loan-ledger-api/internal/domain"
)

//go:generate mockgen -source=document.go -destination=mocks/document.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	documentsTable     = "documents"
	documentCellsTable = "document_cells"
)

var documentColumns = []string{
	"id",
	"client_id",
	"month",
	"year",
	"headers",
	"base_grid",
	"last_modified",
	"uploaded_at",
	"created_at",
}

type DocumentRepository interface {
	Find(ctx context.Context, clientID int, month domain.Month, year int) (*domain.Document, error)
	CreateIfAbsent(ctx context.Context, doc *domain.Document) error
	UpdateBase(ctx context.Context, documentID string, headers []string, grid domain.Grid) error
	UpsertCells(ctx context.Context, documentID string, edits []domain.CellEdit) error
	Delete(ctx context.Context, clientID int, month domain.Month, year int) (bool, error)
	ListByYear(ctx context.Context, clientID *int, year int) ([]*domain.Document, error)
	CountByClient(ctx context.Context, year int) ([]domain.ClientDocumentCount, error)
	AggregateByMonth(ctx context.Context, year int) ([]domain.MonthDocumentCount, error)
}

type documentRepository struct {
	conn postgres.Conn
}

func NewDocumentRepository(conn postgres.Conn) DocumentRepository {
	return &documentRepository{
		conn: conn,
	}
}

// Find retorna nil quando o documento não existe
func (r *documentRepository) Find(ctx context.Context, clientID int, month domain.Month, year int) (*domain.Document, error) {
	queryBuilder := squirrel.
		Select(documentColumns...).
		From(documentsTable).
		Where(squirrel.Eq{"client_id": clientID, "month": string(month), "year": year}).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de documento")
	}

	doc, err := scanDocument(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar documento")
	}

	overrides, err := r.loadOverrides(ctx, []string{doc.ID})
	if err != nil {
		return nil, err
	}
	doc.Overrides = overrides[doc.ID]

	return doc, nil
}

// CreateIfAbsent insere o documento; se já existir um para o mesmo
// cliente, mês e ano nada é alterado
func (r *documentRepository) CreateIfAbsent(ctx context.Context, doc *domain.Document) error {
	headers, err := json.Marshal(doc.Headers)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar cabeçalho")
	}

	grid, err := json.Marshal(doc.BaseGrid)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar grade")
	}

	now := time.Now().UTC()
	queryBuilder := squirrel.
		Insert(documentsTable).
		Columns("id", "client_id", "month", "year", "headers", "base_grid", "last_modified", "created_at").
		Values(doc.ID, doc.ClientID, string(doc.Month), doc.Year, headers, grid, now, now).
		Suffix("ON CONFLICT (client_id, month, year) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir inserção de documento")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao criar documento")
	}

	return nil
}

func (r *documentRepository) UpdateBase(ctx context.Context, documentID string, headers []string, grid domain.Grid) error {
	headersJSON, err := json.Marshal(headers)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar cabeçalho")
	}

	gridJSON, err := json.Marshal(grid)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar grade")
	}

	now := time.Now().UTC()
	queryBuilder := squirrel.
		Update(documentsTable).
		Set("headers", headersJSON).
		Set("base_grid", gridJSON).
		Set("uploaded_at", now).
		Set("last_modified", now).
		Where(squirrel.Eq{"id": documentID}).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir atualização de documento")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao atualizar documento")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "erro ao verificar atualização de documento")
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// UpsertCells grava as edições em uma única transação. Cada coordenada é
// gravada com ON CONFLICT, então a última escrita de cada célula prevalece.
// As edições não podem repetir coordenadas.
func (r *documentRepository) UpsertCells(ctx context.Context, documentID string, edits []domain.CellEdit) error {
	if len(edits) == 0 {
		return nil
	}

	now := time.Now().UTC()

	insert := squirrel.
		Insert(documentCellsTable).
		Columns("document_id", "row_idx", "col_idx", "value", "updated_at")
	for _, edit := range edits {
		insert = insert.Values(documentID, edit.Row, edit.Col, edit.Value, now)
	}

	cellsSQL, cellsArgs, err := insert.
		Suffix("ON CONFLICT (document_id, row_idx, col_idx) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir gravação de células")
	}

	touchSQL, touchArgs, err := squirrel.
		Update(documentsTable).
		Set("last_modified", now).
		Where(squirrel.Eq{"id": documentID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir atualização de documento")
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, cellsSQL, cellsArgs...); err != nil {
			return errors.Wrap(err, "erro ao gravar células")
		}

		result, err := tx.ExecContext(ctx, touchSQL, touchArgs...)
		if err != nil {
			return errors.Wrap(err, "erro ao atualizar documento")
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return errors.Wrap(err, "erro ao verificar atualização de documento")
		}
		if affected == 0 {
			return sql.ErrNoRows
		}

		return nil
	})
}

// Delete remove o documento e suas células. Retorna false quando não havia documento.
func (r *documentRepository) Delete(ctx context.Context, clientID int, month domain.Month, year int) (bool, error) {
	query, args, err := squirrel.
		Delete(documentsTable).
		Where(squirrel.Eq{"client_id": clientID, "month": string(month), "year": year}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "erro ao construir remoção de documento")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "erro ao remover documento")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "erro ao verificar remoção de documento")
	}

	return affected > 0, nil
}

// ListByYear retorna os documentos do ano com as sobrescritas carregadas.
// clientID nil lista os documentos de todos os clientes.
func (r *documentRepository) ListByYear(ctx context.Context, clientID *int, year int) ([]*domain.Document, error) {
	queryBuilder := squirrel.
		Select(documentColumns...).
		From(documentsTable).
		Where(squirrel.Eq{"year": year}).
		OrderBy("client_id ASC", "created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if clientID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"client_id": *clientID})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir listagem de documentos")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar documentos")
	}
	defer rows.Close()

	docs := make([]*domain.Document, 0)
	ids := make([]string, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler documento")
		}
		docs = append(docs, doc)
		ids = append(ids, doc.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração de documentos")
	}

	if len(docs) == 0 {
		return docs, nil
	}

	overrides, err := r.loadOverrides(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, doc := range docs {
		if o, ok := overrides[doc.ID]; ok {
			doc.Overrides = o
		}
	}

	return docs, nil
}

func (r *documentRepository) CountByClient(ctx context.Context, year int) ([]domain.ClientDocumentCount, error) {
	query, args, err := squirrel.
		Select("client_id", "COUNT(*)").
		From(documentsTable).
		Where(squirrel.Eq{"year": year}).
		GroupBy("client_id").
		OrderBy("client_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir contagem por cliente")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao contar documentos por cliente")
	}
	defer rows.Close()

	counts := make([]domain.ClientDocumentCount, 0)
	for rows.Next() {
		var c domain.ClientDocumentCount
		if err := rows.Scan(&c.ClientID, &c.Documents); err != nil {
			return nil, errors.Wrap(err, "erro ao ler contagem")
		}
		counts = append(counts, c)
	}

	return counts, errors.Wrap(rows.Err(), "erro durante iteração de contagem")
}

func (r *documentRepository) AggregateByMonth(ctx context.Context, year int) ([]domain.MonthDocumentCount, error) {
	query, args, err := squirrel.
		Select("month", "COUNT(*)").
		From(documentsTable).
		Where(squirrel.Eq{"year": year}).
		GroupBy("month").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir contagem por mês")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao contar documentos por mês")
	}
	defer rows.Close()

	byMonth := make(map[domain.Month]int)
	for rows.Next() {
		var month string
		var count int
		if err := rows.Scan(&month, &count); err != nil {
			return nil, errors.Wrap(err, "erro ao ler contagem")
		}
		byMonth[domain.Month(month)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração de contagem")
	}

	// Sempre os 12 meses, em ordem de calendário
	counts := make([]domain.MonthDocumentCount, 0, len(domain.Months))
	for _, month := range domain.Months {
		counts = append(counts, domain.MonthDocumentCount{Month: month, Documents: byMonth[month]})
	}

	return counts, nil
}

func (r *documentRepository) loadOverrides(ctx context.Context, documentIDs []string) (map[string]domain.Overrides, error) {
	query, args, err := squirrel.
		Select("document_id", "row_idx", "col_idx", "value").
		From(documentCellsTable).
		Where(squirrel.Eq{"document_id": documentIDs}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de células")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar células")
	}
	defer rows.Close()

	overrides := make(map[string]domain.Overrides, len(documentIDs))
	for _, id := range documentIDs {
		overrides[id] = domain.NewOverrides()
	}

	for rows.Next() {
		var (
			documentID string
			row, col   int
			value      string
		)
		if err := rows.Scan(&documentID, &row, &col, &value); err != nil {
			return nil, errors.Wrap(err, "erro ao ler célula")
		}

		o := overrides[documentID]
		if err := o.Set(row, col, value); err != nil {
			return nil, errors.Wrapf(err, "célula inválida no documento %s", documentID)
		}
		overrides[documentID] = o
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração de células")
	}

	return overrides, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDocument(row rowScanner) (*domain.Document, error) {
	var (
		doc        domain.Document
		month      string
		headers    []byte
		grid       []byte
		uploadedAt sql.NullTime
	)

	err := row.Scan(
		&doc.ID,
		&doc.ClientID,
		&month,
		&doc.Year,
		&headers,
		&grid,
		&doc.LastModified,
		&uploadedAt,
		&doc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	doc.Month = domain.Month(month)
	if uploadedAt.Valid {
		doc.UploadedAt = uploadedAt.Time
	}

	if err := json.Unmarshal(headers, &doc.Headers); err != nil {
		return nil, errors.Wrap(err, "cabeçalho inválido")
	}

	if err := json.Unmarshal(grid, &doc.BaseGrid); err != nil {
		return nil, errors.Wrap(err, "grade inválida")
	}

	doc.Overrides = domain.NewOverrides()

	return &doc, nil
}
