package summarizing

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/loan-ledger-api/infrastructure/repository"
	"github.com/vfg2006/loan-ledger-api/internal/domain"
	"github.com/vfg2006/loan-ledger-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrDatabaseOperation indica falha ao carregar os documentos do painel
var ErrDatabaseOperation = errors.New("erro ao carregar documentos do painel")

type Summarizer interface {
	Full(ctx context.Context, scope domain.DashboardScope) (*domain.Aggregation, error)
	Summary(ctx context.Context, scope domain.DashboardScope) (*domain.Summary, error)
	ByMonths(ctx context.Context, scope domain.DashboardScope) ([]domain.MonthBucket, error)
	ByProducts(ctx context.Context, scope domain.DashboardScope) ([]domain.ProductBucket, error)
	ByDays(ctx context.Context, scope domain.DashboardScope, month domain.Month) ([]domain.DayBucket, error)
	Invalidate(ctx context.Context, clientID int, year int)
}

// Cache guarda agregações serializadas por chave
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys []string) error
}

type Service struct {
	documentRepo repository.DocumentRepository
	cache        Cache
	ttl          time.Duration
}

func NewService(documentRepo repository.DocumentRepository) *Service {
	return &Service{
		documentRepo: documentRepo,
	}
}

// WithCache ativa o cache das agregações anuais
func (s *Service) WithCache(cache Cache, ttl time.Duration) *Service {
	s.cache = cache
	s.ttl = ttl
	return s
}

// CacheKey monta a chave do painel; escopo sem cliente usa "all"
func CacheKey(scope domain.DashboardScope) string {
	owner := "all"
	if scope.ClientID != nil {
		owner = fmt.Sprintf("%d", *scope.ClientID)
	}
	return fmt.Sprintf("dashboard:%s:%d", owner, scope.Year)
}

func (s *Service) Full(ctx context.Context, scope domain.DashboardScope) (*domain.Aggregation, error) {
	key := CacheKey(scope)
	if aggregation, ok := s.fromCache(ctx, key); ok {
		return aggregation, nil
	}

	docs, err := s.documentRepo.ListByYear(ctx, scope.ClientID, scope.Year)
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	grids := make([]MonthGrid, 0, len(docs))
	for _, doc := range docs {
		grids = append(grids, GridFromDocument(doc))
	}

	aggregation := Aggregate(grids)
	s.toCache(ctx, key, &aggregation)

	return &aggregation, nil
}

func (s *Service) Summary(ctx context.Context, scope domain.DashboardScope) (*domain.Summary, error) {
	aggregation, err := s.Full(ctx, scope)
	if err != nil {
		return nil, err
	}
	return &aggregation.Summary, nil
}

func (s *Service) ByMonths(ctx context.Context, scope domain.DashboardScope) ([]domain.MonthBucket, error) {
	aggregation, err := s.Full(ctx, scope)
	if err != nil {
		return nil, err
	}
	return aggregation.ByMonth, nil
}

func (s *Service) ByProducts(ctx context.Context, scope domain.DashboardScope) ([]domain.ProductBucket, error) {
	aggregation, err := s.Full(ctx, scope)
	if err != nil {
		return nil, err
	}
	return aggregation.ByProduct, nil
}

// ByDays agrega apenas os documentos do mês pedido. Não passa pelo cache.
func (s *Service) ByDays(ctx context.Context, scope domain.DashboardScope, month domain.Month) ([]domain.DayBucket, error) {
	docs, err := s.documentRepo.ListByYear(ctx, scope.ClientID, scope.Year)
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	grids := make([]MonthGrid, 0, 1)
	for _, doc := range docs {
		if doc.Month == month {
			grids = append(grids, GridFromDocument(doc))
		}
	}

	return Aggregate(grids).ByDay, nil
}

// Invalidate descarta a chave do cliente e a chave global do ano.
// Erros do cache só geram log.
func (s *Service) Invalidate(ctx context.Context, clientID int, year int) {
	if s.cache == nil {
		return
	}

	keys := []string{
		CacheKey(domain.DashboardScope{ClientID: &clientID, Year: year}),
		CacheKey(domain.DashboardScope{Year: year}),
	}

	if err := s.cache.Delete(ctx, keys); err != nil {
		log.ForContext(ctx).WithError(err).WithField("keys", keys).Warn("Erro ao invalidar cache do painel")
	}
}

func (s *Service) fromCache(ctx context.Context, key string) (*domain.Aggregation, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("key", key).Warn("Erro ao ler cache do painel")
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var aggregation domain.Aggregation
	if err := json.Unmarshal(raw, &aggregation); err != nil {
		log.ForContext(ctx).WithError(err).WithField("key", key).Warn("Cache do painel corrompido")
		return nil, false
	}

	return &aggregation, true
}

func (s *Service) toCache(ctx context.Context, key string, aggregation *domain.Aggregation) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(aggregation)
	if err != nil {
		return
	}

	if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
		log.ForContext(ctx).WithError(err).WithField("key", key).Warn("Erro ao gravar cache do painel")
	}
}
