package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"aiorder/internal/metrics"
	"aiorder/internal/models"
	"aiorder/internal/repository"
	"aiorder/internal/result"
)

type Ordering interface {
	GetOrderGroupList(ctx context.Context, q models.OrderGroupQuery) (models.OrderGroupList, error)
	GetProductType(ctx context.Context, companyID, storeID, orderDate string) (models.ProductTypeSummary, error)
	SaveOrder(ctx context.Context, companyID string, orders []models.SubmittedOrder) (models.SaveReceipt, error)
}

type Service struct {
	repository.OrderGroupPartition
	repository.OrderGroupSource
	repository.OrderedGroupStore

	cache       repository.OrderGroupCache
	v           *validator.Validate
	metrics     *metrics.Registry
	hooks       []PostCommitHook
	now         func() time.Time
	saveTimeout time.Duration
}

type Option func(*Service)

// WithHooks registers hooks run after a save has committed in both stores.
func WithHooks(hooks ...PostCommitHook) Option {
	return func(s *Service) { s.hooks = append(s.hooks, hooks...) }
}

func WithMetrics(m *metrics.Registry) Option { return func(s *Service) { s.metrics = m } }

// WithSaveTimeout bounds a whole SaveOrder call. Zero leaves it to the caller's context.
func WithSaveTimeout(d time.Duration) Option { return func(s *Service) { s.saveTimeout = d } }

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func NewService(repo *repository.Repository, opts ...Option) *Service {
	s := &Service{
		OrderGroupPartition: repo.OrderGroupPartition,
		OrderGroupSource:    repo.OrderGroupSource,
		OrderedGroupStore:   repo.OrderedGroupStore,
		cache:               repo.OrderGroupCache,
		v:                   validator.New(),
		now:                 time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = metrics.NewRegistry()
	}
	return s
}

// rowsOrNotFound turns a failed envelope into ErrDatabase and an empty one into ErrNotFound.
func rowsOrNotFound[T any](res result.Result[[]T]) ([]T, error) {
	rows, err := res.Unpack()
	if err != nil {
		return nil, dbError(err)
	}
	if len(rows) == 0 {
		return nil, &Error{Kind: ErrNotFound}
	}
	return rows, nil
}
