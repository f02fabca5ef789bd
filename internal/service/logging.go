package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/quote-optimizer/internal/domain/model"
	"github.com/guttosm/quote-optimizer/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidLogQuery is returned for negative paging or an inverted time window.
var ErrInvalidLogQuery = errors.New("invalid log query")

// LoggingService persists the request and audit trail of the API.
type LoggingService interface {
	CreateLog(ctx context.Context, entry *model.LogEntry) error
	// CreateLogs writes a batch; an empty batch is a no-op.
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error
	// QueryLogs returns matching entries newest first.
	QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)
	CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

type LoggingServiceImpl struct {
	repo repository.LogsRepositoryInterface
	now  func() time.Time
}

func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{repo: repo, now: time.Now}
}

// CreateLog stamps the entry in place, so the caller sees the stored id.
func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	if err := s.repo.Create(ctx, s.document(entry)); err != nil {
		return fmt.Errorf("store log entry: %w", err)
	}
	return nil
}

func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]*repository.LogEntryDocument, len(entries))
	for i, entry := range entries {
		docs[i] = s.document(entry)
	}
	if err := s.repo.CreateMany(ctx, docs); err != nil {
		return fmt.Errorf("store %d log entries: %w", len(docs), err)
	}
	return nil
}

func (s *LoggingServiceImpl) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	if err := validateLogQuery(opts); err != nil {
		return nil, err
	}
	docs, err := s.repo.Query(ctx, repository.LogQueryOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("query logs: %w", err)
	}

	entries := make([]model.LogEntry, len(docs))
	for i, doc := range docs {
		entries[i] = model.LogEntry(*doc)
	}
	return entries, nil
}

func (s *LoggingServiceImpl) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	if err := validateLogQuery(opts); err != nil {
		return 0, err
	}
	n, err := s.repo.Count(ctx, repository.LogQueryOptions(opts))
	if err != nil {
		return 0, fmt.Errorf("count logs: %w", err)
	}
	return n, nil
}

// document fills a missing id, timestamp and level. Entries and documents
// share one field layout.
func (s *LoggingServiceImpl) document(entry *model.LogEntry) *repository.LogEntryDocument {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now().UTC()
	}
	if entry.Level == "" {
		entry.Level = "info"
	}
	doc := repository.LogEntryDocument(*entry)
	return &doc
}

func validateLogQuery(opts model.LogQueryOptions) error {
	switch {
	case opts.Limit < 0 || opts.Skip < 0:
		return fmt.Errorf("%w: limit and skip must not be negative", ErrInvalidLogQuery)
	case opts.StartTime != nil && opts.EndTime != nil && opts.EndTime.Before(*opts.StartTime):
		return fmt.Errorf("%w: end time before start time", ErrInvalidLogQuery)
	}
	return nil
}
