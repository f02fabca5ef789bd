package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// maxLogPage bounds a single audit log query.
const maxLogPage = 1000

// LogEntryDocument is one persisted request or audit record: an optimization
// answered, a job submitted or a run looked up.
type LogEntryDocument struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time              `bson:"timestamp" json:"timestamp"`
	Level      string                 `bson:"level" json:"level"`
	Message    string                 `bson:"message" json:"message"`
	RequestID  string                 `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method     string                 `bson:"method,omitempty" json:"method,omitempty"`
	Path       string                 `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode int                    `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Duration   int64                  `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	IP         string                 `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent  string                 `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Error      string                 `bson:"error,omitempty" json:"error,omitempty"`
	ClientID   string                 `bson:"client_id,omitempty" json:"client_id,omitempty"`
	ActionType string                 `bson:"action_type,omitempty" json:"action_type,omitempty"`
	Fields     map[string]interface{} `bson:"fields,omitempty" json:"fields,omitempty"`
}

// LogQueryOptions filters audit log queries. Zero values match everything;
// Limit is capped at maxLogPage.
type LogQueryOptions struct {
	RequestID  string
	Level      string
	ActionType string
	StartTime  *time.Time
	EndTime    *time.Time
	Limit      int
	Skip       int
}

// LogsRepository persists the audit trail in the logs collection, whose TTL
// index expires old entries.
type LogsRepository struct {
	collection *mongo.Collection
}

func NewLogsRepository(db *MongoDB) *LogsRepository {
	return &LogsRepository{collection: db.Logs}
}

var _ LogsRepositoryInterface = (*LogsRepository)(nil)

func stampLogEntry(entry *LogEntryDocument) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
}

func (r *LogsRepository) Create(ctx context.Context, entry *LogEntryDocument) error {
	stampLogEntry(entry)
	if _, err := r.collection.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("insert log entry %s: %w", entry.RequestID, err)
	}
	return nil
}

// CreateMany inserts a flushed batch unordered, so one bad entry does not
// drop the rest.
func (r *LogsRepository) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(entries))
	for _, entry := range entries {
		stampLogEntry(entry)
		docs = append(docs, entry)
	}

	if _, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false)); err != nil {
		return fmt.Errorf("insert %d log entries: %w", len(entries), err)
	}
	return nil
}

// Query returns matching entries newest first.
func (r *LogsRepository) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	limit := opts.Limit
	if limit <= 0 || limit > maxLogPage {
		limit = maxLogPage
	}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, logFilter(opts), findOptions)
	if err != nil {
		return nil, fmt.Errorf("find log entries: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	entries := make([]*LogEntryDocument, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode log entries: %w", err)
	}
	return entries, nil
}

// Count ignores Limit and Skip.
func (r *LogsRepository) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, logFilter(opts))
	if err != nil {
		return 0, fmt.Errorf("count log entries: %w", err)
	}
	return n, nil
}

func logFilter(opts LogQueryOptions) bson.M {
	filter := bson.M{}
	for field, value := range map[string]string{
		"request_id":  opts.RequestID,
		"level":       opts.Level,
		"action_type": opts.ActionType,
	} {
		if value != "" {
			filter[field] = value
		}
	}

	window := bson.M{}
	if opts.StartTime != nil {
		window["$gte"] = *opts.StartTime
	}
	if opts.EndTime != nil {
		window["$lte"] = *opts.EndTime
	}
	if len(window) > 0 {
		filter["timestamp"] = window
	}
	return filter
}
