package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/quote-optimizer/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RunDocument is the MongoDB shape of an optimization run.
type RunDocument struct {
	ID         string               `bson:"_id"`
	RequestID  string               `bson:"request_id,omitempty"`
	Source     string               `bson:"source"`
	Input      model.OptimizeInput  `bson:"input"`
	Result     model.OptimizeResult `bson:"result"`
	Satisfied  bool                 `bson:"satisfied"`
	DurationUS int64                `bson:"duration_us"`
	CreatedAt  time.Time            `bson:"created_at"`
}

func runToDocument(run *model.OptimizationRun) *RunDocument {
	return &RunDocument{
		ID:         run.ID,
		RequestID:  run.RequestID,
		Source:     run.Source,
		Input:      run.Input,
		Result:     run.Result,
		Satisfied:  run.Satisfied,
		DurationUS: run.DurationUS,
		CreatedAt:  run.CreatedAt,
	}
}

func (d *RunDocument) toModel() model.OptimizationRun {
	result := d.Result
	if result.Allocation == nil {
		result.Allocation = map[string]float64{}
	}
	if result.Violations == nil {
		result.Violations = []string{}
	}
	return model.OptimizationRun{
		ID:         d.ID,
		RequestID:  d.RequestID,
		Source:     d.Source,
		Input:      d.Input,
		Result:     result,
		Satisfied:  d.Satisfied,
		DurationUS: d.DurationUS,
		CreatedAt:  d.CreatedAt,
	}
}

// fillRunDefaults assigns an id and creation time when missing.
func fillRunDefaults(run *model.OptimizationRun) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
}

// RunsRepository stores optimization runs in MongoDB.
type RunsRepository struct {
	collection *mongo.Collection
}

// NewRunsRepository creates a new MongoDB runs repository.
func NewRunsRepository(db *MongoDB) *RunsRepository {
	return &RunsRepository{collection: db.Runs}
}

var _ RunsRepositoryInterface = (*RunsRepository)(nil)

// Create inserts run, assigning its ID and CreatedAt when empty.
func (r *RunsRepository) Create(ctx context.Context, run *model.OptimizationRun) error {
	fillRunDefaults(run)
	_, err := r.collection.InsertOne(ctx, runToDocument(run))
	return err
}

// Get returns the run with the given id or ErrRunNotFound.
func (r *RunsRepository) Get(ctx context.Context, id string) (*model.OptimizationRun, error) {
	var doc RunDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	run := doc.toModel()
	return &run, nil
}

// List returns runs newest first.
func (r *RunsRepository) List(ctx context.Context, opts model.RunQueryOptions) ([]model.OptimizationRun, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if opts.Limit > 0 {
		findOptions.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, runFilter(opts), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []RunDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	runs := make([]model.OptimizationRun, len(docs))
	for i := range docs {
		runs[i] = docs[i].toModel()
	}
	return runs, nil
}

// Count returns the number of runs matching opts, ignoring Limit and Skip.
func (r *RunsRepository) Count(ctx context.Context, opts model.RunQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, runFilter(opts))
}

func runFilter(opts model.RunQueryOptions) bson.M {
	filter := bson.M{}
	if opts.Source != "" {
		filter["source"] = opts.Source
	}
	if opts.Satisfied != nil {
		filter["satisfied"] = *opts.Satisfied
	}
	return filter
}
