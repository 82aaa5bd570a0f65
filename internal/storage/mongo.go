package storage

import (
	"context"
	"errors"
	"time"

	"github.com/leeaandrob/trendpulse/internal/models"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const analysisCounter = "analyses"

// MongoStore keeps analyses in MongoDB.
type MongoStore struct {
	client   *mongo.Client
	db       *mongo.Database
	analyses *mongo.Collection
	counters *mongo.Collection
}

// NewMongoStore creates a new storage connection.
func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	log.Info().Str("db", dbName).Msg("Connected to MongoDB")

	store := &MongoStore{
		client:   client,
		db:       db,
		analyses: db.Collection("analyses"),
		counters: db.Collection("counters"),
	}

	if err := store.createIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to create some indexes")
	}

	return store, nil
}

// Close closes the database connection.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// createIndexes creates necessary indexes for efficient queries.
func (s *MongoStore) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "query_key", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	_, err := s.analyses.Indexes().CreateMany(ctx, indexes)
	return err
}

// nextID atomically increments the analysis sequence.
func (s *MongoStore) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}

	filter := bson.M{"_id": analysisCounter}
	update := bson.M{"$inc": bson.M{"seq": 1}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	if err := s.counters.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter); err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

// CreateAnalysis inserts a new analysis.
func (s *MongoStore) CreateAnalysis(ctx context.Context, a *models.Analysis) (*models.Analysis, error) {
	id, err := s.nextID(ctx)
	if err != nil {
		return nil, err
	}

	stored := clone(a)
	stored.ID = id
	stored.QueryKey = models.NormalizeQuery(a.Query)
	// BSON dates carry millisecond precision.
	stored.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	if _, err := s.analyses.InsertOne(ctx, stored); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Debug().Str("query", a.Query).Msg("Analysis already stored, returning existing")
			return s.GetAnalysisByQuery(ctx, a.Query)
		}
		return nil, err
	}

	return stored, nil
}

// GetAnalysisByQuery returns the analysis for a query.
func (s *MongoStore) GetAnalysisByQuery(ctx context.Context, query string) (*models.Analysis, error) {
	var a models.Analysis
	err := s.analyses.FindOne(ctx, bson.M{"query_key": models.NormalizeQuery(query)}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListAnalyses returns all analyses in creation order.
func (s *MongoStore) ListAnalyses(ctx context.Context) ([]models.Analysis, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	return s.findAnalyses(ctx, bson.M{}, opts)
}

// RecentAnalyses returns up to limit analyses, newest first.
func (s *MongoStore) RecentAnalyses(ctx context.Context, limit int) ([]models.Analysis, error) {
	if limit <= 0 {
		return []models.Analysis{}, nil
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(int64(limit))
	return s.findAnalyses(ctx, bson.M{}, opts)
}

// GetStats returns aggregate information about stored analyses.
func (s *MongoStore) GetStats(ctx context.Context) (*models.Stats, error) {
	total, err := s.analyses.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	recent, err := s.RecentAnalyses(ctx, 1)
	if err != nil {
		return nil, err
	}

	var latest *models.Analysis
	if len(recent) > 0 {
		latest = &recent[0]
	}
	return statsOf(int(total), latest), nil
}

func (s *MongoStore) findAnalyses(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Analysis, error) {
	cursor, err := s.analyses.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	analyses := []models.Analysis{}
	if err := cursor.All(ctx, &analyses); err != nil {
		return nil, err
	}
	return analyses, nil
}
