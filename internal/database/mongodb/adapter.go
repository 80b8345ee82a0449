package mongodb

import (
	"context"
	"fmt"

	"github.com/Rana718/seedgen/internal/model"
	"github.com/Rana718/seedgen/internal/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Adapter struct {
	client   *mongo.Client
	database *mongo.Database
	dbName   string
}

func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) Connect(ctx context.Context, url string) error {
	clientOpts := options.Client().ApplyURI(url)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	a.client = client
	a.dbName = databaseName(url, clientOpts)
	a.database = client.Database(a.dbName)
	return nil
}

func (a *Adapter) Close() error {
	if a.client != nil {
		return a.client.Disconnect(context.Background())
	}
	return nil
}

func (a *Adapter) Ping(ctx context.Context) error {
	return a.client.Ping(ctx, nil)
}

// CreateTables ensures a unique index on every primary key and unique column.
// Collections themselves are created on first insert.
func (a *Adapter) CreateTables(ctx context.Context, variant model.Variant) error {
	for _, table := range variant.Tables {
		var indexes []mongo.IndexModel
		for _, col := range table.Columns {
			if !col.IsPrimary && !col.IsUnique {
				continue
			}
			indexes = append(indexes, mongo.IndexModel{
				Keys:    bson.D{{Key: col.Name, Value: 1}},
				Options: options.Index().SetUnique(true).SetName(table.Name + "_" + col.Name + "_key"),
			})
		}
		if len(indexes) == 0 {
			continue
		}
		if _, err := a.database.Collection(table.Name).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", table.Name, err)
		}
	}
	return nil
}

func (a *Adapter) Truncate(ctx context.Context, tables []string) error {
	for _, name := range tables {
		if _, err := a.database.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", name, err)
		}
	}
	return nil
}

func (a *Adapter) Load(ctx context.Context, table *types.Table, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = 1000
	}

	coll := a.database.Collection(table.Name())
	written := 0
	for start := 0; start < len(table.Rows); start += batchSize {
		end := min(start+batchSize, len(table.Rows))
		docs := make([]interface{}, 0, end-start)
		for _, row := range table.Rows[start:end] {
			doc, err := toDocument(table.Columns(), row)
			if err != nil {
				return written, fmt.Errorf("failed to convert %s row: %w", table.Name(), err)
			}
			docs = append(docs, doc)
		}

		res, err := coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
		if err != nil {
			return written, fmt.Errorf("failed to insert %s: %w", table.Name(), err)
		}
		written += len(res.InsertedIDs)
	}
	return written, nil
}
