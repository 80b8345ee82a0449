package mongodb

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// toDocument keeps column order. Absent optional values are stored as null so
// every document carries the full column set.
func toDocument(columns []string, row []any) (bson.D, error) {
	doc := make(bson.D, 0, len(columns))
	for i, col := range columns {
		value, err := bsonValue(row[i])
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", col, err)
		}
		doc = append(doc, bson.E{Key: col, Value: value})
	}
	return doc, nil
}

func bsonValue(v any) (any, error) {
	switch val := v.(type) {
	case *string:
		if val == nil {
			return nil, nil
		}
		return *val, nil
	case []byte:
		if val == nil {
			return nil, nil
		}
		return primitive.Binary{Data: val}, nil
	case decimal.Decimal:
		return primitive.ParseDecimal128(val.StringFixed(2))
	default:
		return v, nil
	}
}

// databaseName takes the database from the URL path, then the auth source.
func databaseName(url string, opts *options.ClientOptions) string {
	parts := strings.Split(url, "/")
	if len(parts) > 3 {
		dbPart := parts[len(parts)-1]
		if idx := strings.Index(dbPart, "?"); idx >= 0 {
			dbPart = dbPart[:idx]
		}
		if dbPart != "" && dbPart != "admin" {
			return dbPart
		}
	}

	if opts != nil && opts.Auth != nil && opts.Auth.AuthSource != "" && opts.Auth.AuthSource != "admin" {
		return opts.Auth.AuthSource
	}
	return "seedgen"
}
