/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package mongodb stores conversions as documents of a MongoDB collection.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	smterrors "github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/errors"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/logger"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/persistence"
)

const connectTimeout = 10 * time.Second

// Config holds the connection settings of the store.
type Config struct {
	URI        string
	Database   string
	Collection string
}

// Store is a ConversionStore backed by a MongoDB collection.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// Connect opens a client for cfg and checks the connection.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	s := New(client.Database(cfg.Database).Collection(cfg.Collection))
	s.client = client
	return s, nil
}

// New creates a store on coll.
func New(coll *mongo.Collection) *Store {
	return &Store{coll: coll}
}

// Close disconnects the client opened by Connect.
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// Ping checks the connection of the client behind the collection.
func (s *Store) Ping(ctx context.Context) error {
	return s.coll.Database().Client().Ping(ctx, nil)
}

// Create inserts c.
func (s *Store) Create(ctx context.Context, c *persistence.Conversion) error {
	if _, err := s.coll.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return smterrors.ErrConversionAlreadyExists
		}
		return storageError("insert conversion", err)
	}
	return nil
}

// Get returns the conversion with id.
func (s *Store) Get(ctx context.Context, id string) (*persistence.Conversion, error) {
	var c persistence.Conversion
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, smterrors.ErrConversionNotFound
	}
	if err != nil {
		return nil, storageError("find conversion", err)
	}
	return &c, nil
}

// List returns a page of conversion summaries ordered by id.
func (s *Store) List(ctx context.Context, limit int, cursor string) ([]persistence.Conversion, string, error) {
	if limit <= 0 {
		limit = persistence.DefaultPageLimit
	}
	filter := bson.M{}
	if cursor != "" {
		filter["_id"] = bson.M{"$gte": cursor}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(int64(limit + 1)).
		SetProjection(bson.M{"ivml": 0, "index": 0, "diagnostics": 0})
	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, "", storageError("list conversions", err)
	}
	result := []persistence.Conversion{}
	if err := cur.All(ctx, &result); err != nil {
		return nil, "", storageError("decode conversions", err)
	}
	next := ""
	if len(result) > limit {
		next = result[limit].ID
		result = result[:limit]
	}
	return result, next, nil
}

// Delete removes the conversion with id.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storageError("delete conversion", err)
	}
	if res.DeletedCount == 0 {
		return smterrors.ErrConversionNotFound
	}
	return nil
}

func storageError(operation string, err error) error {
	logger.LogError("MongoDB "+operation, err)
	return fmt.Errorf("%w: %s", smterrors.ErrStorageFailure, operation)
}
