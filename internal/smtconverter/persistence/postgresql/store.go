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

// Package postgresql stores conversions in PostgreSQL. Queries are built with goqu; the
// connection uses lib/pq or the pgx database/sql driver.
package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/doug-martin/goqu/v9"
	// postgres dialect for goqu
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgconn"
	// pgx database/sql driver registered as "pgx"
	_ "github.com/jackc/pgx/v5/stdlib"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"

	smterrors "github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/errors"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/logger"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/persistence"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	tableConversion = "conversion"
	uniqueViolation = "23505"
)

// Supported database/sql driver names.
const (
	DriverPQ  = "postgres"
	DriverPGX = "pgx"
)

var summaryColumns = []any{"id", "name", "format", "project", "spec_number", "version", "status", "statistics", "created"}

// Config holds the connection settings of the store.
type Config struct {
	DSN          string
	Driver       string
	MaxOpenConns int
	MaxIdleConns int
	ConnMaxLife  time.Duration
	// SchemaFile is executed after connecting, skipped if empty.
	SchemaFile string
}

// Store is a ConversionStore backed by PostgreSQL.
type Store struct {
	db      *sql.DB
	dialect goqu.DialectWrapper
}

// Open connects to the database and applies the schema.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverPQ
	}
	if driver != DriverPQ && driver != DriverPGX {
		return nil, fmt.Errorf("unsupported postgres driver %q", driver)
	}
	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLife > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLife)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if cfg.SchemaFile == "" {
		logger.LogInfo("No SQL schema passed - skipping schema loading.")
		return New(db), nil
	}
	schema, err := os.ReadFile(cfg.SchemaFile)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		_ = db.Close()
		return nil, err
	}
	return New(db), nil
}

// New creates a store on an open database.
func New(db *sql.DB) *Store {
	return &Store{db: db, dialect: goqu.Dialect("postgres")}
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Create inserts c.
func (s *Store) Create(ctx context.Context, c *persistence.Conversion) error {
	statistics, err := json.Marshal(c.Statistics)
	if err != nil {
		return storageError("marshal statistics", err)
	}
	diagnostics := c.Diagnostics
	if diagnostics == nil {
		diagnostics = []model.Diagnostic{}
	}
	diagJSON, err := json.Marshal(diagnostics)
	if err != nil {
		return storageError("marshal diagnostics", err)
	}
	query, args, err := s.dialect.Insert(tableConversion).Rows(goqu.Record{
		"id":          c.ID,
		"name":        c.Name,
		"format":      c.Format,
		"project":     c.Project,
		"spec_number": c.SpecNumber,
		"version":     c.Version,
		"status":      c.Status,
		"statistics":  string(statistics),
		"diagnostics": string(diagJSON),
		"ivml":        c.IVML,
		"ivml_index":  c.Index,
		"created":     c.Created,
	}).Prepared(true).ToSQL()
	if err != nil {
		return storageError("build insert", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return smterrors.ErrConversionAlreadyExists
		}
		return storageError("insert conversion", err)
	}
	return nil
}

// Get returns the conversion with id.
func (s *Store) Get(ctx context.Context, id string) (*persistence.Conversion, error) {
	columns := append(append([]any{}, summaryColumns...), "diagnostics", "ivml", "ivml_index")
	query, args, err := s.dialect.From(tableConversion).
		Select(columns...).
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, storageError("build select", err)
	}
	var c persistence.Conversion
	var statistics, diagnostics []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(
		&c.ID, &c.Name, &c.Format, &c.Project, &c.SpecNumber, &c.Version, &c.Status, &statistics, &c.Created,
		&diagnostics, &c.IVML, &c.Index)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, smterrors.ErrConversionNotFound
	}
	if err != nil {
		return nil, storageError("select conversion", err)
	}
	if err := json.Unmarshal(statistics, &c.Statistics); err != nil {
		return nil, storageError("unmarshal statistics", err)
	}
	if len(diagnostics) > 0 {
		if err := json.Unmarshal(diagnostics, &c.Diagnostics); err != nil {
			return nil, storageError("unmarshal diagnostics", err)
		}
	}
	if len(c.Diagnostics) == 0 {
		c.Diagnostics = nil
	}
	return &c, nil
}

// List returns a page of conversion summaries ordered by id.
func (s *Store) List(ctx context.Context, limit int, cursor string) ([]persistence.Conversion, string, error) {
	if limit <= 0 {
		limit = persistence.DefaultPageLimit
	}
	ds := s.dialect.From(tableConversion).Select(summaryColumns...)
	if cursor != "" {
		ds = ds.Where(goqu.C("id").Gte(cursor))
	}
	query, args, err := ds.Order(goqu.C("id").Asc()).Limit(uint(limit + 1)).Prepared(true).ToSQL()
	if err != nil {
		return nil, "", storageError("build list", err)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, "", storageError("list conversions", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := []persistence.Conversion{}
	for rows.Next() {
		var c persistence.Conversion
		var statistics []byte
		if err := rows.Scan(&c.ID, &c.Name, &c.Format, &c.Project, &c.SpecNumber, &c.Version, &c.Status, &statistics, &c.Created); err != nil {
			return nil, "", storageError("scan conversion", err)
		}
		if err := json.Unmarshal(statistics, &c.Statistics); err != nil {
			return nil, "", storageError("unmarshal statistics", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, "", storageError("iterate conversions", err)
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
	query, args, err := s.dialect.Delete(tableConversion).Where(goqu.C("id").Eq(id)).Prepared(true).ToSQL()
	if err != nil {
		return storageError("build delete", err)
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return storageError("delete conversion", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storageError("delete conversion", err)
	}
	if affected == 0 {
		return smterrors.ErrConversionNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return false
}

func storageError(operation string, err error) error {
	logger.LogError("PostgreSQL "+operation, err)
	return fmt.Errorf("%w: %s", smterrors.ErrStorageFailure, operation)
}
