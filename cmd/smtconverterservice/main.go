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

// Package main starts the Submodel Template Converter service.
//
// The service converts IDTA submodel template documents into IVML models and keeps the results
// in the configured conversion store.
package main

import (
	"context"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/auth"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/common"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/api"
	smtconfig "github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/config"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/events"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/metrics"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/persistence"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/persistence/artifacts"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/persistence/inmemory"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/persistence/mongodb"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/persistence/postgresql"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/pipeline"
	openapi "github.com/eclipse-basyx/basyx-go-smtconverter/pkg/smtconverterapi/go"
)

//go:embed openapi.yaml
var openapiSpec []byte

// backends are the collaborators of the service that need to be closed on shutdown.
type backends struct {
	store     persistence.ConversionStore
	sink      persistence.ArtifactSink
	publisher events.Publisher
	closers   []func()
}

func (b *backends) close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

func openStore(ctx context.Context, cfg *common.Config) (persistence.ConversionStore, func(), error) {
	switch cfg.Storage.Backend {
	case smtconfig.BackendPostgres:
		log.Printf("🗄️  Connecting to Postgres at %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
		store, err := postgresql.Open(ctx, postgresql.Config{
			DSN:          cfg.Postgres.DSN(),
			Driver:       cfg.Postgres.Driver,
			MaxOpenConns: cfg.Postgres.MaxOpenConnections,
			MaxIdleConns: cfg.Postgres.MaxIdleConnections,
			ConnMaxLife:  time.Duration(cfg.Postgres.ConnMaxLifetimeMinutes) * time.Minute,
			SchemaFile:   cfg.Postgres.SchemaFile,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Println("✅ Postgres connection established")
		return store, func() { _ = store.Close() }, nil
	case smtconfig.BackendMongoDB:
		log.Printf("🗄️  Connecting to MongoDB database %s", cfg.Storage.Mongo.Database)
		store, err := mongodb.Connect(ctx, mongodb.Config{
			URI:        cfg.Storage.Mongo.URI,
			Database:   cfg.Storage.Mongo.Database,
			Collection: cfg.Storage.Mongo.Collection,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Println("✅ MongoDB connection established")
		return store, func() { _ = store.Close(context.Background()) }, nil
	default:
		log.Println("🗄️  Using in-memory conversion store")
		return inmemory.NewStore(), func() {}, nil
	}
}

func openBackends(ctx context.Context, cfg *common.Config) (*backends, error) {
	b := &backends{publisher: events.Noop{}}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open conversion store: %w", err)
	}
	b.store = store
	b.closers = append(b.closers, closeStore)

	if cfg.Storage.S3.Enabled {
		s3 := cfg.Storage.S3
		sink, err := artifacts.NewS3Sink(ctx, artifacts.Config{
			Bucket:       s3.Bucket,
			Region:       s3.Region,
			Endpoint:     s3.Endpoint,
			AccessKey:    s3.AccessKey,
			SecretKey:    s3.SecretKey,
			Prefix:       s3.Prefix,
			UsePathStyle: s3.UsePathStyle,
		})
		if err != nil {
			b.close()
			return nil, fmt.Errorf("open artifact bucket: %w", err)
		}
		log.Printf("🪣 Uploading artifacts to bucket %s", s3.Bucket)
		b.sink = sink
	}

	if cfg.Events.Enabled {
		publisher, err := events.Connect(cfg.Events.NatsURL, cfg.Events.Subject)
		if err != nil {
			b.close()
			return nil, err
		}
		log.Printf("📣 Publishing conversion events to %s", cfg.Events.Subject)
		b.publisher = publisher
		b.closers = append(b.closers, publisher.Close)
	}
	return b, nil
}

// newRouter wires the HTTP API. Stores and transports are opened by the caller.
func newRouter(ctx context.Context, cfg *common.Config, b *backends, m *metrics.Metrics) (*chi.Mux, error) {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	common.AddCors(r, cfg)
	var pingers []common.Pinger
	if p, ok := b.store.(common.Pinger); ok {
		pingers = append(pingers, p)
	}
	common.AddHealthEndpoint(r, cfg, pingers...)
	r.Method(http.MethodGet, cfg.Server.ContextPath+"/metrics", m.Handler())

	if cfg.Swagger.Enabled {
		if err := common.AddSwaggerUIFromConfig(r, openapiSpec, smtconfig.SwaggerUIPath, smtconfig.OpenAPISpecPath, cfg); err != nil {
			return nil, err
		}
	}

	converter := pipeline.NewConverter(smtconfig.PipelineOptions(cfg.Converter)).WithObserver(m)
	opts := []api.Option{api.WithPublisher(b.publisher)}
	if b.sink != nil {
		opts = append(opts, api.WithArtifactSink(b.sink))
	}
	convSvc := api.NewConversionAPIAPIService(b.store, converter, opts...)
	convCtrl := openapi.NewConversionAPIAPIController(convSvc, cfg.Server.ContextPath, openapi.WithMaxUploadBytes(cfg.Server.MaxUploadBytes))

	descSvc := openapi.NewDescriptionAPIAPIService(smtconfig.ServiceName, smtconfig.ServiceVersion, smtconfig.Profiles)
	descCtrl := openapi.NewDescriptionAPIAPIController(descSvc, cfg.Server.ContextPath)

	var guard *auth.OIDC
	if cfg.OIDC.Enabled {
		var err error
		guard, err = auth.NewOIDC(ctx, auth.OIDCSettings{
			Issuer:   cfg.OIDC.Issuer,
			Audience: cfg.OIDC.Audience,
			JWKSURL:  cfg.OIDC.JWKSURL,
			Scopes:   cfg.OIDC.Scopes,
		})
		if err != nil {
			return nil, fmt.Errorf("initialize OIDC: %w", err)
		}
	}

	r.Group(func(g chi.Router) {
		if guard != nil {
			g.Use(guard.Middleware)
		}
		openapi.Register(g, convCtrl, descCtrl)
	})
	return r, nil
}

func runServer(ctx context.Context, configPath string) error {
	log.Default().Println("Loading Submodel Template Converter Service...")
	log.Default().Println("Config Path:", configPath)

	cfg, err := common.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	smtconfig.ApplyLogLevel(cfg.Converter.LogLevel)

	b, err := openBackends(ctx, cfg)
	if err != nil {
		return err
	}
	defer b.close()

	r, err := newRouter(ctx, cfg, b, metrics.New(true))
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	log.Printf("▶️  Submodel Template Converter listening on %s (contextPath=%q)", addr, cfg.Server.ContextPath)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configPath := ""
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.Parse()

	if err := runServer(ctx, configPath); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
