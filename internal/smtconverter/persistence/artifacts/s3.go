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

// Package artifacts uploads the generated IVML files of conversions to an S3 bucket.
package artifacts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	smterrors "github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/errors"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/logger"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/persistence"
)

// Artifact kinds and their object names.
const (
	KindModel = "model.ivml"
	KindIndex = "index.text"
)

const contentType = "text/plain; charset=utf-8"

// Client is the part of the S3 API used by the sink.
type Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Config holds the bucket settings.
type Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	// Prefix is prepended to all object keys.
	Prefix       string
	UsePathStyle bool
}

// Sink stores the artifacts of a conversion under <prefix><id>/.
type Sink struct {
	client Client
	bucket string
	prefix string
}

// NewS3Sink creates a sink with an S3 client configured from cfg. Without access key the
// default AWS credential chain is used.
func NewS3Sink(ctx context.Context, cfg Config) (*Sink, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load S3 configuration: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	return New(client, cfg.Bucket, cfg.Prefix), nil
}

// New creates a sink on client.
func New(client Client, bucket, prefix string) *Sink {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Sink{client: client, bucket: bucket, prefix: prefix}
}

// Key returns the object key of an artifact.
func (s *Sink) Key(id, kind string) string {
	return s.prefix + id + "/" + kind
}

// Put uploads the model and the index of c.
func (s *Sink) Put(ctx context.Context, c *persistence.Conversion) error {
	artifacts := []struct{ kind, content string }{{KindModel, c.IVML}, {KindIndex, c.Index}}
	for _, a := range artifacts {
		kind := a.kind
		_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.bucket),
			Key:         aws.String(s.Key(c.ID, kind)),
			Body:        strings.NewReader(a.content),
			ContentType: aws.String(contentType),
			Metadata:    map[string]string{"project": c.Project, "spec-number": c.SpecNumber},
		})
		if err != nil {
			logger.LogError("S3 upload of "+s.Key(c.ID, kind), err)
			return fmt.Errorf("%w: %s", smterrors.ErrArtifactUploadFailed, describe(err))
		}
	}
	logger.Debugf("Uploaded artifacts of conversion %s to bucket %s", c.ID, s.bucket)
	return nil
}

// Get downloads an artifact.
func (s *Sink) Get(ctx context.Context, id, kind string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.Key(id, kind)),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", smterrors.ErrArtifactNotFound, s.Key(id, kind))
		}
		logger.LogError("S3 download of "+s.Key(id, kind), err)
		return nil, fmt.Errorf("%w: %s", smterrors.ErrStorageFailure, describe(err))
	}
	defer func() {
		_ = out.Body.Close()
	}()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, out.Body); err != nil {
		return nil, fmt.Errorf("%w: read %s", smterrors.ErrStorageFailure, s.Key(id, kind))
	}
	return buf.Bytes(), nil
}

// Delete removes the artifacts of conversion id. Missing objects are ignored.
func (s *Sink) Delete(ctx context.Context, id string) error {
	for _, kind := range []string{KindModel, KindIndex} {
		_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(s.Key(id, kind)),
		})
		if err != nil && !isNotFound(err) {
			logger.LogError("S3 delete of "+s.Key(id, kind), err)
			return fmt.Errorf("%w: %s", smterrors.ErrStorageFailure, describe(err))
		}
	}
	return nil
}

func isNotFound(err error) bool {
	var noSuchKey *s3types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var notFound *s3types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}

// describe returns the S3 error code of err if there is one.
func describe(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() + ": " + apiErr.ErrorMessage()
	}
	return err.Error()
}
