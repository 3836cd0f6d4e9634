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

// Package api implements the business logic of the Submodel Template Converter HTTP API.
package api

import (
	"context"
	"net/http"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/common"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/config"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/events"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/logger"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/persistence"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/pipeline"
	openapi "github.com/eclipse-basyx/basyx-go-smtconverter/pkg/smtconverterapi/go"
)

const componentName = config.ComponentName

// ConversionAPIAPIService is a service that implements the logic for the ConversionAPIAPIServicer.
// Converted documents are kept in the store; artifacts are additionally uploaded to the sink if
// one is set and every stored or deleted conversion is announced through the publisher.
type ConversionAPIAPIService struct {
	store     persistence.ConversionStore
	sink      persistence.ArtifactSink
	publisher events.Publisher
	converter *pipeline.Converter
}

// Option configures a ConversionAPIAPIService.
type Option func(*ConversionAPIAPIService)

// WithArtifactSink uploads the artifacts of every stored conversion to sink.
func WithArtifactSink(sink persistence.ArtifactSink) Option {
	return func(s *ConversionAPIAPIService) {
		s.sink = sink
	}
}

// WithPublisher announces stored and deleted conversions through p.
func WithPublisher(p events.Publisher) Option {
	return func(s *ConversionAPIAPIService) {
		s.publisher = p
	}
}

// NewConversionAPIAPIService creates a default api service
func NewConversionAPIAPIService(store persistence.ConversionStore, converter *pipeline.Converter, opts ...Option) *ConversionAPIAPIService {
	s := &ConversionAPIAPIService{
		store:     store,
		publisher: events.Noop{},
		converter: converter,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PostConversion - Converts a row document
func (s *ConversionAPIAPIService) PostConversion(ctx context.Context, request openapi.ConversionRequest) (model.ImplResponse, error) {
	return s.convert(ctx, request, "PostConversion")
}

// PostAASConversion - Converts an AAS environment
func (s *ConversionAPIAPIService) PostAASConversion(ctx context.Context, request openapi.ConversionRequest) (model.ImplResponse, error) {
	request.Format = string(pipeline.FormatAAS)
	return s.convert(ctx, request, "PostAASConversion")
}

func (s *ConversionAPIAPIService) convert(ctx context.Context, request openapi.ConversionRequest, operation string) (model.ImplResponse, error) {
	format, err := pipeline.ParseFormat(request.Format)
	if err != nil {
		return common.NewErrorResponse(err, http.StatusBadRequest, componentName, operation, "BadRequest"), nil
	}

	result, err := s.converter.Convert(ctx, pipeline.Input{
		Name:       request.Name,
		Format:     format,
		Data:       request.Data,
		SpecNumber: request.SpecNumber,
	})
	if err != nil {
		switch {
		case common.IsErrBadRequest(err):
			return common.NewErrorResponse(err, http.StatusBadRequest, componentName, operation, "BadRequest"), nil
		default:
			return common.NewErrorResponse(err, http.StatusInternalServerError, componentName, operation, "Unhandled"), err
		}
	}

	conversion := persistence.NewConversion(result)
	if err := s.store.Create(ctx, conversion); err != nil {
		switch {
		case common.IsErrConflict(err):
			return common.NewErrorResponse(err, http.StatusConflict, componentName, operation, "Conflict"), nil
		default:
			return common.NewErrorResponse(err, http.StatusInternalServerError, componentName, operation, "Unhandled"), err
		}
	}

	if s.sink != nil {
		if err := s.sink.Put(ctx, conversion); err != nil {
			// a conversion is only kept together with its artifacts
			if delErr := s.store.Delete(ctx, conversion.ID); delErr != nil {
				logger.LogError("remove conversion "+conversion.ID+" after failed upload", delErr)
			}
			return common.NewErrorResponse(err, http.StatusInternalServerError, componentName, operation, "ArtifactUpload"), err
		}
	}

	if err := s.publisher.Publish(ctx, events.Completed(conversion)); err != nil {
		logger.Warnf("conversion %s stored but not announced: %v", conversion.ID, err)
	}

	return model.Response(http.StatusCreated, conversion), nil
}

// GetAllConversions - Returns a page of stored conversions
func (s *ConversionAPIAPIService) GetAllConversions(ctx context.Context, limit int32, cursor string) (model.ImplResponse, error) {
	after, err := common.DecodeCursor(cursor)
	if err != nil {
		return common.NewErrorResponse(err, http.StatusBadRequest, componentName, "GetAllConversions", "BadCursor"), nil
	}
	conversions, next, err := s.store.List(ctx, int(limit), after)
	if err != nil {
		switch {
		case common.IsErrBadRequest(err):
			return common.NewErrorResponse(err, http.StatusBadRequest, componentName, "GetAllConversions", "BadRequest"), nil
		default:
			return common.NewErrorResponse(err, http.StatusInternalServerError, componentName, "GetAllConversions", "Unhandled"), err
		}
	}
	if conversions == nil {
		conversions = []persistence.Conversion{}
	}

	return model.Response(http.StatusOK, openapi.GetConversionsResult{
		PagingMetadata: openapi.PagedResultPagingMetadata{Cursor: common.EncodeCursor(next)},
		Result:         conversions,
	}), nil
}

func (s *ConversionAPIAPIService) get(ctx context.Context, id string, operation string) (*persistence.Conversion, model.ImplResponse, error) {
	conversion, err := s.store.Get(ctx, id)
	if err != nil {
		switch {
		case common.IsErrNotFound(err):
			return nil, common.NewErrorResponse(err, http.StatusNotFound, componentName, operation, "NotFound"), nil
		default:
			return nil, common.NewErrorResponse(err, http.StatusInternalServerError, componentName, operation, "Unhandled"), err
		}
	}
	return conversion, model.ImplResponse{}, nil
}

// GetConversionByID - Returns a specific conversion
func (s *ConversionAPIAPIService) GetConversionByID(ctx context.Context, id string) (model.ImplResponse, error) {
	conversion, resp, err := s.get(ctx, id, "GetConversionByID")
	if conversion == nil {
		return resp, err
	}
	return model.Response(http.StatusOK, conversion), nil
}

// GetConversionIVMLByID - Returns the IVML model of a conversion
func (s *ConversionAPIAPIService) GetConversionIVMLByID(ctx context.Context, id string) (model.ImplResponse, error) {
	conversion, resp, err := s.get(ctx, id, "GetConversionIVMLByID")
	if conversion == nil {
		return resp, err
	}
	return model.Response(http.StatusOK, model.TextDocument{
		Filename:    conversion.Project + ".ivml",
		ContentType: "text/plain; charset=utf-8",
		Content:     []byte(conversion.IVML),
	}), nil
}

// GetConversionIndexByID - Returns the text index of a conversion
func (s *ConversionAPIAPIService) GetConversionIndexByID(ctx context.Context, id string) (model.ImplResponse, error) {
	conversion, resp, err := s.get(ctx, id, "GetConversionIndexByID")
	if conversion == nil {
		return resp, err
	}
	return model.Response(http.StatusOK, model.TextDocument{
		Filename:    conversion.Project + ".text",
		ContentType: "text/plain; charset=utf-8",
		Content:     []byte(conversion.Index),
	}), nil
}

// DeleteConversionByID - Deletes a conversion and its artifacts
func (s *ConversionAPIAPIService) DeleteConversionByID(ctx context.Context, id string) (model.ImplResponse, error) {
	if err := s.store.Delete(ctx, id); err != nil {
		switch {
		case common.IsErrNotFound(err):
			return common.NewErrorResponse(err, http.StatusNotFound, componentName, "DeleteConversionByID", "NotFound"), nil
		default:
			return common.NewErrorResponse(err, http.StatusInternalServerError, componentName, "DeleteConversionByID", "Unhandled"), err
		}
	}

	if s.sink != nil {
		if err := s.sink.Delete(ctx, id); err != nil {
			logger.Warnf("artifacts of conversion %s not removed: %v", id, err)
		}
	}
	if err := s.publisher.Publish(ctx, events.Deleted(id)); err != nil {
		logger.Warnf("deletion of conversion %s not announced: %v", id, err)
	}

	return model.Response(http.StatusNoContent, nil), nil
}
