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

// Package inmemory provides a conversion store kept in process memory.
package inmemory

import (
	"context"
	"sort"
	"sync"

	smterrors "github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/errors"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/persistence"
)

// Store is a map backed ConversionStore.
type Store struct {
	mu          sync.RWMutex
	conversions map[string]persistence.Conversion
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{conversions: map[string]persistence.Conversion{}}
}

// Create stores c.
func (s *Store) Create(_ context.Context, c *persistence.Conversion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.conversions[c.ID]; ok {
		return smterrors.ErrConversionAlreadyExists
	}
	s.conversions[c.ID] = *c
	return nil
}

// Get returns the conversion with id.
func (s *Store) Get(_ context.Context, id string) (*persistence.Conversion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.conversions[id]
	if !ok {
		return nil, smterrors.ErrConversionNotFound
	}
	return &c, nil
}

// List returns a page of conversion summaries.
func (s *Store) List(_ context.Context, limit int, cursor string) ([]persistence.Conversion, string, error) {
	if limit <= 0 {
		limit = persistence.DefaultPageLimit
	}
	s.mu.RLock()
	ids := make([]string, 0, len(s.conversions))
	for id := range s.conversions {
		if id >= cursor {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	next := ""
	if len(ids) > limit {
		next = ids[limit]
		ids = ids[:limit]
	}
	result := make([]persistence.Conversion, 0, len(ids))
	for _, id := range ids {
		result = append(result, s.conversions[id].Summary())
	}
	s.mu.RUnlock()
	return result, next, nil
}

// Delete removes the conversion with id.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.conversions[id]; !ok {
		return smterrors.ErrConversionNotFound
	}
	delete(s.conversions, id)
	return nil
}
