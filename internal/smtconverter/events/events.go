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

// Package events publishes notifications about finished conversions to NATS.
package events

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/nats-io/nats.go"

	smterrors "github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/errors"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/logger"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/persistence"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Event types.
const (
	TypeConversionCompleted = "conversion.completed"
	TypeConversionDeleted   = "conversion.deleted"
)

// DefaultSubject is used if no subject is configured.
const DefaultSubject = "basyx.smtconverter.conversions"

// Event is the payload of a notification.
type Event struct {
	Type         string           `json:"type"`
	ConversionID string           `json:"conversionId"`
	Name         string           `json:"name,omitempty"`
	Project      string           `json:"project,omitempty"`
	SpecNumber   string           `json:"specNumber,omitempty"`
	Status       string           `json:"status,omitempty"`
	Statistics   model.Statistics `json:"statistics"`
	Diagnostics  int              `json:"diagnostics"`
	Time         time.Time        `json:"time"`
}

// Completed creates the event of a stored conversion.
func Completed(c *persistence.Conversion) Event {
	return Event{
		Type:         TypeConversionCompleted,
		ConversionID: c.ID,
		Name:         c.Name,
		Project:      c.Project,
		SpecNumber:   c.SpecNumber,
		Status:       c.Status,
		Statistics:   c.Statistics,
		Diagnostics:  len(c.Diagnostics),
		Time:         time.Now().UTC(),
	}
}

// Deleted creates the event of a removed conversion.
func Deleted(id string) Event {
	return Event{Type: TypeConversionDeleted, ConversionID: id, Time: time.Now().UTC()}
}

// Publisher sends events.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close()
}

// Noop discards all events.
type Noop struct{}

// Publish does nothing.
func (Noop) Publish(context.Context, Event) error { return nil }

// Close does nothing.
func (Noop) Close() {}

type conn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

// NATSPublisher publishes events as JSON messages. The event type is appended to the subject,
// e.g. "basyx.smtconverter.conversions.conversion.completed".
type NATSPublisher struct {
	conn    conn
	subject string
}

// Connect connects to the NATS server at url.
func Connect(url, subject string) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("basyx-smtconverter"),
		nats.MaxReconnects(5),
		nats.ReconnectWait(time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warnf("NATS disconnected: %v", err)
			}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	return newPublisher(nc, subject), nil
}

func newPublisher(c conn, subject string) *NATSPublisher {
	if subject == "" {
		subject = DefaultSubject
	}
	return &NATSPublisher{conn: c, subject: subject}
}

// Publish sends e. NATS publishing does not block, the context is only checked before.
func (p *NATSPublisher) Publish(ctx context.Context, e Event) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", smterrors.ErrEventPublishFailed, err)
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("%w: %v", smterrors.ErrEventPublishFailed, err)
	}
	subject := p.subject + "." + e.Type
	if err := p.conn.Publish(subject, data); err != nil {
		logger.LogError("NATS publish to "+subject, err)
		return fmt.Errorf("%w: %v", smterrors.ErrEventPublishFailed, err)
	}
	return nil
}

// Close drains the connection.
func (p *NATSPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		logger.LogError("NATS drain", err)
	}
}
