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

package enums

import "github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"

// Registry holds the enums of one document. An optional notifier is called for every added
// enum, which lets the extraction engine collect literals of value lists spread over the
// following table rows.
type Registry struct {
	enums  []*model.Enum
	notify func(*model.Enum)
}

// NewRegistry creates an empty registry. notify may be nil.
func NewRegistry(notify func(*model.Enum)) *Registry {
	return &Registry{notify: notify}
}

// Add registers e and notifies the notifier.
func (r *Registry) Add(e *model.Enum) {
	r.enums = append(r.enums, e)
	if r.notify != nil {
		r.notify(e)
	}
}

// Has reports whether an enum with the given idShort is registered.
func (r *Registry) Has(idShort string) bool {
	for _, e := range r.enums {
		if e.IDShort == idShort {
			return true
		}
	}
	return false
}

// Enums returns the registered enums in registration order.
func (r *Registry) Enums() []*model.Enum {
	return r.enums
}
