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

package semanticid

// Chain is an ordered list of recognizers. Specific recognizers are tried in registration
// order before fallback recognizers; the first recognizer that handles a text and yields a
// result wins.
type Chain struct {
	recognizers []Recognizer
}

// NewChain creates a chain from the given recognizers.
func NewChain(recognizers ...Recognizer) *Chain {
	c := &Chain{}
	for _, r := range recognizers {
		c.Register(r)
	}
	return c
}

// DefaultChain creates the chain used for IDTA submodel templates: ECLASS IRDI, IEC CDD IRDI,
// IDTA IRI and the generic URL fallback.
func DefaultChain() *Chain {
	return NewChain(
		NewEclassIRDIRecognizer(),
		NewIECCDDIRDIRecognizer(),
		NewIDTAIRIRecognizer(),
		NewURLIRIRecognizer(),
	)
}

// Register adds a recognizer. Non-fallback recognizers are inserted before the first fallback.
func (c *Chain) Register(r Recognizer) {
	if r == nil {
		return
	}
	if r.Fallback() {
		c.recognizers = append(c.recognizers, r)
		return
	}
	pos := len(c.recognizers)
	for i, existing := range c.recognizers {
		if existing.Fallback() {
			pos = i
			break
		}
	}
	c.recognizers = append(c.recognizers, nil)
	copy(c.recognizers[pos+1:], c.recognizers[pos:])
	c.recognizers[pos] = r
}

// Recognizers returns the recognizers in evaluation order.
func (c *Chain) Recognizers() []Recognizer {
	return append([]Recognizer(nil), c.recognizers...)
}

// Prefix returns the scheme prefix of the first recognizer handling text, or "".
func (c *Chain) Prefix(text string) string {
	for _, r := range c.recognizers {
		if r.Handles(text) && r.Prefix() != "" {
			return r.Prefix()
		}
	}
	return ""
}

// SemanticID extracts a semantic id from the start of text. With addPrefix the result carries
// the scheme prefix; with fromPath only the last path segment of text is parsed.
func (c *Chain) SemanticID(text string, addPrefix, fromPath bool) (string, bool) {
	if text == "" {
		return "", false
	}
	for _, r := range c.recognizers {
		if !r.Handles(text) {
			continue
		}
		in := text
		if fromPath {
			in = r.LastOfPath(text)
		}
		if id, ok := r.Parse(in); ok {
			if addPrefix {
				id = Compose(r.Prefix(), id)
			}
			return id, true
		}
	}
	return "", false
}

// IsSemanticID reports whether text as a whole is valid for a recognizer handling it.
func (c *Chain) IsSemanticID(text string) bool {
	for _, r := range c.recognizers {
		if r.Handles(text) && r.IsValid(text) {
			return true
		}
	}
	return false
}
