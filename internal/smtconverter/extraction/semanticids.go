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

package extraction

import (
	"strings"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/logger"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/semanticid"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/textutil"
)

// parseSemanticID reads a semantic id specification such as "[IRI] https://..." or
// "[IRDI] 0173-1#02-AAO677#002" and returns the prefixed id. Without scheme marker, fallback
// lets the recognizer chain decide on the scheme.
func (p *Processor) parseSemanticID(value string, fallback bool) (string, bool) {
	value = textutil.NormalizeSemanticIDSpec(value)
	start := strings.Index(value, "[")
	end := strings.Index(value, "]")
	if start < end {
		typ := value[start+1 : end]
		text := strings.TrimSpace(value[end+1:])
		if typ == "IRDI" && strings.HasPrefix(text, "173") {
			text = "0" + text
		}
		id, ok := p.chain.SemanticID(text, false, false)
		if !ok || id == "" {
			return "", false
		}
		switch typ {
		case "IRI":
			return semanticid.Compose(semanticid.IRIPrefix, id), true
		case "IRDI":
			return semanticid.Compose(semanticid.IRDIPrefix, id), true
		}
		logger.Warnf("semanticId field has unexpected structure: %s", value)
		return "", false
	}
	if fallback {
		if id, ok := p.chain.SemanticID(value, true, false); ok {
			return id, true
		}
	}
	logger.Warnf("semanticId field has unexpected structure: %s", value)
	return "", false
}

// setSemanticID parses value and applies the result to set.
func (p *Processor) setSemanticID(value string, fallback bool, set func(string)) {
	if id, ok := p.parseSemanticID(value, fallback); ok {
		set(id)
	}
}

// parseMappedSemanticIDs reads the condition specific semantic ids of aspect types such as
// "[IRI] https://a (only for CE) [IRI] https://b (only for UKCA)".
func (p *Processor) parseMappedSemanticIDs(value string) []model.MappedSemanticID {
	var result []model.MappedSemanticID
	for {
		end := strings.Index(value, ")")
		if end <= 0 {
			break
		}
		sub := value[:end+1]
		value = value[end+1:]
		start := strings.LastIndex(sub, "(")
		if start < 0 {
			logger.Warnf("Unconsidered condition for aspect type semantic Id: %s. Ignoring.", sub)
			continue
		}
		condition := sub[start:]
		id, ok := p.parseSemanticID(strings.TrimSpace(sub[:start]), false)
		const onlyFor = "(only for "
		if !strings.HasPrefix(condition, onlyFor) {
			logger.Warnf("Unconsidered condition for aspect type semantic Id: %s. Ignoring.", condition)
			continue
		}
		condition = strings.TrimSpace(condition[len(onlyFor) : len(condition)-1])
		if ok && condition != "" {
			result = append(result, model.MappedSemanticID{Condition: condition, SemanticID: id})
		}
	}
	return result
}
