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

package textutil

import "strings"

// FilterLanguage reduces a multi-language description such as "@en Name @de Name" to its
// English text, or to the last other language if there is no English one. Descriptions in
// the "preferredName @.. definition @.." form are reduced to the definition.
func FilterLanguage(description string) string {
	result := description
	if strings.Contains(description, "definition @") || strings.Contains(description, "Definition @") {
		tmp := strings.ReplaceAll(description, "preferredName @", "")
		tmp = strings.ReplaceAll(tmp, "definition @", "@")
		tmp = strings.ReplaceAll(tmp, "Definition @", "@")
		result = filterLanguage(tmp)
	}
	if result == description {
		result = filterLanguage(description)
	}
	return result
}

func filterLanguage(description string) string {
	parts := SplitDropTrailing(description, "@")
	if len(parts) < 2 {
		return description
	}
	var en, other string
	var hasEn, hasOther bool
	for _, part := range parts {
		if part == "" {
			continue
		}
		pos := strings.Index(part, " ")
		if pos < 0 || pos > 3 {
			continue
		}
		lang := strings.TrimSuffix(part[:pos], ":")
		text := strings.TrimSpace(part[pos+1:])
		if lang == "en" {
			en, hasEn = text, true
		} else {
			other, hasOther = text, true
		}
	}
	switch {
	case hasEn:
		return en
	case hasOther:
		return other
	}
	return description
}
