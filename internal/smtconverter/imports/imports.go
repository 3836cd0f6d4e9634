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

// Package imports declares the models of other submodel templates that generated models import
// instead of redeclaring their types.
package imports

import (
	"slices"
	"sort"
	"strings"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/semanticid"
)

// Import is an importable project and the type names it declares.
type Import struct {
	ProjectName string
	// Version is the required project version such as "1.0", empty for any.
	Version    string
	knownTypes map[string]struct{}
}

// IsKnownType reports whether the import declares typ.
func (i *Import) IsKnownType(typ string) bool {
	_, ok := i.knownTypes[typ]
	return typ != "" && ok
}

// KnownTypes returns the declared type names, sorted.
func (i *Import) KnownTypes() []string {
	result := make([]string, 0, len(i.knownTypes))
	for t := range i.knownTypes {
		result = append(result, t)
	}
	sort.Strings(result)
	return result
}

// Registry maps semantic ids to imports and to the specific type an id stands for.
type Registry struct {
	bySemanticID map[string]*Import
	specificType map[string]string
	imports      []*Import
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bySemanticID: map[string]*Import{},
		specificType: map[string]string{},
	}
}

// ContactInformationsProject is the project of IDTA 02002 contact information.
const ContactInformationsProject = "IDTA_02002_ContactInformations"

// Default creates the registry of the imports known to the converter, currently the IDTA 02002
// contact information.
func Default() *Registry {
	r := NewRegistry()
	ci := r.Define(ContactInformationsProject, "1.0",
		"RoleOfContactPerson", "TypeOfTelephone", "TypeOfFaxNumber", "TypeOfEmailAddress",
		"ContactInformations", "ContactInformation", "Phone", "Fax", "Email", "IPCommunication")
	const base = "https://admin-shell.io/zvei/nameplate/1/0/ContactInformations"
	r.Add(semanticid.Compose(semanticid.IRIPrefix, base), "ContactInformations", ci)
	// isCaseOf ids as used in IDTA 02010
	r.Add("irdi:0173-1#02-AAQ837#007", "ContactInformations", ci)
	r.Add(semanticid.Compose(semanticid.IRIPrefix, base+"/ContactInformation"), "ContactInformation", ci)
	r.Add("irdi:0173-1#01-ADR448#007", "ContactInformation", ci)
	r.Add(semanticid.Compose(semanticid.IRIPrefix, base+"/ContactInformation/Phone"), "Phone", ci)
	r.Add("irdi:0173-1#02-AAQ834#005", "Fax", ci)
	r.Add("irdi:0173-1#02-AAQ836#005", "Email", ci)
	r.Add(semanticid.Compose(semanticid.IRIPrefix, base+"/ContactInformation/IPCommunication/"),
		"IPCommunication", ci)
	return r
}

// Define declares an import of projectName with the given type names.
func (r *Registry) Define(projectName, version string, knownTypes ...string) *Import {
	imp := &Import{ProjectName: projectName, Version: version, knownTypes: map[string]struct{}{}}
	for _, t := range knownTypes {
		imp.knownTypes[t] = struct{}{}
	}
	r.imports = append(r.imports, imp)
	return imp
}

// Add maps semanticID to imp. If specificType is not empty, elements with semanticID are of
// that type.
func (r *Registry) Add(semanticID, specificType string, imp *Import) {
	r.bySemanticID[semanticID] = imp
	if specificType != "" {
		r.specificType[semanticID] = specificType
	}
}

// Import returns the import declaring the element with semanticID.
func (r *Registry) Import(semanticID string) (*Import, bool) {
	if semanticID == "" {
		return nil, false
	}
	imp, ok := r.bySemanticID[semanticID]
	return imp, ok
}

// SpecificType returns the type an element with semanticID is of.
func (r *Registry) SpecificType(semanticID string) (string, bool) {
	if semanticID == "" {
		return "", false
	}
	t, ok := r.specificType[semanticID]
	return t, ok
}

// IsKnownType reports whether any import declares typ.
func (r *Registry) IsKnownType(typ string) bool {
	return r.IsKnownTypeExcluding(typ, nil)
}

// IsKnownTypeExcluding reports whether an import not in excludes declares typ.
func (r *Registry) IsKnownTypeExcluding(typ string, excludes []*Import) bool {
	for _, imp := range r.imports {
		if !slices.Contains(excludes, imp) && imp.IsKnownType(typ) {
			return true
		}
	}
	return false
}

// Imports returns all imports sorted by project name.
func (r *Registry) Imports() []*Import {
	return Sort(slices.Clone(r.imports))
}

// ProjectNames returns the sorted project names of all imports, joined by ", ".
func (r *Registry) ProjectNames() string {
	names := make([]string, 0, len(r.imports))
	for _, imp := range r.Imports() {
		names = append(names, imp.ProjectName)
	}
	return strings.Join(names, ", ")
}

// Sort sorts imports by project name in place and returns them.
func Sort(imports []*Import) []*Import {
	sort.SliceStable(imports, func(i, j int) bool {
		return imports[i].ProjectName < imports[j].ProjectName
	})
	return imports
}
