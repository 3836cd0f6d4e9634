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

package model

import (
	"sort"

	"github.com/FriedJannik/aas-go-sdk/types"
)

// Basic type names of the AAS data type library.
const (
	TypeString            = "StringType"
	TypeInteger           = "IntegerType"
	TypeReal              = "RealType"
	TypeBoolean           = "BooleanType"
	TypeLong              = "LongType"
	TypeFloat             = "FloatType"
	TypeDouble            = "DoubleType"
	TypeUnsignedInteger16 = "UnsignedInteger16Type"
	TypeUnsignedInteger32 = "UnsignedInteger32Type"
	TypeUnsignedInteger64 = "UnsignedInteger64Type"
	TypeBlob              = "AasBlobType"
	TypeDateTime          = "DateTimeType"
	TypeLangString        = "AasLangStringType"
	TypeMultiLangString   = "AasMultiLangStringType"
	TypeFileResource      = "AasFileResourceType"
	TypeReference         = "AasReferenceType"
	TypeRelation          = "AasRelationType"
	TypeAnyURI            = "AasAnyURIType"
	TypeRange             = "AasRangeType"
	TypeGenericCollection = "AasGenericSubmodelElementCollection"
	TypeGenericEntity     = "AasGenericEntityType"
)

type propertySpelling struct {
	spelling string
	target   string
}

// BasicTypes is the registry of basic type names and of the value type spellings found in
// submodel template tables.
type BasicTypes struct {
	names     map[string]struct{}
	spellings []propertySpelling
	index     map[string]string
}

// NewBasicTypes creates the registry of the AAS data type library.
func NewBasicTypes() *BasicTypes {
	b := &BasicTypes{
		names: map[string]struct{}{},
		index: map[string]string{},
	}
	for _, n := range []string{TypeString, TypeInteger, TypeReal, TypeBoolean, TypeLong, TypeFloat,
		TypeDouble, TypeUnsignedInteger16, TypeUnsignedInteger32, TypeUnsignedInteger64, TypeBlob,
		TypeDateTime, TypeLangString, TypeMultiLangString, TypeFileResource, TypeReference,
		TypeRelation, TypeAnyURI, TypeRange, TypeGenericCollection, TypeGenericEntity} {
		b.names[n] = struct{}{}
	}
	b.register(TypeString, "listofProperties<string>", "xs:string", "String", "string", "STRING")
	b.register(TypeInteger, "Decimal", "int", "integer", "Integer(count)", "Integer (count)",
		"INTEGER_COUNT", "xs:integer", "xs:int", "Integer")
	b.register(TypeLong, "LONG", "xs:long", "long")
	b.register(TypeFloat, "Float", "float")
	b.register(TypeDouble, "xs:double", "Double", "double", "Real", "REAL_MEASURE", "real")
	b.register(TypeMultiLangString, "STRING_TRANSLATABLE")
	b.register(TypeUnsignedInteger16, "unsignedShort")
	b.register(TypeUnsignedInteger32, "unsignedInt")
	b.register(TypeUnsignedInteger64, "xs:unsignedLong", "unsignedLong")
	b.register(TypeBoolean, "xs:boolean", "boolean", "Boolean")
	b.register(TypeAnyURI, "xs:anyURI", "anyURI")
	b.register(TypeFileResource, "file")
	b.register(TypeBlob, "Blob")
	b.register(TypeLangString, "LangStringSet", "langString")
	b.register(TypeDateTime, "dateTimeStamp", "TIMESTSAMP", "Date", "dateTime", "DateTime",
		"xs:dateTime", "TimeStamp", "date")
	return b
}

func (b *BasicTypes) register(target string, spellings ...string) {
	for _, s := range spellings {
		b.spellings = append(b.spellings, propertySpelling{spelling: s, target: target})
		b.index[s] = target
	}
}

// IsBasic reports whether name is a basic type name.
func (b *BasicTypes) IsBasic(name string) bool {
	_, ok := b.names[name]
	return ok
}

// MapPropertyType maps a value type spelling such as "xs:string" to its basic type name.
// Unknown spellings yield dflt, an empty valueType yields "".
func (b *BasicTypes) MapPropertyType(valueType, dflt string) string {
	if valueType == "" {
		return ""
	}
	if target, ok := b.index[valueType]; ok {
		return target
	}
	return dflt
}

// IsKnownSpelling reports whether valueType is a known value type spelling.
func (b *BasicTypes) IsKnownSpelling(valueType string) bool {
	_, ok := b.index[valueType]
	return ok
}

// Names returns the basic type names, sorted.
func (b *BasicTypes) Names() []string {
	result := make([]string, 0, len(b.names))
	for n := range b.names {
		result = append(result, n)
	}
	sort.Strings(result)
	return result
}

// Spellings returns the value type spellings in registration order.
func (b *BasicTypes) Spellings() []string {
	result := make([]string, 0, len(b.spellings))
	for _, s := range b.spellings {
		result = append(result, s.spelling)
	}
	return result
}

// FromXSD maps an AAS XSD data type to a basic type name.
func (b *BasicTypes) FromXSD(dt types.DataTypeDefXSD) string {
	switch dt {
	case types.DataTypeDefXSDString, types.DataTypeDefXSDBase64Binary, types.DataTypeDefXSDHexBinary,
		types.DataTypeDefXSDDuration, types.DataTypeDefXSDGDay, types.DataTypeDefXSDGMonth,
		types.DataTypeDefXSDGMonthDay, types.DataTypeDefXSDGYear, types.DataTypeDefXSDGYearMonth,
		types.DataTypeDefXSDTime:
		return TypeString
	case types.DataTypeDefXSDAnyURI:
		return TypeAnyURI
	case types.DataTypeDefXSDBoolean:
		return TypeBoolean
	case types.DataTypeDefXSDInteger, types.DataTypeDefXSDInt, types.DataTypeDefXSDShort,
		types.DataTypeDefXSDByte, types.DataTypeDefXSDDecimal, types.DataTypeDefXSDNegativeInteger,
		types.DataTypeDefXSDNonNegativeInteger, types.DataTypeDefXSDNonPositiveInteger,
		types.DataTypeDefXSDPositiveInteger, types.DataTypeDefXSDUnsignedByte:
		return TypeInteger
	case types.DataTypeDefXSDLong:
		return TypeLong
	case types.DataTypeDefXSDUnsignedShort:
		return TypeUnsignedInteger16
	case types.DataTypeDefXSDUnsignedInt:
		return TypeUnsignedInteger32
	case types.DataTypeDefXSDUnsignedLong:
		return TypeUnsignedInteger64
	case types.DataTypeDefXSDFloat:
		return TypeFloat
	case types.DataTypeDefXSDDouble:
		return TypeDouble
	case types.DataTypeDefXSDDate, types.DataTypeDefXSDDateTime:
		return TypeDateTime
	}
	return TypeString
}
