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

// Options tunes the layout heuristics of the processor. DefaultOptions reproduces the
// behaviour the IDTA template tables were tuned against.
type Options struct {
	// OrAlternatives splits "A or B" and "A (B/C)" idShorts into sibling types and fields.
	OrAlternatives           bool `mapstructure:"orAlternatives" json:"orAlternatives" yaml:"orAlternatives"`
	// GenericFieldPairing lets a generic type declaration set the value type of the oldest
	// pending generic field.
	GenericFieldPairing      bool `mapstructure:"genericFieldPairing" json:"genericFieldPairing" yaml:"genericFieldPairing"`
	// MaxSplitContinuationRows limits the number of rows that may continue a field row whose
	// cells were split over several rows. Zero or less means no limit.
	MaxSplitContinuationRows int  `mapstructure:"maxSplitContinuationRows" json:"maxSplitContinuationRows" yaml:"maxSplitContinuationRows"`
	// StrictHeaders reports field tables with only one of the two header rows as warning
	// instead of a debug message.
	StrictHeaders            bool `mapstructure:"strictHeaders" json:"strictHeaders" yaml:"strictHeaders"`
}

// DefaultOptions returns the default heuristics.
func DefaultOptions() Options {
	return Options{
		OrAlternatives:           true,
		GenericFieldPairing:      true,
		MaxSplitContinuationRows: 2,
		StrictHeaders:            true,
	}
}
