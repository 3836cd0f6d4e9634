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

package main

import (
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/pipeline"
)

func newInspectCmd() *cobra.Command {
	var output string
	var format string

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the validated template summary of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputFormat, err := pipeline.ParseFormat(format)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			result, err := pipeline.NewConverter(pipeline.DefaultOptions()).Convert(cmd.Context(), pipeline.Input{
				Name:   filepath.Base(args[0]),
				Format: inputFormat,
				Data:   data,
			})
			if err != nil {
				return err
			}

			var out []byte
			switch output {
			case "yaml":
				out, err = yaml.Marshal(result.Summary)
			case "json":
				out, err = jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(result.Summary, "", "  ")
				out = append(out, '\n')
			default:
				return fmt.Errorf("unknown output %q, expected yaml or json", output)
			}
			if err != nil {
				return fmt.Errorf("encode summary: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&output, "output", "yaml", "output encoding: yaml or json")
	cmd.Flags().StringVar(&format, "format", "auto", "input format: auto, json, csv or aas")

	return cmd
}
