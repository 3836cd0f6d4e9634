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

	"github.com/spf13/cobra"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/common"
	smtconfig "github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/config"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/pipeline"
)

type convertFlags struct {
	out        string
	prefix     string
	format     string
	workers    int
	configPath string
}

// converterSettings returns the converter configuration of --config, or the defaults.
func converterSettings(configPath string) (common.ConverterConfig, error) {
	if configPath == "" {
		opts := pipeline.DefaultOptions()
		return common.ConverterConfig{
			Workers:  smtconfig.DefaultWorkers,
			LogLevel: "INFO",
			Heuristics: common.HeuristicsConfig{
				OrAlternatives:           opts.Extraction.OrAlternatives,
				GenericFieldPairing:      opts.Extraction.GenericFieldPairing,
				MaxSplitContinuationRows: opts.Extraction.MaxSplitContinuationRows,
				StrictHeaders:            opts.Extraction.StrictHeaders,
			},
		}, nil
	}
	cfg, err := common.LoadConfig(configPath)
	if err != nil {
		return common.ConverterConfig{}, err
	}
	return cfg.Converter, nil
}

func readInputs(files []string, format pipeline.Format) ([]pipeline.Input, error) {
	inputs := make([]pipeline.Input, 0, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		inputs = append(inputs, pipeline.Input{Name: filepath.Base(file), Format: format, Data: data})
	}
	return inputs, nil
}

func newConvertCmd() *cobra.Command {
	var f convertFlags

	cmd := &cobra.Command{
		Use:   "convert <file>...",
		Short: "Convert template documents into IVML models",
		Long: `Convert row documents (JSON), CSV tables or AAS JSON environments into IVML.

For every document <project>.ivml and <project>.text are written to the output
directory. Documents are converted in parallel, the first failure stops the run.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := converterSettings(f.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("prefix") {
				settings.NamePrefix = f.prefix
			}
			if cmd.Flags().Changed("workers") {
				settings.Workers = f.workers
			}
			smtconfig.ApplyLogLevel(settings.LogLevel)

			format, err := pipeline.ParseFormat(f.format)
			if err != nil {
				return err
			}
			inputs, err := readInputs(args, format)
			if err != nil {
				return err
			}

			converter := pipeline.NewConverter(smtconfig.PipelineOptions(settings))
			results, err := converter.ConvertAll(cmd.Context(), inputs, smtconfig.Workers(settings))
			if err != nil {
				return err
			}

			if err := os.MkdirAll(f.out, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			for _, r := range results {
				if err := os.WriteFile(filepath.Join(f.out, r.Project+".ivml"), r.IVML, 0o644); err != nil {
					return fmt.Errorf("write model: %w", err)
				}
				if err := os.WriteFile(filepath.Join(f.out, r.Project+".text"), r.Index, 0o644); err != nil {
					return fmt.Errorf("write index: %w", err)
				}
				s := r.Summary.Statistics()
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s: %d types, %d fields, %d operations, %d enums, %d diagnostics\n",
					r.Name, r.Project, s.Types, s.Fields, s.Operations, s.Enums, len(r.Report.Diagnostics))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&f.out, "out", "o", ".", "output directory")
	cmd.Flags().StringVar(&f.prefix, "prefix", "", "prefix of the emitted type names")
	cmd.Flags().StringVar(&f.format, "format", "auto", "input format: auto, json, csv or aas")
	cmd.Flags().IntVar(&f.workers, "workers", smtconfig.DefaultWorkers, "documents converted in parallel")
	cmd.Flags().StringVar(&f.configPath, "config", "", "path to a service configuration file")

	return cmd
}
