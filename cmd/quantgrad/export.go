package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/qat-ml/quantgrad/quantsim"
)

func exportCmd() *cli.Command {
	var (
		configPath string
		outputPath string
	)

	return &cli.Command{
		Name:  "export",
		Usage: "Export quantizer encodings as a JSON document",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to quantizer YAML config",
				Required:    true,
				Destination: &configPath,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output path for the encoding document",
				Value:       "encodings.json",
				Destination: &outputPath,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := quantsim.LoadConfig(configPath)
			if err != nil {
				return err
			}

			doc := &quantsim.EncodingDocument{
				Version:             quantsim.ExportVersion,
				ActivationEncodings: make(map[string][]quantsim.EncodingEntry),
				ParamEncodings:      make(map[string][]quantsim.EncodingEntry),
			}
			for _, q := range cfg.Quantizers {
				entry := quantsim.NewEntry(q.Encoding())
				if q.Param {
					doc.ParamEncodings[q.Name] = append(doc.ParamEncodings[q.Name], entry)
				} else {
					doc.ActivationEncodings[q.Name] = append(doc.ActivationEncodings[q.Name], entry)
				}
			}

			if err := quantsim.ExportEncodings(outputPath, doc); err != nil {
				return err
			}
			fmt.Printf("wrote %d encodings to %s\n", len(cfg.Quantizers), outputPath)
			return nil
		},
	}
}
