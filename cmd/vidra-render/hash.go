// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sansa-Organisation/vidra-sub001/core"
	"github.com/Sansa-Organisation/vidra-sub001/ir"
	"github.com/Sansa-Organisation/vidra-sub001/render"
)

// receipt is the data shape of the determinism-verification contract.
// This command produces it but does not sign it: it emits the unsigned
// payload only.
type receipt struct {
	IRHash           string `json:"ir_hash"`
	OutputHash       string `json:"output_hash"`
	RenderDurationMs int64  `json:"render_duration_ms"`
	FrameCount       int    `json:"frame_count"`
}

func hashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <project.json>",
		Short: "Render a project and print its content-hash receipt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading project file: %w", err)
			}
			project, err := ir.Parse(data)
			if err != nil {
				return err
			}
			if errs := ir.Validate(project); len(errs) > 0 {
				return fmt.Errorf("project failed validation: %v", errs[0])
			}

			p := render.NewPipeline(logger)
			if err := p.LoadAssets(project); err != nil {
				return err
			}

			start := time.Now()
			total := p.TotalFrames(project)
			frames := make([]*core.FrameBuffer, total)
			for f := 0; f < total; f++ {
				frame, err := p.RenderFrameIndex(project, f)
				if err != nil {
					return fmt.Errorf("rendering frame %d: %w", f, err)
				}
				frames[f] = frame
			}
			elapsed := time.Since(start)

			irHash := sha256.Sum256(data)
			r := receipt{
				IRHash:           fmt.Sprintf("%x", irHash),
				OutputHash:       core.HashFrames(frames).String(),
				RenderDurationMs: elapsed.Milliseconds(),
				FrameCount:       total,
			}
			out, err := json.MarshalIndent(r, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}
