// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Sansa-Organisation/vidra-sub001/core"
	"github.com/Sansa-Organisation/vidra-sub001/ir"
	"github.com/Sansa-Organisation/vidra-sub001/render"
)

func renderCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "render <project.json>",
		Short: "Render every frame of a project to PNG files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := loadProject(args[0])
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

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}

			total := p.TotalFrames(project)
			for f := 0; f < total; f++ {
				frame, err := p.RenderFrameIndex(project, f)
				if err != nil {
					return fmt.Errorf("rendering frame %d: %w", f, err)
				}
				if err := writePNG(filepath.Join(outDir, fmt.Sprintf("frame_%06d.png", f)), frame); err != nil {
					return err
				}
				if logger != nil {
					logger.Debug().Src("cli").Frame(f).Msgf("wrote frame %d/%d", f+1, total)
				}
			}
			fmt.Printf("rendered %d frames to %s\n", total, outDir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "./out", "output directory for rendered PNG frames")
	return cmd
}

func writePNG(path string, frame *core.FrameBuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return png.Encode(f, render.ToImage(frame))
}
