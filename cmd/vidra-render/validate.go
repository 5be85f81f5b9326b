// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sansa-Organisation/vidra-sub001/ir"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <project.json>",
		Short: "Validate a project IR file without rendering it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := loadProject(args[0])
			if err != nil {
				return err
			}
			errs := ir.Validate(project)
			if len(errs) == 0 {
				fmt.Println("ok")
				return nil
			}
			for _, e := range errs {
				fmt.Fprintln(os.Stderr, e.Error())
			}
			return fmt.Errorf("%d validation error(s)", len(errs))
		},
	}
}

func loadProject(path string) (*ir.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	return ir.Parse(data)
}
