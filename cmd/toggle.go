/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valpere/logreturn/internal"
	"github.com/valpere/logreturn/internal/buffer"
	"github.com/valpere/logreturn/internal/editor"
)

var (
	toggleLine  int
	toggleRange string
)

var toggleCmd = &cobra.Command{
	Use:   "toggle [file]",
	Short: "Toggle the logging wrapper on a line or selection of a file",
	Long: `Toggle the console.log wrapper on the current line or on a selection.

Without --range the whole line given by --line is used; it must be a
"return <expr>;" statement or an already wrapped one. With --range the
selected text is used, and any non-empty selection can be wrapped.

Positions are 1-based, columns count characters, and the range end is
exclusive:
  logreturn toggle app.js --line 12
  logreturn toggle app.js --range 12:10-15:5 --write

Without --write the edited document is printed to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var sel internal.Range
		if toggleRange != "" {
			r, err := parseRange(toggleRange)
			if err != nil {
				return err
			}
			sel = r
		}

		line := toggleLine
		if !cmd.Flags().Changed("line") && toggleRange != "" {
			line = sel.End.Line + 1
		}
		if line < 1 {
			return fmt.Errorf("invalid line %d: lines start at 1", line)
		}

		var doc *buffer.Document
		if len(args) == 1 {
			d, err := buffer.Load(args[0])
			if err != nil {
				return fmt.Errorf("failed to open document: %w", err)
			}
			doc = d
		}

		host, err := editor.NewFileHost(doc, line-1, sel, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		out, err := editor.LogReturnValue(host, logger)
		if err != nil {
			return err
		}

		if doc != nil {
			if cfg.Write {
				if doc.Changed() {
					if err := doc.Save(); err != nil {
						return err
					}
					logger.WithField("file", doc.Path()).Info("document saved")
				}
			} else {
				data, err := doc.Bytes()
				if err != nil {
					return err
				}
				if _, err := cmd.OutOrStdout().Write(data); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
		}

		if cfg.Strict {
			return out.Err()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)

	toggleCmd.Flags().IntVarP(&toggleLine, "line", "l", 1, "Cursor line (1-based)")
	toggleCmd.Flags().StringVarP(&toggleRange, "range", "r", "", "Selection as LINE:COL-LINE:COL (1-based, end exclusive)")
	toggleCmd.Flags().BoolP("write", "w", false, "Write the result back to the file")
}
