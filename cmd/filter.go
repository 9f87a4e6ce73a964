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
	"io"

	"github.com/spf13/cobra"

	"github.com/valpere/logreturn/internal/editor"
)

var filterLineMode bool

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Toggle the logging wrapper on text read from stdin",
	Long: `Read a selection from stdin and write it back to stdout with the
console.log wrapper toggled. Text that cannot be toggled is written back
unchanged, so editors can always replace the selection with the output.

--line-mode treats the input as the current line instead of a selection:
only "return <expr>;" statements and wrapped forms are toggled.

  :'<,'>!logreturn filter          (vim, visual selection)
  :.!logreturn filter --line-mode  (vim, current line)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		host := editor.NewStreamHost(string(input), filterLineMode, cmd.ErrOrStderr())
		out, err := editor.LogReturnValue(host, logger)
		if err != nil {
			return err
		}

		if _, err := io.WriteString(cmd.OutOrStdout(), host.Output()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}

		if cfg.Strict {
			return out.Err()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(filterCmd)

	filterCmd.Flags().BoolVar(&filterLineMode, "line-mode", false, "Treat input as the current line rather than a selection")
}
