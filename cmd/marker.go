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

	"github.com/valpere/logreturn/internal/logwrap"
)

var markerCmd = &cobra.Command{
	Use:   "marker [expr]",
	Short: "Print the logging wrapper, optionally around an expression",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr := "<expr>"
		if len(args) == 1 {
			expr = args[0]
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), logwrap.WrapExpr(expr))
		return err
	},
}

func init() {
	rootCmd.AddCommand(markerCmd)
}
