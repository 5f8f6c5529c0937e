package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// emit prints v as JSON when asJSON is set and the text rendering otherwise.
// Paths are written as-is, so HTML escaping is off.
func emit(cmd *cobra.Command, asJSON bool, v any, render func() string) error {
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	}
	_, err := fmt.Fprint(out, render())
	return err
}
