package cli

import (
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
)

// printJSON writes the run summary to stdout. Logs go to the configured log
// output, so stdout stays machine-readable.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to print summary")
	}
	return nil
}
