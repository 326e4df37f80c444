package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"quarry/internal/search"
)

// enginesCmd lists the registered search providers
var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List registered search providers",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("🔌 Registered engines:")
		for _, name := range search.Names() {
			ctor, _ := search.Lookup(name)
			eng := ctor(nil, nil)

			configured := "not configured"
			if _, ok := cfg.Engines[name]; ok {
				configured = "configured"
			}

			fmt.Printf("   %-12s %s", name, configured)
			if reqs := eng.Requirements(); len(reqs) > 0 {
				fmt.Printf(" (requires %s)", strings.Join(reqs, ", "))
			}
			fmt.Println()
		}
		return nil
	},
}
