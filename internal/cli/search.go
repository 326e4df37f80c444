package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"quarry/internal/common"
	"quarry/internal/search"
)

var (
	searchEngine string
	searchAll    bool
	searchOutput string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Run a query against a configured search provider",
	Long: `Search sends one query to a provider selected from the engine
registry and prints the result URLs in the provider's relevance order.
With --all the query fans out to every configured provider at once.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchEngine, "engine", "e", "", "provider to query (default from config)")
	searchCmd.Flags().BoolVarP(&searchAll, "all", "a", false, "query every configured provider concurrently")
	searchCmd.Flags().StringVarP(&searchOutput, "output", "o", "", "output file for result URLs")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	if cfg.Proxy != "" {
		if err := common.SetGlobalProxy(cfg.Proxy); err != nil {
			return fmt.Errorf("failed to configure proxy: %w", err)
		}
		if IsVerbose() {
			fmt.Printf("   Using proxy %s\n", common.GetGlobalProxy())
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n🛑 Received interrupt, cancelling query...")
		cancel()
	}()

	var urls []string
	if searchAll {
		res, err := searchAllEngines(ctx, query)
		if err != nil {
			return err
		}
		urls = res
	} else {
		eng, err := buildEngine(selectedEngineName())
		if err != nil {
			return err
		}
		urls, err = eng.Search(ctx, query)
		if err != nil {
			return err
		}
	}

	printURLs(query, urls)

	if searchOutput != "" && len(urls) > 0 {
		if err := writeURLs(searchOutput, urls); err != nil {
			return err
		}
		fmt.Printf("\n   Saved %d URLs to %s\n", len(urls), searchOutput)
	}

	return nil
}

func selectedEngineName() string {
	if searchEngine != "" {
		return searchEngine
	}
	return cfg.Engine
}

// buildEngine resolves name in the registry and constructs the engine
// with its configured credentials. Each engine gets its own client so
// per-engine auth never leaks across providers.
func buildEngine(name string) (search.Engine, error) {
	ctor, ok := search.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown engine %q (known: %s)", name, strings.Join(search.Names(), ", "))
	}
	cred := search.Credentials(cfg.Engines[name])
	return ctor(cred, common.DefaultHTTPClient()), nil
}

func searchAllEngines(ctx context.Context, query string) ([]string, error) {
	var engines []search.Engine
	for _, name := range search.Names() {
		if _, ok := cfg.Engines[name]; !ok {
			continue
		}
		eng, err := buildEngine(name)
		if err != nil {
			return nil, err
		}
		engines = append(engines, eng)
	}
	if len(engines) == 0 {
		return nil, fmt.Errorf("no engines configured (run 'quarry config init')")
	}

	res := search.NewMulti(engines).Search(ctx, query)

	if IsVerbose() {
		fmt.Println("\n   Results by engine:")
		for _, er := range res.ByEngine {
			if er.Err != nil {
				fmt.Printf("     [%s] ✗ %v\n", er.Engine, er.Err)
			} else {
				fmt.Printf("     [%s] ✓ %d URLs\n", er.Engine, len(er.URLs))
			}
		}
		fmt.Printf("   Duration: %s\n", res.Duration.Round(100*1e6))
	}

	return res.URLs, nil
}

func printURLs(query string, urls []string) {
	fmt.Printf("\n🔎 Results for %q:\n", query)
	if len(urls) == 0 {
		fmt.Println("   (no matches)")
		return
	}
	for _, u := range urls {
		fmt.Printf("   %s\n", u)
	}
}

func writeURLs(path string, urls []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	for _, u := range urls {
		fmt.Fprintln(file, u)
	}
	return nil
}
