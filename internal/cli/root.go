package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/trending/pkg/buildinfo"
	errs "github.com/matzehuels/trending/pkg/errors"
	"github.com/matzehuels/trending/pkg/integrations/github"
	"github.com/matzehuels/trending/pkg/trending"
)

// rootFlags holds the flags of the root command.
type rootFlags struct {
	verbose    bool
	jsonOutput bool
	configPath string
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   appName + " <language>",
		Short: "Show trending GitHub repositories for a language",
		Long: `Fetches the GitHub Trending page for a programming language and prints
the ranked repositories with their stars, description and URL.

Examples:
  trending go
  trending Rust --json
  trending python -v`,
		Version:       buildinfo.Version,
		Args:          requireLanguage,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := LogInfo
			if flags.verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
			installLogHooks(c.Logger)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTrending(cmd, args[0], flags)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().BoolVar(&flags.jsonOutput, "json", false, "print repositories as JSON")
	root.Flags().StringVar(&flags.configPath, "config", "", "config file (default ~/.config/trending/config.toml)")

	root.AddCommand(c.completionCommand())

	return root
}

// requireLanguage accepts exactly one positional language. When it is
// missing, a usage hint goes to stdout and the error to the caller.
func requireLanguage(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 1:
		return nil
	case 0:
		fmt.Fprintf(cmd.OutOrStdout(), "Usage: %s <language>\n", appName)
		return errs.New(errs.ErrCodeMissingArgument, "missing required argument <language>")
	default:
		return errs.New(errs.ErrCodeInvalidInput, "expected one language, got %d arguments", len(args))
	}
}

// runTrending fetches, extracts and prints the trending listing. Upstream
// failures are reported as messages and do not fail the command.
func (c *CLI) runTrending(cmd *cobra.Command, language string, flags rootFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig(flags.configPath)
	if err != nil {
		return err
	}

	language = strings.ToLower(language)
	client := github.NewClient(cfg.ClientOptions())
	logger.Debug("fetching trending page", "url", client.TrendingURL(language))

	out := cmd.OutOrStdout()
	msgOut := out
	if flags.jsonOutput {
		msgOut = cmd.ErrOrStderr()
	}

	repos, err := c.fetch(ctx, cmd.ErrOrStderr(), client, language, flags.verbose)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled), errs.Is(err, errs.ErrCodeInvalidLanguage):
		return err
	case errs.Is(err, errs.ErrCodeLanguageNotFound):
		printWarning(msgOut, "Language %q not found on GitHub Trending", language)
		return nil
	default:
		logger.Debug("fetch failed", "code", errs.GetCode(err), "err", err)
		printError(msgOut, "Failed to fetch trending repositories: %s", errs.UserMessage(err))
		repos = nil
	}

	if flags.jsonOutput {
		if len(repos) == 0 {
			printInfo(msgOut, "No repositories found")
		}
		return writeJSON(out, repos)
	}
	if len(repos) == 0 {
		printInfo(out, "No repositories found")
		return nil
	}
	printRepositories(out, language, repos)
	return nil
}

// fetch runs the request, showing a spinner on interactive terminals.
func (c *CLI) fetch(ctx context.Context, spinOut io.Writer, client *github.Client, language string, verbose bool) ([]trending.Repository, error) {
	var spin *Spinner
	if !verbose && isTerminal(spinOut) {
		spin = newSpinner(ctx, spinOut, fmt.Sprintf("Fetching trending %s repositories...", language))
		spin.Start()
	}

	prog := newProgress(loggerFromContext(ctx))
	repos, err := client.Trending(ctx, language)
	if spin != nil {
		spin.Stop()
	}
	if err == nil {
		prog.done(fmt.Sprintf("Fetched %d repositories", len(repos)))
	}
	return repos, err
}
