// describe-sql prints the plain-English description of a SQL query.
// The query is read from the arguments, or from stdin when none are given.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ekaya-inc/ekaya-querydesc/pkg/describe"
	"github.com/ekaya-inc/ekaya-querydesc/pkg/naming"
)

const wordWrap = 100

type options struct {
	dictionary string
	asJSON     bool
	asHTML     bool
	plain      bool
	technical  bool
	joins      bool
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "describe-sql [sql...]",
		Short: "Describe a SQL query in plain English",
		Long: `Translates a SQL SELECT into a short summary and detail lines.
Reads the query from stdin when no arguments are given.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.dictionary, "dictionary", "d", "", "YAML file of table/field display names")
	flags.BoolVar(&opts.asJSON, "json", false, "Print the description as JSON")
	flags.BoolVar(&opts.asHTML, "html", false, "Print the description as an HTML fragment")
	flags.BoolVar(&opts.plain, "plain", false, "Print markdown without terminal styling")
	flags.BoolVar(&opts.technical, "technical", false, "Include the original query")
	flags.BoolVar(&opts.joins, "joins", false, "List JOINed tables as related data")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log dropped conditions to stderr")
	cmd.MarkFlagsMutuallyExclusive("json", "html", "plain")

	return cmd
}

func runDescribe(cmd *cobra.Command, args []string, opts *options) error {
	query, err := readQuery(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if opts.verbose {
		logConfig := zap.NewDevelopmentConfig()
		logConfig.OutputPaths = []string{"stderr"}
		if logger, err = logConfig.Build(); err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
	}

	names := naming.Default()
	if opts.dictionary != "" {
		custom, err := naming.LoadFile(opts.dictionary)
		if err != nil {
			return err
		}
		names = names.Merge(custom)
	}

	translator := describe.NewTranslator(names, logger)

	var describeOpts describe.Options
	if opts.joins {
		describeOpts.RelatedData = translator.RelatedFromJoins(query, describeOpts.CustomNames)
	}

	desc := translator.Translate(query, describeOpts)
	if !opts.technical {
		desc.Technical = ""
	}

	out := cmd.OutOrStdout()
	switch {
	case opts.asJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(desc)
	case opts.asHTML:
		html, err := describe.RenderHTML(desc)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, html)
		return err
	}

	md := describe.Markdown(desc)
	if desc.Technical != "" {
		md += "\n```sql\n" + desc.Technical + "\n```\n"
	}

	if opts.plain {
		_, err = io.WriteString(out, md)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render description: %w", err)
	}
	_, err = io.WriteString(out, rendered)
	return err
}

func readQuery(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read query from stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
