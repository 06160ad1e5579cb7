package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ai-listener/internal/emotion"
)

func newLexiconCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Inspect and validate lexicon tables",
	}

	var file string
	check := &cobra.Command{
		Use:   "check",
		Short: "Compile a lexicon and run the integrity check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := file
			if path == "" {
				path = opts.lexiconPath
			}
			lex := emotion.DefaultLexicon()
			if path != "" {
				var err error
				if lex, err = emotion.LoadLexiconFile(path); err != nil {
					return err
				}
			}
			if err := lex.Validate(); err != nil {
				return err
			}
			source := path
			if source == "" {
				source = "built-in"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "lexicon ok (%s): %d labels\n", source, len(lex.ProducibleLabels()))
			return nil
		},
	}
	check.Flags().StringVar(&file, "file", "", "lexicon file to check")

	dump := &cobra.Command{
		Use:   "dump",
		Short: "Write the built-in lexicon as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return emotion.DumpLexicon(cmd.OutOrStdout(), emotion.DefaultSpec())
		},
	}

	cmd.AddCommand(check, dump)
	return cmd
}
