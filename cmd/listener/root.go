package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ai-listener/internal/emotion"
)

type rootOptions struct {
	lexiconPath string
	seed        uint64
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "listener",
		Short:         "Emotion classification and empathetic replies",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.lexiconPath, "lexicon", "", "YAML lexicon override (defaults to the built-in tables)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log each classification")

	root.AddCommand(newAnalyzeCmd(opts), newChatCmd(opts), newLexiconCmd(opts))
	return root
}

func (o *rootOptions) engine() (*emotion.Engine, error) {
	if o.lexiconPath == "" {
		return emotion.NewEngine(nil), nil
	}
	lex, err := emotion.LoadLexiconFile(o.lexiconPath)
	if err != nil {
		return nil, err
	}
	return emotion.NewEngine(lex), nil
}

func (o *rootOptions) picker() emotion.Picker {
	if o.seed == 0 {
		return emotion.SharedPicker
	}
	return emotion.NewSeededPicker(o.seed)
}

func (o *rootOptions) logger() *zap.Logger {
	if !o.verbose {
		return zap.NewNop()
	}
	return zap.NewExample()
}

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	var detail bool
	cmd := &cobra.Command{
		Use:   "analyze TEXT...",
		Short: "Classify a message and print the reply record as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}
			analysis := engine.Analyze(strings.Join(args, " "), opts.picker())
			logReply(opts.logger(), analysis.Reply)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			if detail {
				return enc.Encode(analysis)
			}
			return enc.Encode(analysis.Reply)
		},
	}
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for response selection (0 = random)")
	cmd.Flags().BoolVar(&detail, "detail", false, "include intermediate result and topic")
	return cmd
}

func newChatCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive conversation over stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}
			return runChat(cmd.InOrStdin(), cmd.OutOrStdout(), engine, opts.picker(), opts.logger())
		},
	}
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for response selection (0 = random)")
	return cmd
}

// runChat lee una línea por turno hasta EOF o "exit".
func runChat(in io.Reader, out io.Writer, engine *emotion.Engine, p emotion.Picker, logger *zap.Logger) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, "I'm here and listening. Type 'exit' to leave.")
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit") {
			fmt.Fprintln(out, "Take care of yourself.")
			return nil
		}
		reply := engine.Respond(line, p)
		logReply(logger, reply)
		fmt.Fprintf(out, "[%s %.2f] %s\n", reply.Emotion, reply.Confidence, reply.Response)
		fmt.Fprintf(out, "tip: %s\n", reply.CopingTip)
	}
}

func logReply(logger *zap.Logger, reply emotion.Reply) {
	logger.Info("classified",
		zap.String("emotion", reply.Emotion),
		zap.Float64("confidence", reply.Confidence),
		zap.Bool("is_crisis", reply.IsCrisis),
	)
}
