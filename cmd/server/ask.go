package main

import (
	"bufio"
	"fmt"
	"strings"

	"careerbot/backend/internal/domain/chat"

	"github.com/spf13/cobra"
)

func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask [message...]",
		Short: "Ask the career bot from the terminal",
		Long: "Answers a single message given as arguments. Without arguments it reads one\n" +
			"message per line from stdin and keeps the miss streak across lines.",
		RunE: func(cmd *cobra.Command, args []string) error {
			matcher := chat.NewMatcher(nil)
			out := cmd.OutOrStdout()

			if len(args) > 0 {
				res := matcher.Match(strings.Join(args, " "), 0)
				fmt.Fprintln(out, res.Reply)
				return nil
			}

			streak := 0
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				res := matcher.Match(scanner.Text(), streak)
				streak = res.Streak
				fmt.Fprintln(out, res.Reply)
			}
			return scanner.Err()
		},
	}
}
