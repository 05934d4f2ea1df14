package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the bot on the terminal",
		Long: `Read messages from stdin, one per line, and print each reply.

Examples:
  lab-hours-bot chat
  echo "9:00-9:15 standup" | lab-hours-bot chat`,
		Args: cobra.NoArgs,
		RunE: a.runChat,
	}
}

func (a *app) runChat(cmd *cobra.Command, args []string) error {
	_, _, services, err := a.build()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if _, err := fmt.Fprintln(out, services.Router.Handle(cmd.Context(), line)); err != nil {
			return err
		}
	}
	return scanner.Err()
}
