package cli

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"
)

var periodArg = regexp.MustCompile(`^\d{1,2}-\d{4}$`)

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [MM-YYYY]",
		Short: "Print logged hours, optionally for one month",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runShow,
	}
}

func (a *app) runShow(cmd *cobra.Command, args []string) error {
	text := "show"
	if len(args) == 1 {
		if !periodArg.MatchString(args[0]) {
			return fmt.Errorf("invalid period %q, want MM-YYYY", args[0])
		}
		text += " " + args[0]
	}

	_, _, services, err := a.build()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), services.Router.Handle(cmd.Context(), text))
	return err
}
