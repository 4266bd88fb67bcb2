package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewProfilesCmd(env *Environment) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the named parameter profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := env.Registry.GetProfiles(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list profiles: %w", err)
			}
			if len(profiles) == 0 {
				fmt.Fprintln(env.Out, "No profiles found.")
				return nil
			}
			for _, p := range profiles {
				fmt.Fprintln(env.Out, p.String())
			}
			return nil
		},
	}
}
