package commands

import (
	"errors"
	"fmt"

	"github.com/de-tools/growth-atlas/pkg/models/domain"
	"github.com/spf13/cobra"
)

type ProjectCmd struct {
	env     *Environment
	profile string
	format  string
	strict  bool
	values  map[domain.Field]*string
}

func NewProjectCmd(env *Environment) *cobra.Command {
	pc := &ProjectCmd{env: env, values: make(map[domain.Field]*string)}
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project the growth of a periodic contribution",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.profile, "profile", "", "Named profile to seed the parameters from")
	cmd.Flags().StringVar(&pc.format, "format", "table", "Output format (table, summary, json)")
	cmd.Flags().BoolVar(&pc.strict, "strict", false, "Fail instead of keeping the seed value when an input is rejected")

	usage := map[domain.Field]string{
		domain.FieldRate:      "Annual interest rate in percent",
		domain.FieldPrincipal: "Contribution per period",
		domain.FieldPeriods:   "Contributions (and compounding periods) per year",
		domain.FieldYears:     "Projection horizon in years",
	}
	for _, f := range domain.Fields {
		pc.values[f] = cmd.Flags().String(string(f), "", usage[f])
	}

	return cmd
}

func (pc *ProjectCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	reporter, err := pc.env.reporter(pc.format)
	if err != nil {
		return err
	}

	session, err := pc.env.newSession(ctx, pc.profile)
	if err != nil {
		return err
	}

	var updates []domain.Update
	for _, f := range domain.Fields {
		if cmd.Flags().Changed(string(f)) {
			updates = append(updates, domain.Update{Field: f, Raw: *pc.values[f]})
		}
	}

	rejected := session.Apply(updates)
	if pc.strict && len(rejected) > 0 {
		errs := make([]error, 0, len(rejected))
		for _, r := range rejected {
			errs = append(errs, r.Err)
		}
		return fmt.Errorf("invalid input: %w", errors.Join(errs...))
	}

	return reporter.Handle(session.View())
}
