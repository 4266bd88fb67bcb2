package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/de-tools/growth-atlas/pkg/models/domain"
	"github.com/de-tools/growth-atlas/pkg/services/input"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type InteractiveCmd struct {
	env     *Environment
	profile string
	format  string
}

func NewInteractiveCmd(env *Environment) *cobra.Command {
	ic := &InteractiveCmd{env: env}
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Edit the parameters line by line and watch the projection update",
		Long: `Reads one change per line, for example "rate=5" or "years 30".
Every accepted change re-renders the projection. Invalid values are logged
and the previous value is kept. "show" re-renders, "fields" lists the
inputs, "quit" exits.`,
		RunE: ic.run,
	}

	cmd.Flags().StringVar(&ic.profile, "profile", "", "Named profile to seed the parameters from")
	cmd.Flags().StringVar(&ic.format, "format", "summary", "Output format (table, summary, json)")

	return cmd
}

func (ic *InteractiveCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	reporter, err := ic.env.reporter(ic.format)
	if err != nil {
		return err
	}

	session, err := ic.env.newSession(ctx, ic.profile)
	if err != nil {
		return err
	}

	var renderErr error
	session.Subscribe(func(view domain.View) {
		if err := reporter.Handle(view); err != nil {
			renderErr = err
		}
	})
	if err := reporter.Handle(session.View()); err != nil {
		return err
	}

	handlers := make(map[domain.Field]func(string) error, len(domain.Fields))
	for _, f := range domain.Fields {
		handlers[f] = session.Binder(f)
	}

	scanner := bufio.NewScanner(ic.env.In)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "show":
			if err := reporter.Handle(session.View()); err != nil {
				return err
			}
			continue
		case "fields":
			ic.printFields(session)
			continue
		}

		name, raw, ok := splitAssignment(line)
		if !ok {
			logger.Warn().Str("line", line).Msg("expected <field>=<value>")
			continue
		}
		f, err := domain.ParseField(name)
		if err != nil {
			logger.Warn().Err(err).Msg("unknown field")
			continue
		}

		// rejections are logged by the session
		_ = handlers[f](raw)
		if renderErr != nil {
			return renderErr
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func (ic *InteractiveCmd) printFields(session *input.Session) {
	params := session.Parameters()
	for _, d := range input.Describe(session.Bounds()) {
		fmt.Fprintf(ic.env.Out, "%-10s %-26s %g in [%g, %g]\n",
			d.Field, d.Label, params.Get(d.Field), d.Min, d.Max)
	}
}

func splitAssignment(line string) (string, string, bool) {
	if name, raw, ok := strings.Cut(line, "="); ok {
		return strings.TrimSpace(name), strings.TrimSpace(raw), true
	}
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
