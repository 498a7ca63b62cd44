package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/textact/textact/internal/app"
	"github.com/textact/textact/internal/domain"
)

func newDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose configuration and environment problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := container.DoctorService.Run(cmd.Context())
			renderDoctorReport(cmd.OutOrStdout(), report)
			if err != nil {
				return err
			}
			if report.HasErrors() {
				return errors.New("doctor found problems")
			}
			return nil
		},
	}
}

func renderDoctorReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, " %s %s %s\n", statusGlyph(check.Status), pad(check.Name, 14), styleMuted.Render(check.Details))
	}
}

func statusGlyph(status domain.HealthStatus) string {
	switch status {
	case domain.HealthOK:
		return styleOK.Render("✓")
	case domain.HealthWarn:
		return styleWarn.Render("!")
	default:
		return styleFail.Render("✗")
	}
}
