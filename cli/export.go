package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/ONSdigital/dp-healthdata-discovery/export"
	"github.com/ONSdigital/dp-healthdata-discovery/models"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) exportDURCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-dur",
		Short: "Export the data use register",
		Long: `Export the whole data use register, optionally only the entries whose
organisation name contains --publisher.

Examples:
  healthdata export-dur
  healthdata export-dur --publisher Leeds --format json --output leeds.json`,
		Args: cobra.NoArgs,
		RunE: a.runExportDUR,
	}
	cmd.Flags().String("publisher", "", "keep entries whose organisation contains this text")
	cmd.Flags().String("format", string(export.FormatCSV), "csv or json")
	cmd.Flags().StringP("output", "o", "", "export file, - for standard output (default data_use_register[_<publisher>].<format>)")
	return cmd
}

func (a *app) runExportDUR(cmd *cobra.Command, args []string) error {
	publisher, _ := cmd.Flags().GetString("publisher")
	formatName, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Exporting Data Use Register...")

	uses, err := a.client.ExportDataUses(cmd.Context())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: data use export incomplete: %v\n", err)
	}
	fmt.Fprintf(out, "Found %d data use entries\n", len(uses))

	if publisher != "" {
		uses = byOrganisation(uses, publisher)
		fmt.Fprintf(out, "Filtered to %d entries for %q\n", len(uses), publisher)
	}

	result := models.NewSearchResult()
	result.DataUses = uses
	body, err := export.Render(result, format, a.client.WebURL)
	if err != nil {
		return err
	}

	if output == "" {
		output = "data_use_register"
		if publisher != "" {
			output += "_" + publisher
		}
		output += "." + string(format)
	}
	return writeOutput(cmd, output, body)
}

func byOrganisation(uses []models.DataUseRegister, organisation string) []models.DataUseRegister {
	want := strings.ToLower(organisation)
	out := make([]models.DataUseRegister, 0, len(uses))
	for _, du := range uses {
		if strings.Contains(strings.ToLower(du.OrganisationName), want) {
			out = append(out, du)
		}
	}
	return out
}

// writeOutput writes body to path, or to the command output when path is -
func writeOutput(cmd *cobra.Command, path, body string) error {
	if path == "-" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), body)
		return err
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
	return nil
}
