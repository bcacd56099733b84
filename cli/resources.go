package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/ONSdigital/dp-healthdata-discovery/export"
	"github.com/ONSdigital/dp-healthdata-discovery/models"
	"github.com/ONSdigital/dp-healthdata-discovery/search"
	"github.com/spf13/cobra"
)

const (
	summaryRunes         = 300
	introductionRunes    = 100
	datasetsUsedShown    = 5
	defaultPublisherList = 20
)

func (a *app) datasetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset <id>",
		Short: "Show a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			d, err := a.client.GetDataset(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printDataset(out, d, a.client.WebURL, true)

			if similar, _ := cmd.Flags().GetBool("similar"); !similar {
				return nil
			}

			searcher := search.NewSearcher(a.client)
			datasets, err := searcher.FindSimilarDatasets(cmd.Context(), d.ID, 0)
			if err != nil || len(datasets) == 0 {
				return nil
			}
			fmt.Fprint(out, "\n\nSIMILAR DATASETS\n")
			for _, s := range datasets {
				fmt.Fprintf(out, "\n* %s\n  Publisher: %s\n  URL: %s\n", s.Title(), s.PublisherName(), a.client.WebURL("dataset", s.ID))
			}
			return nil
		},
	}
	cmd.Flags().Bool("similar", false, "also list similar datasets")
	return cmd
}

func (a *app) dataUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "data-use <id>",
		Aliases: []string{"datause", "dur"},
		Short:   "Show a data use register entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			du, err := a.client.GetDataUse(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printDataUse(out, du, a.client.WebURL, true)

			if du.PublicBenefitStatement != "" {
				fmt.Fprintf(out, "\nPublic Benefit:\n%s\n", du.PublicBenefitStatement)
			}
			if len(du.Datasets) > 0 {
				used := du.Datasets
				if len(used) > datasetsUsedShown {
					used = used[:datasetsUsedShown]
				}
				fmt.Fprintf(out, "\nDatasets Used: %s\n", strings.Join(used, ", "))
			}
			return nil
		},
	}
}

func (a *app) publishersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publishers",
		Short: "List data publishers and custodians",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			limit, _ := cmd.Flags().GetInt("limit")

			fmt.Fprintf(out, "DATA PUBLISHERS / CUSTODIANS\n%s\n", strings.Repeat("=", 60))

			teams, err := a.client.ListPublishers(cmd.Context(), models.DefaultPage, limit)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: publisher listing incomplete: %v\n", err)
			}
			for _, t := range teams {
				fmt.Fprintf(out, "\n* %s\n", t.Name)
				if t.Introduction != "" {
					fmt.Fprintf(out, "  %s\n", shorten(t.Introduction, introductionRunes))
				}
				if t.ContactPoint != "" {
					fmt.Fprintf(out, "  Contact: %s\n", t.ContactPoint)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntP("limit", "n", defaultPublisherList, "publishers to list")
	return cmd
}

func printDataset(out io.Writer, d models.Dataset, link export.Linker, verbose bool) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(out, "\n%s\n%s\n%s\n", rule, d.Title(), rule)
	fmt.Fprintf(out, "Publisher: %s\nID: %s\n", d.PublisherName(), d.ID)

	if abstract := d.Abstract(); abstract != "" {
		if !verbose {
			abstract = shorten(abstract, summaryRunes)
		}
		fmt.Fprintf(out, "\nAbstract: %s\n", abstract)
	}

	fmt.Fprintf(out, "\nRelated: %d publications, %d data uses\n", d.PublicationsCount, d.DursCount)
	fmt.Fprintf(out, "URL: %s\n", link.URL("dataset", d.ID))

	if verbose && d.Metadata != nil {
		fmt.Fprintf(out, "\nKeywords: %s\n", strings.Join(d.Keywords(), ", "))
		if d.Metadata.Spatial != "" {
			fmt.Fprintf(out, "Coverage: %s\n", d.Metadata.Spatial)
		}
	}
}

func printDataUse(out io.Writer, du models.DataUseRegister, link export.Linker, verbose bool) {
	rule := strings.Repeat("=", 60)
	organisation := du.OrganisationName
	if organisation == "" {
		organisation = "Unknown"
	}
	fmt.Fprintf(out, "\n%s\n%s\n%s\n", rule, du.ProjectTitle, rule)
	fmt.Fprintf(out, "Organisation: %s\n", organisation)

	if du.OrganisationSector != "" {
		fmt.Fprintf(out, "Sector: %s\n", du.OrganisationSector)
	}
	if summary := du.LaySummary; summary != "" {
		if !verbose {
			summary = shorten(summary, summaryRunes)
		}
		fmt.Fprintf(out, "\nSummary: %s\n", summary)
	}
	if du.LatestApprovalDate != "" {
		fmt.Fprintf(out, "\nApproved: %s\n", du.LatestApprovalDate)
	}
	fmt.Fprintf(out, "URL: %s\n", link.URL("datause", du.ID))
}

func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
