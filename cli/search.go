package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/ONSdigital/dp-healthdata-discovery/export"
	"github.com/ONSdigital/dp-healthdata-discovery/search"
	"github.com/spf13/cobra"
)

const (
	defaultSearchLimit  = 10
	facetBucketsShown   = 5
	suggestionsShown    = 3
	exportNameQueryRune = 20
)

func (a *app) searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search datasets, data uses and publications",
		Long: `Search the catalogue with a free text query. Regions, publishers and
conditions named in the query become filters unless --no-parse is given.

Examples:
  healthdata search diabetes
  healthdata search "cancer data in Wales" --export csv --output cancer.csv
  healthdata search asthma --no-data-uses --publications --facets`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runSearch,
	}

	cmd.Flags().IntP("limit", "n", defaultSearchLimit, "results per resource type")
	cmd.Flags().Bool("no-parse", false, "search the query text as given")
	cmd.Flags().Bool("data-uses", true, "include the data use register")
	cmd.Flags().Bool("no-data-uses", false, "exclude the data use register")
	cmd.Flags().Bool("publications", false, "include publications")
	cmd.Flags().Bool("facets", false, "show facets")
	cmd.Flags().BoolP("verbose", "v", false, "show full abstracts and summaries")
	cmd.Flags().String("export", "", "export the results as csv or json instead of listing them")
	cmd.Flags().StringP("output", "o", "", "export file, - for standard output (default search_results_<query>.<format>)")
	return cmd
}

func (a *app) runSearch(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	limit, _ := flags.GetInt("limit")
	noParse, _ := flags.GetBool("no-parse")
	dataUses, _ := flags.GetBool("data-uses")
	noDataUses, _ := flags.GetBool("no-data-uses")
	publications, _ := flags.GetBool("publications")
	showFacets, _ := flags.GetBool("facets")
	verbose, _ := flags.GetBool("verbose")
	exportFormat, _ := flags.GetString("export")
	output, _ := flags.GetString("output")

	var format export.Format
	if exportFormat != "" {
		var err error
		if format, err = export.ParseFormat(exportFormat); err != nil {
			return err
		}
	}

	text := strings.Join(args, " ")
	q := search.NewQuery(text)
	q.ParseQuery = !noParse
	q.IncludeDataUses = dataUses && !noDataUses
	q.IncludePublications = publications
	if limit > 0 {
		q.PerPage = limit
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Searching for: %s\n%s\n", text, strings.Repeat("-", 40))

	searcher := search.NewSearcher(a.client, search.WithTimeout(a.cfg.SearchTimeout))
	result := searcher.Search(cmd.Context(), q)

	if result.Interpretation != "" {
		fmt.Fprintln(out, result.Interpretation)
	}
	fmt.Fprintf(out, "Search completed in %.0fms\n", result.SearchTimeMS)
	fmt.Fprintf(out, "Found %d results\n", result.TotalCount)
	for rt, err := range result.Results.Failures {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s search failed: %v\n", rt, err)
	}

	if format != "" {
		body, err := export.Render(result.Results, format, a.client.WebURL)
		if err != nil {
			return err
		}
		if output == "" {
			output = exportFileName(text, format)
		}
		return writeOutput(cmd, output, body)
	}

	printSearchResult(out, result, a.client.WebURL, showFacets, verbose)
	return nil
}

func printSearchResult(out io.Writer, result search.EnhancedSearchResult, link export.Linker, showFacets, verbose bool) {
	r := result.Results

	if len(r.Datasets) > 0 {
		fmt.Fprintf(out, "\n\nDATASETS (%d)\n", len(r.Datasets))
		for _, d := range r.Datasets {
			printDataset(out, d, link, verbose)
		}
	}

	if len(r.DataUses) > 0 {
		fmt.Fprintf(out, "\n\nDATA USE REGISTER (%d)\n", len(r.DataUses))
		for _, du := range r.DataUses {
			printDataUse(out, du, link, verbose)
		}
	}

	if len(r.Publications) > 0 {
		fmt.Fprintf(out, "\n\nPUBLICATIONS (%d)\n", len(r.Publications))
		for _, p := range r.Publications {
			fmt.Fprintf(out, "\n* %s\n", p.PaperTitle)
			if p.Authors != "" {
				fmt.Fprintf(out, "  Authors: %s\n", p.Authors)
			}
			if p.YearOfPublication > 0 {
				fmt.Fprintf(out, "  Year: %d\n", p.YearOfPublication)
			}
			fmt.Fprintf(out, "  URL: %s\n", link.URL("publication", p.ID))
		}
	}

	if showFacets && len(result.Facets) > 0 {
		fmt.Fprint(out, "\n\nFACETS\n")
		for _, f := range result.Facets {
			fmt.Fprintf(out, "\n%s:\n", f.Name)
			for i, b := range f.Buckets {
				if i == facetBucketsShown {
					break
				}
				fmt.Fprintf(out, "  * %s: %d\n", b.Key, b.Count)
			}
		}
	}

	if len(result.Suggestions) > 0 {
		fmt.Fprint(out, "\n\nSUGGESTIONS\n")
		for i, s := range result.Suggestions {
			if i == suggestionsShown {
				break
			}
			fmt.Fprintf(out, "  * Try: %q\n", s.Text)
		}
	}
}

func exportFileName(query string, format export.Format) string {
	name := []rune(strings.ReplaceAll(query, " ", "_"))
	if len(name) > exportNameQueryRune {
		name = name[:exportNameQueryRune]
	}
	return fmt.Sprintf("search_results_%s.%s", string(name), format)
}
