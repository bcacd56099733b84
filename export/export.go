// Package export serialises combined search results as CSV or JSON text.
// Nothing here performs I/O; callers write the returned string.
package export

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/ONSdigital/dp-healthdata-discovery/models"
	"github.com/pkg/errors"
)

const truncateAt = 200

// Format is an export format
type Format string

// Supported formats
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat validates a user supplied format name. An empty name means CSV.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatJSON:
		return f, nil
	}
	return "", errors.Errorf("unsupported export format %q", s)
}

// ContentType returns the media type of the format
func (f Format) ContentType() string {
	if f == FormatJSON {
		return "application/json"
	}
	return "text/csv"
}

// Linker returns the public web page of a resource, with the signature of
// gateway.Client.WebURL. A nil Linker links to the default web front end.
type Linker func(resourceType, id string) string

// URL returns the web page of the resource
func (l Linker) URL(resourceType, id string) string {
	if l == nil {
		return models.DefaultWebBaseURL + "/" + resourceType + "/" + id
	}
	return l(resourceType, id)
}

// Render serialises r in format f
func Render(r models.SearchResult, f Format, link Linker) (string, error) {
	switch f {
	case FormatCSV:
		return CSV(r, link)
	case FormatJSON:
		return JSON(r, link)
	}
	return "", errors.Errorf("unsupported export format %q", string(f))
}

// CSV writes one block per non-empty resource type, each with its own
// header row, separated by a blank row. Abstracts, summaries and
// descriptions longer than 200 characters are truncated.
func CSV(r models.SearchResult, link Linker) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	var blocks [][][]string
	if len(r.Datasets) > 0 {
		rows := [][]string{{"Type", "ID", "Title", "Publisher", "Abstract", "Publications", "Data Uses", "Gateway URL"}}
		for _, d := range r.Datasets {
			rows = append(rows, []string{
				"Dataset", d.ID, d.Title(), d.PublisherName(), truncate(d.Abstract()),
				strconv.Itoa(d.PublicationsCount), strconv.Itoa(d.DursCount), link.URL("dataset", d.ID),
			})
		}
		blocks = append(blocks, rows)
	}
	if len(r.DataUses) > 0 {
		rows := [][]string{{"Type", "ID", "Project Title", "Organisation", "Sector", "Lay Summary", "Approval Date", "Gateway URL"}}
		for _, du := range r.DataUses {
			rows = append(rows, []string{
				"Data Use", du.ID, du.ProjectTitle, du.OrganisationName, string(du.OrganisationSector),
				truncate(du.LaySummary), du.LatestApprovalDate, link.URL("datause", du.ID),
			})
		}
		blocks = append(blocks, rows)
	}
	if len(r.Publications) > 0 {
		rows := [][]string{{"Type", "ID", "Title", "Authors", "Year", "DOI", "Journal", "Gateway URL"}}
		for _, p := range r.Publications {
			year := ""
			if p.YearOfPublication > 0 {
				year = strconv.Itoa(p.YearOfPublication)
			}
			rows = append(rows, []string{
				"Publication", p.ID, p.PaperTitle, p.Authors, year, p.PaperDOI, p.JournalName, link.URL("publication", p.ID),
			})
		}
		blocks = append(blocks, rows)
	}
	if len(r.Tools) > 0 {
		rows := [][]string{{"Type", "ID", "Name", "Description", "Tags", "Gateway URL"}}
		for _, t := range r.Tools {
			rows = append(rows, []string{
				"Tool", t.ID, t.Name, truncate(t.Description), strings.Join(t.Tags, "; "), link.URL("tool", t.ID),
			})
		}
		blocks = append(blocks, rows)
	}
	if len(r.Collections) > 0 {
		rows := [][]string{{"Type", "ID", "Name", "Description", "Keywords", "Gateway URL"}}
		for _, c := range r.Collections {
			rows = append(rows, []string{
				"Collection", c.ID, c.Name, truncate(c.Description), strings.Join(c.Keywords, "; "), link.URL("collection", c.ID),
			})
		}
		blocks = append(blocks, rows)
	}

	for i, rows := range blocks {
		if i > 0 {
			if err := w.Write([]string{}); err != nil {
				return "", errors.Wrap(err, "failed to write csv separator")
			}
		}
		if err := w.WriteAll(rows); err != nil {
			return "", errors.Wrap(err, "failed to write csv rows")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.Wrap(err, "failed to flush csv")
	}
	return sb.String(), nil
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= truncateAt {
		return s
	}
	return string(r[:truncateAt]) + "..."
}
