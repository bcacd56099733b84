package export

import (
	"github.com/ONSdigital/dp-healthdata-discovery/models"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Document is the JSON export of a search result
type Document struct {
	Datasets     []DatasetRecord     `json:"datasets"`
	DataUses     []DataUseRecord     `json:"data_uses"`
	Publications []PublicationRecord `json:"publications"`
	Tools        []ToolRecord        `json:"tools"`
	Collections  []CollectionRecord  `json:"collections"`
	TotalCount   int                 `json:"total_count"`
}

// DatasetRecord is an exported dataset
type DatasetRecord struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Publisher         string `json:"publisher"`
	Abstract          string `json:"abstract"`
	PublicationsCount int    `json:"publications_count"`
	DataUsesCount     int    `json:"data_uses_count"`
	GatewayURL        string `json:"gateway_url"`
}

// DataUseRecord is an exported data use. Sector is null when unknown.
type DataUseRecord struct {
	ID           string  `json:"id"`
	ProjectTitle string  `json:"project_title"`
	Organisation string  `json:"organisation"`
	Sector       *string `json:"sector"`
	LaySummary   string  `json:"lay_summary"`
	ApprovalDate string  `json:"approval_date"`
	GatewayURL   string  `json:"gateway_url"`
}

// PublicationRecord is an exported publication
type PublicationRecord struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Authors    string `json:"authors"`
	Year       int    `json:"year,omitempty"`
	DOI        string `json:"doi"`
	Journal    string `json:"journal"`
	GatewayURL string `json:"gateway_url"`
}

// ToolRecord is an exported tool
type ToolRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	GatewayURL  string   `json:"gateway_url"`
}

// CollectionRecord is an exported collection
type CollectionRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	GatewayURL  string   `json:"gateway_url"`
}

// NewDocument builds the export document of r. Text is not truncated.
func NewDocument(r models.SearchResult, link Linker) Document {
	doc := Document{
		Datasets:     make([]DatasetRecord, 0, len(r.Datasets)),
		DataUses:     make([]DataUseRecord, 0, len(r.DataUses)),
		Publications: make([]PublicationRecord, 0, len(r.Publications)),
		Tools:        make([]ToolRecord, 0, len(r.Tools)),
		Collections:  make([]CollectionRecord, 0, len(r.Collections)),
		TotalCount:   r.TotalResults(),
	}

	for _, d := range r.Datasets {
		doc.Datasets = append(doc.Datasets, DatasetRecord{
			ID:                d.ID,
			Title:             d.Title(),
			Publisher:         d.PublisherName(),
			Abstract:          d.Abstract(),
			PublicationsCount: d.PublicationsCount,
			DataUsesCount:     d.DursCount,
			GatewayURL:        link.URL("dataset", d.ID),
		})
	}
	for _, du := range r.DataUses {
		var sector *string
		if du.OrganisationSector != "" {
			s := string(du.OrganisationSector)
			sector = &s
		}
		doc.DataUses = append(doc.DataUses, DataUseRecord{
			ID:           du.ID,
			ProjectTitle: du.ProjectTitle,
			Organisation: du.OrganisationName,
			Sector:       sector,
			LaySummary:   du.LaySummary,
			ApprovalDate: du.LatestApprovalDate,
			GatewayURL:   link.URL("datause", du.ID),
		})
	}
	for _, p := range r.Publications {
		doc.Publications = append(doc.Publications, PublicationRecord{
			ID:         p.ID,
			Title:      p.PaperTitle,
			Authors:    p.Authors,
			Year:       p.YearOfPublication,
			DOI:        p.PaperDOI,
			Journal:    p.JournalName,
			GatewayURL: link.URL("publication", p.ID),
		})
	}
	for _, t := range r.Tools {
		doc.Tools = append(doc.Tools, ToolRecord{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Tags:        nonNil(t.Tags),
			GatewayURL:  link.URL("tool", t.ID),
		})
	}
	for _, c := range r.Collections {
		doc.Collections = append(doc.Collections, CollectionRecord{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Keywords:    nonNil(c.Keywords),
			GatewayURL:  link.URL("collection", c.ID),
		})
	}

	return doc
}

// JSON returns the pretty printed export document of r
func JSON(r models.SearchResult, link Linker) (string, error) {
	b, err := json.MarshalIndent(NewDocument(r, link), "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal export document")
	}
	return string(b), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
