package models

// Publication is a paper linked to one or more datasets
type Publication struct {
	ID                string `json:"id"`
	PaperTitle        string `json:"paper_title"`
	Authors           string `json:"authors,omitempty"`
	YearOfPublication int    `json:"year_of_publication,omitempty"`
	JournalName       string `json:"journal_name,omitempty"`
	PaperDOI          string `json:"paper_doi,omitempty"`
	PublicationType   string `json:"publication_type,omitempty"`
	Abstract          string `json:"abstract,omitempty"`
	FullTextURL       string `json:"full_text_url,omitempty"`
	URL               string `json:"url,omitempty"`
	Status            string `json:"status,omitempty"`

	Raw map[string]interface{} `json:"-"`
}

// Tool is software linked to datasets
type Tool struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Description          string   `json:"description,omitempty"`
	URL                  string   `json:"url,omitempty"`
	License              string   `json:"license,omitempty"`
	TechStack            string   `json:"tech_stack,omitempty"`
	ProgrammingLanguages []string `json:"programming_languages"`
	Tags                 []string `json:"tags"`
	Team                 *Team    `json:"team,omitempty"`
	Enabled              bool     `json:"enabled"`

	Raw map[string]interface{} `json:"-"`
}

// Collection is a curated bundle of catalogue resources
type Collection struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	ImageLink    string            `json:"image_link,omitempty"`
	Keywords     []string          `json:"keywords"`
	Enabled      bool              `json:"enabled"`
	Public       bool              `json:"public"`
	Status       string            `json:"status,omitempty"`
	Team         *Team             `json:"team,omitempty"`
	Datasets     []Dataset         `json:"datasets"`
	Publications []Publication     `json:"publications"`
	Tools        []Tool            `json:"tools"`
	DataUses     []DataUseRegister `json:"dur"`

	Raw map[string]interface{} `json:"-"`
}
