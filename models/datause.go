package models

// DataUseRegister is an approved research project's record of access to one
// or more datasets
type DataUseRegister struct {
	ID            string `json:"id"`
	ProjectIDText string `json:"project_id_text,omitempty"`
	ProjectTitle  string `json:"project_title"`

	OrganisationID     string             `json:"organisation_id,omitempty"`
	OrganisationName   string             `json:"organisation_name,omitempty"`
	OrganisationSector OrganisationSector `json:"organisation_sector,omitempty"`

	ProjectStartDate   string `json:"project_start_date,omitempty"`
	ProjectEndDate     string `json:"project_end_date,omitempty"`
	AccessDate         string `json:"access_date,omitempty"`
	LatestApprovalDate string `json:"latest_approval_date,omitempty"`

	LaySummary             string `json:"lay_summary,omitempty"`
	TechnicalSummary       string `json:"technical_summary,omitempty"`
	PublicBenefitStatement string `json:"public_benefit_statement,omitempty"`

	Datasets             []string `json:"datasets"`
	Keywords             []string `json:"keywords"`
	DataSensitivityLevel string   `json:"data_sensitivity_level,omitempty"`

	LegalBasisArticle6     string     `json:"legal_basis_for_data_article6,omitempty"`
	LegalBasisArticle9     string     `json:"legal_basis_for_data_article9,omitempty"`
	DutyOfConfidentiality  string     `json:"duty_of_confidentiality,omitempty"`
	NationalDataOptOut     string     `json:"national_data_optout,omitempty"`
	AccessType             AccessType `json:"access_type,omitempty"`
	RequestCategoryType    string     `json:"request_category_type,omitempty"`
	RequestFrequency       string     `json:"request_frequency,omitempty"`
	AccreditedResearcher   string     `json:"accredited_researcher_status,omitempty"`
	SublicenceArrangements string     `json:"sublicence_arrangements,omitempty"`

	Team   *Team  `json:"team,omitempty"`
	UserID string `json:"user_id,omitempty"`
	Status string `json:"status,omitempty"`

	Raw map[string]interface{} `json:"-"`
}
