package mapper

import (
	"github.com/ONSdigital/dp-healthdata-discovery/models"
)

// ParseDataUse maps a raw data use register entry
func ParseDataUse(raw map[string]interface{}) models.DataUseRegister {
	d := models.DataUseRegister{
		ID:            str(raw, "id"),
		ProjectIDText: str(raw, "project_id_text", "projectIdText"),
		ProjectTitle:  str(raw, "project_title", "projectTitle"),

		OrganisationID:     str(raw, "organisation_id", "organisationId"),
		OrganisationName:   str(raw, "organisation_name", "organisationName"),
		OrganisationSector: models.ParseOrganisationSector(str(raw, "organisation_sector", "organisationSector")),

		ProjectStartDate:   str(raw, "project_start_date", "projectStartDate"),
		ProjectEndDate:     str(raw, "project_end_date", "projectEndDate"),
		AccessDate:         str(raw, "access_date", "accessDate"),
		LatestApprovalDate: str(raw, "latest_approval_date", "latestApprovalDate"),

		LaySummary:             str(raw, "lay_summary", "laySummary"),
		TechnicalSummary:       str(raw, "technical_summary", "technicalSummary"),
		PublicBenefitStatement: str(raw, "public_benefit_statement", "publicBenefitStatement"),

		Datasets:             stringList(raw, "datasets", "dataset_titles", "datasetTitles"),
		Keywords:             stringList(raw, "keywords"),
		DataSensitivityLevel: str(raw, "data_sensitivity_level", "dataSensitivityLevel"),

		LegalBasisArticle6:     str(raw, "legal_basis_for_data_article6", "legalBasisForDataArticle6"),
		LegalBasisArticle9:     str(raw, "legal_basis_for_data_article9", "legalBasisForDataArticle9"),
		DutyOfConfidentiality:  str(raw, "duty_of_confidentiality", "dutyOfConfidentiality"),
		NationalDataOptOut:     str(raw, "national_data_optout", "nationalDataOptOut"),
		AccessType:             models.ParseAccessType(str(raw, "access_type", "accessType")),
		RequestCategoryType:    str(raw, "request_category_type", "requestCategoryType"),
		RequestFrequency:       str(raw, "request_frequency", "requestFrequency"),
		AccreditedResearcher:   str(raw, "accredited_researcher_status", "accreditedResearcherStatus"),
		SublicenceArrangements: str(raw, "sublicence_arrangements", "sublicenceArrangements"),

		UserID: str(raw, "user_id", "userId"),
		Status: str(raw, "status"),
		Raw:    raw,
	}

	if team := object(raw, "team"); team != nil {
		t := ParseTeam(team)
		d.Team = &t
	}

	return d
}

// ParsePublication maps a raw publication
func ParsePublication(raw map[string]interface{}) models.Publication {
	return models.Publication{
		ID:                str(raw, "id"),
		PaperTitle:        str(raw, "paper_title", "paperTitle", "title"),
		Authors:           joined(raw, "authors"),
		YearOfPublication: integer(raw, "year_of_publication", "yearOfPublication"),
		JournalName:       str(raw, "journal_name", "journalName"),
		PaperDOI:          str(raw, "paper_doi", "paperDoi"),
		PublicationType:   joined(raw, "publication_type", "publicationType"),
		Abstract:          str(raw, "abstract"),
		FullTextURL:       str(raw, "full_text_url", "fullTextUrl"),
		URL:               str(raw, "url"),
		Status:            str(raw, "status"),
		Raw:               raw,
	}
}

// ParseTool maps a raw tool
func ParseTool(raw map[string]interface{}) models.Tool {
	t := models.Tool{
		ID:                   str(raw, "id"),
		Name:                 str(raw, "name"),
		Description:          str(raw, "description"),
		URL:                  str(raw, "url"),
		License:              joined(raw, "license"),
		TechStack:            str(raw, "tech_stack", "techStack"),
		ProgrammingLanguages: stringList(raw, "programming_languages", "programmingLanguages"),
		Tags:                 stringList(raw, "tags"),
		Enabled:              boolean(raw, true, "enabled"),
		Raw:                  raw,
	}

	if team := object(raw, "team"); team != nil {
		tm := ParseTeam(team)
		t.Team = &tm
	}

	return t
}

// ParseCollection maps a raw collection together with any embedded resources
func ParseCollection(raw map[string]interface{}) models.Collection {
	c := models.Collection{
		ID:           str(raw, "id"),
		Name:         str(raw, "name"),
		Description:  str(raw, "description"),
		ImageLink:    str(raw, "image_link", "imageLink"),
		Keywords:     stringList(raw, "keywords"),
		Enabled:      boolean(raw, true, "enabled"),
		Public:       boolean(raw, true, "public"),
		Status:       str(raw, "status"),
		Datasets:     ParseAll(objects(raw, "datasets"), ParseDataset),
		Publications: ParseAll(objects(raw, "publications"), ParsePublication),
		Tools:        ParseAll(objects(raw, "tools"), ParseTool),
		DataUses:     ParseAll(objects(raw, "dur", "durs", "data_uses", "dataUses"), ParseDataUse),
		Raw:          raw,
	}

	if team := object(raw, "team"); team != nil {
		t := ParseTeam(team)
		c.Team = &t
	}

	return c
}
