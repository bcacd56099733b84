package search

import (
	"regexp"
)

// term is a canonical vocabulary entry and the surface forms that select it.
// Synonyms are tried in order and the first match wins.
type term struct {
	key      string
	label    string
	synonyms []string
	patterns []*regexp.Regexp
	keyMatch *regexp.Regexp
}

// match returns the text matched by the first matching synonym, or ""
func (t term) match(text string) string {
	for _, p := range t.patterns {
		if m := p.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

func newTerm(key, label string, synonyms ...string) term {
	t := term{key: key, label: label, synonyms: synonyms, keyMatch: synonymPattern(key)}
	for _, s := range synonyms {
		t.patterns = append(t.patterns, synonymPattern(s))
	}
	return t
}

// synonymPattern matches s as whole words, case-insensitively, allowing a
// plural ending
func synonymPattern(s string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(s) + `(?:e?s)?\b`)
}

// exactPattern matches s as whole words, case-insensitively
func exactPattern(s string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(s) + `\b`)
}

// The tables are slices so that iteration order, and therefore the order in
// which filters are recorded, is fixed.
var conditionTerms = []term{
	newTerm("diabetes", "", "diabetes", "diabetic", "glucose", "hba1c", "insulin"),
	newTerm("cardiovascular", "", "heart", "cardiac", "cardiovascular", "cvd", "stroke", "hypertension"),
	newTerm("cancer", "", "cancer", "oncology", "tumour", "tumor", "malignant", "neoplasm"),
	newTerm("mental health", "", "mental", "psychiatric", "depression", "anxiety", "psychosis"),
	newTerm("respiratory", "", "respiratory", "lung", "pulmonary", "asthma", "copd"),
	newTerm("maternal", "", "maternal", "pregnancy", "prenatal", "postnatal", "obstetric"),
	newTerm("covid", "", "covid", "coronavirus", "sars-cov-2", "pandemic"),
	newTerm("genomics", "", "genomic", "genetic", "dna", "wgs", "genome", "sequencing"),
}

var regionTerms = []term{
	newTerm("england", "England", "england", "english", "nhs england"),
	newTerm("wales", "Wales", "wales", "welsh", "sail"),
	newTerm("scotland", "Scotland", "scotland", "scottish", "rds", "research data scotland"),
	newTerm("northern ireland", "Northern Ireland", "northern ireland", "ni"),
	newTerm("uk", "UK", "uk", "united kingdom", "british", "national"),
}

var dataTypeTerms = []term{
	newTerm("primary care", "", "primary care", "gp", "general practice", "cprd"),
	newTerm("hospital", "", "hospital", "hes", "secondary care", "inpatient", "outpatient"),
	newTerm("registry", "", "registry", "register", "cancer registry"),
	newTerm("cohort", "", "cohort", "biobank", "longitudinal"),
	newTerm("imaging", "", "imaging", "mri", "ct", "x-ray", "radiology"),
	newTerm("genomic", "", "genomic", "genetic", "wgs", "exome"),
}

// publisherTerms map an alias typed by users to the publisher names used by
// the catalogue. The first name is the canonical one.
var publisherTerms = []term{
	newTerm("cprd", "", "cprd"),
	newTerm("opensafely", "", "opensafely"),
	newTerm("uk biobank", "", "uk biobank"),
	newTerm("sail", "", "sail"),
	newTerm("nhs england", "", "nhs england"),
	newTerm("genomics england", "", "genomics england"),
	newTerm("rds", "", "rds"),
}

var publisherNames = map[string][]string{
	"cprd":             {"CPRD", "Clinical Practice Research Datalink"},
	"opensafely":       {"OpenSAFELY"},
	"uk biobank":       {"UK Biobank"},
	"sail":             {"SAIL Databank", "SAIL"},
	"nhs england":      {"NHS England", "NHS Digital"},
	"genomics england": {"Genomics England"},
	"rds":              {"Research Data Scotland"},
}

var fillerPattern = regexp.MustCompile(`(?i)\b(?:data|dataset|datasets|in|for|about|the|with|from)\b`)
