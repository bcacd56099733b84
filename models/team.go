package models

// Team is an organisation in the catalogue. Publishers and data custodians
// are teams. The capability flags are informational only.
type Team struct {
	ID           string `json:"id"`
	PID          string `json:"pid,omitempty"`
	Name         string `json:"name"`
	Introduction string `json:"introduction,omitempty"`
	ContactPoint string `json:"contact_point,omitempty"`
	TeamLogo     string `json:"team_logo,omitempty"`
	URL          string `json:"url,omitempty"`
	Service      string `json:"service,omitempty"`
	MemberOf     string `json:"member_of,omitempty"`

	Enabled                  bool `json:"enabled"`
	AllowsMessaging          bool `json:"allows_messaging"`
	WorkflowEnabled          bool `json:"workflow_enabled"`
	AccessRequestsManagement bool `json:"access_requests_management"`
	Uses5Safes               bool `json:"uses_5_safes"`
	IsQuestionBank           bool `json:"is_question_bank"`
	IsDAR                    bool `json:"is_dar"`
	IsAdmin                  bool `json:"is_admin"`
	HasPublishedDARTemplate  bool `json:"has_published_dar_template"`

	Aliases   []string `json:"aliases,omitempty"`
	UpdatedAt string   `json:"updated_at,omitempty"`

	Raw map[string]interface{} `json:"-"`
}
