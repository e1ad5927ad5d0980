package model

// Margins are the four page insets in inches.
type Margins struct {
	Top    float64 `json:"top" yaml:"top"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Left   float64 `json:"left" yaml:"left"`
	Right  float64 `json:"right" yaml:"right"`
}

// RightsTemplate identifies one patients' rights and complaint procedures
// template.
type RightsTemplate string

const (
	RightsMaryland      RightsTemplate = "maryland"
	RightsGeorgia       RightsTemplate = "georgia"
	RightsRegional      RightsTemplate = "regional"
	RightsVirginia      RightsTemplate = "virginia"
	RightsFlorida       RightsTemplate = "florida"
	RightsIndiana       RightsTemplate = "indiana"
	RightsNorthCarolina RightsTemplate = "north_carolina"
	RightsNewtownSquare RightsTemplate = "newtown_square"
	RightsHarrisburg    RightsTemplate = "harrisburg"
	RightsDCResident    RightsTemplate = "dc_resident"
	RightsDCNonResident RightsTemplate = "dc_nonresident"
	RightsGeneric       RightsTemplate = "generic"
)

// ClauseSet records which conditional clause families a document carries and
// which variant each one uses.
type ClauseSet struct {
	Medication          bool           `json:"medication" yaml:"medication"`
	AssessmentFee       bool           `json:"assessment_fee" yaml:"assessment_fee"`
	ConsumerNotice      bool           `json:"consumer_notice" yaml:"consumer_notice"`
	LiveIn              bool           `json:"live_in" yaml:"live_in"`
	Hazards             bool           `json:"hazards" yaml:"hazards"`
	CaregiverCompetency bool           `json:"caregiver_competency" yaml:"caregiver_competency"`
	PercentCharged      bool           `json:"percent_charged" yaml:"percent_charged"`
	AdvanceInvoicing    bool           `json:"advance_invoicing" yaml:"advance_invoicing"`
	VehicleCheckbox     bool           `json:"vehicle_checkbox" yaml:"vehicle_checkbox"`
	ProvisionsState     string         `json:"provisions_state" yaml:"provisions_state"`
	Rights              RightsTemplate `json:"rights" yaml:"rights"`
}

// ResolvedPolicy is the complete branch-and-state configuration consumed by
// document composition. It is recomputed on every request.
type ResolvedPolicy struct {
	BranchCode              string       `json:"branch_code" yaml:"branch_code"`
	StateCode               string       `json:"state_code" yaml:"state_code"`
	CareRecipientState      string       `json:"care_recipient_state" yaml:"care_recipient_state"`
	DisplayName             string       `json:"branch_display_name" yaml:"branch_display_name"`
	Address                 Address      `json:"address" yaml:"address"`
	StateAuthority          string       `json:"state_authority" yaml:"state_authority"`
	GoverningState          string       `json:"governing_state" yaml:"governing_state"`
	GoverningLaw            string       `json:"governing_law" yaml:"governing_law"`
	Notice                  NoticePeriod `json:"notice" yaml:"notice"`
	Holidays                []string     `json:"holidays" yaml:"holidays"`
	Margins                 Margins      `json:"pdf_margins" yaml:"pdf_margins"`
	Footer                  string       `json:"footer_version" yaml:"footer_version"`
	RequiresLiveInText      bool         `json:"requires_live_in_text" yaml:"requires_live_in_text"`
	RepresentativeSignature bool         `json:"use_representative_signature" yaml:"use_representative_signature"`
	Clauses                 ClauseSet    `json:"clauses" yaml:"clauses"`
}

// HolidayCount is the number of surcharge holidays.
func (p ResolvedPolicy) HolidayCount() int {
	return len(p.Holidays)
}
