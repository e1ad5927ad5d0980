package model

// Address is the postal and contact record printed in a branch's letterhead.
type Address struct {
	OfficeName string `json:"office_name" yaml:"office_name"`
	Line1      string `json:"address_line_1" yaml:"address_line_1"`
	Line2      string `json:"address_line_2" yaml:"address_line_2"`
	City       string `json:"city" yaml:"city"`
	Zip        string `json:"zip_code" yaml:"zip_code"`
	Tel        string `json:"tel" yaml:"tel"`
	Fax        string `json:"fax" yaml:"fax"`
}

// IsZero reports whether no address field is set.
func (a Address) IsZero() bool {
	return a == Address{}
}

// BranchRecord is static reference data for one branch code.
type BranchRecord struct {
	Code        string  `json:"code" yaml:"code"`
	DisplayName string  `json:"display_name" yaml:"display_name"`
	State       string  `json:"state" yaml:"state"`
	Address     Address `json:"address" yaml:"address"`
}

// BranchOption is a branch code paired with its display name, for selection
// controls.
type BranchOption struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// StatePolicy is the per-state regulatory lookup.
type StatePolicy struct {
	// Authority is the health-regulatory body named in complaint clauses.
	Authority string `json:"authority" yaml:"authority"`
	// GoverningName is the jurisdiction name used in governing-law clauses.
	GoverningName string `json:"governing_name" yaml:"governing_name"`
	// ConsumerNotice requires the consumer notice page for every branch
	// operating under this state code.
	ConsumerNotice bool `json:"consumer_notice" yaml:"consumer_notice"`
}

// NoticePeriod is the termination notice OPTIONS gives the client.
type NoticePeriod struct {
	Days int `json:"days" yaml:"days"`
	// Text is the one-sentence summary used on the consumer notice.
	Text string `json:"text" yaml:"text"`
	// Clause is the full NOTICE PERIOD clause body.
	Clause string `json:"clause" yaml:"clause"`
}

// HolidayInsert adds a surcharge holiday at a 1-based display position.
type HolidayInsert struct {
	Name     string `json:"name" yaml:"name"`
	Position int    `json:"position" yaml:"position"`
}

// BranchPolicyOverride holds the categories in which a branch departs from
// its state's default policy. Every field is independent of the others.
type BranchPolicyOverride struct {
	Notice                    *NoticePeriod   `json:"notice,omitempty" yaml:"notice,omitempty"`
	GoverningState            string          `json:"governing_state,omitempty" yaml:"governing_state,omitempty"`
	TopMargin                 *float64        `json:"top_margin,omitempty" yaml:"top_margin,omitempty"`
	ExtraHolidays             []HolidayInsert `json:"extra_holidays,omitempty" yaml:"extra_holidays,omitempty"`
	RepresentativeSignature   bool            `json:"representative_signature,omitempty" yaml:"representative_signature,omitempty"`
	Medication                bool            `json:"medication,omitempty" yaml:"medication,omitempty"`
	MedicationRecipientStates []string        `json:"medication_recipient_states,omitempty" yaml:"medication_recipient_states,omitempty"`
	AssessmentFee             bool            `json:"assessment_fee,omitempty" yaml:"assessment_fee,omitempty"`
	ConsumerNotice            bool            `json:"consumer_notice,omitempty" yaml:"consumer_notice,omitempty"`
	LiveIn                    bool            `json:"live_in,omitempty" yaml:"live_in,omitempty"`
	Hazards                   bool            `json:"hazards,omitempty" yaml:"hazards,omitempty"`
	CaregiverCompetency       bool            `json:"caregiver_competency,omitempty" yaml:"caregiver_competency,omitempty"`
	PercentCharged            bool            `json:"percent_charged,omitempty" yaml:"percent_charged,omitempty"`
	AdvanceInvoicing          bool            `json:"advance_invoicing,omitempty" yaml:"advance_invoicing,omitempty"`
	VehicleCheckbox           bool            `json:"vehicle_checkbox,omitempty" yaml:"vehicle_checkbox,omitempty"`
	ProvisionsState           string          `json:"provisions_state,omitempty" yaml:"provisions_state,omitempty"`
	RightsGroups              []RightsGroup   `json:"rights_groups,omitempty" yaml:"rights_groups,omitempty"`
}

// RightsGroup names a set of branches sharing a patients' rights template.
type RightsGroup string

const (
	GroupMaryland      RightsGroup = "maryland"
	GroupGeorgia       RightsGroup = "georgia"
	GroupRegional      RightsGroup = "regional"
	GroupVirginia      RightsGroup = "virginia"
	GroupFlorida       RightsGroup = "florida"
	GroupIndiana       RightsGroup = "indiana"
	GroupNorthCarolina RightsGroup = "north_carolina"
	GroupNewtownSquare RightsGroup = "newtown_square"
	GroupHarrisburg    RightsGroup = "harrisburg"
	GroupDistrict      RightsGroup = "district_of_columbia"
)

// HasGroup reports whether the override lists g among its rights groups.
func (o BranchPolicyOverride) HasGroup(g RightsGroup) bool {
	for _, have := range o.RightsGroups {
		if have == g {
			return true
		}
	}
	return false
}
