package branch

import "github.com/sells-group/agreement-cli/internal/model"

const (
	standardNoticeText   = "OPTIONS, however, may end services with 3 calendar days' written notice."
	standardNoticeClause = "The care recipient or his/her designees are not obligated to give a written notice of termination. " +
		"OPTIONS may end services under this agreement by giving 3 calendar days notice in writing."

	extendedNoticeText = "OPTIONS may end services under this agreement by giving at least 10 calendar days " +
		"advance written notice. Less than 10 days may be provided if client is more " +
		"than 14 days in arrears or caregiver safety is at risk."
	extendedNoticeClause = "The care recipient or his/her designees are not obligated to give a written notice of termination. " +
		"OPTIONS may end services under this agreement by giving at least 10 calendar days advance written " +
		"notice of the intent to terminate services. Less than 10 days advance written notice may be provided " +
		"by OPTIONS in the event the client has failed to pay for services, despite notice, and the client is " +
		"more than 14 days in arrears, or if the health and welfare of the OPTIONS caregiver is at risk."

	virginiaProvisions = "Commonwealth of Virginia"
)

// StandardNotice is the 3-day termination notice.
var StandardNotice = model.NoticePeriod{Days: 3, Text: standardNoticeText, Clause: standardNoticeClause}

// ExtendedNotice is the 10-day termination notice used by the Pennsylvania
// branches.
var ExtendedNotice = model.NoticePeriod{Days: 10, Text: extendedNoticeText, Clause: extendedNoticeClause}

func margin(v float64) *float64 { return &v }

func notice(n model.NoticePeriod) *model.NoticePeriod { return &n }

func groups(g ...model.RightsGroup) []model.RightsGroup { return g }

// defaultPolicies is the single source of branch-level legal variation,
// keyed by base branch code. A branch missing from this table gets the
// state baseline in every category.
var defaultPolicies = map[string]model.BranchPolicyOverride{
	// Maryland
	"anhomecare": {
		LiveIn:       true,
		RightsGroups: groups(model.GroupMaryland),
	},
	"bahomecare": {
		TopMargin:      margin(0.3),
		AssessmentFee:  true,
		ConsumerNotice: true,
		LiveIn:         true,
		RightsGroups:   groups(model.GroupMaryland),
	},
	"blhomecare": {
		LiveIn:       true,
		RightsGroups: groups(model.GroupMaryland),
	},
	"fkhomecare": {
		LiveIn:       true,
		RightsGroups: groups(model.GroupMaryland),
	},
	"lphomecare": {
		TopMargin:     margin(0.3),
		AssessmentFee: true,
		LiveIn:        true,
		RightsGroups:  groups(model.GroupMaryland),
	},
	"blmdhomecare": {
		AssessmentFee: true,
		RightsGroups:  groups(model.GroupRegional),
	},
	"testhomecare": {
		LiveIn:       true,
		RightsGroups: groups(model.GroupMaryland),
	},
	"tomdhomecare": {
		LiveIn: true,
	},
	"test2homecare": {
		AdvanceInvoicing: true,
	},

	// Georgia
	"athomecare": {
		GoverningState:          "Georgia",
		RepresentativeSignature: true,
		Medication:              true,
		AssessmentFee:           true,
		LiveIn:                  true,
		VehicleCheckbox:         true,
		RightsGroups:            groups(model.GroupGeorgia),
	},
	"scgahomecare": {
		GoverningState:          "Georgia",
		RepresentativeSignature: true,
		Medication:              true,
		AssessmentFee:           true,
		LiveIn:                  true,
		VehicleCheckbox:         true,
		ProvisionsState:         "Georgia",
		RightsGroups:            groups(model.GroupGeorgia),
	},

	// Ohio, Arizona, Michigan
	"clhomecare": {
		Medication:   true,
		LiveIn:       true,
		RightsGroups: groups(model.GroupRegional),
	},
	"ciohhomecare": {
		Medication:      true,
		LiveIn:          true,
		ProvisionsState: "Ohio",
		RightsGroups:    groups(model.GroupRegional),
	},
	"chazhomecare": {
		GoverningState:  "Arizona",
		AssessmentFee:   true,
		LiveIn:          true,
		ProvisionsState: "Arizona",
		RightsGroups:    groups(model.GroupRegional),
	},
	"shmihomecare": {
		Medication:   true,
		LiveIn:       true,
		RightsGroups: groups(model.GroupRegional),
	},

	// Virginia
	"nvahomecare": {
		Medication:     true,
		Hazards:        true,
		PercentCharged: true,
		RightsGroups:   groups(model.GroupVirginia),
	},
	"nvahomecarearchive": {
		AssessmentFee: true,
		LiveIn:        true,
		RightsGroups:  groups(model.GroupVirginia),
	},
	"rihomecare": {
		Medication:     true,
		AssessmentFee:  true,
		LiveIn:         true,
		Hazards:        true,
		PercentCharged: true,
		RightsGroups:   groups(model.GroupVirginia),
	},
	"mnhomecare": {
		TopMargin:       margin(0.2),
		ExtraHolidays:   []model.HolidayInsert{{Name: "Easter Sunday", Position: 4}},
		Medication:      true,
		LiveIn:          true,
		Hazards:         true,
		PercentCharged:  true,
		ProvisionsState: virginiaProvisions,
		RightsGroups:    groups(model.GroupVirginia),
	},
	"lovahomecare": {
		TopMargin:       margin(0.2),
		Medication:      true,
		LiveIn:          true,
		Hazards:         true,
		PercentCharged:  true,
		ProvisionsState: virginiaProvisions,
		RightsGroups:    groups(model.GroupVirginia),
	},
	"sfvahomecare": {
		Medication:      true,
		AssessmentFee:   true,
		LiveIn:          true,
		ProvisionsState: virginiaProvisions,
		RightsGroups:    groups(model.GroupVirginia),
	},
	"amfvahomecare": {
		TopMargin:       margin(0.2),
		Medication:      true,
		AssessmentFee:   true,
		LiveIn:          true,
		ProvisionsState: virginiaProvisions,
		RightsGroups:    groups(model.GroupVirginia),
	},
	"wfvahomecare": {
		Medication:      true,
		LiveIn:          true,
		Hazards:         true,
		ProvisionsState: virginiaProvisions,
		RightsGroups:    groups(model.GroupVirginia),
	},
	"cfairfaxhomecare": {
		Medication:      true,
		AssessmentFee:   true,
		LiveIn:          true,
		Hazards:         true,
		ProvisionsState: virginiaProvisions,
		RightsGroups:    groups(model.GroupVirginia),
	},

	// Florida
	"tahomecare": {
		Medication:    true,
		AssessmentFee: true,
		LiveIn:        true,
		RightsGroups:  groups(model.GroupFlorida),
	},
	"woflhomecare": {
		GoverningState: "Florida",
		TopMargin:      margin(0.2),
		Medication:     true,
		AssessmentFee:  true,
		LiveIn:         true,
		RightsGroups:   groups(model.GroupFlorida),
	},
	"lzflhomecare": {
		GoverningState:  "Florida",
		TopMargin:       margin(0.2),
		Medication:      true,
		AssessmentFee:   true,
		LiveIn:          true,
		ProvisionsState: "Florida",
		RightsGroups:    groups(model.GroupFlorida),
	},
	"wpbflhomecare": {
		GoverningState:  "Florida",
		AssessmentFee:   true,
		LiveIn:          true,
		ProvisionsState: "Florida",
		RightsGroups:    groups(model.GroupFlorida),
	},

	// North Carolina
	"gbhomecare": {
		GoverningState:  "North Carolina",
		LiveIn:          true,
		ProvisionsState: "North Carolina",
		RightsGroups:    groups(model.GroupNorthCarolina),
	},
	"rdhomecare": {
		GoverningState:  "North Carolina",
		LiveIn:          true,
		ProvisionsState: "North Carolina",
		RightsGroups:    groups(model.GroupNorthCarolina),
	},

	// Indiana, New Jersey
	"lkinhomecare": {
		Medication:      true,
		LiveIn:          true,
		ProvisionsState: "Indiana",
		RightsGroups:    groups(model.GroupIndiana),
	},
	"wenjhomecare": {
		GoverningState:  "New Jersey",
		LiveIn:          true,
		ProvisionsState: "New Jersey",
		RightsGroups:    groups(model.GroupMaryland),
	},

	// Pennsylvania
	"hbhomecare": {
		Notice:              notice(ExtendedNotice),
		GoverningState:      "Pennsylvania",
		AssessmentFee:       true,
		LiveIn:              true,
		CaregiverCompetency: true,
		RightsGroups:        groups(model.GroupHarrisburg),
	},
	"nspahomecare": {
		Notice:          notice(ExtendedNotice),
		GoverningState:  "Pennsylvania",
		Medication:      true,
		AssessmentFee:   true,
		ConsumerNotice:  true,
		LiveIn:          true,
		ProvisionsState: "Pennsylvania",
		RightsGroups:    groups(model.GroupNewtownSquare),
	},

	// District of Columbia
	"dchomecare": {
		MedicationRecipientStates: []string{"DC"},
		AssessmentFee:             true,
		LiveIn:                    true,
		RightsGroups:              groups(model.GroupMaryland, model.GroupDistrict),
	},
}
