// Package compose turns an agreement and its resolved branch policy into an
// ordered set of marked-up document sections.
package compose

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/agreement-cli/internal/branch"
	"github.com/sells-group/agreement-cli/internal/config"
	"github.com/sells-group/agreement-cli/internal/model"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

const (
	defaultHourlyRate   = 36.0
	defaultMileageRate  = 0.67
	defaultManagerPhone = "1-800-2-OPTIONS"
	defaultPercent      = "100"
	defaultRelationship = "Self"
	defaultStartTime    = "12:00 pm"
	defaultHazards      = "None Reported"
	defaultRepSignature = "Staff Signed"
)

// Office defaults apply field by field when the branch address is blank.
var defaultOffice = model.Address{
	OfficeName: "Options For Senior America",
	Line1:      "6 Montgomery Village Avenue",
	Line2:      "Suite 330",
	City:       "Gaithersburg",
	Zip:        "20879",
	Tel:        "301.562.1100",
	Fax:        "301.562.1133",
}

// documentNamespace seeds document IDs.
var documentNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://www.optionsforsenioramerica.com/agreements"))

var allRights = []model.RightsTemplate{
	model.RightsMaryland,
	model.RightsGeorgia,
	model.RightsRegional,
	model.RightsVirginia,
	model.RightsFlorida,
	model.RightsIndiana,
	model.RightsNorthCarolina,
	model.RightsNewtownSquare,
	model.RightsHarrisburg,
	model.RightsDCResident,
	model.RightsDCNonResident,
	model.RightsGeneric,
}

// Composer renders agreement documents. It holds no per-document state and
// is safe for concurrent use.
type Composer struct {
	tmpl *template.Template
	cfg  config.ComposeConfig
}

// New parses the embedded section templates.
func New(cfg config.ComposeConfig) (*Composer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, eris.Wrap(err, "compose: parse templates")
	}
	for _, s := range plan {
		if s.name == "rights" {
			continue
		}
		if tmpl.Lookup(s.name) == nil {
			return nil, eris.Errorf("compose: no template for section %s", s.name)
		}
	}
	for _, r := range allRights {
		if tmpl.Lookup(rightsTemplateName(r)) == nil {
			return nil, eris.Errorf("compose: no template for rights variant %s", r)
		}
	}

	if cfg.DefaultHourlyRate == 0 {
		cfg.DefaultHourlyRate = defaultHourlyRate
	}
	if cfg.DefaultMileageRate == 0 {
		cfg.DefaultMileageRate = defaultMileageRate
	}
	if cfg.ManagerPhone == "" {
		cfg.ManagerPhone = defaultManagerPhone
	}
	return &Composer{tmpl: tmpl, cfg: cfg}, nil
}

// Compose builds the document for one agreement. It fails only when a
// required identity field is missing or a template cannot execute; no partial
// document is ever returned.
func (c *Composer) Compose(a model.Agreement, p model.ResolvedPolicy) (*model.Document, error) {
	if missing := a.MissingIdentity(); len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	v := c.view(a, p)
	doc := &model.Document{
		ID:         documentID(a, p),
		BranchCode: p.BranchCode,
		StateCode:  p.StateCode,
		Footer:     p.Footer,
		Margins:    p.Margins,
	}

	for _, s := range plan {
		if s.when != nil && !s.when(v) {
			continue
		}
		variant := ""
		if s.variant != nil {
			variant = s.variant(v)
		}
		name := s.name
		if name == "rights" {
			name = rightsTemplateName(model.RightsTemplate(variant))
		}

		var b strings.Builder
		if err := c.tmpl.ExecuteTemplate(&b, name, v); err != nil {
			return nil, eris.Wrapf(err, "compose: render section %s", s.name)
		}
		doc.Sections = append(doc.Sections, model.Section{
			Name:    s.name,
			Page:    s.page,
			Kind:    s.kind,
			Variant: variant,
			HTML:    strings.TrimSpace(b.String()),
		})
	}

	zap.L().Debug("compose: document built",
		zap.String("branch_code", p.BranchCode),
		zap.String("state_code", p.StateCode),
		zap.String("rights", string(p.Clauses.Rights)),
		zap.Int("sections", len(doc.Sections)),
	)
	return doc, nil
}

func rightsTemplateName(r model.RightsTemplate) string {
	return "rights_" + string(r)
}

// documentID is stable for identical inputs. Every agreement field is
// hashed, so any change that can alter the text yields a new ID.
func documentID(a model.Agreement, p model.ResolvedPolicy) string {
	// Agreement holds only strings and bools; Marshal cannot fail.
	raw, _ := json.Marshal(a)
	key := p.BranchCode + "\x00" + p.StateCode + "\x00" + string(raw)
	return uuid.NewSHA1(documentNamespace, []byte(key)).String()
}

type officeView struct {
	Name, Line1, Line2, City, State, Zip, Tel, Fax string
}

type bankView struct {
	Line, Routing, Account, Type string
}

// view is the data every section template renders against.
type view struct {
	Policy       model.ResolvedPolicy
	Office       officeView
	LogoURL      string
	ManagerPhone string
	Contact      contact

	ResponsibleName string
	Relationship    string
	ClientAddress   string
	ClientCityLine  string
	CareName        string
	CareAddress     string

	AgreementDate       string
	InitialInquiry      string
	InstructionsGivenBy string
	StartDate           string
	StartTime           string

	CareType       string
	Frequency      string
	HoursRequested string
	HourlyRate     string
	MileageRate    string
	PercentCharged string
	HazardLines    []string
	LiveIn         bool

	HolidayCount int
	Holidays     string

	VehicleAuthorized bool
	VehicleInitials   string
	RepSignature      string

	Bank bankView
}

func (c *Composer) view(a model.Agreement, p model.ResolvedPolicy) *view {
	resp := a.ResponsibleName()
	addr := p.Address

	return &view{
		Policy: p,
		Office: officeView{
			Name:  or(addr.OfficeName, defaultOffice.OfficeName),
			Line1: or(addr.Line1, defaultOffice.Line1),
			Line2: or(addr.Line2, defaultOffice.Line2),
			City:  or(addr.City, defaultOffice.City),
			State: p.StateCode,
			Zip:   or(addr.Zip, defaultOffice.Zip),
			Tel:   or(addr.Tel, defaultOffice.Tel),
			Fax:   or(addr.Fax, defaultOffice.Fax),
		},
		LogoURL:      c.cfg.LogoURL,
		ManagerPhone: c.cfg.ManagerPhone,
		Contact:      contactFor(branch.BaseCode(p.BranchCode), p.Clauses.Rights),

		ResponsibleName: resp,
		Relationship:    a.ClientRelationship.Or(defaultRelationship),
		ClientAddress:   a.ClientAddress.String(),
		ClientCityLine: joinNonEmpty(", ",
			a.ClientCity.String(),
			joinNonEmpty(" ", a.ClientState.String(), a.ClientZip.String()),
		),
		CareName: a.RecipientName(),
		CareAddress: joinNonEmpty(", ",
			a.CareAddress.String(),
			a.CareCity.String(),
			joinNonEmpty(" ", a.CareState.String(), a.CareZip.String()),
		),

		AgreementDate:       FormatDate(a.AgreementDate.String()),
		InitialInquiry:      FormatDate(a.InitialInquiryDate.String()),
		InstructionsGivenBy: a.InstructionsGivenBy.Or(resp),
		StartDate:           FormatDate(a.StartDate.String()),
		StartTime:           a.ServicesStartTime.Or(defaultStartTime),

		CareType:       a.CareType.String(),
		Frequency:      a.FrequencyDuration.String(),
		HoursRequested: a.HoursRequested.String(),
		HourlyRate:     Currency(a.HourlyRate.Float(c.cfg.DefaultHourlyRate)),
		MileageRate:    Currency(a.MileageRate.Float(c.cfg.DefaultMileageRate)),
		PercentCharged: a.PercentCharged.Or(defaultPercent),
		HazardLines:    Lines(a.Hazards.Or(defaultHazards)),
		LiveIn:         p.Clauses.LiveIn || p.RequiresLiveInText || bool(a.IsLiveIn),

		HolidayCount: p.HolidayCount(),
		Holidays:     branch.FormatHolidays(p.Holidays),

		VehicleAuthorized: bool(a.VehicleAuthorized),
		VehicleInitials:   a.VehicleInitials.String(),
		RepSignature:      a.RepSignature.Or(defaultRepSignature),

		Bank: bankView{
			Line:    BankLine(a),
			Routing: a.RoutingNumber.String(),
			Account: a.AccountNumber.String(),
			Type:    accountType(a.AccountType),
		},
	}
}

func or(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}

// sectionSpec is one entry of the document plan. A nil when means the
// section is always present.
type sectionSpec struct {
	name    string
	page    model.Page
	kind    model.SectionKind
	when    func(*view) bool
	variant func(*view) string
}

// plan lists every section in document order.
var plan = []sectionSpec{
	{name: "header", page: model.PageAgreement, kind: model.SectionComputed},
	{name: "title", page: model.PageAgreement, kind: model.SectionComputed},
	{name: "admin_grid", page: model.PageAgreement, kind: model.SectionComputed},
	{name: "required_services", page: model.PageAgreement, kind: model.SectionComputed},
	{name: "frequency", page: model.PageAgreement, kind: model.SectionComputed},
	{name: "fees", page: model.PageAgreement, kind: model.SectionComputed},
	{name: "hazards", page: model.PageAgreement, kind: model.SectionConditional,
		when: func(v *view) bool { return v.Policy.Clauses.Hazards }},
	{name: "caregiver_competency", page: model.PageAgreement, kind: model.SectionConditional,
		when: func(v *view) bool { return v.Policy.Clauses.CaregiverCompetency }},
	{name: "charges", page: model.PageAgreement, kind: model.SectionComputed,
		variant: func(v *view) string {
			if v.Policy.Clauses.AdvanceInvoicing {
				return "advance_invoice"
			}
			return "standard"
		}},
	{name: "payment_obligations", page: model.PageAgreement, kind: model.SectionFixed},
	{name: "federal_holidays", page: model.PageAgreement, kind: model.SectionComputed},
	{name: "live_in", page: model.PageAgreement, kind: model.SectionConditional,
		when: func(v *view) bool { return v.LiveIn }},
	{name: "agreement_signatures", page: model.PageAgreement, kind: model.SectionComputed,
		variant: func(v *view) string {
			if v.Policy.RepresentativeSignature {
				return "representative"
			}
			return "standard"
		}},

	{name: "needs_assessment", page: model.PageTerms, kind: model.SectionComputed, variant: assessmentVariant},
	{name: "valuables", page: model.PageTerms, kind: model.SectionComputed, variant: assessmentVariant},
	{name: "notice_period", page: model.PageTerms, kind: model.SectionComputed,
		variant: func(v *view) string { return fmt.Sprintf("%d_day", v.Policy.Notice.Days) }},
	{name: "medication", page: model.PageTerms, kind: model.SectionConditional,
		when: func(v *view) bool { return v.Policy.Clauses.Medication }},
	{name: "non_solicitation", page: model.PageTerms, kind: model.SectionFixed},
	{name: "record_keeping", page: model.PageTerms, kind: model.SectionFixed},
	{name: "mileage", page: model.PageTerms, kind: model.SectionComputed},
	{name: "vehicle", page: model.PageTerms, kind: model.SectionComputed,
		variant: func(v *view) string {
			if v.Policy.Clauses.VehicleCheckbox {
				return "checkbox"
			}
			return "initial_line"
		}},
	{name: "general_provisions", page: model.PageTerms, kind: model.SectionComputed},
	{name: "acknowledgement", page: model.PageTerms, kind: model.SectionComputed},

	{name: "rights", page: model.PageRights, kind: model.SectionComputed,
		variant: func(v *view) string {
			if v.Policy.Clauses.Rights == "" {
				return string(model.RightsGeneric)
			}
			return string(v.Policy.Clauses.Rights)
		}},
	{name: "billing_procedures", page: model.PageRights, kind: model.SectionFixed},
	{name: "rights_signatures", page: model.PageRights, kind: model.SectionComputed},

	{name: "eft_authorization", page: model.PageFundsTransfer, kind: model.SectionComputed},

	{name: "consumer_notice", page: model.PageConsumerNotice, kind: model.SectionConditional,
		when: func(v *view) bool { return v.Policy.Clauses.ConsumerNotice }},
}

func assessmentVariant(v *view) string {
	if v.Policy.Clauses.AssessmentFee {
		return "expanded"
	}
	return "standard"
}
