package model

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// Text is a loosely typed agreement field. It decodes JSON strings, numbers,
// booleans and null, since agreements arrive from forms and legacy exports.
type Text string

// UnmarshalJSON accepts any JSON scalar.
func (t *Text) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*t = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = Text(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*t = Text(n.String())
		return nil
	}

	var v bool
	if err := json.Unmarshal(b, &v); err == nil {
		*t = Text(strconv.FormatBool(v))
		return nil
	}

	return eris.Errorf("model: unsupported text value %s", raw)
}

// Provided reports whether the field carries a real value. Blank values and
// the literals "none" and "null" (any case) count as not provided.
func (t Text) Provided() bool {
	v := strings.TrimSpace(string(t))
	if v == "" {
		return false
	}
	switch strings.ToLower(v) {
	case "none", "null":
		return false
	}
	return true
}

// Or returns the trimmed value, or def when the field is not provided.
func (t Text) Or(def string) string {
	if !t.Provided() {
		return def
	}
	return strings.TrimSpace(string(t))
}

// String returns the trimmed value or "".
func (t Text) String() string {
	return t.Or("")
}

// Float parses the field as a decimal number. Missing or unparseable values
// yield def.
func (t Text) Float(def float64) float64 {
	if !t.Provided() {
		return def
	}
	v := strings.TrimPrefix(t.String(), "$")
	f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
	if err != nil {
		return def
	}
	return f
}

// Flag is a boolean agreement field that also accepts case-insensitive
// "true"/"false" strings. Anything other than true or "true" is false.
type Flag bool

// UnmarshalJSON accepts JSON booleans, strings and null.
func (f *Flag) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return eris.Wrap(err, "model: decode flag")
	}
	switch x := v.(type) {
	case bool:
		*f = Flag(x)
	case string:
		*f = Flag(ParseFlag(x))
	default:
		*f = false
	}
	return nil
}

// ParseFlag normalizes a boolean-like string.
func ParseFlag(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

// Agreement is the per-document input supplied by the persistence layer.
// Field names follow the agreement form.
type Agreement struct {
	// Client (responsible party)
	ClientTitle        Text `json:"clt_title"`
	ClientFirstName    Text `json:"clt_first_name"`
	ClientLastName     Text `json:"clt_last_name"`
	ClientEmail        Text `json:"clt_email"`
	ClientPhone        Text `json:"clt_phone"`
	ClientAddress      Text `json:"clt_address"`
	ClientCity         Text `json:"clt_city"`
	ClientState        Text `json:"clt_state"`
	ClientZip          Text `json:"clt_zip"`
	ClientRelationship Text `json:"clt_relationship"`
	ResponsibleParty   Text `json:"responsible_party"`

	// Care recipient
	CareTitle     Text `json:"care_title"`
	CareFirstName Text `json:"care_first_name"`
	CareLastName  Text `json:"care_last_name"`
	CareDOB       Text `json:"care_dob"`
	CareAddress   Text `json:"care_recipient_address"`
	CareCity      Text `json:"care_city"`
	CareState     Text `json:"care_state"`
	CareZip       Text `json:"care_zip"`

	// Service terms
	BranchCode          Text `json:"branch_code"`
	StateCode           Text `json:"state_code"`
	HandledBy           Text `json:"handled_by"`
	AgreementDate       Text `json:"agreement_date"`
	StartDate           Text `json:"start_date"`
	EndDate             Text `json:"end_date"`
	InitialInquiryDate  Text `json:"initial_inquiry_date"`
	ServicesStartTime   Text `json:"services_start_time"`
	InstructionsGivenBy Text `json:"instructions_given_by"`
	HoursRequested      Text `json:"hours_requested"`
	FrequencyDuration   Text `json:"frequency_duration"`
	CareType            Text `json:"care_type"`
	IsLiveIn            Flag `json:"is_live_in"`
	HourlyRate          Text `json:"hourly_rate"`
	MileageRate         Text `json:"mileage_rate"`
	VehicleAuthorized   Flag `json:"vehicle_authorized"`
	VehicleInitials     Text `json:"vehicle_authorization_initials"`
	PercentCharged      Text `json:"perc_charged"`
	Hazards             Text `json:"hazards"`

	// Funds transfer
	BankName      Text `json:"bank_name"`
	BankCity      Text `json:"bank_city"`
	BankState     Text `json:"bank_state"`
	RoutingNumber Text `json:"routing_number"`
	AccountNumber Text `json:"account_number"`
	AccountType   Text `json:"account_type"`
	PaymentMethod Text `json:"payment_method"`

	// Signatures
	ClientInitials Text `json:"client_initials"`
	RepSignature   Text `json:"rep_signature"`
}

// MissingIdentity returns the form names of required identity fields that
// are not provided, in form order.
func (a Agreement) MissingIdentity() []string {
	required := []struct {
		name  string
		value Text
	}{
		{"clt_first_name", a.ClientFirstName},
		{"clt_last_name", a.ClientLastName},
		{"care_first_name", a.CareFirstName},
		{"care_last_name", a.CareLastName},
	}

	var missing []string
	for _, r := range required {
		if !r.value.Provided() {
			missing = append(missing, r.name)
		}
	}
	return missing
}

// ResponsibleName is the client's display name: title, first and last name.
func (a Agreement) ResponsibleName() string {
	return joinName(a.ClientTitle, a.ClientFirstName, a.ClientLastName)
}

// RecipientName is the care recipient's display name.
func (a Agreement) RecipientName() string {
	return joinName(a.CareTitle, a.CareFirstName, a.CareLastName)
}

func joinName(parts ...Text) string {
	var out []string
	for _, p := range parts {
		if p.Provided() {
			out = append(out, p.String())
		}
	}
	return strings.Join(out, " ")
}
