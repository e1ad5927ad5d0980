package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Text
	}{
		{"string", `"Jane"`, "Jane"},
		{"integer", `38`, "38"},
		{"decimal", `0.67`, "0.67"},
		{"bool", `true`, "true"},
		{"null", `null`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Text
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestText_UnmarshalJSON_RejectsObjects(t *testing.T) {
	var got Text
	err := json.Unmarshal([]byte(`{"a":1}`), &got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported text value")
}

func TestText_Provided(t *testing.T) {
	assert.True(t, Text("x").Provided())
	assert.True(t, Text("0").Provided())
	assert.False(t, Text("").Provided())
	assert.False(t, Text("   ").Provided())
	assert.False(t, Text("None").Provided())
	assert.False(t, Text("NULL").Provided())
}

func TestText_OrAndString(t *testing.T) {
	assert.Equal(t, "Self", Text("none").Or("Self"))
	assert.Equal(t, "Son", Text("  Son ").Or("Self"))
	assert.Equal(t, "", Text("null").String())
}

func TestText_Float(t *testing.T) {
	assert.InDelta(t, 38.5, Text("38.5").Float(36), 1e-9)
	assert.InDelta(t, 1250, Text("$1,250").Float(0), 1e-9)
	assert.InDelta(t, 36, Text("").Float(36), 1e-9)
	assert.InDelta(t, 36, Text("thirty").Float(36), 1e-9)
}

func TestFlag_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw  string
		want Flag
	}{
		{`true`, true},
		{`false`, false},
		{`"TRUE"`, true},
		{`" true "`, true},
		{`"yes"`, false},
		{`1`, false},
		{`null`, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var got Flag
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAgreement_DecodeLooseForm(t *testing.T) {
	raw := `{
		"branch_code": "bahomecare",
		"clt_first_name": "Jane",
		"clt_last_name": null,
		"care_first_name": "Robert",
		"care_last_name": "None",
		"hourly_rate": 40,
		"is_live_in": "True",
		"vehicle_authorized": false
	}`

	var a Agreement
	require.NoError(t, json.Unmarshal([]byte(raw), &a))
	assert.Equal(t, "40", a.HourlyRate.String())
	assert.True(t, bool(a.IsLiveIn))
	assert.False(t, bool(a.VehicleAuthorized))
	assert.Equal(t, []string{"clt_last_name", "care_last_name"}, a.MissingIdentity())
}

func TestAgreement_MissingIdentity_Complete(t *testing.T) {
	a := Agreement{
		ClientFirstName: "Jane",
		ClientLastName:  "Doe",
		CareFirstName:   "Robert",
		CareLastName:    "Doe",
	}
	assert.Empty(t, a.MissingIdentity())
}

func TestAgreement_Names(t *testing.T) {
	a := Agreement{
		ClientTitle:     "Ms.",
		ClientFirstName: "Jane",
		ClientLastName:  "Doe",
		CareTitle:       "none",
		CareFirstName:   "Robert",
		CareLastName:    "Doe",
	}
	assert.Equal(t, "Ms. Jane Doe", a.ResponsibleName())
	assert.Equal(t, "Robert Doe", a.RecipientName())
}

func TestDocument_Lookups(t *testing.T) {
	d := &Document{Sections: []Section{
		{Name: "header", Page: PageAgreement},
		{Name: "fees", Page: PageAgreement},
		{Name: "medication", Page: PageTerms},
		{Name: "rights", Page: PageRights},
	}}

	assert.True(t, d.Has("fees"))
	assert.False(t, d.Has("consumer_notice"))
	assert.Equal(t, []Page{PageAgreement, PageTerms, PageRights}, d.Pages())
	assert.Len(t, d.SectionsOn(PageAgreement), 2)

	s, ok := d.Section("medication")
	require.True(t, ok)
	assert.Equal(t, PageTerms, s.Page)
}
