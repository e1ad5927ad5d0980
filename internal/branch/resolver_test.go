package branch

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/agreement-cli/internal/model"
)

func TestResolve_Deterministic(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	for _, code := range []string{"nspahomecare", "mnhomecare", "dchomecare", "unknown", ""} {
		a := r.Resolve(code, "PA", WithCareRecipientState("DC"))
		b := r.Resolve(code, "PA", WithCareRecipientState("DC"))
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("Resolve(%q) not deterministic (-first +second):\n%s", code, diff)
		}
	}
}

func TestResolve_UnknownBranchFallsBack(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	p := r.Resolve("totally_unknown_code", "ZZ")

	assert.Equal(t, "totally_unknown_code", p.BranchCode)
	assert.Equal(t, "totally_unknown_code", p.DisplayName)
	assert.Equal(t, "ZZ", p.StateCode)
	assert.Equal(t, "ZZ", p.Footer)
	assert.Equal(t, "State Health Department", p.StateAuthority)
	assert.Equal(t, "Maryland", p.GoverningState)
	assert.Equal(t, "This agreement is governed by the laws of the state of Maryland.", p.GoverningLaw)
	assert.Equal(t, 3, p.Notice.Days)
	assert.Equal(t, model.Margins{Top: 0.4, Bottom: 0.4, Left: 0.4, Right: 0.4}, p.Margins)
	assert.Equal(t, StandardHolidays, p.Holidays)
	assert.True(t, p.Address.IsZero())
	assert.False(t, p.RequiresLiveInText)
	assert.False(t, p.RepresentativeSignature)
	assert.Equal(t, model.ClauseSet{ProvisionsState: "Maryland", Rights: model.RightsGeneric}, p.Clauses)
}

func TestResolve_EmptyStateDefaultsToMaryland(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	p := r.Resolve("anhomecare", "  ")
	assert.Equal(t, "MD", p.StateCode)
	assert.Equal(t, "Maryland Office of Health Care Quality", p.StateAuthority)
	assert.Equal(t, "Maryland", p.GoverningState)
}

func TestResolve_NormalizesInput(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	p := r.Resolve("  NSPAHomeCare ", "pa")
	assert.Equal(t, "nspahomecare", p.BranchCode)
	assert.Equal(t, "PA", p.StateCode)
	assert.Equal(t, "Newtown Square/Philadelphia Home Care (PA)", p.DisplayName)
}

func TestResolve_Pennsylvania(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	p := r.Resolve("nspahomecare", "PA")

	assert.Equal(t, 10, p.Notice.Days)
	assert.Contains(t, p.Notice.Text, "at least 10 calendar days")
	assert.Equal(t, "Pennsylvania", p.GoverningState)
	assert.Equal(t, "This agreement is governed by the laws of the state of Pennsylvania.", p.GoverningLaw)
	assert.Equal(t, "Pennsylvania Department of Health", p.StateAuthority)
	assert.InDelta(t, 0.4, p.Margins.Top, 1e-9)
	assert.True(t, p.Clauses.ConsumerNotice)
	assert.True(t, p.Clauses.Medication)
	assert.True(t, p.Clauses.AssessmentFee)
	assert.True(t, p.Clauses.LiveIn)
	assert.Equal(t, "Pennsylvania", p.Clauses.ProvisionsState)
	assert.Equal(t, model.RightsNewtownSquare, p.Clauses.Rights)
	assert.Equal(t, "175 Strafford Avenue", p.Address.Line1)
}

func TestResolve_ConsumerNoticeSources(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	tests := []struct {
		code, state string
		want        bool
	}{
		{"anhomecare", "PA", true},  // state requirement
		{"bahomecare", "MD", true},  // branch requirement
		{"hbhomecare", "MD", false}, // neither
		{"hbhomecare", "PA", true},
		{"anhomecare", "MD", false},
	}
	for _, tt := range tests {
		t.Run(tt.code+"_"+tt.state, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.code, tt.state).Clauses.ConsumerNotice)
		})
	}
}

func TestResolve_IndependentMembership(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	// Assessment-fee text without the medication clause.
	ba := r.Resolve("bahomecare", "MD")
	assert.True(t, ba.Clauses.AssessmentFee)
	assert.False(t, ba.Clauses.Medication)

	// Medication clause without assessment-fee text.
	cl := r.Resolve("clhomecare", "OH")
	assert.True(t, cl.Clauses.Medication)
	assert.False(t, cl.Clauses.AssessmentFee)

	// Both.
	at := r.Resolve("athomecare", "GA")
	assert.True(t, at.Clauses.Medication)
	assert.True(t, at.Clauses.AssessmentFee)

	// Neither.
	an := r.Resolve("anhomecare", "MD")
	assert.False(t, an.Clauses.Medication)
	assert.False(t, an.Clauses.AssessmentFee)
}

func TestResolve_Margins(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	tests := []struct {
		code string
		top  float64
	}{
		{"mnhomecare", 0.2},
		{"lovahomecare", 0.2},
		{"amfvahomecare", 0.2},
		{"woflhomecare", 0.2},
		{"lzflhomecare", 0.2},
		{"bahomecare", 0.3},
		{"lphomecare", 0.3},
		{"anhomecare", 0.4},
		{"mnhomecare_staging", 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			m := r.Resolve(tt.code, "").Margins
			assert.InDelta(t, tt.top, m.Top, 1e-9)
			assert.InDelta(t, 0.4, m.Bottom, 1e-9)
			assert.InDelta(t, 0.4, m.Left, 1e-9)
			assert.InDelta(t, 0.4, m.Right, 1e-9)
		})
	}
}

func TestResolve_GoverningState(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	tests := []struct {
		code, state, want string
	}{
		{"gbhomecare", "MD", "North Carolina"},
		{"rdhomecare", "", "North Carolina"},
		{"scgahomecare", "SC", "Georgia"},
		{"athomecare", "MD", "Georgia"},
		{"hbhomecare", "MD", "Pennsylvania"},
		{"chazhomecare", "MD", "Arizona"},
		{"wenjhomecare", "MD", "New Jersey"},
		{"wpbflhomecare", "MD", "Florida"},
		{"mnhomecare", "VA", "Commonwealth of Virginia"},
		{"shmihomecare", "MI", "Maryland"},
		{"anhomecare", "DC", "District of Columbia"},
	}
	for _, tt := range tests {
		t.Run(tt.code+"_"+tt.state, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.code, tt.state).GoverningState)
		})
	}
}

func TestResolve_StateAuthorityIndependentOfGoverningLaw(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	p := r.Resolve("gbhomecare", "MD")
	assert.Equal(t, "North Carolina", p.GoverningState)
	assert.Equal(t, "Maryland Office of Health Care Quality", p.StateAuthority)
}

func TestResolve_Holidays(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	std := r.Resolve("anhomecare", "MD")
	require.Len(t, std.Holidays, 11)

	mn := r.Resolve("mnhomecare", "VA")
	require.Len(t, mn.Holidays, 12)
	assert.Equal(t, "Easter Sunday", mn.Holidays[3])
	assert.Equal(t, "Presidents' Day", mn.Holidays[2])
	assert.Equal(t, "Memorial Day", mn.Holidays[4])

	// The shared list must not be modified by an insert.
	assert.Len(t, StandardHolidays, 11)
	assert.Equal(t, "Memorial Day", StandardHolidays[3])
}

func TestResolve_DCMedicationDependsOnCareRecipientState(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	inDC := r.Resolve("dchomecare", "MD", WithCareRecipientState("dc"))
	assert.True(t, inDC.Clauses.Medication)
	assert.Equal(t, "DC", inDC.CareRecipientState)

	inMD := r.Resolve("dchomecare", "MD", WithCareRecipientState("MD"))
	assert.False(t, inMD.Clauses.Medication)

	noState := r.Resolve("dchomecare", "DC")
	assert.False(t, noState.Clauses.Medication)

	// Other branches ignore the recipient's state.
	assert.False(t, r.Resolve("anhomecare", "MD", WithCareRecipientState("DC")).Clauses.Medication)
}

func TestResolve_TestPrefixRequiresLiveInText(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	assert.True(t, r.Resolve("testhomecare", "MD").RequiresLiveInText)
	assert.True(t, r.Resolve("test2homecare", "MD").RequiresLiveInText)
	assert.True(t, r.Resolve("testanything", "MD").RequiresLiveInText)
	assert.False(t, r.Resolve("tomdhomecare", "MD").RequiresLiveInText)
}

func TestResolve_StagingInheritsBase(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	base := r.Resolve("hbhomecare", "PA", WithCareRecipientState("PA"))
	stg := r.Resolve("hbhomecare_staging", "PA", WithCareRecipientState("PA"))

	assert.Equal(t, "Harrisburg Home Care - Staging (PA)", stg.DisplayName)
	assert.Equal(t, base.Address, stg.Address)
	diff := cmp.Diff(base, stg,
		cmp.FilterPath(func(p cmp.Path) bool {
			switch p.String() {
			case "BranchCode", "DisplayName":
				return true
			}
			return false
		}, cmp.Ignore()),
	)
	assert.Empty(t, diff)
}

func TestResolve_RepresentativeSignature(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	for code, want := range map[string]bool{
		"scgahomecare":       true,
		"athomecare_staging": true,
		"anhomecare":         false,
	} {
		assert.Equal(t, want, r.Resolve(code, "").RepresentativeSignature, code)
	}
}

func TestResolve_ConcurrentWithSwap(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				p := r.Resolve("nspahomecare", "PA")
				assert.Equal(t, 10, p.Notice.Days)
			}
		}()
	}
	for i := 0; i < 20; i++ {
		r.Swap(DefaultTable())
	}
	wg.Wait()
}

func TestOptions_SortedByName(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	opts := r.Options()
	require.Len(t, opts, 2*len(baseRecords))
	for i := 1; i < len(opts); i++ {
		prev, cur := opts[i-1], opts[i]
		ok := prev.Name < cur.Name || (prev.Name == cur.Name && prev.Code < cur.Code)
		assert.True(t, ok, "%v before %v", prev, cur)
	}
	assert.Equal(t, "Annapolis Home Care (MD)", opts[0].Name)
}

func TestOptions_TieBrokenByCode(t *testing.T) {
	t.Parallel()
	tbl := &Table{
		Branches: map[string]model.BranchRecord{
			"zz": {Code: "zz", DisplayName: "Same"},
			"aa": {Code: "aa", DisplayName: "Same"},
		},
		Holidays: StandardHolidays,
	}
	opts := NewResolver(tbl).Options()
	require.Len(t, opts, 2)
	assert.Equal(t, "aa", opts[0].Code)
	assert.Equal(t, "zz", opts[1].Code)
}

func TestAddress(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	a := r.Address("wenjhomecare")
	assert.Equal(t, model.Address{
		OfficeName: "Options For Senior America",
		Line1:      "70 South Orange Avenue",
		Line2:      "Suite 105",
		City:       "Livingston",
		Zip:        "07039",
		Tel:        "973.803.0901",
	}, a)

	assert.Equal(t, a, r.Address("WENJHOMECARE_staging"))
	assert.Equal(t, model.Address{}, r.Address("nope"))
}

func TestBranch(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	rec, ok := r.Branch("lzflhomecare_staging")
	require.True(t, ok)
	assert.Equal(t, "Lake Zurich FL Home Care - Staging (FL)", rec.DisplayName)
	assert.Equal(t, "FL", rec.State)

	_, ok = r.Branch("missing")
	assert.False(t, ok)
}

func TestStagingName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Annapolis Home Care - Staging (MD)", stagingName("Annapolis Home Care (MD)"))
	assert.Equal(t, "DC Home Care - Staging", stagingName("DC Home Care"))
}
