// Package branch resolves a branch code and state code into the complete
// legal and layout policy for a service agreement.
package branch

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/sells-group/agreement-cli/internal/model"
)

// Resolver turns (branch, state) pairs into ResolvedPolicy values. It is safe
// for concurrent use; the table can be replaced with Swap at any time.
type Resolver struct {
	table atomic.Pointer[Table]
}

// NewResolver creates a resolver over t, or over the compiled-in table when
// t is nil.
func NewResolver(t *Table) *Resolver {
	if t == nil {
		t = DefaultTable()
	}
	r := &Resolver{}
	r.table.Store(t)
	return r
}

// Swap atomically replaces the table and returns the previous one.
func (r *Resolver) Swap(t *Table) *Table {
	return r.table.Swap(t)
}

// Table returns the table currently in use.
func (r *Resolver) Table() *Table {
	return r.table.Load()
}

// Option adjusts a single resolution.
type Option func(*resolveOptions)

type resolveOptions struct {
	careState string
}

// WithCareRecipientState supplies the state the care recipient lives in.
// Some branches select clauses on it.
func WithCareRecipientState(state string) Option {
	return func(o *resolveOptions) {
		o.careState = normalizeState(state)
	}
}

// Normalize trims and case-folds a branch code.
func Normalize(code string) string {
	// A Caser carries state, so each call gets its own.
	return cases.Fold().String(strings.TrimSpace(code))
}

// BaseCode strips the staging suffix from a normalized code.
func BaseCode(code string) string {
	return strings.TrimSuffix(code, stagingSuffix)
}

func normalizeState(state string) string {
	return strings.ToUpper(strings.TrimSpace(state))
}

// Resolve computes the policy for a branch operating under a state. It never
// fails: unknown codes and states degrade to the Maryland baseline.
func (r *Resolver) Resolve(branchCode, stateCode string, opts ...Option) model.ResolvedPolicy {
	var o resolveOptions
	for _, opt := range opts {
		opt(&o)
	}

	t := r.table.Load()
	code := Normalize(branchCode)
	state := normalizeState(stateCode)
	if state == "" {
		state = defaultState
	}

	rec, known := t.record(code)
	if !known {
		zap.L().Debug("branch: unknown code, using baseline",
			zap.String("branch_code", code),
			zap.String("state_code", state),
		)
	}
	ov := t.policy(code)
	sp := t.States[state]

	p := model.ResolvedPolicy{
		BranchCode:         code,
		StateCode:          state,
		CareRecipientState: o.careState,
		DisplayName:        rec.DisplayName,
		Address:            rec.Address,
		StateAuthority:     sp.Authority,
		GoverningState:     sp.GoverningName,
		Notice:             StandardNotice,
		Holidays:           insertHolidays(t.Holidays, ov.ExtraHolidays),
		Margins:            model.Margins{Top: defaultMargin, Bottom: defaultMargin, Left: defaultMargin, Right: defaultMargin},
		Footer:             state,
	}
	if p.DisplayName == "" {
		p.DisplayName = strings.TrimSpace(branchCode)
	}
	if p.StateAuthority == "" {
		p.StateAuthority = defaultAuthority
	}
	if p.GoverningState == "" {
		p.GoverningState = defaultGoverningState
	}

	// Branch overrides, one category at a time.
	if ov.Notice != nil {
		p.Notice = *ov.Notice
	}
	if ov.GoverningState != "" {
		p.GoverningState = ov.GoverningState
	}
	if ov.TopMargin != nil {
		p.Margins.Top = *ov.TopMargin
	}
	p.RepresentativeSignature = ov.RepresentativeSignature
	p.RequiresLiveInText = strings.HasPrefix(code, "test")
	p.GoverningLaw = fmt.Sprintf("This agreement is governed by the laws of the state of %s.", p.GoverningState)

	p.Clauses = model.ClauseSet{
		Medication:          ov.Medication || containsState(ov.MedicationRecipientStates, o.careState),
		AssessmentFee:       ov.AssessmentFee,
		ConsumerNotice:      sp.ConsumerNotice || ov.ConsumerNotice,
		LiveIn:              ov.LiveIn,
		Hazards:             ov.Hazards,
		CaregiverCompetency: ov.CaregiverCompetency,
		PercentCharged:      ov.PercentCharged,
		AdvanceInvoicing:    ov.AdvanceInvoicing,
		VehicleCheckbox:     ov.VehicleCheckbox,
		ProvisionsState:     ov.ProvisionsState,
		Rights:              selectRights(ov, o.careState),
	}
	if p.Clauses.ProvisionsState == "" {
		p.Clauses.ProvisionsState = defaultGoverningState
	}

	return p
}

// Config is Resolve without options, the shape callers use for lookups.
func (r *Resolver) Config(branchCode, stateCode string) model.ResolvedPolicy {
	return r.Resolve(branchCode, stateCode)
}

// Options lists every known branch sorted by display name, ties broken by
// code.
func (r *Resolver) Options() []model.BranchOption {
	t := r.table.Load()
	out := make([]model.BranchOption, 0, len(t.Branches))
	for code, rec := range t.Branches {
		out = append(out, model.BranchOption{Code: code, Name: rec.DisplayName})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// Address returns the branch's address, or an all-empty record for an
// unknown code.
func (r *Resolver) Address(branchCode string) model.Address {
	rec, _ := r.table.Load().record(Normalize(branchCode))
	return rec.Address
}

// Branch returns the full static record for a code.
func (r *Resolver) Branch(branchCode string) (model.BranchRecord, bool) {
	return r.table.Load().record(Normalize(branchCode))
}

func containsState(states []string, state string) bool {
	if state == "" {
		return false
	}
	for _, s := range states {
		if strings.EqualFold(s, state) {
			return true
		}
	}
	return false
}
