package branch

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/agreement-cli/internal/model"
)

// Table is the complete set of static reference data the resolver reads.
// A Table is never mutated after construction; reloads build a new one.
type Table struct {
	Branches map[string]model.BranchRecord         `yaml:"branches"`
	States   map[string]model.StatePolicy          `yaml:"states"`
	Policies map[string]model.BranchPolicyOverride `yaml:"policies"`
	Holidays []string                              `yaml:"holidays"`
}

// DefaultTable returns the compiled-in branch table.
func DefaultTable() *Table {
	t := &Table{
		Branches: make(map[string]model.BranchRecord, 2*len(baseRecords)),
		States:   make(map[string]model.StatePolicy, len(statePolicies)),
		Policies: make(map[string]model.BranchPolicyOverride, len(defaultPolicies)),
		Holidays: append([]string(nil), StandardHolidays...),
	}
	for _, r := range baseRecords {
		t.Branches[r.Code] = r
	}
	for code, name := range stagingNames {
		base := t.Branches[BaseCode(code)]
		t.Branches[code] = model.BranchRecord{Code: code, DisplayName: name, State: base.State, Address: base.Address}
	}
	for k, v := range statePolicies {
		t.States[k] = v
	}
	for k, v := range defaultPolicies {
		t.Policies[k] = v
	}
	t.expandStaging()
	return t
}

// LoadTable reads a YAML table file and overlays it on the compiled-in
// table. Entries in the file replace the compiled-in entry with the same key;
// a non-empty holidays list replaces the standard list.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "branch: read table %s", path)
	}

	var file Table
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, eris.Wrapf(err, "branch: parse table %s", path)
	}

	t := DefaultTable()
	for code, r := range file.Branches {
		code = Normalize(code)
		r.Code = code
		r.State = strings.ToUpper(strings.TrimSpace(r.State))
		t.Branches[code] = r
		// Re-derive the twin from the replaced base record.
		if _, ok := file.Branches[code+stagingSuffix]; !ok && !strings.HasSuffix(code, stagingSuffix) {
			delete(t.Branches, code+stagingSuffix)
		}
	}
	for st, sp := range file.States {
		t.States[strings.ToUpper(strings.TrimSpace(st))] = sp
	}
	for code, ov := range file.Policies {
		t.Policies[Normalize(code)] = ov
	}
	if len(file.Holidays) > 0 {
		t.Holidays = file.Holidays
	}
	t.expandStaging()

	if err := t.Validate(); err != nil {
		return nil, eris.Wrapf(err, "branch: invalid table %s", path)
	}
	return t, nil
}

// Validate checks the invariants the resolver relies on.
func (t *Table) Validate() error {
	if len(t.Holidays) == 0 {
		return eris.New("branch: holiday list is empty")
	}
	for code, r := range t.Branches {
		if code == "" {
			return eris.New("branch: empty branch code")
		}
		if r.DisplayName == "" {
			return eris.Errorf("branch: %s has no display name", code)
		}
	}
	for code, ov := range t.Policies {
		for _, h := range ov.ExtraHolidays {
			if h.Name == "" || h.Position < 1 {
				return eris.Errorf("branch: %s has invalid holiday insert %q at %d", code, h.Name, h.Position)
			}
		}
		if ov.Notice != nil && ov.Notice.Days < 1 {
			return eris.Errorf("branch: %s notice period must be positive", code)
		}
		if ov.TopMargin != nil && *ov.TopMargin < 0 {
			return eris.Errorf("branch: %s top margin must not be negative", code)
		}
	}
	return nil
}

// expandStaging adds a staging twin for every base branch that lacks one.
// Twins inherit the base address when they have none of their own.
func (t *Table) expandStaging() {
	for code, r := range t.Branches {
		if strings.HasSuffix(code, stagingSuffix) {
			continue
		}
		twin := code + stagingSuffix
		existing, ok := t.Branches[twin]
		if !ok {
			t.Branches[twin] = model.BranchRecord{
				Code:        twin,
				DisplayName: stagingName(r.DisplayName),
				State:       r.State,
				Address:     r.Address,
			}
			continue
		}
		if existing.Address.IsZero() {
			existing.Address = r.Address
			t.Branches[twin] = existing
		}
	}
}

// stagingName inserts " - Staging" ahead of a trailing "(ST)" suffix.
func stagingName(name string) string {
	if strings.HasSuffix(name, ")") {
		if i := strings.LastIndex(name, " ("); i > 0 {
			return name[:i] + " - Staging" + name[i:]
		}
	}
	return name + " - Staging"
}

func (t *Table) record(code string) (model.BranchRecord, bool) {
	r, ok := t.Branches[code]
	return r, ok
}

func (t *Table) policy(code string) model.BranchPolicyOverride {
	if ov, ok := t.Policies[code]; ok {
		return ov
	}
	return t.Policies[BaseCode(code)]
}
