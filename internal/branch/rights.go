package branch

import "github.com/sells-group/agreement-cli/internal/model"

// rightsRule maps a group to a template. When careState is set the rule
// applies only if the care recipient's state matches it; when notCareState is
// set it applies only if the state differs.
type rightsRule struct {
	group        model.RightsGroup
	template     model.RightsTemplate
	careState    string
	notCareState string
}

// rightsCascade is evaluated top to bottom; the first matching rule wins.
var rightsCascade = []rightsRule{
	{group: model.GroupMaryland, template: model.RightsMaryland},
	{group: model.GroupGeorgia, template: model.RightsGeorgia},
	{group: model.GroupRegional, template: model.RightsRegional},
	{group: model.GroupVirginia, template: model.RightsVirginia},
	{group: model.GroupFlorida, template: model.RightsFlorida},
	{group: model.GroupIndiana, template: model.RightsIndiana},
	{group: model.GroupNorthCarolina, template: model.RightsNorthCarolina},
	{group: model.GroupNewtownSquare, template: model.RightsNewtownSquare},
	{group: model.GroupHarrisburg, template: model.RightsHarrisburg},
	{group: model.GroupDistrict, template: model.RightsDCResident, careState: "DC"},
	{group: model.GroupDistrict, template: model.RightsDCNonResident, notCareState: "DC"},
}

func (rule rightsRule) matches(ov model.BranchPolicyOverride, careState string) bool {
	if !ov.HasGroup(rule.group) {
		return false
	}
	if rule.careState != "" && careState != rule.careState {
		return false
	}
	if rule.notCareState != "" && careState == rule.notCareState {
		return false
	}
	return true
}

func selectRights(ov model.BranchPolicyOverride, careState string) model.RightsTemplate {
	for _, rule := range rightsCascade {
		if rule.matches(ov, careState) {
			return rule.template
		}
	}
	return model.RightsGeneric
}
