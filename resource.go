package eurlex

import "strings"

// ResourceType selects a family of Cellar resource-type codes.
type ResourceType string

// Supported resource types. ResourceManual takes a caller-supplied code
// instead of a predefined family.
const (
	ResourceAny                    ResourceType = "any"
	ResourceDirective              ResourceType = "directive"
	ResourceRegulation             ResourceType = "regulation"
	ResourceDecision               ResourceType = "decision"
	ResourceRecommendation         ResourceType = "recommendation"
	ResourceInternationalAgreement ResourceType = "international_agreement"
	ResourceCaselaw                ResourceType = "caselaw"
	ResourceAGOpinion              ResourceType = "ag_opinion"
	ResourceManual                 ResourceType = "manual"
	ResourceProposal               ResourceType = "proposal"
	ResourceNationalImplementation ResourceType = "national_implementation"
)

// ResourceTypeBaseURI is the authority table holding resource-type codes.
const ResourceTypeBaseURI = "http://publications.europa.eu/resource/authority/resource-type/"

// resourceTypes lists every variant in declaration order.
var resourceTypes = []ResourceType{
	ResourceAny,
	ResourceDirective,
	ResourceRegulation,
	ResourceDecision,
	ResourceRecommendation,
	ResourceInternationalAgreement,
	ResourceCaselaw,
	ResourceAGOpinion,
	ResourceManual,
	ResourceProposal,
	ResourceNationalImplementation,
}

// typeCodes maps each predefined family to its vocabulary codes.
// AG opinions are deliberately kept out of case law.
var typeCodes = map[ResourceType][]string{
	ResourceDirective: {"DIR", "DIR_IMPL", "DIR_DEL"},
	ResourceRegulation: {
		"REG", "REG_IMPL", "REG_FINANC", "REG_DEL",
	},
	ResourceDecision: {
		"DEC", "DEC_ENTSCHEID", "DEC_IMPL", "DEC_DEL", "DEC_FRAMW", "JOINT_DEC",
	},
	ResourceRecommendation: {
		"RECO", "RECO_DEC", "RECO_DIR", "RECO_OPIN", "RECO_RES", "RECO_REG",
		"RECO_RECO", "RECO_DRAFT",
	},
	ResourceInternationalAgreement: {
		"AGREE_INTERNATION", "EXCH_LET", "PROT", "AGREE_PROT",
		"ACT_ADOPT_INTERNATION", "ARRANG", "CONVENTION", "AGREE_AMEND",
		"RECO_ADOPT_INTERNATION", "REG_ADOPT_INTERNATION",
		"DEC_ADOPT_INTERNATION", "MEMORANDUM_UNDERST",
	},
	ResourceCaselaw: {
		"JUDG", "ORDER", "OPIN_JUR", "THIRDPARTY_PROCEED", "GARNISHEE_ORDER",
		"RULING", "JUDG_EXTRACT", "INFO_JUDICIAL",
	},
	ResourceAGOpinion: {"VIEW_AG", "OPIN_AG"},
	ResourceProposal: {
		"PROP_DIR", "PROP_REG", "PROP_DEC", "PROP_DEC_IMPL", "PROP_REG_IMPL",
		"PROP_DIR_IMPL", "PROP_RECO", "JOINT_PROP_DEC", "JOINT_PROP_ACTION",
		"JOINT_PROP_REG", "JOINT_PROP_DIR", "PROP_RES", "PROP_AMEND",
		"PROP_OPIN", "PROP_DECLAR", "PROP_DEC_FRAMW", "PROP_DRAFT",
		"DEC_DEL_DRAFT", "DEC_DRAFT", "REG_DRAFT", "DIR_DRAFT", "RECO_DRAFT",
		"RES_DRAFT", "REG_IMPL_DRAFT", "DEC_IMPL_DRAFT", "DIR_IMPL_DRAFT",
		"DIR_DEL_DRAFT", "REG_DEL_DRAFT", "ACT_DRAFT", "ACT_DEL_DRAFT",
		"ACT_IMPL_DRAFT", "DECLAR_DRAFT", "DEC_FRAMW_DRAFT",
		"JOINT_ACTION_DRAFT", "PROT_DRAFT", "COMMUNIC_DRAFT",
		"AGREE_EUMS_DRAFT", "AGREE_INTERINSTIT_DRAFT",
		"AGREE_INTERNATION_DRAFT", "AGREE_UBEREINKOM_DRAFT", "BUDGET_DRAFT",
		"BUDGET_DRAFT_PRELIM", "BUDGET_DRAFT_PRELIM_SUPPL",
		"BUDGET_DRAFT_SUPPL_AMEND", "AMEND_PROP", "AMEND_PROP_DIR",
		"AMEND_PROP_REG", "AMEND_PROP_DEC", "PROP_DEC_NO_ADDRESSEE",
	},
	ResourceNationalImplementation: {"MEAS_NATION_IMPL"},
}

// ResourceTypes returns all supported resource types.
func ResourceTypes() []ResourceType {
	out := make([]ResourceType, len(resourceTypes))
	copy(out, resourceTypes)
	return out
}

// ParseResourceType converts a string into a ResourceType.
// Returns EINVALID if the value is not a supported resource type.
func ParseResourceType(s string) (ResourceType, error) {
	rt := ResourceType(strings.TrimSpace(s))
	if err := rt.Validate(); err != nil {
		return "", err
	}
	return rt, nil
}

// Validate returns EINVALID if the resource type is not supported.
func (rt ResourceType) Validate() error {
	for _, v := range resourceTypes {
		if rt == v {
			return nil
		}
	}
	names := make([]string, len(resourceTypes))
	for i, v := range resourceTypes {
		names[i] = string(v)
	}
	return Errorf(EINVALID, "%q is invalid - valid options are %s", string(rt), strings.Join(names, ", "))
}

// TypeCodes returns the vocabulary codes the resource type filters on.
// ResourceAny and ResourceManual have no predefined codes and return nil.
func (rt ResourceType) TypeCodes() []string {
	codes, ok := typeCodes[rt]
	if !ok {
		return nil
	}
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}

// ResourceTypeURI returns the authority URI for a resource-type code.
func ResourceTypeURI(code string) string {
	return ResourceTypeBaseURI + code
}
