package extract

import (
	"strconv"

	"github.com/avallon/claimlens/core"
)

// fieldSpec describes one extractable field: the prompt that asks for
// it, the validator that accepts or rejects the model's answer, the
// assignment into the claim, and an optional fallback used when no
// valid answer could be obtained.
type fieldSpec struct {
	name     string
	prompt   string
	validate func(answer, narrative string) (string, bool)
	assign   func(claim *core.ExtractedClaim, value string)
	fallback func(narrative string) string
}

// fieldSpecs is the ordered extraction chain. The order fixes both the
// prompt sequence and the DetectedEntities order.
var fieldSpecs = []fieldSpec{
	{
		name:     "claimant_name",
		prompt:   claimantNamePrompt,
		validate: validateShortText,
		assign:   func(c *core.ExtractedClaim, v string) { c.ClaimantName = v },
	},
	{
		name:     "contact_phone",
		prompt:   contactPhonePrompt,
		validate: validatePhone,
		assign:   func(c *core.ExtractedClaim, v string) { c.ContactPhone = v },
	},
	{
		name:     "policy_number",
		prompt:   policyNumberPrompt,
		validate: validateShortText,
		assign:   func(c *core.ExtractedClaim, v string) { c.PolicyNumber = v },
	},
	{
		name:     "incident_datetime",
		prompt:   incidentDatetimePrompt,
		validate: validateShortText,
		assign:   func(c *core.ExtractedClaim, v string) { c.IncidentDatetime = v },
	},
	{
		name:     "incident_location",
		prompt:   incidentLocationPrompt,
		validate: validateShortText,
		assign:   func(c *core.ExtractedClaim, v string) { c.IncidentLocation = v },
	},
	{
		name:     "incident_description",
		prompt:   incidentDescriptionPrompt,
		validate: validateDescription,
		assign:   func(c *core.ExtractedClaim, v string) { c.IncidentDescription = v },
		fallback: func(narrative string) string {
			return core.TruncateText(narrative, descriptionFallbackLength)
		},
	},
	{
		name:     "claimed_amount",
		prompt:   claimedAmountPrompt,
		validate: validateAmount,
		assign: func(c *core.ExtractedClaim, v string) {
			amount, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return
			}
			c.ClaimedAmount = &amount
		},
	},
}
