package extract

// Per-field prompt templates. Each prompt asks for exactly one field so
// that a failed or hallucinated answer never corrupts the others. All
// templates take the narrative as their single formatting argument and
// instruct the model to answer "none" when the field is absent, which
// the validators reject into a null field.

const claimantNamePrompt = `You are a claims intake assistant. Read the claim narrative below and answer with the claimant's full name, exactly as stated, and nothing else. If no name is stated, answer with the single word none.

Narrative:
%s`

const contactPhonePrompt = `You are a claims intake assistant. Read the claim narrative below and answer with the claimant's contact phone number, exactly as written in the narrative, and nothing else. If no phone number appears in the narrative, answer with the single word none.

Narrative:
%s`

const policyNumberPrompt = `You are a claims intake assistant. Read the claim narrative below and answer with the policy number, exactly as stated, and nothing else. If no policy number is stated, answer with the single word none.

Narrative:
%s`

const incidentDatetimePrompt = `You are a claims intake assistant. Read the claim narrative below and answer with the date and time of the incident, as stated in the narrative, and nothing else. If no date or time is stated, answer with the single word none.

Narrative:
%s`

const incidentLocationPrompt = `You are a claims intake assistant. Read the claim narrative below and answer with the location of the incident, as stated in the narrative, and nothing else. If no location is stated, answer with the single word none.

Narrative:
%s`

const incidentDescriptionPrompt = `You are a claims intake assistant. Summarize the incident described in the claim narrative below in exactly one sentence. Answer with the sentence only.

Narrative:
%s`

const claimedAmountPrompt = `You are a claims intake assistant. Read the claim narrative below and answer with the monetary amount being claimed, as a number, and nothing else. If no amount is stated, answer with the single word none.

Narrative:
%s`
