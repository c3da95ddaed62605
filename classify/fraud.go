// Copyright 2025 Avallon Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/avallon/claimlens/ai"
)

// fraudIndicator is one conversational red flag the secondary pass
// checks for. A "yes" from the model only raises the flag when at least
// one corroborating keyword also appears in the raw narrative.
type fraudIndicator struct {
	flag     string
	question string
	penalty  float64
	keywords []string
}

var fraudIndicators = []fraudIndicator{
	{
		flag:     "memory_issues",
		question: "Does the caller report memory problems or an inability to recall details of the incident?",
		penalty:  0.3,
		keywords: []string{
			"don't remember", "do not remember", "can't recall", "cannot recall",
			"not sure when", "forgot", "hazy", "a blur", "memory",
		},
	},
	{
		flag:     "missing_documentation",
		question: "Does the caller say that receipts, reports, or other documentation are missing or unavailable?",
		penalty:  0.2,
		keywords: []string{
			"no receipt", "lost the receipt", "no documentation", "no paperwork",
			"no proof", "can't find the", "cannot find the", "missing",
		},
	},
	{
		flag:     "third_party_caller",
		question: "Is the caller reporting on behalf of someone else rather than being the claimant?",
		penalty:  0.3,
		keywords: []string{
			"on behalf", "calling for", "my friend", "my brother", "my sister",
			"my neighbor", "my cousin", "their claim",
		},
	},
}

const fraudPromptTemplate = `You are a claims fraud screening assistant. Read the claim narrative below and answer the following yes/no questions. Output STRICT JSON ONLY with exactly these keys and "yes" or "no" values:
{%s}

Questions:
%s
Narrative:
%s`

func buildFraudPrompt(narrative string) string {
	keys := make([]string, len(fraudIndicators))
	questions := make([]string, len(fraudIndicators))
	for i, ind := range fraudIndicators {
		keys[i] = fmt.Sprintf("%q: \"yes|no\"", ind.flag)
		questions[i] = fmt.Sprintf("- %s: %s\n", ind.flag, ind.question)
	}
	return fmt.Sprintf(fraudPromptTemplate, strings.Join(keys, ", "), strings.Join(questions, ""), narrative)
}

// fraudSignals runs the secondary pass and returns the corroborated
// indicators. Any backend or parse failure skips the pass: it is a
// bonus signal, not a required one.
func (c *Classifier) fraudSignals(ctx context.Context, narrative string) []fraudIndicator {
	raw, err := c.generator.Generate(ctx, buildFraudPrompt(narrative))
	if err != nil {
		c.logger.Debug("fraud signal pass skipped", "err", err)
		return nil
	}

	answers := parseFraudAnswers(raw)
	lowerNarrative := strings.ToLower(narrative)

	var triggered []fraudIndicator
	for _, indicator := range fraudIndicators {
		if !answers[indicator.flag] {
			continue
		}
		if !corroborate(lowerNarrative, indicator.keywords) {
			c.logger.Debug("fraud indicator not corroborated by narrative", "flag", indicator.flag)
			continue
		}
		triggered = append(triggered, indicator)
	}
	return triggered
}

// parseFraudAnswers interprets the model's answer. Preferred form is
// the requested JSON object; when that fails to parse, any "yes" in the
// free-form output marks every indicator as asserted, leaving keyword
// corroboration as the only defense. That mirrors the historical
// screening behavior and errs toward checking, not skipping.
func parseFraudAnswers(raw string) map[string]bool {
	cleaned := ai.RepairJSON(ai.CleanResponse(raw))

	var parsed map[string]string
	if err := json.Unmarshal([]byte(cleaned), &parsed); err == nil {
		answers := make(map[string]bool, len(parsed))
		for key, value := range parsed {
			answers[key] = strings.Contains(strings.ToLower(value), "yes")
		}
		return answers
	}

	answers := make(map[string]bool, len(fraudIndicators))
	if strings.Contains(strings.ToLower(cleaned), "yes") {
		for _, indicator := range fraudIndicators {
			answers[indicator.flag] = true
		}
	}
	return answers
}

func corroborate(lowerNarrative string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lowerNarrative, keyword) {
			return true
		}
	}
	return false
}
