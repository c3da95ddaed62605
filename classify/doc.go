// Package classify scores extracted claims and assigns a validity label.
//
// Classification runs in two phases. Phase one is deterministic: the
// score starts at 1.0 and drops by 0.25 for each missing core field
// (claimant name, incident datetime, claimed amount), raising a
// missing_<field> flag per gap. Phase two asks the generation backend
// three yes/no fraud-screening questions; each "yes" must be
// corroborated by a keyword match in the raw narrative before it flags
// and further reduces the score. The second phase can fail or be
// disabled without affecting the first phase's guarantees.
//
// Labels follow a fixed precedence: score below 0.3 or three or more
// flags is fraudulent; otherwise score below 0.6 or three missing
// fields is invalid; otherwise valid. Next steps are a deterministic
// lookup on the label and flag presence.
package classify
