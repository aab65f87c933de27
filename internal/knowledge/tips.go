package knowledge

// ResumeTip is one piece of CV-writing guidance.
type ResumeTip struct {
	ID         string `json:"id"`
	Topic      string `json:"topic"`
	Text       string `json:"text"`
	HighImpact bool   `json:"high_impact"`
}

// Document renders the tip as one retrievable text blob.
func (t ResumeTip) Document() Document {
	return Document{
		ID:      "tip:" + t.ID,
		Content: t.Topic + ": " + t.Text,
		Type:    TypeResumeTip,
		Metadata: map[string]string{
			"topic": t.Topic,
		},
	}
}

// ResumeTips returns the built-in resume tip table in a fixed order.
func ResumeTips() []ResumeTip {
	return resumeTips
}

// HighImpactTips returns only the tips flagged as highest-leverage,
// in table order.
func HighImpactTips() []ResumeTip {
	var out []ResumeTip
	for _, t := range resumeTips {
		if t.HighImpact {
			out = append(out, t)
		}
	}
	return out
}

var resumeTips = []ResumeTip{
	{
		ID:    "quantify",
		Topic: "Quantify achievements",
		Text: "Numbers beat adjectives. 'Cut API latency 40% for 2M daily requests' lands; " +
			"'improved performance' does not. Attach a metric to every bullet you can.",
		HighImpact: true,
	},
	{
		ID:    "action_verbs",
		Topic: "Lead with action verbs",
		Text: "Start bullets with built, designed, migrated, automated, led. Avoid passive " +
			"phrasing like 'was responsible for' or 'participated in'.",
	},
	{
		ID:    "tailored",
		Topic: "Tailor per application",
		Text: "Reorder skills and bullets to mirror the job description. A resume tuned to " +
			"the posting outperforms a generic one both with recruiters and with ATS filters.",
		HighImpact: true,
	},
	{
		ID:    "keywords",
		Topic: "Match posting keywords",
		Text: "ATS systems match literal strings. If the posting says 'Kubernetes', write " +
			"'Kubernetes', not just 'container orchestration'. Use the canonical spelling of " +
			"each technology.",
		HighImpact: true,
	},
	{
		ID:    "projects",
		Topic: "Show real projects",
		Text: "Link deployed projects and repositories. For juniors, three solid projects " +
			"with live demos outweigh any coursework list.",
	},
	{
		ID:    "skills_format",
		Topic: "Group the skills section",
		Text: "Group skills by category (languages, frameworks, infrastructure) and order " +
			"each group by your strength. Drop anything you cannot discuss in an interview.",
	},
	{
		ID:    "summary",
		Topic: "Sharp professional summary",
		Text: "Two or three lines at the top: years of experience, core stack, one standout " +
			"achievement. Skip objective statements; state what you offer, not what you want.",
	},
	{
		ID:    "achievements_not_duties",
		Topic: "Achievements over duties",
		Text: "Describe outcomes you caused, not tasks you were assigned. 'Reduced deploy " +
			"time from 40 to 5 minutes by introducing CI pipelines' beats 'maintained CI'.",
		HighImpact: true,
	},
}
