package knowledge

import (
	"fmt"
	"strings"
)

// CareerPath describes the expected skill set and advice for one
// role-and-seniority combination.
type CareerPath struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Track      string   `json:"track"`
	Level      string   `json:"level"`
	CoreSkills []string `json:"core_skills"`
	Advice     string   `json:"advice"`
}

// Document renders the path as one retrievable text blob.
func (p CareerPath) Document() Document {
	content := fmt.Sprintf("%s. Core skills: %s. %s",
		p.Title, strings.Join(p.CoreSkills, ", "), p.Advice)
	return Document{
		ID:      "career:" + p.ID,
		Content: content,
		Type:    TypeCareerPath,
		Metadata: map[string]string{
			"track": p.Track,
			"level": p.Level,
		},
	}
}

// CareerPaths returns the built-in career path table in a fixed order.
func CareerPaths() []CareerPath {
	return careerPaths
}

var careerPaths = []CareerPath{
	{
		ID:    "backend_junior",
		Title: "Junior Backend Developer",
		Track: "backend", Level: "junior",
		CoreSkills: []string{"Python", "SQL", "Git", "REST API", "Unit Testing"},
		Advice: "Master one language deeply before adding more. Build small APIs end to end, " +
			"learn how databases actually store and index data, and get comfortable reading " +
			"other people's code. Contribute to open source to build a public track record.",
	},
	{
		ID:    "backend_mid",
		Title: "Middle Backend Developer",
		Track: "backend", Level: "mid",
		CoreSkills: []string{"Python", "PostgreSQL", "Redis", "Docker", "CI/CD", "REST API"},
		Advice: "Own features end to end including deployment and monitoring. Learn caching " +
			"and async processing patterns, profile and optimize slow queries, and start " +
			"reviewing code for juniors. Depth in one stack beats shallow breadth.",
	},
	{
		ID:    "backend_senior",
		Title: "Senior Backend Developer",
		Track: "backend", Level: "senior",
		CoreSkills: []string{"System Design", "Microservices", "Kubernetes", "PostgreSQL", "Apache Kafka", "AWS"},
		Advice: "The step to senior is less about code and more about design and influence. " +
			"Practice system design, lead architecture discussions, make trade-offs explicit, " +
			"and mentor. Distributed systems and cloud depth separate senior from mid.",
	},
	{
		ID:    "frontend_junior",
		Title: "Junior Frontend Developer",
		Track: "frontend", Level: "junior",
		CoreSkills: []string{"HTML", "CSS", "JavaScript", "React", "Git"},
		Advice: "Get the fundamentals right: semantic HTML, real CSS layout skills, and plain " +
			"JavaScript before leaning on frameworks. Build a portfolio of deployed projects; " +
			"recruiters click links, not bullet points.",
	},
	{
		ID:    "frontend_senior",
		Title: "Senior Frontend Developer",
		Track: "frontend", Level: "senior",
		CoreSkills: []string{"TypeScript", "React", "Next.js", "Unit Testing", "System Design"},
		Advice: "Own performance, accessibility, and architecture, not just components. " +
			"TypeScript and testing discipline are table stakes. Learn enough backend to " +
			"design APIs you consume, and drive frontend standards across teams.",
	},
	{
		ID:    "devops_mid",
		Title: "DevOps Engineer",
		Track: "devops", Level: "mid",
		CoreSkills: []string{"Linux", "Docker", "Kubernetes", "Terraform", "CI/CD", "AWS"},
		Advice: "Automate everything you touch twice. Infrastructure as code, observability, " +
			"and incident response are the core loop. Pick one cloud and know it deeply; " +
			"certifications genuinely help in this track.",
	},
	{
		ID:    "fullstack_senior",
		Title: "Senior Fullstack Developer",
		Track: "fullstack", Level: "senior",
		CoreSkills: []string{"TypeScript", "React", "Node.js", "PostgreSQL", "Docker", "System Design"},
		Advice: "Fullstack at senior level means owning a product slice across the stack. " +
			"Keep one side (usually backend) as your depth anchor, stay current on the other, " +
			"and get good at estimating and slicing work for a whole feature team.",
	},
}

// AdviceForRole picks the career path best matching a free-text role
// description, such as "senior backend engineer". Returns nil when the
// text names no known track.
func AdviceForRole(role string) *CareerPath {
	r := strings.ToLower(role)

	track := ""
	switch {
	case strings.Contains(r, "devops") || strings.Contains(r, "sre") || strings.Contains(r, "infrastructure"):
		track = "devops"
	case strings.Contains(r, "fullstack") || strings.Contains(r, "full-stack") || strings.Contains(r, "full stack"):
		track = "fullstack"
	case strings.Contains(r, "frontend") || strings.Contains(r, "front-end") || strings.Contains(r, "front end"):
		track = "frontend"
	case strings.Contains(r, "backend") || strings.Contains(r, "back-end") || strings.Contains(r, "back end"):
		track = "backend"
	}
	if track == "" {
		return nil
	}

	level := "mid"
	switch {
	case strings.Contains(r, "senior") || strings.Contains(r, "lead") || strings.Contains(r, "principal"):
		level = "senior"
	case strings.Contains(r, "junior") || strings.Contains(r, "intern") || strings.Contains(r, "entry"):
		level = "junior"
	}

	var fallback *CareerPath
	for i := range careerPaths {
		p := &careerPaths[i]
		if p.Track != track {
			continue
		}
		if p.Level == level {
			return p
		}
		if fallback == nil {
			fallback = p
		}
	}
	// Track known but the exact level is not in the table; return the
	// closest entry for the track rather than nothing.
	return fallback
}
