// Package skill defines the canonical skill entity and its enumerations.
package skill

// Category classifies a skill within the ontology.
type Category string

// Skill categories.
const (
	CategoryProgrammingLanguage Category = "Programming Language"
	CategoryFrontendFramework   Category = "Frontend Framework"
	CategoryBackendFramework    Category = "Backend Framework"
	CategoryDatabase            Category = "Database"
	CategoryDevOps              Category = "DevOps"
	CategoryCloud               Category = "Cloud"
	CategoryArchitecture        Category = "Architecture"
	CategoryMessageQueue        Category = "Message Queue"
	CategoryTesting             Category = "Testing"
	CategoryMobile              Category = "Mobile"
	CategoryAIML                Category = "AI/ML"
	CategorySecurity            Category = "Security"
	CategoryVersionControl      Category = "Version Control"
	CategorySoftSkill           Category = "Soft Skill"
	CategoryMethodology         Category = "Methodology"
	CategoryOther               Category = "Other"
)

// Categories returns all skill categories in declaration order.
func Categories() []Category {
	return []Category{
		CategoryProgrammingLanguage,
		CategoryFrontendFramework,
		CategoryBackendFramework,
		CategoryDatabase,
		CategoryDevOps,
		CategoryCloud,
		CategoryArchitecture,
		CategoryMessageQueue,
		CategoryTesting,
		CategoryMobile,
		CategoryAIML,
		CategorySecurity,
		CategoryVersionControl,
		CategorySoftSkill,
		CategoryMethodology,
		CategoryOther,
	}
}

// Demand is the market demand level for a skill, from niche to very high.
type Demand string

// Market demand levels.
const (
	DemandVeryHigh Demand = "very_high"
	DemandHigh     Demand = "high"
	DemandMedium   Demand = "medium"
	DemandLow      Demand = "low"
	DemandNiche    Demand = "niche"
)

// Skill is a canonical entry in the ontology.
// The ID is immutable and used as the join key for hierarchy references;
// ParentSkills, ChildSkills and RelatedSkills hold IDs of other skills.
type Skill struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	Aliases       []string `json:"aliases"`
	Keywords      []string `json:"keywords"`
	RelatedSkills []string `json:"related_skills"`
	ParentSkills  []string `json:"parent_skills"`
	ChildSkills   []string `json:"child_skills"`

	// Display-only context; never used for scoring.
	Description     string   `json:"description"`
	LearningPath    string   `json:"learning_path"`
	BestPractices   []string `json:"best_practices"`
	CVTips          string   `json:"cv_tips"`
	MarketDemand    Demand   `json:"market_demand"`
	SalaryRange     string   `json:"salary_range"`
	ExperienceLevel string   `json:"experience_level"`
}
