package recommend

import (
	"slices"
	"strings"
)

// Tips is a titled list of resume improvement tips.
type Tips struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type keywordTips struct {
	Keyword string
	Tips    Tips
}

// tipTable is matched by keyword against the lowercased category name. The
// first keyword found wins.
var tipTable = []keywordTips{
	{"data", Tips{"Data Science & Analytics", []string{
		"Showcase specific ML projects with metrics and business impact",
		"Highlight your proficiency with Python data stack (Pandas, NumPy, Scikit-learn)",
		"Include any cloud platform experience (AWS, GCP, Azure)",
		"Quantify your impact with percentages and numbers",
		"Add data visualization examples and storytelling skills",
	}}},
	{"design", Tips{"Design & Creative", []string{
		"Create a comprehensive portfolio with case studies",
		"Highlight your design process and thinking methodology",
		"Include specific tools proficiency (Figma, Adobe XD, Sketch)",
		"Show before/after examples and user research insights",
		"Demonstrate understanding of accessibility and user experience",
	}}},
	{"web", Tips{"Web Development", []string{
		"Highlight specific technologies and frameworks you've used",
		"Include GitHub profile with sample projects and contributions",
		"Mention performance optimization and scalability experience",
		"Detail any DevOps, CI/CD, or deployment experience",
		"Showcase responsive design and cross-browser compatibility skills",
	}}},
	{"mobile", Tips{"Mobile Development", []string{
		"Showcase apps in app stores with download numbers",
		"Highlight platform-specific skills (iOS/Android)",
		"Include performance optimization and testing experience",
		"Demonstrate knowledge of mobile UI/UX best practices",
		"Show experience with cross-platform frameworks if applicable",
	}}},
	{"software", Tips{"Software Engineering", []string{
		"Highlight system design and architecture experience",
		"Showcase algorithm and data structure knowledge",
		"Include experience with microservices and distributed systems",
		"Demonstrate code quality and testing practices",
		"Show leadership and mentoring experience",
	}}},
	{"marketing", Tips{"Marketing & Growth", []string{
		"Quantify campaign results with specific metrics",
		"Highlight experience with marketing automation tools",
		"Showcase A/B testing and conversion optimization skills",
		"Include experience with various marketing channels",
		"Demonstrate data-driven decision making",
	}}},
	{"sales", Tips{"Sales & Business Development", []string{
		"Highlight revenue generation and quota achievement",
		"Showcase relationship building and negotiation skills",
		"Include experience with CRM systems and sales processes",
		"Demonstrate market research and prospecting abilities",
		"Show leadership in sales teams if applicable",
	}}},
	{"finance", Tips{"Finance & Investment", []string{
		"Highlight financial modeling and analysis skills",
		"Showcase experience with financial software and tools",
		"Include specific deal experience and transaction sizes",
		"Demonstrate understanding of regulations and compliance",
		"Show quantitative and analytical capabilities",
	}}},
	{"healthcare", Tips{"Healthcare & Life Sciences", []string{
		"Highlight healthcare-specific data analysis experience",
		"Showcase knowledge of healthcare regulations (HIPAA, etc.)",
		"Include experience with clinical trials or patient data",
		"Demonstrate understanding of healthcare workflows",
		"Show experience with healthcare-specific tools and systems",
	}}},
	{"education", Tips{"Education & Learning", []string{
		"Highlight instructional design and curriculum development",
		"Showcase experience with learning management systems",
		"Include experience with different learning methodologies",
		"Demonstrate understanding of educational technology trends",
		"Show experience with student engagement and assessment",
	}}},
}

var fallbackTips = Tips{"General Career Tips", []string{
	"Quantify your achievements with specific numbers and metrics",
	"Highlight leadership and project management experience",
	"Showcase continuous learning and skill development",
	"Include industry-specific certifications and training",
	"Demonstrate problem-solving and critical thinking abilities",
}}

// TipsFor returns improvement tips for category, or general career tips.
func TipsFor(category string) Tips {
	lower := strings.ToLower(category)
	for _, t := range tipTable {
		if strings.Contains(lower, t.Keyword) {
			return t.Tips.clone()
		}
	}
	return fallbackTips.clone()
}

func (t Tips) clone() Tips {
	return Tips{Title: t.Title, Items: slices.Clone(t.Items)}
}

// Advice is the static guidance shown with a classification result.
type Advice struct {
	Jobs   []JobEntry  `json:"jobs,omitempty"`
	Skills []string    `json:"skills,omitempty"`
	Tips   *Tips       `json:"tips,omitempty"`
	Salary *SalaryBand `json:"salary,omitempty"`
}

// AdviceFor collects jobs, skills, tips and the salary band for category.
// Salary is nil for categories without market data.
func AdviceFor(category string) Advice {
	tips := TipsFor(category)
	return Advice{
		Jobs:   JobsFor(category),
		Skills: SkillsFor(category),
		Tips:   &tips,
		Salary: SalaryFor(category),
	}
}
