package recommend

import (
	"cmp"
	"slices"
)

// SkillDemand is a skill with a relative demand score out of 100.
type SkillDemand struct {
	Skill string `json:"skill"`
	Score int    `json:"score"`
}

// Series is one category's values across the labels of its parent table.
type Series struct {
	Category string `json:"category"`
	Values   []int  `json:"values"`
}

// Table is a labelled grid: every Series has one value per label.
type Table struct {
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}

// MarketInsights is the static market snapshot served alongside results.
type MarketInsights struct {
	SalaryByLevel    Table         `json:"salary_by_level"`
	HiringTrends     Table         `json:"hiring_trends"`
	RegionalSalaries Table         `json:"regional_salaries"`
	TechSkills       []SkillDemand `json:"tech_skills"`
	BusinessSkills   []SkillDemand `json:"business_skills"`
}

var salaryByLevel = Table{
	Labels: []string{"Entry (0-2 yrs)", "Mid (3-5 yrs)", "Senior (6-8 yrs)", "Lead (8+ yrs)"},
	Series: []Series{
		{"Data Science", []int{85000, 125000, 165000, 210000}},
		{"Web Development", []int{75000, 115000, 155000, 190000}},
		{"Design", []int{70000, 100000, 140000, 175000}},
		{"Mobile Development", []int{80000, 120000, 160000, 200000}},
		{"Software Engineering", []int{90000, 130000, 170000, 220000}},
		{"Marketing", []int{65000, 95000, 130000, 160000}},
		{"Sales", []int{70000, 110000, 150000, 200000}},
		{"Finance", []int{75000, 115000, 155000, 200000}},
		{"Healthcare", []int{70000, 100000, 135000, 170000}},
		{"Education", []int{60000, 85000, 115000, 140000}},
	},
}

var hiringTrends = Table{
	Labels: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	Series: []Series{
		{"Data Science", []int{100, 120, 130, 115, 140, 160, 150, 145, 155, 165, 170, 180}},
		{"Web Development", []int{150, 160, 170, 165, 180, 190, 185, 190, 195, 200, 210, 220}},
		{"Design", []int{80, 90, 95, 100, 110, 120, 115, 120, 125, 130, 135, 140}},
		{"Mobile Development", []int{70, 80, 85, 90, 95, 100, 105, 110, 115, 120, 125, 130}},
		{"Software Engineering", []int{120, 130, 140, 135, 150, 160, 155, 160, 165, 170, 175, 180}},
		{"Marketing", []int{90, 100, 110, 105, 115, 125, 120, 125, 130, 135, 140, 145}},
		{"Sales", []int{110, 120, 130, 125, 135, 145, 140, 145, 150, 155, 160, 165}},
		{"Finance", []int{85, 95, 100, 95, 105, 115, 110, 115, 120, 125, 130, 135}},
		{"Healthcare", []int{60, 70, 75, 80, 85, 90, 95, 100, 105, 110, 115, 120}},
		{"Education", []int{50, 60, 65, 70, 75, 80, 85, 90, 95, 100, 105, 110}},
	},
}

var regionalSalaries = Table{
	Labels: []string{"San Francisco", "New York", "Seattle", "Austin", "Boston", "Los Angeles", "Chicago", "Denver"},
	Series: []Series{
		{"Data Science", []int{180000, 175000, 170000, 160000, 165000, 155000, 150000, 145000}},
		{"Web Development", []int{170000, 165000, 160000, 150000, 155000, 145000, 140000, 135000}},
		{"Design", []int{150000, 145000, 140000, 130000, 135000, 125000, 120000, 115000}},
	},
}

var techSkills = []SkillDemand{
	{"Python", 95}, {"JavaScript", 92}, {"React", 88}, {"SQL", 85},
	{"Machine Learning", 90}, {"AWS", 87}, {"Docker", 82}, {"Kubernetes", 78},
}

var businessSkills = []SkillDemand{
	{"SEO", 85}, {"Google Analytics", 80}, {"Sales CRM", 75}, {"Financial Modeling", 88},
	{"Project Management", 82}, {"Leadership", 90}, {"Communication", 95},
}

// Insights returns a copy of the market tables. Skill lists are ordered by
// descending demand.
func Insights() MarketInsights {
	return MarketInsights{
		SalaryByLevel:    salaryByLevel.clone(),
		HiringTrends:     hiringTrends.clone(),
		RegionalSalaries: regionalSalaries.clone(),
		TechSkills:       byDemand(techSkills),
		BusinessSkills:   byDemand(businessSkills),
	}
}

// SalaryBand is the entry and lead salary of a category, in USD.
type SalaryBand struct {
	Entry int `json:"entry"`
	Lead  int `json:"lead"`
}

// SalaryFor returns the salary band for category, or nil if unknown.
func SalaryFor(category string) *SalaryBand {
	key, ok := MatchCategory(category)
	if !ok {
		return nil
	}
	for _, s := range salaryByLevel.Series {
		if s.Category == key {
			return &SalaryBand{Entry: s.Values[0], Lead: s.Values[len(s.Values)-1]}
		}
	}
	return nil
}

func (t Table) clone() Table {
	out := Table{Labels: slices.Clone(t.Labels), Series: make([]Series, len(t.Series))}
	for i, s := range t.Series {
		out.Series[i] = Series{Category: s.Category, Values: slices.Clone(s.Values)}
	}
	return out
}

func byDemand(in []SkillDemand) []SkillDemand {
	out := slices.Clone(in)
	slices.SortStableFunc(out, func(a, b SkillDemand) int { return cmp.Compare(b.Score, a.Score) })
	return out
}
