package roadmap

import "careerpath/internal/model"

// DataAnalystCurriculumID identifies the hand-authored Data Analyst plan.
const DataAnalystCurriculumID = "data-analyst"

// CurriculumSkill is a skill a curriculum covers and the level it expects.
type CurriculumSkill struct {
	Name     string
	Required model.SkillLevel
}

// CurriculumTask is one fixed task. Skill may be empty for tasks without a resource.
type CurriculumTask struct {
	Description string
	Skill       string
	Difficulty  string
}

// CurriculumBlock spans WeeksPerBlock calendar weeks but is stored as a single week number.
type CurriculumBlock struct {
	Focus string
	Tasks []CurriculumTask
}

// Curriculum is a fixed plan that ignores the generic allocator.
type Curriculum struct {
	ID            string
	Name          string
	WeeksPerBlock int
	Skills        []CurriculumSkill
	Blocks        []CurriculumBlock
}

// TotalWeeks is the calendar length of the curriculum.
func (c Curriculum) TotalWeeks() int {
	return c.WeeksPerBlock * len(c.Blocks)
}

var curricula = map[string]Curriculum{
	DataAnalystCurriculumID: {
		ID:            DataAnalystCurriculumID,
		Name:          "Data Analyst",
		WeeksPerBlock: 2,
		Skills: []CurriculumSkill{
			{"SQL", model.LevelAdvanced},
			{"Python", model.LevelAdvanced},
			{"Data Visualization", model.LevelAdvanced},
			{"Statistics", model.LevelAdvanced},
			{"Excel", model.LevelAdvanced},
			{"Tableau", model.LevelIntermediate},
			{"Power BI", model.LevelIntermediate},
			{"Machine Learning", model.LevelIntermediate},
		},
		Blocks: []CurriculumBlock{
			{Focus: "SQL and Excel", Tasks: []CurriculumTask{
				{"Learn SQL basics and advanced queries", "SQL", "beginner"},
				{"Master Excel functions and data analysis", "Excel", "beginner"},
			}},
			{Focus: "Python and Statistics", Tasks: []CurriculumTask{
				{"Learn Python for data analysis", "Python", "beginner"},
				{"Study basic statistics concepts", "Statistics", "beginner"},
			}},
			{Focus: "Data Visualization and Tableau", Tasks: []CurriculumTask{
				{"Learn data visualization principles", "Data Visualization", "beginner"},
				{"Get started with Tableau", "Tableau", "beginner"},
			}},
			{Focus: "Advanced SQL and Power BI", Tasks: []CurriculumTask{
				{"Advanced SQL techniques", "SQL", "advanced"},
				{"Learn Power BI basics", "Power BI", "beginner"},
			}},
			{Focus: "Advanced Python and Machine Learning", Tasks: []CurriculumTask{
				{"Advanced Python for data analysis", "Python", "advanced"},
				{"Introduction to Machine Learning", "Machine Learning", "beginner"},
			}},
			{Focus: "Project Work and Portfolio", Tasks: []CurriculumTask{
				{Description: "Complete a data analysis project using SQL and Python"},
				{Description: "Create a portfolio with Tableau and Power BI dashboards"},
			}},
		},
	},
}

// LookupCurriculum returns the curriculum registered under id.
func LookupCurriculum(id string) (Curriculum, bool) {
	c, ok := curricula[id]
	return c, ok
}

// findResource picks the first resource of skill with exactly the given difficulty.
// Resources without a matching difficulty are never substituted.
func findResource(pool ResourcePool, skill, difficulty string) *ResourceRef {
	candidates := pool[skill]
	for i := range candidates {
		if candidates[i].Difficulty == difficulty {
			return &candidates[i]
		}
	}
	return nil
}

// Build lays the curriculum out as one Week per block. Block k is week k and covers
// calendar weeks 2k-1..2k.
func (c Curriculum) Build(ledger Ledger, pool ResourcePool) ([]SkillGap, []Week) {
	gaps := make([]SkillGap, 0, len(c.Skills))
	gapBySkill := make(map[string]int, len(c.Skills))
	for _, s := range c.Skills {
		g := ledger.GapFor(s.Name, s.Required)
		gaps = append(gaps, g)
		gapBySkill[s.Name] = g.Gap
	}

	weeks := make([]Week, 0, len(c.Blocks))
	for i, block := range c.Blocks {
		k := i + 1
		week := Week{
			Week:       k,
			StartWeek:  (k-1)*c.WeeksPerBlock + 1,
			EndWeek:    k * c.WeeksPerBlock,
			SkillFocus: block.Focus,
		}
		for _, t := range block.Tasks {
			task := PlannedTask{Description: t.Description, Skill: t.Skill}
			if t.Skill != "" {
				if gap := gapBySkill[t.Skill]; gap > week.GapLevel {
					week.GapLevel = gap
				}
				if res := findResource(pool, t.Skill, t.Difficulty); res != nil {
					id := res.ID
					task.ResourceID = &id
					week.Resources = append(week.Resources, *res)
				}
			}
			week.Tasks = append(week.Tasks, task)
		}
		weeks = append(weeks, week)
	}
	return gaps, weeks
}
