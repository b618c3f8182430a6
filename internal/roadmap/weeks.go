package roadmap

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultTotalWeeks is used when a goal's estimated time cannot be parsed.
const DefaultTotalWeeks = 12

// ResourcesPerWeek caps how many resources one week slot carries.
const ResourcesPerWeek = 2

var durationPattern = regexp.MustCompile(`(?i)(\d+)\s*-\s*(\d+)\s*(month|week)s?`)

// EstimateTotalWeeks parses ranges like "6-12 months" or "4-8 weeks". The midpoint is
// rounded up, months count as 4 weeks. Anything else falls back to DefaultTotalWeeks.
func EstimateTotalWeeks(estimatedTime string) int {
	m := durationPattern.FindStringSubmatch(estimatedTime)
	if m == nil {
		return DefaultTotalWeeks
	}
	lo, err1 := strconv.Atoi(m[1])
	hi, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		return DefaultTotalWeeks
	}

	var weeks int
	if strings.EqualFold(m[3], "month") {
		// ceil(((lo+hi)/2) * 4) is exact in integers
		weeks = (lo + hi) * 2
	} else {
		weeks = (lo + hi + 1) / 2
	}
	if weeks < 1 {
		return DefaultTotalWeeks
	}
	return weeks
}

// WeeksForSkill returns max(1, ceil((gap/3) * (totalWeeks/numSkills))) without floating point.
func WeeksForSkill(gap, totalWeeks, numSkills int) int {
	if numSkills <= 0 {
		return 0
	}
	denom := 3 * numSkills
	weeks := (gap*totalWeeks + denom - 1) / denom
	if weeks < 1 {
		weeks = 1
	}
	return weeks
}

// resourceWindow returns the resources for the i-th week spent on one skill: the
// slice of up to ResourcesPerWeek entries starting at offset 2i. Weeks past the end
// of the list get none.
func resourceWindow(pool []ResourceRef, i int) []ResourceRef {
	start := i * ResourcesPerWeek
	if start >= len(pool) {
		return nil
	}
	end := start + ResourcesPerWeek
	if end > len(pool) {
		end = len(pool)
	}
	return append([]ResourceRef(nil), pool[start:end]...)
}

// Allocate lays sorted gaps onto sequential weeks 1..n with n <= totalWeeks.
func Allocate(gaps []SkillGap, totalWeeks int, pool ResourcePool, phraser Phraser) []Week {
	var weeks []Week
	week := 1
	for _, g := range gaps {
		n := WeeksForSkill(g.Gap, totalWeeks, len(gaps))
		for i := 0; i < n && week <= totalWeeks; i++ {
			resources := resourceWindow(pool[g.Skill], i)
			descriptions := phraser.Phrase(g.Skill)

			tasks := make([]PlannedTask, 0, len(descriptions))
			for j, desc := range descriptions {
				task := PlannedTask{Description: desc, Skill: g.Skill}
				if len(resources) > 0 {
					id := resources[j%len(resources)].ID
					task.ResourceID = &id
				}
				tasks = append(tasks, task)
			}

			weeks = append(weeks, Week{
				Week:       week,
				StartWeek:  week,
				EndWeek:    week,
				SkillFocus: g.Skill,
				GapLevel:   g.Gap,
				Resources:  resources,
				Tasks:      tasks,
			})
			week++
		}
	}
	return weeks
}
