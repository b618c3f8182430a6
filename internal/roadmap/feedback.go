package roadmap

import "careerpath/internal/model"

// LevelFromProgress maps the share of completed tasks for a skill onto the level scale:
// min(3, ceil(3 * completed / total)). No tasks means no level.
func LevelFromProgress(completed, total int) model.SkillLevel {
	if total <= 0 || completed <= 0 {
		return model.LevelNone
	}
	if completed > total {
		completed = total
	}
	level := (3*completed + total - 1) / total
	if level > int(model.MaxSkillLevel) {
		level = int(model.MaxSkillLevel)
	}
	return model.SkillLevel(level)
}
