package models

var validSkills = []string{
	"Music",
	"Art",
	"Cooking",
	"Photography",
	"Design",
	"Programming",
	"Writing",
	"Fitness",
	"Gardening",
}

// Skills returns a copy of the skill allow-list.
func Skills() []string {
	out := make([]string, len(validSkills))
	copy(out, validSkills)
	return out
}

// IsValidSkill reports whether skill is on the allow-list. Matching is case sensitive.
func IsValidSkill(skill string) bool {
	for _, s := range validSkills {
		if s == skill {
			return true
		}
	}
	return false
}

// SkillsResponse is the payload of the skills endpoint
// swagger:model SkillsResponse
type SkillsResponse struct {
	Skills []string `json:"skills"`
	Total  int      `json:"total"`
}
