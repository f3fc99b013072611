package models

// TeamMember is a named participant attached to exactly one project.
// Role is free text; SuggestedRoles lists the common choices offered
// by the member form but nothing constrains the field to them.
type TeamMember struct {
	ID        string
	Name      string
	Role      string
	ProjectID string
}

// SuggestedRoles is the advisory role list shown when adding a member.
var SuggestedRoles = []string{
	"Project Manager",
	"Developer",
	"Designer",
	"Business Analyst",
	"QA Engineer",
	"DevOps Engineer",
	"Product Owner",
}
