package entity

// PortfolioSnapshot aggregates all portfolio record sets as read at the
// start of one assistant request. It is compiled into an instruction prompt
// and discarded; nothing caches it across requests.
type PortfolioSnapshot struct {
	Profile        *Profile
	Skills         []*Skill
	Experiences    []*Experience
	Projects       []*Project
	Certifications []*Certification
	Documentation  []*Documentation
}
