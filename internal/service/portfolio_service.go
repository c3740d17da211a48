package service

import (
	"context"

	"portfolio-be/internal/dto"
	"portfolio-be/internal/entity"
	"portfolio-be/internal/repository/contract"
	"portfolio-be/internal/repository/specification"

	"github.com/google/uuid"
)

// IPortfolioService serves the public portfolio reads and the owner's
// content management for all six record sets.
type IPortfolioService interface {
	GetProfile(ctx context.Context) (*dto.ProfileResponse, error)
	UpsertProfile(ctx context.Context, req *dto.UpsertProfileRequest) (*dto.ProfileResponse, error)

	ListSkills(ctx context.Context) ([]*dto.SkillResponse, error)
	CreateSkill(ctx context.Context, req *dto.SkillRequest) (*dto.SkillResponse, error)
	UpdateSkill(ctx context.Context, id uuid.UUID, req *dto.SkillRequest) (*dto.SkillResponse, error)
	DeleteSkill(ctx context.Context, id uuid.UUID) error
	ReorderSkills(ctx context.Context, req *dto.ReorderRequest) error

	ListExperiences(ctx context.Context) ([]*dto.ExperienceResponse, error)
	CreateExperience(ctx context.Context, req *dto.ExperienceRequest) (*dto.ExperienceResponse, error)
	UpdateExperience(ctx context.Context, id uuid.UUID, req *dto.ExperienceRequest) (*dto.ExperienceResponse, error)
	DeleteExperience(ctx context.Context, id uuid.UUID) error
	ReorderExperiences(ctx context.Context, req *dto.ReorderRequest) error

	ListProjects(ctx context.Context, featuredOnly bool) ([]*dto.ProjectResponse, error)
	CreateProject(ctx context.Context, req *dto.ProjectRequest) (*dto.ProjectResponse, error)
	UpdateProject(ctx context.Context, id uuid.UUID, req *dto.ProjectRequest) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
	ReorderProjects(ctx context.Context, req *dto.ReorderRequest) error

	ListCertifications(ctx context.Context) ([]*dto.CertificationResponse, error)
	CreateCertification(ctx context.Context, req *dto.CertificationRequest) (*dto.CertificationResponse, error)
	UpdateCertification(ctx context.Context, id uuid.UUID, req *dto.CertificationRequest) (*dto.CertificationResponse, error)
	DeleteCertification(ctx context.Context, id uuid.UUID) error

	ListDocumentation(ctx context.Context) ([]*dto.DocumentationResponse, error)
	CreateDocumentation(ctx context.Context, req *dto.DocumentationRequest) (*dto.DocumentationResponse, error)
	UpdateDocumentation(ctx context.Context, id uuid.UUID, req *dto.DocumentationRequest) (*dto.DocumentationResponse, error)
	DeleteDocumentation(ctx context.Context, id uuid.UUID) error
	ReorderDocumentation(ctx context.Context, req *dto.ReorderRequest) error
}

type portfolioService struct {
	profiles       contract.ProfileRepository
	skills         contract.SkillRepository
	experiences    contract.ExperienceRepository
	projects       contract.ProjectRepository
	certifications contract.CertificationRepository
	documentation  contract.DocumentationRepository
}

func NewPortfolioService(
	profiles contract.ProfileRepository,
	skills contract.SkillRepository,
	experiences contract.ExperienceRepository,
	projects contract.ProjectRepository,
	certifications contract.CertificationRepository,
	documentation contract.DocumentationRepository,
) IPortfolioService {
	return &portfolioService{
		profiles:       profiles,
		skills:         skills,
		experiences:    experiences,
		projects:       projects,
		certifications: certifications,
		documentation:  documentation,
	}
}

// --- Profile ---

func (s *portfolioService) GetProfile(ctx context.Context) (*dto.ProfileResponse, error) {
	p, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return profileToResponse(p), nil
}

func (s *portfolioService) UpsertProfile(ctx context.Context, req *dto.UpsertProfileRequest) (*dto.ProfileResponse, error) {
	p, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &entity.Profile{Id: uuid.New()}
	}

	p.Name = req.Name
	p.Headline = req.Headline
	p.Bio = req.Bio
	p.Location = req.Location
	p.Email = req.Email
	p.AvatarUrl = req.AvatarUrl
	p.SocialLinks = req.SocialLinks
	p.YearsOfExp = req.YearsOfExp

	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, err
	}
	return profileToResponse(p), nil
}

// --- Skills ---

func (s *portfolioService) ListSkills(ctx context.Context) ([]*dto.SkillResponse, error) {
	skills, err := s.skills.FindAll(ctx, specification.OrderBy{Field: "position"})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SkillResponse, 0, len(skills))
	for _, sk := range skills {
		out = append(out, skillToResponse(sk))
	}
	return out, nil
}

func (s *portfolioService) CreateSkill(ctx context.Context, req *dto.SkillRequest) (*dto.SkillResponse, error) {
	count, err := s.skills.Count(ctx)
	if err != nil {
		return nil, err
	}
	skill := &entity.Skill{
		Id:       uuid.New(),
		Category: req.Category,
		Name:     req.Name,
		Level:    req.Level,
		Position: int(count), // append at the end of the current order
	}
	if err := s.skills.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skillToResponse(skill), nil
}

func (s *portfolioService) UpdateSkill(ctx context.Context, id uuid.UUID, req *dto.SkillRequest) (*dto.SkillResponse, error) {
	skill, err := s.skills.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if skill == nil {
		return nil, ErrNotFound
	}

	skill.Category = req.Category
	skill.Name = req.Name
	skill.Level = req.Level

	if err := s.skills.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skillToResponse(skill), nil
}

func (s *portfolioService) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	skill, err := s.skills.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if skill == nil {
		return ErrNotFound
	}
	return s.skills.Delete(ctx, id)
}

func (s *portfolioService) ReorderSkills(ctx context.Context, req *dto.ReorderRequest) error {
	return s.skills.UpdatePositions(ctx, req.OrderedIds)
}

// --- Experiences ---

func (s *portfolioService) ListExperiences(ctx context.Context) ([]*dto.ExperienceResponse, error) {
	experiences, err := s.experiences.FindAll(ctx, specification.OrderBy{Field: "start_date", Desc: true})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ExperienceResponse, 0, len(experiences))
	for _, e := range experiences {
		out = append(out, experienceToResponse(e))
	}
	return out, nil
}

func (s *portfolioService) CreateExperience(ctx context.Context, req *dto.ExperienceRequest) (*dto.ExperienceResponse, error) {
	count, err := s.experiences.Count(ctx)
	if err != nil {
		return nil, err
	}
	e := &entity.Experience{
		Id:         uuid.New(),
		Title:      req.Title,
		Company:    req.Company,
		Location:   req.Location,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		IsCurrent:  req.IsCurrent,
		Highlights: req.Highlights,
		Skills:     req.Skills,
		Position:   int(count),
	}
	if err := s.experiences.Create(ctx, e); err != nil {
		return nil, err
	}
	return experienceToResponse(e), nil
}

func (s *portfolioService) UpdateExperience(ctx context.Context, id uuid.UUID, req *dto.ExperienceRequest) (*dto.ExperienceResponse, error) {
	e, err := s.experiences.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrNotFound
	}

	e.Title = req.Title
	e.Company = req.Company
	e.Location = req.Location
	e.StartDate = req.StartDate
	e.EndDate = req.EndDate
	e.IsCurrent = req.IsCurrent
	e.Highlights = req.Highlights
	e.Skills = req.Skills

	if err := s.experiences.Update(ctx, e); err != nil {
		return nil, err
	}
	return experienceToResponse(e), nil
}

func (s *portfolioService) DeleteExperience(ctx context.Context, id uuid.UUID) error {
	e, err := s.experiences.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if e == nil {
		return ErrNotFound
	}
	return s.experiences.Delete(ctx, id)
}

func (s *portfolioService) ReorderExperiences(ctx context.Context, req *dto.ReorderRequest) error {
	return s.experiences.UpdatePositions(ctx, req.OrderedIds)
}

// --- Projects ---

func (s *portfolioService) ListProjects(ctx context.Context, featuredOnly bool) ([]*dto.ProjectResponse, error) {
	specs := []specification.Specification{specification.OrderBy{Field: "position"}}
	if featuredOnly {
		specs = append(specs, specification.FeaturedOnly{})
	}
	projects, err := s.projects.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectToResponse(p))
	}
	return out, nil
}

func (s *portfolioService) CreateProject(ctx context.Context, req *dto.ProjectRequest) (*dto.ProjectResponse, error) {
	count, err := s.projects.Count(ctx)
	if err != nil {
		return nil, err
	}
	p := &entity.Project{
		Id:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Technologies: req.Technologies,
		RepoUrl:      req.RepoUrl,
		LiveUrl:      req.LiveUrl,
		ImageUrl:     req.ImageUrl,
		IsFeatured:   req.IsFeatured,
		Position:     int(count),
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return projectToResponse(p), nil
}

func (s *portfolioService) UpdateProject(ctx context.Context, id uuid.UUID, req *dto.ProjectRequest) (*dto.ProjectResponse, error) {
	p, err := s.projects.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	p.Title = req.Title
	p.Description = req.Description
	p.Category = req.Category
	p.Technologies = req.Technologies
	p.RepoUrl = req.RepoUrl
	p.LiveUrl = req.LiveUrl
	p.ImageUrl = req.ImageUrl
	p.IsFeatured = req.IsFeatured

	if err := s.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return projectToResponse(p), nil
}

func (s *portfolioService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	p, err := s.projects.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}
	return s.projects.Delete(ctx, id)
}

func (s *portfolioService) ReorderProjects(ctx context.Context, req *dto.ReorderRequest) error {
	return s.projects.UpdatePositions(ctx, req.OrderedIds)
}

// --- Certifications ---

func (s *portfolioService) ListCertifications(ctx context.Context) ([]*dto.CertificationResponse, error) {
	certs, err := s.certifications.FindAll(ctx, specification.OrderBy{Field: "issue_date", Desc: true})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CertificationResponse, 0, len(certs))
	for _, c := range certs {
		out = append(out, certificationToResponse(c))
	}
	return out, nil
}

func (s *portfolioService) CreateCertification(ctx context.Context, req *dto.CertificationRequest) (*dto.CertificationResponse, error) {
	c := &entity.Certification{
		Id:            uuid.New(),
		Name:          req.Name,
		Issuer:        req.Issuer,
		IssueDate:     req.IssueDate,
		ExpiryDate:    req.ExpiryDate,
		CredentialId:  req.CredentialId,
		CredentialUrl: req.CredentialUrl,
	}
	if err := s.certifications.Create(ctx, c); err != nil {
		return nil, err
	}
	return certificationToResponse(c), nil
}

func (s *portfolioService) UpdateCertification(ctx context.Context, id uuid.UUID, req *dto.CertificationRequest) (*dto.CertificationResponse, error) {
	c, err := s.certifications.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}

	c.Name = req.Name
	c.Issuer = req.Issuer
	c.IssueDate = req.IssueDate
	c.ExpiryDate = req.ExpiryDate
	c.CredentialId = req.CredentialId
	c.CredentialUrl = req.CredentialUrl

	if err := s.certifications.Update(ctx, c); err != nil {
		return nil, err
	}
	return certificationToResponse(c), nil
}

func (s *portfolioService) DeleteCertification(ctx context.Context, id uuid.UUID) error {
	c, err := s.certifications.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if c == nil {
		return ErrNotFound
	}
	return s.certifications.Delete(ctx, id)
}

// --- Documentation ---

func (s *portfolioService) ListDocumentation(ctx context.Context) ([]*dto.DocumentationResponse, error) {
	docs, err := s.documentation.FindAll(ctx, specification.OrderBy{Field: "position"})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DocumentationResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, documentationToResponse(d))
	}
	return out, nil
}

func (s *portfolioService) CreateDocumentation(ctx context.Context, req *dto.DocumentationRequest) (*dto.DocumentationResponse, error) {
	count, err := s.documentation.Count(ctx)
	if err != nil {
		return nil, err
	}
	d := &entity.Documentation{
		Id:          uuid.New(),
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Link:        req.Link,
		Position:    int(count),
	}
	if err := s.documentation.Create(ctx, d); err != nil {
		return nil, err
	}
	return documentationToResponse(d), nil
}

func (s *portfolioService) UpdateDocumentation(ctx context.Context, id uuid.UUID, req *dto.DocumentationRequest) (*dto.DocumentationResponse, error) {
	d, err := s.documentation.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNotFound
	}

	d.Title = req.Title
	d.Category = req.Category
	d.Description = req.Description
	d.Link = req.Link

	if err := s.documentation.Update(ctx, d); err != nil {
		return nil, err
	}
	return documentationToResponse(d), nil
}

func (s *portfolioService) DeleteDocumentation(ctx context.Context, id uuid.UUID) error {
	d, err := s.documentation.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if d == nil {
		return ErrNotFound
	}
	return s.documentation.Delete(ctx, id)
}

func (s *portfolioService) ReorderDocumentation(ctx context.Context, req *dto.ReorderRequest) error {
	return s.documentation.UpdatePositions(ctx, req.OrderedIds)
}

// --- Response mapping ---

func profileToResponse(p *entity.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		Id:          p.Id,
		Name:        p.Name,
		Headline:    p.Headline,
		Bio:         p.Bio,
		Location:    p.Location,
		Email:       p.Email,
		AvatarUrl:   p.AvatarUrl,
		SocialLinks: p.SocialLinks,
		YearsOfExp:  p.YearsOfExp,
	}
}

func skillToResponse(s *entity.Skill) *dto.SkillResponse {
	return &dto.SkillResponse{
		Id:       s.Id,
		Category: s.Category,
		Name:     s.Name,
		Level:    s.Level,
		Position: s.Position,
	}
}

func experienceToResponse(e *entity.Experience) *dto.ExperienceResponse {
	return &dto.ExperienceResponse{
		Id:         e.Id,
		Title:      e.Title,
		Company:    e.Company,
		Location:   e.Location,
		StartDate:  e.StartDate,
		EndDate:    e.EndDate,
		IsCurrent:  e.IsCurrent,
		Highlights: e.Highlights,
		Skills:     e.Skills,
		Position:   e.Position,
	}
}

func projectToResponse(p *entity.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		Id:           p.Id,
		Title:        p.Title,
		Description:  p.Description,
		Category:     p.Category,
		Technologies: p.Technologies,
		RepoUrl:      p.RepoUrl,
		LiveUrl:      p.LiveUrl,
		ImageUrl:     p.ImageUrl,
		IsFeatured:   p.IsFeatured,
		Position:     p.Position,
	}
}

func certificationToResponse(c *entity.Certification) *dto.CertificationResponse {
	return &dto.CertificationResponse{
		Id:            c.Id,
		Name:          c.Name,
		Issuer:        c.Issuer,
		IssueDate:     c.IssueDate,
		ExpiryDate:    c.ExpiryDate,
		CredentialId:  c.CredentialId,
		CredentialUrl: c.CredentialUrl,
	}
}

func documentationToResponse(d *entity.Documentation) *dto.DocumentationResponse {
	return &dto.DocumentationResponse{
		Id:          d.Id,
		Title:       d.Title,
		Category:    d.Category,
		Description: d.Description,
		Link:        d.Link,
		Position:    d.Position,
	}
}
