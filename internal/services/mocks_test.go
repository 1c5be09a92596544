package services

import (
	"context"
	"fmt"
	"io"
	"sync"

	"homeveda_backend/internal/models"
	"homeveda_backend/internal/repositories"
)

// In-memory repository fakes backing the service tests.

type fakeProjectRepo struct {
	projects map[string]*models.Project
}

func newFakeProjectRepo(projects ...*models.Project) *fakeProjectRepo {
	r := &fakeProjectRepo{projects: make(map[string]*models.Project)}
	for _, p := range projects {
		r.projects[p.ID] = p
	}
	return r
}

func (r *fakeProjectRepo) CreateProject(_ context.Context, project *models.Project) error {
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) GetProjectByID(_ context.Context, id string) (*models.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProjectRepo) GetProjectsByUserEmail(_ context.Context, userEmail string) ([]models.Project, error) {
	out := []models.Project{}
	for _, p := range r.projects {
		if p.UserEmail == userEmail {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) UpdateProject(_ context.Context, project *models.Project) error {
	if _, ok := r.projects[project.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) DeleteProject(_ context.Context, id string) error {
	if _, ok := r.projects[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.projects, id)
	return nil
}

type fakeQuotationRepo struct {
	quotations map[string]*models.Quotation
}

func newFakeQuotationRepo(quotations ...*models.Quotation) *fakeQuotationRepo {
	r := &fakeQuotationRepo{quotations: make(map[string]*models.Quotation)}
	for _, q := range quotations {
		r.quotations[q.ID] = q
	}
	return r
}

func (r *fakeQuotationRepo) CreateQuotation(_ context.Context, quotation *models.Quotation) error {
	r.quotations[quotation.ID] = quotation
	return nil
}

func (r *fakeQuotationRepo) GetQuotationByID(_ context.Context, id string) (*models.Quotation, error) {
	q, ok := r.quotations[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *q
	return &copied, nil
}

func (r *fakeQuotationRepo) GetAllQuotations(_ context.Context) ([]models.Quotation, error) {
	out := []models.Quotation{}
	for _, q := range r.quotations {
		out = append(out, *q)
	}
	return out, nil
}

func (r *fakeQuotationRepo) GetQuotationsByProjectID(_ context.Context, projectID string) ([]models.Quotation, error) {
	out := []models.Quotation{}
	for _, q := range r.quotations {
		if q.ProjectID == projectID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (r *fakeQuotationRepo) UpdateQuotation(_ context.Context, quotation *models.Quotation) error {
	if _, ok := r.quotations[quotation.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.quotations[quotation.ID] = quotation
	return nil
}

func (r *fakeQuotationRepo) DeleteQuotation(_ context.Context, id string) error {
	if _, ok := r.quotations[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.quotations, id)
	return nil
}

type fakeCatalogRepo struct {
	items map[string]*models.CatalogItem
}

func newFakeCatalogRepo(items ...*models.CatalogItem) *fakeCatalogRepo {
	r := &fakeCatalogRepo{items: make(map[string]*models.CatalogItem)}
	for _, item := range items {
		r.items[item.ID] = item
	}
	return r
}

func (r *fakeCatalogRepo) CreateCatalogItem(_ context.Context, item *models.CatalogItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeCatalogRepo) GetCatalogItemByID(_ context.Context, id string) (*models.CatalogItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *fakeCatalogRepo) GetCatalogItems(_ context.Context, filter repositories.CatalogFilter) ([]models.CatalogItem, error) {
	out := []models.CatalogItem{}
	for _, item := range r.items {
		if filter.Department != "" && item.Department != filter.Department {
			continue
		}
		if filter.WorkType != "" && item.WorkType != filter.WorkType {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.Type != "" && item.Type != filter.Type {
			continue
		}
		out = append(out, *item)
	}
	return out, nil
}

func (r *fakeCatalogRepo) UpdateCatalogItem(_ context.Context, item *models.CatalogItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.items[item.ID] = item
	return nil
}

func (r *fakeCatalogRepo) DeleteCatalogItem(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeLeadRepo struct {
	leads map[string]*models.Lead
}

func newFakeLeadRepo(leads ...*models.Lead) *fakeLeadRepo {
	r := &fakeLeadRepo{leads: make(map[string]*models.Lead)}
	for _, l := range leads {
		r.leads[l.ID] = l
	}
	return r
}

func (r *fakeLeadRepo) CreateLead(_ context.Context, lead *models.Lead) error {
	r.leads[lead.ID] = lead
	return nil
}

func (r *fakeLeadRepo) GetLeadByID(_ context.Context, id string) (*models.Lead, error) {
	l, ok := r.leads[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *l
	return &copied, nil
}

func (r *fakeLeadRepo) GetAllLeads(_ context.Context) ([]models.Lead, error) {
	out := []models.Lead{}
	for _, l := range r.leads {
		out = append(out, *l)
	}
	return out, nil
}

func (r *fakeLeadRepo) GetLeadsByAssignedRole(_ context.Context, role string) ([]models.Lead, error) {
	out := []models.Lead{}
	for _, l := range r.leads {
		for _, assigned := range l.AssignedRoles {
			if assigned == role {
				out = append(out, *l)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeLeadRepo) UpdateLead(_ context.Context, lead *models.Lead) error {
	if _, ok := r.leads[lead.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.leads[lead.ID] = lead
	return nil
}

func (r *fakeLeadRepo) DeleteLead(_ context.Context, id string) error {
	if _, ok := r.leads[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.leads, id)
	return nil
}

type fakeArchitectRepo struct {
	architects map[string]*models.Architect
	createErr  error
}

func newFakeArchitectRepo(architects ...*models.Architect) *fakeArchitectRepo {
	r := &fakeArchitectRepo{architects: make(map[string]*models.Architect)}
	for _, a := range architects {
		r.architects[a.ID] = a
	}
	return r
}

func (r *fakeArchitectRepo) CreateArchitect(_ context.Context, architect *models.Architect) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.architects[architect.ID] = architect
	return nil
}

func (r *fakeArchitectRepo) GetArchitectByID(_ context.Context, id string) (*models.Architect, error) {
	a, ok := r.architects[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeArchitectRepo) GetArchitectByNameAndContact(_ context.Context, name, contact string) (*models.Architect, error) {
	for _, a := range r.architects {
		if a.ArchitectName == name && a.ArchitectContact == contact {
			copied := *a
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeArchitectRepo) GetAllArchitects(_ context.Context) ([]models.Architect, error) {
	out := []models.Architect{}
	for _, a := range r.architects {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeArchitectRepo) UpdateArchitect(_ context.Context, architect *models.Architect) error {
	if _, ok := r.architects[architect.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.architects[architect.ID] = architect
	return nil
}

func (r *fakeArchitectRepo) DeleteArchitect(_ context.Context, id string) error {
	if _, ok := r.architects[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.architects, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		r.users[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.Email]; ok {
		return repositories.ErrDuplicateKey
	}
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.Email]; !ok {
		return repositories.ErrNotFound
	}
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) DeleteUser(_ context.Context, email string) error {
	if _, ok := r.users[email]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.users, email)
	return nil
}

func (r *fakeUserRepo) GetAllUsers(_ context.Context) ([]models.User, error) {
	out := []models.User{}
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

type fakeDesignRepo struct {
	designs map[string]*models.Design
}

func newFakeDesignRepo(designs ...*models.Design) *fakeDesignRepo {
	r := &fakeDesignRepo{designs: make(map[string]*models.Design)}
	for _, d := range designs {
		r.designs[d.ID] = d
	}
	return r
}

func (r *fakeDesignRepo) CreateDesign(_ context.Context, design *models.Design) error {
	r.designs[design.ID] = design
	return nil
}

func (r *fakeDesignRepo) GetDesignByID(_ context.Context, id string) (*models.Design, error) {
	d, ok := r.designs[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *d
	copied.Items = append([]models.DesignItem{}, d.Items...)
	return &copied, nil
}

func (r *fakeDesignRepo) GetDesignsByProjectID(_ context.Context, projectID string) ([]models.Design, error) {
	out := []models.Design{}
	for _, d := range r.designs {
		if d.ProjectID == projectID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDesignRepo) UpdateDesign(_ context.Context, design *models.Design) error {
	if _, ok := r.designs[design.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.designs[design.ID] = design
	return nil
}

func (r *fakeDesignRepo) DeleteDesign(_ context.Context, id string) error {
	if _, ok := r.designs[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.designs, id)
	return nil
}

type fakeInspectionRepo struct {
	inspections map[string]*models.Inspection
}

func newFakeInspectionRepo(inspections ...*models.Inspection) *fakeInspectionRepo {
	r := &fakeInspectionRepo{inspections: make(map[string]*models.Inspection)}
	for _, in := range inspections {
		r.inspections[in.ID] = in
	}
	return r
}

func (r *fakeInspectionRepo) CreateInspection(_ context.Context, inspection *models.Inspection) error {
	r.inspections[inspection.ID] = inspection
	return nil
}

func (r *fakeInspectionRepo) GetInspectionByID(_ context.Context, id string) (*models.Inspection, error) {
	in, ok := r.inspections[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *in
	copied.OtherVideos = append([]string{}, in.OtherVideos...)
	return &copied, nil
}

func (r *fakeInspectionRepo) GetInspectionsByProjectID(_ context.Context, projectID string) ([]models.Inspection, error) {
	out := []models.Inspection{}
	for _, in := range r.inspections {
		if in.ProjectID == projectID {
			out = append(out, *in)
		}
	}
	return out, nil
}

func (r *fakeInspectionRepo) UpdateInspection(_ context.Context, inspection *models.Inspection) error {
	if _, ok := r.inspections[inspection.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.inspections[inspection.ID] = inspection
	return nil
}

func (r *fakeInspectionRepo) DeleteInspection(_ context.Context, id string) error {
	if _, ok := r.inspections[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.inspections, id)
	return nil
}

type fakeMaterialRepo struct {
	materials map[string]*models.Material // keyed by project id
}

func newFakeMaterialRepo(materials ...*models.Material) *fakeMaterialRepo {
	r := &fakeMaterialRepo{materials: make(map[string]*models.Material)}
	for _, m := range materials {
		r.materials[m.ProjectID] = m
	}
	return r
}

func (r *fakeMaterialRepo) CreateMaterial(_ context.Context, material *models.Material) error {
	r.materials[material.ProjectID] = material
	return nil
}

func (r *fakeMaterialRepo) GetMaterialByProjectID(_ context.Context, projectID string) (*models.Material, error) {
	m, ok := r.materials[projectID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *m
	copied.Materials = append([]models.MaterialItem{}, m.Materials...)
	return &copied, nil
}

func (r *fakeMaterialRepo) UpdateMaterial(_ context.Context, material *models.Material) error {
	if _, ok := r.materials[material.ProjectID]; !ok {
		return repositories.ErrNotFound
	}
	r.materials[material.ProjectID] = material
	return nil
}

func (r *fakeMaterialRepo) DeleteMaterialByProjectID(_ context.Context, projectID string) error {
	if _, ok := r.materials[projectID]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.materials, projectID)
	return nil
}

// fakeStore is an in-memory ObjectStorage. URLs listed in failDeletes make
// Delete fail so best-effort paths can be exercised.
type fakeStore struct {
	mu          sync.Mutex
	uploads     map[string]string // key -> content type
	deleted     []string
	failDeletes map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		uploads:     make(map[string]string),
		failDeletes: make(map[string]bool),
	}
}

func (s *fakeStore) Upload(_ context.Context, key string, _ io.Reader, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads[key] = contentType
	return "https://bucket.s3.test.amazonaws.com/" + key, nil
}

func (s *fakeStore) Delete(_ context.Context, fileURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failDeletes[fileURL] {
		return fmt.Errorf("access denied for %s", fileURL)
	}
	s.deleted = append(s.deleted, fileURL)
	return nil
}
