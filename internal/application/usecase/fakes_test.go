package usecase_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/housing-reviews-api/internal/domain"
	"github.com/jhoicas/housing-reviews-api/internal/domain/alias"
	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
	"github.com/jhoicas/housing-reviews-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso
// ──────────────────────────────────────────────────────────────────────────────

type memAliases struct {
	mu        sync.Mutex
	rows      map[string]*entity.Alias
	companies *memCompanies
	// Si no es nil, IncrementUsage devuelve este error.
	incrementErr error
}

func newMemAliases(companies *memCompanies) *memAliases {
	return &memAliases{rows: map[string]*entity.Alias{}, companies: companies}
}

func (m *memAliases) put(a *entity.Alias) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *a
	m.rows[a.ID] = &cp
}

func (m *memAliases) activeLocked(normalized, exceptID string) *entity.Alias {
	for _, a := range m.rows {
		if a.IsActive && a.NormalizedName == normalized && a.ID != exceptID {
			return a
		}
	}
	return nil
}

func (m *memAliases) Create(_ context.Context, a *entity.Alias) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a.IsActive && m.activeLocked(a.NormalizedName, a.ID) != nil {
		return domain.ErrDuplicate
	}
	cp := *a
	m.rows[a.ID] = &cp
	return nil
}

func (m *memAliases) CreateIfAbsent(_ context.Context, a *entity.Alias) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.activeLocked(a.NormalizedName, a.ID) != nil {
		return false, nil
	}
	cp := *a
	m.rows[a.ID] = &cp
	return true, nil
}

func (m *memAliases) GetByID(_ context.Context, id string) (*entity.Alias, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (m *memAliases) GetActiveByNormalized(_ context.Context, normalized string) (*entity.Alias, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.activeLocked(normalized, "")
	if a == nil {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (m *memAliases) SearchPrefix(_ context.Context, prefix string, limit int) ([]*entity.Alias, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Alias
	for _, a := range m.rows {
		if a.IsActive && strings.HasPrefix(a.NormalizedName, prefix) {
			cp := *a
			out = append(out, &cp)
		}
	}
	alias.SortMatches(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memAliases) ResolveVerified(_ context.Context, normalized string) (*repository.AliasResolution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var best *entity.Alias
	var company *entity.Company
	for _, a := range m.rows {
		if !a.IsActive || a.NormalizedName != normalized || !a.IsLinked() {
			continue
		}
		c := m.companies.lookup(*a.CompanyID)
		if c == nil || !c.IsVerified() {
			continue
		}
		if best == nil || a.Priority > best.Priority || (a.Priority == best.Priority && a.UsageCount > best.UsageCount) {
			best, company = a, c
		}
	}
	if best == nil {
		return nil, nil
	}
	cp := *best
	return &repository.AliasResolution{Alias: &cp, CompanyID: company.ID, CompanyName: company.Name}, nil
}

func (m *memAliases) IncrementUsage(_ context.Context, id string) error {
	if m.incrementErr != nil {
		return m.incrementErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.UsageCount++
	return nil
}

func (m *memAliases) Update(_ context.Context, a *entity.Alias) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[a.ID]; !ok {
		return domain.ErrNotFound
	}
	if a.IsActive && m.activeLocked(a.NormalizedName, a.ID) != nil {
		return domain.ErrDuplicate
	}
	cp := *a
	m.rows[a.ID] = &cp
	return nil
}

func (m *memAliases) Link(_ context.Context, id, companyID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.CompanyID = &companyID
	return nil
}

func (m *memAliases) Deactivate(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.IsActive = false
	return nil
}

func (m *memAliases) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memAliases) List(_ context.Context, f repository.AliasFilter) ([]*entity.Alias, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Alias
	for _, a := range m.rows {
		if f.Query != "" && !strings.HasPrefix(a.NormalizedName, f.Query) {
			continue
		}
		if f.IsActive != nil && a.IsActive != *f.IsActive {
			continue
		}
		if f.UnlinkedOnly && a.IsLinked() {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	alias.SortMatches(out)
	return out, len(out), nil
}

func (m *memAliases) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

type memCompanies struct {
	mu     sync.Mutex
	rows   map[string]*entity.Company
	stats  map[string]*entity.CompanyStats
	scores map[string]repository.CompanyScores
	// rejectMalformed reproduce el error de Postgres ante un uuid mal formado.
	rejectMalformed bool
}

func newMemCompanies() *memCompanies {
	return &memCompanies{
		rows:   map[string]*entity.Company{},
		stats:  map[string]*entity.CompanyStats{},
		scores: map[string]repository.CompanyScores{},
	}
}

func (m *memCompanies) lookup(id string) *entity.Company {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[id]
}

func (m *memCompanies) put(c *entity.Company) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	m.rows[c.ID] = &cp
}

func (m *memCompanies) Create(_ context.Context, c *entity.Company) error {
	m.put(c)
	return nil
}

func (m *memCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	if m.rejectMalformed && uuid.Validate(id) != nil {
		return nil, errors.New("invalid input syntax for type uuid: " + id)
	}
	c := m.lookup(id)
	if c == nil {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memCompanies) GetVerifiedByName(_ context.Context, name string) (*entity.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.rows {
		if c.IsVerified() && strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memCompanies) GetPublicByIDs(_ context.Context, ids []string) (map[string]*entity.CompanyPublic, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]*entity.CompanyPublic, len(ids))
	for _, id := range ids {
		if c, ok := m.rows[id]; ok {
			out[id] = &entity.CompanyPublic{
				ID:                 c.ID,
				Name:               c.Name,
				VerificationStatus: c.VerificationStatus,
				AverageRating:      c.AverageRating,
				ReviewCount:        c.ReviewCount,
			}
		}
	}
	return out, nil
}

func (m *memCompanies) Update(_ context.Context, c *entity.Company) error {
	if m.lookup(c.ID) == nil {
		return domain.ErrNotFound
	}
	m.put(c)
	return nil
}

func (m *memCompanies) UpdateVerification(_ context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.VerificationStatus = status
	return nil
}

func (m *memCompanies) UpdateScores(_ context.Context, id string, s repository.CompanyScores) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.TrustScore = s.TrustScore
	c.DataCompleteness = s.DataCompleteness
	c.ReviewCount = s.Stats.ReviewCount
	c.AverageRating = s.Stats.AverageRating
	m.scores[id] = s
	return nil
}

func (m *memCompanies) Stats(_ context.Context, id string) (*entity.CompanyStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.stats[id]; ok {
		cp := *s
		return &cp, nil
	}
	return &entity.CompanyStats{}, nil
}

func (m *memCompanies) List(_ context.Context, f repository.CompanyFilter) ([]*entity.Company, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Company
	for _, c := range m.rows {
		if f.VerificationStatus != "" && c.VerificationStatus != f.VerificationStatus {
			continue
		}
		if f.City != "" && !strings.EqualFold(c.City, f.City) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, len(out), nil
}

func (m *memCompanies) ListIDs(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

type memSuggestions struct {
	mu   sync.Mutex
	rows map[string]*entity.AliasSuggestion
}

func newMemSuggestions() *memSuggestions {
	return &memSuggestions{rows: map[string]*entity.AliasSuggestion{}}
}

func (m *memSuggestions) Create(_ context.Context, s *entity.AliasSuggestion) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.rows[s.ID] = &cp
	return nil
}

func (m *memSuggestions) GetByID(_ context.Context, id string) (*entity.AliasSuggestion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memSuggestions) UpdateReview(_ context.Context, s *entity.AliasSuggestion) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rows[s.ID]
	if !ok || !cur.IsPending() {
		return domain.ErrConflict
	}
	cp := *s
	m.rows[s.ID] = &cp
	return nil
}

func (m *memSuggestions) List(_ context.Context, f repository.SuggestionFilter) ([]*entity.AliasSuggestion, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.AliasSuggestion
	for _, s := range m.rows {
		if f.Status == "" || s.Status == f.Status {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, len(out), nil
}

func (m *memSuggestions) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

type memUsers struct {
	mu     sync.Mutex
	rows   map[string]*entity.User
	stats  map[string]*entity.UserStats
	scored map[string]int
}

func newMemUsers() *memUsers {
	return &memUsers{
		rows:   map[string]*entity.User{},
		stats:  map[string]*entity.UserStats{},
		scored: map[string]int{},
	}
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.rows {
		if x.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	m.rows[u.ID] = &cp
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.rows {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUsers) UpdateProfile(_ context.Context, id string, p *entity.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.Profile = *p
	return nil
}

func (m *memUsers) UpdateScores(_ context.Context, id string, trust, completion int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.TrustScore = trust
	u.ProfileCompletion = completion
	m.scored[id]++
	return nil
}

func (m *memUsers) Stats(_ context.Context, id string) (*entity.UserStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.stats[id]; ok {
		cp := *s
		return &cp, nil
	}
	return &entity.UserStats{}, nil
}

func (m *memUsers) ListIDs(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

type memReviews struct {
	mu        sync.Mutex
	rows      map[string]*entity.Review
	votes     map[string]bool // reviewID|userID
	responses map[string]*entity.ReviewResponse
}

func newMemReviews() *memReviews {
	return &memReviews{
		rows:      map[string]*entity.Review{},
		votes:     map[string]bool{},
		responses: map[string]*entity.ReviewResponse{},
	}
}

func (m *memReviews) Create(_ context.Context, r *entity.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.rows {
		if x.UserID == r.UserID && x.CompanyID == r.CompanyID {
			return domain.ErrDuplicate
		}
	}
	cp := *r
	m.rows[r.ID] = &cp
	return nil
}

func (m *memReviews) GetByID(_ context.Context, id string) (*entity.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *memReviews) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Review
	for _, r := range m.rows {
		if r.CompanyID == companyID && r.Status == entity.ModerationApproved {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memReviews) CountApprovedByCompany(_ context.Context, companyID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, r := range m.rows {
		if r.CompanyID == companyID && r.Status == entity.ModerationApproved {
			n++
		}
	}
	return n, nil
}

func (m *memReviews) AddHelpfulVote(_ context.Context, reviewID, userID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := reviewID + "|" + userID
	if m.votes[key] {
		return false, nil
	}
	m.votes[key] = true
	m.rows[reviewID].HelpfulCount++
	return true, nil
}

func (m *memReviews) CreateResponse(_ context.Context, resp *entity.ReviewResponse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *resp
	m.responses[resp.ID] = &cp
	return nil
}

func (m *memReviews) GetResponse(_ context.Context, id string) (*entity.ReviewResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.responses[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *memReviews) ModerateResponse(_ context.Context, resp *entity.ReviewResponse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.responses[resp.ID]
	if !ok || cur.Status != entity.ModerationPending {
		return domain.ErrConflict
	}
	cp := *resp
	m.responses[resp.ID] = &cp
	return nil
}

// memTx ejecuta el callback sobre los mismos repos en memoria (sin aislamiento).
type memTx struct {
	companies *memCompanies
	aliases   *memAliases
}

func (t *memTx) RunCompany(_ context.Context, fn func(repository.CompanyRepository, repository.AliasRepository) error) error {
	return fn(t.companies, t.aliases)
}

var (
	_ repository.AliasRepository      = (*memAliases)(nil)
	_ repository.CompanyRepository    = (*memCompanies)(nil)
	_ repository.SuggestionRepository = (*memSuggestions)(nil)
	_ repository.UserRepository       = (*memUsers)(nil)
	_ repository.ReviewRepository     = (*memReviews)(nil)
)
