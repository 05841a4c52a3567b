// Package memory provides in-memory repositories for use case tests that
// drive whole workflows. Store implements every repository port plus a
// TransactionManager that runs the callback directly, without rollback.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"

	"github.com/google/uuid"
)

// Store holds all rows. Fields are exported so tests can seed and inspect them;
// take Lock when touching them while a workflow may be running.
type Store struct {
	sync.Mutex

	Users     map[string]*entity.User
	Profiles  map[uuid.UUID]*entity.FitnessProfile
	Plans     map[uuid.UUID]*entity.WorkoutPlan
	MealPlans map[uuid.UUID]*entity.MealPlan
	Sessions  map[uuid.UUID]*entity.PaymentSession
	Invoices  map[uuid.UUID]*entity.Invoice
	Projects  []*entity.Project
	Foods     []*entity.NutritionFood
	Runs      map[string]*entity.WorkflowRun

	clock time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		Users:     make(map[string]*entity.User),
		Profiles:  make(map[uuid.UUID]*entity.FitnessProfile),
		Plans:     make(map[uuid.UUID]*entity.WorkoutPlan),
		MealPlans: make(map[uuid.UUID]*entity.MealPlan),
		Sessions:  make(map[uuid.UUID]*entity.PaymentSession),
		Invoices:  make(map[uuid.UUID]*entity.Invoice),
		Runs:      make(map[string]*entity.WorkflowRun),
		clock:     time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
	}
}

// tick returns a strictly increasing timestamp so "newest first" ordering is stable.
func (s *Store) tick() time.Time {
	s.clock = s.clock.Add(time.Second)

	return s.clock
}

// Execute implements repository.TransactionManager. Like a real connection
// pool it refuses to start work on a finished context.
func (s *Store) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(s)
}

func (s *Store) NewUserRepository() repository.UserRepository { return userRepo{s} }

func (s *Store) NewFitnessProfileRepository() repository.FitnessProfileRepository {
	return profileRepo{s}
}

func (s *Store) NewWorkoutPlanRepository() repository.WorkoutPlanRepository { return planRepo{s} }

func (s *Store) NewMealPlanRepository() repository.MealPlanRepository { return mealPlanRepo{s} }

func (s *Store) NewPaymentSessionRepository() repository.PaymentSessionRepository {
	return sessionRepo{s}
}

func (s *Store) NewInvoiceRepository() repository.InvoiceRepository { return invoiceRepo{s} }

func (s *Store) NewProjectRepository() repository.ProjectRepository { return projectRepo{s} }

// NutritionFoods returns a catalog repository over Foods.
func (s *Store) NutritionFoods() repository.NutritionFoodRepository { return foodRepo{s} }

// WorkflowRuns returns a run store over Runs.
func (s *Store) WorkflowRuns() repository.WorkflowRunRepository { return runRepo{s} }

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// --- users ---

type userRepo struct{ s *Store }

func (r userRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.s.Lock()
	defer r.s.Unlock()

	u, ok := r.s.Users[id]
	if !ok {
		return nil, domainerrors.ErrUserNotFound
	}
	out := *u

	return &out, nil
}

func (r userRepo) Upsert(_ context.Context, user *entity.User) (bool, error) {
	r.s.Lock()
	defer r.s.Unlock()

	if user.ID == "" {
		return false, domainerrors.NewValidationError("user", "missing required user information")
	}
	if _, ok := r.s.Users[user.ID]; ok {
		return false, nil
	}
	now := r.s.tick()
	user.CreatedAt, user.UpdatedAt = now, now
	stored := *user
	r.s.Users[user.ID] = &stored

	return true, nil
}

// --- fitness profiles ---

type profileRepo struct{ s *Store }

func (r profileRepo) FindByUserID(_ context.Context, userID string) (*entity.FitnessProfile, error) {
	r.s.Lock()
	defer r.s.Unlock()

	for _, p := range r.s.Profiles {
		if p.UserID == userID {
			out := *p

			return &out, nil
		}
	}

	return nil, domainerrors.ErrProfileNotFound
}

func (r profileRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.FitnessProfile, error) {
	r.s.Lock()
	defer r.s.Unlock()

	p, ok := r.s.Profiles[id]
	if !ok {
		return nil, domainerrors.ErrProfileNotFound
	}
	out := *p

	return &out, nil
}

func (r profileRepo) Create(_ context.Context, profile *entity.FitnessProfile) error {
	r.s.Lock()
	defer r.s.Unlock()

	for _, p := range r.s.Profiles {
		if p.UserID == profile.UserID {
			return domainerrors.ErrDuplicateRecord
		}
	}
	ensureID(&profile.ID)
	now := r.s.tick()
	profile.CreatedAt, profile.UpdatedAt = now, now
	stored := *profile
	r.s.Profiles[profile.ID] = &stored

	return nil
}

func (r profileRepo) SetCurrentPlan(_ context.Context, profileID, planID uuid.UUID, expectedVersion int) error {
	r.s.Lock()
	defer r.s.Unlock()

	p, ok := r.s.Profiles[profileID]
	if !ok || p.Version != expectedVersion {
		return domainerrors.ErrVersionConflict
	}
	id := planID
	p.CurrentPlanID = &id
	p.Version++
	p.UpdatedAt = r.s.tick()

	return nil
}

// --- workout plans ---

type planRepo struct{ s *Store }

func (r planRepo) Create(_ context.Context, plan *entity.WorkoutPlan) error {
	r.s.Lock()
	defer r.s.Unlock()

	ensureID(&plan.ID)
	now := r.s.tick()
	plan.CreatedAt, plan.UpdatedAt = now, now
	stored := *plan
	r.s.Plans[plan.ID] = &stored

	return nil
}

func (r planRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.WorkoutPlan, error) {
	r.s.Lock()
	defer r.s.Unlock()

	p, ok := r.s.Plans[id]
	if !ok {
		return nil, domainerrors.ErrWorkoutPlanNotFound
	}
	out := *p
	out.Workouts = nil

	return &out, nil
}

func (r planRepo) FindByIDWithWorkouts(_ context.Context, id uuid.UUID) (*entity.WorkoutPlan, error) {
	r.s.Lock()
	defer r.s.Unlock()

	p, ok := r.s.Plans[id]
	if !ok {
		return nil, domainerrors.ErrWorkoutPlanNotFound
	}
	out := *p

	return &out, nil
}

func (r planRepo) FindLatestByProfile(_ context.Context, profileID uuid.UUID) (*entity.WorkoutPlan, error) {
	r.s.Lock()
	defer r.s.Unlock()

	var latest *entity.WorkoutPlan
	for _, p := range r.s.Plans {
		if p.ProfileID == profileID && (latest == nil || p.CreatedAt.After(latest.CreatedAt)) {
			latest = p
		}
	}
	if latest == nil {
		return nil, domainerrors.ErrWorkoutPlanNotFound
	}
	out := *latest

	return &out, nil
}

func (r planRepo) FindPublic(_ context.Context, limit int) ([]*entity.WorkoutPlan, error) {
	r.s.Lock()
	defer r.s.Unlock()

	var plans []*entity.WorkoutPlan
	for _, p := range r.s.Plans {
		if p.IsPublic && p.Status == entity.PlanStatusReady {
			out := *p
			out.Workouts = nil
			plans = append(plans, &out)
		}
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].CreatedAt.After(plans[j].CreatedAt) })
	if limit > 0 && len(plans) > limit {
		plans = plans[:limit]
	}

	return plans, nil
}

func (r planRepo) UpdateNarrative(_ context.Context, id uuid.UUID, name, description, body string) error {
	return r.update(id, func(p *entity.WorkoutPlan) {
		p.Name, p.Description, p.Body = name, description, body
	})
}

func (r planRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.PlanStatus) error {
	return r.update(id, func(p *entity.WorkoutPlan) { p.Status = status })
}

func (r planRepo) update(id uuid.UUID, apply func(*entity.WorkoutPlan)) error {
	r.s.Lock()
	defer r.s.Unlock()

	p, ok := r.s.Plans[id]
	if !ok {
		return domainerrors.ErrWorkoutPlanNotFound
	}
	apply(p)
	p.UpdatedAt = r.s.tick()

	return nil
}

func (r planRepo) CountWorkouts(_ context.Context, planID uuid.UUID) (int, error) {
	r.s.Lock()
	defer r.s.Unlock()

	if p, ok := r.s.Plans[planID]; ok {
		return len(p.Workouts), nil
	}

	return 0, nil
}

func (r planRepo) ReplaceWorkouts(_ context.Context, planID uuid.UUID, workouts []*entity.Workout) error {
	r.s.Lock()
	defer r.s.Unlock()

	p, ok := r.s.Plans[planID]
	if !ok {
		return domainerrors.ErrWorkoutPlanNotFound
	}
	for _, w := range workouts {
		ensureID(&w.ID)
		w.PlanID = planID
		for _, ex := range w.Exercises {
			ensureID(&ex.ID)
			ex.WorkoutID = w.ID
		}
	}
	p.Workouts = workouts

	return nil
}

func (r planRepo) Activate(_ context.Context, profileID, planID uuid.UUID) error {
	r.s.Lock()
	defer r.s.Unlock()

	target, ok := r.s.Plans[planID]
	if !ok || target.ProfileID != profileID {
		return domainerrors.ErrWorkoutPlanNotFound
	}
	for _, p := range r.s.Plans {
		if p.ProfileID == profileID && p.ID != planID {
			p.IsActive = false
		}
	}
	target.IsActive = true
	target.Status = entity.PlanStatusReady

	return nil
}

// --- meal plans ---

type mealPlanRepo struct{ s *Store }

func (r mealPlanRepo) Create(_ context.Context, plan *entity.MealPlan) error {
	r.s.Lock()
	defer r.s.Unlock()

	ensureID(&plan.ID)
	if _, ok := r.s.MealPlans[plan.ID]; ok {
		return domainerrors.ErrDuplicateRecord
	}
	for _, meal := range plan.Meals {
		ensureID(&meal.ID)
		meal.MealPlanID = plan.ID
		for _, recipe := range meal.Recipes {
			ensureID(&recipe.ID)
			recipe.MealID = meal.ID
		}
	}
	now := r.s.tick()
	plan.CreatedAt, plan.UpdatedAt = now, now
	stored := *plan
	r.s.MealPlans[plan.ID] = &stored

	return nil
}

func (r mealPlanRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.MealPlan, error) {
	r.s.Lock()
	defer r.s.Unlock()

	p, ok := r.s.MealPlans[id]
	if !ok {
		return nil, domainerrors.ErrMealPlanNotFound
	}
	out := *p

	return &out, nil
}

func (r mealPlanRepo) FindActiveByProfile(_ context.Context, profileID uuid.UUID) (*entity.MealPlan, error) {
	r.s.Lock()
	defer r.s.Unlock()

	for _, p := range r.s.MealPlans {
		if p.ProfileID == profileID && p.IsActive {
			out := *p

			return &out, nil
		}
	}

	return nil, domainerrors.ErrMealPlanNotFound
}

func (r mealPlanRepo) Activate(_ context.Context, profileID, mealPlanID uuid.UUID) error {
	r.s.Lock()
	defer r.s.Unlock()

	target, ok := r.s.MealPlans[mealPlanID]
	if !ok || target.ProfileID != profileID {
		return domainerrors.ErrMealPlanNotFound
	}
	for _, p := range r.s.MealPlans {
		if p.ProfileID == profileID {
			p.IsActive = p.ID == mealPlanID
		}
	}

	return nil
}

// --- nutrition catalog ---

type foodRepo struct{ s *Store }

func (r foodRepo) FindAll(_ context.Context) ([]*entity.NutritionFood, error) {
	r.s.Lock()
	defer r.s.Unlock()

	return append([]*entity.NutritionFood(nil), r.s.Foods...), nil
}

func (r foodRepo) FindByNames(_ context.Context, names []string) ([]*entity.NutritionFood, error) {
	r.s.Lock()
	defer r.s.Unlock()

	var out []*entity.NutritionFood
	for _, f := range r.s.Foods {
		for _, n := range names {
			if strings.EqualFold(f.Name, n) {
				out = append(out, f)

				break
			}
		}
	}

	return out, nil
}

// --- billing ---

type sessionRepo struct{ s *Store }

func (r sessionRepo) Create(_ context.Context, session *entity.PaymentSession) error {
	r.s.Lock()
	defer r.s.Unlock()

	for _, existing := range r.s.Sessions {
		if existing.ProviderSessionID == session.ProviderSessionID {
			return domainerrors.ErrDuplicateRecord
		}
	}
	ensureID(&session.ID)
	now := r.s.tick()
	session.CreatedAt, session.UpdatedAt = now, now
	stored := *session
	r.s.Sessions[session.ID] = &stored

	return nil
}

func (r sessionRepo) FindByProviderSessionID(_ context.Context, providerSessionID string) (*entity.PaymentSession, error) {
	r.s.Lock()
	defer r.s.Unlock()

	for _, session := range r.s.Sessions {
		if session.ProviderSessionID == providerSessionID {
			out := *session

			return &out, nil
		}
	}

	return nil, domainerrors.ErrPaymentSessionNotFound
}

func (r sessionRepo) MarkCompleted(_ context.Context, id uuid.UUID, completedAt time.Time) error {
	r.s.Lock()
	defer r.s.Unlock()

	session, ok := r.s.Sessions[id]
	if !ok {
		return domainerrors.ErrPaymentSessionNotFound
	}
	if session.Status == entity.PaymentStatusCompleted {
		return nil
	}
	at := completedAt
	session.Status = entity.PaymentStatusCompleted
	session.CompletedAt = &at

	return nil
}

type invoiceRepo struct{ s *Store }

func (r invoiceRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	r.s.Lock()
	defer r.s.Unlock()

	for _, existing := range r.s.Invoices {
		if existing.Number == invoice.Number || existing.PaymentID == invoice.PaymentID {
			return domainerrors.ErrDuplicateRecord
		}
	}
	ensureID(&invoice.ID)
	invoice.CreatedAt = r.s.tick()
	stored := *invoice
	r.s.Invoices[invoice.ID] = &stored

	return nil
}

func (r invoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	r.s.Lock()
	defer r.s.Unlock()

	invoice, ok := r.s.Invoices[id]
	if !ok {
		return nil, domainerrors.ErrInvoiceNotFound
	}
	out := *invoice

	return &out, nil
}

func (r invoiceRepo) FindByPaymentID(_ context.Context, paymentID string) (*entity.Invoice, error) {
	r.s.Lock()
	defer r.s.Unlock()

	for _, invoice := range r.s.Invoices {
		if invoice.PaymentID == paymentID {
			out := *invoice

			return &out, nil
		}
	}

	return nil, domainerrors.ErrInvoiceNotFound
}

func (r invoiceRepo) FindByUser(_ context.Context, userID string) ([]*entity.Invoice, error) {
	r.s.Lock()
	defer r.s.Unlock()

	var out []*entity.Invoice
	for _, invoice := range r.s.Invoices {
		if invoice.UserID == userID {
			item := *invoice
			item.PDF = nil
			out = append(out, &item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IssuedAt.After(out[j].IssuedAt) })

	return out, nil
}

func (r invoiceRepo) CountIssuedInYear(_ context.Context, year int) (int64, error) {
	r.s.Lock()
	defer r.s.Unlock()

	var n int64
	for _, invoice := range r.s.Invoices {
		if invoice.IssuedAt.Year() == year {
			n++
		}
	}

	return n, nil
}

func (r invoiceRepo) RecordDownload(_ context.Context, id uuid.UUID, at time.Time) error {
	r.s.Lock()
	defer r.s.Unlock()

	invoice, ok := r.s.Invoices[id]
	if !ok {
		return domainerrors.ErrInvoiceNotFound
	}
	downloaded := at
	invoice.DownloadedAt = &downloaded
	invoice.DownloadCount++

	return nil
}

// --- projects ---

type projectRepo struct{ s *Store }

func (r projectRepo) Create(_ context.Context, project *entity.Project) error {
	r.s.Lock()
	defer r.s.Unlock()

	ensureID(&project.ID)
	for _, existing := range r.s.Projects {
		if existing.ID == project.ID {
			return domainerrors.ErrDuplicateRecord
		}
	}
	now := r.s.tick()
	project.CreatedAt, project.UpdatedAt = now, now
	for _, msg := range project.Messages {
		ensureID(&msg.ID)
		msg.ProjectID = project.ID
		msg.CreatedAt = now
	}
	stored := *project
	r.s.Projects = append(r.s.Projects, &stored)

	return nil
}

func (r projectRepo) FindLatestByNameContains(_ context.Context, userID, marker string) (*entity.Project, error) {
	r.s.Lock()
	defer r.s.Unlock()

	for i := len(r.s.Projects) - 1; i >= 0; i-- {
		p := r.s.Projects[i]
		if p.UserID == userID && strings.Contains(p.Name, marker) {
			out := *p

			return &out, nil
		}
	}

	return nil, domainerrors.ErrProjectNotFound
}

func (r projectRepo) FindByUser(_ context.Context, userID string, limit int) ([]*entity.Project, error) {
	r.s.Lock()
	defer r.s.Unlock()

	var out []*entity.Project
	for i := len(r.s.Projects) - 1; i >= 0; i-- {
		p := r.s.Projects[i]
		if p.UserID != userID {
			continue
		}
		item := *p
		item.Messages = nil
		out = append(out, &item)
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out, nil
}

// --- workflow runs ---

type runRepo struct{ s *Store }

func (r runRepo) GetOrCreate(_ context.Context, workflow, runKey string) (*entity.WorkflowRun, error) {
	r.s.Lock()
	defer r.s.Unlock()

	key := workflow + "/" + runKey
	if run, ok := r.s.Runs[key]; ok {
		return cloneRun(run), nil
	}
	run := &entity.WorkflowRun{ID: uuid.New(), Workflow: workflow, RunKey: runKey, Status: entity.RunStatusRunning, CreatedAt: r.s.tick()}
	r.s.Runs[key] = cloneRun(run)

	return run, nil
}

func (r runRepo) Claim(_ context.Context, id uuid.UUID, token string, until, now time.Time) error {
	r.s.Lock()
	defer r.s.Unlock()

	for _, run := range r.s.Runs {
		if run.ID != id {
			continue
		}
		if run.ClaimToken != token && run.ClaimedUntil != nil && !run.ClaimedUntil.Before(now) {
			return domainerrors.ErrRunInProgress
		}
		run.ClaimToken = token
		run.ClaimedUntil = &until

		return nil
	}

	return domainerrors.ErrWorkflowRunNotFound
}

func (r runRepo) Save(_ context.Context, run *entity.WorkflowRun) error {
	r.s.Lock()
	defer r.s.Unlock()

	key := run.Workflow + "/" + run.RunKey
	if stored, ok := r.s.Runs[key]; ok && stored.ClaimToken != run.ClaimToken {
		return domainerrors.ErrRunInProgress
	}
	r.s.Runs[key] = cloneRun(run)

	return nil
}

// Run returns a copy of the stored run, or nil.
func (s *Store) Run(workflow, runKey string) *entity.WorkflowRun {
	s.Lock()
	defer s.Unlock()

	return cloneRun(s.Runs[workflow+"/"+runKey])
}

func cloneRun(run *entity.WorkflowRun) *entity.WorkflowRun {
	if run == nil {
		return nil
	}
	out := *run
	out.Steps = append([]entity.StepState(nil), run.Steps...)
	out.State = append([]byte(nil), run.State...)

	return &out
}
