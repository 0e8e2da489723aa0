package clients

import (
	"context"
	"errors"
	"testing"
	"time"

	"farm-records/internal/domain/errs"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Client
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Client{}}
}

func (r *testRepo) Create(ctx context.Context, c Client) error {
	for _, other := range r.byID {
		if c.Cedula != "" && other.Cedula == c.Cedula {
			return errs.Conflict(errs.EntityClient, "cedula")
		}
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) Update(ctx context.Context, c Client) error {
	if _, ok := r.byID[c.ID]; !ok {
		return errs.NotFound(errs.EntityClient)
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errs.NotFound(errs.EntityClient)
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Client, error) {
	c, ok := r.byID[id]
	if !ok {
		return Client{}, errs.NotFound(errs.EntityClient)
	}
	return c, nil
}

func (r *testRepo) GetByCedula(ctx context.Context, cedula string) (Client, error) {
	for _, c := range r.byID {
		if c.Cedula == cedula {
			return c, nil
		}
	}
	return Client{}, errs.NotFound(errs.EntityClient)
}

func (r *testRepo) List(ctx context.Context) ([]Client, error) {
	out := make([]Client, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *testRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

type fakeGuard struct {
	dependents map[string]int
}

func (g fakeGuard) GuardDeleteClient(ctx context.Context, id string) error {
	if n := g.dependents[id]; n > 0 {
		return errs.HasDependents(errs.EntityClient, n)
	}
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_ReconcilesAndStamps(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	c, err := svc.Create(context.Background(), CreateInput{Cedula: "0102", DisplayName: "Ana Lopez", Email: "ANA@x.com"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if c.ID == "" || c.CreatedAt != now {
		t.Fatalf("expected id and CreatedAt=now, got %#v", c)
	}
	if c.GivenNames != "Ana" || c.Surnames != "Lopez" || c.Email != "ana@x.com" {
		t.Fatalf("expected canonical shape, got %#v", c)
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(newTestRepo(), nil)

	_, err := svc.Create(context.Background(), CreateInput{Phone: "555"})
	if !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("expected validation error without identity, got %v", err)
	}

	_, err = svc.Create(context.Background(), CreateInput{Cedula: "1", Email: "not-an-email"})
	if !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("expected validation error for email, got %v", err)
	}
}

func TestService_Create_DuplicateCedula(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{Cedula: "0102", DisplayName: "Ana"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(ctx, CreateInput{Cedula: " 0102 ", DisplayName: "Otra"})
	if !errors.Is(err, errs.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestService_Update_RederivesName(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	ctx := context.Background()

	c, _ := svc.Create(ctx, CreateInput{GivenNames: "Ana", Surnames: "Lopez"})

	newName := "Maria Jose Perez"
	updated, err := svc.Update(ctx, c.ID, UpdateInput{DisplayName: &newName})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.GivenNames != "Maria" || updated.Surnames != "Jose Perez" {
		t.Fatalf("expected parts re-derived, got %q / %q", updated.GivenNames, updated.Surnames)
	}

	sur := "Gomez"
	updated, err = svc.Update(ctx, c.ID, UpdateInput{Surnames: &sur})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.DisplayName != "Maria Gomez" {
		t.Fatalf("expected display re-synthesized, got %q", updated.DisplayName)
	}

	empty := ""
	if _, err := svc.Update(ctx, c.ID, UpdateInput{Email: &empty}); err != nil {
		t.Fatalf("clearing email must be allowed: %v", err)
	}

	if _, err := svc.Update(ctx, "missing", UpdateInput{}); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestService_Delete_BlockedByDependents(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	seed := NewService(repo, nil)
	withPigs, _ := seed.Create(ctx, CreateInput{Cedula: "1", DisplayName: "Con Cerdos"})
	noPigs, _ := seed.Create(ctx, CreateInput{Cedula: "2", DisplayName: "Sin Cerdos"})

	svc := NewService(repo, fakeGuard{dependents: map[string]int{withPigs.ID: 2}})

	err := svc.Delete(ctx, withPigs.ID)
	if !errors.Is(err, errs.ErrHasDependents) {
		t.Fatalf("expected has-dependents, got %v", err)
	}
	if _, err := svc.GetByID(ctx, withPigs.ID); err != nil {
		t.Fatalf("client must still exist: %v", err)
	}

	if err := svc.Delete(ctx, noPigs.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := svc.GetByID(ctx, noPigs.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("deleted client must be unresolvable, got %v", err)
	}
}
