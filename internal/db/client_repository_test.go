package db

import (
	"path/filepath"
	"testing"

	"github.com/osscccar/webdash-admin/internal/models"
)

func newTestRepository(t *testing.T) *ClientRepository {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "webdash-repo-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return NewClientRepository(database)
}

func TestClientRepositoryPhasesRoundTrip(t *testing.T) {
	repo := newTestRepository(t)

	client := models.Client{
		ID:           "client-1",
		BusinessName: "Acme Plumbing",
		Email:        "owner@acmeplumbing.com",
		Status:       models.ClientStatusActive,
		Phases:       models.DefaultPhases(),
	}
	if err := repo.Create(&client); err != nil {
		t.Fatalf("create client: %v", err)
	}

	loaded, err := repo.FindByID("client-1")
	if err != nil {
		t.Fatalf("find client: %v", err)
	}
	if len(loaded.Phases) != 4 {
		t.Fatalf("expected 4 phases, got %d", len(loaded.Phases))
	}
	if loaded.Phases[0].Name != "Planning" || loaded.Phases[0].Status != models.PhaseStatusActive {
		t.Fatalf("unexpected first phase: %+v", loaded.Phases[0])
	}

	loaded.Phases[0].Tasks[0].Completed = true
	loaded.Phases[0].Status = models.PhaseStatusCompleted
	if err := repo.SavePhases("client-1", loaded.Phases); err != nil {
		t.Fatalf("save phases: %v", err)
	}

	reloaded, err := repo.FindByID("client-1")
	if err != nil {
		t.Fatalf("reload client: %v", err)
	}
	if reloaded.Phases[0].Status != models.PhaseStatusCompleted {
		t.Fatalf("expected persisted phase status completed, got %q", reloaded.Phases[0].Status)
	}
	if !reloaded.Phases[0].Tasks[0].Completed {
		t.Fatal("expected persisted task completion")
	}
}

func TestClientRepositoryListNewestFirst(t *testing.T) {
	repo := newTestRepository(t)

	for _, id := range []string{"a", "b", "c"} {
		client := models.Client{
			ID:           id,
			BusinessName: "Biz " + id,
			Email:        id + "@example.com",
			Status:       models.ClientStatusActive,
		}
		if err := repo.Create(&client); err != nil {
			t.Fatalf("create client %s: %v", id, err)
		}
	}

	clients, err := repo.List()
	if err != nil {
		t.Fatalf("list clients: %v", err)
	}
	if len(clients) != 3 {
		t.Fatalf("expected 3 clients, got %d", len(clients))
	}
	if clients[0].ID != "c" {
		t.Fatalf("expected newest client first, got %q", clients[0].ID)
	}
}

func TestClientRepositoryDelete(t *testing.T) {
	repo := newTestRepository(t)

	client := models.Client{ID: "gone", BusinessName: "Soon Gone", Email: "gone@example.com"}
	if err := repo.Create(&client); err != nil {
		t.Fatalf("create client: %v", err)
	}
	if err := repo.Delete("gone"); err != nil {
		t.Fatalf("delete client: %v", err)
	}
	if _, err := repo.FindByID("gone"); err == nil {
		t.Fatal("expected lookup of deleted client to fail")
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("count clients: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 clients, got %d", count)
	}
}
