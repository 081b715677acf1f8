package repositories

import (
	"errors"
	"testing"

	"prepmate/interview/internal/models"
	"prepmate/interview/internal/testhelpers"
)

func TestSessionCreateAndGetByID(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &SessionRepository{DB: db}

	session := &models.InterviewSession{UserID: 1, Topic: "Go", Difficulty: models.DifficultyEasy, Status: models.StatusOngoing}
	if err := repo.Create(session); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if session.ID == 0 {
		t.Fatalf("expected assigned session ID")
	}

	got, err := repo.GetByID(session.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Topic != "Go" || got.Status != models.StatusOngoing {
		t.Fatalf("unexpected session: %+v", got)
	}
}

func TestSessionGetByIDNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &SessionRepository{DB: db}

	if _, err := repo.GetByID(9999); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionQuestionsPreloadedInOrder(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	sessions := &SessionRepository{DB: db}
	questions := &QuestionRepository{DB: db}

	session := &models.InterviewSession{UserID: 1, Topic: "Go", Difficulty: models.DifficultyEasy, Status: models.StatusOngoing}
	if err := sessions.Create(session); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	for _, text := range []string{"first", "second", "third"} {
		q := &models.Question{SessionID: &session.ID, QuestionText: text, GeneratedBy: models.OriginAI, Topic: "Go", Difficulty: models.DifficultyEasy}
		if err := questions.Create(q); err != nil {
			t.Fatalf("question Create returned error: %v", err)
		}
	}

	got, err := sessions.GetByID(session.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if len(got.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(got.Questions))
	}
	for i, want := range []string{"first", "second", "third"} {
		if got.Questions[i].QuestionText != want {
			t.Fatalf("question %d: expected %q, got %q", i, want, got.Questions[i].QuestionText)
		}
	}
}

func TestSessionCompleteIsExactlyOnce(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &SessionRepository{DB: db}

	session := &models.InterviewSession{UserID: 1, Topic: "Go", Difficulty: models.DifficultyEasy, Status: models.StatusOngoing}
	if err := repo.Create(session); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := repo.Complete(session.ID); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	got, err := repo.GetByID(session.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Status != models.StatusCompleted {
		t.Fatalf("expected completed status, got %q", got.Status)
	}

	// Second transition is a no-op, not an error.
	if err := repo.Complete(session.ID); err != nil {
		t.Fatalf("repeated Complete returned error: %v", err)
	}
	got, err = repo.GetByID(session.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Status != models.StatusCompleted {
		t.Fatalf("expected status to remain completed, got %q", got.Status)
	}
}

func TestSessionListByUser(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &SessionRepository{DB: db}

	for _, userID := range []uint{1, 1, 2} {
		session := &models.InterviewSession{UserID: userID, Topic: "Go", Difficulty: models.DifficultyEasy, Status: models.StatusOngoing}
		if err := repo.Create(session); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	mine, err := repo.ListByUser(1)
	if err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 sessions for user 1, got %d", len(mine))
	}
	// Newest first.
	if mine[0].ID < mine[1].ID {
		t.Fatalf("expected newest session first, got IDs %d, %d", mine[0].ID, mine[1].ID)
	}
}

func TestSessionCountCompletedByUser(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &SessionRepository{DB: db}

	completed := &models.InterviewSession{UserID: 1, Topic: "Go", Difficulty: models.DifficultyEasy, Status: models.StatusOngoing}
	ongoing := &models.InterviewSession{UserID: 1, Topic: "SQL", Difficulty: models.DifficultyMedium, Status: models.StatusOngoing}
	for _, s := range []*models.InterviewSession{completed, ongoing} {
		if err := repo.Create(s); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}
	if err := repo.Complete(completed.ID); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	count, err := repo.CountCompletedByUser(1)
	if err != nil {
		t.Fatalf("CountCompletedByUser returned error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 completed session, got %d", count)
	}
}
