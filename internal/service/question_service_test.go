package service

import (
	"testing"

	"tryout_backend/internal/util"
)

func (f *tryoutFixture) questionCount(t *testing.T, subCategoryID string) int {
	t.Helper()
	subCategory, err := f.subCategories.Get(subCategoryID)
	if err != nil {
		t.Fatalf("get subcategory: %v", err)
	}
	return subCategory.QuestionCount
}

func TestQuestionCountFollowsWrites(t *testing.T) {
	f := newTryoutFixture(t)

	// Fixture seeded two questions.
	if n := f.questionCount(t, f.subCategory.ID); n != 2 {
		t.Fatalf("count after seed = %d, want 2", n)
	}

	q3 := f.mustCreateQuestion(t, f.subCategory.ID, "C")
	if n := f.questionCount(t, f.subCategory.ID); n != 3 {
		t.Fatalf("count after create = %d, want 3", n)
	}

	if err := f.questions.Delete(q3.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n := f.questionCount(t, f.subCategory.ID); n != 2 {
		t.Fatalf("count after delete = %d, want 2", n)
	}
}

func TestQuestionMoveAdjustsBothCounts(t *testing.T) {
	f := newTryoutFixture(t)

	other, err := f.subCategories.Create(SubCategoryReq{
		Name:       strPtr("Penalaran Matematika"),
		CategoryID: strPtr(f.category.ID),
	})
	if err != nil {
		t.Fatalf("create subcategory: %v", err)
	}

	if _, err := f.questions.Update(f.q1.ID, QuestionUpdateReq{SubCategoryID: strPtr(other.ID)}); err != nil {
		t.Fatalf("move: %v", err)
	}

	if n := f.questionCount(t, f.subCategory.ID); n != 1 {
		t.Fatalf("source count = %d, want 1", n)
	}
	if n := f.questionCount(t, other.ID); n != 1 {
		t.Fatalf("target count = %d, want 1", n)
	}
}

func TestBulkCreateAdjustsCounts(t *testing.T) {
	f := newTryoutFixture(t)

	reqs := make([]QuestionReq, 0, 3)
	for i := 0; i < 3; i++ {
		reqs = append(reqs, QuestionReq{
			Text:          "Soal tambahan",
			OptionA:       "a",
			OptionB:       "b",
			OptionC:       "c",
			OptionD:       "d",
			OptionE:       "e",
			CorrectAnswer: "D",
			SubCategoryID: f.subCategory.ID,
		})
	}

	created, err := f.questions.BulkCreate(reqs)
	if err != nil {
		t.Fatalf("bulk create: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("created = %d, want 3", len(created))
	}
	if n := f.questionCount(t, f.subCategory.ID); n != 5 {
		t.Fatalf("count after bulk = %d, want 5", n)
	}
}

func TestBulkCreateRejectsBadAnswerKey(t *testing.T) {
	f := newTryoutFixture(t)

	_, err := f.questions.BulkCreate([]QuestionReq{{
		Text:          "x",
		OptionA:       "a",
		OptionB:       "b",
		OptionC:       "c",
		OptionD:       "d",
		OptionE:       "e",
		CorrectAnswer: "Z",
		SubCategoryID: f.subCategory.ID,
	}})
	if err != util.ErrInvalidAnswerKey {
		t.Fatalf("got %v, want ErrInvalidAnswerKey", err)
	}
	if _, err := f.questions.BulkCreate(nil); err != util.ErrFieldsRequired {
		t.Fatalf("empty batch: got %v, want ErrFieldsRequired", err)
	}
}

func TestListForTestStripsAnswerKey(t *testing.T) {
	f := newTryoutFixture(t)

	stripped, err := f.questions.ListForTest(f.subCategory.ID)
	if err != nil {
		t.Fatalf("list for test: %v", err)
	}
	if len(stripped) != 2 {
		t.Fatalf("questions = %d, want 2", len(stripped))
	}
	for _, q := range stripped {
		if q.Text == "" || q.OptionA == "" {
			t.Fatalf("question content missing: %+v", q)
		}
	}

	empty, _ := f.subCategories.Create(SubCategoryReq{
		Name:       strPtr("Kosong"),
		CategoryID: strPtr(f.category.ID),
	})
	if _, err := f.questions.ListForTest(empty.ID); err != util.ErrNoQuestions {
		t.Fatalf("empty set: got %v, want ErrNoQuestions", err)
	}
}

func TestInactiveQuestionsExcludedFromTests(t *testing.T) {
	f := newTryoutFixture(t)

	inactive := false
	if _, err := f.questions.Update(f.q2.ID, QuestionUpdateReq{IsActive: &inactive}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	stripped, err := f.questions.ListForTest(f.subCategory.ID)
	if err != nil {
		t.Fatalf("list for test: %v", err)
	}
	if len(stripped) != 1 {
		t.Fatalf("questions = %d, want 1 after deactivation", len(stripped))
	}

	// A new session is likewise built from active questions only.
	result, err := f.sessions.Start(f.student.ID, f.subCategory.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(result.Questions) != 1 {
		t.Fatalf("session questions = %d, want 1", len(result.Questions))
	}
}

func TestQuestionCreateValidates(t *testing.T) {
	f := newTryoutFixture(t)

	req := QuestionReq{
		Text:          "x",
		OptionA:       "a",
		OptionB:       "b",
		OptionC:       "c",
		OptionD:       "d",
		OptionE:       "e",
		CorrectAnswer: "X",
		SubCategoryID: f.subCategory.ID,
	}
	if _, err := f.questions.Create(req); err != util.ErrInvalidAnswerKey {
		t.Fatalf("bad key: got %v, want ErrInvalidAnswerKey", err)
	}

	req.CorrectAnswer = "A"
	req.SubCategoryID = "missing"
	if _, err := f.questions.Create(req); err != util.ErrSubCategoryNotFound {
		t.Fatalf("bad parent: got %v, want ErrSubCategoryNotFound", err)
	}
}
