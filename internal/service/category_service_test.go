package service

import (
	"testing"

	"tryout_backend/internal/util"
)

func TestCategoryNameUniqueIgnoringCase(t *testing.T) {
	f := newTryoutFixture(t)

	if _, err := f.categories.Create(CategoryReq{Name: strPtr("tes potensi skolastik")}); err != util.ErrCategoryNameExists {
		t.Fatalf("got %v, want ErrCategoryNameExists", err)
	}

	other, err := f.categories.Create(CategoryReq{Name: strPtr("Literasi")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.categories.Update(other.ID, CategoryReq{Name: strPtr("TES POTENSI SKOLASTIK")}); err != util.ErrCategoryNameExists {
		t.Fatalf("rename collision: got %v, want ErrCategoryNameExists", err)
	}

	// Renaming a category to its own name (any casing) is not a collision.
	if _, err := f.categories.Update(f.category.ID, CategoryReq{Name: strPtr("TES Potensi Skolastik")}); err != nil {
		t.Fatalf("self-rename: %v", err)
	}
}

func TestCategoryRequiresName(t *testing.T) {
	f := newTryoutFixture(t)

	if _, err := f.categories.Create(CategoryReq{}); err != util.ErrFieldsRequired {
		t.Fatalf("got %v, want ErrFieldsRequired", err)
	}
	if _, err := f.categories.Create(CategoryReq{Name: strPtr("   ")}); err != util.ErrFieldsRequired {
		t.Fatalf("blank name: got %v, want ErrFieldsRequired", err)
	}
}

func TestCategoryDeleteBlockedWhileChildrenExist(t *testing.T) {
	f := newTryoutFixture(t)

	if err := f.categories.Delete(f.category.ID); err != util.ErrCategoryHasChildren {
		t.Fatalf("got %v, want ErrCategoryHasChildren", err)
	}

	// Empty the category, then deletion goes through.
	if err := f.questions.Delete(f.q1.ID); err != nil {
		t.Fatalf("delete question: %v", err)
	}
	if err := f.questions.Delete(f.q2.ID); err != nil {
		t.Fatalf("delete question: %v", err)
	}
	if err := f.subCategories.Delete(f.subCategory.ID); err != nil {
		t.Fatalf("delete subcategory: %v", err)
	}
	if err := f.categories.Delete(f.category.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}

	if _, err := f.categories.Get(f.category.ID); err != util.ErrCategoryNotFound {
		t.Fatalf("got %v, want ErrCategoryNotFound", err)
	}
}

func TestSubCategoryDefaults(t *testing.T) {
	f := newTryoutFixture(t)

	created, err := f.subCategories.Create(SubCategoryReq{
		Name:       strPtr("Pengetahuan Kuantitatif"),
		CategoryID: strPtr(f.category.ID),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.TimeLimit != 60 {
		t.Fatalf("time limit = %d, want default 60", created.TimeLimit)
	}
	if !created.IsActive {
		t.Fatal("new subcategory not active")
	}
}

func TestSubCategoryRejectsUnknownParent(t *testing.T) {
	f := newTryoutFixture(t)

	_, err := f.subCategories.Create(SubCategoryReq{
		Name:       strPtr("Orphan"),
		CategoryID: strPtr("missing"),
	})
	if err != util.ErrCategoryNotFound {
		t.Fatalf("got %v, want ErrCategoryNotFound", err)
	}
}

func TestSubCategoryDeleteBlockedWhileQuestionsExist(t *testing.T) {
	f := newTryoutFixture(t)

	if err := f.subCategories.Delete(f.subCategory.ID); err != util.ErrSubCategoryHasChilds {
		t.Fatalf("got %v, want ErrSubCategoryHasChilds", err)
	}

	f.questions.Delete(f.q1.ID)
	f.questions.Delete(f.q2.ID)
	if err := f.subCategories.Delete(f.subCategory.ID); err != nil {
		t.Fatalf("delete after emptying: %v", err)
	}
}
