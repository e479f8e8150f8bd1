package service

import (
	"testing"

	"tryout_backend/internal/util"
)

func TestRegisterRequiresEveryField(t *testing.T) {
	f := newTryoutFixture(t)

	_, err := f.students.Register(StudentReq{
		Name:   "Siti",
		Class:  "12 IPS 2",
		School: "SMAN 3",
		// targetUniversity, phone, email missing
	})
	if err != util.ErrFieldsRequired {
		t.Fatalf("got %v, want ErrFieldsRequired", err)
	}
}

func TestRegisterNormalizesEmail(t *testing.T) {
	f := newTryoutFixture(t)

	student, err := f.students.Register(StudentReq{
		Name:             "  Siti Rahma ",
		Class:            "12 IPS 2",
		School:           "SMAN 3 Jakarta",
		TargetUniversity: "UI",
		Phone:            "0812000111",
		Email:            "  SITI@Example.COM ",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if student.Email != "siti@example.com" {
		t.Fatalf("email = %q, want lowercased and trimmed", student.Email)
	}
	if student.Name != "Siti Rahma" {
		t.Fatalf("name = %q, want trimmed", student.Name)
	}
}

func TestStudentDetailIncludesSessionHistory(t *testing.T) {
	f := newTryoutFixture(t)

	if _, err := f.sessions.Start(f.student.ID, f.subCategory.ID); err != nil {
		t.Fatalf("start: %v", err)
	}

	detail, err := f.students.Get(f.student.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(detail.TestSessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(detail.TestSessions))
	}

	if _, err := f.students.Get("missing"); err != util.ErrStudentNotFound {
		t.Fatalf("got %v, want ErrStudentNotFound", err)
	}
}

func TestStudentStatsGroupsBySchoolAndUniversity(t *testing.T) {
	f := newTryoutFixture(t)

	f.students.Register(StudentReq{
		Name: "Andi", Class: "12", School: "SMAN 1 Bandung",
		TargetUniversity: "UGM", Phone: "08", Email: "andi@example.com",
	})
	f.students.Register(StudentReq{
		Name: "Citra", Class: "12", School: "SMAN 5 Surabaya",
		TargetUniversity: "ITB", Phone: "08", Email: "citra@example.com",
	})

	stats, err := f.students.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalStudents != 3 {
		t.Fatalf("total students = %d, want 3", stats.TotalStudents)
	}

	bySchool := make(map[string]int64)
	for _, g := range stats.BySchool {
		bySchool[g.Key] = g.Count
	}
	if bySchool["SMAN 1 Bandung"] != 2 {
		t.Fatalf("school grouping = %v", bySchool)
	}

	byUniversity := make(map[string]int64)
	for _, g := range stats.ByUniversity {
		byUniversity[g.Key] = g.Count
	}
	if byUniversity["ITB"] != 2 || byUniversity["UGM"] != 1 {
		t.Fatalf("university grouping = %v", byUniversity)
	}
}

func TestStudentUpdateLeavesBlankFieldsAlone(t *testing.T) {
	f := newTryoutFixture(t)

	updated, err := f.students.Update(f.student.ID, StudentReq{School: "SMAN 2 Bandung"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.School != "SMAN 2 Bandung" {
		t.Fatalf("school = %q", updated.School)
	}
	if updated.Name != f.student.Name || updated.Email != f.student.Email {
		t.Fatal("unrelated fields changed")
	}
}

func TestStudentDelete(t *testing.T) {
	f := newTryoutFixture(t)

	if err := f.students.Delete(f.student.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := f.students.Delete(f.student.ID); err != util.ErrStudentNotFound {
		t.Fatalf("got %v, want ErrStudentNotFound", err)
	}
}
