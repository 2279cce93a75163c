package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ecelik/coursereg/internal/app/models"
	"github.com/ecelik/coursereg/internal/pkg/apperrors"
	"github.com/ecelik/coursereg/internal/pkg/auth"
)

func newEnrollmentFixture() (*memStore, EnrollmentService) {
	store := newMemStore()
	svc := NewEnrollmentService(
		&fakeCourseRepo{store: store},
		&fakeEnrollmentRepo{store: store},
		zerolog.Nop(),
	)
	return store, svc
}

func studentSession(u *models.User) auth.Session {
	return auth.Session{UserID: u.ID, Username: u.Username, Role: u.Role}
}

func TestListCoursesComputesEnrollmentState(t *testing.T) {
	store, svc := newEnrollmentFixture()
	teacher := store.addUser("teacher1", models.RoleTeacher)
	course := store.addCourse("CS162", "Operating Systems", teacher.ID, 2)
	s1 := store.addUser("student1", models.RoleStudent)
	s2 := store.addUser("student2", models.RoleStudent)

	ctx := context.Background()
	if err := svc.Enroll(ctx, studentSession(s1), course.ID); err != nil {
		t.Fatalf("enroll student1: %v", err)
	}

	views, err := svc.ListCourses(ctx)
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("got %d courses, want 1", len(views))
	}
	v := views[0]
	if v.EnrolledCount != 1 || v.IsFull {
		t.Errorf("after one enrollment: enrolled_count=%d is_full=%v, want 1 and false", v.EnrolledCount, v.IsFull)
	}
	if v.TeacherName != "teacher1" {
		t.Errorf("teacher_name = %q, want teacher1", v.TeacherName)
	}

	if err := svc.Enroll(ctx, studentSession(s2), course.ID); err != nil {
		t.Fatalf("enroll student2: %v", err)
	}
	views, err = svc.ListCourses(ctx)
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if views[0].EnrolledCount != 2 || !views[0].IsFull {
		t.Errorf("at capacity: enrolled_count=%d is_full=%v, want 2 and true", views[0].EnrolledCount, views[0].IsFull)
	}
}

func TestEnrollRejectsWhenCourseFull(t *testing.T) {
	store, svc := newEnrollmentFixture()
	teacher := store.addUser("teacher1", models.RoleTeacher)
	course := store.addCourse("CS101", "Intro to Programming", teacher.ID, 1)
	s1 := store.addUser("student1", models.RoleStudent)
	s2 := store.addUser("student2", models.RoleStudent)

	ctx := context.Background()
	if err := svc.Enroll(ctx, studentSession(s1), course.ID); err != nil {
		t.Fatalf("enroll into free seat: %v", err)
	}

	err := svc.Enroll(ctx, studentSession(s2), course.ID)
	if !errors.Is(err, apperrors.ErrCourseFull) {
		t.Fatalf("enroll into full course: got %v, want ErrCourseFull", err)
	}
	if store.enrolledCount(course.ID) != 1 {
		t.Errorf("enrollment count changed on rejected enroll: %d", store.enrolledCount(course.ID))
	}
}

func TestEnrollRejectsDuplicate(t *testing.T) {
	store, svc := newEnrollmentFixture()
	teacher := store.addUser("teacher1", models.RoleTeacher)
	course := store.addCourse("CS101", "Intro to Programming", teacher.ID, 10)
	student := store.addUser("student1", models.RoleStudent)

	ctx := context.Background()
	if err := svc.Enroll(ctx, studentSession(student), course.ID); err != nil {
		t.Fatalf("first enroll: %v", err)
	}
	err := svc.Enroll(ctx, studentSession(student), course.ID)
	if !errors.Is(err, apperrors.ErrAlreadyEnrolled) {
		t.Fatalf("second enroll: got %v, want ErrAlreadyEnrolled", err)
	}
}

func TestEnrollUnknownCourse(t *testing.T) {
	store, svc := newEnrollmentFixture()
	student := store.addUser("student1", models.RoleStudent)

	err := svc.Enroll(context.Background(), studentSession(student), 999)
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("got %v, want ErrCourseNotFound", err)
	}
}

func TestEnrollRequiresStudentRole(t *testing.T) {
	store, svc := newEnrollmentFixture()
	teacher := store.addUser("teacher1", models.RoleTeacher)
	course := store.addCourse("CS101", "Intro to Programming", teacher.ID, 10)

	err := svc.Enroll(context.Background(), studentSession(teacher), course.ID)
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("teacher enrolling: got %v, want ErrUnauthorized", err)
	}
}

func TestDropFreesSeatAndDiscardsGrade(t *testing.T) {
	store, svc := newEnrollmentFixture()
	teacher := store.addUser("teacher1", models.RoleTeacher)
	course := store.addCourse("CS101", "Intro to Programming", teacher.ID, 1)
	s1 := store.addUser("student1", models.RoleStudent)
	s2 := store.addUser("student2", models.RoleStudent)

	ctx := context.Background()
	if err := svc.Enroll(ctx, studentSession(s1), course.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	// Grade the enrollment, then drop. Re-enrolling must start ungraded.
	roster, err := svc.ListTeacherCourses(ctx, studentSession(teacher))
	if err != nil {
		t.Fatalf("ListTeacherCourses: %v", err)
	}
	if err := svc.SetGrade(ctx, studentSession(teacher), roster[0].Students[0].ID, 88); err != nil {
		t.Fatalf("SetGrade: %v", err)
	}

	if err := svc.Drop(ctx, studentSession(s1), course.ID); err != nil {
		t.Fatalf("Drop: %v", err)
	}

	// The freed seat is usable again.
	if err := svc.Enroll(ctx, studentSession(s2), course.ID); err != nil {
		t.Fatalf("enroll after drop: %v", err)
	}

	if err := svc.Enroll(ctx, studentSession(s1), course.ID); !errors.Is(err, apperrors.ErrCourseFull) {
		t.Fatalf("re-enroll into refilled course: got %v, want ErrCourseFull", err)
	}

	mine, err := svc.ListStudentCourses(ctx, studentSession(s2))
	if err != nil {
		t.Fatalf("ListStudentCourses: %v", err)
	}
	if len(mine) != 1 || mine[0].Grade != nil {
		t.Errorf("fresh enrollment should be ungraded, got %+v", mine)
	}
}

func TestDropWithoutEnrollment(t *testing.T) {
	store, svc := newEnrollmentFixture()
	teacher := store.addUser("teacher1", models.RoleTeacher)
	course := store.addCourse("CS101", "Intro to Programming", teacher.ID, 10)
	student := store.addUser("student1", models.RoleStudent)

	err := svc.Drop(context.Background(), studentSession(student), course.ID)
	if !errors.Is(err, apperrors.ErrNotEnrolled) {
		t.Fatalf("got %v, want ErrNotEnrolled", err)
	}
}

func TestListStudentCoursesOnlyMine(t *testing.T) {
	store, svc := newEnrollmentFixture()
	teacher := store.addUser("teacher1", models.RoleTeacher)
	cs := store.addCourse("CS101", "Intro to Programming", teacher.ID, 10)
	math := store.addCourse("MATH51", "Linear Algebra", teacher.ID, 10)
	s1 := store.addUser("student1", models.RoleStudent)
	s2 := store.addUser("student2", models.RoleStudent)

	ctx := context.Background()
	if err := svc.Enroll(ctx, studentSession(s1), cs.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if err := svc.Enroll(ctx, studentSession(s2), math.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	mine, err := svc.ListStudentCourses(ctx, studentSession(s1))
	if err != nil {
		t.Fatalf("ListStudentCourses: %v", err)
	}
	if len(mine) != 1 || mine[0].Course.CourseCode != "CS101" {
		t.Fatalf("got %+v, want only CS101", mine)
	}
}

func TestListTeacherCoursesFiltersByTeacher(t *testing.T) {
	store, svc := newEnrollmentFixture()
	t1 := store.addUser("teacher1", models.RoleTeacher)
	t2 := store.addUser("teacher2", models.RoleTeacher)
	cs := store.addCourse("CS101", "Intro to Programming", t1.ID, 10)
	store.addCourse("CS162", "Operating Systems", t2.ID, 10)
	student := store.addUser("student1", models.RoleStudent)

	ctx := context.Background()
	if err := svc.Enroll(ctx, studentSession(student), cs.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	courses, err := svc.ListTeacherCourses(ctx, studentSession(t1))
	if err != nil {
		t.Fatalf("ListTeacherCourses: %v", err)
	}
	if len(courses) != 1 || courses[0].CourseCode != "CS101" {
		t.Fatalf("got %+v, want only CS101", courses)
	}
	if len(courses[0].Students) != 1 || courses[0].Students[0].StudentName != "student1" {
		t.Fatalf("roster = %+v, want student1", courses[0].Students)
	}
}

func TestSetGradeOwnCourse(t *testing.T) {
	store, svc := newEnrollmentFixture()
	teacher := store.addUser("teacher1", models.RoleTeacher)
	course := store.addCourse("CS101", "Intro to Programming", teacher.ID, 10)
	student := store.addUser("student1", models.RoleStudent)

	ctx := context.Background()
	if err := svc.Enroll(ctx, studentSession(student), course.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	roster, err := svc.ListTeacherCourses(ctx, studentSession(teacher))
	if err != nil {
		t.Fatalf("ListTeacherCourses: %v", err)
	}
	enrollmentID := roster[0].Students[0].ID

	if err := svc.SetGrade(ctx, studentSession(teacher), enrollmentID, 95); err != nil {
		t.Fatalf("SetGrade: %v", err)
	}

	mine, err := svc.ListStudentCourses(ctx, studentSession(student))
	if err != nil {
		t.Fatalf("ListStudentCourses: %v", err)
	}
	if mine[0].Grade == nil || *mine[0].Grade != 95 {
		t.Fatalf("grade = %v, want 95", mine[0].Grade)
	}

	// Overwriting is allowed.
	if err := svc.SetGrade(ctx, studentSession(teacher), enrollmentID, 70); err != nil {
		t.Fatalf("SetGrade overwrite: %v", err)
	}
	mine, _ = svc.ListStudentCourses(ctx, studentSession(student))
	if *mine[0].Grade != 70 {
		t.Fatalf("grade after overwrite = %d, want 70", *mine[0].Grade)
	}
}

func TestSetGradeOtherTeachersCourse(t *testing.T) {
	store, svc := newEnrollmentFixture()
	t1 := store.addUser("teacher1", models.RoleTeacher)
	t2 := store.addUser("teacher2", models.RoleTeacher)
	course := store.addCourse("CS101", "Intro to Programming", t1.ID, 10)
	student := store.addUser("student1", models.RoleStudent)

	ctx := context.Background()
	if err := svc.Enroll(ctx, studentSession(student), course.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	roster, err := svc.ListTeacherCourses(ctx, studentSession(t1))
	if err != nil {
		t.Fatalf("ListTeacherCourses: %v", err)
	}
	enrollmentID := roster[0].Students[0].ID

	err = svc.SetGrade(ctx, studentSession(t2), enrollmentID, 100)
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}

	// Denied attempt must not change the stored grade.
	mine, _ := svc.ListStudentCourses(ctx, studentSession(student))
	if mine[0].Grade != nil {
		t.Fatalf("grade = %v after denied attempt, want nil", mine[0].Grade)
	}
}

func TestSetGradeUnknownEnrollment(t *testing.T) {
	store, svc := newEnrollmentFixture()
	teacher := store.addUser("teacher1", models.RoleTeacher)

	err := svc.SetGrade(context.Background(), studentSession(teacher), 999, 50)
	if !errors.Is(err, apperrors.ErrEnrollmentNotFound) {
		t.Fatalf("got %v, want ErrEnrollmentNotFound", err)
	}
}

func TestRoleChecksOnReads(t *testing.T) {
	store, svc := newEnrollmentFixture()
	student := store.addUser("student1", models.RoleStudent)
	teacher := store.addUser("teacher1", models.RoleTeacher)

	ctx := context.Background()
	if _, err := svc.ListStudentCourses(ctx, studentSession(teacher)); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Errorf("teacher listing student courses: got %v, want ErrUnauthorized", err)
	}
	if _, err := svc.ListTeacherCourses(ctx, studentSession(student)); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Errorf("student listing teacher courses: got %v, want ErrUnauthorized", err)
	}
	if err := svc.SetGrade(ctx, studentSession(student), 1, 50); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Errorf("student grading: got %v, want ErrUnauthorized", err)
	}
}
