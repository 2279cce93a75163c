package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ecelik/coursereg/internal/app/models"
	"github.com/ecelik/coursereg/internal/app/models/dto"
	"github.com/ecelik/coursereg/internal/pkg/apperrors"
)

func newAdminFixture() (*memStore, AdminService) {
	store := newMemStore()
	svc := NewAdminService(
		&fakeUserRepo{store: store},
		&fakeCourseRepo{store: store},
		&fakeEnrollmentRepo{store: store},
		fakeVerifier{},
		zerolog.Nop(),
	)
	return store, svc
}

func intPtr(v int) *int { return &v }

func TestAdminOperationsRequireAdminRole(t *testing.T) {
	store, svc := newAdminFixture()
	student := store.addUser("student1", models.RoleStudent)

	ctx := context.Background()
	if _, err := svc.ListUsers(ctx, studentSession(student)); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Errorf("ListUsers as student: got %v, want ErrUnauthorized", err)
	}
	if _, err := svc.CreateUser(ctx, studentSession(student), dto.CreateUserRequest{
		Username: "x", Password: "y", UserType: intPtr(0),
	}); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Errorf("CreateUser as student: got %v, want ErrUnauthorized", err)
	}
	if err := svc.DeleteEnrollment(ctx, studentSession(student), 1); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Errorf("DeleteEnrollment as student: got %v, want ErrUnauthorized", err)
	}
}

func TestCreateUserHashesPassword(t *testing.T) {
	store, svc := newAdminFixture()
	admin := store.addUser("admin", models.RoleAdmin)

	user, err := svc.CreateUser(context.Background(), studentSession(admin), dto.CreateUserRequest{
		Username: "teacher9",
		Password: "plaintext",
		UserType: intPtr(int(models.RoleTeacher)),
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Password == "plaintext" {
		t.Error("password stored in plaintext")
	}
	if user.Role != models.RoleTeacher {
		t.Errorf("role = %v, want teacher", user.Role)
	}
	if store.users[user.ID] == nil {
		t.Error("user not persisted")
	}
}

func TestCreateUserRejectsInvalidRole(t *testing.T) {
	store, svc := newAdminFixture()
	admin := store.addUser("admin", models.RoleAdmin)

	_, err := svc.CreateUser(context.Background(), studentSession(admin), dto.CreateUserRequest{
		Username: "x", Password: "y", UserType: intPtr(7),
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("got %v, want ErrValidationFailed", err)
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	store, svc := newAdminFixture()
	admin := store.addUser("admin", models.RoleAdmin)
	store.addUser("student1", models.RoleStudent)

	_, err := svc.CreateUser(context.Background(), studentSession(admin), dto.CreateUserRequest{
		Username: "student1", Password: "y", UserType: intPtr(0),
	})
	if !errors.Is(err, apperrors.ErrUsernameTaken) {
		t.Fatalf("got %v, want ErrUsernameTaken", err)
	}
}

func TestDeleteUserGuards(t *testing.T) {
	store, svc := newAdminFixture()
	admin := store.addUser("admin", models.RoleAdmin)
	teacher := store.addUser("teacher1", models.RoleTeacher)
	store.addCourse("CS101", "Intro to Programming", teacher.ID, 10)

	ctx := context.Background()
	if err := svc.DeleteUser(ctx, studentSession(admin), admin.ID); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("self-delete: got %v, want ErrValidationFailed", err)
	}
	if err := svc.DeleteUser(ctx, studentSession(admin), teacher.ID); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("deleting assigned teacher: got %v, want ErrValidationFailed", err)
	}
	if err := svc.DeleteUser(ctx, studentSession(admin), 999); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("deleting unknown user: got %v, want ErrUserNotFound", err)
	}
}

func TestCreateCourseValidation(t *testing.T) {
	store, svc := newAdminFixture()
	admin := store.addUser("admin", models.RoleAdmin)
	teacher := store.addUser("teacher1", models.RoleTeacher)
	student := store.addUser("student1", models.RoleStudent)

	ctx := context.Background()
	sess := studentSession(admin)

	if _, err := svc.CreateCourse(ctx, sess, dto.CourseRequest{
		CourseCode: "CS101", CourseName: "Intro", TeacherID: teacher.ID, Capacity: intPtr(-1),
	}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("negative capacity: got %v, want ErrValidationFailed", err)
	}

	if _, err := svc.CreateCourse(ctx, sess, dto.CourseRequest{
		CourseCode: "CS101", CourseName: "Intro", TeacherID: student.ID, Capacity: intPtr(10),
	}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("non-teacher assignee: got %v, want ErrValidationFailed", err)
	}

	course, err := svc.CreateCourse(ctx, sess, dto.CourseRequest{
		CourseCode: "CS101", CourseName: "Intro", TeacherID: teacher.ID, Time: "MWF 10:00-10:50", Capacity: intPtr(30),
	})
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}
	if course.TeacherName != "teacher1" {
		t.Errorf("teacher name = %q, want teacher1", course.TeacherName)
	}

	if _, err := svc.CreateCourse(ctx, sess, dto.CourseRequest{
		CourseCode: "CS101", CourseName: "Other", TeacherID: teacher.ID, Capacity: intPtr(5),
	}); !errors.Is(err, apperrors.ErrCourseCodeExists) {
		t.Errorf("duplicate code: got %v, want ErrCourseCodeExists", err)
	}
}

func TestUpdateCourseShrinkCapacityKeepsEnrollments(t *testing.T) {
	store, svc := newAdminFixture()
	admin := store.addUser("admin", models.RoleAdmin)
	teacher := store.addUser("teacher1", models.RoleTeacher)
	course := store.addCourse("CS101", "Intro to Programming", teacher.ID, 10)
	s1 := store.addUser("student1", models.RoleStudent)
	s2 := store.addUser("student2", models.RoleStudent)

	enrollRepo := &fakeEnrollmentRepo{store: store}
	ctx := context.Background()
	if err := enrollRepo.Enroll(ctx, s1.ID, course.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if err := enrollRepo.Enroll(ctx, s2.ID, course.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	err := svc.UpdateCourse(ctx, studentSession(admin), course.ID, dto.CourseRequest{
		CourseCode: "CS101", CourseName: "Intro to Programming", TeacherID: teacher.ID, Capacity: intPtr(1),
	})
	if err != nil {
		t.Fatalf("UpdateCourse: %v", err)
	}
	if store.enrolledCount(course.ID) != 2 {
		t.Errorf("enrollments after shrink = %d, want 2 kept", store.enrolledCount(course.ID))
	}

	// The overfull course admits nobody new.
	s3 := store.addUser("student3", models.RoleStudent)
	if err := enrollRepo.Enroll(ctx, s3.ID, course.ID); !errors.Is(err, apperrors.ErrCourseFull) {
		t.Errorf("enroll into shrunk course: got %v, want ErrCourseFull", err)
	}
}

func TestDeleteEnrollmentForceDrop(t *testing.T) {
	store, svc := newAdminFixture()
	admin := store.addUser("admin", models.RoleAdmin)
	teacher := store.addUser("teacher1", models.RoleTeacher)
	course := store.addCourse("CS101", "Intro to Programming", teacher.ID, 10)
	student := store.addUser("student1", models.RoleStudent)

	enrollRepo := &fakeEnrollmentRepo{store: store}
	ctx := context.Background()
	if err := enrollRepo.Enroll(ctx, student.ID, course.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	enrollments, err := svc.ListEnrollments(ctx, studentSession(admin))
	if err != nil {
		t.Fatalf("ListEnrollments: %v", err)
	}
	if len(enrollments) != 1 || enrollments[0].StudentName != "student1" || enrollments[0].CourseCode != "CS101" {
		t.Fatalf("enrollments = %+v", enrollments)
	}

	if err := svc.DeleteEnrollment(ctx, studentSession(admin), enrollments[0].ID); err != nil {
		t.Fatalf("DeleteEnrollment: %v", err)
	}
	if store.enrolledCount(course.ID) != 0 {
		t.Error("enrollment not removed")
	}

	if err := svc.DeleteEnrollment(ctx, studentSession(admin), enrollments[0].ID); !errors.Is(err, apperrors.ErrEnrollmentNotFound) {
		t.Errorf("second delete: got %v, want ErrEnrollmentNotFound", err)
	}
}

func TestUpdateUserPartialFields(t *testing.T) {
	store, svc := newAdminFixture()
	admin := store.addUser("admin", models.RoleAdmin)
	user := store.addUser("student1", models.RoleStudent)
	originalPassword := user.Password

	ctx := context.Background()
	err := svc.UpdateUser(ctx, studentSession(admin), user.ID, dto.UpdateUserRequest{
		UserType: intPtr(int(models.RoleTeacher)),
	})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}

	updated := store.users[user.ID]
	if updated.Role != models.RoleTeacher {
		t.Errorf("role = %v, want teacher", updated.Role)
	}
	if updated.Username != "student1" {
		t.Errorf("username changed unexpectedly: %q", updated.Username)
	}
	if updated.Password != originalPassword {
		t.Errorf("password changed unexpectedly")
	}
}
