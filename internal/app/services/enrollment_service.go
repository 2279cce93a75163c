package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ecelik/coursereg/internal/app/models"
	"github.com/ecelik/coursereg/internal/app/models/dto"
	"github.com/ecelik/coursereg/internal/app/repositories"
	"github.com/ecelik/coursereg/internal/pkg/apperrors"
	"github.com/ecelik/coursereg/internal/pkg/auth"
)

// EnrollmentService enforces the business rules for enrollment state changes
// and exposes role-scoped reads. Checks run in a fixed order: role, then
// resource existence, then ownership or uniqueness. Authentication itself is
// established before the service is called; the session is an explicit
// argument.
type EnrollmentService interface {
	ListCourses(ctx context.Context) ([]dto.CourseView, error)
	ListStudentCourses(ctx context.Context, sess auth.Session) ([]dto.StudentCourse, error)
	Enroll(ctx context.Context, sess auth.Session, courseID int64) error
	Drop(ctx context.Context, sess auth.Session, courseID int64) error
	ListTeacherCourses(ctx context.Context, sess auth.Session) ([]dto.TeacherCourse, error)
	SetGrade(ctx context.Context, sess auth.Session, enrollmentID int64, grade int) error
}

// enrollmentServiceImpl implements the EnrollmentService interface
type enrollmentServiceImpl struct {
	courseRepo     repositories.ICourseRepository
	enrollmentRepo repositories.IEnrollmentRepository
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(
	courseRepo repositories.ICourseRepository,
	enrollmentRepo repositories.IEnrollmentRepository,
	logger zerolog.Logger,
) EnrollmentService {
	return &enrollmentServiceImpl{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

func requireRole(sess auth.Session, role models.Role) error {
	if sess.Role != role {
		return apperrors.ErrUnauthorized
	}
	return nil
}

// ListCourses returns the full catalog with computed enrollment state. No
// authentication is required.
func (s *enrollmentServiceImpl) ListCourses(ctx context.Context) ([]dto.CourseView, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	views := make([]dto.CourseView, 0, len(courses))
	for _, c := range courses {
		views = append(views, dto.NewCourseView(c))
	}
	return views, nil
}

// ListStudentCourses returns the caller's enrollments joined with their
// courses.
func (s *enrollmentServiceImpl) ListStudentCourses(ctx context.Context, sess auth.Session) ([]dto.StudentCourse, error) {
	if err := requireRole(sess, models.RoleStudent); err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentRepo.ListByStudent(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student enrollments: %w", err)
	}

	courses := make([]dto.StudentCourse, 0, len(enrollments))
	for _, e := range enrollments {
		courses = append(courses, dto.StudentCourse{
			Course: dto.NewCourseView(e.Course),
			Grade:  e.Grade,
		})
	}
	return courses, nil
}

// Enroll creates an enrollment for the caller. The capacity and uniqueness
// checks happen atomically in the repository; this layer only orders the
// role check first.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, sess auth.Session, courseID int64) error {
	if err := requireRole(sess, models.RoleStudent); err != nil {
		return err
	}

	if err := s.enrollmentRepo.Enroll(ctx, sess.UserID, courseID); err != nil {
		return err
	}

	s.logger.Info().
		Int64("studentID", sess.UserID).
		Int64("courseID", courseID).
		Msg("Student enrolled")
	return nil
}

// Drop deletes the caller's enrollment in the course
func (s *enrollmentServiceImpl) Drop(ctx context.Context, sess auth.Session, courseID int64) error {
	if err := requireRole(sess, models.RoleStudent); err != nil {
		return err
	}

	if err := s.enrollmentRepo.DeleteByStudentAndCourse(ctx, sess.UserID, courseID); err != nil {
		return err
	}

	s.logger.Info().
		Int64("studentID", sess.UserID).
		Int64("courseID", courseID).
		Msg("Student dropped course")
	return nil
}

// ListTeacherCourses returns the courses whose teacher of record is the
// caller, each with its full roster.
func (s *enrollmentServiceImpl) ListTeacherCourses(ctx context.Context, sess auth.Session) ([]dto.TeacherCourse, error) {
	if err := requireRole(sess, models.RoleTeacher); err != nil {
		return nil, err
	}

	courses, err := s.courseRepo.GetByTeacherID(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teacher courses: %w", err)
	}

	views := make([]dto.TeacherCourse, 0, len(courses))
	for _, c := range courses {
		roster, err := s.enrollmentRepo.ListRoster(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("error retrieving roster for course %d: %w", c.ID, err)
		}

		students := make([]dto.RosterStudent, 0, len(roster))
		for _, e := range roster {
			students = append(students, dto.RosterStudent{
				ID:          e.ID,
				StudentName: e.Student.Username,
				Grade:       e.Grade,
			})
		}

		views = append(views, dto.TeacherCourse{
			CourseView: dto.NewCourseView(c),
			Students:   students,
		})
	}
	return views, nil
}

// SetGrade overwrites the grade of an enrollment. Only the teacher of record
// of the enrollment's course may grade it. Any integer is structurally
// valid; no range is enforced.
func (s *enrollmentServiceImpl) SetGrade(ctx context.Context, sess auth.Session, enrollmentID int64, grade int) error {
	if err := requireRole(sess, models.RoleTeacher); err != nil {
		return err
	}

	enrollment, err := s.enrollmentRepo.GetByID(ctx, enrollmentID)
	if err != nil {
		return err
	}

	if enrollment.Course == nil || enrollment.Course.TeacherID != sess.UserID {
		s.logger.Warn().
			Int64("teacherID", sess.UserID).
			Int64("enrollmentID", enrollmentID).
			Msg("Grade attempt on another teacher's course")
		return apperrors.ErrUnauthorized
	}

	if err := s.enrollmentRepo.UpdateGrade(ctx, enrollmentID, grade); err != nil {
		return err
	}

	s.logger.Info().
		Int64("teacherID", sess.UserID).
		Int64("enrollmentID", enrollmentID).
		Int("grade", grade).
		Msg("Grade updated")
	return nil
}
