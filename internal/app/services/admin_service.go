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

// AdminService covers the administrative console: CRUD over users, courses
// and enrollments. Every operation requires the admin role.
type AdminService interface {
	ListUsers(ctx context.Context, sess auth.Session) ([]dto.UserView, error)
	CreateUser(ctx context.Context, sess auth.Session, req dto.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, sess auth.Session, id int64, req dto.UpdateUserRequest) error
	DeleteUser(ctx context.Context, sess auth.Session, id int64) error

	CreateCourse(ctx context.Context, sess auth.Session, req dto.CourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, sess auth.Session, id int64, req dto.CourseRequest) error
	DeleteCourse(ctx context.Context, sess auth.Session, id int64) error

	ListEnrollments(ctx context.Context, sess auth.Session) ([]dto.EnrollmentView, error)
	DeleteEnrollment(ctx context.Context, sess auth.Session, id int64) error
}

// adminServiceImpl implements the AdminService interface
type adminServiceImpl struct {
	userRepo       repositories.IUserRepository
	courseRepo     repositories.ICourseRepository
	enrollmentRepo repositories.IEnrollmentRepository
	verifier       auth.CredentialVerifier
	logger         zerolog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(
	userRepo repositories.IUserRepository,
	courseRepo repositories.ICourseRepository,
	enrollmentRepo repositories.IEnrollmentRepository,
	verifier auth.CredentialVerifier,
	logger zerolog.Logger,
) AdminService {
	return &adminServiceImpl{
		userRepo:       userRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		verifier:       verifier,
		logger:         logger,
	}
}

// ListUsers returns every account
func (s *adminServiceImpl) ListUsers(ctx context.Context, sess auth.Session) ([]dto.UserView, error) {
	if err := requireRole(sess, models.RoleAdmin); err != nil {
		return nil, err
	}

	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}

	views := make([]dto.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, dto.NewUserView(u))
	}
	return views, nil
}

// CreateUser creates an account with a hashed password
func (s *adminServiceImpl) CreateUser(ctx context.Context, sess auth.Session, req dto.CreateUserRequest) (*models.User, error) {
	if err := requireRole(sess, models.RoleAdmin); err != nil {
		return nil, err
	}

	role := models.Role(*req.UserType)
	if !role.Valid() {
		return nil, apperrors.NewValidationError("invalid user type")
	}

	hash, err := s.verifier.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Password: hash,
		Role:     role,
	}
	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.logger.Info().
		Int64("adminID", sess.UserID).
		Int64("userID", id).
		Str("username", user.Username).
		Str("role", role.String()).
		Msg("User created")
	return user, nil
}

// UpdateUser applies the non-empty fields of the request to an existing
// account. A new password is hashed before storage.
func (s *adminServiceImpl) UpdateUser(ctx context.Context, sess auth.Session, id int64, req dto.UpdateUserRequest) error {
	if err := requireRole(sess, models.RoleAdmin); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Password != "" {
		hash, err := s.verifier.Hash(req.Password)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}
		user.Password = hash
	}
	if req.UserType != nil {
		role := models.Role(*req.UserType)
		if !role.Valid() {
			return apperrors.NewValidationError("invalid user type")
		}
		user.Role = role
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info().
		Int64("adminID", sess.UserID).
		Int64("userID", id).
		Msg("User updated")
	return nil
}

// DeleteUser removes an account. Enrollments of a deleted student cascade;
// a teacher still assigned to courses cannot be deleted.
func (s *adminServiceImpl) DeleteUser(ctx context.Context, sess auth.Session, id int64) error {
	if err := requireRole(sess, models.RoleAdmin); err != nil {
		return err
	}

	if id == sess.UserID {
		return apperrors.NewValidationError("cannot delete your own account")
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().
		Int64("adminID", sess.UserID).
		Int64("userID", id).
		Msg("User deleted")
	return nil
}

func (s *adminServiceImpl) courseFromRequest(req dto.CourseRequest) (*models.Course, error) {
	if *req.Capacity < 0 {
		return nil, apperrors.NewValidationError("capacity must not be negative")
	}
	return &models.Course{
		Code:      req.CourseCode,
		Name:      req.CourseName,
		TeacherID: req.TeacherID,
		Schedule:  req.Time,
		Capacity:  *req.Capacity,
	}, nil
}

// CreateCourse creates a course assigned to an existing teacher
func (s *adminServiceImpl) CreateCourse(ctx context.Context, sess auth.Session, req dto.CourseRequest) (*models.Course, error) {
	if err := requireRole(sess, models.RoleAdmin); err != nil {
		return nil, err
	}

	course, err := s.courseFromRequest(req)
	if err != nil {
		return nil, err
	}

	teacher, err := s.userRepo.GetByID(ctx, req.TeacherID)
	if err != nil {
		return nil, err
	}
	if teacher.Role != models.RoleTeacher {
		return nil, apperrors.NewValidationError("assigned user is not a teacher")
	}

	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return nil, err
	}
	course.ID = id
	course.TeacherName = teacher.Username

	s.logger.Info().
		Int64("adminID", sess.UserID).
		Int64("courseID", id).
		Str("courseCode", course.Code).
		Msg("Course created")
	return course, nil
}

// UpdateCourse overwrites a course's fields. Shrinking capacity below the
// current enrollment count is allowed; existing enrollments are kept.
func (s *adminServiceImpl) UpdateCourse(ctx context.Context, sess auth.Session, id int64, req dto.CourseRequest) error {
	if err := requireRole(sess, models.RoleAdmin); err != nil {
		return err
	}

	course, err := s.courseFromRequest(req)
	if err != nil {
		return err
	}
	course.ID = id

	teacher, err := s.userRepo.GetByID(ctx, req.TeacherID)
	if err != nil {
		return err
	}
	if teacher.Role != models.RoleTeacher {
		return apperrors.NewValidationError("assigned user is not a teacher")
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return err
	}

	s.logger.Info().
		Int64("adminID", sess.UserID).
		Int64("courseID", id).
		Msg("Course updated")
	return nil
}

// DeleteCourse removes a course and, by cascade, its enrollments
func (s *adminServiceImpl) DeleteCourse(ctx context.Context, sess auth.Session, id int64) error {
	if err := requireRole(sess, models.RoleAdmin); err != nil {
		return err
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().
		Int64("adminID", sess.UserID).
		Int64("courseID", id).
		Msg("Course deleted")
	return nil
}

// ListEnrollments returns every enrollment with student and course context
func (s *adminServiceImpl) ListEnrollments(ctx context.Context, sess auth.Session) ([]dto.EnrollmentView, error) {
	if err := requireRole(sess, models.RoleAdmin); err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}

	views := make([]dto.EnrollmentView, 0, len(enrollments))
	for _, e := range enrollments {
		views = append(views, dto.NewEnrollmentView(e))
	}
	return views, nil
}

// DeleteEnrollment force-drops a student from a course
func (s *adminServiceImpl) DeleteEnrollment(ctx context.Context, sess auth.Session, id int64) error {
	if err := requireRole(sess, models.RoleAdmin); err != nil {
		return err
	}

	if err := s.enrollmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().
		Int64("adminID", sess.UserID).
		Int64("enrollmentID", id).
		Msg("Enrollment deleted")
	return nil
}
