package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecelik/coursereg/internal/app/models"
	"github.com/ecelik/coursereg/internal/db"
	"github.com/ecelik/coursereg/internal/pkg/apperrors"
	"github.com/ecelik/coursereg/internal/pkg/dberrors"
	"github.com/ecelik/coursereg/internal/pkg/logger"
)

// uniqueEnrollmentConstraint is the unique constraint on (student_id,
// course_id); it backstops the capacity transaction against duplicate rows.
const uniqueEnrollmentConstraint = "uq_enrollments_student_course"

// IEnrollmentRepository defines the enrollment data access contract.
//
// Enroll is a single atomic check-and-set: implementations must fail with
// ErrCourseNotFound, ErrCourseFull or ErrAlreadyEnrolled without leaving
// partial state behind.
type IEnrollmentRepository interface {
	Enroll(ctx context.Context, studentID, courseID int64) error
	DeleteByStudentAndCourse(ctx context.Context, studentID, courseID int64) error
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	UpdateGrade(ctx context.Context, id int64, grade int) error
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	ListRoster(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
	GetAll(ctx context.Context) ([]*models.Enrollment, error)
	Delete(ctx context.Context, id int64) error
}

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// Enroll creates an enrollment for the student in the course. The capacity
// check happens inside a transaction holding a row lock on the course, so
// two racing enrollments cannot both pass it; the unique constraint on
// (student_id, course_id) rejects duplicates.
func (r *EnrollmentRepository) Enroll(ctx context.Context, studentID, courseID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var capacity int
		err := tx.QueryRow(ctx,
			`SELECT capacity FROM courses WHERE id = $1 FOR UPDATE`, courseID).Scan(&capacity)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrCourseNotFound
			}
			return fmt.Errorf("error locking course row: %w", err)
		}

		var enrolled int
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM enrollments WHERE course_id = $1`, courseID).Scan(&enrolled)
		if err != nil {
			return fmt.Errorf("error counting enrollments: %w", err)
		}

		if enrolled >= capacity {
			return apperrors.ErrCourseFull
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO enrollments (student_id, course_id) VALUES ($1, $2)`, studentID, courseID)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, uniqueEnrollmentConstraint) {
				return apperrors.ErrAlreadyEnrolled
			}
			return fmt.Errorf("error creating enrollment: %w", err)
		}

		return nil
	})
}

// DeleteByStudentAndCourse removes the student's enrollment in the course
func (r *EnrollmentRepository) DeleteByStudentAndCourse(ctx context.Context, studentID, courseID int64) error {
	sql, args, err := r.sb.Delete("enrollments").
		Where(squirrel.Eq{"student_id": studentID, "course_id": courseID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build drop enrollment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Int64("courseID", courseID).Msg("Error executing drop enrollment query")
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotEnrolled
	}

	return nil
}

// GetByID retrieves an enrollment with its course relation populated, which
// carries the teacher of record for ownership checks.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	sql, args, err := r.sb.Select("e.id", "e.student_id", "e.course_id", "e.grade", "c.course_code", "c.teacher_id").
		From("enrollments e").
		Join("courses c ON c.id = e.course_id").
		Where(squirrel.Eq{"e.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get enrollment query: %w", err)
	}

	enrollment := &models.Enrollment{Course: &models.Course{}}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&enrollment.ID,
		&enrollment.StudentID,
		&enrollment.CourseID,
		&enrollment.Grade,
		&enrollment.Course.Code,
		&enrollment.Course.TeacherID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		logger.Error().Err(err).Int64("enrollmentID", id).Msg("Error scanning enrollment row")
		return nil, fmt.Errorf("error getting enrollment by ID: %w", err)
	}
	enrollment.Course.ID = enrollment.CourseID

	return enrollment, nil
}

// UpdateGrade overwrites the grade field of an enrollment
func (r *EnrollmentRepository) UpdateGrade(ctx context.Context, id int64, grade int) error {
	sql, args, err := r.sb.Update("enrollments").
		Set("grade", grade).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update grade query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("enrollmentID", id).Msg("Error executing update grade query")
		return fmt.Errorf("error updating grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// ListByStudent retrieves the student's enrollments with each course (and
// its live enrollment count) populated.
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	sql, args, err := r.sb.Select(
		"e.id", "e.student_id", "e.course_id", "e.grade",
		"c.course_code", "c.course_name", "c.teacher_id", "u.username", "c.schedule", "c.capacity",
		"(SELECT COUNT(*) FROM enrollments e2 WHERE e2.course_id = c.id) AS enrolled_count").
		From("enrollments e").
		Join("courses c ON c.id = e.course_id").
		Join("users u ON u.id = c.teacher_id").
		Where(squirrel.Eq{"e.student_id": studentID}).
		OrderBy("c.course_code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list student enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing list student enrollments query")
		return nil, fmt.Errorf("error querying student enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []*models.Enrollment{}
	for rows.Next() {
		e := &models.Enrollment{Course: &models.Course{}}
		err := rows.Scan(
			&e.ID, &e.StudentID, &e.CourseID, &e.Grade,
			&e.Course.Code, &e.Course.Name, &e.Course.TeacherID, &e.Course.TeacherName,
			&e.Course.Schedule, &e.Course.Capacity, &e.Course.EnrolledCount,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning student enrollment row: %w", err)
		}
		e.Course.ID = e.CourseID
		enrollments = append(enrollments, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student enrollment rows: %w", err)
	}

	return enrollments, nil
}

// ListRoster retrieves the enrollments of a course with each student
// populated, ordered by student name.
func (r *EnrollmentRepository) ListRoster(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	sql, args, err := r.sb.Select("e.id", "e.student_id", "e.course_id", "e.grade", "s.username").
		From("enrollments e").
		Join("users s ON s.id = e.student_id").
		Where(squirrel.Eq{"e.course_id": courseID}).
		OrderBy("s.username ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list roster query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing list roster query")
		return nil, fmt.Errorf("error querying roster: %w", err)
	}
	defer rows.Close()

	enrollments := []*models.Enrollment{}
	for rows.Next() {
		e := &models.Enrollment{Student: &models.User{}}
		if err := rows.Scan(&e.ID, &e.StudentID, &e.CourseID, &e.Grade, &e.Student.Username); err != nil {
			return nil, fmt.Errorf("error scanning roster row: %w", err)
		}
		e.Student.ID = e.StudentID
		enrollments = append(enrollments, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating roster rows: %w", err)
	}

	return enrollments, nil
}

// GetAll retrieves every enrollment with student and course populated, for
// the admin console.
func (r *EnrollmentRepository) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	sql, args, err := r.sb.Select("e.id", "e.student_id", "e.course_id", "e.grade", "s.username", "c.course_code").
		From("enrollments e").
		Join("users s ON s.id = e.student_id").
		Join("courses c ON c.id = e.course_id").
		OrderBy("e.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all enrollments query")
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []*models.Enrollment{}
	for rows.Next() {
		e := &models.Enrollment{Student: &models.User{}, Course: &models.Course{}}
		if err := rows.Scan(&e.ID, &e.StudentID, &e.CourseID, &e.Grade, &e.Student.Username, &e.Course.Code); err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		e.Student.ID = e.StudentID
		e.Course.ID = e.CourseID
		enrollments = append(enrollments, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}

	return enrollments, nil
}

// Delete deletes an enrollment by ID
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("enrollments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete enrollment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("enrollmentID", id).Msg("Error executing delete enrollment query")
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}
