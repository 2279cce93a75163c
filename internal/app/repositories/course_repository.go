package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecelik/coursereg/internal/app/models"
	"github.com/ecelik/coursereg/internal/pkg/apperrors"
	"github.com/ecelik/coursereg/internal/pkg/dberrors"
	"github.com/ecelik/coursereg/internal/pkg/logger"
)

// ICourseRepository defines the course data access contract.
type ICourseRepository interface {
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByTeacherID(ctx context.Context, teacherID int64) ([]*models.Course, error)
	Create(ctx context.Context, course *models.Course) (int64, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// courseColumns are the columns every course query selects: the course row,
// the teacher's current username, and the live enrollment count.
var courseColumns = []string{
	"c.id",
	"c.course_code",
	"c.course_name",
	"c.teacher_id",
	"u.username AS teacher_name",
	"c.schedule",
	"c.capacity",
	"COUNT(e.id) AS enrolled_count",
}

func (r *CourseRepository) baseQuery() squirrel.SelectBuilder {
	return r.sb.Select(courseColumns...).
		From("courses c").
		Join("users u ON u.id = c.teacher_id").
		LeftJoin("enrollments e ON e.course_id = c.id").
		GroupBy("c.id", "u.username")
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	err := row.Scan(
		&course.ID,
		&course.Code,
		&course.Name,
		&course.TeacherID,
		&course.TeacherName,
		&course.Schedule,
		&course.Capacity,
		&course.EnrolledCount,
	)
	if err != nil {
		return nil, err
	}
	return course, nil
}

// GetAll retrieves every course with its enrollment count
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.baseQuery().OrderBy("c.course_code ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all courses query: %w", err)
	}

	return r.queryCourses(ctx, sql, args)
}

// GetByTeacherID retrieves the courses taught by the given user
func (r *CourseRepository) GetByTeacherID(ctx context.Context, teacherID int64) ([]*models.Course, error) {
	sql, args, err := r.baseQuery().
		Where(squirrel.Eq{"c.teacher_id": teacherID}).
		OrderBy("c.course_code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get courses by teacher query: %w", err)
	}

	return r.queryCourses(ctx, sql, args)
}

func (r *CourseRepository) queryCourses(ctx context.Context, sql string, args []interface{}) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing course query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// GetByID retrieves a single course with its enrollment count
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.baseQuery().Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("course_code", "course_name", "teacher_id", "schedule", "capacity").
		Values(course.Code, course.Name, course.TeacherID, course.Schedule, course.Capacity).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrCourseCodeExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrCourseTeacherGone
		}
		logger.Error().Err(err).Str("courseCode", course.Code).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		SetMap(map[string]interface{}{
			"course_code": course.Code,
			"course_name": course.Name,
			"teacher_id":  course.TeacherID,
			"schedule":    course.Schedule,
			"capacity":    course.Capacity,
		}).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseCodeExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseTeacherGone
		}
		logger.Error().Err(err).Int64("courseID", course.ID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID. Its enrollments cascade.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
