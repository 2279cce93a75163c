package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/ecelik/coursereg/internal/app/models"
	appRepos "github.com/ecelik/coursereg/internal/app/repositories"
	"github.com/ecelik/coursereg/internal/pkg/apperrors"
	"github.com/ecelik/coursereg/internal/pkg/auth"
)

type seedUser struct {
	username string
	password string
	role     appModels.Role
}

type seedCourse struct {
	code     string
	name     string
	teacher  string
	schedule string
	capacity int
}

var defaultUsers = []seedUser{
	{"admin", "admin123", appModels.RoleAdmin},
	{"teacher1", "teacher123", appModels.RoleTeacher},
	{"teacher2", "teacher123", appModels.RoleTeacher},
	{"student1", "student123", appModels.RoleStudent},
	{"student2", "student123", appModels.RoleStudent},
	{"student3", "student123", appModels.RoleStudent},
}

var defaultCourses = []seedCourse{
	{"CS101", "Intro to Programming", "teacher1", "MWF 10:00-10:50", 30},
	{"CS162", "Operating Systems", "teacher2", "TTh 14:00-15:30", 25},
	{"MATH51", "Linear Algebra", "teacher1", "MWF 9:00-9:50", 40},
}

// CreateDefaultData seeds the default accounts and courses. Rows that already
// exist are left untouched, so the seed is safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)
	verifier := auth.NewBcryptVerifier()

	lgr.Info().Msg("Checking/Creating default data (users/courses)...")
	var finalErr error

	teacherIDs := make(map[string]int64)

	for _, u := range defaultUsers {
		existing, err := userRepo.GetByUsername(ctx, u.username)
		if err == nil {
			if u.role == appModels.RoleTeacher {
				teacherIDs[u.username] = existing.ID
			}
			continue
		}
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			lgr.Error().Err(err).Str("username", u.username).Msg("Error checking seed user")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		hash, err := verifier.Hash(u.password)
		if err != nil {
			lgr.Error().Err(err).Str("username", u.username).Msg("Error hashing seed password")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		id, err := userRepo.Create(ctx, &appModels.User{
			Username: u.username,
			Password: hash,
			Role:     u.role,
		})
		if err != nil && !errors.Is(err, apperrors.ErrUsernameTaken) {
			lgr.Error().Err(err).Str("username", u.username).Msg("Error creating seed user")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if u.role == appModels.RoleTeacher {
			teacherIDs[u.username] = id
		}
		lgr.Info().Str("username", u.username).Str("role", u.role.String()).Msg("Seed user created")
	}

	existingCourses, err := courseRepo.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing courses for seed")
		return errors.Join(finalErr, err)
	}
	existingCodes := make(map[string]bool, len(existingCourses))
	for _, c := range existingCourses {
		existingCodes[c.Code] = true
	}

	for _, c := range defaultCourses {
		if existingCodes[c.code] {
			continue
		}
		teacherID, ok := teacherIDs[c.teacher]
		if !ok {
			lgr.Error().Str("courseCode", c.code).Str("teacher", c.teacher).Msg("Seed teacher missing, skipping course")
			continue
		}

		_, err := courseRepo.Create(ctx, &appModels.Course{
			Code:      c.code,
			Name:      c.name,
			TeacherID: teacherID,
			Schedule:  c.schedule,
			Capacity:  c.capacity,
		})
		if err != nil && !errors.Is(err, apperrors.ErrCourseCodeExists) {
			lgr.Error().Err(err).Str("courseCode", c.code).Msg("Error creating seed course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Str("courseCode", c.code).Msg("Seed course created")
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
