package services

import (
	"context"
	"sort"
	"time"

	"github.com/ecelik/coursereg/internal/app/models"
	"github.com/ecelik/coursereg/internal/pkg/apperrors"
)

// memStore is an in-memory backing store shared by the repository fakes. The
// fakes honor the same contracts as the SQL repositories: sentinel errors,
// uniqueness, capacity and relation population.
type memStore struct {
	users       map[int64]*models.User
	courses     map[int64]*models.Course
	enrollments map[int64]*models.Enrollment
	sessions    map[string]*models.Session
	nextID      int64
}

func newMemStore() *memStore {
	return &memStore{
		users:       make(map[int64]*models.User),
		courses:     make(map[int64]*models.Course),
		enrollments: make(map[int64]*models.Enrollment),
		sessions:    make(map[string]*models.Session),
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) addUser(username string, role models.Role) *models.User {
	u := &models.User{ID: s.id(), Username: username, Password: "hash:" + username, Role: role}
	s.users[u.ID] = u
	return u
}

func (s *memStore) addCourse(code, name string, teacherID int64, capacity int) *models.Course {
	c := &models.Course{ID: s.id(), Code: code, Name: name, TeacherID: teacherID, Capacity: capacity}
	s.courses[c.ID] = c
	return c
}

func (s *memStore) enrolledCount(courseID int64) int {
	count := 0
	for _, e := range s.enrollments {
		if e.CourseID == courseID {
			count++
		}
	}
	return count
}

// courseView returns a copy with the joined columns populated, mirroring
// what the SQL repository's base query produces.
func (s *memStore) courseView(c *models.Course) *models.Course {
	view := *c
	view.EnrolledCount = s.enrolledCount(c.ID)
	if teacher, ok := s.users[c.TeacherID]; ok {
		view.TeacherName = teacher.Username
	}
	return &view
}

type fakeUserRepo struct{ store *memStore }

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := r.store.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.store.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetAll(_ context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	for _, u := range r.store.users {
		if u.Username == user.Username {
			return 0, apperrors.ErrUsernameTaken
		}
	}
	user.ID = r.store.id()
	r.store.users[user.ID] = user
	return user.ID, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.store.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	for _, u := range r.store.users {
		if u.ID != user.ID && u.Username == user.Username {
			return apperrors.ErrUsernameTaken
		}
	}
	r.store.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	for _, c := range r.store.courses {
		if c.TeacherID == id {
			return apperrors.NewValidationError("user still teaches courses and cannot be deleted")
		}
	}
	delete(r.store.users, id)
	for eid, e := range r.store.enrollments {
		if e.StudentID == id {
			delete(r.store.enrollments, eid)
		}
	}
	return nil
}

type fakeCourseRepo struct{ store *memStore }

func (r *fakeCourseRepo) GetAll(_ context.Context) ([]*models.Course, error) {
	courses := make([]*models.Course, 0, len(r.store.courses))
	for _, c := range r.store.courses {
		courses = append(courses, r.store.courseView(c))
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := r.store.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return r.store.courseView(c), nil
}

func (r *fakeCourseRepo) GetByTeacherID(_ context.Context, teacherID int64) ([]*models.Course, error) {
	var courses []*models.Course
	for _, c := range r.store.courses {
		if c.TeacherID == teacherID {
			courses = append(courses, r.store.courseView(c))
		}
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (r *fakeCourseRepo) Create(_ context.Context, course *models.Course) (int64, error) {
	for _, c := range r.store.courses {
		if c.Code == course.Code {
			return 0, apperrors.ErrCourseCodeExists
		}
	}
	if _, ok := r.store.users[course.TeacherID]; !ok {
		return 0, apperrors.ErrCourseTeacherGone
	}
	course.ID = r.store.id()
	r.store.courses[course.ID] = course
	return course.ID, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, course *models.Course) error {
	if _, ok := r.store.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	for _, c := range r.store.courses {
		if c.ID != course.ID && c.Code == course.Code {
			return apperrors.ErrCourseCodeExists
		}
	}
	r.store.courses[course.ID] = course
	return nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(r.store.courses, id)
	for eid, e := range r.store.enrollments {
		if e.CourseID == id {
			delete(r.store.enrollments, eid)
		}
	}
	return nil
}

type fakeEnrollmentRepo struct{ store *memStore }

func (r *fakeEnrollmentRepo) Enroll(_ context.Context, studentID, courseID int64) error {
	course, ok := r.store.courses[courseID]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	if r.store.enrolledCount(courseID) >= course.Capacity {
		return apperrors.ErrCourseFull
	}
	for _, e := range r.store.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			return apperrors.ErrAlreadyEnrolled
		}
	}
	id := r.store.id()
	r.store.enrollments[id] = &models.Enrollment{ID: id, StudentID: studentID, CourseID: courseID}
	return nil
}

func (r *fakeEnrollmentRepo) DeleteByStudentAndCourse(_ context.Context, studentID, courseID int64) error {
	for id, e := range r.store.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			delete(r.store.enrollments, id)
			return nil
		}
	}
	return apperrors.ErrNotEnrolled
}

func (r *fakeEnrollmentRepo) GetByID(_ context.Context, id int64) (*models.Enrollment, error) {
	e, ok := r.store.enrollments[id]
	if !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	view := *e
	if c, ok := r.store.courses[e.CourseID]; ok {
		view.Course = r.store.courseView(c)
	}
	return &view, nil
}

func (r *fakeEnrollmentRepo) UpdateGrade(_ context.Context, id int64, grade int) error {
	e, ok := r.store.enrollments[id]
	if !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	g := grade
	e.Grade = &g
	return nil
}

func (r *fakeEnrollmentRepo) ListByStudent(_ context.Context, studentID int64) ([]*models.Enrollment, error) {
	var enrollments []*models.Enrollment
	for _, e := range r.store.enrollments {
		if e.StudentID != studentID {
			continue
		}
		view := *e
		if c, ok := r.store.courses[e.CourseID]; ok {
			view.Course = r.store.courseView(c)
		}
		enrollments = append(enrollments, &view)
	}
	sort.Slice(enrollments, func(i, j int) bool { return enrollments[i].ID < enrollments[j].ID })
	return enrollments, nil
}

func (r *fakeEnrollmentRepo) ListRoster(_ context.Context, courseID int64) ([]*models.Enrollment, error) {
	var enrollments []*models.Enrollment
	for _, e := range r.store.enrollments {
		if e.CourseID != courseID {
			continue
		}
		view := *e
		view.Student = r.store.users[e.StudentID]
		enrollments = append(enrollments, &view)
	}
	sort.Slice(enrollments, func(i, j int) bool {
		return enrollments[i].Student.Username < enrollments[j].Student.Username
	})
	return enrollments, nil
}

func (r *fakeEnrollmentRepo) GetAll(_ context.Context) ([]*models.Enrollment, error) {
	enrollments := make([]*models.Enrollment, 0, len(r.store.enrollments))
	for _, e := range r.store.enrollments {
		view := *e
		view.Student = r.store.users[e.StudentID]
		if c, ok := r.store.courses[e.CourseID]; ok {
			view.Course = r.store.courseView(c)
		}
		enrollments = append(enrollments, &view)
	}
	sort.Slice(enrollments, func(i, j int) bool { return enrollments[i].ID < enrollments[j].ID })
	return enrollments, nil
}

func (r *fakeEnrollmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.enrollments[id]; !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	delete(r.store.enrollments, id)
	return nil
}

type fakeSessionRepo struct{ store *memStore }

func (r *fakeSessionRepo) Create(_ context.Context, session *models.Session) error {
	r.store.sessions[session.Token] = session
	return nil
}

func (r *fakeSessionRepo) GetByToken(_ context.Context, token string) (*models.Session, error) {
	s, ok := r.store.sessions[token]
	if !ok || s.ExpiresAt.Before(time.Now()) {
		return nil, apperrors.ErrSessionNotFound
	}
	view := *s
	view.User = r.store.users[s.UserID]
	return &view, nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, token string) error {
	delete(r.store.sessions, token)
	return nil
}

func (r *fakeSessionRepo) DeleteExpired(_ context.Context) error {
	for token, s := range r.store.sessions {
		if s.ExpiresAt.Before(time.Now()) {
			delete(r.store.sessions, token)
		}
	}
	return nil
}

// fakeVerifier pairs passwords with "hash:" prefixed stored values so tests
// avoid real bcrypt work.
type fakeVerifier struct{}

func (fakeVerifier) Hash(password string) (string, error) { return "hash:" + password, nil }

func (fakeVerifier) Verify(stored, candidate string) bool { return stored == "hash:"+candidate }
