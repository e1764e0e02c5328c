package service

import (
	"context"
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/util"
	"testing"
)

// buildCourseTree seeds one course with a single module holding one lesson
// and one quiz with a scored question.
func buildCourseTree(t *testing.T, env *testEnv) (*model.Course, *model.Module, *model.Lesson, *model.Quiz) {
	t.Helper()

	course, err := env.content.CreateCourse(&CourseInput{Title: "Go Basics", Description: "Intro"})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}
	module, err := env.content.CreateModule(course.ID, "Getting Started")
	if err != nil {
		t.Fatalf("create module: %v", err)
	}
	lesson, err := env.content.CreateLesson(course.ID, module.ID, &LessonInput{Title: "Hello", Content: "text"})
	if err != nil {
		t.Fatalf("create lesson: %v", err)
	}
	quiz, err := env.content.CreateQuiz(course.ID, module.ID, &QuizInput{Title: "Checkpoint"})
	if err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	if _, err := env.content.CreateQuestion(course.ID, module.ID, quiz.ID, &QuestionInput{
		Text:               "2+2?",
		Type:               model.MultipleChoice,
		Options:            []string{"3", "4", "5"},
		CorrectOptionIndex: 1,
		Points:             5,
	}); err != nil {
		t.Fatalf("create question: %v", err)
	}
	return course, module, lesson, quiz
}

func countRows(t *testing.T, env *testEnv, value interface{}) int64 {
	t.Helper()
	var n int64
	if err := env.db.Model(value).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestDeleteCourseCascades(t *testing.T) {
	env := newTestEnv(t)
	student, err := env.auth.CreateUser(studentInput("dana"))
	if err != nil {
		t.Fatalf("create student: %v", err)
	}

	course, module, lesson, quiz := buildCourseTree(t, env)
	lesson2, err := env.content.CreateLesson(course.ID, module.ID, &LessonInput{Title: "Second", Content: "more"})
	if err != nil {
		t.Fatalf("create lesson2: %v", err)
	}
	module2, err := env.content.CreateModule(course.ID, "Advanced")
	if err != nil {
		t.Fatalf("create module2: %v", err)
	}
	if _, err := env.content.CreateLesson(course.ID, module2.ID, &LessonInput{Title: "Deep Dive", Content: "x"}); err != nil {
		t.Fatalf("create lesson in module2: %v", err)
	}

	if err := env.progress.MarkLessonComplete(student.ID, lesson.ID); err != nil {
		t.Fatalf("mark lesson: %v", err)
	}
	if err := env.progress.MarkLessonComplete(student.ID, lesson2.ID); err != nil {
		t.Fatalf("mark lesson2: %v", err)
	}
	fresh, err := env.content.GetQuiz(course.ID, module.ID, quiz.ID)
	if err != nil {
		t.Fatalf("get quiz: %v", err)
	}
	sel := fresh.Questions[0].CorrectOptionID
	if _, err := env.progress.RecordAttempt(student.ID, quiz.ID, []AnswerInput{
		{QuestionID: fresh.Questions[0].ID, SelectedOptionID: &sel},
	}); err != nil {
		t.Fatalf("record attempt: %v", err)
	}
	if ok, err := env.enrollment.Enroll(context.Background(), student.ID, course.ID); err != nil || !ok {
		t.Fatalf("enroll: ok=%v err=%v", ok, err)
	}

	if err := env.content.DeleteCourse(course.ID); err != nil {
		t.Fatalf("delete course: %v", err)
	}

	for _, value := range []interface{}{
		&model.Course{}, &model.Module{}, &model.Lesson{}, &model.Quiz{},
		&model.Question{}, &model.AnswerOption{}, &model.LessonProgress{},
		&model.QuizAttempt{}, &model.StudentAnswer{}, &model.Enrollment{},
	} {
		if n := countRows(t, env, value); n != 0 {
			t.Fatalf("%T: %d rows left after course delete", value, n)
		}
	}
}

func TestDeleteModuleCascadesWithinCourse(t *testing.T) {
	env := newTestEnv(t)
	student, err := env.auth.CreateUser(studentInput("mia"))
	if err != nil {
		t.Fatalf("create student: %v", err)
	}

	course, module, lesson, quiz := buildCourseTree(t, env)
	keep, err := env.content.CreateModule(course.ID, "Kept")
	if err != nil {
		t.Fatalf("create module: %v", err)
	}
	keptLesson, err := env.content.CreateLesson(course.ID, keep.ID, &LessonInput{Title: "Stays", Content: "x"})
	if err != nil {
		t.Fatalf("create kept lesson: %v", err)
	}

	if err := env.progress.MarkLessonComplete(student.ID, lesson.ID); err != nil {
		t.Fatalf("mark lesson: %v", err)
	}
	if err := env.progress.MarkLessonComplete(student.ID, keptLesson.ID); err != nil {
		t.Fatalf("mark kept lesson: %v", err)
	}
	if _, err := env.progress.RecordAttempt(student.ID, quiz.ID, nil); err != nil {
		t.Fatalf("record attempt: %v", err)
	}

	if err := env.content.DeleteModule(course.ID, module.ID); err != nil {
		t.Fatalf("delete module: %v", err)
	}

	if n := countRows(t, env, &model.Module{}); n != 1 {
		t.Fatalf("modules = %d, want 1", n)
	}
	if n := countRows(t, env, &model.Quiz{}); n != 0 {
		t.Fatalf("quizzes = %d, want 0", n)
	}
	if n := countRows(t, env, &model.QuizAttempt{}); n != 0 {
		t.Fatalf("attempts = %d, want 0", n)
	}

	// The sibling module's progress record survives.
	done, err := env.progress.IsLessonCompleted(student.ID, keptLesson.ID)
	if err != nil || !done {
		t.Fatalf("kept lesson completion lost: done=%v err=%v", done, err)
	}
	if done, _ := env.progress.IsLessonCompleted(student.ID, lesson.ID); done {
		t.Fatal("deleted lesson still reported complete")
	}
}

func TestGetQuizCompositeLookup(t *testing.T) {
	env := newTestEnv(t)
	course, module, _, quiz := buildCourseTree(t, env)
	other, err := env.content.CreateCourse(&CourseInput{Title: "Other"})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}

	got, err := env.content.GetQuiz(course.ID, module.ID, quiz.ID)
	if err != nil {
		t.Fatalf("get quiz: %v", err)
	}
	if got.ID != quiz.ID || len(got.Questions) != 1 || len(got.Questions[0].Options) != 3 {
		t.Fatalf("incomplete quiz tree: %+v", got)
	}

	// Any broken link in course -> module -> quiz fails the lookup.
	if _, err := env.content.GetQuiz(other.ID, module.ID, quiz.ID); !errors.Is(err, util.ErrModuleNotFound) {
		t.Fatalf("wrong course: err = %v, want ErrModuleNotFound", err)
	}
	if _, err := env.content.GetQuiz(course.ID, "missing", quiz.ID); !errors.Is(err, util.ErrModuleNotFound) {
		t.Fatalf("missing module: err = %v, want ErrModuleNotFound", err)
	}
	if _, err := env.content.GetQuiz(course.ID, module.ID, "missing"); !errors.Is(err, util.ErrQuizNotFound) {
		t.Fatalf("missing quiz: err = %v, want ErrQuizNotFound", err)
	}
}

func TestCreateQuestionAssignsCorrectOption(t *testing.T) {
	env := newTestEnv(t)
	course, module, _, quiz := buildCourseTree(t, env)

	q, err := env.content.CreateQuestion(course.ID, module.ID, quiz.ID, &QuestionInput{
		Text:               "Is Go compiled?",
		Type:               model.TrueFalse,
		Options:            []string{"True", "False"},
		CorrectOptionIndex: 0,
		Points:             2,
	})
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	if q.CorrectOptionID != q.Options[0].ID {
		t.Fatalf("correct option = %q, want id of option 0 (%q)", q.CorrectOptionID, q.Options[0].ID)
	}

	// Re-fetching through the composite lookup returns the same structure.
	fresh, err := env.content.GetQuiz(course.ID, module.ID, quiz.ID)
	if err != nil {
		t.Fatalf("get quiz: %v", err)
	}
	found := false
	for _, fq := range fresh.Questions {
		if fq.ID == q.ID {
			found = true
			if fq.CorrectOptionID != q.CorrectOptionID || len(fq.Options) != 2 {
				t.Fatalf("stored question diverged: %+v", fq)
			}
		}
	}
	if !found {
		t.Fatal("question missing from re-fetched quiz")
	}
}

func TestQuestionValidation(t *testing.T) {
	env := newTestEnv(t)
	course, module, _, quiz := buildCourseTree(t, env)

	cases := []QuestionInput{
		{Text: "x", Type: model.MultipleChoice, Options: []string{"a", "b"}, CorrectOptionIndex: 0, Points: 0},
		{Text: "x", Type: "essay", Options: []string{"a", "b"}, CorrectOptionIndex: 0, Points: 1},
		{Text: "x", Type: model.MultipleChoice, Options: []string{"a"}, CorrectOptionIndex: 0, Points: 1},
		{Text: "x", Type: model.TrueFalse, Options: []string{"a", "b", "c"}, CorrectOptionIndex: 0, Points: 1},
		{Text: "x", Type: model.MultipleChoice, Options: []string{"a", "b"}, CorrectOptionIndex: 2, Points: 1},
	}
	for i, in := range cases {
		if _, err := env.content.CreateQuestion(course.ID, module.ID, quiz.ID, &in); !errors.Is(err, util.ErrValidation) {
			t.Fatalf("case %d: err = %v, want ErrValidation", i, err)
		}
	}
}

func TestUpdateQuestionReplacesOptions(t *testing.T) {
	env := newTestEnv(t)
	course, module, _, quiz := buildCourseTree(t, env)
	fresh, err := env.content.GetQuiz(course.ID, module.ID, quiz.ID)
	if err != nil {
		t.Fatalf("get quiz: %v", err)
	}
	q := fresh.Questions[0]

	err = env.content.UpdateQuestion(course.ID, module.ID, quiz.ID, q.ID, &QuestionInput{
		Text:               "3+3?",
		Type:               model.MultipleChoice,
		Options:            []string{"5", "6"},
		CorrectOptionIndex: 1,
		Points:             10,
	})
	if err != nil {
		t.Fatalf("update question: %v", err)
	}

	fresh, err = env.content.GetQuiz(course.ID, module.ID, quiz.ID)
	if err != nil {
		t.Fatalf("re-fetch quiz: %v", err)
	}
	got := fresh.Questions[0]
	if got.Text != "3+3?" || got.Points != 10 || len(got.Options) != 2 {
		t.Fatalf("update not applied: %+v", got)
	}
	var wantID string
	for _, opt := range got.Options {
		if opt.Text == "6" {
			wantID = opt.ID
		}
	}
	if wantID == "" || got.CorrectOptionID != wantID {
		t.Fatalf("correct option = %q, want id of the %q option (%q)", got.CorrectOptionID, "6", wantID)
	}
}
