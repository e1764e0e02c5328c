package model

import "time"

// QuizAttempt is an immutable record of one submitted quiz. Attempts are
// appended and pruned with their quiz, never edited.
type QuizAttempt struct {
	UUIDBase
	QuizID      string          `gorm:"type:varchar(36);index;not null" json:"quizId"`
	UserID      string          `gorm:"type:varchar(36);index;not null" json:"userId"`
	Answers     []StudentAnswer `gorm:"foreignKey:AttemptID" json:"answers"`
	Score       int             `gorm:"not null" json:"score"`
	MaxScore    int             `gorm:"not null" json:"maxScore"`
	SubmittedAt time.Time       `gorm:"not null" json:"submittedAt"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// StudentAnswer records one question's selection. SelectedOptionID is nil
// when the question was left unanswered.
type StudentAnswer struct {
	UUIDBase
	AttemptID        string  `gorm:"type:varchar(36);index;not null" json:"attemptId"`
	QuestionID       string  `gorm:"type:varchar(36);not null" json:"questionId"`
	SelectedOptionID *string `gorm:"type:varchar(36)" json:"selectedOptionId"`
}

func (StudentAnswer) TableName() string {
	return "student_answers"
}
