package models

import "time"

// Task is a homework item scoped to a grade and class letter.
type Task struct {
	ID          string     `json:"id" bson:"_id"`
	Grade       string     `json:"grade" bson:"grade"`
	ClassLetter string     `json:"classLetter" bson:"classLetter"`
	Subject     string     `json:"subject" bson:"subject"`
	Description string     `json:"description" bson:"description"`
	DueDate     string     `json:"dueDate" bson:"dueDate"`
	Done        bool       `json:"done" bson:"done"`
	Teacher     TeacherRef `json:"teacher" bson:"teacher"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
}

func (t Task) DocID() string { return t.ID }
