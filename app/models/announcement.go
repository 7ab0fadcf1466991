package models

import "time"

// Announcement is a message posted to a grade and class letter.
type Announcement struct {
	ID          string     `json:"id" bson:"_id"`
	Grade       string     `json:"grade" bson:"grade"`
	ClassLetter string     `json:"classLetter" bson:"classLetter"`
	Message     string     `json:"message" bson:"message"`
	Teacher     TeacherRef `json:"teacher" bson:"teacher"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
}

func (a Announcement) DocID() string { return a.ID }
