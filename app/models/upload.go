package models

import "time"

// Upload is the metadata record for an uploaded file. Filename holds the
// resolved fetch URL (durable or placeholder), not a local path.
type Upload struct {
	ID           string    `json:"id" bson:"_id"`
	TeacherID    string    `json:"teacherId" bson:"teacherId"`
	Filename     string    `json:"filename" bson:"filename"`
	OriginalName string    `json:"originalName" bson:"originalName"`
	Grade        string    `json:"grade" bson:"grade"`
	ClassLetter  string    `json:"classLetter" bson:"classLetter"`
	UploadedAt   time.Time `json:"uploadedAt" bson:"uploadedAt"`
}

func (u Upload) DocID() string { return u.ID }
