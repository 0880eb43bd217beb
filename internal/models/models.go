package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names. Each model is persisted in its own collection,
// named after the lowercase entity name.
const (
	TimetableCollection = "timetable"
	ResourceCollection  = "resource"
	DoubtCollection     = "doubt"
)

// Doubt status values.
const (
	StatusOpen     = "open"
	StatusAnswered = "answered"
)

// Timetable is one recurring entry in a student's weekly timetable.
// Times are free-form "HH:MM" text; ordering and range are not enforced.
type Timetable struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggerignore:"true"`
	Day       string             `bson:"day" json:"day" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Subject   string             `bson:"subject" json:"subject" binding:"required"`
	StartTime string             `bson:"start_time" json:"start_time" binding:"required"`
	EndTime   string             `bson:"end_time" json:"end_time" binding:"required"`
	Location  *string            `bson:"location" json:"location"`
	Notes     *string            `bson:"notes" json:"notes"`
}

// Resource is a link or note shared with students, optionally tagged by topic.
type Resource struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggerignore:"true"`
	Title       string             `bson:"title" json:"title" binding:"required"`
	URL         *string            `bson:"url" json:"url"`
	Topic       *string            `bson:"topic" json:"topic"`
	Description *string            `bson:"description" json:"description"`
}

// Doubt is a student question. It starts "open" and moves to "answered"
// exactly once, when an answer is recorded; there is no way back.
type Doubt struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggerignore:"true"`
	Question    string             `bson:"question" json:"question" binding:"required"`
	StudentName *string            `bson:"student_name" json:"student_name"`
	Answer      *string            `bson:"answer" json:"answer"`
	AnsweredBy  *string            `bson:"answered_by" json:"answered_by"`
	Status      string             `bson:"status" json:"status" binding:"omitempty,oneof=open answered"`
}

// AnswerPayload is the body of the answer (PATCH) operation on a doubt.
type AnswerPayload struct {
	Answer     string  `json:"answer" binding:"required"`
	AnsweredBy *string `json:"answered_by"`
}
