package model

import "time"

// Seminar represents a scheduled seminar persisted in the seminars
// table.  It is the only entity in this service.  The Date field is
// the default and only sort key for listings (descending).
//
// Fields:
//  ID          – primary key identifier, assigned by the DB.
//  Title       – seminar title, required on create.
//  Description – free-form description, required on create.
//  Date        – when the seminar takes place.
//  Location    – venue, required on create.
//  Speaker     – presenter name, required on create.
//  Capacity    – maximum attendees, defaults to 100 when not given.
//  CreatedAt   – creation timestamp, set by the INSERT.
//  UpdatedAt   – last update timestamp, nil until the first update.
type Seminar struct {
	ID          int64      `json:"id"`          // seminars.id
	Title       string     `json:"title"`       // seminars.title
	Description string     `json:"description"` // seminars.description
	Date        time.Time  `json:"date"`        // seminars.date
	Location    string     `json:"location"`    // seminars.location
	Speaker     string     `json:"speaker"`     // seminars.speaker
	Capacity    int        `json:"capacity"`    // seminars.capacity
	CreatedAt   time.Time  `json:"created_at"`  // seminars.created_at
	UpdatedAt   *time.Time `json:"updated_at"`  // seminars.updated_at
}
