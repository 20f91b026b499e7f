// Package response projects entities into the resource envelope the API
// speaks: {type, id, attributes, relationships, links}, wrapped in a
// document with a top-level self link and an optional included side-list.
package response

import (
	"fmt"
	"strconv"
)

const APIRoot = "/rest/v1"

type Links struct {
	Self string `json:"self"`
}

// ResourceIdentifier is a typed reference to another resource.
type ResourceIdentifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type Relationship struct {
	Links *Links              `json:"links,omitempty"`
	Data  *ResourceIdentifier `json:"data,omitempty"`
}

// Document is the top-level response body for both single resources and
// collections.
type Document struct {
	Links    *Links `json:"links,omitempty"`
	Data     any    `json:"data"`
	Included []any  `json:"included,omitempty"`
}

func NewDocument(self string, data any) Document {
	return Document{
		Links: &Links{Self: self},
		Data:  data,
	}
}

// ------------- Resource paths -------------

func MoviesPath() string {
	return APIRoot + "/movies"
}

func MoviePath(movieID string) string {
	return fmt.Sprintf("%s/movies/%s", APIRoot, movieID)
}

func SchedulesPath(movieID string) string {
	return MoviePath(movieID) + "/schedules"
}

func SchedulePath(movieID string, scheduleID int64) string {
	return fmt.Sprintf("%s/%d", SchedulesPath(movieID), scheduleID)
}

func RoomsPath(movieID string, scheduleID int64) string {
	return SchedulePath(movieID, scheduleID) + "/rooms"
}

func RoomPath(movieID string, scheduleID int64, roomID string) string {
	return fmt.Sprintf("%s/%s", RoomsPath(movieID, scheduleID), roomID)
}

func SeatsPath(movieID string, scheduleID int64, roomID string) string {
	return RoomPath(movieID, scheduleID, roomID) + "/seats"
}

func SeatPath(movieID string, scheduleID int64, roomID string, seatIndex int) string {
	return fmt.Sprintf("%s/%d", SeatsPath(movieID, scheduleID, roomID), seatIndex)
}

func TicketsPath() string {
	return APIRoot + "/tickets"
}

// ScheduleIDString renders a schedule id the way the API exposes it: the
// numeric timestamp as a string.
func ScheduleIDString(scheduleID int64) string {
	return strconv.FormatInt(scheduleID, 10)
}
