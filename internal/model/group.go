package model

import "net/url"

// PropertyType is the kind of dwelling a group is looking for, or a
// property is listed as.
type PropertyType string

const (
	PropertyHouse     PropertyType = "house"
	PropertyApartment PropertyType = "apartment"
	PropertyRoom      PropertyType = "room"
)

// YesNo is the two-valued preference used for parking and accessibility.
type YesNo string

const (
	PreferenceYes YesNo = "yes"
	PreferenceNo  YesNo = "no"
)

// LaundryPreference is where the group wants laundry facilities.
type LaundryPreference string

const (
	LaundryEnsuite LaundryPreference = "ensuite"
	LaundryShared  LaundryPreference = "shared"
)

// RentalGroup is a set of student renters sharing housing preferences.
// The group code is the natural key; it is never created or deleted by
// this application, only its seven preference fields are updated.
type RentalGroup struct {
	GroupCode                string
	DesiredPropertyType      PropertyType
	DesiredNumberOfBedrooms  int
	DesiredNumberOfBathrooms int
	ParkingPreference        YesNo
	LaundryPreference        LaundryPreference
	MaxPrice                 float64
	AccessibilityPreference  YesNo
}

// UpdatePreferencesRequest is the form payload for overwriting a group's
// preference fields. All seven fields are applied in a single UPDATE.
type UpdatePreferencesRequest struct {
	DesiredPropertyType      PropertyType      `form:"DesiredPropertyType" binding:"required,oneof=house apartment room"`
	DesiredNumberOfBedrooms  int               `form:"DesiredNumberOfBedrooms" binding:"min=0"`
	DesiredNumberOfBathrooms int               `form:"DesiredNumberOfBathrooms" binding:"min=0"`
	ParkingPreference        YesNo             `form:"ParkingPreference" binding:"required,oneof=yes no"`
	LaundryPreference        LaundryPreference `form:"LaundryPreference" binding:"required,oneof=ensuite shared"`
	MaxPrice                 float64           `form:"MaxPrice" binding:"min=0"`
	AccessibilityPreference  YesNo             `form:"AccessibilityPreference" binding:"required,oneof=yes no"`
}

// GroupView is the combined read model for the group detail page.
// Group is nil when the code matches no row; the template renders an
// empty state instead of failing.
type GroupView struct {
	GroupCode string
	Group     *RentalGroup
	Students  []StudentRow
}

// StudentRow is one roster line on the group detail page.
type StudentRow struct {
	ID                     int
	FullName               string
	PhoneNumber            string
	ProgramOfStudy         string
	ExpectedGraduationYear int
}

// Redirect instructs the caller to re-issue a read for the same group
// after a successful write, so the client always sees freshly queried
// state rather than an inline render of the mutation.
type Redirect struct {
	GroupCode string
}

// Location returns the detail-view URL the client should be sent to.
func (r Redirect) Location() string {
	return "/groups/detail?group_id=" + url.QueryEscape(r.GroupCode)
}
