package model

// StudentRenter is a member of a rental group, joined with the matching
// person row for display name and phone number. Read-only here.
type StudentRenter struct {
	StudentRenterID        int
	FirstName              string
	LastName               string
	PhoneNumber            string
	ProgramOfStudy         string
	ExpectedGraduationYear int
}

// DisplayName returns the first and last name separated by one space.
func (s StudentRenter) DisplayName() string {
	return s.FirstName + " " + s.LastName
}
