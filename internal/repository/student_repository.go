package repository

import (
	"context"

	"github.com/unilodge/rental-portal/internal/model"
)

// StudentRepository handles student renter data access.
type StudentRepository struct {
	db DB
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(db DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// ListByGroup retrieves every student renter in a group joined with the
// matching person row, ordered by renter ID so results are deterministic.
func (r *StudentRepository) ListByGroup(ctx context.Context, groupCode string) ([]model.StudentRenter, error) {
	rows, err := r.db.Query(ctx,
		`SELECT sr.student_renter_id, p.first_name, p.last_name, p.phone_number,
		        sr.program_of_study, sr.expected_graduation_year
		 FROM student_renters sr
		 JOIN persons p ON sr.student_renter_id = p.id
		 WHERE sr.group_code = $1
		 ORDER BY sr.student_renter_id`, groupCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.StudentRenter
	for rows.Next() {
		var s model.StudentRenter
		if err := rows.Scan(
			&s.StudentRenterID, &s.FirstName, &s.LastName, &s.PhoneNumber,
			&s.ProgramOfStudy, &s.ExpectedGraduationYear,
		); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
