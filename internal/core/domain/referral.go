package domain

import "time"

// Referral is an employee-submitted candidate recommendation. Referrals are
// immutable once created; there are no update or delete operations.
//
// Field presence is not enforced at creation time: the submission form is
// trusted and absent fields are persisted as empty strings.
type Referral struct {
	ID              int       `bson:"_id"`
	EmployeeName    string    `bson:"employee_name"`
	EmployeeID      string    `bson:"employee_id"`
	CandidateName   string    `bson:"candidate_name"`
	CandidateEmail  string    `bson:"candidate_email"`
	CandidateMobile string    `bson:"candidate_mobile"`
	Position        string    `bson:"position"`
	Department      string    `bson:"department"`
	Experience      string    `bson:"experience"`
	CurrentCompany  string    `bson:"current_company"`
	CurrentLocation string    `bson:"current_location"`
	NoticePeriod    string    `bson:"notice_period"`
	CVLink          string    `bson:"cv_link,omitempty"`
	Timestamp       time.Time `bson:"timestamp"`
}
