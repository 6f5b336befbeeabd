package ports

import (
	"context"

	"github.com/simonindia/hr-portal/internal/core/domain"
)

// CreateReferralInput carries the referral submission fields. None of them
// are validated server-side; absent fields are stored as empty strings.
type CreateReferralInput struct {
	EmployeeName    string
	EmployeeID      string
	CandidateName   string
	CandidateEmail  string
	CandidateMobile string
	Position        string
	Department      string
	Experience      string
	CurrentCompany  string
	CurrentLocation string
	NoticePeriod    string
	CVLink          string
}

// ReferralService defines use-case operations for employee referrals.
type ReferralService interface {
	List(ctx context.Context) ([]*domain.Referral, error)
	Create(ctx context.Context, input CreateReferralInput) (int, error)
	// ExportCSV renders all referrals, newest first, as a CSV document and
	// returns the bytes together with the suggested attachment filename.
	ExportCSV(ctx context.Context) ([]byte, string, error)
}

// ReferralRepository defines persistence operations for referrals.
// Referrals are append-only: there is no update or delete.
type ReferralRepository interface {
	// List returns all referrals ordered by timestamp descending.
	List(ctx context.Context) ([]*domain.Referral, error)
	// Insert assigns a fresh id, stores the referral, and returns the id.
	Insert(ctx context.Context, referral *domain.Referral) (int, error)
}
