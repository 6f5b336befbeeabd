package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/simonindia/hr-portal/internal/core/domain"
	"github.com/simonindia/hr-portal/internal/core/ports"
)

// csvHeader is the fixed export column order. The Date column carries the
// submission timestamp.
var csvHeader = []string{
	"Date",
	"Employee Name",
	"Employee ID",
	"Candidate Name",
	"Candidate Email",
	"Candidate Mobile",
	"Position",
	"Department",
	"Years of Experience",
	"Current Company",
	"Current Location",
	"Notice Period",
	"CV Link",
}

// ReferralService implements submission, listing and CSV export of
// employee referrals. Referrals are immutable after creation.
type ReferralService struct {
	repo ports.ReferralRepository
	log  zerolog.Logger
}

func NewReferralService(repo ports.ReferralRepository, log zerolog.Logger) *ReferralService {
	return &ReferralService{repo: repo, log: log}
}

func (s *ReferralService) List(ctx context.Context) ([]*domain.Referral, error) {
	return s.repo.List(ctx)
}

// Create stores a referral exactly as submitted. Unlike news posts no field
// presence is enforced: the submission form is a trusted internal page and
// absent fields become empty strings.
func (s *ReferralService) Create(ctx context.Context, input ports.CreateReferralInput) (int, error) {
	referral := &domain.Referral{
		EmployeeName:    input.EmployeeName,
		EmployeeID:      input.EmployeeID,
		CandidateName:   input.CandidateName,
		CandidateEmail:  input.CandidateEmail,
		CandidateMobile: input.CandidateMobile,
		Position:        input.Position,
		Department:      input.Department,
		Experience:      input.Experience,
		CurrentCompany:  input.CurrentCompany,
		CurrentLocation: input.CurrentLocation,
		NoticePeriod:    input.NoticePeriod,
		CVLink:          input.CVLink,
		Timestamp:       time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, referral)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create referral")
		return 0, err
	}

	s.log.Info().Int("referral_id", id).Str("position", input.Position).Msg("referral submitted")
	return id, nil
}

// ExportCSV renders one header row plus one row per referral, newest first.
// An absent cvLink renders as an empty field.
func (s *ReferralService) ExportCSV(ctx context.Context) ([]byte, string, error) {
	referrals, err := s.repo.List(ctx)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, "", fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range referrals {
		row := []string{
			r.Timestamp.Format("2006-01-02 15:04"),
			r.EmployeeName,
			r.EmployeeID,
			r.CandidateName,
			r.CandidateEmail,
			r.CandidateMobile,
			r.Position,
			r.Department,
			r.Experience,
			r.CurrentCompany,
			r.CurrentLocation,
			r.NoticePeriod,
			r.CVLink,
		}
		if err := w.Write(row); err != nil {
			return nil, "", fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("flush csv: %w", err)
	}

	filename := fmt.Sprintf("referrals_%s.csv", time.Now().UTC().Format("20060102"))
	return buf.Bytes(), filename, nil
}
