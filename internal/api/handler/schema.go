package handler

import (
	"time"

	"github.com/simonindia/hr-portal/internal/core/domain"
)

// errorEnvelope is the standard body for all 4xx/5xx responses.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// successEnvelope is the standard body for mutations with no payload.
type successEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// changes. Timestamps are rendered as ISO-8601 strings.

type postResponse struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Content   string `json:"content"`
	ImagePath string `json:"imagePath,omitempty"`
	Author    string `json:"author"`
	Timestamp string `json:"timestamp"`
}

func toPostResponse(p *domain.NewsPost) postResponse {
	return postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Category:  p.Category,
		Content:   p.Content,
		ImagePath: p.ImagePath,
		Author:    p.Author,
		Timestamp: p.Timestamp.UTC().Format(time.RFC3339),
	}
}

type referralResponse struct {
	ID              int    `json:"id"`
	EmployeeName    string `json:"employeeName"`
	EmployeeID      string `json:"employeeId"`
	CandidateName   string `json:"candidateName"`
	CandidateEmail  string `json:"candidateEmail"`
	CandidateMobile string `json:"candidateMobile"`
	Position        string `json:"position"`
	Department      string `json:"department"`
	Experience      string `json:"experience"`
	CurrentCompany  string `json:"currentCompany"`
	CurrentLocation string `json:"currentLocation"`
	NoticePeriod    string `json:"noticePeriod"`
	CVLink          string `json:"cvLink,omitempty"`
	Timestamp       string `json:"timestamp"`
}

func toReferralResponse(r *domain.Referral) referralResponse {
	return referralResponse{
		ID:              r.ID,
		EmployeeName:    r.EmployeeName,
		EmployeeID:      r.EmployeeID,
		CandidateName:   r.CandidateName,
		CandidateEmail:  r.CandidateEmail,
		CandidateMobile: r.CandidateMobile,
		Position:        r.Position,
		Department:      r.Department,
		Experience:      r.Experience,
		CurrentCompany:  r.CurrentCompany,
		CurrentLocation: r.CurrentLocation,
		NoticePeriod:    r.NoticePeriod,
		CVLink:          r.CVLink,
		Timestamp:       r.Timestamp.UTC().Format(time.RFC3339),
	}
}
