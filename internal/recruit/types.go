package recruit

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

// ListResponse is the envelope returned by every list endpoint.
type ListResponse[T any] struct {
	Items []T `json:"items"`
}

// Candidate is an applicant moving through the hiring pipeline.
type Candidate struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Position     string `json:"position"`
	Stage        string `json:"stage"`
	IDCardNumber string `json:"idCardNumber"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// FullName joins the first and last name.
func (c Candidate) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// ParsedCreatedAt returns the parsed CreatedAt timestamp.
func (c Candidate) ParsedCreatedAt() time.Time {
	return parseTime(c.CreatedAt)
}

// ParsedUpdatedAt returns the parsed UpdatedAt timestamp.
func (c Candidate) ParsedUpdatedAt() time.Time {
	return parseTime(c.UpdatedAt)
}

// InterviewRound is one scheduled interview of a candidate.
type InterviewRound struct {
	ID            int64               `json:"id"`
	CandidateID   int64               `json:"candidateId"`
	CandidateName string              `json:"candidateName"`
	Round         int                 `json:"round"`
	Interviewer   string              `json:"interviewer"`
	ScheduledAt   string              `json:"scheduledAt"`
	Score         decimal.NullDecimal `json:"score"`
	Result        string              `json:"result"`
	Notes         string              `json:"notes"`
	CreatedAt     string              `json:"createdAt"`
}

// ParsedScheduledAt returns the parsed ScheduledAt timestamp.
func (r InterviewRound) ParsedScheduledAt() time.Time {
	return parseTime(r.ScheduledAt)
}

// ParsedCreatedAt returns the parsed CreatedAt timestamp.
func (r InterviewRound) ParsedCreatedAt() time.Time {
	return parseTime(r.CreatedAt)
}

// RoundPatch is the body of an interview round update.
type RoundPatch struct {
	Notes string              `json:"notes"`
	Score decimal.NullDecimal `json:"score"`
}

// JobPosition is an open or closed requisition.
type JobPosition struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Division  string `json:"division"`
	Openings  int    `json:"openings"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// ParsedCreatedAt returns the parsed CreatedAt timestamp.
func (p JobPosition) ParsedCreatedAt() time.Time {
	return parseTime(p.CreatedAt)
}

// DivisionManager approves hires for a division.
type DivisionManager struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Division  string `json:"division"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// ParsedCreatedAt returns the parsed CreatedAt timestamp.
func (m DivisionManager) ParsedCreatedAt() time.Time {
	return parseTime(m.CreatedAt)
}

// DocumentUpload is a file a candidate submitted, with its OCR result.
type DocumentUpload struct {
	ID            int64               `json:"id"`
	CandidateID   int64               `json:"candidateId"`
	CandidateName string              `json:"candidateName"`
	Kind          string              `json:"kind"`
	FileName      string              `json:"fileName"`
	Status        string              `json:"status"`
	OCRConfidence decimal.NullDecimal `json:"ocrConfidence"`
	UploadedAt    string              `json:"uploadedAt"`
}

// KindLabel renders the document kind for display.
func (d DocumentUpload) KindLabel() string {
	switch strings.ToLower(strings.TrimSpace(d.Kind)) {
	case "id_card":
		return "ID card"
	case "house_registration":
		return "House registration"
	case "education":
		return "Education"
	case "":
		return ""
	default:
		k := strings.ReplaceAll(strings.TrimSpace(d.Kind), "_", " ")
		return strings.ToUpper(k[:1]) + k[1:]
	}
}

// ParsedUploadedAt returns the parsed UploadedAt timestamp.
func (d DocumentUpload) ParsedUploadedAt() time.Time {
	return parseTime(d.UploadedAt)
}

// ContractOfEmployment is an offer issued to a candidate.
type ContractOfEmployment struct {
	ID            int64           `json:"id"`
	CandidateID   int64           `json:"candidateId"`
	CandidateName string          `json:"candidateName"`
	Position      string          `json:"position"`
	Salary        decimal.Decimal `json:"salary"`
	StartDate     string          `json:"startDate"`
	Status        string          `json:"status"`
	SignedAt      *string         `json:"signedAt"`
	CreatedAt     string          `json:"createdAt"`
}

// ParsedStartDate returns the parsed StartDate.
func (c ContractOfEmployment) ParsedStartDate() time.Time {
	return parseTime(c.StartDate)
}

// ParsedSignedAt returns the signing time, or the zero time when unsigned.
func (c ContractOfEmployment) ParsedSignedAt() time.Time {
	if c.SignedAt == nil {
		return time.Time{}
	}
	return parseTime(*c.SignedAt)
}

// ParsedCreatedAt returns the parsed CreatedAt timestamp.
func (c ContractOfEmployment) ParsedCreatedAt() time.Time {
	return parseTime(c.CreatedAt)
}

// HealthCheckup is a pre-employment medical check.
type HealthCheckup struct {
	ID            int64   `json:"id"`
	CandidateID   int64   `json:"candidateId"`
	CandidateName string  `json:"candidateName"`
	Hospital      string  `json:"hospital"`
	Result        string  `json:"result"`
	CheckedAt     *string `json:"checkedAt"`
	CreatedAt     string  `json:"createdAt"`
}

// ParsedCheckedAt returns the check time, or the zero time when pending.
func (h HealthCheckup) ParsedCheckedAt() time.Time {
	if h.CheckedAt == nil {
		return time.Time{}
	}
	return parseTime(*h.CheckedAt)
}

// ParsedCreatedAt returns the parsed CreatedAt timestamp.
func (h HealthCheckup) ParsedCreatedAt() time.Time {
	return parseTime(h.CreatedAt)
}

func parseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	for _, layout := range []string{timestampLayout, dateLayout} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
