package views

import (
	"github.com/five82/talentdesk/internal/recruit"
	"github.com/five82/talentdesk/internal/table"
)

// All returns the definition of every resource in tab order.
func All() []Definition {
	return []Definition{
		Candidates(),
		InterviewRounds(),
		JobPositions(),
		DivisionManagers(),
		Documents(),
		Contracts(),
		HealthCheckups(),
	}
}

func sortable(sortColumn, fallback string) table.Config {
	return table.Config{
		Search:             true,
		Sort:               true,
		SortColumn:         sortColumn,
		FallbackSortColumn: fallback,
	}
}

// Candidates lists applicants.
func Candidates() Definition {
	cfg := sortable("createdAt", "id")
	cfg.ColumnVisibility = map[string]bool{"idCardNumber": false, "updatedAt": false}
	return newDefinition(recruit.Candidates, "Candidates", cfg,
		[]Preset{
			{Name: "First name", Columns: []string{"firstName"}},
			{Name: "Last name", Columns: []string{"lastName"}},
			{Name: "Position", Columns: []string{"position"}},
			{Name: "Stage", Columns: []string{"stage"}},
			{Name: "Exact"},
		},
		func(c recruit.Candidate) int64 { return c.ID },
		table.Column[recruit.Candidate]{ID: "id", Header: "ID", Width: 6, NoGlobalFilter: true,
			Accessor: func(c recruit.Candidate) any { return c.ID }},
		table.Column[recruit.Candidate]{ID: "firstName", Header: "First name", Width: 14,
			Accessor: func(c recruit.Candidate) any { return c.FirstName }},
		table.Column[recruit.Candidate]{ID: "lastName", Header: "Last name", Width: 14,
			Accessor: func(c recruit.Candidate) any { return c.LastName }},
		table.Column[recruit.Candidate]{ID: "email", Header: "Email", Width: 24,
			Accessor: func(c recruit.Candidate) any { return c.Email }},
		table.Column[recruit.Candidate]{ID: "phone", Header: "Phone", Width: 12,
			Accessor: func(c recruit.Candidate) any { return c.Phone }},
		table.Column[recruit.Candidate]{ID: "position", Header: "Position", Width: 18,
			Accessor: func(c recruit.Candidate) any { return c.Position }},
		table.Column[recruit.Candidate]{ID: "stage", Header: "Stage", Width: 12, FilterFn: table.Equals,
			Accessor: func(c recruit.Candidate) any { return c.Stage }},
		table.Column[recruit.Candidate]{ID: "idCardNumber", Header: "ID card", Width: 15,
			Accessor: func(c recruit.Candidate) any { return c.IDCardNumber }},
		table.Column[recruit.Candidate]{ID: "createdAt", Header: "Created", Width: 16, NoGlobalFilter: true,
			Accessor: func(c recruit.Candidate) any { return c.ParsedCreatedAt() }},
		table.Column[recruit.Candidate]{ID: "updatedAt", Header: "Updated", Width: 16, NoGlobalFilter: true,
			Accessor: func(c recruit.Candidate) any { return c.ParsedUpdatedAt() }},
	)
}

// InterviewRounds lists scheduled interviews. Notes and score are editable.
func InterviewRounds() Definition {
	cfg := sortable("scheduledAt", "round")
	cfg.ColumnVisibility = map[string]bool{"createdAt": false}
	return newDefinition(recruit.InterviewRounds, "Interviews", cfg,
		[]Preset{
			{Name: "Candidate", Columns: []string{"candidateName"}},
			{Name: "Interviewer", Columns: []string{"interviewer"}},
			{Name: "Result", Columns: []string{"result"}},
			{Name: "Exact"},
		},
		func(r recruit.InterviewRound) int64 { return r.ID },
		table.Column[recruit.InterviewRound]{ID: "id", Header: "ID", Width: 6, NoGlobalFilter: true,
			Accessor: func(r recruit.InterviewRound) any { return r.ID }},
		table.Column[recruit.InterviewRound]{ID: "candidateName", Header: "Candidate", Width: 20, FilterFn: table.Fuzzy,
			Accessor: func(r recruit.InterviewRound) any { return r.CandidateName }},
		table.Column[recruit.InterviewRound]{ID: "round", Header: "Round", Width: 5,
			Accessor: func(r recruit.InterviewRound) any { return r.Round }},
		table.Column[recruit.InterviewRound]{ID: "interviewer", Header: "Interviewer", Width: 16,
			Accessor: func(r recruit.InterviewRound) any { return r.Interviewer }},
		table.Column[recruit.InterviewRound]{ID: "scheduledAt", Header: "Scheduled", Width: 16, NoGlobalFilter: true,
			Accessor: func(r recruit.InterviewRound) any { return r.ParsedScheduledAt() }},
		table.Column[recruit.InterviewRound]{ID: "score", Header: "Score", Width: 5, FilterFn: table.Equals,
			Accessor: func(r recruit.InterviewRound) any { return r.Score }},
		table.Column[recruit.InterviewRound]{ID: "result", Header: "Result", Width: 10, FilterFn: table.Equals,
			Accessor: func(r recruit.InterviewRound) any { return r.Result }},
		table.Column[recruit.InterviewRound]{ID: "notes", Header: "Notes", Width: 28, NoGlobalFilter: true,
			Accessor: func(r recruit.InterviewRound) any { return r.Notes }},
		table.Column[recruit.InterviewRound]{ID: "createdAt", Header: "Created", Width: 16, NoGlobalFilter: true,
			Accessor: func(r recruit.InterviewRound) any { return r.ParsedCreatedAt() }},
	)
}

// JobPositions lists requisitions.
func JobPositions() Definition {
	return newDefinition(recruit.JobPositions, "Positions", sortable("createdAt", "id"),
		[]Preset{
			{Name: "Title", Columns: []string{"title"}},
			{Name: "Division", Columns: []string{"division"}},
			{Name: "Exact"},
		},
		func(p recruit.JobPosition) int64 { return p.ID },
		table.Column[recruit.JobPosition]{ID: "id", Header: "ID", Width: 6, NoGlobalFilter: true,
			Accessor: func(p recruit.JobPosition) any { return p.ID }},
		table.Column[recruit.JobPosition]{ID: "title", Header: "Title", Width: 24,
			Accessor: func(p recruit.JobPosition) any { return p.Title }},
		table.Column[recruit.JobPosition]{ID: "division", Header: "Division", Width: 16,
			Accessor: func(p recruit.JobPosition) any { return p.Division }},
		table.Column[recruit.JobPosition]{ID: "openings", Header: "Openings", Width: 8,
			Accessor: func(p recruit.JobPosition) any { return p.Openings }},
		table.Column[recruit.JobPosition]{ID: "status", Header: "Status", Width: 10, FilterFn: table.Equals,
			Accessor: func(p recruit.JobPosition) any { return p.Status }},
		table.Column[recruit.JobPosition]{ID: "createdAt", Header: "Created", Width: 16, NoGlobalFilter: true,
			Accessor: func(p recruit.JobPosition) any { return p.ParsedCreatedAt() }},
	)
}

// DivisionManagers lists hiring approvers.
func DivisionManagers() Definition {
	return newDefinition(recruit.DivisionManagers, "Managers", sortable("createdAt", "id"),
		[]Preset{
			{Name: "Name", Columns: []string{"name"}},
			{Name: "Division", Columns: []string{"division"}},
			{Name: "Exact"},
		},
		func(m recruit.DivisionManager) int64 { return m.ID },
		table.Column[recruit.DivisionManager]{ID: "id", Header: "ID", Width: 6, NoGlobalFilter: true,
			Accessor: func(m recruit.DivisionManager) any { return m.ID }},
		table.Column[recruit.DivisionManager]{ID: "name", Header: "Name", Width: 22, FilterFn: table.Fuzzy,
			Accessor: func(m recruit.DivisionManager) any { return m.Name }},
		table.Column[recruit.DivisionManager]{ID: "division", Header: "Division", Width: 16,
			Accessor: func(m recruit.DivisionManager) any { return m.Division }},
		table.Column[recruit.DivisionManager]{ID: "email", Header: "Email", Width: 26,
			Accessor: func(m recruit.DivisionManager) any { return m.Email }},
		table.Column[recruit.DivisionManager]{ID: "createdAt", Header: "Created", Width: 16, NoGlobalFilter: true,
			Accessor: func(m recruit.DivisionManager) any { return m.ParsedCreatedAt() }},
	)
}

// Documents lists uploads with their OCR confidence.
func Documents() Definition {
	return newDefinition(recruit.Documents, "Documents", sortable("uploadedAt", "id"),
		[]Preset{
			{Name: "Candidate", Columns: []string{"candidateName"}},
			{Name: "Kind", Columns: []string{"kind"}},
			{Name: "Status", Columns: []string{"status"}},
			{Name: "Exact"},
		},
		func(d recruit.DocumentUpload) int64 { return d.ID },
		table.Column[recruit.DocumentUpload]{ID: "id", Header: "ID", Width: 6, NoGlobalFilter: true,
			Accessor: func(d recruit.DocumentUpload) any { return d.ID }},
		table.Column[recruit.DocumentUpload]{ID: "candidateName", Header: "Candidate", Width: 20, FilterFn: table.Fuzzy,
			Accessor: func(d recruit.DocumentUpload) any { return d.CandidateName }},
		table.Column[recruit.DocumentUpload]{ID: "kind", Header: "Kind", Width: 18,
			Accessor: func(d recruit.DocumentUpload) any { return d.KindLabel() }},
		table.Column[recruit.DocumentUpload]{ID: "fileName", Header: "File", Width: 22,
			Accessor: func(d recruit.DocumentUpload) any { return d.FileName }},
		table.Column[recruit.DocumentUpload]{ID: "status", Header: "Status", Width: 10, FilterFn: table.Equals,
			Accessor: func(d recruit.DocumentUpload) any { return d.Status }},
		table.Column[recruit.DocumentUpload]{ID: "ocrConfidence", Header: "OCR", Width: 5, NoGlobalFilter: true,
			Accessor: func(d recruit.DocumentUpload) any { return d.OCRConfidence }},
		table.Column[recruit.DocumentUpload]{ID: "uploadedAt", Header: "Uploaded", Width: 16, NoGlobalFilter: true,
			Accessor: func(d recruit.DocumentUpload) any { return d.ParsedUploadedAt() }},
	)
}

// Contracts lists employment offers.
func Contracts() Definition {
	return newDefinition(recruit.Contracts, "Contracts", sortable("createdAt", "id"),
		[]Preset{
			{Name: "Candidate", Columns: []string{"candidateName"}},
			{Name: "Position", Columns: []string{"position"}},
			{Name: "Status", Columns: []string{"status"}},
			{Name: "Exact"},
		},
		func(c recruit.ContractOfEmployment) int64 { return c.ID },
		table.Column[recruit.ContractOfEmployment]{ID: "id", Header: "ID", Width: 6, NoGlobalFilter: true,
			Accessor: func(c recruit.ContractOfEmployment) any { return c.ID }},
		table.Column[recruit.ContractOfEmployment]{ID: "candidateName", Header: "Candidate", Width: 20, FilterFn: table.Fuzzy,
			Accessor: func(c recruit.ContractOfEmployment) any { return c.CandidateName }},
		table.Column[recruit.ContractOfEmployment]{ID: "position", Header: "Position", Width: 18,
			Accessor: func(c recruit.ContractOfEmployment) any { return c.Position }},
		table.Column[recruit.ContractOfEmployment]{ID: "salary", Header: "Salary", Width: 10, FilterFn: table.Equals,
			Accessor: func(c recruit.ContractOfEmployment) any { return c.Salary }},
		table.Column[recruit.ContractOfEmployment]{ID: "startDate", Header: "Start", Width: 16, NoGlobalFilter: true,
			Accessor: func(c recruit.ContractOfEmployment) any { return c.ParsedStartDate() }},
		table.Column[recruit.ContractOfEmployment]{ID: "status", Header: "Status", Width: 10, FilterFn: table.Equals,
			Accessor: func(c recruit.ContractOfEmployment) any { return c.Status }},
		table.Column[recruit.ContractOfEmployment]{ID: "signedAt", Header: "Signed", Width: 16, NoGlobalFilter: true,
			Accessor: func(c recruit.ContractOfEmployment) any { return c.ParsedSignedAt() }},
		table.Column[recruit.ContractOfEmployment]{ID: "createdAt", Header: "Created", Width: 16, NoGlobalFilter: true,
			Accessor: func(c recruit.ContractOfEmployment) any { return c.ParsedCreatedAt() }},
	)
}

// HealthCheckups lists pre-employment medical checks.
func HealthCheckups() Definition {
	return newDefinition(recruit.HealthCheckups, "Health", sortable("createdAt", "id"),
		[]Preset{
			{Name: "Candidate", Columns: []string{"candidateName"}},
			{Name: "Hospital", Columns: []string{"hospital"}},
			{Name: "Exact"},
		},
		func(h recruit.HealthCheckup) int64 { return h.ID },
		table.Column[recruit.HealthCheckup]{ID: "id", Header: "ID", Width: 6, NoGlobalFilter: true,
			Accessor: func(h recruit.HealthCheckup) any { return h.ID }},
		table.Column[recruit.HealthCheckup]{ID: "candidateName", Header: "Candidate", Width: 20, FilterFn: table.Fuzzy,
			Accessor: func(h recruit.HealthCheckup) any { return h.CandidateName }},
		table.Column[recruit.HealthCheckup]{ID: "hospital", Header: "Hospital", Width: 22,
			Accessor: func(h recruit.HealthCheckup) any { return h.Hospital }},
		table.Column[recruit.HealthCheckup]{ID: "result", Header: "Result", Width: 12, FilterFn: table.Equals,
			Accessor: func(h recruit.HealthCheckup) any { return h.Result }},
		table.Column[recruit.HealthCheckup]{ID: "checkedAt", Header: "Checked", Width: 16, NoGlobalFilter: true,
			Accessor: func(h recruit.HealthCheckup) any { return h.ParsedCheckedAt() }},
		table.Column[recruit.HealthCheckup]{ID: "createdAt", Header: "Created", Width: 16, NoGlobalFilter: true,
			Accessor: func(h recruit.HealthCheckup) any { return h.ParsedCreatedAt() }},
	)
}
