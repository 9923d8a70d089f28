// Package recruit provides an HTTP client for the recruitment API.
//
// # Overview
//
// The API exposes one read-only list endpoint per resource and a single
// write endpoint for interview rounds. Every list endpoint answers with an
// envelope of the form {"items": [...]}.
//
//	GET   /api/candidates
//	GET   /api/interview-rounds
//	GET   /api/job-positions
//	GET   /api/division-managers
//	GET   /api/documents
//	GET   /api/contracts
//	GET   /api/health-checkups
//	PATCH /api/interview-rounds/{id}
//
// # Client Usage
//
//	client, err := recruit.NewClient("https://hr.example.com", token)
//	if err != nil {
//		return err
//	}
//	rows, err := client.FetchCandidates(ctx, url.Values{"stage": {"offer"}})
//
// Fetch dispatches on a Resource when the caller does not know the row type
// statically, as the background poller does.
//
// # Requests
//
// Each request carries Accept, User-Agent, a fresh X-Request-ID and, when a
// token is configured, a bearer Authorization header. Errors wrap the
// underlying cause and name the request id so it can be matched against
// server logs.
//
// # Types
//
// Records mirror the wire format. Timestamps stay strings; the Parsed*
// helpers accept RFC3339, RFC3339Nano, "2006-01-02 15:04:05" and
// "2006-01-02" and return the zero time for anything else. Scores, OCR
// confidence and salaries are shopspring decimals so they sort and compare
// numerically without float rounding.
package recruit
