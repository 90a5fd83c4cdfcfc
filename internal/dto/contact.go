package dto

// ContactSubmissionRequest is the public contact form payload.
type ContactSubmissionRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	InquiryType string `json:"inquiryType"`
}

// ContactSubmissionResponse is returned after a successful submission.
type ContactSubmissionResponse struct {
	ID string `json:"id"`
}

// StatusUpdateRequest carries the new triage status of a submission.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
