package entity

import "time"

// InquiryType classifies a contact form submission.
type InquiryType string

const (
	InquiryBusinessPartnership  InquiryType = "Business Partnership"
	InquiryExecutiveOpportunity InquiryType = "Executive Opportunity"
	InquiryTruffleCollaboration InquiryType = "Truffle Collaboration"
	InquiryConsultingServices   InquiryType = "Consulting Services"
	InquiryOther                InquiryType = "Other"
)

// InquiryTypes lists every accepted inquiry type in display order.
var InquiryTypes = []InquiryType{
	InquiryBusinessPartnership,
	InquiryExecutiveOpportunity,
	InquiryTruffleCollaboration,
	InquiryConsultingServices,
	InquiryOther,
}

// Valid reports whether t is one of InquiryTypes.
func (t InquiryType) Valid() bool {
	for _, known := range InquiryTypes {
		if t == known {
			return true
		}
	}
	return false
}

// SubmissionStatus tracks the manual triage state of a submission.
type SubmissionStatus string

const (
	StatusNew       SubmissionStatus = "new"
	StatusRead      SubmissionStatus = "read"
	StatusResponded SubmissionStatus = "responded"
)

// Valid reports whether s is a known status.
func (s SubmissionStatus) Valid() bool {
	switch s {
	case StatusNew, StatusRead, StatusResponded:
		return true
	}
	return false
}

// ContactSubmission is a message left through the contact form.
type ContactSubmission struct {
	ID          string           `json:"id" yaml:"id"`
	Name        string           `json:"name" yaml:"name"`
	Email       string           `json:"email" yaml:"email"`
	Subject     string           `json:"subject" yaml:"subject"`
	Message     string           `json:"message" yaml:"message"`
	InquiryType InquiryType      `json:"inquiryType" yaml:"inquiryType"`
	SubmittedAt time.Time        `json:"submittedAt" yaml:"submittedAt"`
	Status      SubmissionStatus `json:"status" yaml:"status"`
	IPAddress   *string          `json:"ipAddress" yaml:"ipAddress"`
	UserAgent   *string          `json:"userAgent" yaml:"userAgent"`
}
