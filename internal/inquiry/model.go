package inquiry

// Status tracks where an inquiry sits in the admin triage workflow.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusArchived   Status = "archived"
)

// Statuses lists every valid workflow status.
var Statuses = []Status{StatusNew, StatusInProgress, StatusCompleted, StatusArchived}

// ValidStatus reports whether s is one of the enumerated workflow statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// Inquiry is one contact-form submission and its triage state.
type Inquiry struct {
	ID      string `dynamodbav:"id" json:"id"`
	Name    string `dynamodbav:"name" json:"name"`
	Email   string `dynamodbav:"email" json:"email"`
	Phone   string `dynamodbav:"phone" json:"phone"`
	Company string `dynamodbav:"company,omitempty" json:"company"`
	Service string `dynamodbav:"service,omitempty" json:"service"`
	Message string `dynamodbav:"message" json:"message"`

	// Client-reported submission metadata; informational only, never trusted
	// for ordering.
	Timestamp string `dynamodbav:"timestamp,omitempty" json:"timestamp"`
	UserAgent string `dynamodbav:"userAgent,omitempty" json:"userAgent"`
	IP        string `dynamodbav:"ip,omitempty" json:"ip"`

	Status    Status `dynamodbav:"status" json:"status"`
	Read      bool   `dynamodbav:"read" json:"read"`
	Responded bool   `dynamodbav:"responded" json:"responded"`
	Notes     string `dynamodbav:"notes,omitempty" json:"notes,omitempty"`

	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt string `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// SubmissionRequest is the raw body of a contact-form submission.
type SubmissionRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Service   string `json:"service"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	UserAgent string `json:"userAgent"`
	IP        string `json:"ip"`
	Honeypot  string `json:"honeypot"`
}

// Submission holds the sanitized fields accepted for persistence.
type Submission struct {
	Name      string
	Email     string
	Phone     string
	Company   string
	Service   string
	Message   string
	Timestamp string
	UserAgent string
	IP        string
}

// UpdateRequest is a partial update of an inquiry's workflow fields. Nil
// pointers leave the corresponding field untouched.
type UpdateRequest struct {
	Status    *Status `json:"status,omitempty"`
	Read      *bool   `json:"read,omitempty"`
	Responded *bool   `json:"responded,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// Empty reports whether the request carries no changes.
func (r UpdateRequest) Empty() bool {
	return r.Status == nil && r.Read == nil && r.Responded == nil && r.Notes == nil
}
