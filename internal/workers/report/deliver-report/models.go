package deliverreport

// Report is the subset of generate-report's output needed to mail it.
type Report struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	HTML        string `json:"html"`
	Title       string `json:"title,omitempty"`
}

type Input struct {
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
	Report     Report   `json:"report"`
}

type Output struct {
	Delivered  bool     `json:"delivered"`
	MessageID  string   `json:"messageId,omitempty"`
	Recipients []string `json:"recipients"`
	Reason     string   `json:"reason,omitempty"`
}
