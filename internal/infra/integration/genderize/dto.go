package genderize

// Guess is the classifier's answer for one name. Gender comes back as JSON
// null for names the service has never seen; that decodes to "".
type Guess struct {
	Name        string  `json:"name"`
	Gender      string  `json:"gender"`
	Probability float64 `json:"probability"`
	Count       int     `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}
