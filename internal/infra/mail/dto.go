package mail

type OutreachEmailData struct {
	FirstName   string
	LastName    string
	CompanyName string
	Message     string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
