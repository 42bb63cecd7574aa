package interfaces

type Mailer interface {
	Send(to, subject, htmlBody string) error
}
