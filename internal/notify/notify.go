package notify

import "fmt"

// EmailSender delivers one message to one address.
type EmailSender interface {
	Send(to, subject, body string) error
}

// SMSSender delivers a short text to a phone number.
type SMSSender interface {
	Send(to, body string) error
}

// OtpSender is the slice of delivery the auth flows need. Delivery is
// fire-and-forget there: a failed send is logged, never surfaced.
type OtpSender interface {
	SendOtp(email, code string) error
}

type Notifier struct {
	mail EmailSender
}

func NewNotifier(mail EmailSender) *Notifier {
	return &Notifier{mail: mail}
}

func (n *Notifier) SendOtp(email, code string) error {
	body := fmt.Sprintf(
		"Your OTP code is %s. Please do not share this with anyone. It expires in 5 minutes.",
		code,
	)
	return n.mail.Send(email, "Your OTP Code", body)
}
