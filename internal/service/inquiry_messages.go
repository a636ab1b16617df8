package service

import (
	"fmt"

	"github.com/osa911/inquiry-mailer/internal/api/sanitization"
	"github.com/osa911/inquiry-mailer/internal/mail"
)

const notificationSubjectPrefix = "New Inquiry from Website: "

const notificationBody = `<p><strong>Name:</strong> %s</p>` +
	`<p><strong>Email:</strong> %s</p>` +
	`<p><strong>Subject:</strong> %s</p>` +
	`<p><strong>Message:</strong></p>` +
	`<p>%s</p>`

// Spanish first, then English. %[1]s is the submitter, %[2]s the firm.
const acknowledgmentBody = `<p>Estimado/a %[1]s,</p>` +
	`<p>Gracias por contactar a %[2]s. Hemos recibido su consulta y nos pondremos en contacto con usted lo antes posible.</p>` +
	`<p>Agradecemos su paciencia.</p>` +
	`<p>Atentamente,</p>` +
	`<p>El Equipo de %[2]s</p>` +
	`<p>---</p>` +
	`<p>Dear %[1]s,</p>` +
	`<p>Thank you for contacting %[2]s. We have received your inquiry and will get back to you as soon as possible.</p>` +
	`<p>We appreciate your patience.</p>` +
	`<p>Sincerely,</p>` +
	`<p>The Team at %[2]s</p><br>`

// notificationMessage is the mail sent to the firm inbox.
func (s *InquiryService) notificationMessage(sub *Submission) mail.Message {
	return mail.Message{
		From:    s.cfg.ServiceAccount,
		To:      s.cfg.FirmInbox,
		ReplyTo: sub.Email,
		Subject: notificationSubjectPrefix + sanitization.SingleLine(sub.Subject),
		HTML: fmt.Sprintf(notificationBody,
			sanitization.EscapeHTML(sub.Name),
			sanitization.EscapeHTML(sub.Email),
			sanitization.EscapeHTML(sub.Subject),
			sanitization.EscapeMultiline(sub.Message),
		),
	}
}

// acknowledgmentMessage is the automatic reply sent to the submitter.
func (s *InquiryService) acknowledgmentMessage(sub *Submission) mail.Message {
	return mail.Message{
		From:    s.cfg.ServiceAccount,
		To:      sub.Email,
		Subject: "Thank You for Your Inquiry - " + s.cfg.FirmName,
		HTML: fmt.Sprintf(acknowledgmentBody,
			sanitization.EscapeHTML(sub.Name),
			sanitization.EscapeHTML(s.cfg.FirmName),
		),
	}
}
