package mail

import (
	"net"
	"strconv"
	"time"

	simplemail "github.com/xhit/go-simple-mail"
)

const (
	defaultServerHost    = "localhost"
	defaultServerPort    = 1025
	serverConnectTimeout = 10 * time.Second
	serverKeepAlive      = false
)

type EmailSender interface {
	SendEmail(data Data) error
}

type HogSender struct {
	fromEmailAddress string
	serverHost       string
	serverPort       int
}

// NewHogSender builds a sender delivering through the SMTP server at
// smtpAddress ("host:port"). A malformed address falls back to the local
// MailHog default.
func NewHogSender(fromEmailAddress, smtpAddress string) EmailSender {
	host, portText, err := net.SplitHostPort(smtpAddress)
	port, convErr := strconv.Atoi(portText)
	if err != nil || convErr != nil {
		host = defaultServerHost
		port = defaultServerPort
	}

	return &HogSender{
		fromEmailAddress: fromEmailAddress,
		serverHost:       host,
		serverPort:       port,
	}
}

type AttachFile struct {
	Name string
	Path string
}

type Data struct {
	To      []string
	Subject string
	Content string
	Files   []AttachFile
}

// SendEmail sends an email
func (sender *HogSender) SendEmail(data Data) error {
	server := simplemail.NewSMTPClient()
	server.Host = sender.serverHost
	server.Port = sender.serverPort
	server.KeepAlive = serverKeepAlive
	server.ConnectTimeout = serverConnectTimeout

	client, err := server.Connect()
	if err != nil {
		return err
	}
	email := simplemail.NewMSG()
	email.SetFrom(sender.fromEmailAddress).
		SetSubject(data.Subject)

	// add To
	for _, t := range data.To {
		email.AddTo(t)
	}

	// attach files
	for _, f := range data.Files {
		email.AddAttachment(f.Path, f.Name)
	}

	email.SetBody(simplemail.TextHTML, data.Content)

	err = email.Send(client)
	if err != nil {
		return err
	}

	return nil
}
