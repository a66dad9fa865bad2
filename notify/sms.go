package notify

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SMSSender sends one text message and returns the transport's message id.
type SMSSender interface {
	Send(to, body string) (string, error)
}

// TwilioSender sends SMS through the Twilio messaging API. One client is
// constructed at startup and shared by all requests.
type TwilioSender struct {
	client *twilio.RestClient
	From   string
}

// NewTwilioSender builds an SMS sender from Twilio account credentials and
// the configured sender number.
func NewTwilioSender(accountSID, authToken, from string) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{client: client, From: from}
}

// Send delivers one SMS and returns the Twilio message SID.
func (s *TwilioSender) Send(to, body string) (string, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.From)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("send sms to %s: %w", to, err)
	}
	if resp.Sid == nil {
		return "", nil
	}
	return *resp.Sid, nil
}
