package mail

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talentbridge/go-talent-match/internal/config"
)

func TestComposeMatchAlert(t *testing.T) {
	subject, content := ComposeMatchAlert("Python devs in Milan", []int32{3, 7}, 12)

	require.Equal(t, `2 new candidates match your saved search "Python devs in Milan"`, subject)
	require.Contains(t, content, "12 candidates in total")
	require.Contains(t, content, "3, 7")
}

func TestNewHogSenderServerAddress(t *testing.T) {
	sender := NewHogSender("alerts@test.com", "mailhog.internal:2525").(*HogSender)
	require.Equal(t, "mailhog.internal", sender.serverHost)
	require.Equal(t, 2525, sender.serverPort)

	// a malformed address falls back to the local MailHog default
	fallback := NewHogSender("alerts@test.com", "not-an-address").(*HogSender)
	require.Equal(t, defaultServerHost, fallback.serverHost)
	require.Equal(t, defaultServerPort, fallback.serverPort)
}

func TestSendEmailWithMailHog(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	cfg, err := config.LoadConfig("../..")
	require.NoError(t, err)

	sender := NewHogSender(cfg.EmailSenderAddress, cfg.SMTPServerAddress)

	subject, content := ComposeMatchAlert("Backend engineers", []int32{1}, 4)

	err = sender.SendEmail(Data{
		To:      []string{"recruiter@example.com"},
		Subject: subject,
		Content: content,
	})
	require.NoError(t, err)
}
