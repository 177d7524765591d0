package alert

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/save-a-life/pkg/core/model"
)

type failingAlerter struct {
	calls int
}

func (f *failingAlerter) Alert(ctx context.Context, a Alert) error {
	f.calls++
	return errors.New("sink down")
}

type mockEmailSender struct {
	to      string
	subject string
	body    string
	err     error
}

func (m *mockEmailSender) SendEmail(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.to, m.subject, m.body = to, subject, body
	return nil
}

func sampleAlert() Alert {
	return Alert{
		Type:    model.NotificationBloodRequest,
		Title:   "New Blood Request",
		Message: "Alice needs 2 units of O- blood",
		From:    "Alice",
	}
}

func TestMulti_ContinuesPastFailingSink(t *testing.T) {
	failing := &failingAlerter{}
	recorder := NewRecorder()

	multi := NewMulti(zap.NewNop()).
		Add("broken", failing).
		Add("recorder", recorder)

	err := multi.Alert(context.Background(), sampleAlert())
	require.NoError(t, err)

	assert.Equal(t, 2, multi.Len())
	assert.Equal(t, 1, failing.calls)
	require.Len(t, recorder.Alerts(), 1)
	assert.Equal(t, "New Blood Request", recorder.Alerts()[0].Title)
}

func TestMulti_CountsOutcomePerSink(t *testing.T) {
	alertType := string(sampleAlert().Type)
	failedBefore := testutil.ToFloat64(alertsTotal.WithLabelValues("outcome-broken", alertType, OutcomeFailed))
	deliveredBefore := testutil.ToFloat64(alertsTotal.WithLabelValues("outcome-recorder", alertType, OutcomeDelivered))

	multi := NewMulti(zap.NewNop()).
		Add("outcome-broken", &failingAlerter{}).
		Add("outcome-recorder", NewRecorder())
	require.NoError(t, multi.Alert(context.Background(), sampleAlert()))

	assert.Equal(t, failedBefore+1, testutil.ToFloat64(alertsTotal.WithLabelValues("outcome-broken", alertType, OutcomeFailed)))
	assert.Equal(t, deliveredBefore+1, testutil.ToFloat64(alertsTotal.WithLabelValues("outcome-recorder", alertType, OutcomeDelivered)))
}

func TestMulti_NoSinks(t *testing.T) {
	multi := NewMulti(zap.NewNop())
	assert.NoError(t, multi.Alert(context.Background(), sampleAlert()))
	assert.Equal(t, 0, multi.Len())
}

func TestConsole_RendersTitleAndMessage(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)

	require.NoError(t, console.Alert(context.Background(), sampleAlert()))

	out := buf.String()
	assert.Contains(t, out, "New Blood Request")
	assert.Contains(t, out, "Alice needs 2 units of O- blood")
}

func TestEmail_SendsToCoordinator(t *testing.T) {
	sender := &mockEmailSender{}
	email := NewEmail(sender, "coordinator@example.com")

	require.NoError(t, email.Alert(context.Background(), sampleAlert()))

	assert.Equal(t, "coordinator@example.com", sender.to)
	assert.Equal(t, "[Save A Life] New Blood Request", sender.subject)
	assert.Contains(t, sender.body, "Alice needs 2 units of O- blood")
	assert.Contains(t, sender.body, "From: Alice")
	assert.Contains(t, sender.body, "Type: blood_request")
}

func TestEmail_WrapsSenderError(t *testing.T) {
	sender := &mockEmailSender{err: errors.New("quota exceeded")}
	email := NewEmail(sender, "coordinator@example.com")

	err := email.Alert(context.Background(), sampleAlert())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestRecorder_ReturnsCopy(t *testing.T) {
	recorder := NewRecorder()
	require.NoError(t, recorder.Alert(context.Background(), sampleAlert()))

	alerts := recorder.Alerts()
	alerts[0].Title = "changed"

	assert.Equal(t, "New Blood Request", recorder.Alerts()[0].Title)
}
