package mail

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []Message
	err  error
	gate chan struct{}
}

func (s *recordingSender) Send(ctx context.Context, msg Message) error {
	if s.gate != nil {
		<-s.gate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return s.err
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func TestDispatcher_DeliversAndDrains(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, DispatcherConfig{Workers: 3, QueueSize: 10}, zerolog.Nop())

	for i := 0; i < 10; i++ {
		assert.True(t, d.Enqueue(Message{To: "s@college.edu", Subject: "x"}))
	}

	require.NoError(t, d.Shutdown(context.Background()))
	assert.Equal(t, 10, sender.count())
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	sender := &recordingSender{gate: make(chan struct{})}
	d := NewDispatcher(sender, DispatcherConfig{Workers: 1, QueueSize: 1}, zerolog.Nop())

	// one message is held by the blocked worker, one fills the queue
	accepted := 0
	for i := 0; i < 5; i++ {
		if d.Enqueue(Message{To: "s@college.edu"}) {
			accepted++
		}
		time.Sleep(5 * time.Millisecond)
	}
	assert.LessOrEqual(t, accepted, 2)
	assert.GreaterOrEqual(t, accepted, 1)

	close(sender.gate)
	require.NoError(t, d.Shutdown(context.Background()))
	assert.Equal(t, accepted, sender.count())
}

func TestDispatcher_SendFailureDoesNotStopWorkers(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	d := NewDispatcher(sender, DispatcherConfig{Workers: 1, QueueSize: 4}, zerolog.Nop())

	d.Enqueue(Message{To: "a@x.y"})
	d.Enqueue(Message{To: "b@x.y"})

	require.NoError(t, d.Shutdown(context.Background()))
	assert.Equal(t, 2, sender.count())
}

func TestDispatcher_ClosedRejects(t *testing.T) {
	d := NewDispatcher(&recordingSender{}, DispatcherConfig{}, zerolog.Nop())
	require.NoError(t, d.Shutdown(context.Background()))

	assert.False(t, d.Enqueue(Message{To: "a@x.y"}))
	assert.ErrorIs(t, d.Shutdown(context.Background()), ErrDispatcherClosed)
}

func TestDispatcher_ShutdownTimeout(t *testing.T) {
	sender := &recordingSender{gate: make(chan struct{})}
	defer close(sender.gate)
	d := NewDispatcher(sender, DispatcherConfig{Workers: 1, QueueSize: 2}, zerolog.Nop())
	d.Enqueue(Message{To: "a@x.y"})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Shutdown(ctx), context.DeadlineExceeded)
}

func TestTemplates(t *testing.T) {
	college := College{Name: "Springfield College", Email: "admin@springfield.edu"}

	msg := StudentCredentials(StudentDetails{
		Name: "Lisa", Email: "lisa@springfield.edu", Number: "555", ParentsNumber: "556",
		Course: "B.Tech", Department: "CSE", Semester: 3,
	}, college, "a1b2c3", "https://ams.example/login")
	assert.Equal(t, "lisa@springfield.edu", msg.To)
	assert.Equal(t, "admin@springfield.edu", msg.ReplyTo)
	assert.Equal(t, SubjectStudentRegistered, msg.Subject)
	assert.Contains(t, msg.Body, "Welcome! You've been registered by Springfield College.")
	assert.Contains(t, msg.Body, "Password: a1b2c3")
	assert.Contains(t, msg.Body, "Semester: 3")
	assert.Contains(t, msg.Body, "https://ams.example/login")

	updated := FacultyUpdated(FacultyDetails{Name: "Edna", Email: "edna@springfield.edu", Designation: "Professor"}, college)
	assert.Contains(t, updated.Body, "This is an update from Springfield College.")
	assert.NotContains(t, updated.Body, "Password:")

	welcome := CollegeWelcome(college)
	assert.True(t, strings.HasPrefix(welcome.Body, "Welcome to AMS,"))
	assert.Contains(t, welcome.Body, "The AMS Team")

	notice := AttendanceStatus(AttendanceNotice{
		StudentName: "Lisa", StudentEmail: "lisa@springfield.edu", Subject: "Maths",
		Date: "2025-01-02", Status: "PRESENT", FacultyName: "Edna",
	}, college)
	assert.Equal(t, SubjectAttendanceStatus, notice.Subject)
	assert.Contains(t, notice.Body, "Status: PRESENT")
}

func TestBuildMIME(t *testing.T) {
	raw := string(buildMIME(From{Name: "AMS", Email: "noreply@ams.app"}, Message{
		To: "a@x.y", ReplyTo: "c@x.y", Subject: "Hi", Body: "line1\nline2",
	}))

	assert.Contains(t, raw, "From: AMS <noreply@ams.app>\r\n")
	assert.Contains(t, raw, "Reply-To: c@x.y\r\n")
	assert.True(t, strings.HasSuffix(raw, "\r\n\r\nline1\r\nline2"))
}

func TestSendGridPrepare(t *testing.T) {
	s := NewSendGridSender("key", From{Name: "AMS", Email: "noreply@ams.app"})
	m := s.prepare(Message{To: "a@x.y", ToName: "A", ReplyTo: "c@x.y", Subject: "Hi", Body: "body"})

	require.Len(t, m.Personalizations, 1)
	assert.Equal(t, "Hi", m.Personalizations[0].Subject)
	assert.Equal(t, "a@x.y", m.Personalizations[0].To[0].Address)
	assert.Equal(t, "c@x.y", m.ReplyTo.Address)
	assert.Equal(t, "noreply@ams.app", m.From.Address)
}

type stallingSender struct{}

func (stallingSender) Send(ctx context.Context, _ Message) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestDispatcher_SendTimeoutFreesWorkers(t *testing.T) {
	d := NewDispatcher(stallingSender{}, DispatcherConfig{Workers: 1, QueueSize: 4, SendTimeout: 20 * time.Millisecond}, zerolog.Nop())

	for i := 0; i < 3; i++ {
		require.True(t, d.Enqueue(Message{To: "s@college.edu"}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, d.Shutdown(ctx))
}
