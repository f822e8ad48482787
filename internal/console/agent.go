package console

import (
	"context"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customers-console/internal/service"
	"strings"
	"time"
)

const (
	agentGreeting     = "Hello! How can I help you today?"
	agentApology      = "Sorry, I encountered an error while processing your request. Please try again."
	agentInstructions = ". Please provide the response in a readable text format with creating the list or table format. Do not return raw JSON."
)

type Message struct {
	ID        string
	Text      string
	FromUser  bool
	Timestamp time.Time
}

// AgentScreen is a conversation with the customers agent
type AgentScreen struct {
	screen
	customerSvc service.CustomerService
	messages    []Message
	now         func() time.Time
}

func NewAgentScreen(customerSvc service.CustomerService) *AgentScreen {
	s := &AgentScreen{customerSvc: customerSvc, now: time.Now}
	s.init(0)
	s.messages = []Message{s.message(agentGreeting, false, s.now())}
	return s
}

// Send asks the agent. Blank text and sends while a question is pending are ignored.
func (s *AgentScreen) Send(ctx context.Context, text string) bool {
	s.mu.Lock()
	if s.closed || strings.TrimSpace(text) == "" || s.state.Status == Loading {
		s.mu.Unlock()
		return false
	}

	s.messages = append(s.messages, s.message(text, true, s.now()))
	s.beginLocked()
	s.mu.Unlock()

	answer, err := s.customerSvc.AskAgent(ctx, text+agentInstructions)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return true
	}

	if err != nil {
		logrus.WithError(err).Error("agent request failed")
		s.messages = append(s.messages, s.message(agentApology, false, s.now()))
		s.failLocked(agentApology, err)
		return true
	}

	ts, err := time.Parse(time.RFC3339, answer.Timestamp)
	if err != nil {
		ts = s.now()
	}
	s.messages = append(s.messages, s.message(answer.Answer, false, ts))
	s.idleLocked()
	return true
}

// Messages returns conversation in order, greeting first
func (s *AgentScreen) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]Message, len(s.messages))
	copy(res, s.messages)
	return res
}

func (s *AgentScreen) message(text string, fromUser bool, ts time.Time) Message {
	return Message{ID: uuid.NewString(), Text: text, FromUser: fromUser, Timestamp: ts}
}
