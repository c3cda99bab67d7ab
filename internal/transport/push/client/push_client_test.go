package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type PushClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	mu       sync.Mutex
	requests [][]Message
	auth     string
	status   int
	tickets  func(messages []Message) []ticket
}

func TestPushClientSuite(t *testing.T) {
	suite.Run(t, new(PushClientTestSuite))
}

func (s *PushClientTestSuite) SetupTest() {
	s.requests = nil
	s.auth = ""
	s.status = http.StatusOK
	s.tickets = func(messages []Message) []ticket {
		tickets := make([]ticket, len(messages))
		for i := range messages {
			tickets[i] = ticket{Status: ticketStatusOK, ID: fmt.Sprintf("ticket-%d", i)}
		}
		return tickets
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST "+RoutePushSend, func(w http.ResponseWriter, r *http.Request) {
		var messages []Message
		s.NoError(json.NewDecoder(r.Body).Decode(&messages))

		s.mu.Lock()
		s.requests = append(s.requests, messages)
		s.auth = r.Header.Get("Authorization")
		s.mu.Unlock()

		if s.status != http.StatusOK {
			w.WriteHeader(s.status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		s.NoError(json.NewEncoder(w).Encode(sendResponse{Data: s.tickets(messages)}))
	})
	s.server = httptest.NewServer(mux)
}

func (s *PushClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func messages(n int) []Message {
	result := make([]Message, n)
	for i := range result {
		result[i] = Message{
			To:    fmt.Sprintf("ExponentPushToken[%d]", i),
			Title: "Payment received",
			Body:  "You received 25.00 USD",
			Data:  map[string]string{"type": "payment_received"},
		}
	}
	return result
}

func (s *PushClientTestSuite) TestSend() {
	client := New(s.server.URL, "secret")

	results, err := client.Send(s.T().Context(), messages(2))
	s.Require().NoError(err)
	s.Len(results, 2)
	for _, r := range results {
		s.NoError(r)
	}

	s.Require().Len(s.requests, 1)
	s.Equal("Bearer secret", s.auth)
	s.Equal(defaultSound, s.requests[0][0].Sound)
	s.Equal("payment_received", s.requests[0][1].Data["type"])
}

func (s *PushClientTestSuite) TestSendChunks() {
	client := New(s.server.URL, "")

	results, err := client.Send(s.T().Context(), messages(maxMessagesPerRequest+5))
	s.Require().NoError(err)
	s.Len(results, maxMessagesPerRequest+5)
	s.Require().Len(s.requests, 2)
	s.Len(s.requests[0], maxMessagesPerRequest)
	s.Len(s.requests[1], 5)
	s.Empty(s.auth)
}

func (s *PushClientTestSuite) TestSendTicketErrors() {
	s.tickets = func(messages []Message) []ticket {
		gone := ticket{Status: ticketStatusError, Message: "not registered"}
		gone.Details.Error = detailsDeviceNotRegistered
		return []ticket{
			{Status: ticketStatusOK},
			gone,
			{Status: ticketStatusError, Message: "too big"},
		}
	}
	client := New(s.server.URL, "")

	results, err := client.Send(s.T().Context(), messages(3))
	s.Require().NoError(err)
	s.Require().Len(results, 3)

	s.NoError(results[0])

	s.Require().ErrorIs(results[1], ErrDeviceNotRegistered)
	var ticketErr *TicketError
	s.Require().ErrorAs(results[1], &ticketErr)
	s.Equal("ExponentPushToken[1]", ticketErr.Token)

	s.Require().Error(results[2])
	s.NotErrorIs(results[2], ErrDeviceNotRegistered)
}

func (s *PushClientTestSuite) TestSendStatusCode() {
	s.status = http.StatusServiceUnavailable
	client := New(s.server.URL, "")

	_, err := client.Send(s.T().Context(), messages(1))
	var statusErr *StatusCodeError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(http.StatusServiceUnavailable, statusErr.Code)
}

func (s *PushClientTestSuite) TestSendTicketCountMismatch() {
	s.tickets = func([]Message) []ticket { return nil }
	client := New(s.server.URL, "")

	_, err := client.Send(s.T().Context(), messages(1))
	s.Require().Error(err)
}
