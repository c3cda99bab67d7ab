// Package client HTTP клиент push шлюза Expo.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	DefaultBaseURL = "https://exp.host"
	RoutePushSend  = "/--/api/v2/push/send"
)

// maxMessagesPerRequest ограничение шлюза на кол-во сообщений в одном запросе.
const maxMessagesPerRequest = 100

const (
	ticketStatusOK             = "ok"
	ticketStatusError          = "error"
	detailsDeviceNotRegistered = "DeviceNotRegistered"
	defaultSound               = "default"
)

type Message struct {
	To    string            `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
	Sound string            `json:"sound,omitempty"`
}

type ticket struct {
	Status  string `json:"status"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
	Details struct {
		Error string `json:"error,omitempty"`
	} `json:"details"`
}

type sendResponse struct {
	Data []ticket `json:"data"`
}

// HTTPClient клиент push шлюза.
type HTTPClient struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// New создает клиент. Пустой baseURL заменяется DefaultBaseURL, accessToken необязателен.
func New(baseURL, accessToken string) HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return HTTPClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  http.DefaultClient,
	}
}

// Send отправляет сообщения пачками по maxMessagesPerRequest. Возвращает срез ошибок той же длины,
// что и messages: nil для доставленных шлюзу сообщений, *TicketError для отклоненных. Ошибка запроса целиком
// возвращается вторым значением.
func (c HTTPClient) Send(ctx context.Context, messages []Message) ([]error, error) {
	results := make([]error, 0, len(messages))
	for start := 0; start < len(messages); start += maxMessagesPerRequest {
		end := min(start+maxMessagesPerRequest, len(messages))
		chunk := messages[start:end]

		tickets, err := c.send(ctx, chunk)
		if err != nil {
			return nil, err
		}
		if len(tickets) != len(chunk) {
			return nil, fmt.Errorf("parse response: expected %d tickets, got %d", len(chunk), len(tickets))
		}
		for i, t := range tickets {
			results = append(results, ticketErr(chunk[i].To, t))
		}
	}
	return results, nil
}

//nolint:nonamedreturns
func (c HTTPClient) send(ctx context.Context, messages []Message) (tickets []ticket, err error) {
	for i := range messages {
		if messages[i].Sound == "" {
			messages[i].Sound = defaultSound
		}
	}

	payload, marshalErr := json.Marshal(messages)
	if marshalErr != nil {
		return nil, fmt.Errorf("marshal request: %s", marshalErr.Error())
	}

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+RoutePushSend, bytes.NewReader(payload))
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %s", doErr.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		err = NewStatusCodeError(resp.StatusCode)
		return nil, err
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		err = fmt.Errorf("read response: %s", readErr.Error())
		return nil, err
	}

	var response sendResponse
	if jsonErr := json.Unmarshal(body, &response); jsonErr != nil {
		err = fmt.Errorf("parse response: %s", jsonErr.Error())
		return nil, err
	}
	return response.Data, nil
}

func ticketErr(token string, t ticket) error {
	if t.Status == ticketStatusOK {
		return nil
	}
	code := t.Details.Error
	if code == "" {
		code = ticketStatusError
	}
	return &TicketError{Token: token, Code: code, Message: t.Message}
}
