package slack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Message é o payload enviado ao webhook (formato de blocos do Slack)
type Message struct {
	Text   string  `json:"text"`
	Blocks []Block `json:"blocks"`
}

type Block struct {
	Type string    `json:"type"`
	Text BlockText `json:"text"`
}

type BlockText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewMessage monta o payload padrão do digest: resumo como fallback e um
// bloco mrkdwn com título em negrito seguido do corpo.
func NewMessage(title, summary, body string) *Message {
	return &Message{
		Text: summary,
		Blocks: []Block{
			{
				Type: "section",
				Text: BlockText{
					Type: "mrkdwn",
					Text: fmt.Sprintf("*%s*\n%s", title, body),
				},
			},
		},
	}
}

type Notifier interface {
	Post(webhookURL string, message *Message) error
}

type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Post envia o payload ao webhook. Qualquer resposta fora da faixa 2xx é
// tratada como falha de entrega.
func (c *Client) Post(webhookURL string, message *Message) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar payload do webhook")
	}

	resp, err := c.httpClient.Post(webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "erro ao enviar webhook")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logrus.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"body":        string(body),
		}).Warn("Webhook respondeu com status não esperado")

		return errors.Errorf("webhook respondeu com status %d", resp.StatusCode)
	}

	return nil
}
