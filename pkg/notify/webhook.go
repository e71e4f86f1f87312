package notify

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

type slack struct {
	url string
}

func slackSender(url string) *slack {
	return &slack{
		url: url,
	}
}

func (s *slack) send(subject, content string) error {
	return postJSON(s.url, fmt.Sprintf("{\"text\": \"%s\\n\\n%s\"}", subject, content))
}

type generic struct {
	url string
}

func genericSender(url string) *generic {
	return &generic{
		url: url,
	}
}

func (g *generic) send(subject, content string) error {
	return postJSON(g.url, fmt.Sprintf("{\"subject\": \"%s\", \"content\": \"%s\"}", subject, content))
}

func postJSON(url, payload string) error {
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("webhook returns an unexpected response: %s", string(body))
	}

	return nil
}
