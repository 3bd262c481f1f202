package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hunt/communication"
	"io"
	"net/http"
	"strings"
)

type ClientCommunicator struct {
	serverURL string
	http      *http.Client
}

var _ communication.Communicator = (*ClientCommunicator)(nil)

// NewClientCommunicator initializes and returns a new ClientCommunicator.
func NewClientCommunicator(serverURL string) *ClientCommunicator {
	return &ClientCommunicator{
		serverURL: strings.TrimSuffix(serverURL, "/"),
		http:      http.DefaultClient,
	}
}

// Decide sends the past-plays log to the server and returns its decision.
func (cc *ClientCommunicator) Decide(plays string) (communication.Decision, error) {
	var decision communication.Decision

	data, err := json.Marshal(communication.DecideRequest{Plays: plays})
	if err != nil {
		return decision, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := cc.http.Post(cc.serverURL+"/decide", "application/json", bytes.NewBuffer(data))
	if err != nil {
		return decision, fmt.Errorf("failed to reach decision server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return decision, fmt.Errorf("decision server returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(&decision); err != nil {
		return decision, fmt.Errorf("failed to decode decision: %w", err)
	}
	return decision, nil
}
