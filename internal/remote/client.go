package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/muurk/pinpad/internal/pinentry"
)

// ErrRejected is returned when the bridge answers a frame with ok=false
var ErrRejected = errors.New("frame rejected by bridge")

// Client is a remote keypad connected to a bridge
type Client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Dial connects to the bridge at addr ("host:port")
func Dial(ctx context.Context, addr string) (*Client, error) {
	u := url.URL{Scheme: "ws", Host: addr, Path: KeysPath}

	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}
	conn, resp, err := dialer.DialContext(ctx, u.String(), nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", u.String(), err)
	}
	return &Client{conn: conn}, nil
}

// Send writes a frame and waits for the bridge's ack
func (c *Client) Send(f Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	if err := c.conn.WriteJSON(f); err != nil {
		return fmt.Errorf("failed to send %s frame: %w", f.Type, err)
	}

	if err := c.conn.SetReadDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	_, data, err := c.conn.ReadMessage()
	if err != nil {
		return fmt.Errorf("failed to read ack: %w", err)
	}

	var ack Ack
	if err := json.Unmarshal(data, &ack); err != nil {
		return fmt.Errorf("malformed ack: %w", err)
	}
	if !ack.OK {
		return fmt.Errorf("%w: %s", ErrRejected, ack.Error)
	}
	return nil
}

// SendKey sends one key phase
func (c *Client) SendKey(code pinentry.KeyCode, action pinentry.KeyAction) error {
	return c.Send(KeyFrame(code, action))
}

// PressKey sends a full press (down + up) in a single frame
func (c *Client) PressKey(code pinentry.KeyCode) error {
	return c.Send(KeyFrame(code, pinentry.ActionUnknown))
}

// DeleteSurrounding sends a soft-keyboard delete request
func (c *Client) DeleteSurrounding(before, after int) error {
	return c.Send(Frame{Type: FrameDeleteSurrounding, Before: before, After: after})
}

// Close sends a close frame and closes the connection
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	return c.conn.Close()
}
