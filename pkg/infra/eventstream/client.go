// Package eventstream keeps a websocket subscription to the server trigger events.
package eventstream

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/model"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/types"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/logging"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/safe"
	"github.com/gorilla/websocket"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultReconnectInterval = 5 * time.Second
	DefaultPingInterval      = 20 * time.Second
	DefaultMaxInFlight       = 64

	writeTimeout = 10 * time.Second
)

// Handler processes one received message. It runs on its own goroutine.
type Handler func(ctx context.Context, payload []byte)

type Client struct {
	url    string
	apiKey types.APIKey
	name   string

	triggers          []string
	insecure          bool
	reconnectInterval time.Duration
	pingInterval      time.Duration
	maxInFlight       int

	reconnecting atomic.Bool
}

type Option func(*Client)

func WithName(name string) Option {
	return func(x *Client) {
		x.name = name
	}
}

// WithInsecure disables TLS certificate verification of wss:// endpoints.
func WithInsecure(insecure bool) Option {
	return func(x *Client) {
		x.insecure = insecure
	}
}

func WithReconnectInterval(d time.Duration) Option {
	return func(x *Client) {
		x.reconnectInterval = d
	}
}

func WithPingInterval(d time.Duration) Option {
	return func(x *Client) {
		x.pingInterval = d
	}
}

func WithMaxInFlight(n int) Option {
	return func(x *Client) {
		x.maxInFlight = n
	}
}

func WithTriggers(triggers ...string) Option {
	return func(x *Client) {
		x.triggers = triggers
	}
}

func New(endpoint string, apiKey types.APIKey, options ...Option) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid websocket URL", goerr.V("url", endpoint), goerr.V("cause", err.Error()))
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "websocket URL must be ws or wss", goerr.V("url", endpoint))
	}
	if apiKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "API key is empty")
	}

	client := &Client{
		url:               endpoint,
		apiKey:            apiKey,
		triggers:          model.Triggers,
		reconnectInterval: DefaultReconnectInterval,
		pingInterval:      DefaultPingInterval,
		maxInFlight:       DefaultMaxInFlight,
	}
	for _, opt := range options {
		opt(client)
	}

	if client.reconnectInterval <= 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "reconnect interval must be positive", goerr.V("interval", client.reconnectInterval))
	}
	if client.pingInterval <= 0 {
		client.pingInterval = DefaultPingInterval
	}
	if client.maxInFlight <= 0 {
		client.maxInFlight = DefaultMaxInFlight
	}

	return client, nil
}

type loginMessage struct {
	Action string `json:"action"`
	Key    string `json:"key"`
}

type registerMessage struct {
	Action    string   `json:"action"`
	Type      string   `json:"type"`
	EventList []string `json:"eventlist"`
}

func (x *Client) dialer() *websocket.Dialer {
	d := *websocket.DefaultDialer
	if x.insecure {
		d.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402
	}
	return &d
}

// connect dials the server, logs in and registers the triggers.
func (x *Client) connect(ctx context.Context) (*websocket.Conn, error) {
	conn, resp, err := x.dialer().DialContext(ctx, x.url, nil)
	if resp != nil {
		safe.Close(resp.Body)
	}
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		return nil, goerr.Wrap(err, "failed to dial websocket", goerr.V("url", x.url), goerr.V("status", status))
	}

	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(loginMessage{Action: "login", Key: x.apiKey.Reveal()}); err != nil {
		safe.Close(conn)
		return nil, goerr.Wrap(err, "failed to send login message", goerr.V("url", x.url))
	}
	if err := conn.WriteJSON(registerMessage{Action: "register", Type: "trigger", EventList: x.triggers}); err != nil {
		safe.Close(conn)
		return nil, goerr.Wrap(err, "failed to send register message", goerr.V("url", x.url), goerr.V("triggers", x.triggers))
	}
	_ = conn.SetWriteDeadline(time.Time{})

	return conn, nil
}

// Connect runs the connect sequence until it succeeds or ctx is done. Only one
// attempt may run at a time; a concurrent call returns types.ErrReconnectInProgress.
func (x *Client) Connect(ctx context.Context) (*websocket.Conn, error) {
	if !x.reconnecting.CompareAndSwap(false, true) {
		return nil, goerr.Wrap(types.ErrReconnectInProgress, "connection attempt already running", goerr.V("url", x.url))
	}
	defer x.reconnecting.Store(false)

	logger := logging.From(ctx)
	for attempt := 1; ; attempt++ {
		conn, err := x.connect(ctx)
		if err == nil {
			logger.Info("Bot connected", slog.String("name", x.name), slog.String("url", x.url))
			return conn, nil
		}
		if ctx.Err() != nil {
			return nil, goerr.Wrap(ctx.Err(), "connection cancelled", goerr.V("url", x.url))
		}

		logger.Warn("Failed to connect, retrying",
			slog.Any("error", err),
			slog.Int("attempt", attempt),
			slog.Duration("interval", x.reconnectInterval),
		)

		select {
		case <-ctx.Done():
			return nil, goerr.Wrap(ctx.Err(), "connection cancelled", goerr.V("url", x.url))
		case <-time.After(x.reconnectInterval):
		}
	}
}

// Listen delivers every received message to handler until ctx is done. Lost
// connections are re-established forever. Handler goroutines are joined before
// Listen returns.
func (x *Client) Listen(ctx context.Context, handler Handler) error {
	var eg errgroup.Group
	eg.SetLimit(x.maxInFlight)
	defer func() {
		_ = eg.Wait()
	}()

	logger := logging.From(ctx)
	for {
		conn, err := x.Connect(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		err = x.receive(ctx, conn, &eg, handler)
		if ctx.Err() != nil {
			return nil
		}
		logger.Warn("Event stream connection lost, reconnecting",
			slog.Any("error", err),
			slog.Duration("interval", x.reconnectInterval),
		)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(x.reconnectInterval):
		}
	}
}

// receive reads messages until the connection fails. conn is closed exactly once before it returns.
func (x *Client) receive(ctx context.Context, conn *websocket.Conn, eg *errgroup.Group, handler Handler) error {
	var closeOnce sync.Once
	closeConn := func() {
		closeOnce.Do(func() { safe.Close(conn) })
	}
	defer closeConn()

	done := make(chan struct{})
	defer close(done)

	go func() {
		ticker := time.NewTicker(x.pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				// unblocks ReadMessage
				closeConn()
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
					logging.From(ctx).Debug("Failed to send ping", slog.Any("error", err))
				}
			}
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) {
				return goerr.Wrap(err, "connection closed by server", goerr.V("code", closeErr.Code))
			}
			return goerr.Wrap(err, "failed to read message")
		}

		eg.Go(func() error {
			handler(ctx, msg)
			return nil
		})
	}
}
