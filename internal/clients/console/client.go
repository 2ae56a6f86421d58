package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/budget-ledger/internal/logger"
	"max.ks1230/budget-ledger/internal/model/messages"
)

const prompt = "> "

//go:generate minimock -i messageHandler -o ./mock/message_handler_mock.go -n MessageHandlerMock

type messageHandler interface {
	HandleIncomingMessage(ctx context.Context, msg messages.Message) error
}

// Client reads commands line by line and writes replies back.
type Client struct {
	in  io.Reader
	mu  sync.Mutex
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Client {
	return &Client{in: in, out: out}
}

func (c *Client) SendMessage(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := fmt.Fprintln(c.out, text)
	if err != nil {
		return errors.Wrap(err, "client.Send")
	}
	return nil
}

// ListenUpdates runs until the input ends or ctx is cancelled.
func (c *Client) ListenUpdates(ctx context.Context, msgModel messageHandler) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	logger.Info("Start listening for commands")
	c.prompt()
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop listening for commands")
			return nil
		case line, ok := <-lines:
			if !ok {
				logger.Info("Input closed")
				return readError(scanErr)
			}
			c.listenOnce(ctx, line, msgModel)
			c.prompt()
		}
	}
}

func (c *Client) listenOnce(ctx context.Context, line string, msgModel messageHandler) {
	if line == "" {
		return
	}
	logger.Debug("command received", zap.String("text", line))

	err := msgModel.HandleIncomingMessage(ctx, messages.Message{Text: line})
	if err != nil {
		logger.Error("error processing command", zap.Error(err))
	}
}

func (c *Client) prompt() {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(c.out, prompt)
}

func readError(scanErr <-chan error) error {
	select {
	case err := <-scanErr:
		if err != nil {
			return errors.Wrap(err, "read input")
		}
	default:
	}
	return nil
}
