package testutil

import (
	"fmt"
	"sync"

	tele "gopkg.in/telebot.v3"
)

// FakeContext is a telebot context that records replies instead of calling the Bot API.
// Methods it does not override panic through the nil embedded Context.
type FakeContext struct {
	tele.Context

	User        *tele.User
	CallbackQry *tele.Callback
	MessageText string
	EditErr     error

	mu        sync.Mutex
	sent      []string
	edited    []string
	responded int
}

// NewFakeContext creates a context for a plain text message from userID
func NewFakeContext(userID int64, text string) *FakeContext {
	return &FakeContext{User: &tele.User{ID: userID}, MessageText: text}
}

// NewFakeCallback creates a context for an inline button tap from userID
func NewFakeCallback(userID int64, unique, data string) *FakeContext {
	return &FakeContext{
		User:        &tele.User{ID: userID},
		CallbackQry: &tele.Callback{ID: "callback-1", Unique: unique, Data: data},
	}
}

func (c *FakeContext) Sender() *tele.User { return c.User }

func (c *FakeContext) Callback() *tele.Callback { return c.CallbackQry }

func (c *FakeContext) Text() string { return c.MessageText }

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, fmt.Sprint(what))
	return nil
}

func (c *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	if c.EditErr != nil {
		return c.EditErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.edited = append(c.edited, fmt.Sprint(what))
	return nil
}

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.responded++
	return nil
}

// Sent returns the texts passed to Send
func (c *FakeContext) Sent() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.sent...)
}

// Edited returns the texts passed to Edit
func (c *FakeContext) Edited() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.edited...)
}

// Responded returns how many times the callback was acknowledged
func (c *FakeContext) Responded() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.responded
}

// LastReply returns the most recent sent or edited text
func (c *FakeContext) LastReply() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	// Callbacks are answered by editing the message
	if len(c.edited) > 0 && c.CallbackQry != nil {
		return c.edited[len(c.edited)-1]
	}
	if len(c.sent) == 0 {
		return ""
	}
	return c.sent[len(c.sent)-1]
}
