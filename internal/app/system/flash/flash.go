// internal/app/system/flash/flash.go
package flash

import (
	"encoding/gob"
	"net/http"

	"github.com/dspcoder123/admin-panel/internal/app/system/auth"
)

// Kind classifies a flash message for styling.
const (
	KindSuccess = "success"
	KindError   = "error"
)

// Message is a one-shot notification carried across a redirect in the
// session. It is consumed (and removed) by the next page render via Pop.
type Message struct {
	Kind string
	Text string
}

func init() {
	// gorilla/sessions serializes flash values with gob.
	gob.Register(Message{})
}

// Success queues a success flash for the next rendered page.
func Success(sm *auth.SessionManager, w http.ResponseWriter, r *http.Request, text string) {
	add(sm, w, r, Message{Kind: KindSuccess, Text: text})
}

// Error queues an error flash for the next rendered page.
func Error(sm *auth.SessionManager, w http.ResponseWriter, r *http.Request, text string) {
	add(sm, w, r, Message{Kind: KindError, Text: text})
}

func add(sm *auth.SessionManager, w http.ResponseWriter, r *http.Request, m Message) {
	sess, err := sm.GetSession(r)
	if err != nil {
		// A fresh session still works for flashes; Get returned one.
		_ = err
	}
	sess.AddFlash(m)
	_ = sess.Save(r, w)
}

// Pop drains all queued flashes and saves the session so they show once.
func Pop(sm *auth.SessionManager, w http.ResponseWriter, r *http.Request) []Message {
	sess, err := sm.GetSession(r)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	out := make([]Message, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(Message); ok {
			out = append(out, m)
		}
	}
	_ = sess.Save(r, w)
	return out
}
