package main

import (
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/kidandcat/promanager/internal/session"
)

// localStorage keeps raw strings in window.localStorage so the keys stay
// readable by anything else on the page.
type localStorage struct {
	v app.Value
}

func newLocalStorage() session.KV {
	return localStorage{v: app.Window().Get("localStorage")}
}

func (s localStorage) Get(key string) (string, bool) {
	r := s.v.Call("getItem", key)
	if r.IsNull() || r.IsUndefined() {
		return "", false
	}
	return r.String(), true
}

// Set reports a full or disabled storage as an error instead of letting the
// JS exception unwind the caller.
func (s localStorage) Set(key, value string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("localStorage %s: %v", key, r)
		}
	}()
	s.v.Call("setItem", key, value)
	return nil
}

func (s localStorage) Del(key string) {
	s.v.Call("removeItem", key)
}
