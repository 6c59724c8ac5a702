package render

import (
	"quizdeck/emoji"
	"quizdeck/engine"
)

// Context provides frame state for renderers, passed by value.
// It is a session snapshot plus the live emoji set, captured once per
// frame so renderers never touch engine locks.
type Context struct {
	engine.Snapshot

	Emoji []*emoji.Instance
}

// NewContext captures a render context from the session
func NewContext(ctx *engine.Context) Context {
	rc := Context{Snapshot: ctx.Snapshot()}
	if ctx.Emoji != nil {
		rc.Emoji = ctx.Emoji.Active()
	}
	return rc
}
