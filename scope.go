package radio

import "context"

// SetScope ties the channel to ctx: once ctx is done the channel stops
// listening to every other channel and is reset. A ctx that is already done
// tears the channel down before SetScope returns.
//
// Calling SetScope again replaces the previous binding, and a nil ctx removes
// it. A replaced binding never tears the channel down, even when its ctx was
// done before the call.
func (c *Channel) SetScope(ctx context.Context) *Channel {
	c.scopeMu.Lock()
	defer c.scopeMu.Unlock()

	c.scope++
	if c.unbind != nil {
		c.unbind()
		c.unbind = nil
	}
	if ctx == nil {
		return c
	}
	if ctx.Err() != nil {
		c.teardown()
		return c
	}

	scope := c.scope
	c.unbind = context.AfterFunc(ctx, func() {
		c.scopeMu.Lock()
		defer c.scopeMu.Unlock()
		if c.scope != scope {
			return
		}
		c.unbind = nil
		c.teardown()
	})
	return c
}

func (c *Channel) teardown() {
	c.logger.Debug("scope done, tearing down channel")
	c.StopListening("", "", nil).Reset()
}
