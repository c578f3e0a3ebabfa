package folio

const copyConfirmSeconds = 1.2

// Clipboard writes text to the platform clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// CopyFeedback copies text and shows a short-lived confirmation. When the
// clipboard is missing or the write fails nothing is shown and no error
// surfaces; the confirmation is not essential to the page.
type CopyFeedback struct {
	clip      Clipboard
	copied    *Store[bool]
	remaining float64
}

// NewCopyFeedback creates feedback over clip, which may be nil.
func NewCopyFeedback(clip Clipboard) *CopyFeedback {
	return &CopyFeedback{clip: clip, copied: NewStore(false)}
}

// Copy writes text and reports whether the confirmation is now showing.
func (c *CopyFeedback) Copy(text string) bool {
	if c.clip == nil {
		return false
	}
	if err := c.clip.WriteText(text); err != nil {
		return false
	}
	c.remaining = copyConfirmSeconds
	c.copied.set(true)
	return true
}

// Copied returns the read-only confirmation state.
func (c *CopyFeedback) Copied() ReadOnly[bool] {
	return c.copied
}

// Update counts the confirmation down by dt seconds.
func (c *CopyFeedback) Update(dt float64) {
	if c.remaining <= 0 {
		return
	}
	c.remaining -= dt
	if c.remaining <= 0 {
		c.remaining = 0
		c.copied.set(false)
	}
}
