package app

import "strings"

// Canvas is the host-side content sink. Page contents close over a
// Canvas and write into it with no arguments at dispatch time; the
// shell drains it into the main region afterwards. This keeps content
// entry points zero-argument and side-effecting.
type Canvas struct {
	b strings.Builder
}

// Reset clears the canvas for the next dispatch.
func (c *Canvas) Reset() {
	c.b.Reset()
}

// Heading writes a styled page title line. The shell installs this as
// the registry's heading hook.
func (c *Canvas) Heading(title string) {
	c.b.WriteString(headingStyle.Render(title))
	c.b.WriteString("\n\n")
}

// Text writes a paragraph.
func (c *Canvas) Text(s string) {
	c.b.WriteString(textStyle.Render(s))
	c.b.WriteString("\n")
}

// Bullet writes a bulleted line.
func (c *Canvas) Bullet(s string) {
	c.b.WriteString(textStyle.Render("• " + s))
	c.b.WriteString("\n")
}

// Code writes an indented monospace-styled block.
func (c *Canvas) Code(s string) {
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		c.b.WriteString(codeStyle.Render("    " + line))
		c.b.WriteString("\n")
	}
}

func (c *Canvas) String() string {
	return c.b.String()
}
